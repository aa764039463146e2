package processhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/process"
	"pms/internal/platform/metrics"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Handler struct {
	Service *process.Service
	Metrics *metrics.Collector
}

func NewHandler(service *process.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/processes", h.handleList)
	r.Get("/processes/{processID}", h.handleGet)
	r.Put("/processes/{processID}/status", h.handleTransition)
	r.Get("/processes/{processID}/history", h.handleHistory)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 20, 100)
	filter := process.ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if filter.Status != "" && !process.ValidStatus(filter.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown status filter", reqID)
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_active", "active must be a boolean", reqID)
			return
		}
		filter.Active = &active
	}

	list, total, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "process_list_failed", "failed to list processes", reqID)
		return
	}

	api.Success(w, map[string]any{
		"processes": list,
		"total":     total,
		"limit":     page.Limit,
		"offset":    page.Offset,
	}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	proc, err := h.Service.Get(r.Context(), chi.URLParam(r, "processID"))
	if err != nil {
		if errors.Is(err, process.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "process_not_found", "assessment process not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "process_fetch_failed", "failed to load process", reqID)
		return
	}
	api.Success(w, proc, reqID)
}

type transitionRequest struct {
	Status string `json:"status"`
}

// handleTransition advances a process along its lifecycle. The mapping of
// domain failures to status codes is part of the API contract: unknown or
// out-of-order targets are 400, lost races are 409.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Status = strings.TrimSpace(payload.Status)
	if payload.Status == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "status is required", reqID)
		return
	}

	result, err := h.Service.Transition(r.Context(), chi.URLParam(r, "processID"), payload.Status, actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, process.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "process_not_found", "assessment process not found", reqID)
		case errors.Is(err, process.ErrForbidden):
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to change this process", reqID)
		case errors.Is(err, process.ErrInvalidTransition):
			api.Fail(w, http.StatusBadRequest, "invalid_transition", "requested status is not reachable from the current one", reqID)
		case errors.Is(err, process.ErrWeightsIncomplete):
			api.Fail(w, http.StatusBadRequest, "weights_incomplete", "every employee's goal weights must total exactly 100", reqID)
		case errors.Is(err, process.ErrConflict):
			api.Fail(w, http.StatusConflict, "conflict", "process status changed concurrently, retry", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "transition_failed", "failed to change process status", reqID)
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordStatusChange()
	}
	api.Success(w, result, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	history, err := h.Service.History(r.Context(), chi.URLParam(r, "processID"))
	if err != nil {
		if errors.Is(err, process.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "process_not_found", "assessment process not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to load status history", reqID)
		return
	}
	api.Success(w, map[string]any{"history": history}, reqID)
}
