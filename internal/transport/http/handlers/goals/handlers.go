package goalshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/access"
	"pms/internal/domain/goals"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Handler struct {
	Service *goals.Service
}

func NewHandler(service *goals.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/processes/{processID}/employees/{employeeID}/goals", h.handleList)
	r.Post("/processes/{processID}/employees/{employeeID}/goals", h.handleCreate)
	r.Get("/goals/{goalID}", h.handleGet)
	r.Put("/goals/{goalID}", h.handleUpdate)
	r.Delete("/goals/{goalID}", h.handleDelete)
	r.Get("/goal-categories", h.handleCategories)
	r.Get("/predefined-goals", h.handlePredefined)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	list, err := h.Service.List(r.Context(), actor.UserID, chi.URLParam(r, "processID"), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload goals.CreateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if rejected := validateGoalPayload(w, reqID, payload.CategoryID, payload.Description, payload.Weight); rejected {
		return
	}

	goal, err := h.Service.Create(r.Context(), actor.UserID, chi.URLParam(r, "processID"), chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Created(w, goal, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	goal, err := h.Service.Get(r.Context(), actor.UserID, chi.URLParam(r, "goalID"))
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, goal, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload goals.UpdateGoalInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if rejected := validateGoalPayload(w, reqID, payload.CategoryID, payload.Description, payload.Weight); rejected {
		return
	}

	goal, err := h.Service.Update(r.Context(), actor.UserID, chi.URLParam(r, "goalID"), payload)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, goal, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	if err := h.Service.Delete(r.Context(), actor.UserID, chi.URLParam(r, "goalID")); err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "category_list_failed", "failed to list goal categories", reqID)
		return
	}
	api.Success(w, map[string]any{"categories": categories}, reqID)
}

func (h *Handler) handlePredefined(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 20, 100)
	filter := goals.PredefinedFilter{
		CategoryID: strings.TrimSpace(r.URL.Query().Get("categoryId")),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}

	list, total, err := h.Service.Predefined(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "predefined_list_failed", "failed to list predefined goals", reqID)
		return
	}
	api.Success(w, map[string]any{
		"predefinedGoals": list,
		"total":           total,
		"limit":           page.Limit,
		"offset":          page.Offset,
	}, reqID)
}

func validateGoalPayload(w http.ResponseWriter, reqID, categoryID, description string, weight int) bool {
	v := shared.NewValidator()
	v.Required("categoryId", categoryID, "category is required")
	v.Required("description", description, "description is required")
	v.Range("weight", weight, 0, 100, "weight must be between 0 and 100")
	return v.Reject(w, reqID)
}

// fail maps goal domain errors onto the API contract.
func (h *Handler) fail(w http.ResponseWriter, err error, reqID string) {
	var stateErr *access.StateError
	switch {
	case errors.Is(err, goals.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "goal_not_found", "goal not found", reqID)
	case errors.Is(err, goals.ErrProcessNotFound):
		api.Fail(w, http.StatusNotFound, "process_not_found", "assessment process not found", reqID)
	case errors.Is(err, goals.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", reqID)
	case errors.Is(err, goals.ErrCategoryNotFound):
		api.Fail(w, http.StatusBadRequest, "category_not_found", "goal category not found", reqID)
	case errors.Is(err, goals.ErrInvalidWeight):
		api.Fail(w, http.StatusBadRequest, "invalid_weight", "goal weight must be between 0 and 100", reqID)
	case errors.Is(err, goals.ErrInvalidDescription):
		api.Fail(w, http.StatusBadRequest, "invalid_description", "goal description must be between 5 and 500 characters", reqID)
	case errors.As(err, &stateErr):
		api.Fail(w, http.StatusConflict, "invalid_process_state", "goals can only change while the process is in definition, current status is "+stateErr.Current, reqID)
	case errors.Is(err, access.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to access this employee's goals", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "goal_operation_failed", "goal operation failed", reqID)
	}
}
