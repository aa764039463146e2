package assessmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/access"
	"pms/internal/domain/assessment"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *assessment.Service
}

func NewHandler(service *assessment.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/goals/{goalID}/assessments", h.handleGet)
	r.Put("/goals/{goalID}/assessments/self", h.handleSubmit(assessment.KindSelf))
	r.Put("/goals/{goalID}/assessments/manager", h.handleSubmit(assessment.KindManager))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	pair, err := h.Service.Get(r.Context(), actor.UserID, chi.URLParam(r, "goalID"))
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, pair, reqID)
}

func (h *Handler) handleSubmit(kind assessment.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetRequestID(r.Context())
		actor, ok := middleware.GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
			return
		}

		var payload assessment.SubmitInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
			return
		}

		record, err := h.Service.Submit(r.Context(), actor.UserID, chi.URLParam(r, "goalID"), kind, payload)
		if err != nil {
			h.fail(w, err, reqID)
			return
		}
		api.Success(w, record, reqID)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error, reqID string) {
	var stateErr *access.StateError
	switch {
	case errors.Is(err, assessment.ErrGoalNotFound):
		api.Fail(w, http.StatusNotFound, "goal_not_found", "goal not found", reqID)
	case errors.Is(err, assessment.ErrInvalidRating):
		api.Fail(w, http.StatusBadRequest, "invalid_rating", "rating must be between 0 and 150", reqID)
	case errors.Is(err, assessment.ErrInvalidComments):
		api.Fail(w, http.StatusBadRequest, "invalid_comments", "comments must be at most 500 characters", reqID)
	case errors.As(err, &stateErr):
		api.Fail(w, http.StatusConflict, "invalid_process_state", "the process is not in the right stage for this assessment, current status is "+stateErr.Current, reqID)
	case errors.Is(err, access.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to assess this goal", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "assessment_failed", "assessment operation failed", reqID)
	}
}
