package usershandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/auth"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users/{userID}", h.handleGetUser)
	r.Get("/employees", h.handleListEmployees)
}

// handleGetUser serves a user profile to the user themselves, their current
// manager, or an admin.
func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	userID := chi.URLParam(r, "userID")
	user, err := h.Service.UserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "user_fetch_failed", "failed to load user", reqID)
		return
	}

	if actor.UserID != userID {
		allowed := user.ManagerID != nil && *user.ManagerID == actor.UserID
		if !allowed {
			isAdmin, err := h.Service.IsAdmin(r.Context(), actor.UserID)
			if err != nil {
				slog.Warn("admin lookup failed", "err", err, "requestId", reqID)
			}
			allowed = isAdmin
		}
		if !allowed {
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this user", reqID)
			return
		}
	}

	api.Success(w, user, reqID)
}

// handleListEmployees lists the actor's direct reports.
func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	page := shared.ParsePagination(r, 20, 100)
	employees, total, err := h.Service.DirectReports(r.Context(), actor.UserID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", reqID)
		return
	}

	api.Success(w, map[string]any{
		"employees": employees,
		"total":     total,
		"limit":     page.Limit,
		"offset":    page.Offset,
	}, reqID)
}
