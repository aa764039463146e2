package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/auth"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Handler struct {
	Service  *auth.Service
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(service *auth.Service, secret string) *Handler {
	return &Handler{Service: service, Secret: secret, TokenTTL: 24 * time.Hour}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/auth/me", h.handleMe)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Email = strings.TrimSpace(payload.Email)
	v := shared.NewValidator()
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	if v.Reject(w, reqID) {
		return
	}

	user, err := h.Service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: user.ID, Email: user.Email}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", reqID)
		return
	}

	api.Success(w, loginResponse{
		Token: token,
		User:  auth.User{ID: user.ID, Email: user.Email, Name: user.Name, ManagerID: user.ManagerID},
	}, reqID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	profile, err := h.Service.UserByID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", reqID)
		return
	}

	api.Success(w, profile, reqID)
}
