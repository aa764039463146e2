package reportshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/reports"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/processes/{processID}/report", h.handleSummary)
}

// handleSummary serves the assessment rollup as JSON, or as a PDF download
// when ?format=pdf is given.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	summary, err := h.Service.Summary(r.Context(), actor.UserID, chi.URLParam(r, "processID"))
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrProcessNotFound):
			api.Fail(w, http.StatusNotFound, "process_not_found", "assessment process not found", reqID)
		case errors.Is(err, reports.ErrForbidden):
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this report", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build report", reqID)
		}
		return
	}

	if r.URL.Query().Get("format") == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="assessment-report.pdf"`)
		if err := h.Service.WritePDF(summary, w); err != nil {
			api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", reqID)
		}
		return
	}

	api.Success(w, summary, reqID)
}
