package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/services"
)

// DashboardHandler handles the read-side aggregate endpoints.
type DashboardHandler struct {
	dashboard services.DashboardService
	logger    *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// RegisterRoutes registers the dashboard handler's routes on the given mux.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard/overview", h.Overview)
	mux.HandleFunc("GET /api/students/at-risk", h.AtRiskStudents)
}

// Overview handles GET /api/dashboard/overview.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboard.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard overview", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Error fetching dashboard data"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, overview); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// AtRiskStudents handles GET /api/students/at-risk.
func (h *DashboardHandler) AtRiskStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.dashboard.AtRiskStudents(r.Context())
	if err != nil {
		h.logger.Error("Failed to list at-risk students", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Error fetching at-risk students"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if students == nil {
		students = make([]*models.AtRiskStudent, 0)
	}

	if err := WriteJSON(w, http.StatusOK, students); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
