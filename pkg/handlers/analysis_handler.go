package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/services"
)

// AnalysisHandler handles dropout-risk analysis requests.
type AnalysisHandler struct {
	analysis services.RiskAnalysisService
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysis services.RiskAnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		logger:   logger,
	}
}

// RegisterRoutes registers the analysis handler's routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze/student/{student_id}", h.AnalyzeStudent)
}

// AnalyzeStudent handles POST /api/analyze/student/{student_id}.
// Responds with the stored risk assessment document on success.
func (h *AnalysisHandler) AnalyzeStudent(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("student_id")
	if studentID == "" {
		h.writeError(w, http.StatusBadRequest, "missing_student_id", "student_id path parameter is required")
		return
	}

	assessment, err := h.analysis.AnalyzeStudent(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			h.writeError(w, http.StatusNotFound, "student_not_found", "Student not found")
		case errors.Is(err, apperrors.ErrOracleUnavailable):
			h.logger.Error("Analysis failed: oracle unavailable",
				zap.String("student_id", studentID),
				zap.Error(err))
			h.writeError(w, http.StatusBadGateway, "oracle_unavailable", "Risk analysis service is unavailable")
		default:
			h.logger.Error("Analysis failed",
				zap.String("student_id", studentID),
				zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "internal_error", "Error analyzing student")
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, assessment); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *AnalysisHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
