package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/repositories"
)

// RecordsHandler exposes the raw record collections for the data management
// pages. Pure transcription reads over the repositories; empty collections
// return empty arrays, never errors.
type RecordsHandler struct {
	students    repositories.StudentRepository
	attendance  repositories.AttendanceRepository
	assessments repositories.AssessmentRepository
	fees        repositories.FeeRepository
	logger      *zap.Logger
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(
	students repositories.StudentRepository,
	attendance repositories.AttendanceRepository,
	assessments repositories.AssessmentRepository,
	fees repositories.FeeRepository,
	logger *zap.Logger,
) *RecordsHandler {
	return &RecordsHandler{
		students:    students,
		attendance:  attendance,
		assessments: assessments,
		fees:        fees,
		logger:      logger,
	}
}

// RegisterRoutes registers the records handler's routes on the given mux.
func (h *RecordsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/students", h.ListStudents)
	mux.HandleFunc("GET /api/attendance/all", h.ListAttendance)
	mux.HandleFunc("GET /api/assessments/all", h.ListAssessments)
	mux.HandleFunc("GET /api/fees/all", h.ListFees)
}

// ListStudents handles GET /api/students.
func (h *RecordsHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.List(r.Context())
	if err != nil {
		h.writeListError(w, "Error fetching students", err)
		return
	}
	h.writeList(w, toAnySlice(students))
}

// ListAttendance handles GET /api/attendance/all.
func (h *RecordsHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendance.List(r.Context())
	if err != nil {
		h.writeListError(w, "Error fetching attendance", err)
		return
	}
	h.writeList(w, toAnySlice(records))
}

// ListAssessments handles GET /api/assessments/all.
func (h *RecordsHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	records, err := h.assessments.List(r.Context())
	if err != nil {
		h.writeListError(w, "Error fetching assessments", err)
		return
	}
	h.writeList(w, toAnySlice(records))
}

// ListFees handles GET /api/fees/all.
func (h *RecordsHandler) ListFees(w http.ResponseWriter, r *http.Request) {
	records, err := h.fees.List(r.Context())
	if err != nil {
		h.writeListError(w, "Error fetching fees", err)
		return
	}
	h.writeList(w, toAnySlice(records))
}

func (h *RecordsHandler) writeList(w http.ResponseWriter, items []any) {
	if items == nil {
		items = make([]any, 0)
	}
	if err := WriteJSON(w, http.StatusOK, items); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *RecordsHandler) writeListError(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", message); werr != nil {
		h.logger.Error("Failed to write error response", zap.Error(werr))
	}
}

func toAnySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
