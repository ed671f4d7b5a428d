package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/services"
)

// maxUploadBytes bounds the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20 // 32 MiB

// UploadHandler handles CSV record uploads. Validation is minimal shape
// checking only: required columns present and numeric fields parseable.
// Anything beyond that is transcribed as-is.
type UploadHandler struct {
	ingest services.IngestService
	logger *zap.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(ingest services.IngestService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		ingest: ingest,
		logger: logger,
	}
}

// RegisterRoutes registers the upload handler's routes on the given mux.
func (h *UploadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/upload/students", h.UploadStudents)
	mux.HandleFunc("POST /api/upload/attendance", h.UploadAttendance)
	mux.HandleFunc("POST /api/upload/assessments", h.UploadAssessments)
	mux.HandleFunc("POST /api/upload/fees", h.UploadFees)
}

// UploadStudents handles POST /api/upload/students.
func (h *UploadHandler) UploadStudents(w http.ResponseWriter, r *http.Request) {
	rows, err := h.readCSV(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	students := make([]*models.Student, 0, len(rows))
	for _, row := range rows {
		student, err := parseStudentRow(row)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		students = append(students, student)
	}

	count, err := h.ingest.ImportStudents(r.Context(), students)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	h.writeUploadResult(w, fmt.Sprintf("Successfully uploaded %d students", count))
}

// UploadAttendance handles POST /api/upload/attendance.
func (h *UploadHandler) UploadAttendance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.readCSV(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	records := make([]*models.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		record, err := parseAttendanceRow(row)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		records = append(records, record)
	}

	count, err := h.ingest.ImportAttendance(r.Context(), records)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	h.writeUploadResult(w, fmt.Sprintf("Successfully uploaded %d attendance records", count))
}

// UploadAssessments handles POST /api/upload/assessments.
func (h *UploadHandler) UploadAssessments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.readCSV(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	records := make([]*models.AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		record, err := parseAssessmentRow(row)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		records = append(records, record)
	}

	count, err := h.ingest.ImportAssessments(r.Context(), records)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	h.writeUploadResult(w, fmt.Sprintf("Successfully uploaded %d assessment records", count))
}

// UploadFees handles POST /api/upload/fees.
func (h *UploadHandler) UploadFees(w http.ResponseWriter, r *http.Request) {
	rows, err := h.readCSV(r)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	records := make([]*models.FeeRecord, 0, len(rows))
	for _, row := range rows {
		record, err := parseFeeRow(row)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		records = append(records, record)
	}

	count, err := h.ingest.ImportFees(r.Context(), records)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	h.writeUploadResult(w, fmt.Sprintf("Successfully uploaded %d fee records", count))
}

// readCSV extracts the "file" part of a multipart upload and parses it into
// header-keyed rows.
func (h *UploadHandler) readCSV(r *http.Request) ([]csvRow, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart form: %s", apperrors.ErrMalformedInput, err)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file field: %s", apperrors.ErrMalformedInput, err)
	}
	defer file.Close()

	return parseCSVRows(file)
}

func (h *UploadHandler) writeUploadResult(w http.ResponseWriter, message string) {
	if err := WriteJSON(w, http.StatusOK, map[string]string{"message": message}); err != nil {
		h.logger.Error("Failed to write upload response", zap.Error(err))
	}
}

func (h *UploadHandler) writeUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrMalformedInput) {
		if werr := ErrorResponse(w, http.StatusBadRequest, "malformed_input", err.Error()); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	h.logger.Error("Upload failed", zap.Error(err))
	if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Error processing file"); werr != nil {
		h.logger.Error("Failed to write error response", zap.Error(werr))
	}
}

// csvRow maps a header name to the cell value of one record line.
type csvRow map[string]string

// parseCSVRows reads an entire CSV stream into header-keyed rows.
func parseCSVRows(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing CSV header: %s", apperrors.ErrMalformedInput, err)
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: bad CSV row: %s", apperrors.ErrMalformedInput, err)
		}

		row := make(csvRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
