package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edusight/retain-engine/pkg/database"
	"github.com/edusight/retain-engine/pkg/models"
)

// AttendanceRepository provides data access for attendance records.
type AttendanceRepository interface {
	ListByStudentID(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	List(ctx context.Context) ([]*models.AttendanceRecord, error)
	BulkInsert(ctx context.Context, records []*models.AttendanceRecord) error
}

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

var _ AttendanceRepository = (*attendanceRepository)(nil)

func (r *attendanceRepository) ListByStudentID(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, subject, total_classes, attended_classes,
		       attendance_percentage, month, year, created_at
		FROM attendance_records
		WHERE student_id = $1
		ORDER BY created_at`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for student: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) List(ctx context.Context) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, subject, total_classes, attended_classes,
		       attendance_percentage, month, year, created_at
		FROM attendance_records
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) BulkInsert(ctx context.Context, records []*models.AttendanceRecord) error {
	now := time.Now().UTC()
	rows := make([][]any, len(records))
	for i, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rows[i] = []any{
			rec.ID, rec.StudentID, rec.Subject, rec.TotalClasses, rec.AttendedClasses,
			rec.AttendancePercentage, rec.Month, rec.Year, rec.CreatedAt,
		}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"attendance_records"},
		[]string{"id", "student_id", "subject", "total_classes", "attended_classes",
			"attendance_percentage", "month", "year", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance records: %w", err)
	}
	return nil
}

func scanAttendanceRows(rows pgx.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.Subject, &rec.TotalClasses, &rec.AttendedClasses,
			&rec.AttendancePercentage, &rec.Month, &rec.Year, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}
	return records, nil
}
