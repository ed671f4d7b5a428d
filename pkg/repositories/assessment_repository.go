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

// AssessmentRepository provides data access for assessment records.
type AssessmentRepository interface {
	ListByStudentID(ctx context.Context, studentID string) ([]*models.AssessmentRecord, error)
	List(ctx context.Context) ([]*models.AssessmentRecord, error)
	BulkInsert(ctx context.Context, records []*models.AssessmentRecord) error
}

type assessmentRepository struct {
	db *database.DB
}

func NewAssessmentRepository(db *database.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

var _ AssessmentRepository = (*assessmentRepository)(nil)

func (r *assessmentRepository) ListByStudentID(ctx context.Context, studentID string) ([]*models.AssessmentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, subject, assessment_type, score, max_score,
		       percentage, date, attempt_number, created_at
		FROM assessment_records
		WHERE student_id = $1
		ORDER BY created_at`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments for student: %w", err)
	}
	defer rows.Close()

	return scanAssessmentRows(rows)
}

func (r *assessmentRepository) List(ctx context.Context) ([]*models.AssessmentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, subject, assessment_type, score, max_score,
		       percentage, date, attempt_number, created_at
		FROM assessment_records
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	return scanAssessmentRows(rows)
}

func (r *assessmentRepository) BulkInsert(ctx context.Context, records []*models.AssessmentRecord) error {
	now := time.Now().UTC()
	rows := make([][]any, len(records))
	for i, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if rec.AttemptNumber == 0 {
			rec.AttemptNumber = 1
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rows[i] = []any{
			rec.ID, rec.StudentID, rec.Subject, rec.AssessmentType, rec.Score,
			rec.MaxScore, rec.Percentage, rec.Date, rec.AttemptNumber, rec.CreatedAt,
		}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"assessment_records"},
		[]string{"id", "student_id", "subject", "assessment_type", "score",
			"max_score", "percentage", "date", "attempt_number", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment records: %w", err)
	}
	return nil
}

func scanAssessmentRows(rows pgx.Rows) ([]*models.AssessmentRecord, error) {
	var records []*models.AssessmentRecord
	for rows.Next() {
		rec := &models.AssessmentRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.Subject, &rec.AssessmentType, &rec.Score,
			&rec.MaxScore, &rec.Percentage, &rec.Date, &rec.AttemptNumber, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessment records: %w", err)
	}
	return records, nil
}
