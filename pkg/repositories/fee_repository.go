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

// FeeRepository provides data access for fee payment records.
type FeeRepository interface {
	ListByStudentID(ctx context.Context, studentID string) ([]*models.FeeRecord, error)
	List(ctx context.Context) ([]*models.FeeRecord, error)
	BulkInsert(ctx context.Context, records []*models.FeeRecord) error
}

type feeRepository struct {
	db *database.DB
}

func NewFeeRepository(db *database.DB) FeeRepository {
	return &feeRepository{db: db}
}

var _ FeeRepository = (*feeRepository)(nil)

func (r *feeRepository) ListByStudentID(ctx context.Context, studentID string) ([]*models.FeeRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, amount_due, amount_paid, due_date, paid_date,
		       status, semester, created_at
		FROM fee_records
		WHERE student_id = $1
		ORDER BY created_at`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fees for student: %w", err)
	}
	defer rows.Close()

	return scanFeeRows(rows)
}

func (r *feeRepository) List(ctx context.Context) ([]*models.FeeRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, amount_due, amount_paid, due_date, paid_date,
		       status, semester, created_at
		FROM fee_records
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}
	defer rows.Close()

	return scanFeeRows(rows)
}

func (r *feeRepository) BulkInsert(ctx context.Context, records []*models.FeeRecord) error {
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
			rec.ID, rec.StudentID, rec.AmountDue, rec.AmountPaid, rec.DueDate,
			rec.PaidDate, rec.Status, rec.Semester, rec.CreatedAt,
		}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"fee_records"},
		[]string{"id", "student_id", "amount_due", "amount_paid", "due_date",
			"paid_date", "status", "semester", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fee records: %w", err)
	}
	return nil
}

func scanFeeRows(rows pgx.Rows) ([]*models.FeeRecord, error) {
	var records []*models.FeeRecord
	for rows.Next() {
		rec := &models.FeeRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.AmountDue, &rec.AmountPaid, &rec.DueDate,
			&rec.PaidDate, &rec.Status, &rec.Semester, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fee record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee records: %w", err)
	}
	return records, nil
}
