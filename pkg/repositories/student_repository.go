package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/database"
	"github.com/edusight/retain-engine/pkg/models"
)

// StudentRepository provides data access for student roster profiles.
type StudentRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, students []*models.Student) error
}

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) StudentRepository {
	return &studentRepository{db: db}
}

var _ StudentRepository = (*studentRepository)(nil)

// GetByStudentID fetches the profile for an institution-issued identifier.
// Duplicate uploads are tolerated; the earliest uploaded row wins.
// Returns apperrors.ErrNotFound if no profile exists.
func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, student_id, name, email, phone, course, semester, created_at
		FROM students
		WHERE student_id = $1
		ORDER BY created_at
		LIMIT 1`, studentID)

	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.StudentID, &student.Name, &student.Email,
		&student.Phone, &student.Course, &student.Semester, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, name, email, phone, course, semester, created_at
		FROM students
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.StudentID, &student.Name, &student.Email,
			&student.Phone, &student.Course, &student.Semester, &student.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

func (r *studentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return total, nil
}

// BulkInsert inserts uploaded roster rows. No upsert: re-uploading the same
// student_id creates a duplicate row.
func (r *studentRepository) BulkInsert(ctx context.Context, students []*models.Student) error {
	now := time.Now().UTC()
	rows := make([][]any, len(students))
	for i, s := range students {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		rows[i] = []any{s.ID, s.StudentID, s.Name, s.Email, s.Phone, s.Course, s.Semester, s.CreatedAt}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"students"},
		[]string{"id", "student_id", "name", "email", "phone", "course", "semester", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert students: %w", err)
	}
	return nil
}
