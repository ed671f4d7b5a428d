package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// IngestService transcribes parsed upload rows into the record store. Thin
// by design: shape validation stops at the upload parser, and no upsert
// semantics exist (re-uploads duplicate rows).
type IngestService interface {
	ImportStudents(ctx context.Context, students []*models.Student) (int, error)
	ImportAttendance(ctx context.Context, records []*models.AttendanceRecord) (int, error)
	ImportAssessments(ctx context.Context, records []*models.AssessmentRecord) (int, error)
	ImportFees(ctx context.Context, records []*models.FeeRecord) (int, error)
}

type ingestService struct {
	students    repositories.StudentRepository
	attendance  repositories.AttendanceRepository
	assessments repositories.AssessmentRepository
	fees        repositories.FeeRepository
	logger      *zap.Logger
}

func NewIngestService(
	students repositories.StudentRepository,
	attendance repositories.AttendanceRepository,
	assessments repositories.AssessmentRepository,
	fees repositories.FeeRepository,
	logger *zap.Logger,
) IngestService {
	return &ingestService{
		students:    students,
		attendance:  attendance,
		assessments: assessments,
		fees:        fees,
		logger:      logger.Named("ingest"),
	}
}

var _ IngestService = (*ingestService)(nil)

func (s *ingestService) ImportStudents(ctx context.Context, students []*models.Student) (int, error) {
	if err := s.students.BulkInsert(ctx, students); err != nil {
		return 0, err
	}
	s.logger.Info("Imported students", zap.Int("count", len(students)))
	return len(students), nil
}

func (s *ingestService) ImportAttendance(ctx context.Context, records []*models.AttendanceRecord) (int, error) {
	if err := s.attendance.BulkInsert(ctx, records); err != nil {
		return 0, err
	}
	s.logger.Info("Imported attendance records", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *ingestService) ImportAssessments(ctx context.Context, records []*models.AssessmentRecord) (int, error) {
	if err := s.assessments.BulkInsert(ctx, records); err != nil {
		return 0, err
	}
	s.logger.Info("Imported assessment records", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *ingestService) ImportFees(ctx context.Context, records []*models.FeeRecord) (int, error) {
	if err := s.fees.BulkInsert(ctx, records); err != nil {
		return 0, err
	}
	s.logger.Info("Imported fee records", zap.Int("count", len(records)))
	return len(records), nil
}
