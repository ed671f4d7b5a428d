package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// DashboardService computes the read-side aggregate views. Pure counts over
// stored records: no caching, recomputed on every call, and never fails for
// missing or empty data.
type DashboardService interface {
	Overview(ctx context.Context) (*models.DashboardOverview, error)
	AtRiskStudents(ctx context.Context) ([]*models.AtRiskStudent, error)
}

type dashboardService struct {
	students      repositories.StudentRepository
	assessments   repositories.RiskAssessmentRepository
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

func NewDashboardService(
	students repositories.StudentRepository,
	assessments repositories.RiskAssessmentRepository,
	notifications repositories.NotificationRepository,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		students:      students,
		assessments:   assessments,
		notifications: notifications,
		logger:        logger.Named("dashboard"),
	}
}

var _ DashboardService = (*dashboardService)(nil)

// Overview counts are literal collection cardinalities: the risk
// distribution counts assessment rows by level, not distinct students.
func (s *dashboardService) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	totalStudents, err := s.students.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	distribution, err := s.assessments.CountByLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("count risk assessments: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &models.DashboardOverview{
		TotalStudents:       totalStudents,
		RiskDistribution:    distribution,
		UnreadNotifications: unread,
	}, nil
}

// AtRiskStudents lists all risk assessments newest-first joined with their
// student profiles. Assessments referencing a student no longer on the
// roster are skipped (orphan rows are tolerated, not surfaced).
func (s *dashboardService) AtRiskStudents(ctx context.Context) ([]*models.AtRiskStudent, error) {
	assessments, err := s.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list risk assessments: %w", err)
	}

	result := make([]*models.AtRiskStudent, 0, len(assessments))
	for _, assessment := range assessments {
		student, err := s.students.GetByStudentID(ctx, assessment.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.Debug("Skipping assessment for unknown student",
					zap.String("student_id", assessment.StudentID))
				continue
			}
			return nil, err
		}

		result = append(result, &models.AtRiskStudent{
			StudentID:            assessment.StudentID,
			Name:                 student.Name,
			Course:               student.Course,
			RiskLevel:            assessment.RiskLevel,
			RiskScore:            assessment.RiskScore,
			RiskFactors:          assessment.RiskFactors,
			InterventionPriority: assessment.InterventionPriority,
			AssessmentDate:       assessment.AssessmentDate.Format(time.RFC3339),
		})
	}

	return result, nil
}
