package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// StudentAggregator collects all records for one student identifier and
// reshapes them into the normalized summary document used as oracle input.
type StudentAggregator interface {
	BuildSummary(ctx context.Context, studentID string) (*models.StudentSummary, error)
}

type studentAggregator struct {
	students    repositories.StudentRepository
	attendance  repositories.AttendanceRepository
	assessments repositories.AssessmentRepository
	fees        repositories.FeeRepository
	logger      *zap.Logger
}

func NewStudentAggregator(
	students repositories.StudentRepository,
	attendance repositories.AttendanceRepository,
	assessments repositories.AssessmentRepository,
	fees repositories.FeeRepository,
	logger *zap.Logger,
) StudentAggregator {
	return &studentAggregator{
		students:    students,
		attendance:  attendance,
		assessments: assessments,
		fees:        fees,
		logger:      logger.Named("aggregator"),
	}
}

var _ StudentAggregator = (*studentAggregator)(nil)

// BuildSummary is read-only. The profile lookup runs first so a missing
// student aborts before any further aggregation work (and before the caller
// spends an oracle call). List order in the summary follows retrieval order.
func (a *studentAggregator) BuildSummary(ctx context.Context, studentID string) (*models.StudentSummary, error) {
	student, err := a.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	attendance, err := a.attendance.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("aggregate attendance: %w", err)
	}

	assessments, err := a.assessments.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("aggregate assessments: %w", err)
	}

	fees, err := a.fees.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("aggregate fees: %w", err)
	}

	summary := &models.StudentSummary{
		StudentInfo: models.StudentInfo{
			Name:     student.Name,
			Course:   student.Course,
			Semester: student.Semester,
		},
		AttendanceSummary: make([]models.AttendanceSummary, 0, len(attendance)),
		AssessmentSummary: make([]models.AssessmentSummary, 0, len(assessments)),
		FeeSummary:        make([]models.FeeSummary, 0, len(fees)),
	}

	for _, att := range attendance {
		summary.AttendanceSummary = append(summary.AttendanceSummary, models.AttendanceSummary{
			Subject:              att.Subject,
			AttendancePercentage: att.AttendancePercentage,
			Month:                att.Month,
			Year:                 att.Year,
		})
	}

	for _, ass := range assessments {
		summary.AssessmentSummary = append(summary.AssessmentSummary, models.AssessmentSummary{
			Subject:       ass.Subject,
			Type:          ass.AssessmentType,
			Percentage:    ass.Percentage,
			AttemptNumber: ass.AttemptNumber,
			Date:          ass.Date.Format(time.RFC3339),
		})
	}

	for _, fee := range fees {
		summary.FeeSummary = append(summary.FeeSummary, models.FeeSummary{
			AmountDue:  fee.AmountDue,
			AmountPaid: fee.AmountPaid,
			Status:     fee.Status,
			Semester:   fee.Semester,
		})
	}

	a.logger.Debug("Built student summary",
		zap.String("student_id", studentID),
		zap.Int("attendance_rows", len(summary.AttendanceSummary)),
		zap.Int("assessment_rows", len(summary.AssessmentSummary)),
		zap.Int("fee_rows", len(summary.FeeSummary)))

	return summary, nil
}
