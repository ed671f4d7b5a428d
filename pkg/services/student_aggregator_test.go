package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/models"
)

func TestBuildSummary(t *testing.T) {
	students := &mockStudentRepo{
		GetByStudentIDFunc: func(ctx context.Context, studentID string) (*models.Student, error) {
			return &models.Student{StudentID: studentID, Name: "Asha Patel", Course: "B.Tech CSE", Semester: 4}, nil
		},
	}
	attendance := &mockAttendanceRepo{
		ListByStudentIDFunc: func(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
			return []*models.AttendanceRecord{
				{StudentID: studentID, Subject: "Maths", AttendancePercentage: 62.5, Month: "January", Year: 2026},
				{StudentID: studentID, Subject: "Physics", AttendancePercentage: 81.0, Month: "January", Year: 2026},
			}, nil
		},
	}
	examDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	assessments := &mockAssessmentRepo{
		ListByStudentIDFunc: func(ctx context.Context, studentID string) ([]*models.AssessmentRecord, error) {
			return []*models.AssessmentRecord{
				{StudentID: studentID, Subject: "Maths", AssessmentType: models.AssessmentTypeMidterm, Percentage: 48.0, AttemptNumber: 2, Date: examDate},
			}, nil
		},
	}
	fees := &mockFeeRepo{
		ListByStudentIDFunc: func(ctx context.Context, studentID string) ([]*models.FeeRecord, error) {
			return []*models.FeeRecord{
				{StudentID: studentID, AmountDue: 50000, AmountPaid: 20000, Status: models.FeeStatusOverdue, Semester: 4},
			}, nil
		},
	}

	aggregator := NewStudentAggregator(students, attendance, assessments, fees, zap.NewNop())
	summary, err := aggregator.BuildSummary(context.Background(), "STU001")
	require.NoError(t, err)

	assert.Equal(t, "Asha Patel", summary.StudentInfo.Name)
	assert.Equal(t, "B.Tech CSE", summary.StudentInfo.Course)
	assert.Equal(t, 4, summary.StudentInfo.Semester)

	require.Len(t, summary.AttendanceSummary, 2)
	assert.Equal(t, "Maths", summary.AttendanceSummary[0].Subject)
	assert.Equal(t, 62.5, summary.AttendanceSummary[0].AttendancePercentage)

	require.Len(t, summary.AssessmentSummary, 1)
	assert.Equal(t, models.AssessmentTypeMidterm, summary.AssessmentSummary[0].Type)
	assert.Equal(t, 2, summary.AssessmentSummary[0].AttemptNumber)
	assert.Equal(t, "2026-02-10T00:00:00Z", summary.AssessmentSummary[0].Date)

	require.Len(t, summary.FeeSummary, 1)
	assert.Equal(t, models.FeeStatusOverdue, summary.FeeSummary[0].Status)
	assert.Equal(t, 50000.0, summary.FeeSummary[0].AmountDue)
}

func TestBuildSummaryEmptyCollections(t *testing.T) {
	aggregator := NewStudentAggregator(&mockStudentRepo{}, &mockAttendanceRepo{}, &mockAssessmentRepo{}, &mockFeeRepo{}, zap.NewNop())

	summary, err := aggregator.BuildSummary(context.Background(), "STU001")
	require.NoError(t, err)

	// A student with no records still yields a valid summary with empty lists.
	assert.NotNil(t, summary.AttendanceSummary)
	assert.Empty(t, summary.AttendanceSummary)
	assert.NotNil(t, summary.AssessmentSummary)
	assert.Empty(t, summary.AssessmentSummary)
	assert.NotNil(t, summary.FeeSummary)
	assert.Empty(t, summary.FeeSummary)
}

func TestBuildSummaryUnknownStudent(t *testing.T) {
	students := &mockStudentRepo{
		GetByStudentIDFunc: func(ctx context.Context, studentID string) (*models.Student, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	attendance := &mockAttendanceRepo{
		ListByStudentIDFunc: func(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
			t.Fatal("attendance should not be queried for an unknown student")
			return nil, nil
		},
	}

	aggregator := NewStudentAggregator(students, attendance, &mockAssessmentRepo{}, &mockFeeRepo{}, zap.NewNop())
	_, err := aggregator.BuildSummary(context.Background(), "NOPE")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBuildSummaryAggregationError(t *testing.T) {
	queryErr := errors.New("query failed")
	fees := &mockFeeRepo{
		ListByStudentIDFunc: func(ctx context.Context, studentID string) ([]*models.FeeRecord, error) {
			return nil, queryErr
		},
	}

	aggregator := NewStudentAggregator(&mockStudentRepo{}, &mockAttendanceRepo{}, &mockAssessmentRepo{}, fees, zap.NewNop())
	_, err := aggregator.BuildSummary(context.Background(), "STU001")
	require.ErrorIs(t, err, queryErr)
}
