package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/services"
)

// Function-field mocks for the service interfaces.

type mockAnalysisService struct {
	AnalyzeStudentFunc func(ctx context.Context, studentID string) (*models.RiskAssessment, error)

	Calls int
}

var _ services.RiskAnalysisService = (*mockAnalysisService)(nil)

func (m *mockAnalysisService) AnalyzeStudent(ctx context.Context, studentID string) (*models.RiskAssessment, error) {
	m.Calls++
	if m.AnalyzeStudentFunc != nil {
		return m.AnalyzeStudentFunc(ctx, studentID)
	}
	return &models.RiskAssessment{StudentID: studentID, RiskLevel: models.RiskLevelMedium}, nil
}

type mockIngestService struct {
	ImportStudentsFunc    func(ctx context.Context, students []*models.Student) (int, error)
	ImportAttendanceFunc  func(ctx context.Context, records []*models.AttendanceRecord) (int, error)
	ImportAssessmentsFunc func(ctx context.Context, records []*models.AssessmentRecord) (int, error)
	ImportFeesFunc        func(ctx context.Context, records []*models.FeeRecord) (int, error)
}

var _ services.IngestService = (*mockIngestService)(nil)

func (m *mockIngestService) ImportStudents(ctx context.Context, students []*models.Student) (int, error) {
	if m.ImportStudentsFunc != nil {
		return m.ImportStudentsFunc(ctx, students)
	}
	return len(students), nil
}

func (m *mockIngestService) ImportAttendance(ctx context.Context, records []*models.AttendanceRecord) (int, error) {
	if m.ImportAttendanceFunc != nil {
		return m.ImportAttendanceFunc(ctx, records)
	}
	return len(records), nil
}

func (m *mockIngestService) ImportAssessments(ctx context.Context, records []*models.AssessmentRecord) (int, error) {
	if m.ImportAssessmentsFunc != nil {
		return m.ImportAssessmentsFunc(ctx, records)
	}
	return len(records), nil
}

func (m *mockIngestService) ImportFees(ctx context.Context, records []*models.FeeRecord) (int, error) {
	if m.ImportFeesFunc != nil {
		return m.ImportFeesFunc(ctx, records)
	}
	return len(records), nil
}

type mockDashboardService struct {
	OverviewFunc       func(ctx context.Context) (*models.DashboardOverview, error)
	AtRiskStudentsFunc func(ctx context.Context) ([]*models.AtRiskStudent, error)
}

var _ services.DashboardService = (*mockDashboardService)(nil)

func (m *mockDashboardService) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(ctx)
	}
	return &models.DashboardOverview{}, nil
}

func (m *mockDashboardService) AtRiskStudents(ctx context.Context) ([]*models.AtRiskStudent, error) {
	if m.AtRiskStudentsFunc != nil {
		return m.AtRiskStudentsFunc(ctx)
	}
	return nil, nil
}

type mockNotificationService struct {
	ListRecentFunc func(ctx context.Context) ([]*models.Notification, error)
	MarkReadFunc   func(ctx context.Context, id uuid.UUID) error
}

var _ services.NotificationService = (*mockNotificationService)(nil)

func (m *mockNotificationService) ListRecent(ctx context.Context) ([]*models.Notification, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}
