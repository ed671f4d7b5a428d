package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// Function-field mocks for the repository interfaces. Set a field to control
// behavior; unset fields return empty results.

type mockStudentRepo struct {
	GetByStudentIDFunc func(ctx context.Context, studentID string) (*models.Student, error)
	ListFunc           func(ctx context.Context) ([]*models.Student, error)
	CountFunc          func(ctx context.Context) (int, error)
	BulkInsertFunc     func(ctx context.Context, students []*models.Student) error

	GetCalls int
}

var _ repositories.StudentRepository = (*mockStudentRepo)(nil)

func (m *mockStudentRepo) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	m.GetCalls++
	if m.GetByStudentIDFunc != nil {
		return m.GetByStudentIDFunc(ctx, studentID)
	}
	return &models.Student{StudentID: studentID, Name: "Test Student"}, nil
}

func (m *mockStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStudentRepo) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockStudentRepo) BulkInsert(ctx context.Context, students []*models.Student) error {
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, students)
	}
	return nil
}

type mockAttendanceRepo struct {
	ListByStudentIDFunc func(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	ListFunc            func(ctx context.Context) ([]*models.AttendanceRecord, error)
	BulkInsertFunc      func(ctx context.Context, records []*models.AttendanceRecord) error
}

var _ repositories.AttendanceRepository = (*mockAttendanceRepo)(nil)

func (m *mockAttendanceRepo) ListByStudentID(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	if m.ListByStudentIDFunc != nil {
		return m.ListByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]*models.AttendanceRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) BulkInsert(ctx context.Context, records []*models.AttendanceRecord) error {
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, records)
	}
	return nil
}

type mockAssessmentRepo struct {
	ListByStudentIDFunc func(ctx context.Context, studentID string) ([]*models.AssessmentRecord, error)
	ListFunc            func(ctx context.Context) ([]*models.AssessmentRecord, error)
	BulkInsertFunc      func(ctx context.Context, records []*models.AssessmentRecord) error
}

var _ repositories.AssessmentRepository = (*mockAssessmentRepo)(nil)

func (m *mockAssessmentRepo) ListByStudentID(ctx context.Context, studentID string) ([]*models.AssessmentRecord, error) {
	if m.ListByStudentIDFunc != nil {
		return m.ListByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockAssessmentRepo) List(ctx context.Context) ([]*models.AssessmentRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAssessmentRepo) BulkInsert(ctx context.Context, records []*models.AssessmentRecord) error {
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, records)
	}
	return nil
}

type mockFeeRepo struct {
	ListByStudentIDFunc func(ctx context.Context, studentID string) ([]*models.FeeRecord, error)
	ListFunc            func(ctx context.Context) ([]*models.FeeRecord, error)
	BulkInsertFunc      func(ctx context.Context, records []*models.FeeRecord) error
}

var _ repositories.FeeRepository = (*mockFeeRepo)(nil)

func (m *mockFeeRepo) ListByStudentID(ctx context.Context, studentID string) ([]*models.FeeRecord, error) {
	if m.ListByStudentIDFunc != nil {
		return m.ListByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockFeeRepo) List(ctx context.Context) ([]*models.FeeRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeeRepo) BulkInsert(ctx context.Context, records []*models.FeeRecord) error {
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, records)
	}
	return nil
}

type mockRiskAssessmentRepo struct {
	CreateFunc       func(ctx context.Context, assessment *models.RiskAssessment) error
	ListFunc         func(ctx context.Context) ([]*models.RiskAssessment, error)
	CountByLevelFunc func(ctx context.Context) (models.RiskDistribution, error)

	Created []*models.RiskAssessment
}

var _ repositories.RiskAssessmentRepository = (*mockRiskAssessmentRepo)(nil)

func (m *mockRiskAssessmentRepo) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, assessment); err != nil {
			return err
		}
	}
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	m.Created = append(m.Created, assessment)
	return nil
}

func (m *mockRiskAssessmentRepo) List(ctx context.Context) ([]*models.RiskAssessment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRiskAssessmentRepo) CountByLevel(ctx context.Context) (models.RiskDistribution, error) {
	if m.CountByLevelFunc != nil {
		return m.CountByLevelFunc(ctx)
	}
	return models.RiskDistribution{}, nil
}

type mockNotificationRepo struct {
	CreateFunc      func(ctx context.Context, notification *models.Notification) error
	ListRecentFunc  func(ctx context.Context, limit int) ([]*models.Notification, error)
	CountUnreadFunc func(ctx context.Context) (int, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) error

	Created []*models.Notification
}

var _ repositories.NotificationRepository = (*mockNotificationRepo)(nil)

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, notification); err != nil {
			return err
		}
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	m.Created = append(m.Created, notification)
	return nil
}

func (m *mockNotificationRepo) ListRecent(ctx context.Context, limit int) ([]*models.Notification, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context) (int, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx)
	}
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}
