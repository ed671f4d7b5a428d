package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// AlertPolicy decides whether a persisted risk assessment warrants a
// notification.
type AlertPolicy interface {
	// Evaluate emits a risk_alert notification if and only if the
	// assessment's risk level is HIGH. Returns the created notification, or
	// nil when the policy decides not to alert. No suppression of duplicate
	// alerts across repeated runs.
	Evaluate(ctx context.Context, studentName string, assessment *models.RiskAssessment) (*models.Notification, error)
}

type alertPolicy struct {
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

func NewAlertPolicy(notifications repositories.NotificationRepository, logger *zap.Logger) AlertPolicy {
	return &alertPolicy{
		notifications: notifications,
		logger:        logger.Named("alert-policy"),
	}
}

var _ AlertPolicy = (*alertPolicy)(nil)

func (p *alertPolicy) Evaluate(ctx context.Context, studentName string, assessment *models.RiskAssessment) (*models.Notification, error) {
	if assessment.RiskLevel != models.RiskLevelHigh {
		return nil, nil
	}

	notification := &models.Notification{
		StudentID: assessment.StudentID,
		Message:   fmt.Sprintf("HIGH RISK ALERT: %s requires immediate intervention", studentName),
		Type:      models.NotificationTypeRiskAlert,
		Priority:  models.NotificationPriorityHigh,
	}

	if err := p.notifications.Create(ctx, notification); err != nil {
		p.logger.Error("Failed to create risk alert notification",
			zap.String("student_id", assessment.StudentID),
			zap.Error(err))
		return nil, fmt.Errorf("create risk alert: %w", err)
	}

	p.logger.Info("Risk alert created",
		zap.String("student_id", assessment.StudentID),
		zap.String("notification_id", notification.ID.String()))

	return notification, nil
}
