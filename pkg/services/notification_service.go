package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/repositories"
)

// Number of notifications returned by the recent listing.
const recentNotificationLimit = 50

// NotificationService provides the read/acknowledge surface over
// notifications.
type NotificationService interface {
	ListRecent(ctx context.Context) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	repo   repositories.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(repo repositories.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger.Named("notifications"),
	}
}

var _ NotificationService = (*notificationService)(nil)

func (s *notificationService) ListRecent(ctx context.Context) ([]*models.Notification, error) {
	return s.repo.ListRecent(ctx, recentNotificationLimit)
}

// MarkRead acknowledges a notification. The read flag is monotonic: it never
// reverts to unread.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		s.logger.Error("Failed to mark notification read",
			zap.String("notification_id", id.String()),
			zap.Error(err))
		return err
	}
	return nil
}
