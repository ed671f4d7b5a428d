package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/services"
)

// NotificationHandler handles notification listing and acknowledgement.
type NotificationHandler struct {
	notifications services.NotificationService
	logger        *zap.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifications services.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		logger:        logger,
	}
}

// RegisterRoutes registers the notification handler's routes on the given mux.
func (h *NotificationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notifications", h.List)
	mux.HandleFunc("PUT /api/notifications/{id}/read", h.MarkRead)
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListRecent(r.Context())
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Error fetching notifications"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if notifications == nil {
		notifications = make([]*models.Notification, 0)
	}

	if err := WriteJSON(w, http.StatusOK, notifications); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		if werr := ErrorResponse(w, http.StatusBadRequest, "invalid_notification_id", "notification id must be a UUID"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if werr := ErrorResponse(w, http.StatusNotFound, "notification_not_found", "Notification not found"); werr != nil {
				h.logger.Error("Failed to write error response", zap.Error(werr))
			}
			return
		}
		h.logger.Error("Failed to mark notification read", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Error updating notification"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
