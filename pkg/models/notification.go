package models

import (
	"time"

	"github.com/google/uuid"
)

// The alerting policy emits exactly one kind of notification.
const (
	NotificationTypeRiskAlert = "risk_alert"

	NotificationPriorityHigh = "high"
)

// Notification is an alert emitted by the alerting policy. IsRead flips
// monotonically false to true via the acknowledgement operation and never
// reverts.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"student_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
