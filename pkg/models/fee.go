package models

import (
	"time"

	"github.com/google/uuid"
)

// Fee payment statuses. Caller-supplied: not derived from amounts or dates.
const (
	FeeStatusPaid    = "paid"
	FeeStatusPending = "pending"
	FeeStatusOverdue = "overdue"
)

// FeeRecord is one semester fee payment row.
type FeeRecord struct {
	ID         uuid.UUID  `json:"id"`
	StudentID  string     `json:"student_id"`
	AmountDue  float64    `json:"amount_due"`
	AmountPaid float64    `json:"amount_paid"`
	DueDate    time.Time  `json:"due_date"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	Status     string     `json:"status"`
	Semester   int        `json:"semester"`
	CreatedAt  time.Time  `json:"created_at"`
}
