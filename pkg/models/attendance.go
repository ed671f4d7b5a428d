package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one per-subject, per-period attendance row. The
// percentage is taken from the upload as-is and is not recomputed from
// attended/total.
type AttendanceRecord struct {
	ID                   uuid.UUID `json:"id"`
	StudentID            string    `json:"student_id"`
	Subject              string    `json:"subject"`
	TotalClasses         int       `json:"total_classes"`
	AttendedClasses      int       `json:"attended_classes"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	Month                string    `json:"month"`
	Year                 int       `json:"year"`
	CreatedAt            time.Time `json:"created_at"`
}
