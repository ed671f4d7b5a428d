package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a roster profile uploaded by the institution. StudentID is the
// institution-issued identifier, distinct from the row ID; records are
// immutable once uploaded and re-uploads create duplicate rows.
type Student struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Course    string    `json:"course"`
	Semester  int       `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
}
