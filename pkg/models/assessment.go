package models

import (
	"time"

	"github.com/google/uuid"
)

// Assessment types as they appear in uploads.
const (
	AssessmentTypeQuiz       = "quiz"
	AssessmentTypeMidterm    = "midterm"
	AssessmentTypeFinal      = "final"
	AssessmentTypeAssignment = "assignment"
)

// AssessmentRecord is one scored assessment attempt. Percentage is a
// free-standing upload field, not derived from Score/MaxScore. AttemptNumber
// is caller-supplied and defaults to 1; attempts are not validated to be
// sequential or unique.
type AssessmentRecord struct {
	ID             uuid.UUID `json:"id"`
	StudentID      string    `json:"student_id"`
	Subject        string    `json:"subject"`
	AssessmentType string    `json:"assessment_type"`
	Score          float64   `json:"score"`
	MaxScore       float64   `json:"max_score"`
	Percentage     float64   `json:"percentage"`
	Date           time.Time `json:"date"`
	AttemptNumber  int       `json:"attempt_number"`
	CreatedAt      time.Time `json:"created_at"`
}
