package models

import (
	"time"

	"github.com/google/uuid"
)

// Discrete risk severity tags assigned per analysis.
const (
	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// Intervention priorities derived from the risk level. HIGH and LOW risk pass
// through verbatim; only MEDIUM is renamed to MODERATE. The domain framing
// given to the oracle names the top priority IMMEDIATE, but the implemented
// mapping uses the risk level string itself for HIGH.
const (
	PriorityHigh     = "HIGH"
	PriorityModerate = "MODERATE"
	PriorityLow      = "LOW"
)

// ValidRiskLevel reports whether level is one of the known severity tags.
func ValidRiskLevel(level string) bool {
	switch level {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// RiskAssessment is the structured verdict produced by one analysis
// invocation. Repeated analysis of the same student creates new rows, all
// retained; rows are never mutated or deleted.
type RiskAssessment struct {
	ID                   uuid.UUID `json:"id"`
	StudentID            string    `json:"student_id"`
	RiskLevel            string    `json:"risk_level"`
	RiskScore            float64   `json:"risk_score"`
	RiskFactors          []string  `json:"risk_factors"`
	Recommendations      []string  `json:"recommendations"`
	InterventionPriority string    `json:"intervention_priority"`
	AIAnalysis           string    `json:"ai_analysis"`
	AssessmentDate       time.Time `json:"assessment_date"`
}
