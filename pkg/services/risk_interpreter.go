package services

import (
	"strings"

	"github.com/edusight/retain-engine/pkg/models"
)

// RiskVerdict is the typed decision extracted from the oracle's free-form
// response text.
type RiskVerdict struct {
	Level    string
	Score    float64
	Priority string
}

// Placeholder factor/recommendation lists. The oracle is instructed to
// produce its own, but the stored assessment carries these fixed lists; the
// verbatim oracle text in ai_analysis is the authoritative detail.
var (
	placeholderRiskFactors     = []string{"Low attendance", "Declining scores", "Fee delays"}
	placeholderRecommendations = []string{"Immediate counseling", "Academic support", "Financial assistance"}
)

// InterpretRiskResponse classifies the oracle's raw text into a risk verdict.
// Deterministic, case-insensitive keyword scan, first match wins:
// "HIGH" anywhere wins over "LOW"; neither token defaults to MEDIUM (which
// also covers an explicit "MEDIUM" in the text). Pure function: tolerates
// arbitrary phrasing and has no failure path.
func InterpretRiskResponse(text string) RiskVerdict {
	upper := strings.ToUpper(text)

	level := models.RiskLevelMedium
	score := 50.0

	if strings.Contains(upper, models.RiskLevelHigh) {
		level = models.RiskLevelHigh
		score = 80.0
	} else if strings.Contains(upper, models.RiskLevelLow) {
		level = models.RiskLevelLow
		score = 25.0
	}

	return RiskVerdict{
		Level:    level,
		Score:    score,
		Priority: priorityForLevel(level),
	}
}

// priorityForLevel derives the intervention priority from the risk level.
// HIGH and LOW pass through verbatim; only MEDIUM is renamed to MODERATE.
func priorityForLevel(level string) string {
	switch level {
	case models.RiskLevelHigh:
		return models.PriorityHigh
	case models.RiskLevelLow:
		return models.PriorityLow
	default:
		return models.PriorityModerate
	}
}

// buildAssessmentDraft assembles the unpersisted risk assessment for one
// analysis invocation. The full oracle text is retained verbatim for
// audit/display.
func buildAssessmentDraft(studentID string, aiText string) *models.RiskAssessment {
	verdict := InterpretRiskResponse(aiText)
	return &models.RiskAssessment{
		StudentID:            studentID,
		RiskLevel:            verdict.Level,
		RiskScore:            verdict.Score,
		RiskFactors:          placeholderRiskFactors,
		Recommendations:      placeholderRecommendations,
		InterventionPriority: verdict.Priority,
		AIAnalysis:           aiText,
	}
}
