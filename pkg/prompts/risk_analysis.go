// Package prompts builds the natural-language prompts sent to the reasoning
// service.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/edusight/retain-engine/pkg/models"
)

// riskAnalysisSystemMessage frames the oracle as an educational data analyst
// and fixes the response format and heuristic thresholds it should apply.
// The response interpreter depends on the Risk Level line being present, so
// the format block here is part of the pipeline contract.
const riskAnalysisSystemMessage = `You are an AI assistant specialized in educational data analysis and dropout risk prediction.
Your role is to analyze student data including attendance, test scores, fee payments, and academic attempts to predict dropout risk.

Provide risk assessments in the following format:
- Risk Level: LOW/MEDIUM/HIGH
- Risk Score: 0-100
- Key Risk Factors: List the main concerns
- Recommendations: Specific counseling recommendations
- Intervention Priority: IMMEDIATE/MODERATE/LOW

Consider these factors:
- Attendance below 75% = HIGH risk factor
- Declining test scores = MEDIUM-HIGH risk factor
- Multiple failed attempts per subject = HIGH risk factor
- Fee payment delays = MEDIUM risk factor
- Combination of factors increases overall risk significantly`

// BuildRiskAnalysisSystemMessage returns the fixed system framing for
// dropout-risk analysis.
func BuildRiskAnalysisSystemMessage() string {
	return riskAnalysisSystemMessage
}

// BuildRiskAnalysisPrompt renders the normalized student summary into the
// analysis prompt. The summary is embedded as indented JSON so the oracle
// sees the same field names the summary document defines.
func BuildRiskAnalysisPrompt(summary *models.StudentSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize student summary: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString("Analyze this student's data for dropout risk:\n\n")
	prompt.WriteString("Student Data: ")
	prompt.Write(data)
	prompt.WriteString("\n\nPlease provide a comprehensive risk assessment following the specified format.\n")

	return prompt.String(), nil
}
