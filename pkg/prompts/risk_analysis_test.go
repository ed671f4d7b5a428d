package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusight/retain-engine/pkg/models"
)

func TestBuildRiskAnalysisSystemMessage(t *testing.T) {
	msg := BuildRiskAnalysisSystemMessage()

	assert.Contains(t, msg, "dropout risk prediction")
	assert.Contains(t, msg, "Risk Level: LOW/MEDIUM/HIGH")
	assert.Contains(t, msg, "Attendance below 75% = HIGH risk factor")
	assert.Contains(t, msg, "Intervention Priority: IMMEDIATE/MODERATE/LOW")
}

func TestBuildRiskAnalysisPrompt(t *testing.T) {
	summary := &models.StudentSummary{
		StudentInfo: models.StudentInfo{Name: "Asha Patel", Course: "B.Tech CSE", Semester: 4},
		AttendanceSummary: []models.AttendanceSummary{
			{Subject: "Maths", AttendancePercentage: 62.5, Month: "January", Year: 2026},
		},
		AssessmentSummary: []models.AssessmentSummary{
			{Subject: "Maths", Type: "midterm", Percentage: 48, AttemptNumber: 2, Date: "2026-02-10T00:00:00Z"},
		},
		FeeSummary: []models.FeeSummary{
			{AmountDue: 50000, AmountPaid: 20000, Status: "overdue", Semester: 4},
		},
	}

	prompt, err := BuildRiskAnalysisPrompt(summary)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Analyze this student's data for dropout risk:"))
	assert.Contains(t, prompt, "Student Data: ")
	assert.Contains(t, prompt, "comprehensive risk assessment")

	// The embedded JSON carries the summary document's field names.
	assert.Contains(t, prompt, `"student_info"`)
	assert.Contains(t, prompt, `"attendance_summary"`)
	assert.Contains(t, prompt, `"assessment_summary"`)
	assert.Contains(t, prompt, `"fee_summary"`)
	assert.Contains(t, prompt, `"Asha Patel"`)
	assert.Contains(t, prompt, `"attempt_number": 2`)
}

func TestBuildRiskAnalysisPromptEmptySummary(t *testing.T) {
	summary := &models.StudentSummary{
		StudentInfo:       models.StudentInfo{Name: "Ravi Kumar"},
		AttendanceSummary: []models.AttendanceSummary{},
		AssessmentSummary: []models.AssessmentSummary{},
		FeeSummary:        []models.FeeSummary{},
	}

	prompt, err := BuildRiskAnalysisPrompt(summary)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"attendance_summary": []`)
	assert.Contains(t, prompt, `"fee_summary": []`)
}
