package models

// StudentSummary is the normalized per-student document assembled from the
// attendance, assessment, and fee collections. It is the oracle's input:
// the serialized form is embedded directly in the analysis prompt, so field
// names here are part of the oracle contract.
type StudentSummary struct {
	StudentInfo       StudentInfo         `json:"student_info"`
	AttendanceSummary []AttendanceSummary `json:"attendance_summary"`
	AssessmentSummary []AssessmentSummary `json:"assessment_summary"`
	FeeSummary        []FeeSummary        `json:"fee_summary"`
}

// StudentInfo identifies the student inside the summary document.
type StudentInfo struct {
	Name     string `json:"name"`
	Course   string `json:"course"`
	Semester int    `json:"semester"`
}

// AttendanceSummary is one attendance row reshaped for the oracle.
type AttendanceSummary struct {
	Subject              string  `json:"subject"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	Month                string  `json:"month"`
	Year                 int     `json:"year"`
}

// AssessmentSummary is one assessment row reshaped for the oracle.
// Date is serialized to RFC 3339.
type AssessmentSummary struct {
	Subject       string  `json:"subject"`
	Type          string  `json:"type"`
	Percentage    float64 `json:"percentage"`
	AttemptNumber int     `json:"attempt_number"`
	Date          string  `json:"date"`
}

// FeeSummary is one fee row reshaped for the oracle.
type FeeSummary struct {
	AmountDue  float64 `json:"amount_due"`
	AmountPaid float64 `json:"amount_paid"`
	Status     string  `json:"status"`
	Semester   int     `json:"semester"`
}
