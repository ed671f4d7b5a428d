package models

// RiskDistribution counts risk assessment rows by level. A student analyzed
// five times contributes five counts.
type RiskDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DashboardOverview holds the read-side aggregate counts. Recomputed on
// every call; empty collections yield zeros.
type DashboardOverview struct {
	TotalStudents       int              `json:"total_students"`
	RiskDistribution    RiskDistribution `json:"risk_distribution"`
	UnreadNotifications int              `json:"unread_notifications"`
}

// AtRiskStudent joins a risk assessment with its student profile for the
// at-risk listing. AssessmentDate is serialized to RFC 3339.
type AtRiskStudent struct {
	StudentID            string   `json:"student_id"`
	Name                 string   `json:"name"`
	Course               string   `json:"course"`
	RiskLevel            string   `json:"risk_level"`
	RiskScore            float64  `json:"risk_score"`
	RiskFactors          []string `json:"risk_factors"`
	InterventionPriority string   `json:"intervention_priority"`
	AssessmentDate       string   `json:"assessment_date"`
}
