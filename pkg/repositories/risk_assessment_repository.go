package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edusight/retain-engine/pkg/database"
	"github.com/edusight/retain-engine/pkg/models"
)

// RiskAssessmentRepository provides data access for risk assessments.
// Assessments are append-only: created once per analysis invocation, never
// mutated, never deleted.
type RiskAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RiskAssessment) error
	List(ctx context.Context) ([]*models.RiskAssessment, error)
	CountByLevel(ctx context.Context) (models.RiskDistribution, error)
}

type riskAssessmentRepository struct {
	db *database.DB
}

func NewRiskAssessmentRepository(db *database.DB) RiskAssessmentRepository {
	return &riskAssessmentRepository{db: db}
}

var _ RiskAssessmentRepository = (*riskAssessmentRepository)(nil)

func (r *riskAssessmentRepository) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO risk_assessments (
			student_id, risk_level, risk_score, risk_factors,
			recommendations, intervention_priority, ai_analysis
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, assessment_date`,
		assessment.StudentID, assessment.RiskLevel, assessment.RiskScore,
		assessment.RiskFactors, assessment.Recommendations,
		assessment.InterventionPriority, assessment.AIAnalysis,
	).Scan(&assessment.ID, &assessment.AssessmentDate)

	if err != nil {
		return fmt.Errorf("failed to create risk assessment: %w", err)
	}
	return nil
}

// List returns all risk assessments newest-first. "Current" risk for a
// student is whichever of its rows sorts first.
func (r *riskAssessmentRepository) List(ctx context.Context) ([]*models.RiskAssessment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, risk_level, risk_score, risk_factors,
		       recommendations, intervention_priority, ai_analysis, assessment_date
		FROM risk_assessments
		ORDER BY assessment_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.RiskAssessment
	for rows.Next() {
		a, err := scanRiskAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk assessments: %w", err)
	}

	return assessments, nil
}

func (r *riskAssessmentRepository) CountByLevel(ctx context.Context) (models.RiskDistribution, error) {
	var dist models.RiskDistribution
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE risk_level = $1),
			COUNT(*) FILTER (WHERE risk_level = $2),
			COUNT(*) FILTER (WHERE risk_level = $3)
		FROM risk_assessments`,
		models.RiskLevelHigh, models.RiskLevelMedium, models.RiskLevelLow,
	).Scan(&dist.High, &dist.Medium, &dist.Low)
	if err != nil {
		return models.RiskDistribution{}, fmt.Errorf("failed to count risk assessments: %w", err)
	}
	return dist, nil
}

func scanRiskAssessment(rows pgx.Rows) (*models.RiskAssessment, error) {
	a := &models.RiskAssessment{}
	err := rows.Scan(
		&a.ID, &a.StudentID, &a.RiskLevel, &a.RiskScore, &a.RiskFactors,
		&a.Recommendations, &a.InterventionPriority, &a.AIAnalysis, &a.AssessmentDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan risk assessment: %w", err)
	}
	return a, nil
}
