package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/llm"
	"github.com/edusight/retain-engine/pkg/models"
	"github.com/edusight/retain-engine/pkg/prompts"
	"github.com/edusight/retain-engine/pkg/repositories"
	"github.com/edusight/retain-engine/pkg/retry"
)

// RiskAnalysisService runs the full analysis pipeline for one student:
// aggregate records, consult the oracle, interpret the response, persist the
// assessment, and apply the alerting policy.
type RiskAnalysisService interface {
	AnalyzeStudent(ctx context.Context, studentID string) (*models.RiskAssessment, error)
}

type riskAnalysisService struct {
	aggregator  StudentAggregator
	oracle      llm.OracleClient
	assessments repositories.RiskAssessmentRepository
	alerts      AlertPolicy
	retryCfg    *retry.Config
	timeout     time.Duration
	logger      *zap.Logger
}

// NewRiskAnalysisService wires the analysis pipeline. retryCfg may be nil to
// use retry defaults; timeout bounds each individual oracle call.
func NewRiskAnalysisService(
	aggregator StudentAggregator,
	oracle llm.OracleClient,
	assessments repositories.RiskAssessmentRepository,
	alerts AlertPolicy,
	retryCfg *retry.Config,
	timeout time.Duration,
	logger *zap.Logger,
) RiskAnalysisService {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &riskAnalysisService{
		aggregator:  aggregator,
		oracle:      oracle,
		assessments: assessments,
		alerts:      alerts,
		retryCfg:    retryCfg,
		timeout:     timeout,
		logger:      logger.Named("risk-analysis"),
	}
}

var _ RiskAnalysisService = (*riskAnalysisService)(nil)

// AnalyzeStudent performs the sequential analysis chain. Nothing is persisted
// until a complete, successfully interpreted assessment exists: a failure in
// aggregation or oracle invocation aborts the entire analysis.
func (s *riskAnalysisService) AnalyzeStudent(ctx context.Context, studentID string) (*models.RiskAssessment, error) {
	summary, err := s.aggregator.BuildSummary(ctx, studentID)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.BuildRiskAnalysisPrompt(summary)
	if err != nil {
		return nil, err
	}
	systemMessage := prompts.BuildRiskAnalysisSystemMessage()

	aiText, err := s.consultOracle(ctx, prompt, systemMessage)
	if err != nil {
		s.logger.Error("Oracle analysis failed",
			zap.String("student_id", studentID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOracleUnavailable, err)
	}

	assessment := buildAssessmentDraft(studentID, aiText)
	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info("Risk assessment stored",
		zap.String("student_id", studentID),
		zap.String("risk_level", assessment.RiskLevel),
		zap.Float64("risk_score", assessment.RiskScore))

	// The assessment is already durable at this point; an alert failure does
	// not roll it back.
	if _, err := s.alerts.Evaluate(ctx, summary.StudentInfo.Name, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

// consultOracle performs one oracle round trip with a bounded per-call
// timeout, retrying transient failures with backoff. Permanent failures
// (auth, unknown model) surface immediately.
func (s *riskAnalysisService) consultOracle(ctx context.Context, prompt, systemMessage string) (string, error) {
	var aiText string
	err := retry.DoIfRetryable(ctx, s.retryCfg, func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.oracle.Analyze(callCtx, prompt, systemMessage)
		if err != nil {
			return err
		}
		aiText = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return aiText, nil
}
