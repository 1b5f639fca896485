// Package score turns a mined analysis into a multi-dimensional
// investment verdict: four evidence-based dimension scores, a risk
// assessment that discounts them, a weighted overall score with a
// confidence interval, and a categorical recommendation.
package score

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
)

// ScoringError wraps a failure inside the engine.
type ScoringError struct {
	Msg string
	Err error
}

func (e *ScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring: %s: %v", e.Msg, e.Err)
	}
	return "scoring: " + e.Msg
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// Engine is the scoring engine. Stateless beyond its config; safe for
// concurrent use.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultConfig().Weights
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultConfig().Thresholds
	}
	if cfg.MaxRiskReduction == 0 {
		cfg.MaxRiskReduction = DefaultConfig().MaxRiskReduction
	}
	if cfg.MaxConfidenceMargin == 0 {
		cfg.MaxConfidenceMargin = DefaultConfig().MaxConfidenceMargin
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Score computes the full verdict for one analyzed document. fullText
// is the extracted document text, consulted for product-stage signal.
// Identical inputs always produce the identical result.
func (e *Engine) Score(ctx context.Context, analysis *analyze.AnalysisResult, fullText string) (*ScoreResult, error) {
	if analysis == nil {
		return nil, &ScoringError{Msg: "nil analysis"}
	}
	e.logger.InfoContext(ctx, "starting investment score calculation")

	rawFinancial := financialScore(analysis)
	rawMarket := marketScore(analysis)
	rawTeam := teamScore(analysis)
	rawProduct := productScore(analysis, fullText)

	risks := assessRisks(analysis)
	riskScore := risks.OverallRiskScore

	// higher risk shaves up to MaxRiskReduction off every dimension
	adjustment := 1 - (riskScore/100)*e.cfg.MaxRiskReduction
	adjFinancial := rawFinancial * adjustment
	adjMarket := rawMarket * adjustment
	adjTeam := rawTeam * adjustment
	adjProduct := rawProduct * adjustment

	overall := adjFinancial*e.cfg.Weights.Financial +
		adjMarket*e.cfg.Weights.Market +
		adjTeam*e.cfg.Weights.Team +
		adjProduct*e.cfg.Weights.Product

	lower, upper := e.confidenceInterval(overall, analysis.ConfidenceScore)
	recommendation := e.recommend(overall)

	result := &ScoreResult{
		FinancialScore:  round2(adjFinancial),
		MarketScore:     round2(adjMarket),
		TeamScore:       round2(adjTeam),
		ProductScore:    round2(adjProduct),
		RiskScore:       round2(riskScore),
		OverallScore:    round2(overall),
		ConfidenceLower: lower,
		ConfidenceUpper: upper,
		Recommendation:  recommendation,
		Reasoning: Reasoning{
			FinancialReasoning: financialReasoning(analysis, rawFinancial),
			MarketReasoning:    marketReasoning(analysis, rawMarket),
			TeamReasoning:      teamReasoning(analysis, rawTeam),
			ProductReasoning:   productReasoning(analysis, rawProduct),
			RiskAssessment:     risks,
			KeyStrengths: keyStrengths(analysis, map[string]float64{
				"financial": adjFinancial,
				"market":    adjMarket,
				"team":      adjTeam,
				"product":   adjProduct,
			}),
			KeyConcerns: keyConcerns(risks, map[string]float64{
				"financial": rawFinancial,
				"market":    rawMarket,
				"team":      rawTeam,
				"product":   rawProduct,
			}),
		},
	}

	e.logger.InfoContext(ctx, "investment score calculation completed",
		"overall_score", result.OverallScore,
		"recommendation", string(result.Recommendation))
	return result, nil
}

// recommend maps the overall score onto the recommendation ladder.
// Thresholds are inclusive lower bounds.
func (e *Engine) recommend(overall float64) constants.Recommendation {
	switch {
	case overall >= e.cfg.Thresholds.StrongBuy:
		return constants.RecommendationStrongBuy
	case overall >= e.cfg.Thresholds.Buy:
		return constants.RecommendationBuy
	case overall >= e.cfg.Thresholds.Hold:
		return constants.RecommendationHold
	default:
		return constants.RecommendationPass
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
