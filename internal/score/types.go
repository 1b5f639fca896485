package score

import "github.com/nnamdi-udeh/dealdesk/constants"

// AssessedRisk is one mined risk factor rescored for the assessment.
type AssessedRisk struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Score       float64 `json:"score"`
}

// RiskAssessment holds the per-category risk scores (50 = neutral, no
// signal) and their mean.
type RiskAssessment struct {
	MarketRisk       float64        `json:"market_risk"`
	FinancialRisk    float64        `json:"financial_risk"`
	OperationalRisk  float64        `json:"operational_risk"`
	RegulatoryRisk   float64        `json:"regulatory_risk"`
	TechnologyRisk   float64        `json:"technology_risk"`
	TeamRisk         float64        `json:"team_risk"`
	OverallRiskScore float64        `json:"overall_risk_score"`
	RiskFactors      []AssessedRisk `json:"risk_factors"`
}

// Reasoning is the human-readable breakdown persisted with each
// evaluation.
type Reasoning struct {
	FinancialReasoning string         `json:"financial_reasoning"`
	MarketReasoning    string         `json:"market_reasoning"`
	TeamReasoning      string         `json:"team_reasoning"`
	ProductReasoning   string         `json:"product_reasoning"`
	RiskAssessment     RiskAssessment `json:"risk_assessment"`
	KeyStrengths       []string       `json:"key_strengths"`
	KeyConcerns        []string       `json:"key_concerns"`
}

// ScoreResult is the engine's complete verdict. Dimension scores are
// already risk-adjusted; the confidence interval bounds the overall
// score within [0, 100].
type ScoreResult struct {
	FinancialScore  float64                  `json:"financial_score"`
	MarketScore     float64                  `json:"market_score"`
	TeamScore       float64                  `json:"team_score"`
	ProductScore    float64                  `json:"product_score"`
	RiskScore       float64                  `json:"risk_score"`
	OverallScore    float64                  `json:"overall_score"`
	ConfidenceLower float64                  `json:"confidence_lower"`
	ConfidenceUpper float64                  `json:"confidence_upper"`
	Recommendation  constants.Recommendation `json:"recommendation"`
	Reasoning       Reasoning                `json:"reasoning"`
}
