package score

import "github.com/nnamdi-udeh/dealdesk/internal/analyze"

// assessRisks rescores the mined risk factors by severity and averages
// them per category. Categories with no signal stay at the neutral 50.
func assessRisks(a *analyze.AnalysisResult) RiskAssessment {
	assessment := RiskAssessment{
		MarketRisk:      50,
		FinancialRisk:   50,
		OperationalRisk: 50,
		RegulatoryRisk:  50,
		TechnologyRisk:  50,
		TeamRisk:        50,
		RiskFactors:     []AssessedRisk{},
	}

	perCategory := map[string][]float64{}
	for _, risk := range a.RiskFactors {
		category := risk.Category
		if category == "" {
			category = "operational"
		}
		s := severityScore(risk.Severity)
		perCategory[category] = append(perCategory[category], s)

		assessment.RiskFactors = append(assessment.RiskFactors, AssessedRisk{
			Category:    category,
			Description: risk.Context,
			Severity:    risk.Severity,
			Score:       s,
		})
	}

	assign := func(target *float64, category string) {
		scores := perCategory[category]
		if len(scores) == 0 {
			return
		}
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		*target = min(sum/float64(len(scores)), 100)
	}
	assign(&assessment.MarketRisk, "market")
	assign(&assessment.FinancialRisk, "financial")
	assign(&assessment.OperationalRisk, "operational")
	assign(&assessment.RegulatoryRisk, "regulatory")
	assign(&assessment.TechnologyRisk, "technology")
	assign(&assessment.TeamRisk, "team")

	assessment.OverallRiskScore = (assessment.MarketRisk +
		assessment.FinancialRisk +
		assessment.OperationalRisk +
		assessment.RegulatoryRisk +
		assessment.TechnologyRisk +
		assessment.TeamRisk) / 6

	return assessment
}

// confidenceInterval widens around the overall score as analysis
// confidence drops, clamped to [0, 100].
func (e *Engine) confidenceInterval(score, confidence float64) (float64, float64) {
	margin := (1 - confidence) * e.cfg.MaxConfidenceMargin
	lower := max(0, score-margin)
	upper := min(100, score+margin)
	return round2(lower), round2(upper)
}
