package score

import (
	"fmt"
	"strings"

	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
)

func financialReasoning(a *analyze.AnalysisResult, score float64) string {
	var reasons []string
	if len(a.FinancialMetrics.Revenue) > 0 {
		reasons = append(reasons, "Revenue data available")
	}
	if len(a.FinancialMetrics.Funding) > 0 {
		reasons = append(reasons, "Funding information present")
	}
	if len(a.FinancialMetrics.Valuation) > 0 {
		reasons = append(reasons, "Valuation metrics identified")
	}
	if a.BusinessInsights.BusinessModel != "" {
		reasons = append(reasons, "Business model: "+a.BusinessInsights.BusinessModel)
	}

	switch {
	case score >= 70:
		return "Strong financial indicators: " + strings.Join(reasons, ", ")
	case score >= 50:
		return "Moderate financial health: " + orDefault(reasons, "Limited financial data")
	default:
		return "Financial concerns: " + orDefault(reasons, "Insufficient financial information")
	}
}

func marketReasoning(a *analyze.AnalysisResult, score float64) string {
	var reasons []string
	if len(a.MarketAnalysis.MarketSize) > 0 {
		reasons = append(reasons, "Market size data available")
	}
	if n := len(a.MarketAnalysis.Competitors); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d competitors identified", n))
	}

	switch {
	case score >= 70:
		return "Strong market opportunity: " + strings.Join(reasons, ", ")
	case score >= 50:
		return "Moderate market potential: " + orDefault(reasons, "Limited market data")
	default:
		return "Market concerns: " + orDefault(reasons, "Insufficient market information")
	}
}

func teamReasoning(a *analyze.AnalysisResult, score float64) string {
	var reasons []string
	if n := len(a.TeamInformation.Founders); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d founder(s) identified", n))
	}
	if a.TeamInformation.TeamSize > 0 {
		reasons = append(reasons, fmt.Sprintf("Team size: %d", a.TeamInformation.TeamSize))
	}

	switch {
	case score >= 70:
		return "Strong team: " + strings.Join(reasons, ", ")
	case score >= 50:
		return "Adequate team: " + orDefault(reasons, "Limited team information")
	default:
		return "Team concerns: " + orDefault(reasons, "Insufficient team information")
	}
}

func productReasoning(a *analyze.AnalysisResult, score float64) string {
	var reasons []string
	if len(a.BusinessInsights.ValueProposition) > 0 {
		reasons = append(reasons, "Value proposition identified")
	}
	if len(a.BusinessInsights.CompetitiveAdvantages) > 0 {
		reasons = append(reasons, "Competitive advantages noted")
	}

	switch {
	case score >= 70:
		return "Strong product-market fit: " + strings.Join(reasons, ", ")
	case score >= 50:
		return "Moderate product potential: " + orDefault(reasons, "Basic product information")
	default:
		return "Product concerns: " + orDefault(reasons, "Limited product information")
	}
}

// keyStrengths lists high-scoring dimensions (risk-adjusted) followed
// by concrete evidence from the analysis, capped at five.
func keyStrengths(a *analyze.AnalysisResult, adjusted map[string]float64) []string {
	strengths := []string{}

	for _, dimension := range dimensionOrder {
		if s := adjusted[dimension]; s >= 75 {
			strengths = append(strengths, fmt.Sprintf("Strong %s performance (%.1f/100)", dimension, s))
		}
	}

	if len(a.FinancialMetrics.Revenue) > 0 {
		strengths = append(strengths, "Revenue generation demonstrated")
	}
	if len(a.FinancialMetrics.Funding) > 0 {
		strengths = append(strengths, "Secured funding")
	}
	if len(a.MarketAnalysis.MarketSize) > 0 {
		strengths = append(strengths, "Large market opportunity")
	}
	if len(a.TeamInformation.Founders) >= 2 {
		strengths = append(strengths, "Co-founder team")
	}

	return capList(strengths, 5)
}

// keyConcerns lists weak dimensions (unadjusted scores), high-risk
// categories, and the top high-severity risk factors, capped at five.
func keyConcerns(risks RiskAssessment, raw map[string]float64) []string {
	concerns := []string{}

	for _, dimension := range dimensionOrder {
		if s := raw[dimension]; s <= 40 {
			concerns = append(concerns, fmt.Sprintf("Weak %s indicators (%.1f/100)", dimension, s))
		}
	}

	categoryRisks := []struct {
		name  string
		score float64
	}{
		{"market", risks.MarketRisk},
		{"financial", risks.FinancialRisk},
		{"operational", risks.OperationalRisk},
		{"regulatory", risks.RegulatoryRisk},
		{"technology", risks.TechnologyRisk},
		{"team", risks.TeamRisk},
	}
	for _, cr := range categoryRisks {
		if cr.score >= 70 {
			concerns = append(concerns, fmt.Sprintf("High %s risk (%.1f/100)", cr.name, cr.score))
		}
	}

	severe := 0
	for _, risk := range risks.RiskFactors {
		if risk.Severity != "high" && risk.Severity != "critical" {
			continue
		}
		concerns = append(concerns, fmt.Sprintf("%s risk: %s...", risk.Category, truncate(risk.Description, 50)))
		severe++
		if severe == 3 {
			break
		}
	}

	return capList(concerns, 5)
}

var dimensionOrder = []string{"financial", "market", "team", "product"}

func orDefault(reasons []string, fallback string) string {
	if len(reasons) == 0 {
		return fallback
	}
	return strings.Join(reasons, ", ")
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
