package score

import (
	"strings"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
)

// Each dimension starts from a neutral base of 50 and earns additive
// bonuses for evidence found in the analysis; bonuses cap at 100.
const dimensionBase = 50.0

var founderExperienceMarkers = []string{"experience", "previous", "former", "ex-"}

var prestigiousCompanies = []string{
	"google", "microsoft", "apple", "amazon", "facebook", "meta",
	"tesla", "uber", "airbnb", "stripe", "salesforce",
}

var trendingTopics = []string{"technology", "ai", "blockchain", "fintech", "healthtech"}

// developmentIndicators map product-stage keywords to their bonus;
// tried in order, first hit only.
var developmentIndicators = []struct {
	keyword string
	points  float64
}{
	{"mvp", 10},
	{"prototype", 8},
	{"beta", 12},
	{"launched", 15},
	{"customers", 15},
	{"users", 12},
	{"traction", 15},
}

var customerValidationMarkers = []string{"customer feedback", "user feedback", "testimonial"}

var scalabilityMarkers = []string{"scalable", "scale", "growth", "expand"}

// financialScore rewards revenue, funding, and valuation evidence plus
// a sustainable revenue model.
func financialScore(a *analyze.AnalysisResult) float64 {
	score := dimensionBase

	if len(a.FinancialMetrics.Revenue) > 0 {
		score += 15
		for _, m := range a.FinancialMetrics.Revenue {
			if m.ActualAmount() > 1_000_000 {
				score += 10
				break
			}
		}
	}

	if len(a.FinancialMetrics.Funding) > 0 {
		score += 10
		for _, m := range a.FinancialMetrics.Funding {
			amount := m.ActualAmount()
			if amount >= 5_000_000 {
				score += 15
				break
			}
			if amount >= 1_000_000 {
				score += 10
				break
			}
		}
	}

	if len(a.FinancialMetrics.Valuation) > 0 {
		score += 10
	}

	switch a.BusinessInsights.RevenueModel {
	case "subscription", "saas":
		score += 15
	case "transaction", "marketplace":
		score += 10
	}

	if strings.Contains(a.Classification.DocumentType, constants.DocTypeFinancialModel) {
		score += 10
	}

	return min(score, 100)
}

// marketScore rewards market sizing, a readable competitive field, a
// high-growth model, and trend alignment.
func marketScore(a *analyze.AnalysisResult) float64 {
	score := dimensionBase

	if len(a.MarketAnalysis.MarketSize) > 0 {
		score += 15
		for _, size := range a.MarketAnalysis.MarketSize {
			value := size.ActualAmount()
			if value >= 10_000_000_000 {
				score += 20
				break
			}
			if value >= 1_000_000_000 {
				score += 15
				break
			}
			if value >= 100_000_000 {
				score += 10
				break
			}
		}
	}

	if n := len(a.MarketAnalysis.Competitors); n > 0 {
		switch {
		case n <= 3:
			score += 15
		case n <= 6:
			score += 10
		default:
			score += 5
		}
	}

	switch a.BusinessInsights.BusinessModel {
	case "saas", "marketplace", "fintech":
		score += 10
	}

	if len(a.BusinessInsights.TargetMarket) > 0 {
		score += 10
	}
	if len(a.MarketAnalysis.MarketTrends) > 0 {
		score += 10
	}

	for _, topic := range a.KeyTopics {
		if containsString(trendingTopics, topic.Topic) {
			score += 5
			break
		}
	}

	return min(score, 100)
}

// teamScore rewards founder visibility, a sensible team size, and
// pedigree signal among mentioned organizations.
func teamScore(a *analyze.AnalysisResult) float64 {
	score := dimensionBase
	team := a.TeamInformation

	if len(team.Founders) > 0 {
		score += 15
		if len(team.Founders) >= 2 {
			score += 10
		}
		for _, founder := range team.Founders {
			context := strings.ToLower(founder.Context)
			if containsAnySubstring(context, founderExperienceMarkers) {
				score += 10
				break
			}
		}
	}

	if size := team.TeamSize; size > 0 {
		switch {
		case size >= 5 && size <= 20:
			score += 15
		case size >= 2 && size <= 50:
			score += 10
		case size > 50:
			score += 5
		}
	}

	if len(team.KeyPersonnel) > 0 {
		score += 10
	}
	if len(team.ExperienceHighlights) > 0 {
		score += 15
	}

	for _, org := range a.Entities.Organizations {
		name := strings.ToLower(org.Text)
		if containsAnySubstring(name, prestigiousCompanies) {
			score += 10
			break
		}
	}

	return min(score, 100)
}

// productScore rewards proposition clarity, technology depth, and
// product-stage evidence in the raw document text.
func productScore(a *analyze.AnalysisResult, fullText string) float64 {
	score := dimensionBase

	if len(a.BusinessInsights.ValueProposition) > 0 {
		score += 15
	}
	if len(a.BusinessInsights.CompetitiveAdvantages) > 0 {
		score += 15
	}

	for _, topic := range a.KeyTopics {
		if topic.Topic == "technology" {
			score += topic.RelevanceScore * 20
			break
		}
	}

	textLower := strings.ToLower(fullText)
	for _, ind := range developmentIndicators {
		if strings.Contains(textLower, ind.keyword) {
			score += ind.points
			break
		}
	}

	if containsAnySubstring(textLower, customerValidationMarkers) {
		score += 10
	}
	if containsAnySubstring(textLower, scalabilityMarkers) {
		score += 10
	}

	return min(score, 100)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAnySubstring(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
