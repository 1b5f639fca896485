package analyze

import "strings"

// extractBusinessInsights classifies business and revenue model by
// first dictionary hit and collects context around target-market
// mentions.
func (a *Analyzer) extractBusinessInsights(text string) BusinessInsights {
	insights := BusinessInsights{
		TargetMarket:          []string{},
		ValueProposition:      []string{},
		CompetitiveAdvantages: []string{},
	}

	textLower := strings.ToLower(text)

	for _, model := range businessModels {
		if containsAny(textLower, model.keywords) {
			insights.BusinessModel = model.name
			break
		}
	}

	for _, model := range revenueModels {
		if containsAny(textLower, model.keywords) {
			insights.RevenueModel = model.name
			break
		}
	}

	for _, indicator := range targetMarketIndicators {
		start := strings.Index(textLower, indicator)
		if start < 0 {
			continue
		}
		context := sliceAround(text, start, 50, 200)
		insights.TargetMarket = append(insights.TargetMarket, strings.TrimSpace(context))
	}

	return insights
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// sliceAround returns text[start-before : start+after], clamped to the
// string bounds.
func sliceAround(text string, start, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := start + after
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
