package analyze

import "strings"

// identifyRiskFactors scans the text for risk keywords by category and
// captures the context window around each first occurrence.
func (a *Analyzer) identifyRiskFactors(text string) []RiskFactor {
	risks := []RiskFactor{}
	textLower := strings.ToLower(text)
	window := a.cfg.RiskContextWindow

	for _, category := range riskCategories {
		for _, keyword := range category.keywords {
			start := strings.Index(textLower, keyword)
			if start < 0 {
				continue
			}
			context := sliceAround(text, start, window, window)
			risks = append(risks, RiskFactor{
				Category:   category.name,
				Keyword:    keyword,
				Context:    strings.TrimSpace(context),
				Severity:   a.cfg.RiskSeverity,
				Confidence: a.cfg.RiskConfidence,
			})
		}
	}

	return risks
}
