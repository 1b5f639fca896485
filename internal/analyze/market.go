package analyze

import "strings"

// extractMarketAnalysis matches market-size figures and pulls
// capitalized competitor lists out of competition mentions.
func (a *Analyzer) extractMarketAnalysis(text string) MarketAnalysis {
	market := MarketAnalysis{
		MarketSize:    []MarketSize{},
		Competitors:   []string{},
		MarketTrends:  []string{},
		Opportunities: []string{},
	}

	for _, re := range marketSizePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			amount, ok := parseAmount(m[1])
			if !ok {
				continue
			}
			market.MarketSize = append(market.MarketSize, MarketSize{
				Amount:  amount,
				Unit:    strings.ToLower(m[2]),
				Context: m[0],
			})
		}
	}

	for _, re := range competitorPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, name := range strings.Split(m[1], ",") {
				if name = strings.TrimSpace(name); name != "" {
					market.Competitors = append(market.Competitors, name)
				}
			}
		}
	}

	return market
}
