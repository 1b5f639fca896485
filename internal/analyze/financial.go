package analyze

import (
	"strconv"
	"strings"
)

// extractFinancialMetrics matches the money patterns against the text
// and buckets hits by family. Unparseable amounts are skipped.
func (a *Analyzer) extractFinancialMetrics(text string) FinancialMetrics {
	metrics := FinancialMetrics{
		Revenue:       []FinancialMetric{},
		Funding:       []FinancialMetric{},
		Profitability: []FinancialMetric{},
		Growth:        []FinancialMetric{},
		Valuation:     []FinancialMetric{},
	}

	for _, p := range metricPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			amount, ok := parseAmount(m[1])
			if !ok {
				continue
			}
			metric := FinancialMetric{
				Type:       p.family,
				Amount:     amount,
				Unit:       strings.ToLower(m[2]),
				SourceText: m[0],
				Confidence: a.cfg.MetricConfidence,
			}
			switch p.family {
			case "revenue":
				metrics.Revenue = append(metrics.Revenue, metric)
			case "funding":
				metrics.Funding = append(metrics.Funding, metric)
			case "valuation":
				metrics.Valuation = append(metrics.Valuation, metric)
			}
		}
	}

	return metrics
}

// parseAmount strips thousands separators and parses the number.
func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
