package analyze

import "strings"

// analyzeSentiment compares positive and negative keyword presence
// ratios. Equal ratios (including zero signal) read as neutral.
func (a *Analyzer) analyzeSentiment(text string) Sentiment {
	textLower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveWords {
		if strings.Contains(textLower, word) {
			positive++
		}
	}
	negative := 0
	for _, word := range negativeWords {
		if strings.Contains(textLower, word) {
			negative++
		}
	}

	totalWords := len(strings.Fields(text))
	var positiveRatio, negativeRatio float64
	if totalWords > 0 {
		positiveRatio = float64(positive) / float64(totalWords)
		negativeRatio = float64(negative) / float64(totalWords)
	}

	s := Sentiment{
		PositiveIndicators: positive,
		NegativeIndicators: negative,
		PositiveRatio:      positiveRatio,
		NegativeRatio:      negativeRatio,
	}
	switch {
	case positiveRatio > negativeRatio:
		s.Label = "positive"
		s.Confidence = min(positiveRatio*10, 1.0)
	case negativeRatio > positiveRatio:
		s.Label = "negative"
		s.Confidence = min(negativeRatio*10, 1.0)
	default:
		s.Label = "neutral"
		s.Confidence = 0.5
	}
	return s
}
