package analyze

import "strings"

// classifyDocument scores each document type by keyword hit fraction.
// No hits at all falls back to "general" at neutral confidence; ties
// resolve to the earliest type in declaration order.
func (a *Analyzer) classifyDocument(text string) Classification {
	textLower := strings.ToLower(text)
	scores := map[string]float64{}

	bestType := ""
	bestScore := 0.0
	for _, docType := range documentTypes {
		hits := 0
		for _, keyword := range docType.keywords {
			if strings.Contains(textLower, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(docType.keywords))
		scores[docType.name] = score
		if score > bestScore {
			bestType = docType.name
			bestScore = score
		}
	}

	if bestType == "" {
		return Classification{
			DocumentType: "general",
			Confidence:   0.5,
			AllScores:    map[string]float64{},
		}
	}
	return Classification{
		DocumentType: bestType,
		Confidence:   bestScore,
		AllScores:    scores,
	}
}
