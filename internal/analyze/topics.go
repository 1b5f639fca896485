package analyze

import (
	"sort"
	"strings"
)

// extractKeyTopics ranks the fixed topic categories by keyword hit
// fraction and keeps the top entries.
func (a *Analyzer) extractKeyTopics(text string) []Topic {
	textLower := strings.ToLower(text)
	topics := []Topic{}

	for _, category := range topicCategories {
		hits := 0
		for _, keyword := range category.keywords {
			if strings.Contains(textLower, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		topics = append(topics, Topic{
			Topic:          category.name,
			RelevanceScore: float64(hits) / float64(len(category.keywords)),
			KeywordMatches: hits,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].RelevanceScore > topics[j].RelevanceScore
	})
	if len(topics) > a.cfg.TopTopics {
		topics = topics[:a.cfg.TopTopics]
	}
	return topics
}
