package analyze

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// extractEntities runs statistical NER over the text and buckets the
// mentions into fixed categories, then adds dictionary-matched
// technology terms. NER failure degrades to the keyword pass only.
func (a *Analyzer) extractEntities(text string) Entities {
	entities := Entities{
		Organizations: []Entity{},
		People:        []Entity{},
		Locations:     []Entity{},
		Money:         []Entity{},
		Dates:         []Entity{},
		Products:      []Entity{},
		Technologies:  []Entity{},
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		a.logger.Error("entity extraction failed", "error", err)
	} else {
		for _, ent := range doc.Entities() {
			info := Entity{
				Text:       ent.Text,
				Label:      ent.Label,
				Confidence: a.cfg.EntityConfidence,
			}
			switch ent.Label {
			case "ORG", "CORP":
				entities.Organizations = append(entities.Organizations, info)
			case "PERSON", "PER":
				entities.People = append(entities.People, info)
			case "GPE", "LOC", "LOCATION":
				entities.Locations = append(entities.Locations, info)
			case "MONEY", "CURRENCY":
				entities.Money = append(entities.Money, info)
			case "DATE", "TIME":
				entities.Dates = append(entities.Dates, info)
			case "PRODUCT", "WORK_OF_ART":
				entities.Products = append(entities.Products, info)
			}
		}
	}

	textLower := strings.ToLower(text)
	for _, keyword := range techKeywords {
		if strings.Contains(textLower, keyword) {
			entities.Technologies = append(entities.Technologies, Entity{
				Text:       keyword,
				Label:      "TECHNOLOGY",
				Confidence: a.cfg.TechKeywordConfidence,
			})
		}
	}

	return entities
}
