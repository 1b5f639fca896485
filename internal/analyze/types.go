package analyze

// TextStats describes the analyzed text itself.
type TextStats struct {
	OriginalLength   int     `json:"original_length"`
	ProcessedLength  int     `json:"processed_length"`
	WordCount        int     `json:"word_count"`
	SentenceCount    int     `json:"sentence_count"`
	Language         string  `json:"language"`
	ReadabilityScore float64 `json:"readability_score"`
}

// Entity is one named-entity mention.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Start      int     `json:"start,omitempty"`
	End        int     `json:"end,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Entities holds the seven fixed entity categories. Every slice is
// non-nil after analysis; empty means "none found", never "not run".
type Entities struct {
	Organizations []Entity `json:"organizations"`
	People        []Entity `json:"people"`
	Locations     []Entity `json:"locations"`
	Money         []Entity `json:"money"`
	Dates         []Entity `json:"dates"`
	Products      []Entity `json:"products"`
	Technologies  []Entity `json:"technologies"`
}

// Count returns the total number of entities across all categories.
func (e *Entities) Count() int {
	return len(e.Organizations) + len(e.People) + len(e.Locations) +
		len(e.Money) + len(e.Dates) + len(e.Products) + len(e.Technologies)
}

// FinancialMetric is one matched monetary figure.
type FinancialMetric struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"` // "", "k", "m", "b"
	SourceText string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// ActualAmount normalizes the matched number by its unit suffix.
func (m FinancialMetric) ActualAmount() float64 {
	return m.Amount * unitMultiplier(m.Unit)
}

// FinancialMetrics holds the five fixed metric families. Profitability
// and growth have no patterns yet but the categories always exist.
type FinancialMetrics struct {
	Revenue       []FinancialMetric `json:"revenue_metrics"`
	Funding       []FinancialMetric `json:"funding_metrics"`
	Profitability []FinancialMetric `json:"profitability_metrics"`
	Growth        []FinancialMetric `json:"growth_metrics"`
	Valuation     []FinancialMetric `json:"valuation_metrics"`
}

// Count returns the total number of metrics across all families.
func (m *FinancialMetrics) Count() int {
	return len(m.Revenue) + len(m.Funding) + len(m.Profitability) +
		len(m.Growth) + len(m.Valuation)
}

// BusinessInsights captures model classification and strategy signal.
type BusinessInsights struct {
	BusinessModel         string   `json:"business_model,omitempty"`
	RevenueModel          string   `json:"revenue_model,omitempty"`
	TargetMarket          []string `json:"target_market"`
	ValueProposition      []string `json:"value_proposition"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
}

// FoundCount returns how many insight fields carry signal.
func (b *BusinessInsights) FoundCount() int {
	n := 0
	if b.BusinessModel != "" {
		n++
	}
	if b.RevenueModel != "" {
		n++
	}
	if len(b.TargetMarket) > 0 {
		n++
	}
	if len(b.ValueProposition) > 0 {
		n++
	}
	if len(b.CompetitiveAdvantages) > 0 {
		n++
	}
	return n
}

// MarketSize is one matched market-size figure.
type MarketSize struct {
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Context string  `json:"context"`
}

// ActualAmount normalizes the matched number by its unit suffix.
func (m MarketSize) ActualAmount() float64 {
	return m.Amount * unitMultiplier(m.Unit)
}

// MarketAnalysis captures market size, competition, and opportunity signal.
type MarketAnalysis struct {
	MarketSize    []MarketSize `json:"market_size"`
	Competitors   []string     `json:"competitors"`
	MarketTrends  []string     `json:"market_trends"`
	Opportunities []string     `json:"opportunities"`
}

// Founder is one founder/CEO mention.
type Founder struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Context string `json:"context"`
}

// TeamInformation captures founding-team signal. TeamSize 0 means unknown.
type TeamInformation struct {
	Founders             []Founder `json:"founders"`
	KeyPersonnel         []string  `json:"key_personnel"`
	TeamSize             int       `json:"team_size,omitempty"`
	ExperienceHighlights []string  `json:"experience_highlights"`
}

// RiskFactor is one risk-keyword hit with its surrounding context.
type RiskFactor struct {
	Category   string  `json:"category"`
	Keyword    string  `json:"keyword"`
	Context    string  `json:"context"`
	Severity   string  `json:"severity"`
	Confidence float64 `json:"confidence"`
}

// Sentiment is the keyword-ratio sentiment verdict.
type Sentiment struct {
	Label              string  `json:"sentiment"` // positive | negative | neutral
	Confidence         float64 `json:"confidence"`
	PositiveIndicators int     `json:"positive_indicators"`
	NegativeIndicators int     `json:"negative_indicators"`
	PositiveRatio      float64 `json:"positive_ratio"`
	NegativeRatio      float64 `json:"negative_ratio"`
}

// Classification is the one-of-five document-type guess.
type Classification struct {
	DocumentType string             `json:"document_type"`
	Confidence   float64            `json:"confidence"`
	AllScores    map[string]float64 `json:"all_scores"`
}

// Topic is one ranked topic category.
type Topic struct {
	Topic          string  `json:"topic"`
	RelevanceScore float64 `json:"relevance_score"`
	KeywordMatches int     `json:"keyword_matches"`
}

// AnalysisResult is the miner's complete, immutable output for one text.
// Every category key is present even when empty; ConfidenceScore is a
// derived aggregate, never hand-set.
type AnalysisResult struct {
	TextStats        TextStats        `json:"text_analysis"`
	Entities         Entities         `json:"entities"`
	FinancialMetrics FinancialMetrics `json:"financial_metrics"`
	BusinessInsights BusinessInsights `json:"business_insights"`
	MarketAnalysis   MarketAnalysis   `json:"market_analysis"`
	TeamInformation  TeamInformation  `json:"team_information"`
	RiskFactors      []RiskFactor     `json:"risk_factors"`
	Sentiment        Sentiment        `json:"sentiment"`
	Classification   Classification   `json:"document_classification"`
	KeyTopics        []Topic          `json:"key_topics"`
	ConfidenceScore  float64          `json:"confidence_score"`
}

// EmptyResult is the canonical result for empty or whitespace-only input.
func EmptyResult() *AnalysisResult {
	return &AnalysisResult{
		TextStats: TextStats{Language: "en"},
		Entities: Entities{
			Organizations: []Entity{},
			People:        []Entity{},
			Locations:     []Entity{},
			Money:         []Entity{},
			Dates:         []Entity{},
			Products:      []Entity{},
			Technologies:  []Entity{},
		},
		FinancialMetrics: FinancialMetrics{
			Revenue:       []FinancialMetric{},
			Funding:       []FinancialMetric{},
			Profitability: []FinancialMetric{},
			Growth:        []FinancialMetric{},
			Valuation:     []FinancialMetric{},
		},
		BusinessInsights: BusinessInsights{
			TargetMarket:          []string{},
			ValueProposition:      []string{},
			CompetitiveAdvantages: []string{},
		},
		MarketAnalysis: MarketAnalysis{
			MarketSize:    []MarketSize{},
			Competitors:   []string{},
			MarketTrends:  []string{},
			Opportunities: []string{},
		},
		TeamInformation: TeamInformation{
			Founders:             []Founder{},
			KeyPersonnel:         []string{},
			ExperienceHighlights: []string{},
		},
		RiskFactors: []RiskFactor{},
		Sentiment: Sentiment{
			Label:      "neutral",
			Confidence: 0.5,
		},
		Classification: Classification{
			DocumentType: "general",
			Confidence:   0.5,
			AllScores:    map[string]float64{},
		},
		KeyTopics:       []Topic{},
		ConfidenceScore: 0.0,
	}
}

func unitMultiplier(unit string) float64 {
	switch unit {
	case "k":
		return 1e3
	case "m":
		return 1e6
	case "b":
		return 1e9
	default:
		return 1
	}
}
