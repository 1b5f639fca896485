package analyze

// Config carries the miner's tunable heuristics. Zero values are filled
// in by DefaultConfig; construct an Analyzer through NewAnalyzer.
type Config struct {
	// EntityConfidence is assigned to every NER-tagged mention.
	EntityConfidence float64
	// TechKeywordConfidence is assigned to dictionary-matched technologies.
	TechKeywordConfidence float64
	// MetricConfidence is assigned to every regex-matched financial figure.
	MetricConfidence float64
	// RiskConfidence is assigned to every risk-keyword hit.
	RiskConfidence float64
	// RiskSeverity is the default severity for keyword-matched risks.
	RiskSeverity string
	// RiskContextWindow is the number of characters captured around a
	// risk keyword.
	RiskContextWindow int
	// BaselineConfidence is the floor aggregate confidence when no
	// extraction produced signal at all.
	BaselineConfidence float64
	// TopTopics caps the ranked topic list.
	TopTopics int
}

// DefaultConfig returns the production heuristics.
func DefaultConfig() Config {
	return Config{
		EntityConfidence:      0.8,
		TechKeywordConfidence: 0.7,
		MetricConfidence:      0.8,
		RiskConfidence:        0.7,
		RiskSeverity:          "medium",
		RiskContextWindow:     100,
		BaselineConfidence:    0.3,
		TopTopics:             5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EntityConfidence == 0 {
		c.EntityConfidence = d.EntityConfidence
	}
	if c.TechKeywordConfidence == 0 {
		c.TechKeywordConfidence = d.TechKeywordConfidence
	}
	if c.MetricConfidence == 0 {
		c.MetricConfidence = d.MetricConfidence
	}
	if c.RiskConfidence == 0 {
		c.RiskConfidence = d.RiskConfidence
	}
	if c.RiskSeverity == "" {
		c.RiskSeverity = d.RiskSeverity
	}
	if c.RiskContextWindow == 0 {
		c.RiskContextWindow = d.RiskContextWindow
	}
	if c.BaselineConfidence == 0 {
		c.BaselineConfidence = d.BaselineConfidence
	}
	if c.TopTopics == 0 {
		c.TopTopics = d.TopTopics
	}
	return c
}
