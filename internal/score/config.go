package score

// Weights distributes the overall score across the four dimensions.
// Must sum to 1.
type Weights struct {
	Financial float64
	Market    float64
	Team      float64
	Product   float64
}

// Thresholds are the recommendation cutoffs on the overall score.
// Boundaries are inclusive: a score exactly at StrongBuy is strong_buy.
type Thresholds struct {
	StrongBuy float64
	Buy       float64
	Hold      float64
}

// Config carries the engine's tunable scoring constants.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
	// MaxRiskReduction is the largest fraction the risk adjustment can
	// shave off a dimension score.
	MaxRiskReduction float64
	// MaxConfidenceMargin is the widest half-width of the confidence
	// interval, reached at zero analysis confidence.
	MaxConfidenceMargin float64
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Financial: 0.30,
			Market:    0.25,
			Team:      0.25,
			Product:   0.20,
		},
		Thresholds: Thresholds{
			StrongBuy: 85,
			Buy:       70,
			Hold:      50,
		},
		MaxRiskReduction:    0.3,
		MaxConfidenceMargin: 20,
	}
}

// severityScores maps a risk factor's severity onto a 0-100 risk
// contribution. Unknown severities read as medium.
var severityScores = map[string]float64{
	"low":      20,
	"medium":   50,
	"high":     80,
	"critical": 95,
}

func severityScore(severity string) float64 {
	if s, ok := severityScores[severity]; ok {
		return s
	}
	return 50
}
