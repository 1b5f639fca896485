package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Evaluation represents one scoring verdict for data transfer between
// layers. Dimension scores are risk-adjusted.
type Evaluation struct {
	ID              uuid.UUID       `json:"id"`
	DocumentID      uuid.UUID       `json:"document_id"`
	FinancialScore  float64         `json:"financial_score"`
	MarketScore     float64         `json:"market_score"`
	TeamScore       float64         `json:"team_score"`
	ProductScore    float64         `json:"product_score"`
	RiskScore       float64         `json:"risk_score"`
	OverallScore    float64         `json:"overall_score"`
	ConfidenceLower float64         `json:"confidence_lower"`
	ConfidenceUpper float64         `json:"confidence_upper"`
	Recommendation  string          `json:"recommendation"`
	Reasoning       json.RawMessage `json:"reasoning,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
