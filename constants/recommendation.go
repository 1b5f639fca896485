package constants

// Recommendation is the categorical investment verdict for an evaluation.
type Recommendation string

// Stable values (store these exact strings in DB).
const (
	RecommendationStrongBuy Recommendation = "strong_buy"
	RecommendationBuy       Recommendation = "buy"
	RecommendationHold      Recommendation = "hold"
	RecommendationPass      Recommendation = "pass"
)

// Recommendations holds the allowed values for the recommendation field.
var Recommendations = []string{
	string(RecommendationStrongBuy),
	string(RecommendationBuy),
	string(RecommendationHold),
	string(RecommendationPass),
}

// DocumentType labels produced by the content classifier.
const (
	DocTypePitchDeck      = "pitch_deck"
	DocTypeBusinessPlan   = "business_plan"
	DocTypeFinancialModel = "financial_model"
	DocTypeMarketAnalysis = "market_analysis"
	DocTypeTechnicalDoc   = "technical_document"
	DocTypeGeneral        = "general"
)
