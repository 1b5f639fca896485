// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDocumentID, v))
}

// FinancialScore applies equality check predicate on the "financial_score" field. It's identical to FinancialScoreEQ.
func FinancialScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldFinancialScore, v))
}

// MarketScore applies equality check predicate on the "market_score" field. It's identical to MarketScoreEQ.
func MarketScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldMarketScore, v))
}

// TeamScore applies equality check predicate on the "team_score" field. It's identical to TeamScoreEQ.
func TeamScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTeamScore, v))
}

// ProductScore applies equality check predicate on the "product_score" field. It's identical to ProductScoreEQ.
func ProductScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldProductScore, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRiskScore, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallScore, v))
}

// ConfidenceLower applies equality check predicate on the "confidence_lower" field. It's identical to ConfidenceLowerEQ.
func ConfidenceLower(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceLower, v))
}

// ConfidenceUpper applies equality check predicate on the "confidence_upper" field. It's identical to ConfidenceUpperEQ.
func ConfidenceUpper(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceUpper, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRecommendation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FinancialScoreEQ applies the EQ predicate on the "financial_score" field.
func FinancialScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldFinancialScore, v))
}

// FinancialScoreNEQ applies the NEQ predicate on the "financial_score" field.
func FinancialScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldFinancialScore, v))
}

// FinancialScoreIn applies the In predicate on the "financial_score" field.
func FinancialScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldFinancialScore, vs...))
}

// FinancialScoreNotIn applies the NotIn predicate on the "financial_score" field.
func FinancialScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldFinancialScore, vs...))
}

// FinancialScoreGT applies the GT predicate on the "financial_score" field.
func FinancialScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldFinancialScore, v))
}

// FinancialScoreGTE applies the GTE predicate on the "financial_score" field.
func FinancialScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldFinancialScore, v))
}

// FinancialScoreLT applies the LT predicate on the "financial_score" field.
func FinancialScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldFinancialScore, v))
}

// FinancialScoreLTE applies the LTE predicate on the "financial_score" field.
func FinancialScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldFinancialScore, v))
}

// MarketScoreEQ applies the EQ predicate on the "market_score" field.
func MarketScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldMarketScore, v))
}

// MarketScoreNEQ applies the NEQ predicate on the "market_score" field.
func MarketScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldMarketScore, v))
}

// MarketScoreIn applies the In predicate on the "market_score" field.
func MarketScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldMarketScore, vs...))
}

// MarketScoreNotIn applies the NotIn predicate on the "market_score" field.
func MarketScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldMarketScore, vs...))
}

// MarketScoreGT applies the GT predicate on the "market_score" field.
func MarketScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldMarketScore, v))
}

// MarketScoreGTE applies the GTE predicate on the "market_score" field.
func MarketScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldMarketScore, v))
}

// MarketScoreLT applies the LT predicate on the "market_score" field.
func MarketScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldMarketScore, v))
}

// MarketScoreLTE applies the LTE predicate on the "market_score" field.
func MarketScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldMarketScore, v))
}

// TeamScoreEQ applies the EQ predicate on the "team_score" field.
func TeamScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTeamScore, v))
}

// TeamScoreNEQ applies the NEQ predicate on the "team_score" field.
func TeamScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldTeamScore, v))
}

// TeamScoreIn applies the In predicate on the "team_score" field.
func TeamScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldTeamScore, vs...))
}

// TeamScoreNotIn applies the NotIn predicate on the "team_score" field.
func TeamScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldTeamScore, vs...))
}

// TeamScoreGT applies the GT predicate on the "team_score" field.
func TeamScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldTeamScore, v))
}

// TeamScoreGTE applies the GTE predicate on the "team_score" field.
func TeamScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldTeamScore, v))
}

// TeamScoreLT applies the LT predicate on the "team_score" field.
func TeamScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldTeamScore, v))
}

// TeamScoreLTE applies the LTE predicate on the "team_score" field.
func TeamScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldTeamScore, v))
}

// ProductScoreEQ applies the EQ predicate on the "product_score" field.
func ProductScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldProductScore, v))
}

// ProductScoreNEQ applies the NEQ predicate on the "product_score" field.
func ProductScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldProductScore, v))
}

// ProductScoreIn applies the In predicate on the "product_score" field.
func ProductScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldProductScore, vs...))
}

// ProductScoreNotIn applies the NotIn predicate on the "product_score" field.
func ProductScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldProductScore, vs...))
}

// ProductScoreGT applies the GT predicate on the "product_score" field.
func ProductScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldProductScore, v))
}

// ProductScoreGTE applies the GTE predicate on the "product_score" field.
func ProductScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldProductScore, v))
}

// ProductScoreLT applies the LT predicate on the "product_score" field.
func ProductScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldProductScore, v))
}

// ProductScoreLTE applies the LTE predicate on the "product_score" field.
func ProductScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldProductScore, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldRiskScore, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldOverallScore, v))
}

// ConfidenceLowerEQ applies the EQ predicate on the "confidence_lower" field.
func ConfidenceLowerEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceLower, v))
}

// ConfidenceLowerNEQ applies the NEQ predicate on the "confidence_lower" field.
func ConfidenceLowerNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldConfidenceLower, v))
}

// ConfidenceLowerIn applies the In predicate on the "confidence_lower" field.
func ConfidenceLowerIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldConfidenceLower, vs...))
}

// ConfidenceLowerNotIn applies the NotIn predicate on the "confidence_lower" field.
func ConfidenceLowerNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldConfidenceLower, vs...))
}

// ConfidenceLowerGT applies the GT predicate on the "confidence_lower" field.
func ConfidenceLowerGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldConfidenceLower, v))
}

// ConfidenceLowerGTE applies the GTE predicate on the "confidence_lower" field.
func ConfidenceLowerGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldConfidenceLower, v))
}

// ConfidenceLowerLT applies the LT predicate on the "confidence_lower" field.
func ConfidenceLowerLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldConfidenceLower, v))
}

// ConfidenceLowerLTE applies the LTE predicate on the "confidence_lower" field.
func ConfidenceLowerLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldConfidenceLower, v))
}

// ConfidenceUpperEQ applies the EQ predicate on the "confidence_upper" field.
func ConfidenceUpperEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceUpper, v))
}

// ConfidenceUpperNEQ applies the NEQ predicate on the "confidence_upper" field.
func ConfidenceUpperNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldConfidenceUpper, v))
}

// ConfidenceUpperIn applies the In predicate on the "confidence_upper" field.
func ConfidenceUpperIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldConfidenceUpper, vs...))
}

// ConfidenceUpperNotIn applies the NotIn predicate on the "confidence_upper" field.
func ConfidenceUpperNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldConfidenceUpper, vs...))
}

// ConfidenceUpperGT applies the GT predicate on the "confidence_upper" field.
func ConfidenceUpperGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldConfidenceUpper, v))
}

// ConfidenceUpperGTE applies the GTE predicate on the "confidence_upper" field.
func ConfidenceUpperGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldConfidenceUpper, v))
}

// ConfidenceUpperLT applies the LT predicate on the "confidence_upper" field.
func ConfidenceUpperLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldConfidenceUpper, v))
}

// ConfidenceUpperLTE applies the LTE predicate on the "confidence_upper" field.
func ConfidenceUpperLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldConfidenceUpper, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldRecommendation, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldReasoning))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
