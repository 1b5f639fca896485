// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the evaluation type in the database.
	Label = "evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldFinancialScore holds the string denoting the financial_score field in the database.
	FieldFinancialScore = "financial_score"
	// FieldMarketScore holds the string denoting the market_score field in the database.
	FieldMarketScore = "market_score"
	// FieldTeamScore holds the string denoting the team_score field in the database.
	FieldTeamScore = "team_score"
	// FieldProductScore holds the string denoting the product_score field in the database.
	FieldProductScore = "product_score"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldConfidenceLower holds the string denoting the confidence_lower field in the database.
	FieldConfidenceLower = "confidence_lower"
	// FieldConfidenceUpper holds the string denoting the confidence_upper field in the database.
	FieldConfidenceUpper = "confidence_upper"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the evaluation in the database.
	Table = "evaluations"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "evaluations"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for evaluation fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldFinancialScore,
	FieldMarketScore,
	FieldTeamScore,
	FieldProductScore,
	FieldRiskScore,
	FieldOverallScore,
	FieldConfidenceLower,
	FieldConfidenceUpper,
	FieldRecommendation,
	FieldReasoning,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RecommendationValidator is a validator for the "recommendation" field. It is called by the builders before save.
	RecommendationValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Evaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByFinancialScore orders the results by the financial_score field.
func ByFinancialScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinancialScore, opts...).ToFunc()
}

// ByMarketScore orders the results by the market_score field.
func ByMarketScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketScore, opts...).ToFunc()
}

// ByTeamScore orders the results by the team_score field.
func ByTeamScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamScore, opts...).ToFunc()
}

// ByProductScore orders the results by the product_score field.
func ByProductScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductScore, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByConfidenceLower orders the results by the confidence_lower field.
func ByConfidenceLower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLower, opts...).ToFunc()
}

// ByConfidenceUpper orders the results by the confidence_upper field.
func ByConfidenceUpper(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceUpper, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
