// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
)

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FinancialScore holds the value of the "financial_score" field.
	FinancialScore float64 `json:"financial_score,omitempty"`
	// MarketScore holds the value of the "market_score" field.
	MarketScore float64 `json:"market_score,omitempty"`
	// TeamScore holds the value of the "team_score" field.
	TeamScore float64 `json:"team_score,omitempty"`
	// ProductScore holds the value of the "product_score" field.
	ProductScore float64 `json:"product_score,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore float64 `json:"risk_score,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore float64 `json:"overall_score,omitempty"`
	// ConfidenceLower holds the value of the "confidence_lower" field.
	ConfidenceLower float64 `json:"confidence_lower,omitempty"`
	// ConfidenceUpper holds the value of the "confidence_upper" field.
	ConfidenceUpper float64 `json:"confidence_upper,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning json.RawMessage `json:"reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationQuery when eager-loading is set.
	Edges        EvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationEdges holds the relations/edges for other nodes in the graph.
type EvaluationEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldReasoning:
			values[i] = new([]byte)
		case evaluation.FieldFinancialScore, evaluation.FieldMarketScore, evaluation.FieldTeamScore, evaluation.FieldProductScore, evaluation.FieldRiskScore, evaluation.FieldOverallScore, evaluation.FieldConfidenceLower, evaluation.FieldConfidenceUpper:
			values[i] = new(sql.NullFloat64)
		case evaluation.FieldRecommendation:
			values[i] = new(sql.NullString)
		case evaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case evaluation.FieldID, evaluation.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evaluation.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case evaluation.FieldFinancialScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field financial_score", values[i])
			} else if value.Valid {
				_m.FinancialScore = value.Float64
			}
		case evaluation.FieldMarketScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field market_score", values[i])
			} else if value.Valid {
				_m.MarketScore = value.Float64
			}
		case evaluation.FieldTeamScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field team_score", values[i])
			} else if value.Valid {
				_m.TeamScore = value.Float64
			}
		case evaluation.FieldProductScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field product_score", values[i])
			} else if value.Valid {
				_m.ProductScore = value.Float64
			}
		case evaluation.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case evaluation.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case evaluation.FieldConfidenceLower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_lower", values[i])
			} else if value.Valid {
				_m.ConfidenceLower = value.Float64
			}
		case evaluation.FieldConfidenceUpper:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_upper", values[i])
			} else if value.Valid {
				_m.ConfidenceUpper = value.Float64
			}
		case evaluation.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case evaluation.FieldReasoning:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reasoning); err != nil {
					return fmt.Errorf("unmarshal field reasoning: %w", err)
				}
			}
		case evaluation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Evaluation entity.
func (_m *Evaluation) QueryDocument() *DocumentQuery {
	return NewEvaluationClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("financial_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinancialScore))
	builder.WriteString(", ")
	builder.WriteString("market_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketScore))
	builder.WriteString(", ")
	builder.WriteString("team_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamScore))
	builder.WriteString(", ")
	builder.WriteString("product_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductScore))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("confidence_lower=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceLower))
	builder.WriteString(", ")
	builder.WriteString("confidence_upper=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceUpper))
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reasoning))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
