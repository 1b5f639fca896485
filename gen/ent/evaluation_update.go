// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *EvaluationUpdate) SetDocumentID(v uuid.UUID) *EvaluationUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableDocumentID(v *uuid.UUID) *EvaluationUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFinancialScore sets the "financial_score" field.
func (_u *EvaluationUpdate) SetFinancialScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetFinancialScore()
	_u.mutation.SetFinancialScore(v)
	return _u
}

// SetNillableFinancialScore sets the "financial_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableFinancialScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetFinancialScore(*v)
	}
	return _u
}

// AddFinancialScore adds value to the "financial_score" field.
func (_u *EvaluationUpdate) AddFinancialScore(v float64) *EvaluationUpdate {
	_u.mutation.AddFinancialScore(v)
	return _u
}

// SetMarketScore sets the "market_score" field.
func (_u *EvaluationUpdate) SetMarketScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetMarketScore()
	_u.mutation.SetMarketScore(v)
	return _u
}

// SetNillableMarketScore sets the "market_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableMarketScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetMarketScore(*v)
	}
	return _u
}

// AddMarketScore adds value to the "market_score" field.
func (_u *EvaluationUpdate) AddMarketScore(v float64) *EvaluationUpdate {
	_u.mutation.AddMarketScore(v)
	return _u
}

// SetTeamScore sets the "team_score" field.
func (_u *EvaluationUpdate) SetTeamScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetTeamScore()
	_u.mutation.SetTeamScore(v)
	return _u
}

// SetNillableTeamScore sets the "team_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableTeamScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetTeamScore(*v)
	}
	return _u
}

// AddTeamScore adds value to the "team_score" field.
func (_u *EvaluationUpdate) AddTeamScore(v float64) *EvaluationUpdate {
	_u.mutation.AddTeamScore(v)
	return _u
}

// SetProductScore sets the "product_score" field.
func (_u *EvaluationUpdate) SetProductScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetProductScore()
	_u.mutation.SetProductScore(v)
	return _u
}

// SetNillableProductScore sets the "product_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableProductScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetProductScore(*v)
	}
	return _u
}

// AddProductScore adds value to the "product_score" field.
func (_u *EvaluationUpdate) AddProductScore(v float64) *EvaluationUpdate {
	_u.mutation.AddProductScore(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *EvaluationUpdate) SetRiskScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableRiskScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *EvaluationUpdate) AddRiskScore(v float64) *EvaluationUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdate) SetOverallScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableOverallScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdate) AddOverallScore(v float64) *EvaluationUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetConfidenceLower sets the "confidence_lower" field.
func (_u *EvaluationUpdate) SetConfidenceLower(v float64) *EvaluationUpdate {
	_u.mutation.ResetConfidenceLower()
	_u.mutation.SetConfidenceLower(v)
	return _u
}

// SetNillableConfidenceLower sets the "confidence_lower" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableConfidenceLower(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetConfidenceLower(*v)
	}
	return _u
}

// AddConfidenceLower adds value to the "confidence_lower" field.
func (_u *EvaluationUpdate) AddConfidenceLower(v float64) *EvaluationUpdate {
	_u.mutation.AddConfidenceLower(v)
	return _u
}

// SetConfidenceUpper sets the "confidence_upper" field.
func (_u *EvaluationUpdate) SetConfidenceUpper(v float64) *EvaluationUpdate {
	_u.mutation.ResetConfidenceUpper()
	_u.mutation.SetConfidenceUpper(v)
	return _u
}

// SetNillableConfidenceUpper sets the "confidence_upper" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableConfidenceUpper(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetConfidenceUpper(*v)
	}
	return _u
}

// AddConfidenceUpper adds value to the "confidence_upper" field.
func (_u *EvaluationUpdate) AddConfidenceUpper(v float64) *EvaluationUpdate {
	_u.mutation.AddConfidenceUpper(v)
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *EvaluationUpdate) SetRecommendation(v string) *EvaluationUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableRecommendation(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdate) SetReasoning(v json.RawMessage) *EvaluationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// AppendReasoning appends value to the "reasoning" field.
func (_u *EvaluationUpdate) AppendReasoning(v json.RawMessage) *EvaluationUpdate {
	_u.mutation.AppendReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *EvaluationUpdate) ClearReasoning() *EvaluationUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationUpdate) SetCreatedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCreatedAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EvaluationUpdate) SetDocument(v *Document) *EvaluationUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EvaluationUpdate) ClearDocument() *EvaluationUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := evaluation.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Evaluation.recommendation": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.document"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinancialScore(); ok {
		_spec.SetField(evaluation.FieldFinancialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinancialScore(); ok {
		_spec.AddField(evaluation.FieldFinancialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MarketScore(); ok {
		_spec.SetField(evaluation.FieldMarketScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarketScore(); ok {
		_spec.AddField(evaluation.FieldMarketScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeamScore(); ok {
		_spec.SetField(evaluation.FieldTeamScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeamScore(); ok {
		_spec.AddField(evaluation.FieldTeamScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProductScore(); ok {
		_spec.SetField(evaluation.FieldProductScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProductScore(); ok {
		_spec.AddField(evaluation.FieldProductScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(evaluation.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(evaluation.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLower(); ok {
		_spec.SetField(evaluation.FieldConfidenceLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLower(); ok {
		_spec.AddField(evaluation.FieldConfidenceLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceUpper(); ok {
		_spec.SetField(evaluation.FieldConfidenceUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceUpper(); ok {
		_spec.AddField(evaluation.FieldConfidenceUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(evaluation.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReasoning(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldReasoning, value)
		})
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(evaluation.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.DocumentTable,
			Columns: []string{evaluation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.DocumentTable,
			Columns: []string{evaluation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *EvaluationUpdateOne) SetDocumentID(v uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableDocumentID(v *uuid.UUID) *EvaluationUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFinancialScore sets the "financial_score" field.
func (_u *EvaluationUpdateOne) SetFinancialScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetFinancialScore()
	_u.mutation.SetFinancialScore(v)
	return _u
}

// SetNillableFinancialScore sets the "financial_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableFinancialScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetFinancialScore(*v)
	}
	return _u
}

// AddFinancialScore adds value to the "financial_score" field.
func (_u *EvaluationUpdateOne) AddFinancialScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddFinancialScore(v)
	return _u
}

// SetMarketScore sets the "market_score" field.
func (_u *EvaluationUpdateOne) SetMarketScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetMarketScore()
	_u.mutation.SetMarketScore(v)
	return _u
}

// SetNillableMarketScore sets the "market_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableMarketScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetMarketScore(*v)
	}
	return _u
}

// AddMarketScore adds value to the "market_score" field.
func (_u *EvaluationUpdateOne) AddMarketScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddMarketScore(v)
	return _u
}

// SetTeamScore sets the "team_score" field.
func (_u *EvaluationUpdateOne) SetTeamScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetTeamScore()
	_u.mutation.SetTeamScore(v)
	return _u
}

// SetNillableTeamScore sets the "team_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableTeamScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetTeamScore(*v)
	}
	return _u
}

// AddTeamScore adds value to the "team_score" field.
func (_u *EvaluationUpdateOne) AddTeamScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddTeamScore(v)
	return _u
}

// SetProductScore sets the "product_score" field.
func (_u *EvaluationUpdateOne) SetProductScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetProductScore()
	_u.mutation.SetProductScore(v)
	return _u
}

// SetNillableProductScore sets the "product_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableProductScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetProductScore(*v)
	}
	return _u
}

// AddProductScore adds value to the "product_score" field.
func (_u *EvaluationUpdateOne) AddProductScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddProductScore(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *EvaluationUpdateOne) SetRiskScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableRiskScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *EvaluationUpdateOne) AddRiskScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdateOne) SetOverallScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableOverallScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdateOne) AddOverallScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetConfidenceLower sets the "confidence_lower" field.
func (_u *EvaluationUpdateOne) SetConfidenceLower(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetConfidenceLower()
	_u.mutation.SetConfidenceLower(v)
	return _u
}

// SetNillableConfidenceLower sets the "confidence_lower" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableConfidenceLower(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetConfidenceLower(*v)
	}
	return _u
}

// AddConfidenceLower adds value to the "confidence_lower" field.
func (_u *EvaluationUpdateOne) AddConfidenceLower(v float64) *EvaluationUpdateOne {
	_u.mutation.AddConfidenceLower(v)
	return _u
}

// SetConfidenceUpper sets the "confidence_upper" field.
func (_u *EvaluationUpdateOne) SetConfidenceUpper(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetConfidenceUpper()
	_u.mutation.SetConfidenceUpper(v)
	return _u
}

// SetNillableConfidenceUpper sets the "confidence_upper" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableConfidenceUpper(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetConfidenceUpper(*v)
	}
	return _u
}

// AddConfidenceUpper adds value to the "confidence_upper" field.
func (_u *EvaluationUpdateOne) AddConfidenceUpper(v float64) *EvaluationUpdateOne {
	_u.mutation.AddConfidenceUpper(v)
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *EvaluationUpdateOne) SetRecommendation(v string) *EvaluationUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableRecommendation(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvaluationUpdateOne) SetReasoning(v json.RawMessage) *EvaluationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// AppendReasoning appends value to the "reasoning" field.
func (_u *EvaluationUpdateOne) AppendReasoning(v json.RawMessage) *EvaluationUpdateOne {
	_u.mutation.AppendReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *EvaluationUpdateOne) ClearReasoning() *EvaluationUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationUpdateOne) SetCreatedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCreatedAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EvaluationUpdateOne) SetDocument(v *Document) *EvaluationUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EvaluationUpdateOne) ClearDocument() *EvaluationUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := evaluation.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Evaluation.recommendation": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.document"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinancialScore(); ok {
		_spec.SetField(evaluation.FieldFinancialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinancialScore(); ok {
		_spec.AddField(evaluation.FieldFinancialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MarketScore(); ok {
		_spec.SetField(evaluation.FieldMarketScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarketScore(); ok {
		_spec.AddField(evaluation.FieldMarketScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeamScore(); ok {
		_spec.SetField(evaluation.FieldTeamScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeamScore(); ok {
		_spec.AddField(evaluation.FieldTeamScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProductScore(); ok {
		_spec.SetField(evaluation.FieldProductScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProductScore(); ok {
		_spec.AddField(evaluation.FieldProductScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(evaluation.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(evaluation.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceLower(); ok {
		_spec.SetField(evaluation.FieldConfidenceLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLower(); ok {
		_spec.AddField(evaluation.FieldConfidenceLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceUpper(); ok {
		_spec.SetField(evaluation.FieldConfidenceUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceUpper(); ok {
		_spec.AddField(evaluation.FieldConfidenceUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(evaluation.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReasoning(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldReasoning, value)
		})
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(evaluation.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.DocumentTable,
			Columns: []string{evaluation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.DocumentTable,
			Columns: []string{evaluation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
