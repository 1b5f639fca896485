// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
)

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *EvaluationCreate) SetDocumentID(v uuid.UUID) *EvaluationCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFinancialScore sets the "financial_score" field.
func (_c *EvaluationCreate) SetFinancialScore(v float64) *EvaluationCreate {
	_c.mutation.SetFinancialScore(v)
	return _c
}

// SetMarketScore sets the "market_score" field.
func (_c *EvaluationCreate) SetMarketScore(v float64) *EvaluationCreate {
	_c.mutation.SetMarketScore(v)
	return _c
}

// SetTeamScore sets the "team_score" field.
func (_c *EvaluationCreate) SetTeamScore(v float64) *EvaluationCreate {
	_c.mutation.SetTeamScore(v)
	return _c
}

// SetProductScore sets the "product_score" field.
func (_c *EvaluationCreate) SetProductScore(v float64) *EvaluationCreate {
	_c.mutation.SetProductScore(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *EvaluationCreate) SetRiskScore(v float64) *EvaluationCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *EvaluationCreate) SetOverallScore(v float64) *EvaluationCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetConfidenceLower sets the "confidence_lower" field.
func (_c *EvaluationCreate) SetConfidenceLower(v float64) *EvaluationCreate {
	_c.mutation.SetConfidenceLower(v)
	return _c
}

// SetConfidenceUpper sets the "confidence_upper" field.
func (_c *EvaluationCreate) SetConfidenceUpper(v float64) *EvaluationCreate {
	_c.mutation.SetConfidenceUpper(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *EvaluationCreate) SetRecommendation(v string) *EvaluationCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *EvaluationCreate) SetReasoning(v json.RawMessage) *EvaluationCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationCreate) SetCreatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCreatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationCreate) SetID(v uuid.UUID) *EvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableID(v *uuid.UUID) *EvaluationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *EvaluationCreate) SetDocument(v *Document) *EvaluationCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := evaluation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Evaluation.document_id"`)}
	}
	if _, ok := _c.mutation.FinancialScore(); !ok {
		return &ValidationError{Name: "financial_score", err: errors.New(`ent: missing required field "Evaluation.financial_score"`)}
	}
	if _, ok := _c.mutation.MarketScore(); !ok {
		return &ValidationError{Name: "market_score", err: errors.New(`ent: missing required field "Evaluation.market_score"`)}
	}
	if _, ok := _c.mutation.TeamScore(); !ok {
		return &ValidationError{Name: "team_score", err: errors.New(`ent: missing required field "Evaluation.team_score"`)}
	}
	if _, ok := _c.mutation.ProductScore(); !ok {
		return &ValidationError{Name: "product_score", err: errors.New(`ent: missing required field "Evaluation.product_score"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Evaluation.risk_score"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "Evaluation.overall_score"`)}
	}
	if _, ok := _c.mutation.ConfidenceLower(); !ok {
		return &ValidationError{Name: "confidence_lower", err: errors.New(`ent: missing required field "Evaluation.confidence_lower"`)}
	}
	if _, ok := _c.mutation.ConfidenceUpper(); !ok {
		return &ValidationError{Name: "confidence_upper", err: errors.New(`ent: missing required field "Evaluation.confidence_upper"`)}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "Evaluation.recommendation"`)}
	}
	if v, ok := _c.mutation.Recommendation(); ok {
		if err := evaluation.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Evaluation.recommendation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evaluation.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Evaluation.document"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FinancialScore(); ok {
		_spec.SetField(evaluation.FieldFinancialScore, field.TypeFloat64, value)
		_node.FinancialScore = value
	}
	if value, ok := _c.mutation.MarketScore(); ok {
		_spec.SetField(evaluation.FieldMarketScore, field.TypeFloat64, value)
		_node.MarketScore = value
	}
	if value, ok := _c.mutation.TeamScore(); ok {
		_spec.SetField(evaluation.FieldTeamScore, field.TypeFloat64, value)
		_node.TeamScore = value
	}
	if value, ok := _c.mutation.ProductScore(); ok {
		_spec.SetField(evaluation.FieldProductScore, field.TypeFloat64, value)
		_node.ProductScore = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(evaluation.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.ConfidenceLower(); ok {
		_spec.SetField(evaluation.FieldConfidenceLower, field.TypeFloat64, value)
		_node.ConfidenceLower = value
	}
	if value, ok := _c.mutation.ConfidenceUpper(); ok {
		_spec.SetField(evaluation.FieldConfidenceUpper, field.TypeFloat64, value)
		_node.ConfidenceUpper = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(evaluation.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(evaluation.FieldReasoning, field.TypeJSON, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
