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
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetVentureID sets the "venture_id" field.
func (_c *DocumentCreate) SetVentureID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetVentureID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *DocumentCreate) SetOriginalFilename(v string) *DocumentCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *DocumentCreate) SetFileType(v string) *DocumentCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *DocumentCreate) SetFormat(v string) *DocumentCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *DocumentCreate) SetSourcePath(v string) *DocumentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *DocumentCreate) SetProcessingStatus(v string) *DocumentCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_c *DocumentCreate) SetProcessingStartedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessingStartedAt(v)
	return _c
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingStartedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessingStartedAt(*v)
	}
	return _c
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_c *DocumentCreate) SetProcessingCompletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessingCompletedAt(v)
	return _c
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingCompletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessingCompletedAt(*v)
	}
	return _c
}

// SetProcessingError sets the "processing_error" field.
func (_c *DocumentCreate) SetProcessingError(v string) *DocumentCreate {
	_c.mutation.SetProcessingError(v)
	return _c
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetProcessingError(*v)
	}
	return _c
}

// SetExtractedContent sets the "extracted_content" field.
func (_c *DocumentCreate) SetExtractedContent(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetExtractedContent(v)
	return _c
}

// SetStructuredData sets the "structured_data" field.
func (_c *DocumentCreate) SetStructuredData(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetStructuredData(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *DocumentCreate) SetEntities(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetFinancialData sets the "financial_data" field.
func (_c *DocumentCreate) SetFinancialData(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetFinancialData(v)
	return _c
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_c *DocumentCreate) SetQualityMetrics(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetQualityMetrics(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentCreate) SetDocumentType(v string) *DocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocumentType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocumentType(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DocumentCreate) SetConfidenceScore(v float64) *DocumentCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableConfidenceScore(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetTextQuality sets the "text_quality" field.
func (_c *DocumentCreate) SetTextQuality(v float64) *DocumentCreate {
	_c.mutation.SetTextQuality(v)
	return _c
}

// SetNillableTextQuality sets the "text_quality" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTextQuality(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetTextQuality(*v)
	}
	return _c
}

// SetDataCompleteness sets the "data_completeness" field.
func (_c *DocumentCreate) SetDataCompleteness(v float64) *DocumentCreate {
	_c.mutation.SetDataCompleteness(v)
	return _c
}

// SetNillableDataCompleteness sets the "data_completeness" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDataCompleteness(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetDataCompleteness(*v)
	}
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *DocumentCreate) SetFullText(v string) *DocumentCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFullText(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVenture sets the "venture" edge to the Venture entity.
func (_c *DocumentCreate) SetVenture(v *Venture) *DocumentCreate {
	return _c.SetVentureID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *DocumentCreate) AddEvaluationIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *DocumentCreate) AddEvaluations(v ...*Evaluation) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := document.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.VentureID(); !ok {
		return &ValidationError{Name: "venture_id", err: errors.New(`ent: missing required field "Document.venture_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Document.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "Document.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Document.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Document.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Document.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if len(_c.mutation.VentureIDs()) == 0 {
		return &ValidationError{Name: "venture", err: errors.New(`ent: missing required edge "Document.venture"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
		_node.ProcessingStartedAt = &value
	}
	if value, ok := _c.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
		_node.ProcessingCompletedAt = &value
	}
	if value, ok := _c.mutation.ProcessingError(); ok {
		_spec.SetField(document.FieldProcessingError, field.TypeString, value)
		_node.ProcessingError = &value
	}
	if value, ok := _c.mutation.ExtractedContent(); ok {
		_spec.SetField(document.FieldExtractedContent, field.TypeJSON, value)
		_node.ExtractedContent = value
	}
	if value, ok := _c.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
		_node.StructuredData = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(document.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.FinancialData(); ok {
		_spec.SetField(document.FieldFinancialData, field.TypeJSON, value)
		_node.FinancialData = value
	}
	if value, ok := _c.mutation.QualityMetrics(); ok {
		_spec.SetField(document.FieldQualityMetrics, field.TypeJSON, value)
		_node.QualityMetrics = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.TextQuality(); ok {
		_spec.SetField(document.FieldTextQuality, field.TypeFloat64, value)
		_node.TextQuality = &value
	}
	if value, ok := _c.mutation.DataCompleteness(); ok {
		_spec.SetField(document.FieldDataCompleteness, field.TypeFloat64, value)
		_node.DataCompleteness = &value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
		_node.FullText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VentureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.VentureTable,
			Columns: []string{document.VentureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(venture.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VentureID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.EvaluationsTable,
			Columns: []string{document.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
