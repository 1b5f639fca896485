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
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVentureID sets the "venture_id" field.
func (_u *DocumentUpdate) SetVentureID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetVentureID(v)
	return _u
}

// SetNillableVentureID sets the "venture_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVentureID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetVentureID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdate) SetOriginalFilename(v string) *DocumentUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOriginalFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdate) SetFileType(v string) *DocumentUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdate) SetFormat(v string) *DocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentUpdate) SetProcessingStatus(v string) *DocumentUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdate) SetProcessingStartedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdate) ClearProcessingStartedAt() *DocumentUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *DocumentUpdate) SetProcessingCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *DocumentUpdate) ClearProcessingCompletedAt() *DocumentUpdate {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *DocumentUpdate) SetProcessingError(v string) *DocumentUpdate {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *DocumentUpdate) ClearProcessingError() *DocumentUpdate {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *DocumentUpdate) SetExtractedContent(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// AppendExtractedContent appends value to the "extracted_content" field.
func (_u *DocumentUpdate) AppendExtractedContent(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendExtractedContent(v)
	return _u
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (_u *DocumentUpdate) ClearExtractedContent() *DocumentUpdate {
	_u.mutation.ClearExtractedContent()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdate) SetStructuredData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetStructuredData(v)
	return _u
}

// AppendStructuredData appends value to the "structured_data" field.
func (_u *DocumentUpdate) AppendStructuredData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdate) ClearStructuredData() *DocumentUpdate {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *DocumentUpdate) SetEntities(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *DocumentUpdate) AppendEntities(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *DocumentUpdate) ClearEntities() *DocumentUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetFinancialData sets the "financial_data" field.
func (_u *DocumentUpdate) SetFinancialData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetFinancialData(v)
	return _u
}

// AppendFinancialData appends value to the "financial_data" field.
func (_u *DocumentUpdate) AppendFinancialData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendFinancialData(v)
	return _u
}

// ClearFinancialData clears the value of the "financial_data" field.
func (_u *DocumentUpdate) ClearFinancialData() *DocumentUpdate {
	_u.mutation.ClearFinancialData()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *DocumentUpdate) SetQualityMetrics(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// AppendQualityMetrics appends value to the "quality_metrics" field.
func (_u *DocumentUpdate) AppendQualityMetrics(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *DocumentUpdate) ClearQualityMetrics() *DocumentUpdate {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdate) ClearDocumentType() *DocumentUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentUpdate) SetConfidenceScore(v float64) *DocumentUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidenceScore(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentUpdate) AddConfidenceScore(v float64) *DocumentUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentUpdate) ClearConfidenceScore() *DocumentUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetTextQuality sets the "text_quality" field.
func (_u *DocumentUpdate) SetTextQuality(v float64) *DocumentUpdate {
	_u.mutation.ResetTextQuality()
	_u.mutation.SetTextQuality(v)
	return _u
}

// SetNillableTextQuality sets the "text_quality" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTextQuality(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetTextQuality(*v)
	}
	return _u
}

// AddTextQuality adds value to the "text_quality" field.
func (_u *DocumentUpdate) AddTextQuality(v float64) *DocumentUpdate {
	_u.mutation.AddTextQuality(v)
	return _u
}

// ClearTextQuality clears the value of the "text_quality" field.
func (_u *DocumentUpdate) ClearTextQuality() *DocumentUpdate {
	_u.mutation.ClearTextQuality()
	return _u
}

// SetDataCompleteness sets the "data_completeness" field.
func (_u *DocumentUpdate) SetDataCompleteness(v float64) *DocumentUpdate {
	_u.mutation.ResetDataCompleteness()
	_u.mutation.SetDataCompleteness(v)
	return _u
}

// SetNillableDataCompleteness sets the "data_completeness" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDataCompleteness(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetDataCompleteness(*v)
	}
	return _u
}

// AddDataCompleteness adds value to the "data_completeness" field.
func (_u *DocumentUpdate) AddDataCompleteness(v float64) *DocumentUpdate {
	_u.mutation.AddDataCompleteness(v)
	return _u
}

// ClearDataCompleteness clears the value of the "data_completeness" field.
func (_u *DocumentUpdate) ClearDataCompleteness() *DocumentUpdate {
	_u.mutation.ClearDataCompleteness()
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *DocumentUpdate) SetFullText(v string) *DocumentUpdate {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFullText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *DocumentUpdate) ClearFullText() *DocumentUpdate {
	_u.mutation.ClearFullText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVenture sets the "venture" edge to the Venture entity.
func (_u *DocumentUpdate) SetVenture(v *Venture) *DocumentUpdate {
	return _u.SetVentureID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *DocumentUpdate) AddEvaluationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *DocumentUpdate) AddEvaluations(v ...*Evaluation) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearVenture clears the "venture" edge to the Venture entity.
func (_u *DocumentUpdate) ClearVenture() *DocumentUpdate {
	_u.mutation.ClearVenture()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *DocumentUpdate) ClearEvaluations() *DocumentUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *DocumentUpdate) RemoveEvaluationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *DocumentUpdate) RemoveEvaluations(v ...*Evaluation) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if _u.mutation.VentureCleared() && len(_u.mutation.VentureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.venture"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(document.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(document.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(document.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(document.FieldExtractedContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedContent, value)
		})
	}
	if _u.mutation.ExtractedContentCleared() {
		_spec.ClearField(document.FieldExtractedContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredData, value)
		})
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(document.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(document.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinancialData(); ok {
		_spec.SetField(document.FieldFinancialData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinancialData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFinancialData, value)
		})
	}
	if _u.mutation.FinancialDataCleared() {
		_spec.ClearField(document.FieldFinancialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(document.FieldQualityMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQualityMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldQualityMetrics, value)
		})
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(document.FieldQualityMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(document.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TextQuality(); ok {
		_spec.SetField(document.FieldTextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTextQuality(); ok {
		_spec.AddField(document.FieldTextQuality, field.TypeFloat64, value)
	}
	if _u.mutation.TextQualityCleared() {
		_spec.ClearField(document.FieldTextQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DataCompleteness(); ok {
		_spec.SetField(document.FieldDataCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataCompleteness(); ok {
		_spec.AddField(document.FieldDataCompleteness, field.TypeFloat64, value)
	}
	if _u.mutation.DataCompletenessCleared() {
		_spec.ClearField(document.FieldDataCompleteness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(document.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VentureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VentureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetVentureID sets the "venture_id" field.
func (_u *DocumentUpdateOne) SetVentureID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetVentureID(v)
	return _u
}

// SetNillableVentureID sets the "venture_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVentureID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetVentureID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdateOne) SetOriginalFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOriginalFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdateOne) SetFileType(v string) *DocumentUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdateOne) SetFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentUpdateOne) SetProcessingStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdateOne) SetProcessingStartedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdateOne) ClearProcessingStartedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (_u *DocumentUpdateOne) SetProcessingCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessingCompletedAt(v)
	return _u
}

// SetNillableProcessingCompletedAt sets the "processing_completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingCompletedAt(*v)
	}
	return _u
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (_u *DocumentUpdateOne) ClearProcessingCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessingCompletedAt()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *DocumentUpdateOne) SetProcessingError(v string) *DocumentUpdateOne {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *DocumentUpdateOne) ClearProcessingError() *DocumentUpdateOne {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *DocumentUpdateOne) SetExtractedContent(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// AppendExtractedContent appends value to the "extracted_content" field.
func (_u *DocumentUpdateOne) AppendExtractedContent(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendExtractedContent(v)
	return _u
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (_u *DocumentUpdateOne) ClearExtractedContent() *DocumentUpdateOne {
	_u.mutation.ClearExtractedContent()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdateOne) SetStructuredData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetStructuredData(v)
	return _u
}

// AppendStructuredData appends value to the "structured_data" field.
func (_u *DocumentUpdateOne) AppendStructuredData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdateOne) ClearStructuredData() *DocumentUpdateOne {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *DocumentUpdateOne) SetEntities(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *DocumentUpdateOne) AppendEntities(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *DocumentUpdateOne) ClearEntities() *DocumentUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetFinancialData sets the "financial_data" field.
func (_u *DocumentUpdateOne) SetFinancialData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetFinancialData(v)
	return _u
}

// AppendFinancialData appends value to the "financial_data" field.
func (_u *DocumentUpdateOne) AppendFinancialData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendFinancialData(v)
	return _u
}

// ClearFinancialData clears the value of the "financial_data" field.
func (_u *DocumentUpdateOne) ClearFinancialData() *DocumentUpdateOne {
	_u.mutation.ClearFinancialData()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *DocumentUpdateOne) SetQualityMetrics(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// AppendQualityMetrics appends value to the "quality_metrics" field.
func (_u *DocumentUpdateOne) AppendQualityMetrics(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *DocumentUpdateOne) ClearQualityMetrics() *DocumentUpdateOne {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdateOne) ClearDocumentType() *DocumentUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentUpdateOne) SetConfidenceScore(v float64) *DocumentUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidenceScore(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentUpdateOne) AddConfidenceScore(v float64) *DocumentUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentUpdateOne) ClearConfidenceScore() *DocumentUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetTextQuality sets the "text_quality" field.
func (_u *DocumentUpdateOne) SetTextQuality(v float64) *DocumentUpdateOne {
	_u.mutation.ResetTextQuality()
	_u.mutation.SetTextQuality(v)
	return _u
}

// SetNillableTextQuality sets the "text_quality" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTextQuality(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetTextQuality(*v)
	}
	return _u
}

// AddTextQuality adds value to the "text_quality" field.
func (_u *DocumentUpdateOne) AddTextQuality(v float64) *DocumentUpdateOne {
	_u.mutation.AddTextQuality(v)
	return _u
}

// ClearTextQuality clears the value of the "text_quality" field.
func (_u *DocumentUpdateOne) ClearTextQuality() *DocumentUpdateOne {
	_u.mutation.ClearTextQuality()
	return _u
}

// SetDataCompleteness sets the "data_completeness" field.
func (_u *DocumentUpdateOne) SetDataCompleteness(v float64) *DocumentUpdateOne {
	_u.mutation.ResetDataCompleteness()
	_u.mutation.SetDataCompleteness(v)
	return _u
}

// SetNillableDataCompleteness sets the "data_completeness" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDataCompleteness(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetDataCompleteness(*v)
	}
	return _u
}

// AddDataCompleteness adds value to the "data_completeness" field.
func (_u *DocumentUpdateOne) AddDataCompleteness(v float64) *DocumentUpdateOne {
	_u.mutation.AddDataCompleteness(v)
	return _u
}

// ClearDataCompleteness clears the value of the "data_completeness" field.
func (_u *DocumentUpdateOne) ClearDataCompleteness() *DocumentUpdateOne {
	_u.mutation.ClearDataCompleteness()
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *DocumentUpdateOne) SetFullText(v string) *DocumentUpdateOne {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFullText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *DocumentUpdateOne) ClearFullText() *DocumentUpdateOne {
	_u.mutation.ClearFullText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVenture sets the "venture" edge to the Venture entity.
func (_u *DocumentUpdateOne) SetVenture(v *Venture) *DocumentUpdateOne {
	return _u.SetVentureID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *DocumentUpdateOne) AddEvaluationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *DocumentUpdateOne) AddEvaluations(v ...*Evaluation) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearVenture clears the "venture" edge to the Venture entity.
func (_u *DocumentUpdateOne) ClearVenture() *DocumentUpdateOne {
	_u.mutation.ClearVenture()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *DocumentUpdateOne) ClearEvaluations() *DocumentUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *DocumentUpdateOne) RemoveEvaluationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *DocumentUpdateOne) RemoveEvaluations(v ...*Evaluation) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if _u.mutation.VentureCleared() && len(_u.mutation.VentureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.venture"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingCompletedAt(); ok {
		_spec.SetField(document.FieldProcessingCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingCompletedAtCleared() {
		_spec.ClearField(document.FieldProcessingCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(document.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(document.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(document.FieldExtractedContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldExtractedContent, value)
		})
	}
	if _u.mutation.ExtractedContentCleared() {
		_spec.ClearField(document.FieldExtractedContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredData, value)
		})
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(document.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(document.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinancialData(); ok {
		_spec.SetField(document.FieldFinancialData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinancialData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldFinancialData, value)
		})
	}
	if _u.mutation.FinancialDataCleared() {
		_spec.ClearField(document.FieldFinancialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(document.FieldQualityMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQualityMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldQualityMetrics, value)
		})
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(document.FieldQualityMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(document.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TextQuality(); ok {
		_spec.SetField(document.FieldTextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTextQuality(); ok {
		_spec.AddField(document.FieldTextQuality, field.TypeFloat64, value)
	}
	if _u.mutation.TextQualityCleared() {
		_spec.ClearField(document.FieldTextQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DataCompleteness(); ok {
		_spec.SetField(document.FieldDataCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDataCompleteness(); ok {
		_spec.AddField(document.FieldDataCompleteness, field.TypeFloat64, value)
	}
	if _u.mutation.DataCompletenessCleared() {
		_spec.ClearField(document.FieldDataCompleteness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(document.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(document.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VentureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VentureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
