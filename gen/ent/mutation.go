// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/predicate"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument   = "Document"
	TypeEvaluation = "Evaluation"
	TypeVenture    = "Venture"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	filename                *string
	original_filename       *string
	file_type               *string
	format                  *string
	source_path             *string
	file_size               *int
	addfile_size            *int
	processing_status       *string
	processing_started_at   *time.Time
	processing_completed_at *time.Time
	processing_error        *string
	extracted_content       *json.RawMessage
	appendextracted_content json.RawMessage
	structured_data         *json.RawMessage
	appendstructured_data   json.RawMessage
	entities                *json.RawMessage
	appendentities          json.RawMessage
	financial_data          *json.RawMessage
	appendfinancial_data    json.RawMessage
	quality_metrics         *json.RawMessage
	appendquality_metrics   json.RawMessage
	document_type           *string
	confidence_score        *float64
	addconfidence_score     *float64
	text_quality            *float64
	addtext_quality         *float64
	data_completeness       *float64
	adddata_completeness    *float64
	full_text               *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	venture                 *uuid.UUID
	clearedventure          bool
	evaluations             map[uuid.UUID]struct{}
	removedevaluations      map[uuid.UUID]struct{}
	clearedevaluations      bool
	done                    bool
	oldValue                func(context.Context) (*Document, error)
	predicates              []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVentureID sets the "venture_id" field.
func (m *DocumentMutation) SetVentureID(u uuid.UUID) {
	m.venture = &u
}

// VentureID returns the value of the "venture_id" field in the mutation.
func (m *DocumentMutation) VentureID() (r uuid.UUID, exists bool) {
	v := m.venture
	if v == nil {
		return
	}
	return *v, true
}

// OldVentureID returns the old "venture_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVentureID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVentureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVentureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVentureID: %w", err)
	}
	return oldValue.VentureID, nil
}

// ResetVentureID resets all changes to the "venture_id" field.
func (m *DocumentMutation) ResetVentureID() {
	m.venture = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DocumentMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DocumentMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DocumentMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetFileType sets the "file_type" field.
func (m *DocumentMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *DocumentMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *DocumentMutation) ResetFileType() {
	m.file_type = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *DocumentMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *DocumentMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *DocumentMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *DocumentMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *DocumentMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *DocumentMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[document.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *DocumentMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, document.FieldProcessingStartedAt)
}

// SetProcessingCompletedAt sets the "processing_completed_at" field.
func (m *DocumentMutation) SetProcessingCompletedAt(t time.Time) {
	m.processing_completed_at = &t
}

// ProcessingCompletedAt returns the value of the "processing_completed_at" field in the mutation.
func (m *DocumentMutation) ProcessingCompletedAt() (r time.Time, exists bool) {
	v := m.processing_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingCompletedAt returns the old "processing_completed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingCompletedAt: %w", err)
	}
	return oldValue.ProcessingCompletedAt, nil
}

// ClearProcessingCompletedAt clears the value of the "processing_completed_at" field.
func (m *DocumentMutation) ClearProcessingCompletedAt() {
	m.processing_completed_at = nil
	m.clearedFields[document.FieldProcessingCompletedAt] = struct{}{}
}

// ProcessingCompletedAtCleared returns if the "processing_completed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingCompletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingCompletedAt]
	return ok
}

// ResetProcessingCompletedAt resets all changes to the "processing_completed_at" field.
func (m *DocumentMutation) ResetProcessingCompletedAt() {
	m.processing_completed_at = nil
	delete(m.clearedFields, document.FieldProcessingCompletedAt)
}

// SetProcessingError sets the "processing_error" field.
func (m *DocumentMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *DocumentMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *DocumentMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[document.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *DocumentMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, document.FieldProcessingError)
}

// SetExtractedContent sets the "extracted_content" field.
func (m *DocumentMutation) SetExtractedContent(jm json.RawMessage) {
	m.extracted_content = &jm
	m.appendextracted_content = nil
}

// ExtractedContent returns the value of the "extracted_content" field in the mutation.
func (m *DocumentMutation) ExtractedContent() (r json.RawMessage, exists bool) {
	v := m.extracted_content
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedContent returns the old "extracted_content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedContent: %w", err)
	}
	return oldValue.ExtractedContent, nil
}

// AppendExtractedContent adds jm to the "extracted_content" field.
func (m *DocumentMutation) AppendExtractedContent(jm json.RawMessage) {
	m.appendextracted_content = append(m.appendextracted_content, jm...)
}

// AppendedExtractedContent returns the list of values that were appended to the "extracted_content" field in this mutation.
func (m *DocumentMutation) AppendedExtractedContent() (json.RawMessage, bool) {
	if len(m.appendextracted_content) == 0 {
		return nil, false
	}
	return m.appendextracted_content, true
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (m *DocumentMutation) ClearExtractedContent() {
	m.extracted_content = nil
	m.appendextracted_content = nil
	m.clearedFields[document.FieldExtractedContent] = struct{}{}
}

// ExtractedContentCleared returns if the "extracted_content" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedContentCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedContent]
	return ok
}

// ResetExtractedContent resets all changes to the "extracted_content" field.
func (m *DocumentMutation) ResetExtractedContent() {
	m.extracted_content = nil
	m.appendextracted_content = nil
	delete(m.clearedFields, document.FieldExtractedContent)
}

// SetStructuredData sets the "structured_data" field.
func (m *DocumentMutation) SetStructuredData(jm json.RawMessage) {
	m.structured_data = &jm
	m.appendstructured_data = nil
}

// StructuredData returns the value of the "structured_data" field in the mutation.
func (m *DocumentMutation) StructuredData() (r json.RawMessage, exists bool) {
	v := m.structured_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredData returns the old "structured_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStructuredData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredData: %w", err)
	}
	return oldValue.StructuredData, nil
}

// AppendStructuredData adds jm to the "structured_data" field.
func (m *DocumentMutation) AppendStructuredData(jm json.RawMessage) {
	m.appendstructured_data = append(m.appendstructured_data, jm...)
}

// AppendedStructuredData returns the list of values that were appended to the "structured_data" field in this mutation.
func (m *DocumentMutation) AppendedStructuredData() (json.RawMessage, bool) {
	if len(m.appendstructured_data) == 0 {
		return nil, false
	}
	return m.appendstructured_data, true
}

// ClearStructuredData clears the value of the "structured_data" field.
func (m *DocumentMutation) ClearStructuredData() {
	m.structured_data = nil
	m.appendstructured_data = nil
	m.clearedFields[document.FieldStructuredData] = struct{}{}
}

// StructuredDataCleared returns if the "structured_data" field was cleared in this mutation.
func (m *DocumentMutation) StructuredDataCleared() bool {
	_, ok := m.clearedFields[document.FieldStructuredData]
	return ok
}

// ResetStructuredData resets all changes to the "structured_data" field.
func (m *DocumentMutation) ResetStructuredData() {
	m.structured_data = nil
	m.appendstructured_data = nil
	delete(m.clearedFields, document.FieldStructuredData)
}

// SetEntities sets the "entities" field.
func (m *DocumentMutation) SetEntities(jm json.RawMessage) {
	m.entities = &jm
	m.appendentities = nil
}

// Entities returns the value of the "entities" field in the mutation.
func (m *DocumentMutation) Entities() (r json.RawMessage, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldEntities(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// AppendEntities adds jm to the "entities" field.
func (m *DocumentMutation) AppendEntities(jm json.RawMessage) {
	m.appendentities = append(m.appendentities, jm...)
}

// AppendedEntities returns the list of values that were appended to the "entities" field in this mutation.
func (m *DocumentMutation) AppendedEntities() (json.RawMessage, bool) {
	if len(m.appendentities) == 0 {
		return nil, false
	}
	return m.appendentities, true
}

// ClearEntities clears the value of the "entities" field.
func (m *DocumentMutation) ClearEntities() {
	m.entities = nil
	m.appendentities = nil
	m.clearedFields[document.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *DocumentMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[document.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *DocumentMutation) ResetEntities() {
	m.entities = nil
	m.appendentities = nil
	delete(m.clearedFields, document.FieldEntities)
}

// SetFinancialData sets the "financial_data" field.
func (m *DocumentMutation) SetFinancialData(jm json.RawMessage) {
	m.financial_data = &jm
	m.appendfinancial_data = nil
}

// FinancialData returns the value of the "financial_data" field in the mutation.
func (m *DocumentMutation) FinancialData() (r json.RawMessage, exists bool) {
	v := m.financial_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFinancialData returns the old "financial_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFinancialData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinancialData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinancialData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinancialData: %w", err)
	}
	return oldValue.FinancialData, nil
}

// AppendFinancialData adds jm to the "financial_data" field.
func (m *DocumentMutation) AppendFinancialData(jm json.RawMessage) {
	m.appendfinancial_data = append(m.appendfinancial_data, jm...)
}

// AppendedFinancialData returns the list of values that were appended to the "financial_data" field in this mutation.
func (m *DocumentMutation) AppendedFinancialData() (json.RawMessage, bool) {
	if len(m.appendfinancial_data) == 0 {
		return nil, false
	}
	return m.appendfinancial_data, true
}

// ClearFinancialData clears the value of the "financial_data" field.
func (m *DocumentMutation) ClearFinancialData() {
	m.financial_data = nil
	m.appendfinancial_data = nil
	m.clearedFields[document.FieldFinancialData] = struct{}{}
}

// FinancialDataCleared returns if the "financial_data" field was cleared in this mutation.
func (m *DocumentMutation) FinancialDataCleared() bool {
	_, ok := m.clearedFields[document.FieldFinancialData]
	return ok
}

// ResetFinancialData resets all changes to the "financial_data" field.
func (m *DocumentMutation) ResetFinancialData() {
	m.financial_data = nil
	m.appendfinancial_data = nil
	delete(m.clearedFields, document.FieldFinancialData)
}

// SetQualityMetrics sets the "quality_metrics" field.
func (m *DocumentMutation) SetQualityMetrics(jm json.RawMessage) {
	m.quality_metrics = &jm
	m.appendquality_metrics = nil
}

// QualityMetrics returns the value of the "quality_metrics" field in the mutation.
func (m *DocumentMutation) QualityMetrics() (r json.RawMessage, exists bool) {
	v := m.quality_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityMetrics returns the old "quality_metrics" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldQualityMetrics(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityMetrics: %w", err)
	}
	return oldValue.QualityMetrics, nil
}

// AppendQualityMetrics adds jm to the "quality_metrics" field.
func (m *DocumentMutation) AppendQualityMetrics(jm json.RawMessage) {
	m.appendquality_metrics = append(m.appendquality_metrics, jm...)
}

// AppendedQualityMetrics returns the list of values that were appended to the "quality_metrics" field in this mutation.
func (m *DocumentMutation) AppendedQualityMetrics() (json.RawMessage, bool) {
	if len(m.appendquality_metrics) == 0 {
		return nil, false
	}
	return m.appendquality_metrics, true
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (m *DocumentMutation) ClearQualityMetrics() {
	m.quality_metrics = nil
	m.appendquality_metrics = nil
	m.clearedFields[document.FieldQualityMetrics] = struct{}{}
}

// QualityMetricsCleared returns if the "quality_metrics" field was cleared in this mutation.
func (m *DocumentMutation) QualityMetricsCleared() bool {
	_, ok := m.clearedFields[document.FieldQualityMetrics]
	return ok
}

// ResetQualityMetrics resets all changes to the "quality_metrics" field.
func (m *DocumentMutation) ResetQualityMetrics() {
	m.quality_metrics = nil
	m.appendquality_metrics = nil
	delete(m.clearedFields, document.FieldQualityMetrics)
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *DocumentMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[document.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *DocumentMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, document.FieldDocumentType)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *DocumentMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *DocumentMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *DocumentMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *DocumentMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *DocumentMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[document.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *DocumentMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[document.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *DocumentMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, document.FieldConfidenceScore)
}

// SetTextQuality sets the "text_quality" field.
func (m *DocumentMutation) SetTextQuality(f float64) {
	m.text_quality = &f
	m.addtext_quality = nil
}

// TextQuality returns the value of the "text_quality" field in the mutation.
func (m *DocumentMutation) TextQuality() (r float64, exists bool) {
	v := m.text_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldTextQuality returns the old "text_quality" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTextQuality(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextQuality: %w", err)
	}
	return oldValue.TextQuality, nil
}

// AddTextQuality adds f to the "text_quality" field.
func (m *DocumentMutation) AddTextQuality(f float64) {
	if m.addtext_quality != nil {
		*m.addtext_quality += f
	} else {
		m.addtext_quality = &f
	}
}

// AddedTextQuality returns the value that was added to the "text_quality" field in this mutation.
func (m *DocumentMutation) AddedTextQuality() (r float64, exists bool) {
	v := m.addtext_quality
	if v == nil {
		return
	}
	return *v, true
}

// ClearTextQuality clears the value of the "text_quality" field.
func (m *DocumentMutation) ClearTextQuality() {
	m.text_quality = nil
	m.addtext_quality = nil
	m.clearedFields[document.FieldTextQuality] = struct{}{}
}

// TextQualityCleared returns if the "text_quality" field was cleared in this mutation.
func (m *DocumentMutation) TextQualityCleared() bool {
	_, ok := m.clearedFields[document.FieldTextQuality]
	return ok
}

// ResetTextQuality resets all changes to the "text_quality" field.
func (m *DocumentMutation) ResetTextQuality() {
	m.text_quality = nil
	m.addtext_quality = nil
	delete(m.clearedFields, document.FieldTextQuality)
}

// SetDataCompleteness sets the "data_completeness" field.
func (m *DocumentMutation) SetDataCompleteness(f float64) {
	m.data_completeness = &f
	m.adddata_completeness = nil
}

// DataCompleteness returns the value of the "data_completeness" field in the mutation.
func (m *DocumentMutation) DataCompleteness() (r float64, exists bool) {
	v := m.data_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldDataCompleteness returns the old "data_completeness" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDataCompleteness(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataCompleteness: %w", err)
	}
	return oldValue.DataCompleteness, nil
}

// AddDataCompleteness adds f to the "data_completeness" field.
func (m *DocumentMutation) AddDataCompleteness(f float64) {
	if m.adddata_completeness != nil {
		*m.adddata_completeness += f
	} else {
		m.adddata_completeness = &f
	}
}

// AddedDataCompleteness returns the value that was added to the "data_completeness" field in this mutation.
func (m *DocumentMutation) AddedDataCompleteness() (r float64, exists bool) {
	v := m.adddata_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ClearDataCompleteness clears the value of the "data_completeness" field.
func (m *DocumentMutation) ClearDataCompleteness() {
	m.data_completeness = nil
	m.adddata_completeness = nil
	m.clearedFields[document.FieldDataCompleteness] = struct{}{}
}

// DataCompletenessCleared returns if the "data_completeness" field was cleared in this mutation.
func (m *DocumentMutation) DataCompletenessCleared() bool {
	_, ok := m.clearedFields[document.FieldDataCompleteness]
	return ok
}

// ResetDataCompleteness resets all changes to the "data_completeness" field.
func (m *DocumentMutation) ResetDataCompleteness() {
	m.data_completeness = nil
	m.adddata_completeness = nil
	delete(m.clearedFields, document.FieldDataCompleteness)
}

// SetFullText sets the "full_text" field.
func (m *DocumentMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *DocumentMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFullText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ClearFullText clears the value of the "full_text" field.
func (m *DocumentMutation) ClearFullText() {
	m.full_text = nil
	m.clearedFields[document.FieldFullText] = struct{}{}
}

// FullTextCleared returns if the "full_text" field was cleared in this mutation.
func (m *DocumentMutation) FullTextCleared() bool {
	_, ok := m.clearedFields[document.FieldFullText]
	return ok
}

// ResetFullText resets all changes to the "full_text" field.
func (m *DocumentMutation) ResetFullText() {
	m.full_text = nil
	delete(m.clearedFields, document.FieldFullText)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearVenture clears the "venture" edge to the Venture entity.
func (m *DocumentMutation) ClearVenture() {
	m.clearedventure = true
	m.clearedFields[document.FieldVentureID] = struct{}{}
}

// VentureCleared reports if the "venture" edge to the Venture entity was cleared.
func (m *DocumentMutation) VentureCleared() bool {
	return m.clearedventure
}

// VentureIDs returns the "venture" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VentureID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) VentureIDs() (ids []uuid.UUID) {
	if id := m.venture; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVenture resets all changes to the "venture" edge.
func (m *DocumentMutation) ResetVenture() {
	m.venture = nil
	m.clearedventure = false
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *DocumentMutation) AddEvaluationIDs(ids ...uuid.UUID) {
	if m.evaluations == nil {
		m.evaluations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *DocumentMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *DocumentMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *DocumentMutation) RemoveEvaluationIDs(ids ...uuid.UUID) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *DocumentMutation) RemovedEvaluationsIDs() (ids []uuid.UUID) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *DocumentMutation) EvaluationsIDs() (ids []uuid.UUID) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *DocumentMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.venture != nil {
		fields = append(fields, document.FieldVentureID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.original_filename != nil {
		fields = append(fields, document.FieldOriginalFilename)
	}
	if m.file_type != nil {
		fields = append(fields, document.FieldFileType)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.processing_status != nil {
		fields = append(fields, document.FieldProcessingStatus)
	}
	if m.processing_started_at != nil {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.processing_completed_at != nil {
		fields = append(fields, document.FieldProcessingCompletedAt)
	}
	if m.processing_error != nil {
		fields = append(fields, document.FieldProcessingError)
	}
	if m.extracted_content != nil {
		fields = append(fields, document.FieldExtractedContent)
	}
	if m.structured_data != nil {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.entities != nil {
		fields = append(fields, document.FieldEntities)
	}
	if m.financial_data != nil {
		fields = append(fields, document.FieldFinancialData)
	}
	if m.quality_metrics != nil {
		fields = append(fields, document.FieldQualityMetrics)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.confidence_score != nil {
		fields = append(fields, document.FieldConfidenceScore)
	}
	if m.text_quality != nil {
		fields = append(fields, document.FieldTextQuality)
	}
	if m.data_completeness != nil {
		fields = append(fields, document.FieldDataCompleteness)
	}
	if m.full_text != nil {
		fields = append(fields, document.FieldFullText)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldVentureID:
		return m.VentureID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldOriginalFilename:
		return m.OriginalFilename()
	case document.FieldFileType:
		return m.FileType()
	case document.FieldFormat:
		return m.Format()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldProcessingStatus:
		return m.ProcessingStatus()
	case document.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case document.FieldProcessingCompletedAt:
		return m.ProcessingCompletedAt()
	case document.FieldProcessingError:
		return m.ProcessingError()
	case document.FieldExtractedContent:
		return m.ExtractedContent()
	case document.FieldStructuredData:
		return m.StructuredData()
	case document.FieldEntities:
		return m.Entities()
	case document.FieldFinancialData:
		return m.FinancialData()
	case document.FieldQualityMetrics:
		return m.QualityMetrics()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldConfidenceScore:
		return m.ConfidenceScore()
	case document.FieldTextQuality:
		return m.TextQuality()
	case document.FieldDataCompleteness:
		return m.DataCompleteness()
	case document.FieldFullText:
		return m.FullText()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldVentureID:
		return m.OldVentureID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case document.FieldFileType:
		return m.OldFileType(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case document.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case document.FieldProcessingCompletedAt:
		return m.OldProcessingCompletedAt(ctx)
	case document.FieldProcessingError:
		return m.OldProcessingError(ctx)
	case document.FieldExtractedContent:
		return m.OldExtractedContent(ctx)
	case document.FieldStructuredData:
		return m.OldStructuredData(ctx)
	case document.FieldEntities:
		return m.OldEntities(ctx)
	case document.FieldFinancialData:
		return m.OldFinancialData(ctx)
	case document.FieldQualityMetrics:
		return m.OldQualityMetrics(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case document.FieldTextQuality:
		return m.OldTextQuality(ctx)
	case document.FieldDataCompleteness:
		return m.OldDataCompleteness(ctx)
	case document.FieldFullText:
		return m.OldFullText(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldVentureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVentureID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case document.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case document.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case document.FieldProcessingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingCompletedAt(v)
		return nil
	case document.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	case document.FieldExtractedContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedContent(v)
		return nil
	case document.FieldStructuredData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredData(v)
		return nil
	case document.FieldEntities:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case document.FieldFinancialData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinancialData(v)
		return nil
	case document.FieldQualityMetrics:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityMetrics(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case document.FieldTextQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextQuality(v)
		return nil
	case document.FieldDataCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataCompleteness(v)
		return nil
	case document.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, document.FieldConfidenceScore)
	}
	if m.addtext_quality != nil {
		fields = append(fields, document.FieldTextQuality)
	}
	if m.adddata_completeness != nil {
		fields = append(fields, document.FieldDataCompleteness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case document.FieldTextQuality:
		return m.AddedTextQuality()
	case document.FieldDataCompleteness:
		return m.AddedDataCompleteness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case document.FieldTextQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextQuality(v)
		return nil
	case document.FieldDataCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDataCompleteness(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldProcessingStartedAt) {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.FieldCleared(document.FieldProcessingCompletedAt) {
		fields = append(fields, document.FieldProcessingCompletedAt)
	}
	if m.FieldCleared(document.FieldProcessingError) {
		fields = append(fields, document.FieldProcessingError)
	}
	if m.FieldCleared(document.FieldExtractedContent) {
		fields = append(fields, document.FieldExtractedContent)
	}
	if m.FieldCleared(document.FieldStructuredData) {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.FieldCleared(document.FieldEntities) {
		fields = append(fields, document.FieldEntities)
	}
	if m.FieldCleared(document.FieldFinancialData) {
		fields = append(fields, document.FieldFinancialData)
	}
	if m.FieldCleared(document.FieldQualityMetrics) {
		fields = append(fields, document.FieldQualityMetrics)
	}
	if m.FieldCleared(document.FieldDocumentType) {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.FieldCleared(document.FieldConfidenceScore) {
		fields = append(fields, document.FieldConfidenceScore)
	}
	if m.FieldCleared(document.FieldTextQuality) {
		fields = append(fields, document.FieldTextQuality)
	}
	if m.FieldCleared(document.FieldDataCompleteness) {
		fields = append(fields, document.FieldDataCompleteness)
	}
	if m.FieldCleared(document.FieldFullText) {
		fields = append(fields, document.FieldFullText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case document.FieldProcessingCompletedAt:
		m.ClearProcessingCompletedAt()
		return nil
	case document.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	case document.FieldExtractedContent:
		m.ClearExtractedContent()
		return nil
	case document.FieldStructuredData:
		m.ClearStructuredData()
		return nil
	case document.FieldEntities:
		m.ClearEntities()
		return nil
	case document.FieldFinancialData:
		m.ClearFinancialData()
		return nil
	case document.FieldQualityMetrics:
		m.ClearQualityMetrics()
		return nil
	case document.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case document.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case document.FieldTextQuality:
		m.ClearTextQuality()
		return nil
	case document.FieldDataCompleteness:
		m.ClearDataCompleteness()
		return nil
	case document.FieldFullText:
		m.ClearFullText()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldVentureID:
		m.ResetVentureID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case document.FieldFileType:
		m.ResetFileType()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case document.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case document.FieldProcessingCompletedAt:
		m.ResetProcessingCompletedAt()
		return nil
	case document.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	case document.FieldExtractedContent:
		m.ResetExtractedContent()
		return nil
	case document.FieldStructuredData:
		m.ResetStructuredData()
		return nil
	case document.FieldEntities:
		m.ResetEntities()
		return nil
	case document.FieldFinancialData:
		m.ResetFinancialData()
		return nil
	case document.FieldQualityMetrics:
		m.ResetQualityMetrics()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case document.FieldTextQuality:
		m.ResetTextQuality()
		return nil
	case document.FieldDataCompleteness:
		m.ResetDataCompleteness()
		return nil
	case document.FieldFullText:
		m.ResetFullText()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.venture != nil {
		edges = append(edges, document.EdgeVenture)
	}
	if m.evaluations != nil {
		edges = append(edges, document.EdgeEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVenture:
		if id := m.venture; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevaluations != nil {
		edges = append(edges, document.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedventure {
		edges = append(edges, document.EdgeVenture)
	}
	if m.clearedevaluations {
		edges = append(edges, document.EdgeEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeVenture:
		return m.clearedventure
	case document.EdgeEvaluations:
		return m.clearedevaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeVenture:
		m.ClearVenture()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeVenture:
		m.ResetVenture()
		return nil
	case document.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	financial_score     *float64
	addfinancial_score  *float64
	market_score        *float64
	addmarket_score     *float64
	team_score          *float64
	addteam_score       *float64
	product_score       *float64
	addproduct_score    *float64
	risk_score          *float64
	addrisk_score       *float64
	overall_score       *float64
	addoverall_score    *float64
	confidence_lower    *float64
	addconfidence_lower *float64
	confidence_upper    *float64
	addconfidence_upper *float64
	recommendation      *string
	reasoning           *json.RawMessage
	appendreasoning     json.RawMessage
	created_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*Evaluation, error)
	predicates          []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id uuid.UUID) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *EvaluationMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *EvaluationMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *EvaluationMutation) ResetDocumentID() {
	m.document = nil
}

// SetFinancialScore sets the "financial_score" field.
func (m *EvaluationMutation) SetFinancialScore(f float64) {
	m.financial_score = &f
	m.addfinancial_score = nil
}

// FinancialScore returns the value of the "financial_score" field in the mutation.
func (m *EvaluationMutation) FinancialScore() (r float64, exists bool) {
	v := m.financial_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinancialScore returns the old "financial_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldFinancialScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinancialScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinancialScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinancialScore: %w", err)
	}
	return oldValue.FinancialScore, nil
}

// AddFinancialScore adds f to the "financial_score" field.
func (m *EvaluationMutation) AddFinancialScore(f float64) {
	if m.addfinancial_score != nil {
		*m.addfinancial_score += f
	} else {
		m.addfinancial_score = &f
	}
}

// AddedFinancialScore returns the value that was added to the "financial_score" field in this mutation.
func (m *EvaluationMutation) AddedFinancialScore() (r float64, exists bool) {
	v := m.addfinancial_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinancialScore resets all changes to the "financial_score" field.
func (m *EvaluationMutation) ResetFinancialScore() {
	m.financial_score = nil
	m.addfinancial_score = nil
}

// SetMarketScore sets the "market_score" field.
func (m *EvaluationMutation) SetMarketScore(f float64) {
	m.market_score = &f
	m.addmarket_score = nil
}

// MarketScore returns the value of the "market_score" field in the mutation.
func (m *EvaluationMutation) MarketScore() (r float64, exists bool) {
	v := m.market_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketScore returns the old "market_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldMarketScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketScore: %w", err)
	}
	return oldValue.MarketScore, nil
}

// AddMarketScore adds f to the "market_score" field.
func (m *EvaluationMutation) AddMarketScore(f float64) {
	if m.addmarket_score != nil {
		*m.addmarket_score += f
	} else {
		m.addmarket_score = &f
	}
}

// AddedMarketScore returns the value that was added to the "market_score" field in this mutation.
func (m *EvaluationMutation) AddedMarketScore() (r float64, exists bool) {
	v := m.addmarket_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarketScore resets all changes to the "market_score" field.
func (m *EvaluationMutation) ResetMarketScore() {
	m.market_score = nil
	m.addmarket_score = nil
}

// SetTeamScore sets the "team_score" field.
func (m *EvaluationMutation) SetTeamScore(f float64) {
	m.team_score = &f
	m.addteam_score = nil
}

// TeamScore returns the value of the "team_score" field in the mutation.
func (m *EvaluationMutation) TeamScore() (r float64, exists bool) {
	v := m.team_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamScore returns the old "team_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldTeamScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamScore: %w", err)
	}
	return oldValue.TeamScore, nil
}

// AddTeamScore adds f to the "team_score" field.
func (m *EvaluationMutation) AddTeamScore(f float64) {
	if m.addteam_score != nil {
		*m.addteam_score += f
	} else {
		m.addteam_score = &f
	}
}

// AddedTeamScore returns the value that was added to the "team_score" field in this mutation.
func (m *EvaluationMutation) AddedTeamScore() (r float64, exists bool) {
	v := m.addteam_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTeamScore resets all changes to the "team_score" field.
func (m *EvaluationMutation) ResetTeamScore() {
	m.team_score = nil
	m.addteam_score = nil
}

// SetProductScore sets the "product_score" field.
func (m *EvaluationMutation) SetProductScore(f float64) {
	m.product_score = &f
	m.addproduct_score = nil
}

// ProductScore returns the value of the "product_score" field in the mutation.
func (m *EvaluationMutation) ProductScore() (r float64, exists bool) {
	v := m.product_score
	if v == nil {
		return
	}
	return *v, true
}

// OldProductScore returns the old "product_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldProductScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductScore: %w", err)
	}
	return oldValue.ProductScore, nil
}

// AddProductScore adds f to the "product_score" field.
func (m *EvaluationMutation) AddProductScore(f float64) {
	if m.addproduct_score != nil {
		*m.addproduct_score += f
	} else {
		m.addproduct_score = &f
	}
}

// AddedProductScore returns the value that was added to the "product_score" field in this mutation.
func (m *EvaluationMutation) AddedProductScore() (r float64, exists bool) {
	v := m.addproduct_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetProductScore resets all changes to the "product_score" field.
func (m *EvaluationMutation) ResetProductScore() {
	m.product_score = nil
	m.addproduct_score = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *EvaluationMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *EvaluationMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *EvaluationMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *EvaluationMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *EvaluationMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *EvaluationMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *EvaluationMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *EvaluationMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *EvaluationMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *EvaluationMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetConfidenceLower sets the "confidence_lower" field.
func (m *EvaluationMutation) SetConfidenceLower(f float64) {
	m.confidence_lower = &f
	m.addconfidence_lower = nil
}

// ConfidenceLower returns the value of the "confidence_lower" field in the mutation.
func (m *EvaluationMutation) ConfidenceLower() (r float64, exists bool) {
	v := m.confidence_lower
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLower returns the old "confidence_lower" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldConfidenceLower(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLower: %w", err)
	}
	return oldValue.ConfidenceLower, nil
}

// AddConfidenceLower adds f to the "confidence_lower" field.
func (m *EvaluationMutation) AddConfidenceLower(f float64) {
	if m.addconfidence_lower != nil {
		*m.addconfidence_lower += f
	} else {
		m.addconfidence_lower = &f
	}
}

// AddedConfidenceLower returns the value that was added to the "confidence_lower" field in this mutation.
func (m *EvaluationMutation) AddedConfidenceLower() (r float64, exists bool) {
	v := m.addconfidence_lower
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceLower resets all changes to the "confidence_lower" field.
func (m *EvaluationMutation) ResetConfidenceLower() {
	m.confidence_lower = nil
	m.addconfidence_lower = nil
}

// SetConfidenceUpper sets the "confidence_upper" field.
func (m *EvaluationMutation) SetConfidenceUpper(f float64) {
	m.confidence_upper = &f
	m.addconfidence_upper = nil
}

// ConfidenceUpper returns the value of the "confidence_upper" field in the mutation.
func (m *EvaluationMutation) ConfidenceUpper() (r float64, exists bool) {
	v := m.confidence_upper
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceUpper returns the old "confidence_upper" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldConfidenceUpper(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceUpper is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceUpper requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceUpper: %w", err)
	}
	return oldValue.ConfidenceUpper, nil
}

// AddConfidenceUpper adds f to the "confidence_upper" field.
func (m *EvaluationMutation) AddConfidenceUpper(f float64) {
	if m.addconfidence_upper != nil {
		*m.addconfidence_upper += f
	} else {
		m.addconfidence_upper = &f
	}
}

// AddedConfidenceUpper returns the value that was added to the "confidence_upper" field in this mutation.
func (m *EvaluationMutation) AddedConfidenceUpper() (r float64, exists bool) {
	v := m.addconfidence_upper
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceUpper resets all changes to the "confidence_upper" field.
func (m *EvaluationMutation) ResetConfidenceUpper() {
	m.confidence_upper = nil
	m.addconfidence_upper = nil
}

// SetRecommendation sets the "recommendation" field.
func (m *EvaluationMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *EvaluationMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *EvaluationMutation) ResetRecommendation() {
	m.recommendation = nil
}

// SetReasoning sets the "reasoning" field.
func (m *EvaluationMutation) SetReasoning(jm json.RawMessage) {
	m.reasoning = &jm
	m.appendreasoning = nil
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *EvaluationMutation) Reasoning() (r json.RawMessage, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldReasoning(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// AppendReasoning adds jm to the "reasoning" field.
func (m *EvaluationMutation) AppendReasoning(jm json.RawMessage) {
	m.appendreasoning = append(m.appendreasoning, jm...)
}

// AppendedReasoning returns the list of values that were appended to the "reasoning" field in this mutation.
func (m *EvaluationMutation) AppendedReasoning() (json.RawMessage, bool) {
	if len(m.appendreasoning) == 0 {
		return nil, false
	}
	return m.appendreasoning, true
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *EvaluationMutation) ClearReasoning() {
	m.reasoning = nil
	m.appendreasoning = nil
	m.clearedFields[evaluation.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *EvaluationMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *EvaluationMutation) ResetReasoning() {
	m.reasoning = nil
	m.appendreasoning = nil
	delete(m.clearedFields, evaluation.FieldReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *EvaluationMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[evaluation.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *EvaluationMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *EvaluationMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.document != nil {
		fields = append(fields, evaluation.FieldDocumentID)
	}
	if m.financial_score != nil {
		fields = append(fields, evaluation.FieldFinancialScore)
	}
	if m.market_score != nil {
		fields = append(fields, evaluation.FieldMarketScore)
	}
	if m.team_score != nil {
		fields = append(fields, evaluation.FieldTeamScore)
	}
	if m.product_score != nil {
		fields = append(fields, evaluation.FieldProductScore)
	}
	if m.risk_score != nil {
		fields = append(fields, evaluation.FieldRiskScore)
	}
	if m.overall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.confidence_lower != nil {
		fields = append(fields, evaluation.FieldConfidenceLower)
	}
	if m.confidence_upper != nil {
		fields = append(fields, evaluation.FieldConfidenceUpper)
	}
	if m.recommendation != nil {
		fields = append(fields, evaluation.FieldRecommendation)
	}
	if m.reasoning != nil {
		fields = append(fields, evaluation.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldDocumentID:
		return m.DocumentID()
	case evaluation.FieldFinancialScore:
		return m.FinancialScore()
	case evaluation.FieldMarketScore:
		return m.MarketScore()
	case evaluation.FieldTeamScore:
		return m.TeamScore()
	case evaluation.FieldProductScore:
		return m.ProductScore()
	case evaluation.FieldRiskScore:
		return m.RiskScore()
	case evaluation.FieldOverallScore:
		return m.OverallScore()
	case evaluation.FieldConfidenceLower:
		return m.ConfidenceLower()
	case evaluation.FieldConfidenceUpper:
		return m.ConfidenceUpper()
	case evaluation.FieldRecommendation:
		return m.Recommendation()
	case evaluation.FieldReasoning:
		return m.Reasoning()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case evaluation.FieldFinancialScore:
		return m.OldFinancialScore(ctx)
	case evaluation.FieldMarketScore:
		return m.OldMarketScore(ctx)
	case evaluation.FieldTeamScore:
		return m.OldTeamScore(ctx)
	case evaluation.FieldProductScore:
		return m.OldProductScore(ctx)
	case evaluation.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case evaluation.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case evaluation.FieldConfidenceLower:
		return m.OldConfidenceLower(ctx)
	case evaluation.FieldConfidenceUpper:
		return m.OldConfidenceUpper(ctx)
	case evaluation.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case evaluation.FieldReasoning:
		return m.OldReasoning(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case evaluation.FieldFinancialScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinancialScore(v)
		return nil
	case evaluation.FieldMarketScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketScore(v)
		return nil
	case evaluation.FieldTeamScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamScore(v)
		return nil
	case evaluation.FieldProductScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductScore(v)
		return nil
	case evaluation.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case evaluation.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case evaluation.FieldConfidenceLower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLower(v)
		return nil
	case evaluation.FieldConfidenceUpper:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceUpper(v)
		return nil
	case evaluation.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case evaluation.FieldReasoning:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addfinancial_score != nil {
		fields = append(fields, evaluation.FieldFinancialScore)
	}
	if m.addmarket_score != nil {
		fields = append(fields, evaluation.FieldMarketScore)
	}
	if m.addteam_score != nil {
		fields = append(fields, evaluation.FieldTeamScore)
	}
	if m.addproduct_score != nil {
		fields = append(fields, evaluation.FieldProductScore)
	}
	if m.addrisk_score != nil {
		fields = append(fields, evaluation.FieldRiskScore)
	}
	if m.addoverall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.addconfidence_lower != nil {
		fields = append(fields, evaluation.FieldConfidenceLower)
	}
	if m.addconfidence_upper != nil {
		fields = append(fields, evaluation.FieldConfidenceUpper)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldFinancialScore:
		return m.AddedFinancialScore()
	case evaluation.FieldMarketScore:
		return m.AddedMarketScore()
	case evaluation.FieldTeamScore:
		return m.AddedTeamScore()
	case evaluation.FieldProductScore:
		return m.AddedProductScore()
	case evaluation.FieldRiskScore:
		return m.AddedRiskScore()
	case evaluation.FieldOverallScore:
		return m.AddedOverallScore()
	case evaluation.FieldConfidenceLower:
		return m.AddedConfidenceLower()
	case evaluation.FieldConfidenceUpper:
		return m.AddedConfidenceUpper()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldFinancialScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinancialScore(v)
		return nil
	case evaluation.FieldMarketScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarketScore(v)
		return nil
	case evaluation.FieldTeamScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTeamScore(v)
		return nil
	case evaluation.FieldProductScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProductScore(v)
		return nil
	case evaluation.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case evaluation.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case evaluation.FieldConfidenceLower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLower(v)
		return nil
	case evaluation.FieldConfidenceUpper:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceUpper(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldReasoning) {
		fields = append(fields, evaluation.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case evaluation.FieldFinancialScore:
		m.ResetFinancialScore()
		return nil
	case evaluation.FieldMarketScore:
		m.ResetMarketScore()
		return nil
	case evaluation.FieldTeamScore:
		m.ResetTeamScore()
		return nil
	case evaluation.FieldProductScore:
		m.ResetProductScore()
		return nil
	case evaluation.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case evaluation.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case evaluation.FieldConfidenceLower:
		m.ResetConfidenceLower()
		return nil
	case evaluation.FieldConfidenceUpper:
		m.ResetConfidenceUpper()
		return nil
	case evaluation.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case evaluation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, evaluation.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, evaluation.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// VentureMutation represents an operation that mutates the Venture nodes in the graph.
type VentureMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	industry         *string
	stage            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*Venture, error)
	predicates       []predicate.Venture
}

var _ ent.Mutation = (*VentureMutation)(nil)

// ventureOption allows management of the mutation configuration using functional options.
type ventureOption func(*VentureMutation)

// newVentureMutation creates new mutation for the Venture entity.
func newVentureMutation(c config, op Op, opts ...ventureOption) *VentureMutation {
	m := &VentureMutation{
		config:        c,
		op:            op,
		typ:           TypeVenture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVentureID sets the ID field of the mutation.
func withVentureID(id uuid.UUID) ventureOption {
	return func(m *VentureMutation) {
		var (
			err   error
			once  sync.Once
			value *Venture
		)
		m.oldValue = func(ctx context.Context) (*Venture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Venture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVenture sets the old Venture of the mutation.
func withVenture(node *Venture) ventureOption {
	return func(m *VentureMutation) {
		m.oldValue = func(context.Context) (*Venture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VentureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VentureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Venture entities.
func (m *VentureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VentureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VentureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Venture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VentureMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VentureMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Venture entity.
// If the Venture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VentureMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VentureMutation) ResetName() {
	m.name = nil
}

// SetIndustry sets the "industry" field.
func (m *VentureMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *VentureMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Venture entity.
// If the Venture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VentureMutation) OldIndustry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *VentureMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[venture.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *VentureMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[venture.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *VentureMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, venture.FieldIndustry)
}

// SetStage sets the "stage" field.
func (m *VentureMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *VentureMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Venture entity.
// If the Venture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VentureMutation) OldStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *VentureMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[venture.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *VentureMutation) StageCleared() bool {
	_, ok := m.clearedFields[venture.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *VentureMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, venture.FieldStage)
}

// SetCreatedAt sets the "created_at" field.
func (m *VentureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VentureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Venture entity.
// If the Venture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VentureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VentureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VentureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VentureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Venture entity.
// If the Venture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VentureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VentureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *VentureMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *VentureMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *VentureMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *VentureMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *VentureMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *VentureMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *VentureMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the VentureMutation builder.
func (m *VentureMutation) Where(ps ...predicate.Venture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VentureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VentureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Venture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VentureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VentureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Venture).
func (m *VentureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VentureMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, venture.FieldName)
	}
	if m.industry != nil {
		fields = append(fields, venture.FieldIndustry)
	}
	if m.stage != nil {
		fields = append(fields, venture.FieldStage)
	}
	if m.created_at != nil {
		fields = append(fields, venture.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, venture.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VentureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case venture.FieldName:
		return m.Name()
	case venture.FieldIndustry:
		return m.Industry()
	case venture.FieldStage:
		return m.Stage()
	case venture.FieldCreatedAt:
		return m.CreatedAt()
	case venture.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VentureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case venture.FieldName:
		return m.OldName(ctx)
	case venture.FieldIndustry:
		return m.OldIndustry(ctx)
	case venture.FieldStage:
		return m.OldStage(ctx)
	case venture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case venture.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Venture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VentureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case venture.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case venture.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case venture.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case venture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case venture.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Venture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VentureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VentureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VentureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Venture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VentureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(venture.FieldIndustry) {
		fields = append(fields, venture.FieldIndustry)
	}
	if m.FieldCleared(venture.FieldStage) {
		fields = append(fields, venture.FieldStage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VentureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VentureMutation) ClearField(name string) error {
	switch name {
	case venture.FieldIndustry:
		m.ClearIndustry()
		return nil
	case venture.FieldStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown Venture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VentureMutation) ResetField(name string) error {
	switch name {
	case venture.FieldName:
		m.ResetName()
		return nil
	case venture.FieldIndustry:
		m.ResetIndustry()
		return nil
	case venture.FieldStage:
		m.ResetStage()
		return nil
	case venture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case venture.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Venture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VentureMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documents != nil {
		edges = append(edges, venture.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VentureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case venture.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VentureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocuments != nil {
		edges = append(edges, venture.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VentureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case venture.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VentureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocuments {
		edges = append(edges, venture.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VentureMutation) EdgeCleared(name string) bool {
	switch name {
	case venture.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VentureMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Venture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VentureMutation) ResetEdge(name string) error {
	switch name {
	case venture.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Venture edge %s", name)
}
