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
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VentureID holds the value of the "venture_id" field.
	VentureID uuid.UUID `json:"venture_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// ProcessingStartedAt holds the value of the "processing_started_at" field.
	ProcessingStartedAt *time.Time `json:"processing_started_at,omitempty"`
	// ProcessingCompletedAt holds the value of the "processing_completed_at" field.
	ProcessingCompletedAt *time.Time `json:"processing_completed_at,omitempty"`
	// ProcessingError holds the value of the "processing_error" field.
	ProcessingError *string `json:"processing_error,omitempty"`
	// ExtractedContent holds the value of the "extracted_content" field.
	ExtractedContent json.RawMessage `json:"extracted_content,omitempty"`
	// StructuredData holds the value of the "structured_data" field.
	StructuredData json.RawMessage `json:"structured_data,omitempty"`
	// Entities holds the value of the "entities" field.
	Entities json.RawMessage `json:"entities,omitempty"`
	// FinancialData holds the value of the "financial_data" field.
	FinancialData json.RawMessage `json:"financial_data,omitempty"`
	// QualityMetrics holds the value of the "quality_metrics" field.
	QualityMetrics json.RawMessage `json:"quality_metrics,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType *string `json:"document_type,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// TextQuality holds the value of the "text_quality" field.
	TextQuality *float64 `json:"text_quality,omitempty"`
	// DataCompleteness holds the value of the "data_completeness" field.
	DataCompleteness *float64 `json:"data_completeness,omitempty"`
	// FullText holds the value of the "full_text" field.
	FullText *string `json:"full_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Venture holds the value of the venture edge.
	Venture *Venture `json:"venture,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VentureOrErr returns the Venture value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) VentureOrErr() (*Venture, error) {
	if e.Venture != nil {
		return e.Venture, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: venture.Label}
	}
	return nil, &NotLoadedError{edge: "venture"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[1] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldExtractedContent, document.FieldStructuredData, document.FieldEntities, document.FieldFinancialData, document.FieldQualityMetrics:
			values[i] = new([]byte)
		case document.FieldConfidenceScore, document.FieldTextQuality, document.FieldDataCompleteness:
			values[i] = new(sql.NullFloat64)
		case document.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case document.FieldFilename, document.FieldOriginalFilename, document.FieldFileType, document.FieldFormat, document.FieldSourcePath, document.FieldProcessingStatus, document.FieldProcessingError, document.FieldDocumentType, document.FieldFullText:
			values[i] = new(sql.NullString)
		case document.FieldProcessingStartedAt, document.FieldProcessingCompletedAt, document.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldVentureID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldVentureID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field venture_id", values[i])
			} else if value != nil {
				_m.VentureID = *value
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case document.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case document.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case document.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case document.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case document.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case document.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case document.FieldProcessingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processing_started_at", values[i])
			} else if value.Valid {
				_m.ProcessingStartedAt = new(time.Time)
				*_m.ProcessingStartedAt = value.Time
			}
		case document.FieldProcessingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processing_completed_at", values[i])
			} else if value.Valid {
				_m.ProcessingCompletedAt = new(time.Time)
				*_m.ProcessingCompletedAt = value.Time
			}
		case document.FieldProcessingError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_error", values[i])
			} else if value.Valid {
				_m.ProcessingError = new(string)
				*_m.ProcessingError = value.String
			}
		case document.FieldExtractedContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedContent); err != nil {
					return fmt.Errorf("unmarshal field extracted_content: %w", err)
				}
			}
		case document.FieldStructuredData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuredData); err != nil {
					return fmt.Errorf("unmarshal field structured_data: %w", err)
				}
			}
		case document.FieldEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entities); err != nil {
					return fmt.Errorf("unmarshal field entities: %w", err)
				}
			}
		case document.FieldFinancialData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field financial_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinancialData); err != nil {
					return fmt.Errorf("unmarshal field financial_data: %w", err)
				}
			}
		case document.FieldQualityMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quality_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QualityMetrics); err != nil {
					return fmt.Errorf("unmarshal field quality_metrics: %w", err)
				}
			}
		case document.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = new(string)
				*_m.DocumentType = value.String
			}
		case document.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case document.FieldTextQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field text_quality", values[i])
			} else if value.Valid {
				_m.TextQuality = new(float64)
				*_m.TextQuality = value.Float64
			}
		case document.FieldDataCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field data_completeness", values[i])
			} else if value.Valid {
				_m.DataCompleteness = new(float64)
				*_m.DataCompleteness = value.Float64
			}
		case document.FieldFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_text", values[i])
			} else if value.Valid {
				_m.FullText = new(string)
				*_m.FullText = value.String
			}
		case document.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVenture queries the "venture" edge of the Document entity.
func (_m *Document) QueryVenture() *VentureQuery {
	return NewDocumentClient(_m.config).QueryVenture(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Document entity.
func (_m *Document) QueryEvaluations() *EvaluationQuery {
	return NewDocumentClient(_m.config).QueryEvaluations(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("venture_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VentureID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	if v := _m.ProcessingStartedAt; v != nil {
		builder.WriteString("processing_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingCompletedAt; v != nil {
		builder.WriteString("processing_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingError; v != nil {
		builder.WriteString("processing_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedContent))
	builder.WriteString(", ")
	builder.WriteString("structured_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuredData))
	builder.WriteString(", ")
	builder.WriteString("entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entities))
	builder.WriteString(", ")
	builder.WriteString("financial_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinancialData))
	builder.WriteString(", ")
	builder.WriteString("quality_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityMetrics))
	builder.WriteString(", ")
	if v := _m.DocumentType; v != nil {
		builder.WriteString("document_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TextQuality; v != nil {
		builder.WriteString("text_quality=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DataCompleteness; v != nil {
		builder.WriteString("data_completeness=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FullText; v != nil {
		builder.WriteString("full_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
