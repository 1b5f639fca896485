// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVentureID holds the string denoting the venture_id field in the database.
	FieldVentureID = "venture_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldProcessingStartedAt holds the string denoting the processing_started_at field in the database.
	FieldProcessingStartedAt = "processing_started_at"
	// FieldProcessingCompletedAt holds the string denoting the processing_completed_at field in the database.
	FieldProcessingCompletedAt = "processing_completed_at"
	// FieldProcessingError holds the string denoting the processing_error field in the database.
	FieldProcessingError = "processing_error"
	// FieldExtractedContent holds the string denoting the extracted_content field in the database.
	FieldExtractedContent = "extracted_content"
	// FieldStructuredData holds the string denoting the structured_data field in the database.
	FieldStructuredData = "structured_data"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldFinancialData holds the string denoting the financial_data field in the database.
	FieldFinancialData = "financial_data"
	// FieldQualityMetrics holds the string denoting the quality_metrics field in the database.
	FieldQualityMetrics = "quality_metrics"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldTextQuality holds the string denoting the text_quality field in the database.
	FieldTextQuality = "text_quality"
	// FieldDataCompleteness holds the string denoting the data_completeness field in the database.
	FieldDataCompleteness = "data_completeness"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVenture holds the string denoting the venture edge name in mutations.
	EdgeVenture = "venture"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// VentureTable is the table that holds the venture relation/edge.
	VentureTable = "documents"
	// VentureInverseTable is the table name for the Venture entity.
	// It exists in this package in order to avoid circular dependency with the "venture" package.
	VentureInverseTable = "ventures"
	// VentureColumn is the table column denoting the venture relation/edge.
	VentureColumn = "venture_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "evaluations"
	// EvaluationsInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationsInverseTable = "evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldVentureID,
	FieldFilename,
	FieldOriginalFilename,
	FieldFileType,
	FieldFormat,
	FieldSourcePath,
	FieldFileSize,
	FieldProcessingStatus,
	FieldProcessingStartedAt,
	FieldProcessingCompletedAt,
	FieldProcessingError,
	FieldExtractedContent,
	FieldStructuredData,
	FieldEntities,
	FieldFinancialData,
	FieldQualityMetrics,
	FieldDocumentType,
	FieldConfidenceScore,
	FieldTextQuality,
	FieldDataCompleteness,
	FieldFullText,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVentureID orders the results by the venture_id field.
func ByVentureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVentureID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByProcessingStartedAt orders the results by the processing_started_at field.
func ByProcessingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStartedAt, opts...).ToFunc()
}

// ByProcessingCompletedAt orders the results by the processing_completed_at field.
func ByProcessingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingCompletedAt, opts...).ToFunc()
}

// ByProcessingError orders the results by the processing_error field.
func ByProcessingError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingError, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByTextQuality orders the results by the text_quality field.
func ByTextQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextQuality, opts...).ToFunc()
}

// ByDataCompleteness orders the results by the data_completeness field.
func ByDataCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataCompleteness, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVentureField orders the results by venture field.
func ByVentureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVentureStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVentureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VentureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VentureTable, VentureColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
