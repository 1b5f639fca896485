// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// VentureID applies equality check predicate on the "venture_id" field. It's identical to VentureIDEQ.
func VentureID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVentureID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStartedAt applies equality check predicate on the "processing_started_at" field. It's identical to ProcessingStartedAtEQ.
func ProcessingStartedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingCompletedAt applies equality check predicate on the "processing_completed_at" field. It's identical to ProcessingCompletedAtEQ.
func ProcessingCompletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// ProcessingError applies equality check predicate on the "processing_error" field. It's identical to ProcessingErrorEQ.
func ProcessingError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingError, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentType, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidenceScore, v))
}

// TextQuality applies equality check predicate on the "text_quality" field. It's identical to TextQualityEQ.
func TextQuality(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextQuality, v))
}

// DataCompleteness applies equality check predicate on the "data_completeness" field. It's identical to DataCompletenessEQ.
func DataCompleteness(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDataCompleteness, v))
}

// FullText applies equality check predicate on the "full_text" field. It's identical to FullTextEQ.
func FullText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFullText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// VentureIDEQ applies the EQ predicate on the "venture_id" field.
func VentureIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVentureID, v))
}

// VentureIDNEQ applies the NEQ predicate on the "venture_id" field.
func VentureIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVentureID, v))
}

// VentureIDIn applies the In predicate on the "venture_id" field.
func VentureIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVentureID, vs...))
}

// VentureIDNotIn applies the NotIn predicate on the "venture_id" field.
func VentureIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVentureID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileType, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFormat, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// ProcessingStartedAtEQ applies the EQ predicate on the "processing_started_at" field.
func ProcessingStartedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtNEQ applies the NEQ predicate on the "processing_started_at" field.
func ProcessingStartedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIn applies the In predicate on the "processing_started_at" field.
func ProcessingStartedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtNotIn applies the NotIn predicate on the "processing_started_at" field.
func ProcessingStartedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtGT applies the GT predicate on the "processing_started_at" field.
func ProcessingStartedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtGTE applies the GTE predicate on the "processing_started_at" field.
func ProcessingStartedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLT applies the LT predicate on the "processing_started_at" field.
func ProcessingStartedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLTE applies the LTE predicate on the "processing_started_at" field.
func ProcessingStartedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIsNil applies the IsNil predicate on the "processing_started_at" field.
func ProcessingStartedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessingStartedAt))
}

// ProcessingStartedAtNotNil applies the NotNil predicate on the "processing_started_at" field.
func ProcessingStartedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessingStartedAt))
}

// ProcessingCompletedAtEQ applies the EQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtNEQ applies the NEQ predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIn applies the In predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtNotIn applies the NotIn predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingCompletedAt, vs...))
}

// ProcessingCompletedAtGT applies the GT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtGTE applies the GTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLT applies the LT predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtLTE applies the LTE predicate on the "processing_completed_at" field.
func ProcessingCompletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingCompletedAt, v))
}

// ProcessingCompletedAtIsNil applies the IsNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessingCompletedAt))
}

// ProcessingCompletedAtNotNil applies the NotNil predicate on the "processing_completed_at" field.
func ProcessingCompletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessingCompletedAt))
}

// ProcessingErrorEQ applies the EQ predicate on the "processing_error" field.
func ProcessingErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingError, v))
}

// ProcessingErrorNEQ applies the NEQ predicate on the "processing_error" field.
func ProcessingErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingError, v))
}

// ProcessingErrorIn applies the In predicate on the "processing_error" field.
func ProcessingErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingError, vs...))
}

// ProcessingErrorNotIn applies the NotIn predicate on the "processing_error" field.
func ProcessingErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingError, vs...))
}

// ProcessingErrorGT applies the GT predicate on the "processing_error" field.
func ProcessingErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingError, v))
}

// ProcessingErrorGTE applies the GTE predicate on the "processing_error" field.
func ProcessingErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingError, v))
}

// ProcessingErrorLT applies the LT predicate on the "processing_error" field.
func ProcessingErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingError, v))
}

// ProcessingErrorLTE applies the LTE predicate on the "processing_error" field.
func ProcessingErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingError, v))
}

// ProcessingErrorContains applies the Contains predicate on the "processing_error" field.
func ProcessingErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldProcessingError, v))
}

// ProcessingErrorHasPrefix applies the HasPrefix predicate on the "processing_error" field.
func ProcessingErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldProcessingError, v))
}

// ProcessingErrorHasSuffix applies the HasSuffix predicate on the "processing_error" field.
func ProcessingErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldProcessingError, v))
}

// ProcessingErrorIsNil applies the IsNil predicate on the "processing_error" field.
func ProcessingErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessingError))
}

// ProcessingErrorNotNil applies the NotNil predicate on the "processing_error" field.
func ProcessingErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessingError))
}

// ProcessingErrorEqualFold applies the EqualFold predicate on the "processing_error" field.
func ProcessingErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldProcessingError, v))
}

// ProcessingErrorContainsFold applies the ContainsFold predicate on the "processing_error" field.
func ProcessingErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldProcessingError, v))
}

// ExtractedContentIsNil applies the IsNil predicate on the "extracted_content" field.
func ExtractedContentIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedContent))
}

// ExtractedContentNotNil applies the NotNil predicate on the "extracted_content" field.
func ExtractedContentNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedContent))
}

// StructuredDataIsNil applies the IsNil predicate on the "structured_data" field.
func StructuredDataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldStructuredData))
}

// StructuredDataNotNil applies the NotNil predicate on the "structured_data" field.
func StructuredDataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldStructuredData))
}

// EntitiesIsNil applies the IsNil predicate on the "entities" field.
func EntitiesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldEntities))
}

// EntitiesNotNil applies the NotNil predicate on the "entities" field.
func EntitiesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldEntities))
}

// FinancialDataIsNil applies the IsNil predicate on the "financial_data" field.
func FinancialDataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFinancialData))
}

// FinancialDataNotNil applies the NotNil predicate on the "financial_data" field.
func FinancialDataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFinancialData))
}

// QualityMetricsIsNil applies the IsNil predicate on the "quality_metrics" field.
func QualityMetricsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldQualityMetrics))
}

// QualityMetricsNotNil applies the NotNil predicate on the "quality_metrics" field.
func QualityMetricsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldQualityMetrics))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeIsNil applies the IsNil predicate on the "document_type" field.
func DocumentTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocumentType))
}

// DocumentTypeNotNil applies the NotNil predicate on the "document_type" field.
func DocumentTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocumentType))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentType, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldConfidenceScore))
}

// TextQualityEQ applies the EQ predicate on the "text_quality" field.
func TextQualityEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextQuality, v))
}

// TextQualityNEQ applies the NEQ predicate on the "text_quality" field.
func TextQualityNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTextQuality, v))
}

// TextQualityIn applies the In predicate on the "text_quality" field.
func TextQualityIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTextQuality, vs...))
}

// TextQualityNotIn applies the NotIn predicate on the "text_quality" field.
func TextQualityNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTextQuality, vs...))
}

// TextQualityGT applies the GT predicate on the "text_quality" field.
func TextQualityGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTextQuality, v))
}

// TextQualityGTE applies the GTE predicate on the "text_quality" field.
func TextQualityGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTextQuality, v))
}

// TextQualityLT applies the LT predicate on the "text_quality" field.
func TextQualityLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTextQuality, v))
}

// TextQualityLTE applies the LTE predicate on the "text_quality" field.
func TextQualityLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTextQuality, v))
}

// TextQualityIsNil applies the IsNil predicate on the "text_quality" field.
func TextQualityIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTextQuality))
}

// TextQualityNotNil applies the NotNil predicate on the "text_quality" field.
func TextQualityNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTextQuality))
}

// DataCompletenessEQ applies the EQ predicate on the "data_completeness" field.
func DataCompletenessEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDataCompleteness, v))
}

// DataCompletenessNEQ applies the NEQ predicate on the "data_completeness" field.
func DataCompletenessNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDataCompleteness, v))
}

// DataCompletenessIn applies the In predicate on the "data_completeness" field.
func DataCompletenessIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDataCompleteness, vs...))
}

// DataCompletenessNotIn applies the NotIn predicate on the "data_completeness" field.
func DataCompletenessNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDataCompleteness, vs...))
}

// DataCompletenessGT applies the GT predicate on the "data_completeness" field.
func DataCompletenessGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDataCompleteness, v))
}

// DataCompletenessGTE applies the GTE predicate on the "data_completeness" field.
func DataCompletenessGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDataCompleteness, v))
}

// DataCompletenessLT applies the LT predicate on the "data_completeness" field.
func DataCompletenessLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDataCompleteness, v))
}

// DataCompletenessLTE applies the LTE predicate on the "data_completeness" field.
func DataCompletenessLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDataCompleteness, v))
}

// DataCompletenessIsNil applies the IsNil predicate on the "data_completeness" field.
func DataCompletenessIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDataCompleteness))
}

// DataCompletenessNotNil applies the NotNil predicate on the "data_completeness" field.
func DataCompletenessNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDataCompleteness))
}

// FullTextEQ applies the EQ predicate on the "full_text" field.
func FullTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFullText, v))
}

// FullTextNEQ applies the NEQ predicate on the "full_text" field.
func FullTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFullText, v))
}

// FullTextIn applies the In predicate on the "full_text" field.
func FullTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFullText, vs...))
}

// FullTextNotIn applies the NotIn predicate on the "full_text" field.
func FullTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFullText, vs...))
}

// FullTextGT applies the GT predicate on the "full_text" field.
func FullTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFullText, v))
}

// FullTextGTE applies the GTE predicate on the "full_text" field.
func FullTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFullText, v))
}

// FullTextLT applies the LT predicate on the "full_text" field.
func FullTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFullText, v))
}

// FullTextLTE applies the LTE predicate on the "full_text" field.
func FullTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFullText, v))
}

// FullTextContains applies the Contains predicate on the "full_text" field.
func FullTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFullText, v))
}

// FullTextHasPrefix applies the HasPrefix predicate on the "full_text" field.
func FullTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFullText, v))
}

// FullTextHasSuffix applies the HasSuffix predicate on the "full_text" field.
func FullTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFullText, v))
}

// FullTextIsNil applies the IsNil predicate on the "full_text" field.
func FullTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFullText))
}

// FullTextNotNil applies the NotNil predicate on the "full_text" field.
func FullTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFullText))
}

// FullTextEqualFold applies the EqualFold predicate on the "full_text" field.
func FullTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFullText, v))
}

// FullTextContainsFold applies the ContainsFold predicate on the "full_text" field.
func FullTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFullText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVenture applies the HasEdge predicate on the "venture" edge.
func HasVenture() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VentureTable, VentureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVentureWith applies the HasEdge predicate on the "venture" edge with a given conditions (other predicates).
func HasVentureWith(preds ...predicate.Venture) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newVentureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
