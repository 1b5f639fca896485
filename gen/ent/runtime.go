// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nnamdi-udeh/dealdesk/db/ent/schema"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[3].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescFileType is the schema descriptor for file_type field.
	documentDescFileType := documentFields[4].Descriptor()
	// document.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	document.FileTypeValidator = documentDescFileType.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[5].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[6].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[7].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescProcessingStatus is the schema descriptor for processing_status field.
	documentDescProcessingStatus := documentFields[8].Descriptor()
	// document.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	document.DefaultProcessingStatus = documentDescProcessingStatus.Default.(string)
	// document.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	document.ProcessingStatusValidator = documentDescProcessingStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[22].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescRecommendation is the schema descriptor for recommendation field.
	evaluationDescRecommendation := evaluationFields[10].Descriptor()
	// evaluation.RecommendationValidator is a validator for the "recommendation" field. It is called by the builders before save.
	evaluation.RecommendationValidator = func() func(string) error {
		validators := evaluationDescRecommendation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(recommendation string) error {
			for _, fn := range fns {
				if err := fn(recommendation); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[12].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	// evaluationDescID is the schema descriptor for id field.
	evaluationDescID := evaluationFields[0].Descriptor()
	// evaluation.DefaultID holds the default value on creation for the id field.
	evaluation.DefaultID = evaluationDescID.Default.(func() uuid.UUID)
	ventureFields := schema.Venture{}.Fields()
	_ = ventureFields
	// ventureDescName is the schema descriptor for name field.
	ventureDescName := ventureFields[1].Descriptor()
	// venture.NameValidator is a validator for the "name" field. It is called by the builders before save.
	venture.NameValidator = ventureDescName.Validators[0].(func(string) error)
	// ventureDescCreatedAt is the schema descriptor for created_at field.
	ventureDescCreatedAt := ventureFields[4].Descriptor()
	// venture.DefaultCreatedAt holds the default value on creation for the created_at field.
	venture.DefaultCreatedAt = ventureDescCreatedAt.Default.(func() time.Time)
	// ventureDescUpdatedAt is the schema descriptor for updated_at field.
	ventureDescUpdatedAt := ventureFields[5].Descriptor()
	// venture.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	venture.DefaultUpdatedAt = ventureDescUpdatedAt.Default.(func() time.Time)
	// venture.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	venture.UpdateDefaultUpdatedAt = ventureDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ventureDescID is the schema descriptor for id field.
	ventureDescID := ventureFields[0].Descriptor()
	// venture.DefaultID holds the default value on creation for the id field.
	venture.DefaultID = ventureDescID.Default.(func() uuid.UUID)
}
