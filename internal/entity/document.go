package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded diligence file and its pipeline
// outputs for data transfer between layers. Derived fields are nil
// until a run completes.
type Document struct {
	ID               uuid.UUID `json:"id"`
	VentureID        uuid.UUID `json:"venture_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"`
	Format           string    `json:"format"`
	SourcePath       string    `json:"source_path"`
	FileSize         int       `json:"file_size"`

	ProcessingStatus      string     `json:"processing_status"`
	ProcessingStartedAt   *time.Time `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time `json:"processing_completed_at,omitempty"`
	ProcessingError       *string    `json:"processing_error,omitempty"`

	ExtractedContent json.RawMessage `json:"extracted_content,omitempty"`
	StructuredData   json.RawMessage `json:"structured_data,omitempty"`
	Entities         json.RawMessage `json:"entities,omitempty"`
	FinancialData    json.RawMessage `json:"financial_data,omitempty"`
	QualityMetrics   json.RawMessage `json:"quality_metrics,omitempty"`

	DocumentType     *string  `json:"document_type,omitempty"`
	ConfidenceScore  *float64 `json:"confidence_score,omitempty"`
	TextQuality      *float64 `json:"text_quality,omitempty"`
	DataCompleteness *float64 `json:"data_completeness,omitempty"`
	FullText         *string  `json:"full_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
