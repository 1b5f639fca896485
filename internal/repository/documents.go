package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

// CreateDocumentRequest wraps parameters for registering a document.
type CreateDocumentRequest struct {
	VentureID        uuid.UUID
	Filename         string
	OriginalFilename string
	FileType         string
	Format           constants.DocumentFormat
	SourcePath       string
	FileSize         int
}

// CompleteDocumentRequest carries every derived output of one
// successful pipeline run. StructuredData is the full analysis payload
// and must satisfy the analysis schema.
type CompleteDocumentRequest struct {
	ExtractedContent json.RawMessage
	StructuredData   json.RawMessage
	Entities         json.RawMessage
	FinancialData    json.RawMessage
	QualityMetrics   json.RawMessage

	DocumentType     string
	ConfidenceScore  float64
	TextQuality      float64
	DataCompleteness float64
	FullText         string
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListDocuments(ctx context.Context, ventureID uuid.UUID, status string) ([]*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, req *CompleteDocumentRequest) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ResetForReprocessing(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	d, err := r.client.Document.Create().
		SetVentureID(req.VentureID).
		SetFilename(req.Filename).
		SetOriginalFilename(req.OriginalFilename).
		SetFileType(req.FileType).
		SetFormat(string(req.Format)).
		SetSourcePath(req.SourcePath).
		SetFileSize(req.FileSize).
		SetProcessingStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "venture_id", req.VentureID, "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document registered", "document_id", d.ID, "venture_id", req.VentureID, "format", req.Format)
	return utils.ToDocument(d), nil
}

func (r *documentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, ventureID uuid.UUID, status string) ([]*entity.Document, error) {
	q := r.client.Document.Query().Where(document.VentureID(ventureID))
	if status != "" {
		q = q.Where(document.ProcessingStatus(status))
	}
	docs, err := q.Order(document.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "venture_id", ventureID, "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusProcessing)).
		SetProcessingStartedAt(time.Now()).
		ClearProcessingError().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processing", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document processing started", "document_id", id)
	return nil
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, req *CompleteDocumentRequest) error {
	if err := analyze.ValidateResultJSON(req.StructuredData); err != nil {
		r.logger.Error("analysis payload rejected", "document_id", id, "error", err)
		return err
	}

	_, err := r.client.Document.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusCompleted)).
		SetProcessingCompletedAt(time.Now()).
		ClearProcessingError().
		SetExtractedContent(req.ExtractedContent).
		SetStructuredData(req.StructuredData).
		SetEntities(req.Entities).
		SetFinancialData(req.FinancialData).
		SetQualityMetrics(req.QualityMetrics).
		SetDocumentType(req.DocumentType).
		SetConfidenceScore(req.ConfidenceScore).
		SetTextQuality(req.TextQuality).
		SetDataCompleteness(req.DataCompleteness).
		SetFullText(req.FullText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document completed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document processing completed", "document_id", id, "document_type", req.DocumentType)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusFailed)).
		SetProcessingCompletedAt(time.Now()).
		SetProcessingError(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document processing failed", "document_id", id, "error", message)
	return nil
}

// ResetForReprocessing clears every derived field as a block and puts
// the document back to PENDING. Reprocessing never merges with a prior
// run's outputs.
func (r *documentRepository) ResetForReprocessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusPending)).
		ClearProcessingStartedAt().
		ClearProcessingCompletedAt().
		ClearProcessingError().
		ClearExtractedContent().
		ClearStructuredData().
		ClearEntities().
		ClearFinancialData().
		ClearQualityMetrics().
		ClearDocumentType().
		ClearConfidenceScore().
		ClearTextQuality().
		ClearDataCompleteness().
		ClearFullText().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reset document", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document reset for reprocessing", "document_id", id)
	return nil
}
