package server

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nnamdi-udeh/dealdesk/constants"
	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/async"
	"github.com/nnamdi-udeh/dealdesk/internal/common"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

type DocumentService struct {
	dealdeskpb.UnimplementedDocumentsServiceServer
	documentRepo repository.DocumentRepository
	ventureRepo  repository.VentureRepository
	queue        async.Queue
	logger       *slog.Logger
}

func NewDocumentService(
	documentRepo repository.DocumentRepository,
	ventureRepo repository.VentureRepository,
	queue async.Queue,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		ventureRepo:  ventureRepo,
		queue:        queue,
		logger:       logger,
	}
}

// RegisterDocument validates the upload, stores the document in PENDING,
// and enqueues a pipeline run. The call returns as soon as the job is
// queued; processing status is polled via GetDocument.
func (s *DocumentService) RegisterDocument(ctx context.Context, req *dealdeskpb.RegisterDocumentRequest) (*dealdeskpb.RegisterDocumentResponse, error) {
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("venture_id", req.GetVentureId(), common.UUID).
		Field("source_path", req.GetSourcePath(), common.Required)); err != nil {
		return nil, err
	}
	ventureID := uuid.MustParse(req.GetVentureId())
	sourcePath := strings.TrimSpace(req.GetSourcePath())

	if _, err := s.ventureRepo.GetVenture(ctx, ventureID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "venture not found")
		}
		return nil, status.Errorf(codes.Internal, "get venture: %v", err)
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "source file not accessible: %v", err)
	}

	fileType := strings.TrimSpace(req.GetFileType())
	if fileType == "" {
		fileType = constants.MapExtToMIME(filepath.Ext(sourcePath))
	}
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("file_type", fileType, common.SupportedMIMEType)); err != nil {
		return nil, err
	}
	format := constants.MapMIMEToFormat(fileType)

	originalFilename := strings.TrimSpace(req.GetOriginalFilename())
	if originalFilename == "" {
		originalFilename = filepath.Base(sourcePath)
	}

	doc, err := s.documentRepo.CreateDocument(ctx, &repository.CreateDocumentRequest{
		VentureID:        ventureID,
		Filename:         filepath.Base(sourcePath),
		OriginalFilename: originalFilename,
		FileType:         fileType,
		Format:           format,
		SourcePath:       sourcePath,
		FileSize:         int(info.Size()),
	})
	if err != nil {
		s.logger.Error("failed to register document", "venture_id", ventureID, "error", err)
		return nil, status.Errorf(codes.Internal, "register document: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("failed to enqueue document", "document_id", doc.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue document: %v", err)
	}

	return &dealdeskpb.RegisterDocumentResponse{
		Document: utils.ToPBDocument(doc),
		Queued:   true,
	}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *dealdeskpb.GetDocumentRequest) (*dealdeskpb.GetDocumentResponse, error) {
	doc, err := s.getDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	return &dealdeskpb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *dealdeskpb.ListDocumentsRequest) (*dealdeskpb.ListDocumentsResponse, error) {
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("venture_id", req.GetVentureId(), common.UUID)); err != nil {
		return nil, err
	}
	ventureID := uuid.MustParse(req.GetVentureId())
	filter := strings.TrimSpace(req.GetProcessingStatus())
	if filter != "" && !constants.IsValidStatus(filter) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown processing_status: %s", filter)
	}

	docs, err := s.documentRepo.ListDocuments(ctx, ventureID, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "venture_id", ventureID, "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}

	out := make([]*dealdeskpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &dealdeskpb.ListDocumentsResponse{Documents: out}, nil
}

// GetDocumentContent returns the full derived outputs. Only COMPLETED
// documents have them.
func (s *DocumentService) GetDocumentContent(ctx context.Context, req *dealdeskpb.GetDocumentContentRequest) (*dealdeskpb.GetDocumentContentResponse, error) {
	doc, err := s.getDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	if doc.ProcessingStatus != string(constants.StatusCompleted) {
		return nil, status.Errorf(codes.FailedPrecondition, "document is %s, content available once COMPLETED", doc.ProcessingStatus)
	}

	fullText := ""
	if doc.FullText != nil {
		fullText = *doc.FullText
	}
	return &dealdeskpb.GetDocumentContentResponse{
		Content: &dealdeskpb.DocumentContent{
			DocumentId:       doc.ID.String(),
			FullText:         fullText,
			ExtractedContent: doc.ExtractedContent,
			StructuredData:   doc.StructuredData,
			Entities:         doc.Entities,
			FinancialData:    doc.FinancialData,
			QualityMetrics:   doc.QualityMetrics,
		},
	}, nil
}

// ReprocessDocument queues a fresh pipeline run. Prior outputs are
// cleared before the run starts; a document mid-run cannot be queued
// again.
func (s *DocumentService) ReprocessDocument(ctx context.Context, req *dealdeskpb.ReprocessDocumentRequest) (*dealdeskpb.ReprocessDocumentResponse, error) {
	doc, err := s.getDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	if doc.ProcessingStatus == string(constants.StatusProcessing) {
		return nil, status.Error(codes.FailedPrecondition, "document is already being processed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		Reprocess:   true,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("failed to enqueue reprocess", "document_id", doc.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue reprocess: %v", err)
	}

	return &dealdeskpb.ReprocessDocumentResponse{
		Document: utils.ToPBDocument(doc),
		Queued:   true,
	}, nil
}

func (s *DocumentService) getDocument(ctx context.Context, rawID string) (*entity.Document, error) {
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("document_id", rawID, common.UUID)); err != nil {
		return nil, err
	}
	id := uuid.MustParse(rawID)
	doc, err := s.documentRepo.GetDocument(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get document: %v", err)
	}
	return doc, nil
}
