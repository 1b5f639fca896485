package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/export"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

type EvaluationService struct {
	dealdeskpb.UnimplementedEvaluationsServiceServer
	evaluationRepo repository.EvaluationRepository
	exporter       *export.Service
	logger         *slog.Logger
}

func NewEvaluationService(evaluationRepo repository.EvaluationRepository, exporter *export.Service, logger *slog.Logger) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		exporter:       exporter,
		logger:         logger,
	}
}

func (s *EvaluationService) GetLatestEvaluation(ctx context.Context, req *dealdeskpb.GetLatestEvaluationRequest) (*dealdeskpb.GetLatestEvaluationResponse, error) {
	documentID, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	eval, err := s.evaluationRepo.LatestEvaluation(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "no evaluation for document")
		}
		s.logger.Error("failed to get latest evaluation", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "get evaluation: %v", err)
	}
	return &dealdeskpb.GetLatestEvaluationResponse{Evaluation: utils.ToPBEvaluation(eval)}, nil
}

func (s *EvaluationService) ListEvaluations(ctx context.Context, req *dealdeskpb.ListEvaluationsRequest) (*dealdeskpb.ListEvaluationsResponse, error) {
	documentID, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	evals, err := s.evaluationRepo.ListByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to list evaluations", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "list evaluations: %v", err)
	}

	out := make([]*dealdeskpb.Evaluation, 0, len(evals))
	for _, e := range evals {
		out = append(out, utils.ToPBEvaluation(e))
	}
	return &dealdeskpb.ListEvaluationsResponse{Evaluations: out}, nil
}

func (s *EvaluationService) ExportEvaluations(ctx context.Context, req *dealdeskpb.ExportEvaluationsRequest) (*dealdeskpb.ExportEvaluationsResponse, error) {
	ventureID, err := uuid.Parse(req.GetVentureId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "venture_id must be a UUID")
	}

	data, err := s.exporter.ExportEvaluationsXLSX(ctx, ventureID)
	if err != nil {
		s.logger.Error("failed to export evaluations", "venture_id", ventureID, "error", err)
		return nil, status.Errorf(codes.Internal, "export evaluations: %v", err)
	}

	filename := fmt.Sprintf("evaluations-%s-%s.xlsx", ventureID, time.Now().UTC().Format("20060102-150405"))
	return &dealdeskpb.ExportEvaluationsResponse{Xlsx: data, Filename: filename}, nil
}
