package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

type VentureService struct {
	dealdeskpb.UnimplementedVenturesServiceServer
	ventureRepo repository.VentureRepository
	logger      *slog.Logger
}

func NewVentureService(ventureRepo repository.VentureRepository, logger *slog.Logger) *VentureService {
	return &VentureService{ventureRepo: ventureRepo, logger: logger}
}

func (s *VentureService) CreateVenture(ctx context.Context, req *dealdeskpb.CreateVentureRequest) (*dealdeskpb.CreateVentureResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	v, err := s.ventureRepo.CreateVenture(ctx, &repository.CreateVentureRequest{
		Name:     name,
		Industry: strings.TrimSpace(req.GetIndustry()),
		Stage:    strings.TrimSpace(req.GetStage()),
	})
	if err != nil {
		s.logger.Error("failed to create venture", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create venture: %v", err)
	}
	return &dealdeskpb.CreateVentureResponse{Venture: utils.ToPBVenture(v)}, nil
}

func (s *VentureService) GetVenture(ctx context.Context, req *dealdeskpb.GetVentureRequest) (*dealdeskpb.GetVentureResponse, error) {
	id, err := uuid.Parse(req.GetVentureId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "venture_id must be a UUID")
	}

	v, err := s.ventureRepo.GetVenture(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "venture not found")
		}
		s.logger.Error("failed to get venture", "venture_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get venture: %v", err)
	}
	return &dealdeskpb.GetVentureResponse{Venture: utils.ToPBVenture(v)}, nil
}

func (s *VentureService) ListVentures(ctx context.Context, _ *dealdeskpb.ListVenturesRequest) (*dealdeskpb.ListVenturesResponse, error) {
	vs, err := s.ventureRepo.ListVentures(ctx)
	if err != nil {
		s.logger.Error("failed to list ventures", "error", err)
		return nil, status.Errorf(codes.Internal, "list ventures: %v", err)
	}

	out := make([]*dealdeskpb.Venture, 0, len(vs))
	for _, v := range vs {
		out = append(out, utils.ToPBVenture(v))
	}
	return &dealdeskpb.ListVenturesResponse{Ventures: out}, nil
}
