package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/venture"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

// CreateVentureRequest wraps parameters for creating a venture.
type CreateVentureRequest struct {
	Name     string
	Industry string
	Stage    string
}

type VentureRepository interface {
	CreateVenture(ctx context.Context, req *CreateVentureRequest) (*entity.Venture, error)
	GetVenture(ctx context.Context, id uuid.UUID) (*entity.Venture, error)
	ListVentures(ctx context.Context) ([]*entity.Venture, error)
}

type ventureRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVentureRepository(client *ent.Client, logger *slog.Logger) VentureRepository {
	return &ventureRepository{client: client, logger: logger}
}

func (r *ventureRepository) CreateVenture(ctx context.Context, req *CreateVentureRequest) (*entity.Venture, error) {
	builder := r.client.Venture.Create().SetName(req.Name)
	if req.Industry != "" {
		builder = builder.SetIndustry(req.Industry)
	}
	if req.Stage != "" {
		builder = builder.SetStage(req.Stage)
	}

	v, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create venture", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("venture created", "venture_id", v.ID, "name", v.Name)
	return utils.ToVenture(v), nil
}

func (r *ventureRepository) GetVenture(ctx context.Context, id uuid.UUID) (*entity.Venture, error) {
	v, err := r.client.Venture.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToVenture(v), nil
}

func (r *ventureRepository) ListVentures(ctx context.Context) ([]*entity.Venture, error) {
	vs, err := r.client.Venture.Query().Order(venture.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list ventures", "error", err)
		return nil, err
	}
	result := make([]*entity.Venture, len(vs))
	for i, v := range vs {
		result[i] = utils.ToVenture(v)
	}
	return result, nil
}
