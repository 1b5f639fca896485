package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/document"
	"github.com/nnamdi-udeh/dealdesk/gen/ent/evaluation"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
	"github.com/nnamdi-udeh/dealdesk/internal/utils"
)

type EvaluationRepository interface {
	CreateEvaluation(ctx context.Context, documentID uuid.UUID, result *score.ScoreResult) (*entity.Evaluation, error)
	LatestEvaluation(ctx context.Context, documentID uuid.UUID) (*entity.Evaluation, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Evaluation, error)
	ListByVenture(ctx context.Context, ventureID uuid.UUID) ([]*entity.Evaluation, error)
}

type evaluationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEvaluationRepository(client *ent.Client, logger *slog.Logger) EvaluationRepository {
	return &evaluationRepository{client: client, logger: logger}
}

func (r *evaluationRepository) CreateEvaluation(ctx context.Context, documentID uuid.UUID, result *score.ScoreResult) (*entity.Evaluation, error) {
	reasoning, err := json.Marshal(result.Reasoning)
	if err != nil {
		return nil, err
	}

	e, err := r.client.Evaluation.Create().
		SetDocumentID(documentID).
		SetFinancialScore(result.FinancialScore).
		SetMarketScore(result.MarketScore).
		SetTeamScore(result.TeamScore).
		SetProductScore(result.ProductScore).
		SetRiskScore(result.RiskScore).
		SetOverallScore(result.OverallScore).
		SetConfidenceLower(result.ConfidenceLower).
		SetConfidenceUpper(result.ConfidenceUpper).
		SetRecommendation(string(result.Recommendation)).
		SetReasoning(reasoning).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create evaluation", "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("evaluation created",
		"evaluation_id", e.ID,
		"document_id", documentID,
		"overall_score", result.OverallScore,
		"recommendation", string(result.Recommendation))
	return utils.ToEvaluation(e), nil
}

func (r *evaluationRepository) LatestEvaluation(ctx context.Context, documentID uuid.UUID) (*entity.Evaluation, error) {
	e, err := r.client.Evaluation.Query().
		Where(evaluation.DocumentID(documentID)).
		Order(evaluation.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToEvaluation(e), nil
}

func (r *evaluationRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Evaluation, error) {
	evals, err := r.client.Evaluation.Query().
		Where(evaluation.DocumentID(documentID)).
		Order(evaluation.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list evaluations", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.Evaluation, len(evals))
	for i, e := range evals {
		result[i] = utils.ToEvaluation(e)
	}
	return result, nil
}

func (r *evaluationRepository) ListByVenture(ctx context.Context, ventureID uuid.UUID) ([]*entity.Evaluation, error) {
	evals, err := r.client.Evaluation.Query().
		Where(evaluation.HasDocumentWith(document.VentureID(ventureID))).
		Order(evaluation.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list venture evaluations", "venture_id", ventureID, "error", err)
		return nil, err
	}
	result := make([]*entity.Evaluation, len(evals))
	for i, e := range evals {
		result[i] = utils.ToEvaluation(e)
	}
	return result, nil
}
