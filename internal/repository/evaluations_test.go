package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

func sampleScore(overall float64) *score.ScoreResult {
	return &score.ScoreResult{
		FinancialScore:  70,
		MarketScore:     60,
		TeamScore:       55,
		ProductScore:    50,
		RiskScore:       50,
		OverallScore:    overall,
		ConfidenceLower: overall - 10,
		ConfidenceUpper: overall + 10,
		Recommendation:  constants.RecommendationHold,
		Reasoning: score.Reasoning{
			FinancialReasoning: "Moderate financial health: Limited financial data",
			KeyStrengths:       []string{"Revenue generation demonstrated"},
			KeyConcerns:        []string{},
		},
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	client := openTestClient(t)
	_, _, ventureID, documentID := seedVentureAndDocument(t, client)
	evaluations := NewEvaluationRepository(client, slog.Default())
	ctx := context.Background()

	first, err := evaluations.CreateEvaluation(ctx, documentID, sampleScore(60))
	if err != nil {
		t.Fatal(err)
	}
	if first.Recommendation != string(constants.RecommendationHold) {
		t.Errorf("recommendation = %q, want hold", first.Recommendation)
	}
	if len(first.Reasoning) == 0 {
		t.Error("reasoning JSON should be persisted")
	}

	second, err := evaluations.CreateEvaluation(ctx, documentID, sampleScore(65))
	if err != nil {
		t.Fatal(err)
	}

	latest, err := evaluations.LatestEvaluation(ctx, documentID)
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != second.ID {
		t.Errorf("latest evaluation = %s, want the second run %s", latest.ID, second.ID)
	}

	byDocument, err := evaluations.ListByDocument(ctx, documentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byDocument) != 2 {
		t.Errorf("evaluations for document = %d, want 2", len(byDocument))
	}

	byVenture, err := evaluations.ListByVenture(ctx, ventureID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byVenture) != 2 {
		t.Errorf("evaluations for venture = %d, want 2", len(byVenture))
	}
}
