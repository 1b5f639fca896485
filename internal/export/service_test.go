package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

type stubEvaluations struct {
	evals []*entity.Evaluation
}

func (s *stubEvaluations) CreateEvaluation(_ context.Context, _ uuid.UUID, _ *score.ScoreResult) (*entity.Evaluation, error) {
	return nil, nil
}

func (s *stubEvaluations) LatestEvaluation(_ context.Context, _ uuid.UUID) (*entity.Evaluation, error) {
	return nil, nil
}

func (s *stubEvaluations) ListByDocument(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return nil, nil
}

func (s *stubEvaluations) ListByVenture(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return s.evals, nil
}

type stubDocuments struct {
	docs map[uuid.UUID]*entity.Document
}

func (s *stubDocuments) CreateDocument(_ context.Context, _ *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, nil
}

func (s *stubDocuments) GetDocument(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	return s.docs[id], nil
}

func (s *stubDocuments) ListDocuments(_ context.Context, _ uuid.UUID, _ string) ([]*entity.Document, error) {
	return nil, nil
}

func (s *stubDocuments) MarkProcessing(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubDocuments) MarkCompleted(_ context.Context, _ uuid.UUID, _ *repository.CompleteDocumentRequest) error {
	return nil
}

func (s *stubDocuments) MarkFailed(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (s *stubDocuments) ResetForReprocessing(_ context.Context, _ uuid.UUID) error { return nil }

func TestExportEvaluationsXLSX(t *testing.T) {
	documentID := uuid.New()
	docType := "pitch_deck"

	evals := &stubEvaluations{evals: []*entity.Evaluation{{
		ID:              uuid.New(),
		DocumentID:      documentID,
		FinancialScore:  72.5,
		MarketScore:     61,
		TeamScore:       55,
		ProductScore:    48,
		RiskScore:       50,
		OverallScore:    60.34,
		ConfidenceLower: 52.34,
		ConfidenceUpper: 68.34,
		Recommendation:  "hold",
		CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}}}
	docs := &stubDocuments{docs: map[uuid.UUID]*entity.Document{
		documentID: {
			ID:               documentID,
			OriginalFilename: "series-a-deck.pptx",
			DocumentType:     &docType,
		},
	}}

	svc := NewService(evals, docs, nil)
	data, err := svc.ExportEvaluationsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportEvaluationsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Evaluations")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one evaluation", len(rows))
	}

	if rows[0][0] != "Evaluated At" || rows[0][10] != "Recommendation" {
		t.Errorf("header row = %v", rows[0])
	}

	got := rows[1]
	if got[1] != "series-a-deck.pptx" {
		t.Errorf("document cell = %q", got[1])
	}
	if got[2] != "pitch_deck" {
		t.Errorf("document type cell = %q", got[2])
	}
	if got[9] != "[52.34, 68.34]" {
		t.Errorf("confidence interval cell = %q", got[9])
	}
	if got[10] != "hold" {
		t.Errorf("recommendation cell = %q", got[10])
	}
}

func TestExportEvaluationsXLSXEmpty(t *testing.T) {
	svc := NewService(&stubEvaluations{}, &stubDocuments{}, nil)
	data, err := svc.ExportEvaluationsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportEvaluationsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Evaluations")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export should still carry the header row, got %d rows", len(rows))
	}
}
