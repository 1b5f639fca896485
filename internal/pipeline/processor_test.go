package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/extract"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// fakeDocuments is an in-memory DocumentRepository recording every
// status transition it is asked to make.
type fakeDocuments struct {
	doc       *entity.Document
	statuses  []string
	completed *repository.CompleteDocumentRequest
	failedMsg string
	resets    int
}

func (f *fakeDocuments) CreateDocument(_ context.Context, _ *repository.CreateDocumentRequest) (*entity.Document, error) {
	return f.doc, nil
}

func (f *fakeDocuments) GetDocument(_ context.Context, _ uuid.UUID) (*entity.Document, error) {
	return f.doc, nil
}

func (f *fakeDocuments) ListDocuments(_ context.Context, _ uuid.UUID, _ string) ([]*entity.Document, error) {
	return []*entity.Document{f.doc}, nil
}

func (f *fakeDocuments) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.statuses = append(f.statuses, string(constants.StatusProcessing))
	return nil
}

func (f *fakeDocuments) MarkCompleted(_ context.Context, _ uuid.UUID, req *repository.CompleteDocumentRequest) error {
	// same schema gate the real repository applies
	if err := analyze.ValidateResultJSON(req.StructuredData); err != nil {
		return err
	}
	f.statuses = append(f.statuses, string(constants.StatusCompleted))
	f.completed = req
	return nil
}

func (f *fakeDocuments) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.statuses = append(f.statuses, string(constants.StatusFailed))
	f.failedMsg = message
	return nil
}

func (f *fakeDocuments) ResetForReprocessing(_ context.Context, _ uuid.UUID) error {
	f.resets++
	f.statuses = append(f.statuses, string(constants.StatusPending))
	f.completed = nil
	f.failedMsg = ""
	return nil
}

type fakeEvaluations struct {
	created []*score.ScoreResult
}

func (f *fakeEvaluations) CreateEvaluation(_ context.Context, _ uuid.UUID, result *score.ScoreResult) (*entity.Evaluation, error) {
	f.created = append(f.created, result)
	return &entity.Evaluation{}, nil
}

func (f *fakeEvaluations) LatestEvaluation(_ context.Context, _ uuid.UUID) (*entity.Evaluation, error) {
	return nil, nil
}

func (f *fakeEvaluations) ListByDocument(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return nil, nil
}

func (f *fakeEvaluations) ListByVenture(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return nil, nil
}

func writePitchWorkbook(t *testing.T) string {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]any{
		{"Metric", "Value"},
		{"Revenue", 2000000},
		{"EBITDA", 500000},
		{"Funding raised: $6m", ""},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := wb.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "model.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestProcessor(docs *fakeDocuments, evals *fakeEvaluations) *Processor {
	return NewProcessor(nil, docs, evals,
		extract.NewCoordinator(extract.Config{}, nil),
		analyze.NewAnalyzer(analyze.DefaultConfig(), nil),
		score.NewEngine(score.DefaultConfig(), nil),
	)
}

func TestProcessDocument(t *testing.T) {
	id := uuid.New()
	docs := &fakeDocuments{doc: &entity.Document{
		ID:               id,
		Filename:         "model.xlsx",
		FileType:         xlsxMIME,
		SourcePath:       writePitchWorkbook(t),
		ProcessingStatus: string(constants.StatusPending),
	}}
	evals := &fakeEvaluations{}
	p := newTestProcessor(docs, evals)

	if err := p.ProcessDocument(context.Background(), id); err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	want := []string{string(constants.StatusProcessing), string(constants.StatusCompleted)}
	if len(docs.statuses) != 2 || docs.statuses[0] != want[0] || docs.statuses[1] != want[1] {
		t.Errorf("status transitions = %v, want %v", docs.statuses, want)
	}
	if docs.completed == nil {
		t.Fatal("expected derived outputs to be persisted")
	}
	if docs.completed.DocumentType == "" {
		t.Error("document type should be set from the classification")
	}
	if docs.completed.DataCompleteness < 0 || docs.completed.DataCompleteness > 1 {
		t.Errorf("data completeness = %v, want within [0,1]", docs.completed.DataCompleteness)
	}
	if docs.completed.FullText == "" {
		t.Error("full text should carry the extracted content")
	}

	if len(evals.created) != 1 {
		t.Fatalf("got %d evaluations, want 1", len(evals.created))
	}
	rec := string(evals.created[0].Recommendation)
	found := false
	for _, r := range constants.Recommendations {
		if r == rec {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendation %q not in the known set", rec)
	}
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	id := uuid.New()
	docs := &fakeDocuments{doc: &entity.Document{
		ID:               id,
		Filename:         "gone.xlsx",
		FileType:         xlsxMIME,
		SourcePath:       filepath.Join(t.TempDir(), "gone.xlsx"),
		ProcessingStatus: string(constants.StatusPending),
	}}
	evals := &fakeEvaluations{}
	p := newTestProcessor(docs, evals)

	err := p.ProcessDocument(context.Background(), id)
	if err == nil {
		t.Fatal("expected error for a missing source file")
	}

	if len(docs.statuses) != 2 || docs.statuses[1] != string(constants.StatusFailed) {
		t.Errorf("status transitions = %v, want PROCESSING then FAILED", docs.statuses)
	}
	if !strings.HasPrefix(docs.failedMsg, "extraction: ") {
		t.Errorf("failure message = %q, want the failing stage named", docs.failedMsg)
	}
	if docs.completed != nil {
		t.Error("failed runs must not persist partial outputs")
	}
	if len(evals.created) != 0 {
		t.Error("failed runs must not create evaluations")
	}
}

func TestReprocessResetsFirst(t *testing.T) {
	id := uuid.New()
	docs := &fakeDocuments{doc: &entity.Document{
		ID:               id,
		Filename:         "model.xlsx",
		FileType:         xlsxMIME,
		SourcePath:       writePitchWorkbook(t),
		ProcessingStatus: string(constants.StatusCompleted),
	}}
	evals := &fakeEvaluations{}
	p := newTestProcessor(docs, evals)

	if err := p.Reprocess(context.Background(), id); err != nil {
		t.Fatalf("Reprocess: %v", err)
	}

	if docs.resets != 1 {
		t.Errorf("resets = %d, want 1 before the rerun", docs.resets)
	}
	if docs.statuses[0] != string(constants.StatusPending) {
		t.Errorf("first transition = %q, want the reset to PENDING", docs.statuses[0])
	}
	if docs.statuses[len(docs.statuses)-1] != string(constants.StatusCompleted) {
		t.Errorf("final status = %q, want COMPLETED", docs.statuses[len(docs.statuses)-1])
	}
	if len(evals.created) != 1 {
		t.Errorf("got %d evaluations after reprocess, want 1", len(evals.created))
	}
}

func TestBuildCompletionCompleteness(t *testing.T) {
	content := &extract.ExtractedContent{FullText: "text"}
	analysis := analyze.EmptyResult()

	// zero-confidence analysis yields the full-width interval, which
	// reads as zero completeness
	result := &score.ScoreResult{ConfidenceLower: 22.5, ConfidenceUpper: 62.5}
	req, err := buildCompletion(content, analysis, result)
	if err != nil {
		t.Fatal(err)
	}
	if req.DataCompleteness != 0 {
		t.Errorf("completeness = %v, want 0 for a 40-point interval", req.DataCompleteness)
	}

	result = &score.ScoreResult{ConfidenceLower: 50, ConfidenceUpper: 60}
	req, err = buildCompletion(content, analysis, result)
	if err != nil {
		t.Fatal(err)
	}
	if req.DataCompleteness != 0.75 {
		t.Errorf("completeness = %v, want 0.75 for a 10-point interval", req.DataCompleteness)
	}
}
