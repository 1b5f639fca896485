// Package pipeline runs the staged document flow: extraction, text
// mining, scoring, then a single atomic persist. A run either completes
// with every derived output written or fails with none of them.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/common"
	"github.com/nnamdi-udeh/dealdesk/internal/extract"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

// Processor coordinates extract, analyze, and score for one document.
type Processor struct {
	Logger      *slog.Logger
	Documents   repository.DocumentRepository
	Evaluations repository.EvaluationRepository
	Extractor   *extract.Coordinator
	Analyzer    *analyze.Analyzer
	Engine      *score.Engine
}

func NewProcessor(
	logger *slog.Logger,
	documents repository.DocumentRepository,
	evaluations repository.EvaluationRepository,
	extractor *extract.Coordinator,
	analyzer *analyze.Analyzer,
	engine *score.Engine,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:      logger,
		Documents:   documents,
		Evaluations: evaluations,
		Extractor:   extractor,
		Analyzer:    analyzer,
		Engine:      engine,
	}
}

// ProcessDocument runs the full pipeline for one registered document.
// The document moves PENDING -> PROCESSING -> COMPLETED, or to FAILED
// with the stage error recorded and no derived outputs written.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) error {
	ctx = common.WithDocumentID(ctx, documentID.String())

	doc, err := p.Documents.GetDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	if err := p.Documents.MarkProcessing(ctx, documentID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	content, err := p.Extractor.Extract(ctx, doc.SourcePath, doc.FileType)
	if err != nil {
		return p.fail(ctx, documentID, "extraction", err)
	}

	analysis, err := p.Analyzer.Analyze(ctx, content.FullText, "general")
	if err != nil {
		return p.fail(ctx, documentID, "analysis", err)
	}

	result, err := p.Engine.Score(ctx, analysis, content.FullText)
	if err != nil {
		return p.fail(ctx, documentID, "scoring", err)
	}

	complete, err := buildCompletion(content, analysis, result)
	if err != nil {
		return p.fail(ctx, documentID, "serialize outputs", err)
	}
	if err := p.Documents.MarkCompleted(ctx, documentID, complete); err != nil {
		return p.fail(ctx, documentID, "persist outputs", err)
	}
	if _, err := p.Evaluations.CreateEvaluation(ctx, documentID, result); err != nil {
		return p.fail(ctx, documentID, "persist evaluation", err)
	}

	p.Logger.Info("pipeline.ok",
		"document_id", documentID,
		"document_type", analysis.Classification.DocumentType,
		"overall_score", result.OverallScore,
		"recommendation", string(result.Recommendation))
	return nil
}

// Reprocess clears a document's prior outputs and runs the pipeline
// again from scratch.
func (p *Processor) Reprocess(ctx context.Context, documentID uuid.UUID) error {
	if err := p.Documents.ResetForReprocessing(ctx, documentID); err != nil {
		return fmt.Errorf("reset document: %w", err)
	}
	return p.ProcessDocument(ctx, documentID)
}

func (p *Processor) fail(ctx context.Context, documentID uuid.UUID, stage string, err error) error {
	p.Logger.Error("pipeline.failed", "document_id", documentID, "stage", stage, "err", err)
	msg := fmt.Sprintf("%s: %v", stage, err)
	if markErr := p.Documents.MarkFailed(ctx, documentID, msg); markErr != nil {
		p.Logger.Error("pipeline.mark_failed_error", "document_id", documentID, "err", markErr)
	}
	return fmt.Errorf("%s: %w", stage, err)
}

// buildCompletion serializes the stage outputs into the persistence
// request. Data completeness is derived from the confidence interval:
// a full-width interval reads as zero completeness.
func buildCompletion(content *extract.ExtractedContent, analysis *analyze.AnalysisResult, result *score.ScoreResult) (*repository.CompleteDocumentRequest, error) {
	extractedJSON, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}
	entitiesJSON, err := json.Marshal(analysis.Entities)
	if err != nil {
		return nil, err
	}
	financialJSON, err := json.Marshal(analysis.FinancialMetrics)
	if err != nil {
		return nil, err
	}
	qualityJSON, err := json.Marshal(content.Quality)
	if err != nil {
		return nil, err
	}

	width := result.ConfidenceUpper - result.ConfidenceLower
	completeness := 1 - width/40
	if completeness < 0 {
		completeness = 0
	}

	return &repository.CompleteDocumentRequest{
		ExtractedContent: extractedJSON,
		StructuredData:   analysisJSON,
		Entities:         entitiesJSON,
		FinancialData:    financialJSON,
		QualityMetrics:   qualityJSON,

		DocumentType:     analysis.Classification.DocumentType,
		ConfidenceScore:  analysis.ConfidenceScore,
		TextQuality:      content.Quality.TextQualityScore,
		DataCompleteness: completeness,
		FullText:         content.FullText,
	}, nil
}
