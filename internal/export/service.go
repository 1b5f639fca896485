package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nnamdi-udeh/dealdesk/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for evaluation exports.
type Service struct {
	evaluationsRepo repository.EvaluationRepository
	documentsRepo   repository.DocumentRepository
	logger          *slog.Logger
}

func NewService(evals repository.EvaluationRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{evaluationsRepo: evals, documentsRepo: docs, logger: logger}
}

// ExportEvaluationsXLSX returns an XLSX workbook (as bytes) with one
// row per evaluation for the given venture, newest first.
func (s *Service) ExportEvaluationsXLSX(ctx context.Context, ventureID uuid.UUID) ([]byte, error) {
	start := time.Now()

	evals, err := s.evaluationsRepo.ListByVenture(ctx, ventureID)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Evaluations"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Evaluated At",
		"Document",
		"Document Type",
		"Financial",
		"Market",
		"Team",
		"Product",
		"Risk",
		"Overall",
		"Confidence Interval",
		"Recommendation",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range evals {
		filename := ""
		docType := ""
		if doc, err := s.documentsRepo.GetDocument(ctx, e.DocumentID); err == nil && doc != nil {
			filename = doc.OriginalFilename
			if doc.DocumentType != nil {
				docType = *doc.DocumentType
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, filename)
		write(3, docType)
		write(4, e.FinancialScore)
		write(5, e.MarketScore)
		write(6, e.TeamScore)
		write(7, e.ProductScore)
		write(8, e.RiskScore)
		write(9, e.OverallScore)
		write(10, fmt.Sprintf("[%.2f, %.2f]", e.ConfidenceLower, e.ConfidenceUpper))
		write(11, e.Recommendation)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 36) // filename
	_ = f.SetColWidth(sheet, "C", "C", 20) // document type
	_ = f.SetColWidth(sheet, "D", "I", 11) // scores
	_ = f.SetColWidth(sheet, "J", "J", 18) // interval
	_ = f.SetColWidth(sheet, "K", "K", 16) // recommendation

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"venture_id", ventureID.String(),
		"rows", len(evals),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
