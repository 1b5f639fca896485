// Package utils holds converters between generated Ent rows and the
// transfer entities the service layer exposes.
package utils

import (
	"github.com/nnamdi-udeh/dealdesk/gen/ent"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
)

func ToVenture(v *ent.Venture) *entity.Venture {
	if v == nil {
		return nil
	}
	return &entity.Venture{
		ID:        v.ID,
		Name:      v.Name,
		Industry:  v.Industry,
		Stage:     v.Stage,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func ToDocument(d *ent.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		ID:               d.ID,
		VentureID:        d.VentureID,
		Filename:         d.Filename,
		OriginalFilename: d.OriginalFilename,
		FileType:         d.FileType,
		Format:           d.Format,
		SourcePath:       d.SourcePath,
		FileSize:         d.FileSize,

		ProcessingStatus:      d.ProcessingStatus,
		ProcessingStartedAt:   d.ProcessingStartedAt,
		ProcessingCompletedAt: d.ProcessingCompletedAt,
		ProcessingError:       d.ProcessingError,

		ExtractedContent: d.ExtractedContent,
		StructuredData:   d.StructuredData,
		Entities:         d.Entities,
		FinancialData:    d.FinancialData,
		QualityMetrics:   d.QualityMetrics,

		DocumentType:     d.DocumentType,
		ConfidenceScore:  d.ConfidenceScore,
		TextQuality:      d.TextQuality,
		DataCompleteness: d.DataCompleteness,
		FullText:         d.FullText,

		CreatedAt: d.CreatedAt,
	}
}

func ToEvaluation(e *ent.Evaluation) *entity.Evaluation {
	if e == nil {
		return nil
	}
	return &entity.Evaluation{
		ID:              e.ID,
		DocumentID:      e.DocumentID,
		FinancialScore:  e.FinancialScore,
		MarketScore:     e.MarketScore,
		TeamScore:       e.TeamScore,
		ProductScore:    e.ProductScore,
		RiskScore:       e.RiskScore,
		OverallScore:    e.OverallScore,
		ConfidenceLower: e.ConfidenceLower,
		ConfidenceUpper: e.ConfidenceUpper,
		Recommendation:  e.Recommendation,
		Reasoning:       e.Reasoning,
		CreatedAt:       e.CreatedAt,
	}
}
