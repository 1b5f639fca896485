package utils

import (
	"time"

	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
)

func ToPBVenture(v *entity.Venture) *dealdeskpb.Venture {
	if v == nil {
		return nil
	}
	return &dealdeskpb.Venture{
		Id:        v.ID.String(),
		Name:      v.Name,
		Industry:  deref(v.Industry),
		Stage:     deref(v.Stage),
		CreatedAt: v.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func ToPBDocument(d *entity.Document) *dealdeskpb.Document {
	if d == nil {
		return nil
	}
	return &dealdeskpb.Document{
		Id:                    d.ID.String(),
		VentureId:             d.VentureID.String(),
		Filename:              d.Filename,
		OriginalFilename:      d.OriginalFilename,
		FileType:              d.FileType,
		Format:                d.Format,
		SourcePath:            d.SourcePath,
		FileSize:              int64(d.FileSize),
		ProcessingStatus:      d.ProcessingStatus,
		ProcessingStartedAt:   formatTime(d.ProcessingStartedAt),
		ProcessingCompletedAt: formatTime(d.ProcessingCompletedAt),
		ProcessingError:       deref(d.ProcessingError),
		DocumentType:          deref(d.DocumentType),
		ConfidenceScore:       derefFloat(d.ConfidenceScore),
		TextQuality:           derefFloat(d.TextQuality),
		DataCompleteness:      derefFloat(d.DataCompleteness),
		CreatedAt:             d.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ToPBEvaluation(e *entity.Evaluation) *dealdeskpb.Evaluation {
	if e == nil {
		return nil
	}
	return &dealdeskpb.Evaluation{
		Id:              e.ID.String(),
		DocumentId:      e.DocumentID.String(),
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
		CreatedAt:       e.CreatedAt.Format(time.RFC3339Nano),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
