package extract

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nnamdi-udeh/dealdesk/internal/common"
)

func writeWorkbookFixture(t *testing.T) string {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	cells := map[string]any{
		"A1": "Metric", "B1": "Value",
		"A2": "Revenue", "B2": 3000000,
		"A3": "EBITDA", "B3": 1200000,
	}
	for ref, v := range cells {
		if err := wb.SetCellValue(sheet, ref, v); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "model.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSpreadsheetFinancialIndicators(t *testing.T) {
	path := writeWorkbookFixture(t)
	c := NewCoordinator(Config{}, nil)

	ctx := common.WithDocumentID(context.Background(), "doc-xlsx")
	content, err := c.Extract(ctx, path,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if content.Processing.DocumentID != "doc-xlsx" {
		t.Errorf("processing metadata document ID = %q, want the context value", content.Processing.DocumentID)
	}

	var ebitda *FinancialIndicator
	for i := range content.FinancialIndicators {
		if content.FinancialIndicators[i].Keyword == "ebitda" {
			ebitda = &content.FinancialIndicators[i]
		}
	}
	if ebitda == nil {
		t.Fatalf("expected an ebitda indicator, got %+v", content.FinancialIndicators)
	}
	if ebitda.Value == "" {
		t.Error("expected the adjacent cell captured as the indicator value")
	}
	if ebitda.Row != 3 || ebitda.Column != 1 {
		t.Errorf("ebitda indicator at row %d col %d, want row 3 col 1", ebitda.Row, ebitda.Column)
	}

	if len(content.Segments) != 1 {
		t.Fatalf("expected one segment per sheet, got %d", len(content.Segments))
	}
	if !content.Segments[0].HasFinancialData {
		t.Error("segment with financial keywords should be flagged")
	}

	if len(content.Tables) != 1 {
		t.Fatalf("expected one table for a sheet with 3 populated rows, got %d", len(content.Tables))
	}
	tbl := content.Tables[0]
	if tbl.RowCount != 3 || tbl.ColumnCount != 2 {
		t.Errorf("table %dx%d, want 3x2", tbl.RowCount, tbl.ColumnCount)
	}

	if content.Quality.FinancialIndicatorsFound != len(content.FinancialIndicators) {
		t.Errorf("quality indicator count %d, want %d",
			content.Quality.FinancialIndicatorsFound, len(content.FinancialIndicators))
	}
	if content.Quality.TextQualityScore < 0 || content.Quality.TextQualityScore > 1 {
		t.Errorf("text quality %v out of [0,1]", content.Quality.TextQualityScore)
	}
}

func TestSpreadsheetSingleRowSheetHasNoTable(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	if err := wb.SetCellValue(sheet, "A1", "only header"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "thin.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	e := &spreadsheetExtractor{}
	content, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(content.Tables) != 0 {
		t.Errorf("single populated row should not produce a table, got %d", len(content.Tables))
	}
}
