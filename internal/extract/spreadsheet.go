package extract

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"
)

// financialKeywords flags spreadsheet cells that likely carry financial
// data. The adjacent cell is captured as the candidate value.
var financialKeywords = []string{
	"revenue", "income", "profit", "loss", "cash", "flow",
	"balance", "assets", "liabilities", "equity", "expenses",
	"cost", "margin", "ebitda", "roi", "irr", "npv",
}

// spreadsheetExtractor reads workbooks via excelize: per-sheet row scan
// with empty rows skipped, a financial-indicator cell scan, and a table
// record for every sheet with at least two populated rows.
type spreadsheetExtractor struct{}

func (e *spreadsheetExtractor) Extract(_ context.Context, path string) (*ExtractedContent, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, extractionErr("SPREADSHEET", path, "open workbook", err)
	}
	defer wb.Close()

	content := newContent()
	var fullText strings.Builder
	sheetNames := wb.GetSheetList()

	for _, sheetName := range sheetNames {
		rows, err := wb.GetRows(sheetName)
		if err != nil {
			return nil, extractionErr("SPREADSHEET", path, "read sheet "+sheetName, err)
		}

		var sheetData [][]string
		var sheetText strings.Builder
		for _, row := range rows {
			if rowEmpty(row) {
				continue
			}
			sheetData = append(sheetData, row)
			sheetText.WriteString(strings.Join(row, " "))
			sheetText.WriteString("\n")
		}

		indicators := scanFinancialIndicators(sheetData, sheetName)
		content.FinancialIndicators = append(content.FinancialIndicators, indicators...)

		if len(sheetData) > 1 {
			preview := sheetData
			if len(preview) > 5 {
				preview = preview[:5]
			}
			content.Tables = append(content.Tables, Table{
				Name:        sheetName,
				RowCount:    len(sheetData),
				ColumnCount: len(sheetData[0]),
				Preview:     append([][]string{}, preview...),
			})
		}

		content.Segments = append(content.Segments, Segment{
			Index:            len(content.Segments) + 1,
			Name:             sheetName,
			Text:             strings.TrimSpace(sheetText.String()),
			CharCount:        charCount(sheetText.String()),
			HasFinancialData: len(indicators) > 0,
		})
		fullText.WriteString(sheetText.String())
	}

	content.FullText = strings.TrimSpace(fullText.String())
	content.Metadata.SheetNames = sheetNames
	content.finishQuality()
	return content, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// scanFinancialIndicators flags any cell containing one of the fixed
// financial keywords and records the neighboring cell as its value.
func scanFinancialIndicators(sheetData [][]string, sheetName string) []FinancialIndicator {
	var indicators []FinancialIndicator
	for rowIdx, row := range sheetData {
		for colIdx, cell := range row {
			cellLower := strings.ToLower(cell)
			for _, keyword := range financialKeywords {
				if !strings.Contains(cellLower, keyword) {
					continue
				}
				indicator := FinancialIndicator{
					Sheet:   sheetName,
					Row:     rowIdx + 1,
					Column:  colIdx + 1,
					Keyword: keyword,
					Context: cell,
				}
				if colIdx+1 < len(row) {
					indicator.Value = row[colIdx+1]
				}
				indicators = append(indicators, indicator)
			}
		}
	}
	return indicators
}
