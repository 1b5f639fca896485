package extract

import (
	"context"
	"time"
)

// ContentExtractor turns one raw document file into an ExtractedContent.
// Implementations are pure over the file contents and safe to share
// across goroutines.
type ContentExtractor interface {
	Extract(ctx context.Context, path string) (*ExtractedContent, error)
}

// Segment is one page, slide, sheet, or paragraph, depending on format.
type Segment struct {
	Index            int    `json:"index"`
	Name             string `json:"name,omitempty"` // sheet name or paragraph style
	Text             string `json:"text"`
	CharCount        int    `json:"char_count"`
	ImageCount       int    `json:"image_count,omitempty"`
	ChartCount       int    `json:"chart_count,omitempty"`
	HasFinancialData bool   `json:"has_financial_data,omitempty"`
}

// Table is a detected tabular region with a bounded preview.
type Table struct {
	Name        string     `json:"name,omitempty"` // sheet name for spreadsheets
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
	Preview     [][]string `json:"preview_rows"`
}

// Image is an embedded image reference; dimensions are zero when the
// format does not expose them.
type Image struct {
	LocationIndex int `json:"location_index"` // page or slide number, 1-based
	Width         int `json:"width,omitempty"`
	Height        int `json:"height,omitempty"`
}

// FinancialIndicator is a spreadsheet cell that matched a financial
// keyword, with the adjacent cell captured as a candidate value.
type FinancialIndicator struct {
	Sheet   string `json:"sheet_name"`
	Row     int    `json:"row"`    // 1-based
	Column  int    `json:"column"` // 1-based
	Keyword string `json:"keyword"`
	Context string `json:"context"`
	Value   string `json:"value,omitempty"`
}

// DocumentMetadata carries format-specific document properties. Fields
// that do not apply to a format stay at their zero value.
type DocumentMetadata struct {
	Title          string   `json:"title,omitempty"`
	Author         string   `json:"author,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	Creator        string   `json:"creator,omitempty"`
	Producer       string   `json:"producer,omitempty"`
	CreatedAt      string   `json:"creation_date,omitempty"`
	ModifiedAt     string   `json:"modification_date,omitempty"`
	PageCount      int      `json:"page_count,omitempty"`
	SlideCount     int      `json:"slide_count,omitempty"`
	SlideWidth     int      `json:"slide_width,omitempty"`
	SlideHeight    int      `json:"slide_height,omitempty"`
	SheetNames     []string `json:"sheet_names,omitempty"`
	ParagraphCount int      `json:"paragraph_count,omitempty"`
	TableCount     int      `json:"table_count,omitempty"`
}

// QualityMetrics summarizes how much usable signal extraction found.
type QualityMetrics struct {
	TextQualityScore         float64 `json:"text_quality_score"`
	TotalCharacters          int     `json:"total_characters"`
	TotalWords               int     `json:"total_words"`
	TablesFound              int     `json:"tables_found"`
	ImagesFound              int     `json:"images_found"`
	ChartsFound              int     `json:"charts_found,omitempty"`
	FinancialIndicatorsFound int     `json:"financial_indicators_found,omitempty"`
}

// ProcessingMetadata is attached by the coordinator after a successful run.
type ProcessingMetadata struct {
	DocumentID       string        `json:"document_id"`
	FilePath         string        `json:"file_path"`
	FileType         string        `json:"file_type"`
	Duration         time.Duration `json:"processing_time"`
	ProcessedAt      time.Time     `json:"processed_at"`
	ExtractorVersion string        `json:"extractor_version"`
}

// ExtractedContent is the common record every format extractor produces.
// FullText is always present (possibly empty); every slice field is
// non-nil after extraction so "missing" and "empty" stay unambiguous.
type ExtractedContent struct {
	FullText            string               `json:"full_text"`
	Segments            []Segment            `json:"segments"`
	Tables              []Table              `json:"tables"`
	Images              []Image              `json:"images"`
	FinancialIndicators []FinancialIndicator `json:"financial_indicators"`
	Metadata            DocumentMetadata     `json:"format_metadata"`
	Quality             QualityMetrics       `json:"quality_metrics"`
	Processing          ProcessingMetadata   `json:"processing_metadata"`
}

const extractorVersion = "1.0.0"

// newContent returns an ExtractedContent with all containers allocated.
func newContent() *ExtractedContent {
	return &ExtractedContent{
		Segments:            []Segment{},
		Tables:              []Table{},
		Images:              []Image{},
		FinancialIndicators: []FinancialIndicator{},
	}
}

// finishQuality fills the quality block from the assembled content.
func (c *ExtractedContent) finishQuality() {
	c.Quality.TextQualityScore = TextQuality(c.FullText)
	c.Quality.TotalCharacters = charCount(c.FullText)
	c.Quality.TotalWords = wordCount(c.FullText)
	c.Quality.TablesFound = len(c.Tables)
	c.Quality.ImagesFound = len(c.Images)
	c.Quality.FinancialIndicatorsFound = len(c.FinancialIndicators)
}
