package extract

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/common"
)

// Config holds extraction limits and shared settings.
type Config struct {
	MaxFileSize int64 // bytes; 0 means the 64 MiB default
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 64 << 20
	}
}

// Coordinator dispatches extraction by declared MIME type. It owns one
// extractor per format; all of them are stateless and shareable.
type Coordinator struct {
	cfg        Config
	extractors map[constants.DocumentFormat]ContentExtractor
	logger     *slog.Logger
}

// NewCoordinator builds a Coordinator with the four format extractors
// registered. Unknown MIME types fail fast at dispatch.
func NewCoordinator(cfg Config, logger *slog.Logger) *Coordinator {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		cfg:    cfg,
		logger: logger,
		extractors: map[constants.DocumentFormat]ContentExtractor{
			constants.PDF:         &pdfExtractor{},
			constants.WORD:        &wordExtractor{},
			constants.SPREADSHEET: &spreadsheetExtractor{},
			constants.SLIDES:      &slidesExtractor{},
		},
	}
}

// Extract reads the file at path with the extractor registered for the
// declared MIME type and returns the common content record with quality
// and timing metadata attached. The source file is never mutated. Any
// failure surfaces as *ExtractionError; no partial content is returned.
// The owning document ID travels on the context for log tagging.
func (c *Coordinator) Extract(ctx context.Context, path, mimeType string) (*ExtractedContent, error) {
	start := time.Now()
	documentID := common.DocumentIDFromContext(ctx)
	c.logger.Info("extraction.start", "document_id", documentID, "file_type", mimeType)

	info, err := os.Stat(path)
	if err != nil {
		return nil, extractionErr("", path, "file not found", err)
	}
	if info.Size() > c.cfg.MaxFileSize {
		return nil, extractionErr("", path, "file too large", nil)
	}

	format := constants.MapMIMEToFormat(mimeType)
	if format == "" {
		return nil, extractionErr("", path, "unsupported file type: "+mimeType, nil)
	}
	extractor := c.extractors[format]

	content, err := extractor.Extract(ctx, path)
	if err != nil {
		c.logger.Error("extraction.failed", "document_id", documentID, "format", format, "err", err)
		if ee, ok := err.(*ExtractionError); ok {
			return nil, ee
		}
		return nil, extractionErr(string(format), path, "parser failure", err)
	}

	content.Processing = ProcessingMetadata{
		DocumentID:       documentID,
		FilePath:         path,
		FileType:         mimeType,
		Duration:         time.Since(start),
		ProcessedAt:      time.Now().UTC(),
		ExtractorVersion: extractorVersion,
	}

	c.logger.Info("extraction.ok",
		"document_id", documentID,
		"format", format,
		"chars", content.Quality.TotalCharacters,
		"tables", content.Quality.TablesFound,
		"quality", content.Quality.TextQualityScore,
		"duration", content.Processing.Duration,
	)
	return content, nil
}
