package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/common"
	"github.com/nnamdi-udeh/dealdesk/internal/export"
	"github.com/nnamdi-udeh/dealdesk/internal/extract"
	"github.com/nnamdi-udeh/dealdesk/internal/pipeline"
	repo "github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of documents to evaluate (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		venture = flag.String("venture", "Local Batch", "venture name for this run")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "evaluations.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	ventureRepo := repo.NewVentureRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	evaluationRepo := repo.NewEvaluationRepository(entc, logger)

	v, err := ventureRepo.CreateVenture(ctx, &repo.CreateVentureRequest{Name: *venture})
	if err != nil {
		logger.Error("failed to create venture", "error", err)
		os.Exit(1)
	}
	logger.Info("using venture", "id", v.ID, "name", v.Name)

	extractor := extract.NewCoordinator(extract.Config{MaxFileSize: cfg.Pipeline.MaxFileSize}, logger)
	analyzer := analyze.NewAnalyzer(analyze.DefaultConfig(), logger)
	engine := score.NewEngine(score.DefaultConfig(), logger)
	processor := pipeline.NewProcessor(logger, documentRepo, evaluationRepo, extractor, analyzer, engine)

	// Walk the directory and register every supported document
	registered := 0
	processed := 0
	failures := 0
	skipped := 0

	walkErr := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		mimeType := constants.MapExtToMIME(filepath.Ext(path))
		if mimeType == "" {
			skipped++
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		doc, err := documentRepo.CreateDocument(ctx, &repo.CreateDocumentRequest{
			VentureID:        v.ID,
			Filename:         filepath.Base(path),
			OriginalFilename: filepath.Base(path),
			FileType:         mimeType,
			Format:           constants.MapMIMEToFormat(mimeType),
			SourcePath:       path,
			FileSize:         int(info.Size()),
		})
		if err != nil {
			logger.Error("failed to register document", "path", path, "error", err)
			failures++
			return nil
		}
		registered++

		if err := processor.ProcessDocument(ctx, doc.ID); err != nil {
			logger.Error("failed to process document", "document_id", doc.ID, "error", err)
			failures++
			return nil
		}
		processed++
		return nil
	})
	if walkErr != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", walkErr)
		os.Exit(1)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(evaluationRepo, documentRepo, logger)
	xlsxBytes, err := exportService.ExportEvaluationsXLSX(ctx, v.ID)
	if err != nil {
		logger.Error("failed to export evaluations", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"documents_registered", registered,
		"documents_processed", processed,
		"failures", failures,
		"skipped", skipped,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents registered: %d\n", registered)
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
