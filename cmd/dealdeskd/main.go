package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	dealdeskpb "github.com/nnamdi-udeh/dealdesk/gen/proto/dealdesk/v1"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/async"
	"github.com/nnamdi-udeh/dealdesk/internal/common"
	"github.com/nnamdi-udeh/dealdesk/internal/export"
	"github.com/nnamdi-udeh/dealdesk/internal/extract"
	"github.com/nnamdi-udeh/dealdesk/internal/pipeline"
	repo "github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
	svc "github.com/nnamdi-udeh/dealdesk/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	if err := repo.HealthCheck(ctx, db.Pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	ventureRepo := repo.NewVentureRepository(db.Client, logger)
	documentRepo := repo.NewDocumentRepository(db.Client, logger)
	evaluationRepo := repo.NewEvaluationRepository(db.Client, logger)

	extractor := extract.NewCoordinator(extract.Config{MaxFileSize: cfg.Pipeline.MaxFileSize}, logger)
	analyzer := analyze.NewAnalyzer(analyze.DefaultConfig(), logger)
	engine := score.NewEngine(score.DefaultConfig(), logger)

	processor := pipeline.NewProcessor(logger, documentRepo, evaluationRepo, extractor, analyzer, engine)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.StageTimeout),
	)

	exporter := export.NewService(evaluationRepo, documentRepo, logger)

	dealdeskpb.RegisterVenturesServiceServer(grpcServer, svc.NewVentureService(ventureRepo, logger))
	dealdeskpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentService(documentRepo, ventureRepo, queue, logger))
	dealdeskpb.RegisterEvaluationsServiceServer(grpcServer, svc.NewEvaluationService(evaluationRepo, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("dealdesk listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
