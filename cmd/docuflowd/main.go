package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/oakfield-labs/docuflow/gen/proto/docuflow/v1"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/contentstore"
	"github.com/oakfield-labs/docuflow/internal/export"
	"github.com/oakfield-labs/docuflow/internal/extraction"
	"github.com/oakfield-labs/docuflow/internal/parsecache"
	"github.com/oakfield-labs/docuflow/internal/provider/docai"
	"github.com/oakfield-labs/docuflow/internal/repository"
	"github.com/oakfield-labs/docuflow/internal/server"
	"github.com/oakfield-labs/docuflow/internal/validation"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// Repositories
	filesRepo := repository.NewPhysicalFileRepository(entc, logger)
	parsesRepo := repository.NewParseRecordRepository(entc, logger)
	templatesRepo := repository.NewTemplateRepository(entc, logger)
	extractionsRepo := repository.NewExtractionRepository(entc, logger)
	fieldsRepo := repository.NewExtractedFieldRepository(entc, logger)

	// Provider + domain services
	providerClient := docai.NewClient(docai.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	}, logger)
	store := contentstore.New(cfg.Storage.RootDir, filesRepo, logger)
	cache := parsecache.New(filesRepo, parsesRepo, providerClient, store, logger)
	engine := validation.NewEngine(cfg.Pipeline.HighConfidence, logger)
	orch := extraction.NewOrchestrator(
		extraction.ConfigFromPipeline(cfg.Pipeline),
		extractionsRepo, fieldsRepo, templatesRepo,
		cache, providerClient, engine, logger,
	)
	workerPool := extraction.NewPool(orch, extractionsRepo, filesRepo, templatesRepo, logger,
		extraction.WithWorkers(cfg.Pipeline.Workers),
		extraction.WithQueueSize(cfg.Pipeline.QueueSize),
		extraction.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)
	analyzer := extraction.NewAnalyzer(filesRepo, templatesRepo, cache, logger)
	queue := audit.NewQueue(fieldsRepo, audit.Thresholds{
		Medium: cfg.Pipeline.MediumConfidence,
		High:   cfg.Pipeline.HighConfidence,
	}, logger)
	exporter := export.NewService(queue, fieldsRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterDocumentServiceServer(grpcServer, server.NewDocumentService(store, analyzer, logger))
	v1.RegisterExtractionServiceServer(grpcServer, server.NewExtractionService(workerPool, orch, extractionsRepo, fieldsRepo, logger))
	v1.RegisterAuditServiceServer(grpcServer, server.NewAuditServer(queue, fieldsRepo, orch, exporter, logger))
	v1.RegisterTemplateServiceServer(grpcServer, server.NewTemplateService(templatesRepo, engine, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	workerPool.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
