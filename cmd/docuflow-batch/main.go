package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/gen/ent"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/contentstore"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/export"
	"github.com/oakfield-labs/docuflow/internal/extraction"
	"github.com/oakfield-labs/docuflow/internal/parsecache"
	"github.com/oakfield-labs/docuflow/internal/provider/docai"
	repo "github.com/oakfield-labs/docuflow/internal/repository"
	"github.com/oakfield-labs/docuflow/internal/validation"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory of documents to process (required)")
		tplPath  = flag.String("template", "", "JSON file with the template definition (required)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		maxPrio  = flag.String("min-priority", "LOW", "least-urgent audit tier to export (CRITICAL|HIGH|MEDIUM|LOW)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *tplPath == "" {
		printError("Error: --template is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "audit-queue.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLite(ctx, ":memory:", logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
	} else {
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		entc = client
	}

	// Wire repositories
	filesRepo := repo.NewPhysicalFileRepository(entc, logger)
	parsesRepo := repo.NewParseRecordRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	extractionsRepo := repo.NewExtractionRepository(entc, logger)
	fieldsRepo := repo.NewExtractedFieldRepository(entc, logger)

	// Load template definition
	tplBytes, err := os.ReadFile(*tplPath)
	if err != nil {
		logger.Error("failed to read template file", "path", *tplPath, "error", err)
		os.Exit(1)
	}
	var tplDef struct {
		Name     string                   `json:"name"`
		Category string                   `json:"category"`
		Fields   []entity.FieldDefinition `json:"fields"`
	}
	if err := json.Unmarshal(tplBytes, &tplDef); err != nil {
		logger.Error("invalid template JSON", "path", *tplPath, "error", err)
		os.Exit(1)
	}
	tpl, err := templatesRepo.Create(ctx, tplDef.Name, tplDef.Category, tplDef.Fields)
	if err != nil {
		logger.Error("failed to create template", "error", err)
		os.Exit(1)
	}
	logger.Info("using template", "id", tpl.ID, "name", tpl.Name, "fields", len(tpl.Fields))

	// Provider + pipeline
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

	// Upload every file in the directory
	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	var pairs []extraction.Pair
	uploaded, deduplicated, skipped := 0, 0, 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !constants.IsAllowedExt(filepath.Ext(e.Name())) {
			logger.Warn("skipping unsupported file type", "name", e.Name())
			skipped++
			continue
		}
		data, err := os.ReadFile(filepath.Join(*dir, e.Name()))
		if err != nil {
			logger.Error("failed to read file", "name", e.Name(), "error", err)
			continue
		}
		res, err := store.Store(ctx, data)
		if err != nil {
			logger.Error("failed to store file", "name", e.Name(), "error", err)
			continue
		}
		uploaded++
		if res.DuplicateFound {
			deduplicated++
		}
		pairs = append(pairs, extraction.Pair{FileID: res.File.ID, TemplateID: tpl.ID})
	}
	logger.Info("upload complete", "uploaded", uploaded, "deduplicated", deduplicated, "skipped", skipped)

	if len(pairs) == 0 {
		printError("Error: no processable files in %s\n", *dir)
		os.Exit(1)
	}

	batchID, ids, err := workerPool.Submit(ctx, pairs)
	if err != nil {
		logger.Error("batch submit failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch submitted", "batch_id", batchID, "units", len(ids))

	// Wait for the batch to settle, then drain the pool.
	for {
		snap, err := workerPool.Snapshot(batchID)
		if err != nil {
			logger.Error("batch status lost", "error", err)
			os.Exit(1)
		}
		if snap.State != extraction.BatchRunning {
			logger.Info("batch settled", "state", snap.State,
				"completed", snap.Completed, "failed", snap.Failed, "cancelled", snap.Cancelled)
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	workerPool.Shutdown(shutdownCtx)
	cancel()

	// Export the audit queue
	minPriority := audit.Low
	switch *maxPrio {
	case "CRITICAL":
		minPriority = audit.Critical
	case "HIGH":
		minPriority = audit.High
	case "MEDIUM":
		minPriority = audit.Medium
	}
	queue := audit.NewQueue(fieldsRepo, audit.Thresholds{
		Medium: cfg.Pipeline.MediumConfidence,
		High:   cfg.Pipeline.HighConfidence,
	}, logger)
	exporter := export.NewService(queue, fieldsRepo, logger)
	xlsxBytes, err := exporter.ExportAuditQueueXLSX(ctx, audit.Request{
		TemplateID:  &tpl.ID,
		MinPriority: minPriority,
	})
	if err != nil {
		logger.Error("failed to export audit queue", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	snap, _ := workerPool.Snapshot(batchID)
	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files uploaded: %d (deduplicated: %d)\n", uploaded, deduplicated)
	fmt.Printf("- Extractions completed: %d\n", snap.Completed)
	fmt.Printf("- Failures: %d\n", snap.Failed)
	fmt.Printf("- Output: %s\n", *out)
}
