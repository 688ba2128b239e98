// TheraBridge analysis server - ingests diarized therapy-session
// transcripts and runs the staged clinical-analysis pipeline over them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/evolvedtroglodyte/therabridge/pkg/analyzer"
	"github.com/evolvedtroglodyte/therabridge/pkg/api"
	"github.com/evolvedtroglodyte/therabridge/pkg/auditlog"
	"github.com/evolvedtroglodyte/therabridge/pkg/cleanup"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/database"
	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/orchestrator"
	"github.com/evolvedtroglodyte/therabridge/pkg/queue"
	"github.com/evolvedtroglodyte/therabridge/pkg/router"
	"github.com/evolvedtroglodyte/therabridge/pkg/services"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
	"github.com/evolvedtroglodyte/therabridge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "path", envPath)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := getEnv("POD_ID", "pod-"+uuid.New().String()[:8])

	slog.Info("Starting TheraBridge analysis server",
		"version", version.Version,
		"pod_id", podID,
		"http_port", httpPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, schema migrated")

	// Technique catalog
	library, err := techniques.Load(cfg.TechniqueCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load technique catalog: %w", err)
	}
	slog.Info("Technique catalog loaded", "entries", library.Len())

	// LLM client
	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%s is required", cfg.LLM.APIKeyEnv)
	}
	llmClient, err := llm.NewOpenAIClient(apiKey, cfg.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	// Core wiring: store gateway, audit logger, analyzers, orchestrator.
	gateway := store.New(dbClient.Client)
	audit := auditlog.New(gateway)
	modelRouter := router.New(cfg.Router)
	analyzers := analyzer.NewSet(analyzer.Deps{
		Router:     modelRouter,
		LLM:        llmClient,
		Analysis:   cfg.Analysis,
		Techniques: library,
	})
	orch := orchestrator.New(gateway, analyzers, audit, cfg.Analysis)

	// Recover sessions this pod abandoned in a previous crash.
	if err := queue.RecoverStartupOrphans(ctx, gateway, podID); err != nil {
		return fmt.Errorf("failed to recover startup orphans: %w", err)
	}

	// Worker pool
	pool := queue.NewWorkerPool(podID, gateway, cfg.Queue, &queue.OrchestratorExecutor{Orchestrator: orch})
	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	// Retention
	cleanupService := cleanup.NewService(cfg.Retention, gateway)
	cleanupService.Start(ctx)

	// Services + HTTP API
	sessionService := services.NewSessionService(gateway, library, cfg.Analysis)
	triggerService := services.NewTriggerService(gateway, cfg.Queue.TriggersPerPatientPerMinute)
	server := api.NewServer(cfg, dbClient, sessionService, triggerService, pool)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", ":"+httpPort)
		if err := server.Start(":" + httpPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}

	// Graceful shutdown: stop intake first, then drain workers.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	cleanupService.Stop()
	pool.Stop()

	slog.Info("Shutdown complete")
	return nil
}
