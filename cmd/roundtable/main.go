// Roundtable server: multi-reviewer document refinement over HTTP.
// Hosts the API, the WebSocket event stream and the queue workers that
// drive refinement sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roundtable-ai/roundtable/pkg/api"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/events"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/queue"
	"github.com/roundtable-ai/roundtable/pkg/services"
	"github.com/roundtable-ai/roundtable/pkg/store"
	"github.com/roundtable-ai/roundtable/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting roundtable",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir,
		"workers", cfg.Queue.WorkerCount)

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	sessionStore := store.NewEntStore(dbClient.Client)

	// 3. LLM client for the sidecar. Connection is lazy; the first
	// review call dials.
	llmAddr := getEnv("LLM_SIDECAR_ADDR", cfg.LLM.SidecarAddress)
	grpcClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	llmClient := llm.NewRetrying(grpcClient)
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 4. Event streaming: bus, publisher, WebSocket bridge
	bus := events.NewBus()
	defer bus.Close()
	publisher := events.NewPublisher(sessionStore, bus)
	connManager := events.NewConnectionManager(bus, sessionStore, 10*time.Second)

	// 5. Session executor and worker pool (workers start before HTTP
	// so pending sessions resume immediately after a restart)
	executor := queue.NewRoundtableExecutor(sessionStore, publisher, llmClient, cfg.LLM)
	workerPool := queue.NewWorkerPool(podID, sessionStore, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. Domain service; the pool doubles as the live-session canceller
	sessionService := services.NewSessionService(sessionStore, publisher, cfg.Sessions)
	sessionService.SetCanceller(workerPool)

	// 7. HTTP server
	httpServer := api.NewServer(cfg, sessionService)
	httpServer.SetDatabase(dbClient)
	httpServer.SetWorkerPool(workerPool)
	httpServer.SetConnectionManager(connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Roundtable started successfully", "pod_id", podID)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: drain workers first, then stop HTTP
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
