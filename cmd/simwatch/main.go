// simwatch server: mirrors a Moodle instance into a local cache,
// digests submitted files and serves similarity lookups over HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moodle-tools/simwatch/pkg/api"
	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/database"
	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/lifecycle"
	"github.com/moodle-tools/simwatch/pkg/monitor"
	"github.com/moodle-tools/simwatch/pkg/moodle"
	"github.com/moodle-tools/simwatch/pkg/pipeline"
	"github.com/moodle-tools/simwatch/pkg/plugin"
	"github.com/moodle-tools/simwatch/pkg/pool"
	"github.com/moodle-tools/simwatch/pkg/version"

	// Register the bundled plugins.
	_ "github.com/moodle-tools/simwatch/pkg/plugin/plaintext"
)

// Capability tags of the managed components.
const (
	capLMS      lifecycle.Capability = "lms-client"
	capPool     lifecycle.Capability = "worker-pool"
	capMonitor  lifecycle.Capability = "monitor"
	capPipeline lifecycle.Capability = "pipeline"
	capAPI      lifecycle.Capability = "http-api"
)

const shutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting simwatch", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. Load the plugin registry
	pluginSettings := make(map[string]plugin.Settings, len(cfg.PluginSettings))
	for name, s := range cfg.PluginSettings {
		pluginSettings[name] = s
	}
	registry, err := plugin.Load(pluginSettings)
	if err != nil {
		slog.Error("Failed to load plugins", "error", err)
		os.Exit(1)
	}
	slog.Info("Plugins loaded", "digest_types", registry.DigestTypes())

	// 4. LMS client
	lmsConfig, err := moodle.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load Moodle config", "error", err)
		os.Exit(1)
	}
	lmsClient, err := moodle.New(lmsConfig)
	if err != nil {
		slog.Error("Failed to create Moodle client", "error", err)
		os.Exit(1)
	}

	// 5. Repositories
	cacheRepo := cache.NewRepository(dbClient)
	digestRepo := digest.NewRepository(dbClient)

	// 6. Components. Dependents pull their dependencies off the bus in
	// Start, so each only ever sees a provider that already started.
	workerPool := pool.New(pool.Config{
		Workers:   cfg.Pool.Workers,
		QueueSize: cfg.Pool.QueueSize,
	}, registry)
	httpServer := api.NewServer(cfg.API, dbClient, digestRepo, cacheRepo)

	var mon *monitor.Monitor
	var pipe *pipeline.Pipeline

	orchestrator := lifecycle.NewOrchestrator(
		&lifecycle.Func{
			ComponentName: "lms-client",
			Caps:          []lifecycle.Capability{capLMS},
			StartFunc: func(ctx context.Context, bus *lifecycle.Bus) error {
				// Fail fast on bad credentials; later calls re-login on
				// token expiry by themselves.
				if err := lmsClient.Login(ctx); err != nil {
					return err
				}
				return bus.Register(capLMS, lmsClient)
			},
		},
		&lifecycle.Func{
			ComponentName: "worker-pool",
			Caps:          []lifecycle.Capability{capPool},
			StartFunc: func(ctx context.Context, bus *lifecycle.Bus) error {
				if err := workerPool.Start(ctx); err != nil {
					return err
				}
				return bus.Register(capPool, workerPool)
			},
			StopFunc: workerPool.Stop,
		},
		&lifecycle.Func{
			ComponentName: "monitor",
			Deps:          []lifecycle.Capability{capLMS},
			Caps:          []lifecycle.Capability{capMonitor},
			StartFunc: func(ctx context.Context, bus *lifecycle.Bus) error {
				lms, err := lifecycle.Resolve[*moodle.Client](bus, capLMS)
				if err != nil {
					return err
				}
				mon = monitor.New(cfg.Scheduler, lms, cacheRepo)
				return mon.Start(ctx)
			},
			StopFunc: func(ctx context.Context) error {
				if mon == nil {
					return nil
				}
				return mon.Stop(ctx)
			},
		},
		&lifecycle.Func{
			ComponentName: "pipeline",
			Deps:          []lifecycle.Capability{capLMS, capPool, capMonitor},
			Caps:          []lifecycle.Capability{capPipeline},
			StartFunc: func(ctx context.Context, bus *lifecycle.Bus) error {
				lms, err := lifecycle.Resolve[*moodle.Client](bus, capLMS)
				if err != nil {
					return err
				}
				workers, err := lifecycle.Resolve[*pool.Pool](bus, capPool)
				if err != nil {
					return err
				}
				pipe = pipeline.New(cfg, digestRepo, lms, workers, registry.DigestTypes())
				return pipe.Start(ctx)
			},
			StopFunc: func(ctx context.Context) error {
				if pipe == nil {
					return nil
				}
				return pipe.Stop(ctx)
			},
		},
		&lifecycle.Func{
			ComponentName: "http-api",
			Deps:          []lifecycle.Capability{capMonitor, capPipeline},
			Caps:          []lifecycle.Capability{capAPI},
			StartFunc: func(ctx context.Context, _ *lifecycle.Bus) error {
				return httpServer.Start(ctx)
			},
			StopFunc: httpServer.Stop,
		},
	)

	if err := orchestrator.Start(ctx); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("simwatch started successfully",
		"listen_addr", cfg.API.ListenAddr,
		"pool_workers", cfg.Pool.Workers)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := orchestrator.Stop(shutdownCtx); err != nil {
		slog.Error("Shutdown reported errors", "error", err)
	}
	slog.Info("Shutdown complete")
}
