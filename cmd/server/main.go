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
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"job_recommendation/internal/api"
	"job_recommendation/internal/config"
	"job_recommendation/internal/db"
	"job_recommendation/internal/logger"
	"job_recommendation/internal/matcher"
	"job_recommendation/internal/seed"
	"job_recommendation/internal/store"
)

var (
	version = "1.0.0"
	commit  = "dev"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(&logger.Config{
		Level:  logger.Level(cfg.LogLevel),
		Format: logger.Format(cfg.LogFormat),
	})
	log.SetDefault()

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "migrate":
			runMigrate(cfg, os.Args[2:])
			return
		case "seed":
			runSeed(cfg, log)
			return
		case "version":
			fmt.Printf("job_recommendation %s (%s)\n", version, commit)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	runServer(cfg, log)
}

func printUsage() {
	fmt.Println(`Job Recommendation Service - rule-based job matching

Usage:
  job_recommendation [command]

Commands:
  (none)    Start the HTTP server
  migrate   Run database migrations
  seed      Insert the sample job postings
  version   Show version information
  help      Show this help message

Run 'job_recommendation migrate --help' for migration options.

Environment Variables:
  DATABASE_URL          PostgreSQL connection string (required)
  AUTO_MIGRATE          Apply migrations on startup (default: true)
  DB_MAX_OPEN_CONNS     Maximum open connections (default: 10)
  DB_MAX_IDLE_CONNS     Maximum idle connections (default: 2)
  DB_CONN_MAX_LIFETIME  Connection lifetime (default: 1h)
  PORT                  Server port (default: 8000)
  HOST                  Bind address (default: 0.0.0.0)
  SHUTDOWN_TIMEOUT      Graceful shutdown timeout (default: 30s)
  LOG_LEVEL             DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT            json or text (default: json)`)
}

func connect(ctx context.Context, cfg *config.Config) *sqlx.DB {
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	slog.Info("Connecting to database...")
	pgCfg := &db.PostgresConfig{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: db.DefaultPostgresConfig(cfg.DatabaseURL).ConnMaxIdleTime,
	}
	dbConn, err := db.NewDB(ctx, pgCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")
	return dbConn
}

func runServer(cfg *config.Config, log *logger.Logger) {
	ctx := context.Background()

	dbConn := connect(ctx, cfg)
	defer dbConn.Close()

	if cfg.AutoMigrate {
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Migrations applied")
	}

	jobStore := store.NewStore(dbConn)
	recommender := matcher.NewService(jobStore, log)

	router := api.NewRouter(cfg, jobStore, recommender, log, version)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting job recommendation service", "address", addr, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}

func migrateUp(databaseURL string) error {
	migrator, err := db.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

func runSeed(cfg *config.Config, log *logger.Logger) {
	ctx := context.Background()

	dbConn := connect(ctx, cfg)
	defer dbConn.Close()

	res, err := seed.Run(ctx, store.NewStore(dbConn), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d sample jobs (%d already present).\n", res.Inserted, res.Skipped)
}

func runMigrate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	databaseURL := fs.String("database", cfg.DatabaseURL, "PostgreSQL connection string")
	direction := fs.String("direction", "up", "Migration direction: up, down")
	steps := fs.Int("steps", 0, "Number of migrations to run (0 = all)")
	force := fs.Int("force", -1, "Force migration version (for recovery)")
	fs.Parse(args)

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "Error: DATABASE_URL is required. Set via environment variable or --database flag.")
		os.Exit(1)
	}

	fmt.Printf("Running migrations (%s)...\n", *direction)

	migrator, err := db.NewMigrator(*databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create migrator: %v\n", err)
		os.Exit(1)
	}
	defer migrator.Close()

	if *force >= 0 {
		fmt.Printf("Forcing migration version to %d...\n", *force)
		if err := migrator.Force(*force); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to force migration version: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migration version forced successfully.")
		return
	}

	if *steps != 0 {
		n := *steps
		if *direction == "down" {
			n = -n
		}
		if err := migrator.Steps(n); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Migration failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		switch *direction {
		case "up":
			if err := migrator.Up(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: Migration up failed: %v\n", err)
				os.Exit(1)
			}
		case "down":
			if err := migrator.Down(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: Migration down failed: %v\n", err)
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Error: Invalid direction '%s'. Use 'up' or 'down'.\n", *direction)
			os.Exit(1)
		}
	}

	ver, dirty, err := migrator.Version()
	if err != nil {
		fmt.Printf("Migrations applied successfully.\n")
	} else {
		dirtyStr := ""
		if dirty {
			dirtyStr = " (dirty)"
		}
		fmt.Printf("Migrations applied successfully. Current version: %d%s\n", ver, dirtyStr)
	}
}
