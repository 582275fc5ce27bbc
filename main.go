package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/aita-judge/cliparse"
	"github.com/danielhkuo/aita-judge/dataset"
	"github.com/danielhkuo/aita-judge/db"
	"github.com/danielhkuo/aita-judge/feed"
	"github.com/danielhkuo/aita-judge/handlers"
	"github.com/danielhkuo/aita-judge/middleware"
	"github.com/danielhkuo/aita-judge/router"
	"github.com/danielhkuo/aita-judge/surveyconf"
)

func main() {
	var err error

	// Load .env if present (dev convenience, missing file is fine)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Verify connection
	if err := conn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the survey definition
	survey, err := surveyconf.Load(cfg.SurveyConfigPath)
	if err != nil {
		slog.Error("survey config failed", "error", err)
		os.Exit(1)
	}

	// Seed the dataset version counter from the last persisted load so
	// versions stay monotonic across restarts
	var lastVersion int64
	err = conn.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM dataset_load`).Scan(&lastVersion)
	if err != nil {
		slog.Error("failed to read last dataset version", "error", err)
		os.Exit(1)
	}

	store := dataset.NewStore(lastVersion)
	loader := dataset.NewLoader(feed.NewClient(nil, cfg.FeedURL), store, survey.CategorySet())

	// Initial dataset load. A failed load is not fatal: the server starts
	// and clients see the error state until a reload succeeds.
	loadCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	snap, err := loader.Reload(loadCtx)
	cancel()
	if err != nil {
		slog.Error("initial dataset load failed, serving error state", "error", err)
	} else if err := handlers.RecordDatasetLoad(conn, snap); err != nil {
		slog.Error("failed to record initial dataset load", "error", err)
	}

	// Optional scheduled refresh
	var scheduler *cron.Cron
	if cfg.RefreshSchedule != "" {
		scheduler = cron.New()
		_, err = scheduler.AddFunc(cfg.RefreshSchedule, func() {
			snap, err := loader.Reload(context.Background())
			if err != nil {
				return
			}
			if err := handlers.RecordDatasetLoad(conn, snap); err != nil {
				slog.Error("failed to record scheduled dataset load", "error", err)
			}
		})
		if err != nil {
			slog.Error("invalid refresh schedule", "schedule", cfg.RefreshSchedule, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		slog.Info("Feed refresh scheduled", "schedule", cfg.RefreshSchedule)
	}

	// Create router
	mux := router.NewRouter(conn, cfg, store, loader, survey)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		if scheduler != nil {
			scheduler.Stop()
		}
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
