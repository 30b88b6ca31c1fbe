package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/llyods/backend/internal/config"
	"github.com/llyods/backend/internal/handler"
	"github.com/llyods/backend/internal/logging"
	"github.com/llyods/backend/internal/repository"
	"github.com/llyods/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.Env)

	var (
		repo       repository.SubmissionRepository
		storeReady atomic.Bool
	)

	switch {
	case cfg.Store == config.StoreMemory:
		repo = repository.NewMemorySubmissionRepository()
		storeReady.Store(true)
		slog.Info("using in-memory submission store")

	case cfg.DatabaseURL == "":
		// The server still runs: tracking lookups stay available and contact
		// submissions answer 503 until DATABASE_URL is provided.
		slog.Warn("DATABASE_URL not set; contact submissions disabled")

	default:
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed; contact submissions disabled", "error", err)
			break
		}
		defer pool.Close()

		pgRepo := repository.NewPgSubmissionRepository(pool)
		repo = pgRepo

		// Schema bootstrap runs in the background so a slow database does not
		// delay startup; the health endpoint reports readiness.
		go func() {
			if err := pgRepo.EnsureSchema(context.Background()); err != nil {
				slog.Error("schema initialization failed", "error", err)
				return
			}
			storeReady.Store(true)
			slog.Info("database schema initialized")
		}()
	}

	shipments, err := repository.NewStaticShipmentRepository()
	if err != nil {
		logging.Fatal("failed to load shipment dataset", "error", err)
	}

	submissionService := service.NewSubmissionService(repo, cfg.SubmitTimeout)
	trackingService := service.NewTrackingService(shipments)

	contactHandler := handler.NewContactHandler(submissionService, repo, cfg.Production())
	trackingHandler := handler.NewTrackingHandler(trackingService)
	healthHandler := handler.NewHealthHandler(cfg.Env, cfg.Port, cfg.StoreConfigured(), &storeReady, repo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("GET /api/diagnostics", healthHandler.Diagnostics)
	mux.HandleFunc("POST /api/test", healthHandler.Echo)
	mux.HandleFunc("POST /api/track", trackingHandler.Track)
	mux.HandleFunc("GET /api/available-tracking", trackingHandler.Available)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/contact-test", contactHandler.SelfTest)
	mux.HandleFunc("GET /api/admin/submissions", contactHandler.AdminList)
	mux.HandleFunc("/api/", handler.NotFound)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Recover(handler.RequestLogger(handler.CORS(cfg.FrontendURL)(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
