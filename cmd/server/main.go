package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/somgarh/campaign-backend/internal/card"
	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/database"
	"github.com/somgarh/campaign-backend/internal/handler"
	"github.com/somgarh/campaign-backend/internal/logger"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/router"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/storage"
	"github.com/somgarh/campaign-backend/internal/validator"
	"github.com/somgarh/campaign-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("storage", cfg.StorageDriver).
		Msg("Starting Somgarh Campaign Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Image Store ────────────────────────────────────────
	store, err := storage.NewStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize image store")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	beneficiaryRepo := repository.NewBeneficiaryRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	heroRepo := repository.NewHeroRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, cfg, log)
	cleanupService := service.NewCleanupService(store, rdb, log)
	contactService := service.NewContactService(contactRepo, log)
	teamService := service.NewTeamService(teamRepo, store, cleanupService, log)
	beneficiaryService := service.NewBeneficiaryService(beneficiaryRepo, store, cleanupService, log)
	galleryService := service.NewGalleryService(galleryRepo, store, cleanupService, log)
	heroService := service.NewHeroService(heroRepo, store, cleanupService, rdb, log)

	renderer := card.NewRenderer(cfg.CardFontPath)
	cardService := service.NewCardService(renderer, rdb, cfg.PublicBaseURL, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, adminService),
		Contact:     handler.NewContactHandler(contactService),
		Team:        handler.NewTeamHandler(teamService),
		Beneficiary: handler.NewBeneficiaryHandler(beneficiaryService, cardService),
		Gallery:     handler.NewGalleryHandler(galleryService),
		Hero:        handler.NewHeroHandler(heroService),
		Health:      handler.NewHealthHandler(pool, rdb),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	sweepWorker := worker.NewSweepWorker(store, rdb, log)
	go sweepWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, adminService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the sweep worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
