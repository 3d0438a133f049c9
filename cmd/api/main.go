package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-landing-backend/config"
	_ "go-landing-backend/docs" // Important for Swagger
	"go-landing-backend/internal/content"
	v1 "go-landing-backend/internal/delivery/http/v1"
	"go-landing-backend/internal/delivery/http/middleware"
	"go-landing-backend/internal/domain"
	"go-landing-backend/internal/inquiry"
	"go-landing-backend/internal/repository/memory"
	"go-landing-backend/internal/usecase"
	"go-landing-backend/pkg/logger"
	"go-landing-backend/pkg/redis"
	"go-landing-backend/pkg/session"
	"go-landing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title           Landing Inquiry API
// @version         1.0
// @description     Landing page content and the inquiry form engine.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey InquirySession
// @in header
// @name X-Inquiry-Session
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(logger.ParseLevel(cfg.LogLevel))
	logger.Log.Info("Starting landing backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Redis (optional, rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Info("Redis not configured, using in-memory rate limiting")
		} else {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	defer redis.Close()

	// 4. Load landing content
	catalog, err := content.Load(content.Embedded())
	if err != nil {
		logger.Log.Error("Failed to load landing content", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	sessionRepo := memory.NewInquirySessionRepository(cfg.SessionTTL, cfg.SessionMax)
	sessionRepo.StartCleanup(ctx, time.Minute)

	rateLimitStore := middleware.NewMemoryStore()
	rateLimitStore.StartCleanup(ctx, 5*time.Minute)

	// 6. Setup UseCases
	fieldValidator := inquiry.NewValidator(validation.New())
	notifier := usecase.NewLogNotifier()
	newEngine := func() domain.InquiryEngine {
		return inquiry.NewEngine(inquiry.Config{
			SubmitDelay:   cfg.SubmitDelay,
			LocateDelay:   cfg.LocateDelay,
			ResolvedPlace: cfg.ResolvedPlace,
			Validator:     fieldValidator,
			Notifier:      notifier,
		})
	}
	inquiryUC := usecase.NewInquiryUsecase(sessionRepo, newEngine, fieldValidator)
	catalogUC := usecase.NewCatalogUsecase(catalog)
	healthUC := usecase.NewHealthUsecase()

	// 7. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		InquiryUC:      inquiryUC,
		CatalogUC:      catalogUC,
		HealthUC:       healthUC,
		Signer:         session.NewSigner(cfg.SessionSecret, cfg.SessionTTL),
		Config:         cfg,
		RateLimitStore: rateLimitStore,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
	}
	logger.Log.Info("Server exiting")
}
