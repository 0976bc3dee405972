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

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/config"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/handlers"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/middleware"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/routes"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/transport"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	dispatcher := transport.NewHTTPDispatcher(cfg.SubmitBaseURL, cfg.SubmitTimeout)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy, logger)
	stop := make(chan struct{})
	go limiter.Run(stop)
	defer close(stop)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := routes.Handlers{
		MiniApp:   handlers.NewMiniAppHandler(dispatcher, logger),
		RateLimit: limiter.Handler,
	}
	if cfg.EnableSubmitEcho {
		h.Submit = handlers.NewSubmitHandler(logger)
	}
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Environment),
			zap.String("submit_base_url", cfg.SubmitBaseURL),
			zap.Bool("submit_echo", cfg.EnableSubmitEcho),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
