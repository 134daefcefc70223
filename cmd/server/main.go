package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskboard.app/server/common/id"
	"taskboard.app/server/common/logger"
	"taskboard.app/server/common/otel"
	"taskboard.app/server/core/config"
	"taskboard.app/server/core/db"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/http/router"
	"taskboard.app/server/internal/queue"
	"taskboard.app/server/internal/service"
	"taskboard.app/server/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg)
	slog.Info("taskboard starting", "env", cfg.Env)

	if err := id.Init(1); err != nil {
		slog.Error("failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.Info("database connected")

	var producer queue.Producer
	var redisClient *redis.Client
	if cfg.Queue.Enabled() {
		opts, err := redis.ParseURL(cfg.Queue.RedisURL)
		if err != nil {
			slog.Error("failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		producer = queue.NewRedisProducer(redisClient, cfg.Queue.RedisStream, slog.Default())
		slog.Info("redis connected", "stream", cfg.Queue.RedisStream)
	}

	stores := store.NewStores(database.Queries())
	services := service.NewServices(service.ServicesConfig{
		Stores:           stores,
		TxRunner:         service.NewTxRunner(database),
		SessionTTL:       cfg.Session.TTL,
		ActivityProducer: producer,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger())
	if cfg.OTel.Enabled() {
		engine.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}

	router.SetupRoutes(engine, services, router.RouterConfig{
		CookieName:   cfg.Session.CookieName,
		CookieMaxAge: int(cfg.Session.TTL.Seconds()),
		IsProduction: cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("redis shutdown error", "error", err)
		}
	}
	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown error", "error", err)
		}
	}

	slog.Info("shutdown complete")
}
