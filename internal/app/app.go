package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"boardgame-chatbot/backend/internal/api"
	"boardgame-chatbot/backend/internal/catalog"
	"boardgame-chatbot/backend/internal/config"
	"boardgame-chatbot/backend/internal/database"
	"boardgame-chatbot/backend/internal/fallback"
	"boardgame-chatbot/backend/internal/repository"
	"boardgame-chatbot/backend/internal/runpod"
	"boardgame-chatbot/backend/internal/service"
)

const (
	// routeTimeoutSlack is added to the backend timeout so a slow backend
	// call still has time to fall back before the route times out.
	routeTimeoutSlack = 15 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// App holds the long-lived dependencies of a running server.
type App struct {
	Config  *config.Config
	DB      *sql.DB
	Redis   *redis.Client
	Backend *runpod.Client
	Server  *http.Server
}

// NewApp builds every dependency from cfg. The caller owns the result and
// must call Close.
func NewApp(cfg *config.Config) (*App, error) {
	tables, err := fallback.Load(cfg.FallbackFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback tables: %w", err)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	a := &App{Config: cfg, DB: db}

	var cache catalog.Cache
	if a.Redis = connectRedis(cfg); a.Redis != nil {
		cache = catalog.NewRedisCache(a.Redis, cfg.CatalogCacheTTL)
	}

	a.Backend = runpod.NewClient(cfg.RunpodURL, cfg.RunpodAPIKey, cfg.RunpodTimeout)
	opts := service.Options{UseFallback: cfg.RunpodUseFallback, TopK: cfg.RunpodTopK}
	games := catalog.New(a.Backend, tables.FallbackGames(), cache)

	recommendationService := service.NewRecommendationService(a.Backend, tables, opts)
	ruleService := service.NewRuleService(a.Backend, games, tables, opts)
	qaRepo := repository.NewSQLiteRepository(db)

	chatHandler := api.NewChatHandler(recommendationService, ruleService, qaRepo)
	infoHandler := api.NewInfoHandler(recommendationService, ruleService, qaRepo)
	routeTimeout := cfg.RunpodTimeout + routeTimeoutSlack
	router := api.NewRouter(chatHandler, infoHandler, routeTimeout)

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      routeTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	a, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Failed to close application resources", "error", err)
		}
	}()

	probeBackend(a.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "runpod_url", cfg.RunpodURL, "fallback", cfg.RunpodUseFallback)
		serveErr <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// connectRedis returns nil when Redis is not configured or not reachable;
// the catalog then lives only in process memory.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, game catalog will not be shared", "addr", cfg.RedisAddr, "error", err)
		_ = rdb.Close()
		return nil
	}
	slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
	return rdb
}

// probeBackend logs whether the AI backend answers at startup. The server
// starts either way; requests fall back while the backend is down.
func probeBackend(backend runpod.Backend) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := backend.Health(ctx)
	if err != nil {
		slog.Warn("AI backend is not reachable, serving fallback answers until it is", "error", err)
		return
	}
	slog.Info("AI backend is reachable", "status", health["status"])
}
