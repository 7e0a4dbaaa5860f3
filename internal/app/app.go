package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/0xshariq/ai-powered-chatbot/internal/api"
	"github.com/0xshariq/ai-powered-chatbot/internal/bus"
	"github.com/0xshariq/ai-powered-chatbot/internal/config"
	"github.com/0xshariq/ai-powered-chatbot/internal/database"
	"github.com/0xshariq/ai-powered-chatbot/internal/gen"
	"github.com/0xshariq/ai-powered-chatbot/internal/history"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/repository"
	"github.com/0xshariq/ai-powered-chatbot/internal/service"
	"github.com/0xshariq/ai-powered-chatbot/internal/session"
	"github.com/0xshariq/ai-powered-chatbot/internal/ws"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage backend", "backend", cfg.StorageBackend, "error", err)
		return 1
	}
	defer cleanup()

	gateway := gen.NewGatewayClient(cfg.GatewayURL)
	dispatcher := gen.NewDispatcher(gateway)

	events := bus.New()
	sessions := session.NewManager()
	index := history.NewIndex()
	unbind := index.Bind(events, func(summaries []model.ChatSummary) {
		if err := repo.SaveSummaries(context.Background(), summaries); err != nil {
			slog.Error("Failed to persist chat summaries", "error", err)
		}
	})
	defer unbind()

	chatService := service.NewChatService(repo, dispatcher, sessions, index, events)
	if err := chatService.Restore(context.Background()); err != nil {
		slog.Error("Failed to restore chat state", "error", err)
		return 1
	}

	wsHub := ws.NewHub()
	wsHub.Bind(events)
	defer wsHub.Close()

	chatHandler := api.NewChatHandler(chatService, cfg)
	router := api.NewRouter(chatHandler, wsHub, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for long-running generation endpoints
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort, "storage", cfg.StorageBackend)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// buildRepository selects the persistence backend from configuration. The
// returned cleanup func closes the underlying connection.
func buildRepository(cfg *config.Config) (repository.Repository, func(), error) {
	switch cfg.StorageBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, func() {}, err
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		cleanup := func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}
		return repository.NewRedisRepository(rdb), cleanup, nil
	case "sqlite":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, func() {}, err
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		cleanup := func() {
			if err := db.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return repository.NewSQLiteRepository(db), cleanup, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
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
