package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ananyaa0518/resQAI/internal/api"
	"github.com/ananyaa0518/resQAI/internal/classifier"
	"github.com/ananyaa0518/resQAI/internal/config"
	"github.com/ananyaa0518/resQAI/internal/redis"
	"github.com/ananyaa0518/resQAI/internal/service"
	"github.com/ananyaa0518/resQAI/internal/storage/postgres"
	"github.com/ananyaa0518/resQAI/internal/verify"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	reportCache := redis.NewReportCache(redisClient)
	eventQueue := redis.NewEventQueue(redisClient.Client, "report-events:queue")

	textClassifier := classifier.New(cfg.Classifier.ModelPath, logger)
	recaptcha := verify.NewRecaptcha(logger, cfg.Recaptcha)
	guard := service.NewAbuseGuard(storage.Reports(), logger, cfg.Abuse.MaxPerWindow, cfg.Abuse.Window)

	svc := service.NewService(
		service.NewReportIntakeService(storage.Reports(), guard, recaptcha, textClassifier, reportCache, logger),
		service.NewSOSIntakeService(storage.Reports(), reportCache, eventQueue, logger),
		service.NewReportQueryService(storage.Reports(), reportCache, logger, 30*time.Second),
		service.NewModerationService(storage.Reports(), reportCache, eventQueue, logger),
		service.NewStatsService(storage.Stats()),
	)

	sender := service.NewWebhookSender(logger, cfg.Webhook, eventQueue)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Postgres:      storage,
		Redis:         redisClient,
		WebhookSender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
