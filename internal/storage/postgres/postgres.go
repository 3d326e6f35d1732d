package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ananyaa0518/resQAI/internal/config"
	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/pkg/e"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context) ([]*domain.Report, error)
	Get(ctx context.Context, id int64) (*domain.Report, error)
	UpdateStatus(ctx context.Context, report *domain.Report) error
	CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int64, error)
}

type StatsRepository interface {
	CountByStatus(ctx context.Context, minutes int) (map[domain.ReportStatus]int64, error)
	CountByCategory(ctx context.Context, minutes int) (map[domain.Category]int64, error)
}

type Postgres struct {
	Pool       *pgxpool.Pool
	ReportRepo ReportRepository
	StatsRepo  StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.EnsureSchema", err)
	}

	return &Postgres{
		Pool:       pool,
		ReportRepo: NewReportRepo(pool, logger),
		StatsRepo:  NewStatsRepo(pool, logger),
	}, nil
}

func (p *Postgres) Reports() ReportRepository { return p.ReportRepo }
func (p *Postgres) Stats() StatsRepository    { return p.StatsRepo }

// EnsureSchema creates the reports table when it is missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS reports (
			id             BIGSERIAL PRIMARY KEY,
			text           TEXT NOT NULL,
			latitude       DOUBLE PRECISION NOT NULL,
			longitude      DOUBLE PRECISION NOT NULL,
			category       TEXT NOT NULL,
			status         TEXT NOT NULL,
			origin_address TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL,
			verified_at    TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_reports_origin_created
			ON reports (origin_address, created_at);
		CREATE INDEX IF NOT EXISTS idx_reports_created_at
			ON reports (created_at DESC);
	`)
	return err
}
