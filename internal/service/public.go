package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

type reportQueryService struct {
	repo     ReportRepository
	cache    ReportCache
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewReportQueryService(repo ReportRepository, cache ReportCache, logger *slog.Logger, cacheTTL time.Duration) ReportQuery {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &reportQueryService{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// List returns every report, newest first. Reads go through the redis
// cache; any cache fault falls through to postgres.
func (s *reportQueryService) List(ctx context.Context) ([]*domain.Report, error) {
	cached, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logger.Warn("report cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetAll(ctx, reports, s.cacheTTL); err != nil {
		s.logger.Warn("report cache write failed", slog.Any("error", err))
	}

	return reports, nil
}

func (s *reportQueryService) Get(ctx context.Context, id int64) (*domain.Report, error) {
	return s.repo.Get(ctx, id)
}
