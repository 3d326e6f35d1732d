package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

type moderationService struct {
	repo   ReportRepository
	cache  ReportCache
	queue  EventQueue
	logger *slog.Logger
}

func NewModerationService(repo ReportRepository, cache ReportCache, queue EventQueue, logger *slog.Logger) Moderation {
	return &moderationService{
		repo:   repo,
		cache:  cache,
		queue:  queue,
		logger: logger,
	}
}

// UpdateStatus loads the report, runs the transition function and
// persists the result. The caller is responsible for authorization;
// this service trusts whoever reached it.
func (s *moderationService) UpdateStatus(ctx context.Context, id int64, requested string) (*domain.Report, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	wasVerified := report.Status == domain.StatusVerified

	newStatus, verifiedAt, err := domain.ApplyStatus(report.Status, requested, report.VerifiedAt, time.Now())
	if err != nil {
		return nil, err
	}

	report.Status = newStatus
	report.VerifiedAt = verifiedAt

	if err := s.repo.UpdateStatus(ctx, report); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("report cache invalidate failed", slog.Any("error", err))
	}

	if newStatus == domain.StatusVerified && !wasVerified {
		s.notify(ctx, report)
	}

	s.logger.Info("report status updated",
		slog.Int64("id", report.ID),
		slog.String("status", string(newStatus)),
	)
	return report, nil
}

func (s *moderationService) notify(ctx context.Context, report *domain.Report) {
	if s.queue == nil {
		return
	}
	event := domain.ReportEvent{
		EventID:    uuid.New(),
		ReportID:   report.ID,
		Category:   report.Category,
		Status:     report.Status,
		Latitude:   report.Latitude,
		Longitude:  report.Longitude,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, event); err != nil {
		s.logger.Error("verify event enqueue failed",
			slog.Int64("report_id", report.ID),
			slog.Any("error", err),
		)
	}
}
