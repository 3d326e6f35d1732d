package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/pkg/e"
	"github.com/ananyaa0518/resQAI/pkg/validator"
)

type sosIntakeService struct {
	repo   ReportRepository
	cache  ReportCache
	queue  EventQueue
	logger *slog.Logger
}

func NewSOSIntakeService(repo ReportRepository, cache ReportCache, queue EventQueue, logger *slog.Logger) SOSIntake {
	return &sosIntakeService{
		repo:   repo,
		cache:  cache,
		queue:  queue,
		logger: logger,
	}
}

// Submit fast-tracks an SOS alert: coordinates are the only validated
// input and the report lands already verified. Verification, abuse
// accounting and classification are all skipped on purpose; an SOS
// trades abuse resistance for latency.
func (s *sosIntakeService) Submit(ctx context.Context, req domain.CreateSOSRequest, origin string) (*domain.Report, error) {
	const op = "service.SOSIntake.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("sos rejected by validation",
			slog.String("origin", origin),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	message := req.Message
	if message == "" {
		message = domain.DefaultSOSMessage
	}

	now := time.Now().UTC()
	report := &domain.Report{
		Text:          message,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Category:      domain.CategorySOS,
		Status:        domain.StatusVerified,
		OriginAddress: origin,
		VerifiedAt:    &now,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("report cache invalidate failed", slog.Any("error", err))
	}

	s.notify(ctx, report)

	s.logger.Info("sos alert created", slog.Int64("id", report.ID))
	return report, nil
}

func (s *sosIntakeService) notify(ctx context.Context, report *domain.Report) {
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
		s.logger.Error("sos event enqueue failed",
			slog.Int64("report_id", report.ID),
			slog.Any("error", err),
		)
	}
}
