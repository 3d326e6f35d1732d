package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/pkg/e"
	"github.com/ananyaa0518/resQAI/pkg/validator"
)

type reportIntakeService struct {
	repo       ReportRepository
	guard      *AbuseGuard
	verifier   Verifier
	classifier Classifier
	cache      ReportCache
	logger     *slog.Logger
}

func NewReportIntakeService(
	repo ReportRepository,
	guard *AbuseGuard,
	verifier Verifier,
	classifier Classifier,
	cache ReportCache,
	logger *slog.Logger,
) ReportIntake {
	return &reportIntakeService{
		repo:       repo,
		guard:      guard,
		verifier:   verifier,
		classifier: classifier,
		cache:      cache,
		logger:     logger,
	}
}

// Submit runs the intake pipeline in cost order: local validation,
// then the verification round trip, then the store-backed abuse check,
// then classification. Any failure short-circuits with nothing
// persisted.
func (s *reportIntakeService) Submit(ctx context.Context, req domain.CreateReportRequest, origin string) (*domain.Report, error) {
	const op = "service.ReportIntake.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("report rejected by validation",
			slog.String("origin", origin),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	ok, err := s.verifier.Verify(ctx, req.RecaptchaToken)
	if err != nil || !ok {
		s.logger.Warn("report rejected by verification",
			slog.String("origin", origin),
			slog.Bool("verified", ok),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %w", op, e.ErrVerificationFailed)
	}

	unlock := s.guard.LockOrigin(origin)
	defer unlock()

	allowed, err := s.guard.Allow(ctx, origin, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !allowed {
		s.logger.Warn("report rejected by abuse guard", slog.String("origin", origin))
		return nil, fmt.Errorf("%s: %w", op, e.ErrRateLimited)
	}

	report := &domain.Report{
		Text:          req.Text,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Category:      s.classifier.Classify(req.Text),
		Status:        domain.StatusPending,
		OriginAddress: origin,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("report cache invalidate failed", slog.Any("error", err))
	}

	s.logger.Info("report created",
		slog.Int64("id", report.ID),
		slog.String("category", string(report.Category)),
	)
	return report, nil
}
