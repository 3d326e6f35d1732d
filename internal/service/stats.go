package service

import (
	"context"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) Stats {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	byStatus, err := s.repo.CountByStatus(ctx, minutes)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.repo.CountByCategory(ctx, minutes)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &domain.ReportStats{
		WindowMinutes: minutes,
		Total:         total,
		ByStatus:      byStatus,
		ByCategory:    byCategory,
	}, nil
}
