package service

import (
	"context"
	"time"

	"github.com/ananyaa0518/resQAI/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportIntake handles ordinary crowd-sourced report submissions.
type ReportIntake interface {
	Submit(ctx context.Context, req domain.CreateReportRequest, origin string) (*domain.Report, error)
}

// SOSIntake handles high-priority SOS alerts. No verification, no abuse
// accounting, no classification.
type SOSIntake interface {
	Submit(ctx context.Context, req domain.CreateSOSRequest, origin string) (*domain.Report, error)
}

// ReportQuery serves the map and admin views.
type ReportQuery interface {
	List(ctx context.Context) ([]*domain.Report, error)
	Get(ctx context.Context, id int64) (*domain.Report, error)
}

// Moderation applies status transitions on behalf of an already
// authorized caller.
type Moderation interface {
	UpdateStatus(ctx context.Context, id int64, requested string) (*domain.Report, error)
}

// Stats reports submission volumes for the admin panel.
type Stats interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

// ReportRepository is the durable store for reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context) ([]*domain.Report, error)
	Get(ctx context.Context, id int64) (*domain.Report, error)
	UpdateStatus(ctx context.Context, report *domain.Report) error
	CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int64, error)
}

// StatsRepository backs the Stats service.
type StatsRepository interface {
	CountByStatus(ctx context.Context, minutes int) (map[domain.ReportStatus]int64, error)
	CountByCategory(ctx context.Context, minutes int) (map[domain.Category]int64, error)
}

// Verifier is the external human-verification collaborator.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// Classifier maps report text to a category and never fails outward.
type Classifier interface {
	Classify(text string) domain.Category
}

// ReportCache is a short-lived cache of the full report list.
type ReportCache interface {
	GetAll(ctx context.Context) ([]*domain.Report, error)
	SetAll(ctx context.Context, reports []*domain.Report, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// EventQueue buffers report events for asynchronous webhook delivery.
type EventQueue interface {
	Enqueue(ctx context.Context, event domain.ReportEvent) error
}

type Service struct {
	ReportIntake ReportIntake
	SOSIntake    SOSIntake
	ReportQuery  ReportQuery
	Moderation   Moderation
	Stats        Stats
}

func NewService(
	reportIntake ReportIntake,
	sosIntake SOSIntake,
	reportQuery ReportQuery,
	moderation Moderation,
	stats Stats,
) *Service {
	return &Service{
		ReportIntake: reportIntake,
		SOSIntake:    sosIntake,
		ReportQuery:  reportQuery,
		Moderation:   moderation,
		Stats:        stats,
	}
}
