package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/internal/service"

	mock_service "github.com/ananyaa0518/resQAI/internal/service/mocks"
)

func TestReportQuery_List_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	want := []*domain.Report{pendingReport(1), pendingReport(2)}
	cache.EXPECT().GetAll(gomock.Any()).Return(want, nil).Times(1)
	// repo.List must not run on a hit.

	svc := service.NewReportQueryService(repo, cache, discardLogger(), 30*time.Second)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
}

func TestReportQuery_List_CacheMiss(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	want := []*domain.Report{pendingReport(3)}
	gomock.InOrder(
		cache.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1),
		repo.EXPECT().List(gomock.Any()).Return(want, nil).Times(1),
		cache.EXPECT().SetAll(gomock.Any(), want, 30*time.Second).Return(nil).Times(1),
	)

	svc := service.NewReportQueryService(repo, cache, discardLogger(), 30*time.Second)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("unexpected reports: %+v", got)
	}
}

func TestReportQuery_List_CacheFaultFallsThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	cache.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repo.EXPECT().List(gomock.Any()).Return([]*domain.Report{pendingReport(4)}, nil).Times(1)
	cache.EXPECT().SetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewReportQueryService(repo, cache, discardLogger(), 30*time.Second)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache faults must not surface: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
}

func TestReportQuery_List_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	cache.EXPECT().GetAll(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	svc := service.NewReportQueryService(repo, cache, discardLogger(), 0)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestReportQuery_Get(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	want := pendingReport(9)
	repo.EXPECT().Get(gomock.Any(), int64(9)).Return(want, nil).Times(1)

	svc := service.NewReportQueryService(repo, cache, discardLogger(), 0)

	got, err := svc.Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestStats_GetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)

	repo.EXPECT().CountByStatus(gomock.Any(), 30).Return(map[domain.ReportStatus]int64{
		domain.StatusPending:  4,
		domain.StatusVerified: 2,
		domain.StatusRejected: 1,
	}, nil).Times(1)
	repo.EXPECT().CountByCategory(gomock.Any(), 30).Return(map[domain.Category]int64{
		domain.CategoryFlood: 5,
		domain.CategorySOS:   2,
	}, nil).Times(1)

	svc := service.NewStatsService(repo)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.WindowMinutes != 30 {
		t.Fatalf("expected window=30, got %d", stats.WindowMinutes)
	}
	if stats.Total != 7 {
		t.Fatalf("expected total=7, got %d", stats.Total)
	}
	if stats.ByCategory[domain.CategoryFlood] != 5 {
		t.Fatalf("unexpected category counts: %+v", stats.ByCategory)
	}
}

func TestStats_GetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)

	repo.EXPECT().CountByStatus(gomock.Any(), 60).Return(map[domain.ReportStatus]int64{}, nil).Times(1)
	repo.EXPECT().CountByCategory(gomock.Any(), 60).Return(map[domain.Category]int64{}, nil).Times(1)

	svc := service.NewStatsService(repo)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.WindowMinutes != 60 {
		t.Fatalf("expected default window=60, got %d", stats.WindowMinutes)
	}
	if stats.Total != 0 {
		t.Fatalf("expected total=0, got %d", stats.Total)
	}
}

func TestStats_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)

	repo.EXPECT().CountByStatus(gomock.Any(), 60).Return(nil, errors.New("db error")).Times(1)

	svc := service.NewStatsService(repo)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
