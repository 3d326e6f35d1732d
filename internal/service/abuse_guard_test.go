package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/ananyaa0518/resQAI/internal/service"

	mock_service "github.com/ananyaa0518/resQAI/internal/service/mocks"
)

func TestAbuseGuard_Allow_UnderLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for _, n := range []int64{0, 1, 2} {
		repo.EXPECT().CountRecentByOrigin(gomock.Any(), "10.0.0.1", now.Add(-time.Hour)).
			Return(n, nil).Times(1)

		guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)
		allowed, err := guard.Allow(context.Background(), "10.0.0.1", now)
		if err != nil {
			t.Fatalf("count=%d: unexpected err: %v", n, err)
		}
		if !allowed {
			t.Fatalf("count=%d: expected allowed", n)
		}
	}
}

func TestAbuseGuard_Allow_AtLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for _, n := range []int64{3, 4, 100} {
		repo.EXPECT().CountRecentByOrigin(gomock.Any(), "10.0.0.1", gomock.Any()).
			Return(n, nil).Times(1)

		guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)
		allowed, err := guard.Allow(context.Background(), "10.0.0.1", now)
		if err != nil {
			t.Fatalf("count=%d: unexpected err: %v", n, err)
		}
		if allowed {
			t.Fatalf("count=%d: expected denied", n)
		}
	}
}

func TestAbuseGuard_Allow_WindowBound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	want := now.Add(-time.Hour)

	repo.EXPECT().CountRecentByOrigin(gomock.Any(), "10.0.0.1", want).Return(int64(0), nil).Times(1)

	guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)
	if _, err := guard.Allow(context.Background(), "10.0.0.1", now); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAbuseGuard_Allow_FailsClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	repo.EXPECT().CountRecentByOrigin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down")).Times(1)

	guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)

	allowed, err := guard.Allow(context.Background(), "10.0.0.1", time.Now())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if allowed {
		t.Fatalf("a store failure must never allow")
	}
}

func TestAbuseGuard_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().CountRecentByOrigin(gomock.Any(), "10.0.0.1", now.Add(-time.Hour)).
		Return(int64(2), nil).Times(1)

	// Zero values fall back to 3 per hour.
	guard := service.NewAbuseGuard(repo, discardLogger(), 0, 0)

	allowed, err := guard.Allow(context.Background(), "10.0.0.1", now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed at count=2 under default max=3")
	}
}

func TestAbuseGuard_LockOrigin_Serializes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)

	var inSection int32
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := guard.LockOrigin("10.0.0.1")
			defer unlock()

			mu.Lock()
			inSection++
			if inSection != 1 {
				t.Errorf("critical section entered concurrently")
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
		}()
	}
	wg.Wait()
}

func TestAbuseGuard_LockOrigin_IndependentOrigins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	guard := service.NewAbuseGuard(repo, discardLogger(), 3, time.Hour)

	unlockA := guard.LockOrigin("10.0.0.1")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := guard.LockOrigin("10.0.0.2")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("different origins must not block each other")
	}
}
