package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/internal/service"
	"github.com/ananyaa0518/resQAI/pkg/e"

	mock_service "github.com/ananyaa0518/resQAI/internal/service/mocks"
)

func TestSOSIntake_Submit_OK_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)
	queue := mock_service.NewMockEventQueue(ctrl)

	var created *domain.Report
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Report) error {
			r.ID = 7
			created = r
			return nil
		}).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	var event domain.ReportEvent
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.ReportEvent) error {
			event = ev
			return nil
		}).Times(1)

	svc := service.NewSOSIntakeService(repo, cache, queue, discardLogger())

	report, err := svc.Submit(context.Background(), domain.CreateSOSRequest{
		Latitude:  12.97,
		Longitude: 77.59,
	}, "10.0.0.9")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if report.Text != domain.DefaultSOSMessage {
		t.Fatalf("expected default message, got %q", report.Text)
	}
	if report.Category != domain.CategorySOS {
		t.Fatalf("expected SOS category, got %q", report.Category)
	}
	if report.Status != domain.StatusVerified {
		t.Fatalf("expected auto-verified, got %q", report.Status)
	}
	if report.VerifiedAt == nil {
		t.Fatalf("expected verifiedAt set")
	}
	if created.OriginAddress != "10.0.0.9" {
		t.Fatalf("expected origin recorded, got %q", created.OriginAddress)
	}

	if event.EventID == uuid.Nil {
		t.Fatalf("expected a non-nil event id")
	}
	if event.ReportID != 7 || event.Category != domain.CategorySOS || event.Status != domain.StatusVerified {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestSOSIntake_Submit_CustomMessageKept(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewSOSIntakeService(repo, cache, nil, discardLogger())

	report, err := svc.Submit(context.Background(), domain.CreateSOSRequest{
		Latitude:  1,
		Longitude: 2,
		Message:   "Trapped on the second floor",
	}, "10.0.0.9")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Text != "Trapped on the second floor" {
		t.Fatalf("message must be kept, got %q", report.Text)
	}
}

func TestSOSIntake_Submit_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	svc := service.NewSOSIntakeService(repo, cache, nil, discardLogger())

	cases := []domain.CreateSOSRequest{
		{Latitude: 90.01, Longitude: 0},
		{Latitude: -90.01, Longitude: 0},
		{Latitude: 0, Longitude: 180.5},
		{Latitude: 0, Longitude: -180.5},
	}
	for _, req := range cases {
		if _, err := svc.Submit(context.Background(), req, "10.0.0.9"); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("req=%+v: expected ErrInvalidInput, got %v", req, err)
		}
	}
}

func TestSOSIntake_Submit_CoordinateBoundaries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).AnyTimes()

	svc := service.NewSOSIntakeService(repo, cache, nil, discardLogger())

	cases := []domain.CreateSOSRequest{
		{Latitude: -90, Longitude: -180},
		{Latitude: 90, Longitude: 180},
		{Latitude: 0, Longitude: 0},
	}
	for _, req := range cases {
		if _, err := svc.Submit(context.Background(), req, "10.0.0.9"); err != nil {
			t.Fatalf("req=%+v: unexpected err: %v", req, err)
		}
	}
}

func TestSOSIntake_Submit_CreateError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)
	queue := mock_service.NewMockEventQueue(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)
	// No cache invalidate, no event on failure.

	svc := service.NewSOSIntakeService(repo, cache, queue, discardLogger())

	if _, err := svc.Submit(context.Background(), domain.CreateSOSRequest{Latitude: 1, Longitude: 2}, "10.0.0.9"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestSOSIntake_Submit_EnqueueErrorIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)
	queue := mock_service.NewMockEventQueue(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewSOSIntakeService(repo, cache, queue, discardLogger())

	if _, err := svc.Submit(context.Background(), domain.CreateSOSRequest{Latitude: 1, Longitude: 2}, "10.0.0.9"); err != nil {
		t.Fatalf("queue failure must not fail the alert: %v", err)
	}
}

func TestSOSIntake_Submit_VerifiedAtRecent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	cache := mock_service.NewMockReportCache(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewSOSIntakeService(repo, cache, nil, discardLogger())

	before := time.Now().UTC()
	report, err := svc.Submit(context.Background(), domain.CreateSOSRequest{Latitude: 1, Longitude: 2}, "10.0.0.9")
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.VerifiedAt.Before(before) || report.VerifiedAt.After(after) {
		t.Fatalf("verifiedAt out of range: %v", report.VerifiedAt)
	}
}
