package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ananyaa0518/resQAI/pkg/e"
)

// RecentCounter is the slice of the report store the guard needs.
type RecentCounter interface {
	CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int64, error)
}

// AbuseGuard enforces the per-origin submission cap over a sliding
// window. Counting runs against the durable store so the limit survives
// restarts. A store failure counts as a rejection, never an allow.
type AbuseGuard struct {
	counter RecentCounter
	logger  *slog.Logger
	max     int
	window  time.Duration

	mu      sync.Mutex
	origins map[string]*originLock
}

// originLock is refcounted so the origins map only holds entries with
// an active or waiting submission, instead of one per origin ever seen.
type originLock struct {
	mu   sync.Mutex
	refs int
}

func NewAbuseGuard(counter RecentCounter, logger *slog.Logger, max int, window time.Duration) *AbuseGuard {
	if max <= 0 {
		max = 3
	}
	if window <= 0 {
		window = time.Hour
	}
	return &AbuseGuard{
		counter: counter,
		logger:  logger,
		max:     max,
		window:  window,
		origins: make(map[string]*originLock),
	}
}

// Allow reports whether origin may submit at instant now. The lower
// window bound is exclusive: a report created exactly window ago no
// longer counts.
func (g *AbuseGuard) Allow(ctx context.Context, origin string, now time.Time) (bool, error) {
	since := now.Add(-g.window)
	n, err := g.counter.CountRecentByOrigin(ctx, origin, since)
	if err != nil {
		g.logger.Error("abuse count failed, rejecting",
			slog.String("origin", origin),
			slog.Any("error", err),
		)
		return false, e.Wrap("abuse.Allow", err)
	}
	return n < int64(g.max), nil
}

// LockOrigin serializes the count-then-create pair for a single origin
// so two concurrent submissions cannot both read headroom and both
// land. Callers must invoke the returned func when the create finishes.
// The entry is dropped once the last holder releases, so the map is
// bounded by the number of origins currently submitting.
func (g *AbuseGuard) LockOrigin(origin string) func() {
	g.mu.Lock()
	l, ok := g.origins[origin]
	if !ok {
		l = &originLock{}
		g.origins[origin] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.origins, origin)
		}
		g.mu.Unlock()
	}
}
