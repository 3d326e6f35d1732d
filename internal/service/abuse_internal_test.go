package service

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func TestAbuseGuard_LockOrigin_EvictsIdleEntries(t *testing.T) {
	t.Parallel()

	guard := NewAbuseGuard(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), 3, time.Hour)

	for i := 0; i < 100; i++ {
		origin := string(rune('a'+i%26)) + ".example"
		unlock := guard.LockOrigin(origin)
		unlock()
	}

	guard.mu.Lock()
	n := len(guard.origins)
	guard.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected origins map to be empty after release, got %d entries", n)
	}
}

func TestAbuseGuard_LockOrigin_KeepsEntryWhileContended(t *testing.T) {
	t.Parallel()

	guard := NewAbuseGuard(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), 3, time.Hour)

	unlock := guard.LockOrigin("203.0.113.9")

	waiting := make(chan struct{})
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		close(waiting)
		u := guard.LockOrigin("203.0.113.9")
		close(done)
		u()
	}()

	<-waiting
	// Let the second caller reach the inner lock before checking refs.
	deadline := time.After(2 * time.Second)
	for {
		guard.mu.Lock()
		l, ok := guard.origins["203.0.113.9"]
		refs := 0
		if ok {
			refs = l.refs
		}
		guard.mu.Unlock()
		if refs == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("second caller never registered, refs=%d", refs)
		case <-time.After(time.Millisecond):
		}
	}

	unlock()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second caller never acquired the lock")
	}
	wg.Wait()

	guard.mu.Lock()
	n := len(guard.origins)
	guard.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected origins map to be empty after both holders released, got %d entries", n)
	}
}
