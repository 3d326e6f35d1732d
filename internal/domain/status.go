package domain

import (
	"fmt"
	"time"

	"github.com/ananyaa0518/resQAI/pkg/e"
)

// ApplyStatus is the moderation transition function. It accepts any of
// the three known statuses as a target and reports e.ErrInvalidStatus
// for anything else. Moving to Verified stamps verifiedAt exactly once;
// re-verifying keeps the original timestamp, and moving to Pending or
// Rejected leaves it untouched.
//
// Authorization is deliberately not handled here. The caller must gate
// access before invoking a transition.
func ApplyStatus(current ReportStatus, requested string, verifiedAt *time.Time, now time.Time) (ReportStatus, *time.Time, error) {
	next := ReportStatus(requested)
	switch next {
	case StatusPending, StatusVerified, StatusRejected:
	default:
		return current, verifiedAt, fmt.Errorf("apply status %q: %w", requested, e.ErrInvalidStatus)
	}

	if next == StatusVerified && verifiedAt == nil {
		ts := now.UTC()
		verifiedAt = &ts
	}

	return next, verifiedAt, nil
}
