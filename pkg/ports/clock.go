package ports

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and cancellable sleeps so the pacing
// loop can be driven with a synthetic clock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// SleepUntil blocks until t, or until ctx is cancelled, whichever
	// comes first. Returns the context error on cancellation, nil otherwise.
	SleepUntil(ctx context.Context, t time.Time) error

	// Sleep blocks for d, or until ctx is cancelled.
	Sleep(ctx context.Context, d time.Duration) error
}
