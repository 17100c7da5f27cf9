// Package systemclock provides the real-time ports.Clock implementation.
package systemclock

import (
	"context"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Clock implements ports.Clock using the system monotonic clock.
type Clock struct{}

// New creates a new Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current time.
func (c *Clock) Now() time.Time {
	return time.Now()
}

// SleepUntil blocks until t or until ctx is cancelled.
func (c *Clock) SleepUntil(ctx context.Context, t time.Time) error {
	return c.Sleep(ctx, time.Until(t))
}

// Sleep blocks for d or until ctx is cancelled.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ensure Clock implements ports.Clock
var _ ports.Clock = (*Clock)(nil)
