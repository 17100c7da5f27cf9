package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Clock is a mock implementation of ports.Clock driven by a virtual time.
// Sleeps advance the virtual time instantly, which makes pacing loops run
// deterministically and without real delays.
type Clock struct {
	mu  sync.Mutex
	now time.Time

	NowFunc        func() time.Time
	SleepUntilFunc func(ctx context.Context, t time.Time) error
	SleepFunc      func(ctx context.Context, d time.Duration) error

	// Recorded calls for verification
	SleepUntilCalls []time.Time
	SleepCalls      []time.Duration
}

// NewClock creates a mock clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (m *Clock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Clock) SleepUntil(ctx context.Context, t time.Time) error {
	m.mu.Lock()
	m.SleepUntilCalls = append(m.SleepUntilCalls, t)
	m.mu.Unlock()
	if m.SleepUntilFunc != nil {
		return m.SleepUntilFunc(ctx, t)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if t.After(m.now) {
		m.now = t
	}
	m.mu.Unlock()
	return nil
}

func (m *Clock) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.SleepCalls = append(m.SleepCalls, d)
	m.mu.Unlock()
	if m.SleepFunc != nil {
		return m.SleepFunc(ctx, d)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		m.Advance(d)
	}
	return nil
}

// Advance moves the virtual time forward (for test setup).
func (m *Clock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set pins the virtual time (for test setup).
func (m *Clock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

var _ ports.Clock = (*Clock)(nil)
