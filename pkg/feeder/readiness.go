package feeder

import (
	"context"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// ReadinessProbe decides whether a frame file is fully written. A file is
// ready when it exists and its size holds steady across consecutive samples.
// The probe never errors: a file that disappears, cannot be stated, or keeps
// growing through the whole attempt window reports not ready, and the caller
// retries the same index later.
type ReadinessProbe struct {
	fs       ports.FileSystem
	clock    ports.Clock
	attempts int
	delay    time.Duration
}

// NewReadinessProbe creates a probe that re-samples the size up to attempts
// times, delay apart.
func NewReadinessProbe(fs ports.FileSystem, clock ports.Clock, attempts int, delay time.Duration) *ReadinessProbe {
	if attempts < 1 {
		attempts = 1
	}
	return &ReadinessProbe{fs: fs, clock: clock, attempts: attempts, delay: delay}
}

// Ready reports whether path is safe to read in full.
func (p *ReadinessProbe) Ready(ctx context.Context, path string) bool {
	exists, err := p.fs.Exists(path)
	if err != nil || !exists {
		return false
	}
	lastSize, err := p.fs.FileSize(path)
	if err != nil {
		return false
	}
	for i := 0; i < p.attempts; i++ {
		if p.clock.Sleep(ctx, p.delay) != nil {
			return false
		}
		size, err := p.fs.FileSize(path)
		if err != nil {
			return false
		}
		if size == lastSize {
			return true
		}
		lastSize = size
	}
	return false
}
