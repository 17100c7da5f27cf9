package feeder

import (
	"time"
)

// throughput tracks the achieved feed rate over windows of one nominal
// second of frames, for the periodic operator stats line.
type throughput struct {
	window      int
	count       int
	windowStart time.Time
}

func newThroughput(window int) *throughput {
	if window < 1 {
		window = 1
	}
	return &throughput{window: window}
}

// start marks the beginning of the first window.
func (t *throughput) start(now time.Time) {
	t.windowStart = now
	t.count = 0
}

// tick records one emission at now. Once per full window it reports the
// window's elapsed time and achieved fps, then starts the next window.
func (t *throughput) tick(now time.Time) (elapsed time.Duration, fps float64, ok bool) {
	if t.windowStart.IsZero() {
		t.windowStart = now
	}
	t.count++
	if t.count < t.window {
		return 0, 0, false
	}
	elapsed = now.Sub(t.windowStart)
	if elapsed > 0 {
		fps = float64(t.count) / elapsed.Seconds()
	}
	t.count = 0
	t.windowStart = now
	return elapsed, fps, true
}
