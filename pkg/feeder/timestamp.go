package feeder

import (
	"fmt"
	"math/bits"
	"time"
)

const (
	nanosPerSecond = uint64(time.Second)
	// muxClockRate is the 90 kHz clock the transport-stream mux runs on.
	muxClockRate = 90000
)

// Timestamps carries one frame's stamps in both clock domains.
type Timestamps struct {
	PTS      time.Duration
	DTS      time.Duration
	Duration time.Duration
	PTS90k   int64
}

// TimestampAllocator derives PTS, DTS and duration deterministically from
// the emission counter and the target frame rate. Wall-clock time is never
// involved, so pacing jitter cannot disturb the logical timeline.
type TimestampAllocator struct {
	fps      uint64
	duration time.Duration
}

// NewTimestampAllocator creates an allocator for the given frame rate.
func NewTimestampAllocator(fps int) (*TimestampAllocator, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("feeder: invalid frame rate %d", fps)
	}
	f := uint64(fps)
	return &TimestampAllocator{
		fps:      f,
		duration: time.Duration(scale(1, nanosPerSecond, f)),
	}, nil
}

// At returns the stamps for emission counter n. PTS is n/fps seconds scaled
// with a 128-bit intermediate, never accumulated incrementally. DTS equals
// PTS because the stream carries no reordering. The 90 kHz value rounds
// half up.
func (a *TimestampAllocator) At(n uint64) Timestamps {
	pts := scale(n, nanosPerSecond, a.fps)
	return Timestamps{
		PTS:      time.Duration(pts),
		DTS:      time.Duration(pts),
		Duration: a.duration,
		PTS90k:   int64(scaleRound(pts, muxClockRate, nanosPerSecond)),
	}
}

// FrameInterval returns the nominal spacing between frames.
func (a *TimestampAllocator) FrameInterval() time.Duration {
	return a.duration
}

// scale computes n*num/den, truncating, without 64-bit overflow in the
// intermediate product.
func scale(n, num, den uint64) uint64 {
	hi, lo := bits.Mul64(n, num)
	q, _ := bits.Div64(hi, lo, den)
	return q
}

// scaleRound computes n*num/den rounded half up.
func scaleRound(n, num, den uint64) uint64 {
	hi, lo := bits.Mul64(n, num)
	var carry uint64
	lo, carry = bits.Add64(lo, den/2, 0)
	hi += carry
	q, _ := bits.Div64(hi, lo, den)
	return q
}
