package feeder

import (
	"context"
	"testing"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/mocks"
)

func TestReadinessProbe_StableFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("/frames/frame_cam1_000000000.h265", []byte("frame data"))
	clock := mocks.NewClock(time.Unix(0, 0))

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if !probe.Ready(context.Background(), "/frames/frame_cam1_000000000.h265") {
		t.Error("expected stable file to be ready")
	}

	// One settle delay is enough for a file that is not changing.
	if len(clock.SleepCalls) != 1 {
		t.Errorf("expected 1 sleep, got %d", len(clock.SleepCalls))
	}
	if clock.SleepCalls[0] != 2*time.Millisecond {
		t.Errorf("expected 2ms sleep, got %v", clock.SleepCalls[0])
	}
}

func TestReadinessProbe_MissingFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	clock := mocks.NewClock(time.Unix(0, 0))

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if probe.Ready(context.Background(), "/frames/frame_cam1_000000000.h265") {
		t.Error("expected missing file to not be ready")
	}
	if len(clock.SleepCalls) != 0 {
		t.Errorf("expected no sleeps for missing file, got %d", len(clock.SleepCalls))
	}
}

func TestReadinessProbe_SettlesMidWindow(t *testing.T) {
	// Sizes grow for two samples, then hold. The probe should report ready
	// without burning the remaining attempts.
	fs := mocks.NewFileSystem()
	fs.SetFile("/frames/f.h265", []byte("x"))
	sizes := []int64{100, 200, 300, 300, 300, 300}
	sample := 0
	fs.FileSizeFunc = func(path string) (int64, error) {
		size := sizes[sample]
		if sample < len(sizes)-1 {
			sample++
		}
		return size, nil
	}
	clock := mocks.NewClock(time.Unix(0, 0))

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if !probe.Ready(context.Background(), "/frames/f.h265") {
		t.Error("expected file to settle within the attempt window")
	}
	// Samples: 100 (baseline), 200, 300, 300 -> three sleeps.
	if len(clock.SleepCalls) != 3 {
		t.Errorf("expected 3 sleeps, got %d", len(clock.SleepCalls))
	}
}

func TestReadinessProbe_KeepsGrowing(t *testing.T) {
	// A file still being written through every attempt is not ready.
	fs := mocks.NewFileSystem()
	fs.SetFile("/frames/f.h265", []byte("x"))
	var size int64
	fs.FileSizeFunc = func(path string) (int64, error) {
		size += 1000
		return size, nil
	}
	clock := mocks.NewClock(time.Unix(0, 0))

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if probe.Ready(context.Background(), "/frames/f.h265") {
		t.Error("expected growing file to not be ready")
	}
	if len(clock.SleepCalls) != 5 {
		t.Errorf("expected 5 sleeps, got %d", len(clock.SleepCalls))
	}
}

func TestReadinessProbe_StatFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("/frames/f.h265", []byte("x"))
	calls := 0
	fs.FileSizeFunc = func(path string) (int64, error) {
		calls++
		if calls > 1 {
			return 0, context.DeadlineExceeded
		}
		return 100, nil
	}
	clock := mocks.NewClock(time.Unix(0, 0))

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if probe.Ready(context.Background(), "/frames/f.h265") {
		t.Error("expected stat failure to report not ready")
	}
}

func TestReadinessProbe_ContextCanceled(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("/frames/f.h265", []byte("x"))
	clock := mocks.NewClock(time.Unix(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	probe := NewReadinessProbe(fs, clock, 5, 2*time.Millisecond)

	if probe.Ready(ctx, "/frames/f.h265") {
		t.Error("expected canceled context to abort the probe")
	}
}
