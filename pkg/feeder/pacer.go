// Package feeder implements the frame feeding and synchronization core:
// readiness probing, anchor-based pacing, timestamp allocation, keyframe
// filtering, metadata correlation and audit logging.
package feeder

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/framelog"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// State identifies what the pacer is doing within a tick.
type State int

const (
	StateIdle State = iota
	StateAwaitingFile
	StateLoading
	StateCorrelating
	StateEmitting
	StateSkipping
	StateFaulted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingFile:
		return "awaiting-file"
	case StateLoading:
		return "loading"
	case StateCorrelating:
		return "correlating"
	case StateEmitting:
		return "emitting"
	case StateSkipping:
		return "skipping"
	case StateFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// SchedulerState is the pacer's mutable bookkeeping. It is owned by the
// feeding goroutine; nothing else reads or writes it while the loop runs.
type SchedulerState struct {
	// FrameCounter counts emitted frames. It drives both PTS allocation
	// and the pacing deadline, so skipped files consume neither a
	// timestamp nor a scheduling slot.
	FrameCounter uint64
	// CurrentIndex is the next file index to process. It advances on
	// every processed file, including skipped ones.
	CurrentIndex uint64
	// NextEmission is the wall-clock deadline of the next emission.
	NextEmission time.Time
	// Last observed event fields, for change detection.
	LastBall    string
	LastOver    string
	LastInnings string
}

// Config holds the pacer's operating parameters.
type Config struct {
	Directory    string
	CameraID     string
	Extension    string
	TargetFPS    int
	KeyframeOnly bool

	// MaxFrames stops the loop cleanly after this many emissions.
	// Zero means unbounded.
	MaxFrames uint64

	// File readiness: number of size re-samples and the gap between them.
	ReadyAttempts int
	ReadyDelay    time.Duration
	// RetryDelay is the wait before re-checking a file that is not ready.
	RetryDelay time.Duration

	// MetadataTimeout bounds each metadata lookup.
	MetadataTimeout time.Duration
}

// Result summarizes a finished feed loop. It is valid even when the loop
// ends with an error.
type Result struct {
	FramesEmitted uint64
	FramesSkipped uint64
	SummaryRows   uint64
	BehindTicks   uint64
	NextIndex     uint64
	Elapsed       time.Duration
}

// Pacer drives the per-frame loop: wait for the slot, wait for the file,
// load, classify, stamp, correlate, emit, log, advance.
type Pacer struct {
	cfg        Config
	interval   time.Duration
	clock      ports.Clock
	probe      *ReadinessProbe
	store      *FrameStore
	classifier ports.KeyframeClassifier
	correlator *Correlator
	boundary   ports.PipelineBoundary
	logs       *framelog.Writer
	alloc      *TimestampAllocator
	log        ports.Logger
	stats      *throughput

	state State
	sched SchedulerState
}

// New assembles a pacer. metadata may be nil to disable lookups; every
// record is then all-sentinel.
func New(
	cfg Config,
	fs ports.FileSystem,
	clock ports.Clock,
	classifier ports.KeyframeClassifier,
	metadata ports.MetadataStore,
	boundary ports.PipelineBoundary,
	logs *framelog.Writer,
	logger ports.Logger,
) (*Pacer, error) {
	alloc, err := NewTimestampAllocator(cfg.TargetFPS)
	if err != nil {
		return nil, err
	}
	if cfg.ReadyAttempts <= 0 {
		cfg.ReadyAttempts = 5
	}
	if cfg.ReadyDelay <= 0 {
		cfg.ReadyDelay = 2 * time.Millisecond
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}
	if cfg.MetadataTimeout <= 0 {
		cfg.MetadataTimeout = 50 * time.Millisecond
	}
	return &Pacer{
		cfg:        cfg,
		interval:   alloc.FrameInterval(),
		clock:      clock,
		probe:      NewReadinessProbe(fs, clock, cfg.ReadyAttempts, cfg.ReadyDelay),
		store:      NewFrameStore(fs),
		classifier: classifier,
		correlator: NewCorrelator(metadata, cfg.MetadataTimeout, logger),
		boundary:   boundary,
		logs:       logs,
		alloc:      alloc,
		log:        logger.WithComponent("feeder"),
		stats:      newThroughput(cfg.TargetFPS),
	}, nil
}

// Scheduler returns a copy of the pacer's bookkeeping for reporting. Only
// meaningful after Run returns.
func (p *Pacer) Scheduler() SchedulerState {
	return p.sched
}

// State returns the pacer's last state. Only meaningful after Run returns.
func (p *Pacer) State() State {
	return p.state
}

// Run feeds frames starting at startIndex until the context is cancelled,
// the optional MaxFrames budget is spent, or a fatal condition stops the
// loop. Cancellation and a spent budget return a nil error.
func (p *Pacer) Run(ctx context.Context, startIndex uint64) (Result, error) {
	started := p.clock.Now()
	res, err := p.run(ctx, startIndex)
	res.Elapsed = p.clock.Now().Sub(started)
	res.NextIndex = p.sched.CurrentIndex
	return res, err
}

func (p *Pacer) run(ctx context.Context, startIndex uint64) (Result, error) {
	var res Result
	p.sched = SchedulerState{CurrentIndex: startIndex}
	p.state = StateIdle

	// All deadlines derive from this anchor; nothing is accumulated, so
	// interval rounding cannot drift over long runs.
	anchor := p.clock.Now()
	p.sched.NextEmission = anchor
	p.stats.start(anchor)

	p.log.Debug("Feeding from index %d at %d fps", startIndex, p.cfg.TargetFPS)

	for {
		if ctx.Err() != nil {
			p.state = StateIdle
			return res, nil
		}
		if p.cfg.MaxFrames > 0 && res.FramesEmitted >= p.cfg.MaxFrames {
			p.log.Debug("Frame budget of %d reached", p.cfg.MaxFrames)
			p.state = StateIdle
			return res, nil
		}

		expected := anchor.Add(time.Duration(p.sched.FrameCounter) * p.interval)
		p.sched.NextEmission = expected
		now := p.clock.Now()
		if now.Before(expected) {
			if err := p.clock.SleepUntil(ctx, expected); err != nil {
				p.state = StateIdle
				return res, nil
			}
		} else if now.Sub(expected) > p.interval {
			// Late ticks proceed immediately; frames are never dropped
			// to catch up.
			p.log.Warn("Behind schedule by %s at frame %d",
				now.Sub(expected).Round(time.Millisecond), p.sched.FrameCounter)
			res.BehindTicks++
		}

		name := FrameFilename(p.cfg.CameraID, p.sched.CurrentIndex, p.cfg.Extension)
		path := filepath.Join(p.cfg.Directory, name)

		// Wait for the producer to finish writing the file. This can
		// recur indefinitely; counters and deadlines stay untouched.
		for !p.probe.Ready(ctx, path) {
			if ctx.Err() != nil {
				p.state = StateIdle
				return res, nil
			}
			if p.state != StateAwaitingFile {
				p.state = StateAwaitingFile
				p.log.Debug("Waiting for %s", name)
			}
			if err := p.clock.Sleep(ctx, p.cfg.RetryDelay); err != nil {
				p.state = StateIdle
				return res, nil
			}
		}

		p.state = StateLoading
		data, err := p.store.Load(path)
		if err != nil {
			// The file passed the readiness check, so this is storage
			// failure, not a slow producer.
			p.state = StateFaulted
			return res, fmt.Errorf("feeder: %w", err)
		}

		if p.cfg.KeyframeOnly && !p.classifier.Keyframe(data) {
			p.state = StateSkipping
			p.log.Debug("Skipping non-keyframe %s (%d bytes)", name, len(data))
			p.sched.CurrentIndex++
			res.FramesSkipped++
			continue
		}

		ts := p.alloc.At(p.sched.FrameCounter)

		p.state = StateCorrelating
		rec := p.correlator.Lookup(ctx, FrameStem(name))

		p.state = StateEmitting
		buf := &ports.FrameBuffer{
			Data:     data,
			PTS:      ts.PTS,
			DTS:      ts.DTS,
			Duration: ts.Duration,
			PTS90k:   ts.PTS90k,
		}
		if err := p.boundary.Push(buf); err != nil {
			p.state = StateFaulted
			return res, fmt.Errorf("feeder: emit frame %d: %w", p.sched.CurrentIndex, err)
		}

		if err := p.logs.Frame(p.sched.FrameCounter, ts.PTS90k, name, rec); err != nil {
			p.state = StateFaulted
			return res, fmt.Errorf("feeder: %w", err)
		}
		if p.metadataChanged(rec) {
			if err := p.logs.Summary(p.sched.FrameCounter, ts.PTS90k, rec); err != nil {
				p.state = StateFaulted
				return res, fmt.Errorf("feeder: %w", err)
			}
			p.log.Info("Event boundary at frame %d: over %s, ball %s, innings %s",
				p.sched.FrameCounter, rec.Over, rec.Ball, rec.Innings)
			p.sched.LastBall = rec.Ball
			p.sched.LastOver = rec.Over
			p.sched.LastInnings = rec.Innings
			res.SummaryRows++
		}

		p.sched.FrameCounter++
		p.sched.CurrentIndex++
		res.FramesEmitted++

		if elapsed, fps, ok := p.stats.tick(p.clock.Now()); ok {
			p.log.Info("Fed last %d frames in %d ms (%.1f fps)",
				p.cfg.TargetFPS, elapsed.Milliseconds(), fps)
		}
	}
}

// metadataChanged reports whether {ball, over, innings} moved since the last
// processed frame. The last-observed values start empty, so the first frame
// always registers as a boundary and seeds the summary log.
func (p *Pacer) metadataChanged(rec ports.MetadataRecord) bool {
	return rec.Ball != p.sched.LastBall ||
		rec.Over != p.sched.LastOver ||
		rec.Innings != p.sched.LastInnings
}
