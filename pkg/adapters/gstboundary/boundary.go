// Package gstboundary implements ports.PipelineBoundary on top of a
// GStreamer pipeline that parses HEVC access units, multiplexes them into
// an MPEG-TS container and writes the stream to disk. An optional audio
// branch pulls RTP L24 audio from a multicast group, encodes it and muxes
// it alongside the video.
package gstboundary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// teardownTimeout bounds how long Stop waits for the bus pump to exit.
const teardownTimeout = 3 * time.Second

// Config holds the settings for the MPEG-TS pipeline.
type Config struct {
	// OutputPath is the filesink location for the transport stream.
	OutputPath string

	Audio AudioConfig
	Mux   MuxConfig
}

// AudioConfig holds the RTP audio branch settings.
type AudioConfig struct {
	// Enabled turns the audio branch on. The video branch is unaffected
	// either way.
	Enabled bool

	// Port is the UDP port the RTP source listens on.
	Port int

	// MulticastGroup is the multicast address the source joins.
	MulticastGroup string

	// JitterLatencyMs is the rtpjitterbuffer latency in milliseconds.
	JitterLatencyMs int

	// BitRate is the encoder output bit rate in bits per second.
	BitRate int
}

// MuxConfig holds the mpegtsmux tuning knobs. Each property is applied
// individually and skipped when the installed mux does not expose it.
type MuxConfig struct {
	PATInterval   int
	PCRInterval   int
	ProgramNumber int
	PCRPID        int
	VideoPID      int
	AudioPID      int
}

// Boundary feeds stamped buffers into a live GStreamer pipeline.
type Boundary struct {
	cfg    Config
	logger ports.Logger

	mu       sync.Mutex
	started  bool
	pipeline *gst.Pipeline
	appsrc   *app.Source
	info     ports.BoundaryInfo
	cancel   context.CancelFunc

	wg       sync.WaitGroup
	events   chan ports.BusEvent
	eos      chan struct{}
	eosOnce  sync.Once
	stopOnce sync.Once
}

var _ ports.PipelineBoundary = (*Boundary)(nil)

// New creates a boundary for the given configuration. The pipeline is not
// constructed until Start.
func New(cfg Config, logger ports.Logger) *Boundary {
	return &Boundary{
		cfg:    cfg,
		logger: logger,
		events: make(chan ports.BusEvent, 16),
		eos:    make(chan struct{}),
	}
}

// Start builds the pipeline, moves it to PLAYING and launches the bus pump.
func (b *Boundary) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return ErrAlreadyStarted
	}

	pipeline, appsrc, info, err := b.buildPipeline()
	if err != nil {
		return err
	}

	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		_ = pipeline.SetState(gst.StateNull)
		return fmt.Errorf("start pipeline: %w", err)
	}

	// The pump outlives the Start context; Stop cancels it.
	pumpCtx, cancel := context.WithCancel(context.Background())

	b.pipeline = pipeline
	b.appsrc = appsrc
	b.info = info
	b.cancel = cancel
	b.started = true

	b.wg.Add(1)
	go b.pumpBus(pumpCtx, pipeline)

	return nil
}

// Push stamps a GStreamer buffer with the frame's timing and hands it to
// the appsrc. A non-OK flow return means the pipeline has stopped accepting
// data.
func (b *Boundary) Push(buf *ports.FrameBuffer) error {
	b.mu.Lock()
	src := b.appsrc
	b.mu.Unlock()

	if src == nil {
		return ErrNotStarted
	}

	// DTS equals PTS throughout (no reordering) and the parser fills it in
	// downstream, so only PTS and duration are stamped here.
	gbuf := gst.NewBufferFromBytes(buf.Data)
	gbuf.SetPresentationTimestamp(buf.PTS)
	gbuf.SetDuration(buf.Duration)

	if ret := src.PushBuffer(gbuf); ret != gst.FlowOK {
		return fmt.Errorf("%w: flow return %v", ErrPushRejected, ret)
	}
	return nil
}

// Drain signals end of stream and waits for the mux to flush, bounded by
// ctx.
func (b *Boundary) Drain(ctx context.Context) error {
	b.mu.Lock()
	src := b.appsrc
	b.mu.Unlock()

	if src == nil {
		return ErrNotStarted
	}

	if ret := src.EndStream(); ret != gst.FlowOK {
		return fmt.Errorf("end stream: flow return %v", ret)
	}

	select {
	case <-b.eos:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the bus event channel. Closed on Stop.
func (b *Boundary) Events() <-chan ports.BusEvent {
	return b.events
}

// Info describes the constructed pipeline.
func (b *Boundary) Info() ports.BoundaryInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.info
}

// Stop tears the pipeline down: cancel the bus pump, wait for it with a
// timeout, drop the pipeline to NULL and close the event channel. Safe to
// call more than once.
func (b *Boundary) Stop() error {
	b.mu.Lock()
	cancel := b.cancel
	pipeline := b.pipeline
	b.started = false
	b.appsrc = nil
	b.pipeline = nil
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()

		done := make(chan struct{})
		go func() {
			b.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(teardownTimeout):
			b.logger.Warn("Pipeline teardown timed out")
		}
	}

	var err error
	if pipeline != nil {
		if serr := pipeline.SetState(gst.StateNull); serr != nil {
			err = fmt.Errorf("stop pipeline: %w", serr)
		}
	}

	b.stopOnce.Do(func() { close(b.events) })
	return err
}

// signalEOS releases any Drain waiter. Called by the bus pump.
func (b *Boundary) signalEOS() {
	b.eosOnce.Do(func() { close(b.eos) })
}
