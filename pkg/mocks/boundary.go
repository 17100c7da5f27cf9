package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// PushedFrame records one Push hand-off without retaining the payload.
type PushedFrame struct {
	Size     int
	PTS      time.Duration
	DTS      time.Duration
	Duration time.Duration
	PTS90k   int64
}

// PipelineBoundary is a mock implementation of ports.PipelineBoundary.
type PipelineBoundary struct {
	mu        sync.Mutex
	events    chan ports.BusEvent
	closeOnce sync.Once
	pushed    []PushedFrame

	StartFunc func(ctx context.Context) error
	PushFunc  func(buf *ports.FrameBuffer) error
	DrainFunc func(ctx context.Context) error
	StopFunc  func() error

	// Recorded calls for verification
	StartCalled bool
	DrainCalled bool
	StopCalled  bool
	InfoValue   ports.BoundaryInfo
}

// NewPipelineBoundary creates a new mock PipelineBoundary.
func NewPipelineBoundary() *PipelineBoundary {
	return &PipelineBoundary{
		events: make(chan ports.BusEvent, 16),
	}
}

func (m *PipelineBoundary) Start(ctx context.Context) error {
	m.StartCalled = true
	if m.StartFunc != nil {
		return m.StartFunc(ctx)
	}
	return nil
}

func (m *PipelineBoundary) Push(buf *ports.FrameBuffer) error {
	m.mu.Lock()
	m.pushed = append(m.pushed, PushedFrame{
		Size:     len(buf.Data),
		PTS:      buf.PTS,
		DTS:      buf.DTS,
		Duration: buf.Duration,
		PTS90k:   buf.PTS90k,
	})
	m.mu.Unlock()
	if m.PushFunc != nil {
		return m.PushFunc(buf)
	}
	return nil
}

func (m *PipelineBoundary) Drain(ctx context.Context) error {
	m.DrainCalled = true
	if m.DrainFunc != nil {
		return m.DrainFunc(ctx)
	}
	return nil
}

func (m *PipelineBoundary) Events() <-chan ports.BusEvent {
	return m.events
}

func (m *PipelineBoundary) Info() ports.BoundaryInfo {
	return m.InfoValue
}

func (m *PipelineBoundary) Stop() error {
	m.StopCalled = true
	m.closeOnce.Do(func() { close(m.events) })
	if m.StopFunc != nil {
		return m.StopFunc()
	}
	return nil
}

// EmitBus delivers an event to the boundary's consumers (for test setup).
func (m *PipelineBoundary) EmitBus(ev ports.BusEvent) {
	m.events <- ev
}

// Pushed returns the recorded hand-offs (for test verification).
func (m *PipelineBoundary) Pushed() []PushedFrame {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]PushedFrame, len(m.pushed))
	copy(result, m.pushed)
	return result
}

var _ ports.PipelineBoundary = (*PipelineBoundary)(nil)
