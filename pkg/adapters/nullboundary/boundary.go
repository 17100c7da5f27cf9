// Package nullboundary provides a pipeline boundary that counts and
// discards frames. It serves dry runs and pacing measurements where no
// transport stream is wanted.
package nullboundary

import (
	"context"
	"sync"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Boundary discards every frame pushed into it.
type Boundary struct {
	mu       sync.Mutex
	frames   uint64
	bytes    uint64
	events   chan ports.BusEvent
	stopOnce sync.Once
}

// New creates a discarding boundary.
func New() *Boundary {
	return &Boundary{events: make(chan ports.BusEvent)}
}

// Start does nothing.
func (b *Boundary) Start(ctx context.Context) error {
	return nil
}

// Push counts the frame and drops it.
func (b *Boundary) Push(buf *ports.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames++
	b.bytes += uint64(len(buf.Data))
	return nil
}

// Drain does nothing; nothing is buffered.
func (b *Boundary) Drain(ctx context.Context) error {
	return nil
}

// Events returns the bus channel. It carries nothing and closes on Stop.
func (b *Boundary) Events() <-chan ports.BusEvent {
	return b.events
}

// Info describes the boundary.
func (b *Boundary) Info() ports.BoundaryInfo {
	return ports.BoundaryInfo{Description: "null"}
}

// Stop closes the event channel.
func (b *Boundary) Stop() error {
	b.stopOnce.Do(func() { close(b.events) })
	return nil
}

// Counts returns how many frames and payload bytes were discarded.
func (b *Boundary) Counts() (frames, bytes uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames, b.bytes
}

var _ ports.PipelineBoundary = (*Boundary)(nil)
