// Package streamdump provides a pipeline boundary that concatenates raw
// frame payloads into a single file. The output is the fed elementary
// stream verbatim, which makes feed behavior verifiable without GStreamer.
package streamdump

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Boundary appends every pushed payload to one output file.
type Boundary struct {
	path string
	fs   ports.FileSystem

	mu       sync.Mutex
	out      io.WriteCloser
	frames   uint64
	events   chan ports.BusEvent
	stopOnce sync.Once
}

// New creates a dump boundary writing to path.
func New(fs ports.FileSystem, path string) *Boundary {
	return &Boundary{
		path:   path,
		fs:     fs,
		events: make(chan ports.BusEvent),
	}
}

// Start opens the output file, truncating an existing one.
func (b *Boundary) Start(ctx context.Context) error {
	out, err := b.fs.Create(b.path)
	if err != nil {
		return fmt.Errorf("open stream dump %s: %w", b.path, err)
	}
	b.mu.Lock()
	b.out = out
	b.mu.Unlock()
	return nil
}

// Push appends the frame payload to the dump.
func (b *Boundary) Push(buf *ports.FrameBuffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return fmt.Errorf("stream dump %s not started", b.path)
	}
	if _, err := b.out.Write(buf.Data); err != nil {
		return fmt.Errorf("write stream dump %s: %w", b.path, err)
	}
	b.frames++
	return nil
}

// Drain has nothing to settle; writes land as they are pushed.
func (b *Boundary) Drain(ctx context.Context) error {
	return nil
}

// Events returns the bus channel. It carries nothing and closes on Stop.
func (b *Boundary) Events() <-chan ports.BusEvent {
	return b.events
}

// Info describes the boundary.
func (b *Boundary) Info() ports.BoundaryInfo {
	return ports.BoundaryInfo{Description: "stream dump " + b.path}
}

// Stop closes the dump file and the event channel.
func (b *Boundary) Stop() error {
	b.stopOnce.Do(func() { close(b.events) })
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return nil
	}
	err := b.out.Close()
	b.out = nil
	if err != nil {
		return fmt.Errorf("close stream dump %s: %w", b.path, err)
	}
	return nil
}

// Frames returns how many payloads landed in the dump.
func (b *Boundary) Frames() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

var _ ports.PipelineBoundary = (*Boundary)(nil)
