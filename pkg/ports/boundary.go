package ports

import (
	"context"
	"time"
)

// FrameBuffer is a stamped frame payload handed to the pipeline boundary.
// Ownership transfers at Push; the feeder must not touch the payload after
// a successful hand-off.
type FrameBuffer struct {
	Data     []byte
	PTS      time.Duration
	DTS      time.Duration
	Duration time.Duration
	PTS90k   int64
}

// BusEventType classifies asynchronous events surfaced by the boundary.
type BusEventType int

const (
	// BusError reports a pipeline error. Fatal to the feed.
	BusError BusEventType = iota
	// BusEOS reports that the pipeline reached end of stream.
	BusEOS
	// BusStateChanged reports a pipeline state transition. Informational.
	BusStateChanged
)

// String returns the string representation of the event type.
func (t BusEventType) String() string {
	switch t {
	case BusError:
		return "error"
	case BusEOS:
		return "eos"
	case BusStateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// BusEvent is an asynchronous notification from the pipeline boundary.
// Error and EOS events are delivered reliably; state changes are
// best-effort.
type BusEvent struct {
	Type    BusEventType
	TraceID string
	Source  string
	Message string
	Debug   string
	At      time.Time
}

// BoundaryInfo describes a constructed boundary.
type BoundaryInfo struct {
	Description  string
	AudioEncoder string // selected audio codec name, empty when audio is off
	FallbackUsed bool   // true when the primary audio encoder was discarded
}

// PipelineBoundary abstracts the downstream media pipeline the feeder pushes
// stamped buffers into. Beyond buffer acceptance and bus events the pipeline
// is opaque to the feeder.
type PipelineBoundary interface {
	// Start constructs and starts the pipeline. An error here is fatal to
	// the process; no buffers may be pushed before Start returns nil.
	Start(ctx context.Context) error

	// Push hands a stamped buffer to the pipeline. A rejection means the
	// pipeline is in a terminal state and the feed must stop.
	Push(buf *FrameBuffer) error

	// Drain signals end of stream and waits, bounded by ctx, for the
	// pipeline to finish flushing.
	Drain(ctx context.Context) error

	// Events returns the channel of asynchronous bus events. The channel
	// is closed when the boundary stops.
	Events() <-chan BusEvent

	// Info describes the constructed pipeline.
	Info() BoundaryInfo

	// Stop tears the pipeline down. Idempotent.
	Stop() error
}
