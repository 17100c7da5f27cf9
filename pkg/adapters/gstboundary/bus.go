package gstboundary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tinyzimmer/go-gst/gst"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// busPollInterval keeps the pump responsive to cancellation without
// busy-looping.
const busPollInterval = 50 * time.Millisecond

// pumpBus polls the pipeline bus and translates messages into bus events.
// Errors and EOS are delivered reliably; state changes are best-effort and
// dropped when the consumer lags.
func (b *Boundary) pumpBus(ctx context.Context, pipeline *gst.Pipeline) {
	defer b.wg.Done()

	bus := pipeline.GetPipelineBus()
	dropped := 0

	for {
		select {
		case <-ctx.Done():
			if dropped > 0 {
				b.logger.Warn("Bus event overflow, dropped %d state messages", dropped)
			}
			return
		default:
		}

		msg := bus.TimedPop(busPollInterval)
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageError:
			gerr := msg.ParseError()
			evt := ports.BusEvent{
				Type:    ports.BusError,
				TraceID: uuid.New().String(),
				Source:  msg.Source(),
				Message: gerr.Error(),
				Debug:   gerr.DebugString(),
				At:      time.Now(),
			}
			select {
			case b.events <- evt:
			case <-ctx.Done():
				return
			}

		case gst.MessageEOS:
			// Release any Drain waiter before the event is consumed.
			b.signalEOS()
			evt := ports.BusEvent{
				Type:    ports.BusEOS,
				TraceID: uuid.New().String(),
				Source:  msg.Source(),
				At:      time.Now(),
			}
			select {
			case b.events <- evt:
			case <-ctx.Done():
				return
			}

		case gst.MessageStateChanged:
			// Only pipeline-level transitions are interesting.
			if msg.Source() != pipeline.GetName() {
				continue
			}
			old, next := msg.ParseStateChanged()
			evt := ports.BusEvent{
				Type:    ports.BusStateChanged,
				TraceID: uuid.New().String(),
				Source:  msg.Source(),
				Message: fmt.Sprintf("%s -> %s", old, next),
				At:      time.Now(),
			}
			select {
			case b.events <- evt:
			default:
				dropped++
			}
		}
	}
}
