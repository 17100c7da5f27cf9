package nullboundary

import (
	"context"
	"testing"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

func TestBoundary_CountsAndDiscards(t *testing.T) {
	b := New()

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := b.Push(&ports.FrameBuffer{Data: make([]byte, 100)}); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	frames, bytes := b.Counts()
	if frames != 5 {
		t.Errorf("expected 5 frames, got %d", frames)
	}
	if bytes != 500 {
		t.Errorf("expected 500 bytes, got %d", bytes)
	}
}

func TestBoundary_EventsCloseOnStop(t *testing.T) {
	b := New()

	if err := b.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if _, open := <-b.Events(); open {
		t.Error("expected event channel to be closed")
	}
}
