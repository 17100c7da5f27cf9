package streamdump

import (
	"context"
	"testing"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/mocks"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

func TestBoundary_ConcatenatesPayloads(t *testing.T) {
	fs := mocks.NewFileSystem()
	b := New(fs, "/out/stream.h265")

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	frames := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	for i, data := range frames {
		buf := &ports.FrameBuffer{
			Data: data,
			PTS:  time.Duration(i) * 4 * time.Millisecond,
		}
		if err := b.Push(buf); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}

	if err := b.Drain(context.Background()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	saved, ok := fs.GetFile("/out/stream.h265")
	if !ok {
		t.Fatal("expected dump file to exist")
	}
	if string(saved) != "firstsecondthird" {
		t.Errorf("expected concatenated payloads, got %q", saved)
	}
	if b.Frames() != 3 {
		t.Errorf("expected 3 frames recorded, got %d", b.Frames())
	}
}

func TestBoundary_PushBeforeStart(t *testing.T) {
	fs := mocks.NewFileSystem()
	b := New(fs, "/out/stream.h265")

	if err := b.Push(&ports.FrameBuffer{Data: []byte("x")}); err == nil {
		t.Error("expected error when pushing before Start")
	}
}

func TestBoundary_StopClosesEvents(t *testing.T) {
	fs := mocks.NewFileSystem()
	b := New(fs, "/out/stream.h265")

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	select {
	case _, open := <-b.Events():
		if open {
			t.Error("expected event channel to be closed")
		}
	default:
		t.Error("expected event channel to be closed, not empty")
	}

	// A second Stop must not panic or re-close.
	if err := b.Stop(); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}
