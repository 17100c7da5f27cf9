package framelog

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/TanmayQuidich/ts-container/pkg/mocks"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

func TestSummaryFilename(t *testing.T) {
	if got := SummaryFilename("cam1"); got != "summary_cam1.csv" {
		t.Errorf("expected 'summary_cam1.csv', got %q", got)
	}
}

func TestWriter_Headers(t *testing.T) {
	fs := mocks.NewFileSystem()
	w, err := New(fs, "/out/frames.csv", "/out/summary.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	frameLog, ok := fs.GetFile("/out/frames.csv")
	if !ok {
		t.Fatal("frame log not created")
	}
	wantFrame := "FrameIndex,PTS_90k,Filename,ball,frame_name,innings,isStart,matchID,over,ptp_timestamp,received_at\n"
	if string(frameLog) != wantFrame {
		t.Errorf("expected frame header %q, got %q", wantFrame, string(frameLog))
	}

	summaryLog, ok := fs.GetFile("/out/summary.csv")
	if !ok {
		t.Fatal("summary log not created")
	}
	wantSummary := "FrameIndex,PTS_90k,over,ball,innings,matchID\n"
	if string(summaryLog) != wantSummary {
		t.Errorf("expected summary header %q, got %q", wantSummary, string(summaryLog))
	}
}

func TestWriter_FrameRow(t *testing.T) {
	fs := mocks.NewFileSystem()
	w, err := New(fs, "/out/frames.csv", "/out/summary.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	rec := ports.MetadataRecord{
		Ball:         "3",
		Over:         "12",
		Innings:      "1",
		IsStart:      "false",
		MatchID:      "1234",
		FrameName:    "frame_cam1_000000042",
		PTPTimestamp: "1699999999.123",
		ReceivedAt:   "2024-01-15T10:00:00Z",
	}
	if err := w.Frame(42, 12600, "frame_cam1_000000042.h265", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The row is on disk immediately, without waiting for Close.
	frameLog, _ := fs.GetFile("/out/frames.csv")
	lines := strings.Split(strings.TrimRight(string(frameLog), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	want := "42,12600,frame_cam1_000000042.h265,3,frame_cam1_000000042,1,false,1234,12,1699999999.123,2024-01-15T10:00:00Z"
	if lines[1] != want {
		t.Errorf("expected row %q, got %q", want, lines[1])
	}
}

func TestWriter_SummaryRow(t *testing.T) {
	fs := mocks.NewFileSystem()
	w, err := New(fs, "/out/frames.csv", "/out/summary.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	rec := ports.MetadataRecord{Ball: "1", Over: "7", Innings: "2", MatchID: "1234"}
	if err := w.Summary(2100, 630000, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summaryLog, _ := fs.GetFile("/out/summary.csv")
	lines := strings.Split(strings.TrimRight(string(summaryLog), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[1] != "2100,630000,7,1,2,1234" {
		t.Errorf("expected row '2100,630000,7,1,2,1234', got %q", lines[1])
	}
}

func TestWriter_SentinelFields(t *testing.T) {
	fs := mocks.NewFileSystem()
	w, err := New(fs, "/out/frames.csv", "/out/summary.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := w.Frame(0, 0, "frame_cam1_000000000.h265", ports.UnavailableRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frameLog, _ := fs.GetFile("/out/frames.csv")
	lines := strings.Split(strings.TrimRight(string(frameLog), "\n"), "\n")
	want := "0,0,frame_cam1_000000000.h265,NA,NA,NA,NA,NA,NA,NA,NA"
	if lines[1] != want {
		t.Errorf("expected row %q, got %q", want, lines[1])
	}
}

type failingFile struct {
	failAfter int
	writes    int
}

func (f *failingFile) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.failAfter {
		return 0, errors.New("no space left on device")
	}
	return len(p), nil
}

func (f *failingFile) Close() error { return nil }

func TestWriter_RowWriteFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	// The frame log accepts its header, then every write fails.
	fs.CreateFunc = func(path string) (io.WriteCloser, error) {
		if path == "/out/frames.csv" {
			return &failingFile{failAfter: 1}, nil
		}
		return &discardFile{}, nil
	}

	w, err := New(fs, "/out/frames.csv", "/out/summary.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	err = w.Frame(0, 0, "frame_cam1_000000000.h265", ports.UnavailableRecord())
	if err == nil {
		t.Fatal("expected error when the row cannot be written")
	}
	if !strings.Contains(err.Error(), "frame log row") {
		t.Errorf("expected frame log row error, got %v", err)
	}
}

type discardFile struct{}

func (discardFile) Write(p []byte) (int, error) { return len(p), nil }
func (discardFile) Close() error                { return nil }

func TestWriter_CreateFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.CreateFunc = func(path string) (io.WriteCloser, error) {
		return nil, errors.New("permission denied")
	}

	if _, err := New(fs, "/out/frames.csv", "/out/summary.csv"); err == nil {
		t.Fatal("expected error when logs cannot be created")
	}
}
