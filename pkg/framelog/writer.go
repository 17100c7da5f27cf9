// Package framelog writes the per-frame and summary CSV records that form
// the authoritative synchronization audit trail of a feed run.
package framelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Column layouts of the two logs. The frame log carries one row per emitted
// frame; the summary log one row per detected {ball, over, innings} change.
var (
	frameHeader = []string{
		"FrameIndex", "PTS_90k", "Filename",
		"ball", "frame_name", "innings", "isStart", "matchID", "over",
		"ptp_timestamp", "received_at",
	}
	summaryHeader = []string{
		"FrameIndex", "PTS_90k", "over", "ball", "innings", "matchID",
	}
)

// SummaryFilename returns the conventional summary log name for a camera.
func SummaryFilename(cameraID string) string {
	return "summary_" + cameraID + ".csv"
}

// Writer appends frame and summary rows. Every row is flushed as it is
// written so the logs lose nothing on abrupt termination.
type Writer struct {
	frameFile   io.WriteCloser
	summaryFile io.WriteCloser
	frames      *csv.Writer
	summary     *csv.Writer
}

// New opens the two CSV files, truncating existing ones, and writes their
// headers.
func New(fs ports.FileSystem, framePath, summaryPath string) (*Writer, error) {
	frameFile, err := fs.Create(framePath)
	if err != nil {
		return nil, fmt.Errorf("create frame log: %w", err)
	}
	summaryFile, err := fs.Create(summaryPath)
	if err != nil {
		frameFile.Close()
		return nil, fmt.Errorf("create summary log: %w", err)
	}

	w := &Writer{
		frameFile:   frameFile,
		summaryFile: summaryFile,
		frames:      csv.NewWriter(frameFile),
		summary:     csv.NewWriter(summaryFile),
	}
	if err := w.writeRow(w.frames, frameHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("write frame log header: %w", err)
	}
	if err := w.writeRow(w.summary, summaryHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("write summary log header: %w", err)
	}
	return w, nil
}

// Frame appends one row to the frame log.
func (w *Writer) Frame(index uint64, pts90k int64, filename string, rec ports.MetadataRecord) error {
	row := []string{
		strconv.FormatUint(index, 10),
		strconv.FormatInt(pts90k, 10),
		filename,
		rec.Ball, rec.FrameName, rec.Innings, rec.IsStart,
		rec.MatchID, rec.Over, rec.PTPTimestamp, rec.ReceivedAt,
	}
	if err := w.writeRow(w.frames, row); err != nil {
		return fmt.Errorf("frame log row: %w", err)
	}
	return nil
}

// Summary appends one row to the summary log.
func (w *Writer) Summary(index uint64, pts90k int64, rec ports.MetadataRecord) error {
	row := []string{
		strconv.FormatUint(index, 10),
		strconv.FormatInt(pts90k, 10),
		rec.Over, rec.Ball, rec.Innings, rec.MatchID,
	}
	if err := w.writeRow(w.summary, row); err != nil {
		return fmt.Errorf("summary log row: %w", err)
	}
	return nil
}

func (w *Writer) writeRow(cw *csv.Writer, row []string) error {
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Close flushes and closes both logs. Safe to call once after any error.
func (w *Writer) Close() error {
	w.frames.Flush()
	w.summary.Flush()
	var firstErr error
	if err := w.frames.Error(); err != nil {
		firstErr = err
	}
	if err := w.summary.Error(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.frameFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.summaryFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
