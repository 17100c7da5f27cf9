package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Date(2026, 3, 12, 10, 30, 0, 0, time.UTC),
		Run: RunInfo{
			ID:       "run-1234",
			CameraID: "cam1",
		},
		Input: InputInfo{
			Directory:    "/mnt/cam1",
			Extension:    "hevc",
			StartIndex:   2379000,
			FilesSeen:    1500,
			TargetFPS:    300,
			KeyframeOnly: true,
		},
		Feed: FeedInfo{
			FramesEmitted: 1500,
			FramesSkipped: 30,
			SummaryRows:   7,
			BehindTicks:   2,
			NextIndex:     2380530,
			ElapsedMs:     5100,
			AchievedFPS:   294.1,
		},
		Output: OutputInfo{
			StreamPath:   "/data/out.ts",
			FrameLog:     "/data/frames.csv",
			SummaryLog:   "/data/summary_cam1.csv",
			Boundary:     "mpeg-ts",
			AudioEncoder: "avenc_aac",
		},
	}

	result := formatter.Format(summary)

	// Check required sections and values
	checks := []string{
		"# Feed Run Summary",
		"2026-03-12 10:30:00",
		"run-1234",
		"cam1",
		"/mnt/cam1",
		"2379000",   // start index
		"300 fps",   // target rate
		"294.1 fps", // achieved rate
		"5100 ms",   // elapsed
		"/data/out.ts",
		"avenc_aac",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_NoAudio(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Now(),
		Output: OutputInfo{
			Boundary: "mpeg-ts",
		},
	}

	result := formatter.Format(summary)

	if !strings.Contains(result, "None") {
		t.Error("expected output to contain 'None' for a run without audio")
	}
}

func TestMarkdownFormatter_Format_FallbackEncoder(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Now(),
		Output: OutputInfo{
			AudioEncoder: "twolamemp2enc",
			FallbackUsed: true,
		},
	}

	result := formatter.Format(summary)

	if !strings.Contains(result, "twolamemp2enc (fallback)") {
		t.Error("expected output to flag the fallback encoder")
	}
}

func TestMarkdownFormatter_Format_NullBoundary(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Now(),
		Output: OutputInfo{
			Boundary: "null",
		},
	}

	result := formatter.Format(summary)

	// A null run has no stream path
	if !strings.Contains(result, "| Stream | None |") {
		t.Error("expected the stream row to show 'None'")
	}
	if !strings.Contains(result, "null") {
		t.Error("expected the boundary description")
	}
}
