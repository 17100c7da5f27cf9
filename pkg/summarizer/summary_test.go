package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithRun(t *testing.T) {
	summary := NewBuilder().
		WithRun("run-1234", "cam1").
		Build()

	if summary.Run.ID != "run-1234" {
		t.Errorf("expected run ID 'run-1234', got '%s'", summary.Run.ID)
	}
	if summary.Run.CameraID != "cam1" {
		t.Errorf("expected camera 'cam1', got '%s'", summary.Run.CameraID)
	}
}

func TestBuilder_WithInput(t *testing.T) {
	input := InputInfo{
		Directory:    "/mnt/cam1",
		Extension:    "hevc",
		StartIndex:   2379000,
		FilesSeen:    1500,
		TargetFPS:    300,
		KeyframeOnly: true,
	}

	summary := NewBuilder().
		WithInput(input).
		Build()

	if summary.Input.Directory != "/mnt/cam1" {
		t.Errorf("expected directory '/mnt/cam1', got '%s'", summary.Input.Directory)
	}
	if summary.Input.StartIndex != 2379000 {
		t.Errorf("expected StartIndex 2379000, got %d", summary.Input.StartIndex)
	}
	if !summary.Input.KeyframeOnly {
		t.Error("expected KeyframeOnly to be true")
	}
}

func TestBuilder_WithFeed(t *testing.T) {
	feed := FeedInfo{
		FramesEmitted: 1500,
		FramesSkipped: 30,
		SummaryRows:   7,
		BehindTicks:   2,
		NextIndex:     2380530,
		ElapsedMs:     5100,
		AchievedFPS:   294.1,
	}

	summary := NewBuilder().
		WithFeed(feed).
		Build()

	if summary.Feed.FramesEmitted != 1500 {
		t.Errorf("expected FramesEmitted 1500, got %d", summary.Feed.FramesEmitted)
	}
	if summary.Feed.SummaryRows != 7 {
		t.Errorf("expected SummaryRows 7, got %d", summary.Feed.SummaryRows)
	}
	if summary.Feed.AchievedFPS != 294.1 {
		t.Errorf("expected AchievedFPS 294.1, got %f", summary.Feed.AchievedFPS)
	}
}

func TestBuilder_WithOutput(t *testing.T) {
	output := OutputInfo{
		StreamPath:   "/data/out.ts",
		FrameLog:     "/data/frames.csv",
		SummaryLog:   "/data/summary_cam1.csv",
		Boundary:     "mpeg-ts",
		AudioEncoder: "avenc_aac",
	}

	summary := NewBuilder().
		WithOutput(output).
		Build()

	if summary.Output.StreamPath != "/data/out.ts" {
		t.Errorf("expected stream '/data/out.ts', got '%s'", summary.Output.StreamPath)
	}
	if summary.Output.AudioEncoder != "avenc_aac" {
		t.Errorf("expected encoder 'avenc_aac', got '%s'", summary.Output.AudioEncoder)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithRun("run-1", "cam2").
		WithInput(InputInfo{
			Directory: "/mnt/cam2",
			TargetFPS: 250,
		}).
		WithFeed(FeedInfo{
			FramesEmitted: 100,
		}).
		WithOutput(OutputInfo{
			Boundary: "null",
		}).
		Build()

	// Verify all fields are set
	if summary.Run.CameraID != "cam2" {
		t.Error("Run.CameraID not set correctly")
	}
	if summary.Input.TargetFPS != 250 {
		t.Error("Input.TargetFPS not set correctly")
	}
	if summary.Feed.FramesEmitted != 100 {
		t.Error("Feed.FramesEmitted not set correctly")
	}
	if summary.Output.Boundary != "null" {
		t.Error("Output.Boundary not set correctly")
	}
}
