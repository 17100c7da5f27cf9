// Package orchestrator coordinates the feed pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"

	"github.com/TanmayQuidich/ts-container/pkg/pipeline"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// drainTimeout bounds the end-of-stream flush after a clean feed.
const drainTimeout = 5 * time.Second

// Config contains the run parameters the orchestrator itself consumes.
// Component-level settings travel inside the stages and the boundary.
type Config struct {
	// Input
	FrameDir  string
	CameraID  string
	Extension string

	// Output
	OutputPath string

	// Start position
	StartIndex  uint64 // explicit start; 0 means auto-detect
	StartOffset uint64 // added to an auto-detected start

	// Pacing, for run-level logs
	TargetFPS int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Extension: "hevc",
		TargetFPS: 300,
	}
}

// Orchestrator coordinates the boundary lifecycle and the scan and feed
// stages around it.
type Orchestrator struct {
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	feedStage pipeline.Stage[pipeline.FeedInput, pipeline.FeedResult]
	boundary  ports.PipelineBoundary
	logger    ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	feedStage pipeline.Stage[pipeline.FeedInput, pipeline.FeedResult],
	boundary ports.PipelineBoundary,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage: scanStage,
		feedStage: feedStage,
		boundary:  boundary,
		logger:    logger,
	}
}

// Run executes the complete feed: start the boundary, resolve the start
// index, pace frames into the pipeline, drain when the feed ends cleanly
// and tear everything down. Cancelling ctx stops the feed without error;
// an unbounded feed is normally ended exactly that way.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	runID := uuid.New().String()
	result := RunResult{RunID: runID}

	o.logger.Info(l10n.T("Starting pipeline"))
	o.logger.Debug(l10n.F("Feed run %s", runID))

	// 1. Bring up the media pipeline
	if err := o.boundary.Start(ctx); err != nil {
		o.logger.Error(l10n.F("Failed to start pipeline: %s", err))
		return result, fmt.Errorf("start boundary: %w", err)
	}
	info := o.boundary.Info()
	result.AudioEncoder = info.AudioEncoder
	result.FallbackUsed = info.FallbackUsed

	o.logger.Info(l10n.F("Feeding frames from %s (camera %s) at %d fps",
		config.FrameDir, config.CameraID, config.TargetFPS))
	o.logger.Info(l10n.F("Output to %s", config.OutputPath))

	// 2. Watch the bus. An error or premature EOS cancels the feed; the
	// first bus error becomes the run error when the feed itself is clean.
	feedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var busErr error
	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		for evt := range o.boundary.Events() {
			switch evt.Type {
			case ports.BusError:
				o.logger.Error(l10n.F("Pipeline bus error from %s: %s", evt.Source, evt.Message))
				if busErr == nil {
					busErr = fmt.Errorf("pipeline bus error: %s", evt.Message)
				}
				cancel()
			case ports.BusEOS:
				o.logger.Info(l10n.T("End of stream"))
				cancel()
			case ports.BusStateChanged:
				o.logger.Debug(l10n.F("Pipeline state %s", evt.Message))
			}
		}
	}()

	// 3. Resolve the start index
	scanRes, err := o.scanStage.Execute(feedCtx, o.buildScanInput(config))
	if err != nil {
		o.logger.Error(l10n.F("Failed to scan frames: %s", err))
		o.stopBoundary()
		<-monitorDone
		return result, fmt.Errorf("scan stage: %w", err)
	}
	result.StartIndex = scanRes.StartIndex
	result.FilesSeen = scanRes.FilesSeen

	// 4. Feed frames
	feedRes, feedErr := o.feedStage.Execute(feedCtx, pipeline.FeedInput{
		StartIndex: scanRes.StartIndex,
	})
	result.apply(feedRes)

	// 5. Flush the mux when the feed ended on its own terms
	if feedErr == nil && feedCtx.Err() == nil {
		o.logger.Info(l10n.T("Draining pipeline..."))
		drainCtx, drainCancel := context.WithTimeout(context.Background(), drainTimeout)
		if err := o.boundary.Drain(drainCtx); err != nil {
			o.logger.Warn(l10n.F("Drain incomplete: %s", err))
		}
		drainCancel()
	}

	// 6. Tear down and join the monitor
	o.stopBoundary()
	<-monitorDone

	if feedErr != nil {
		o.logger.Error(l10n.F("Feed failed: %s", feedErr))
		return result, fmt.Errorf("feed stage: %w", feedErr)
	}
	if busErr != nil {
		return result, busErr
	}

	o.logger.Info(l10n.F("Fed %d frames (%d skipped, %d summary rows) in %s",
		result.FramesEmitted, result.FramesSkipped, result.SummaryRows, result.Elapsed))
	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return result, nil
}

func (o *Orchestrator) buildScanInput(config Config) pipeline.ScanInput {
	return pipeline.ScanInput{
		Directory:   config.FrameDir,
		CameraID:    config.CameraID,
		Extension:   config.Extension,
		StartIndex:  config.StartIndex,
		StartOffset: config.StartOffset,
	}
}

func (o *Orchestrator) stopBoundary() {
	if err := o.boundary.Stop(); err != nil {
		o.logger.Warn(l10n.F("Failed to stop pipeline: %s", err))
	}
}

// RunResult contains the results of a feed run. On a feed error it still
// carries the totals up to the fault, matching what reached the frame logs.
type RunResult struct {
	// Identity
	RunID string

	// Scan outcome
	StartIndex uint64
	FilesSeen  int

	// Feed totals
	FramesEmitted uint64
	FramesSkipped uint64
	SummaryRows   uint64
	BehindTicks   uint64
	NextIndex     uint64
	Elapsed       time.Duration

	// Boundary selection
	AudioEncoder string
	FallbackUsed bool
}

func (r *RunResult) apply(feed pipeline.FeedResult) {
	r.FramesEmitted = feed.FramesEmitted
	r.FramesSkipped = feed.FramesSkipped
	r.SummaryRows = feed.SummaryRows
	r.BehindTicks = feed.BehindTicks
	r.NextIndex = feed.NextIndex
	r.Elapsed = feed.Elapsed
}
