// Package feed implements the paced frame feed stage.
package feed

import (
	"context"
	"fmt"

	"github.com/TanmayQuidich/ts-container/pkg/feeder"
	"github.com/TanmayQuidich/ts-container/pkg/framelog"
	"github.com/TanmayQuidich/ts-container/pkg/pipeline"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Config carries the pacer settings and the frame log destinations.
type Config struct {
	Feeder     feeder.Config
	FrameLog   string
	SummaryLog string
}

// Stage drives the paced feed loop against the pipeline boundary.
type Stage struct {
	cfg        Config
	fs         ports.FileSystem
	clock      ports.Clock
	classifier ports.KeyframeClassifier
	store      ports.MetadataStore
	boundary   ports.PipelineBoundary
	logger     ports.Logger
}

// New creates a new feed stage. store may be nil to disable metadata
// lookups; every record is then all-sentinel.
func New(
	cfg Config,
	fs ports.FileSystem,
	clock ports.Clock,
	classifier ports.KeyframeClassifier,
	store ports.MetadataStore,
	boundary ports.PipelineBoundary,
	logger ports.Logger,
) *Stage {
	return &Stage{
		cfg:        cfg,
		fs:         fs,
		clock:      clock,
		classifier: classifier,
		store:      store,
		boundary:   boundary,
		logger:     logger,
	}
}

// Execute opens the frame logs, runs the pacer from the scanned start index
// and reports the loop totals. The logs are closed whichever way the loop
// ends.
func (s *Stage) Execute(ctx context.Context, input pipeline.FeedInput) (pipeline.FeedResult, error) {
	var result pipeline.FeedResult

	logs, err := framelog.New(s.fs, s.cfg.FrameLog, s.cfg.SummaryLog)
	if err != nil {
		return result, fmt.Errorf("open frame logs: %w", err)
	}

	pacer, err := feeder.New(s.cfg.Feeder, s.fs, s.clock, s.classifier, s.store, s.boundary, logs, s.logger)
	if err != nil {
		logs.Close()
		return result, err
	}

	res, runErr := pacer.Run(ctx, input.StartIndex)

	result = pipeline.FeedResult{
		FramesEmitted: res.FramesEmitted,
		FramesSkipped: res.FramesSkipped,
		SummaryRows:   res.SummaryRows,
		BehindTicks:   res.BehindTicks,
		NextIndex:     res.NextIndex,
		Elapsed:       res.Elapsed,
	}

	if cerr := logs.Close(); cerr != nil && runErr == nil {
		runErr = fmt.Errorf("close frame logs: %w", cerr)
	}

	return result, runErr
}
