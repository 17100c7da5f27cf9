// Package scan implements the start index resolution stage.
package scan

import (
	"context"
	"fmt"

	"github.com/TanmayQuidich/ts-container/pkg/feeder"
	"github.com/TanmayQuidich/ts-container/pkg/pipeline"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Stage resolves where the feed starts: an explicit index, or the earliest
// frame already on disk.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new scan stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("scan"),
	}
}

// Execute resolves the starting frame index. The directory must exist; it
// may be empty when the start index is explicit, since frames keep
// arriving while the feed runs.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	var result pipeline.ScanResult

	s.logger.Debug("Scanning %s for frames", input.Directory)

	names, err := s.fs.ReadDir(input.Directory)
	if err != nil {
		return result, fmt.Errorf("read frame directory: %w", err)
	}
	for _, name := range names {
		if _, ok := feeder.ParseFrameIndex(name, input.CameraID, input.Extension); ok {
			result.FilesSeen++
		}
	}

	if input.StartIndex > 0 {
		result.StartIndex = input.StartIndex
	} else {
		first, err := feeder.EarliestIndex(s.fs, input.Directory, input.CameraID, input.Extension)
		if err != nil {
			return result, err
		}
		result.StartIndex = first + input.StartOffset
	}

	s.logger.Info("Starting at frame %d", result.StartIndex)
	return result, nil
}
