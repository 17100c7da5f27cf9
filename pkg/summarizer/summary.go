// Package summarizer provides summary generation for feed run results.
package summarizer

import "time"

// Summary contains all data collected during a feed run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Run identity
	Run RunInfo

	// Input side
	Input InputInfo

	// Feed totals
	Feed FeedInfo

	// Output side
	Output OutputInfo
}

// RunInfo identifies the run.
type RunInfo struct {
	ID       string
	CameraID string
}

// InputInfo describes where the frames came from.
type InputInfo struct {
	Directory    string
	Extension    string
	StartIndex   uint64
	FilesSeen    int
	TargetFPS    int
	KeyframeOnly bool
}

// FeedInfo contains the feed loop totals.
type FeedInfo struct {
	FramesEmitted uint64
	FramesSkipped uint64
	SummaryRows   uint64
	BehindTicks   uint64
	NextIndex     uint64
	ElapsedMs     int64
	AchievedFPS   float64
}

// OutputInfo describes what the run produced.
type OutputInfo struct {
	StreamPath   string
	FrameLog     string
	SummaryLog   string
	Boundary     string
	AudioEncoder string
	FallbackUsed bool
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRun sets run identity.
func (b *Builder) WithRun(id, cameraID string) *Builder {
	b.summary.Run = RunInfo{
		ID:       id,
		CameraID: cameraID,
	}
	return b
}

// WithInput sets input information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithFeed sets the feed loop totals.
func (b *Builder) WithFeed(feed FeedInfo) *Builder {
	b.summary.Feed = feed
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
