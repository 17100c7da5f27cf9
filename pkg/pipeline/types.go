package pipeline

import "time"

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for locating the first frame to feed.
type ScanInput struct {
	Directory   string // Frame directory to scan
	CameraID    string // Camera ID embedded in frame filenames
	Extension   string // Frame filename extension, without the dot
	StartIndex  uint64 // Explicit start index; 0 means auto-detect
	StartOffset uint64 // Added to an auto-detected start index
}

// DefaultScanInput returns ScanInput with default values.
func DefaultScanInput() ScanInput {
	return ScanInput{
		Extension: "hevc",
	}
}

// ScanResult contains the resolved starting point.
type ScanResult struct {
	// StartIndex is the first frame index the feed loop will wait for.
	StartIndex uint64

	// FilesSeen is the number of frame files present for the camera at
	// scan time. Informational; the directory keeps filling afterwards.
	FilesSeen int
}

// =============================================================================
// Feed Stage Types
// =============================================================================

// FeedInput carries the scan decision into the feed loop.
type FeedInput struct {
	StartIndex uint64
}

// FeedResult summarizes the finished feed loop.
type FeedResult struct {
	FramesEmitted uint64        // Buffers pushed into the pipeline
	FramesSkipped uint64        // Files skipped by the keyframe filter
	SummaryRows   uint64        // Event boundary rows written
	BehindTicks   uint64        // Emissions that ran more than one interval late
	NextIndex     uint64        // First index not processed
	Elapsed       time.Duration // Wall time of the loop
}
