package feeder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Frame files are named frame_<camera_id>_<index>.<ext> with a fixed
// nine-digit zero-padded index.
const (
	framePrefix      = "frame_"
	frameIndexDigits = 9
)

// ErrNoFrames is returned when a directory holds no frame files for the camera.
var ErrNoFrames = errors.New("feeder: no frame files found")

// FrameFilename builds the filename of a camera's frame index.
func FrameFilename(cameraID string, index uint64, ext string) string {
	return fmt.Sprintf("%s%s_%09d.%s", framePrefix, cameraID, index, ext)
}

// FrameStem returns a filename without its extension. Metadata keys are the
// stem of the frame filename.
func FrameStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ParseFrameIndex extracts the index from a frame filename belonging to
// cameraID with extension ext. ok is false for any other file.
func ParseFrameIndex(name, cameraID, ext string) (uint64, bool) {
	prefix := framePrefix + cameraID + "_"
	suffix := "." + ext
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return 0, false
	}
	digits := name[len(prefix) : len(name)-len(suffix)]
	if len(digits) != frameIndexDigits {
		return 0, false
	}
	index, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return index, true
}

// EarliestIndex scans dir and returns the smallest frame index present for
// cameraID. Returns ErrNoFrames when nothing matches.
func EarliestIndex(fs ports.FileSystem, dir, cameraID, ext string) (uint64, error) {
	names, err := fs.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", dir, err)
	}
	var earliest uint64
	found := false
	for _, name := range names {
		index, ok := ParseFrameIndex(name, cameraID, ext)
		if !ok {
			continue
		}
		if !found || index < earliest {
			earliest = index
			found = true
		}
	}
	if !found {
		return 0, ErrNoFrames
	}
	return earliest, nil
}
