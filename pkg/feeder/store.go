package feeder

import (
	"fmt"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// FrameStore loads ready frame files in full. It never caches: each frame is
// read exactly once, into a buffer owned by the caller.
type FrameStore struct {
	fs ports.FileSystem
}

// NewFrameStore creates a FrameStore on top of a filesystem.
func NewFrameStore(fs ports.FileSystem) *FrameStore {
	return &FrameStore{fs: fs}
}

// Load returns the file's complete payload. A failure after a positive
// readiness check means the storage layer is unusable; callers treat it as
// fatal and must not advance past the index.
func (s *FrameStore) Load(path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", path, err)
	}
	return data, nil
}
