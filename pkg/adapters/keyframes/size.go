// Package keyframes provides the keyframe classifiers used to filter the
// feed down to random-access points.
package keyframes

import (
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// DefaultSizeThreshold is the payload size at which a frame counts as a
// keyframe. Intra-coded frames dwarf the predicted frames between them at
// broadcast bitrates, so size alone separates the two populations.
const DefaultSizeThreshold = 65536

// SizeClassifier classifies frames by payload size alone. It needs no codec
// knowledge and works for any elementary stream.
type SizeClassifier struct {
	threshold int
}

// NewSize creates a size classifier. threshold <= 0 selects the default.
func NewSize(threshold int) *SizeClassifier {
	if threshold <= 0 {
		threshold = DefaultSizeThreshold
	}
	return &SizeClassifier{threshold: threshold}
}

// Keyframe reports whether data is at least the threshold size.
func (c *SizeClassifier) Keyframe(data []byte) bool {
	return len(data) >= c.threshold
}

var _ ports.KeyframeClassifier = (*SizeClassifier)(nil)
