package mocks

import (
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// KeyframeClassifier is a mock implementation of ports.KeyframeClassifier.
type KeyframeClassifier struct {
	KeyframeFunc func(data []byte) bool

	// Recorded calls for verification
	Calls int
}

// NewKeyframeClassifier creates a new mock classifier that treats every
// frame as a keyframe by default.
func NewKeyframeClassifier() *KeyframeClassifier {
	return &KeyframeClassifier{}
}

func (m *KeyframeClassifier) Keyframe(data []byte) bool {
	m.Calls++
	if m.KeyframeFunc != nil {
		return m.KeyframeFunc(data)
	}
	return true
}

var _ ports.KeyframeClassifier = (*KeyframeClassifier)(nil)
