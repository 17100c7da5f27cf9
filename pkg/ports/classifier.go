package ports

// KeyframeClassifier decides whether a frame payload is a random-access
// point. Implementations must never fail: undecidable input classifies as
// not a keyframe.
type KeyframeClassifier interface {
	// Keyframe reports whether data is a random-access point.
	Keyframe(data []byte) bool
}
