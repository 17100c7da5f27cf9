package gstboundary

import "errors"

var (
	// ErrAlreadyStarted is returned when Start is called on a running boundary.
	ErrAlreadyStarted = errors.New("gstboundary: pipeline already started")

	// ErrNotStarted is returned when buffers are pushed before Start.
	ErrNotStarted = errors.New("gstboundary: pipeline not started")

	// ErrPushRejected is returned when the appsrc refuses a buffer. The
	// pipeline is in a terminal state and the feed must stop.
	ErrPushRejected = errors.New("gstboundary: appsrc rejected buffer")

	// ErrNoAudioEncoder is returned when the audio branch is enabled but
	// neither candidate encoder is installed.
	ErrNoAudioEncoder = errors.New("gstboundary: no audio encoder available")
)
