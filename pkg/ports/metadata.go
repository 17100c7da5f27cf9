package ports

import (
	"context"
	"errors"
)

// ErrMetadataNotFound is returned by MetadataStore.Get when the key has no value.
var ErrMetadataNotFound = errors.New("ports: metadata key not found")

// MetadataStore abstracts the side-channel key-value store holding per-frame
// metadata, keyed by the frame filename stem.
type MetadataStore interface {
	// Get returns the raw value stored under key.
	// Returns ErrMetadataNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Close releases the store connection.
	Close() error
}

// MetadataUnavailable is the sentinel substituted for any metadata field
// that cannot be resolved.
const MetadataUnavailable = "NA"

// MetadataRecord is the flat per-frame record extracted from the store value.
// Each field falls back to MetadataUnavailable independently; a record may be
// partially resolved.
type MetadataRecord struct {
	Ball         string
	Over         string
	Innings      string
	IsStart      string
	MatchID      string
	FrameName    string
	PTPTimestamp string
	ReceivedAt   string
}

// UnavailableRecord returns a MetadataRecord with every field set to the
// sentinel value.
func UnavailableRecord() MetadataRecord {
	return MetadataRecord{
		Ball:         MetadataUnavailable,
		Over:         MetadataUnavailable,
		Innings:      MetadataUnavailable,
		IsStart:      MetadataUnavailable,
		MatchID:      MetadataUnavailable,
		FrameName:    MetadataUnavailable,
		PTPTimestamp: MetadataUnavailable,
		ReceivedAt:   MetadataUnavailable,
	}
}
