package feeder

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Correlator fetches and parses side-channel metadata for a frame. Lookups
// are best-effort: any failure yields a sentinel-filled record and the feed
// continues. A lookup never blocks past the configured timeout.
type Correlator struct {
	store   ports.MetadataStore
	timeout time.Duration
	log     ports.Logger
}

// NewCorrelator creates a correlator. store may be nil, in which case every
// lookup returns the all-sentinel record.
func NewCorrelator(store ports.MetadataStore, timeout time.Duration, log ports.Logger) *Correlator {
	return &Correlator{
		store:   store,
		timeout: timeout,
		log:     log.WithComponent("metadata"),
	}
}

// Lookup resolves the metadata record stored under a frame filename stem.
func (c *Correlator) Lookup(ctx context.Context, stem string) ports.MetadataRecord {
	if c.store == nil {
		return ports.UnavailableRecord()
	}
	lookupCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, err := c.store.Get(lookupCtx, stem)
	if err != nil {
		if errors.Is(err, ports.ErrMetadataNotFound) {
			c.log.Debug("No metadata for %s", stem)
		} else {
			c.log.Warn("Metadata lookup failed for %s: %s", stem, err)
		}
		return ports.UnavailableRecord()
	}
	return ParseMetadataRecord(value)
}

// ParseMetadataRecord extracts the fixed field set from a flat JSON object.
// Fields resolve independently: a missing or malformed field becomes the
// sentinel without invalidating the rest. A value that is not a JSON object
// yields an all-sentinel record.
func ParseMetadataRecord(value string) ports.MetadataRecord {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(value), &fields); err != nil {
		return ports.UnavailableRecord()
	}
	return ports.MetadataRecord{
		Ball:         fieldString(fields, "ball"),
		Over:         fieldString(fields, "over"),
		Innings:      fieldString(fields, "innings"),
		IsStart:      fieldString(fields, "isStart"),
		MatchID:      fieldString(fields, "matchID"),
		FrameName:    fieldString(fields, "frame_name"),
		PTPTimestamp: fieldString(fields, "ptp_timestamp"),
		ReceivedAt:   fieldString(fields, "received_at"),
	}
}

// fieldString renders a single field to its logged form.
func fieldString(fields map[string]interface{}, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ports.MetadataUnavailable
	}
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ports.MetadataUnavailable
	}
}
