package feeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TanmayQuidich/ts-container/pkg/adapters/logger"
	"github.com/TanmayQuidich/ts-container/pkg/mocks"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

func TestParseMetadataRecord(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  ports.MetadataRecord
	}{
		{
			name: "complete record",
			value: `{"ball":"3","over":"12","innings":"1","isStart":"false",` +
				`"matchID":"1234","frame_name":"frame_cam1_000000042",` +
				`"ptp_timestamp":"1699999999.123","received_at":"2024-01-15T10:00:00Z"}`,
			want: ports.MetadataRecord{
				Ball:         "3",
				Over:         "12",
				Innings:      "1",
				IsStart:      "false",
				MatchID:      "1234",
				FrameName:    "frame_cam1_000000042",
				PTPTimestamp: "1699999999.123",
				ReceivedAt:   "2024-01-15T10:00:00Z",
			},
		},
		{
			name:  "missing fields become sentinel",
			value: `{"ball":"3","over":"12"}`,
			want: ports.MetadataRecord{
				Ball:         "3",
				Over:         "12",
				Innings:      "NA",
				IsStart:      "NA",
				MatchID:      "NA",
				FrameName:    "NA",
				PTPTimestamp: "NA",
				ReceivedAt:   "NA",
			},
		},
		{
			name:  "numeric and boolean values stringified",
			value: `{"ball":3,"over":12.5,"innings":1,"isStart":true,"matchID":1234}`,
			want: ports.MetadataRecord{
				Ball:         "3",
				Over:         "12.5",
				Innings:      "1",
				IsStart:      "true",
				MatchID:      "1234",
				FrameName:    "NA",
				PTPTimestamp: "NA",
				ReceivedAt:   "NA",
			},
		},
		{
			name:  "null field becomes sentinel",
			value: `{"ball":null,"over":"2"}`,
			want: ports.MetadataRecord{
				Ball:         "NA",
				Over:         "2",
				Innings:      "NA",
				IsStart:      "NA",
				MatchID:      "NA",
				FrameName:    "NA",
				PTPTimestamp: "NA",
				ReceivedAt:   "NA",
			},
		},
		{
			name:  "nested value becomes sentinel",
			value: `{"ball":{"n":3},"over":"2"}`,
			want: ports.MetadataRecord{
				Ball:         "NA",
				Over:         "2",
				Innings:      "NA",
				IsStart:      "NA",
				MatchID:      "NA",
				FrameName:    "NA",
				PTPTimestamp: "NA",
				ReceivedAt:   "NA",
			},
		},
		{
			name:  "malformed JSON",
			value: `{"ball": "3",`,
			want:  ports.UnavailableRecord(),
		},
		{
			name:  "non-object JSON",
			value: `[1,2,3]`,
			want:  ports.UnavailableRecord(),
		},
		{
			name:  "empty string",
			value: "",
			want:  ports.UnavailableRecord(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMetadataRecord(tt.value)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCorrelator_Lookup(t *testing.T) {
	store := mocks.NewMetadataStore()
	store.Set("frame_cam1_000000042", `{"ball":"3","over":"12","innings":"1"}`)

	c := NewCorrelator(store, 50*time.Millisecond, logger.NewNoop())

	rec := c.Lookup(context.Background(), "frame_cam1_000000042")
	if rec.Ball != "3" || rec.Over != "12" || rec.Innings != "1" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(store.GetCalls) != 1 || store.GetCalls[0] != "frame_cam1_000000042" {
		t.Errorf("expected one lookup for the stem, got %v", store.GetCalls)
	}
}

func TestCorrelator_Lookup_NotFound(t *testing.T) {
	store := mocks.NewMetadataStore()

	c := NewCorrelator(store, 50*time.Millisecond, logger.NewNoop())

	rec := c.Lookup(context.Background(), "frame_cam1_000000042")
	if rec != ports.UnavailableRecord() {
		t.Errorf("expected all-sentinel record, got %+v", rec)
	}
}

func TestCorrelator_Lookup_StoreError(t *testing.T) {
	store := mocks.NewMetadataStore()
	store.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", errors.New("connection refused")
	}

	c := NewCorrelator(store, 50*time.Millisecond, logger.NewNoop())

	rec := c.Lookup(context.Background(), "frame_cam1_000000042")
	if rec != ports.UnavailableRecord() {
		t.Errorf("expected all-sentinel record on store error, got %+v", rec)
	}
}

func TestCorrelator_Lookup_Timeout(t *testing.T) {
	store := mocks.NewMetadataStore()
	store.GetFunc = func(ctx context.Context, key string) (string, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Error("expected lookup context to carry a deadline")
		} else if until := time.Until(deadline); until > 50*time.Millisecond {
			t.Errorf("expected deadline within 50ms, got %v", until)
		}
		<-ctx.Done()
		return "", ctx.Err()
	}

	c := NewCorrelator(store, 10*time.Millisecond, logger.NewNoop())

	start := time.Now()
	rec := c.Lookup(context.Background(), "frame_cam1_000000042")
	if rec != ports.UnavailableRecord() {
		t.Errorf("expected all-sentinel record on timeout, got %+v", rec)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("lookup did not respect its timeout, took %v", elapsed)
	}
}

func TestCorrelator_Lookup_NilStore(t *testing.T) {
	c := NewCorrelator(nil, 50*time.Millisecond, logger.NewNoop())

	rec := c.Lookup(context.Background(), "frame_cam1_000000042")
	if rec != ports.UnavailableRecord() {
		t.Errorf("expected all-sentinel record without a store, got %+v", rec)
	}
}
