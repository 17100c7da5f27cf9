package gstboundary

import (
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// videoCaps describes the appsrc payload: one complete Annex B HEVC access
// unit per buffer.
const videoCaps = "video/x-h265, stream-format=byte-stream, alignment=au"

// buildPipeline constructs the pipeline in NULL state:
//
//	appsrc → h265parse → queue → mpegtsmux → filesink
//
// with the audio branch from audio.go joining the mux when enabled.
func (b *Boundary) buildPipeline() (*gst.Pipeline, *app.Source, ports.BoundaryInfo, error) {
	// Safe to call more than once.
	gst.Init(nil)

	info := ports.BoundaryInfo{Description: "mpeg-ts"}

	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return nil, nil, info, fmt.Errorf("create pipeline: %w", err)
	}

	appsrc, err := app.NewAppSrc()
	if err != nil {
		return nil, nil, info, fmt.Errorf("create appsrc: %w", err)
	}
	appsrc.SetProperty("format", int(gst.FormatTime))
	appsrc.SetProperty("is-live", true)
	appsrc.SetProperty("stream-type", 0) // no seeking
	appsrc.SetProperty("caps", gst.NewCapsFromString(videoCaps))

	parse, err := gst.NewElement("h265parse")
	if err != nil {
		return nil, nil, info, fmt.Errorf("create h265parse: %w", err)
	}

	vqueue, err := gst.NewElement("queue")
	if err != nil {
		return nil, nil, info, fmt.Errorf("create queue: %w", err)
	}

	mux, err := gst.NewElement("mpegtsmux")
	if err != nil {
		return nil, nil, info, fmt.Errorf("create mpegtsmux: %w", err)
	}
	b.tuneMux(mux)

	sink, err := gst.NewElement("filesink")
	if err != nil {
		return nil, nil, info, fmt.Errorf("create filesink: %w", err)
	}
	sink.SetProperty("location", b.cfg.OutputPath)

	if err := pipeline.AddMany(appsrc.Element, parse, vqueue, mux, sink); err != nil {
		return nil, nil, info, fmt.Errorf("add video elements: %w", err)
	}
	if err := gst.ElementLinkMany(appsrc.Element, parse, vqueue, mux); err != nil {
		return nil, nil, info, fmt.Errorf("link video branch: %w", err)
	}
	if err := mux.Link(sink); err != nil {
		return nil, nil, info, fmt.Errorf("link mux to filesink: %w", err)
	}

	if b.cfg.Audio.Enabled {
		encoder, fallback, err := b.buildAudioBranch(pipeline, mux)
		if err != nil {
			return nil, nil, info, err
		}
		info.AudioEncoder = encoder
		info.FallbackUsed = fallback
	}

	return pipeline, appsrc, info, nil
}

// tuneMux applies the TS mux tuning property by property. mpegtsmux builds
// differ in which knobs they expose, so a missing property is skipped
// rather than treated as an error.
func (b *Boundary) tuneMux(mux *gst.Element) {
	props := []struct {
		name  string
		value interface{}
	}{
		{"pat-interval", uint(b.cfg.Mux.PATInterval)},
		{"pcr-interval", uint(b.cfg.Mux.PCRInterval)},
		{"program-number", b.cfg.Mux.ProgramNumber},
		{"pcr-pid", uint(b.cfg.Mux.PCRPID)},
		{"video-pid", uint(b.cfg.Mux.VideoPID)},
		{"audio-pid", uint(b.cfg.Mux.AudioPID)},
	}
	for _, p := range props {
		if err := mux.SetProperty(p.name, p.value); err != nil {
			b.logger.Debug("Mux property %s not supported, skipping", p.name)
		}
	}
}
