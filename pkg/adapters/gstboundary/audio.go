package gstboundary

import (
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"
)

// audioRTPCaps matches the AES67 sender: 48 kHz stereo L24 on payload 97
// with 1 ms packets.
const audioRTPCaps = "application/x-rtp, " +
	"media=(string)audio, " +
	"clock-rate=(int)48000, " +
	"encoding-name=(string)L24, " +
	"channels=(int)2, " +
	"payload=(int)97, " +
	"ptime=(string)1"

// audioCandidate is one encoder option. Factories are constructed in
// order; the first element receives the bit rate.
type audioCandidate struct {
	name        string
	factories   []string
	bitrateProp string
	fallback    bool
}

// audioCandidates are tried in order. The TS mux accepts either stream
// type; MP2 needs the ugly plugin set.
var audioCandidates = []audioCandidate{
	{name: "avenc_aac", factories: []string{"avenc_aac", "aacparse"}, bitrateProp: "bit_rate"},
	{name: "twolamemp2enc", factories: []string{"twolamemp2enc"}, bitrateProp: "bitrate", fallback: true},
}

// buildAudioBranch attaches the RTP audio chain to the pipeline:
//
//	udpsrc → rtpjitterbuffer → rtpL24depay → audioconvert →
//	    audioresample → encoder [→ aacparse] → queue → mux
//
// It returns the selected encoder factory name and whether the MP2
// fallback was taken.
func (b *Boundary) buildAudioBranch(pipeline *gst.Pipeline, mux *gst.Element) (string, bool, error) {
	src, err := gst.NewElement("udpsrc")
	if err != nil {
		return "", false, fmt.Errorf("create udpsrc: %w", err)
	}
	src.SetProperty("address", "0.0.0.0")
	src.SetProperty("port", b.cfg.Audio.Port)
	src.SetProperty("auto-multicast", true)
	src.SetProperty("multicast-group", b.cfg.Audio.MulticastGroup)
	src.SetProperty("caps", gst.NewCapsFromString(audioRTPCaps))

	jbuf, err := gst.NewElement("rtpjitterbuffer")
	if err != nil {
		return "", false, fmt.Errorf("create rtpjitterbuffer: %w", err)
	}
	jbuf.SetProperty("latency", uint(b.cfg.Audio.JitterLatencyMs))
	jbuf.SetProperty("mode", 0) // time-based, no clock slaving

	depay, err := gst.NewElement("rtpL24depay")
	if err != nil {
		return "", false, fmt.Errorf("create rtpL24depay: %w", err)
	}

	conv, err := gst.NewElement("audioconvert")
	if err != nil {
		return "", false, fmt.Errorf("create audioconvert: %w", err)
	}

	resample, err := gst.NewElement("audioresample")
	if err != nil {
		return "", false, fmt.Errorf("create audioresample: %w", err)
	}

	aqueue, err := gst.NewElement("queue")
	if err != nil {
		return "", false, fmt.Errorf("create audio queue: %w", err)
	}

	if err := pipeline.AddMany(src, jbuf, depay, conv, resample, aqueue); err != nil {
		return "", false, fmt.Errorf("add audio elements: %w", err)
	}
	if err := gst.ElementLinkMany(src, jbuf, depay, conv, resample); err != nil {
		return "", false, fmt.Errorf("link audio branch: %w", err)
	}

	name, fallback, err := b.attachAudioEncoder(pipeline, resample, aqueue)
	if err != nil {
		return "", false, err
	}

	if err := aqueue.Link(mux); err != nil {
		return "", false, fmt.Errorf("link audio queue to mux: %w", err)
	}

	return name, fallback, nil
}

// attachAudioEncoder tries each candidate as an atomic unit: construct the
// elements, add them and link resample → encoder chain → queue. A failed
// attempt is removed from the bin, which also unlinks any pads that did
// connect, before the next candidate is tried.
func (b *Boundary) attachAudioEncoder(pipeline *gst.Pipeline, resample, aqueue *gst.Element) (string, bool, error) {
	for _, cand := range audioCandidates {
		elems := make([]*gst.Element, 0, len(cand.factories))
		for _, factory := range cand.factories {
			e, err := gst.NewElement(factory)
			if err != nil {
				elems = nil
				break
			}
			elems = append(elems, e)
		}
		if elems == nil {
			b.logger.Warn("Audio encoder %s unavailable", cand.name)
			continue
		}
		elems[0].SetProperty(cand.bitrateProp, b.cfg.Audio.BitRate)

		if err := pipeline.AddMany(elems...); err != nil {
			return "", false, fmt.Errorf("add audio encoder: %w", err)
		}

		chain := append([]*gst.Element{resample}, elems...)
		chain = append(chain, aqueue)
		if err := gst.ElementLinkMany(chain...); err != nil {
			for _, e := range elems {
				pipeline.Remove(e)
			}
			b.logger.Warn("Audio encoder %s unavailable", cand.name)
			continue
		}

		b.logger.Info("Using audio encoder %s", cand.name)
		return cand.name, cand.fallback, nil
	}

	return "", false, ErrNoAudioEncoder
}
