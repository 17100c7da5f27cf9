package keyframes

import (
	"github.com/Eyevinn/mp4ff/hevc"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// naluIRAPMax is the top of the IRAP picture range: BLA, IDR, CRA plus the
// two reserved IRAP types.
const naluIRAPMax = hevc.NaluType(23)

// HEVCClassifier inspects an Annex B byte stream and reports a keyframe
// when the access unit carries an IRAP picture. A payload without any
// parseable NAL unit is not a keyframe.
type HEVCClassifier struct{}

// NewHEVC creates a bitstream-inspecting classifier for H.265 frames.
func NewHEVC() *HEVCClassifier {
	return &HEVCClassifier{}
}

// Keyframe reports whether data contains an IRAP NAL unit.
func (c *HEVCClassifier) Keyframe(data []byte) bool {
	for _, nalu := range splitAnnexB(data) {
		if len(nalu) == 0 {
			continue
		}
		t := hevc.GetNaluType(nalu[0])
		if t >= hevc.NALU_BLA_W_LP && t <= naluIRAPMax {
			return true
		}
	}
	return false
}

// splitAnnexB splits an Annex B byte stream into NAL units. Both three and
// four byte start codes are accepted. Bytes before the first start code are
// not a NAL unit and are dropped.
func splitAnnexB(data []byte) [][]byte {
	var nalus [][]byte
	start := -1
	i := 0

	for i < len(data) {
		if i+2 < len(data) && data[i] == 0 && data[i+1] == 0 {
			startCodeLen := 0
			if data[i+2] == 1 {
				startCodeLen = 3
			} else if i+3 < len(data) && data[i+2] == 0 && data[i+3] == 1 {
				startCodeLen = 4
			}

			if startCodeLen > 0 {
				if start >= 0 && i > start {
					nalus = append(nalus, data[start:i])
				}
				i += startCodeLen
				start = i
				continue
			}
		}
		i++
	}

	if start >= 0 && start < len(data) {
		nalus = append(nalus, data[start:])
	}

	return nalus
}

var _ ports.KeyframeClassifier = (*HEVCClassifier)(nil)
