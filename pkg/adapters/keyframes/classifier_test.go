package keyframes

import (
	"bytes"
	"testing"
)

func TestSizeClassifier(t *testing.T) {
	c := NewSize(1000)

	if c.Keyframe(make([]byte, 999)) {
		t.Error("expected frame below threshold to not be a keyframe")
	}
	if !c.Keyframe(make([]byte, 1000)) {
		t.Error("expected frame at threshold to be a keyframe")
	}
	if !c.Keyframe(make([]byte, 100000)) {
		t.Error("expected large frame to be a keyframe")
	}
}

func TestSizeClassifier_Default(t *testing.T) {
	c := NewSize(0)

	if c.Keyframe(make([]byte, DefaultSizeThreshold-1)) {
		t.Error("expected frame below default threshold to not be a keyframe")
	}
	if !c.Keyframe(make([]byte, DefaultSizeThreshold)) {
		t.Error("expected frame at default threshold to be a keyframe")
	}
}

// hevcNALU builds a NAL unit with the given type and payload.
func hevcNALU(naluType byte, payload ...byte) []byte {
	header := []byte{naluType << 1, 0x01}
	return append(header, payload...)
}

func TestHEVCClassifier_IDR(t *testing.T) {
	c := NewHEVC()

	// Typical IDR access unit: VPS, SPS, PPS with four byte start codes,
	// then the IDR slice behind a three byte start code.
	var stream bytes.Buffer
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write(hevcNALU(32, 0xAA)) // VPS
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write(hevcNALU(33, 0xBB)) // SPS
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write(hevcNALU(34, 0xCC)) // PPS
	stream.Write([]byte{0, 0, 1})
	stream.Write(hevcNALU(19, 0xDD, 0xEE)) // IDR_W_RADL

	if !c.Keyframe(stream.Bytes()) {
		t.Error("expected IDR access unit to be a keyframe")
	}
}

func TestHEVCClassifier_CRA(t *testing.T) {
	c := NewHEVC()

	var stream bytes.Buffer
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write(hevcNALU(21, 0xDD)) // CRA

	if !c.Keyframe(stream.Bytes()) {
		t.Error("expected CRA access unit to be a keyframe")
	}
}

func TestHEVCClassifier_TrailingPicture(t *testing.T) {
	c := NewHEVC()

	var stream bytes.Buffer
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write(hevcNALU(1, 0xDD)) // TRAIL_R
	stream.Write([]byte{0, 0, 1})
	stream.Write(hevcNALU(39, 0x11)) // prefix SEI

	if c.Keyframe(stream.Bytes()) {
		t.Error("expected trailing picture to not be a keyframe")
	}
}

func TestHEVCClassifier_Undecidable(t *testing.T) {
	c := NewHEVC()

	if c.Keyframe(nil) {
		t.Error("expected empty payload to not be a keyframe")
	}
	// No start code anywhere: not a parseable byte stream.
	if c.Keyframe([]byte{0x26, 0x01, 0xDD, 0xEE, 0xFF}) {
		t.Error("expected payload without start codes to not be a keyframe")
	}
}

func TestSplitAnnexB(t *testing.T) {
	var stream bytes.Buffer
	stream.Write([]byte{0, 0, 0, 1})
	stream.Write([]byte{0x40, 0x01, 0xAA})
	stream.Write([]byte{0, 0, 1})
	stream.Write([]byte{0x26, 0x01, 0xBB})

	nalus := splitAnnexB(stream.Bytes())
	if len(nalus) != 2 {
		t.Fatalf("expected 2 NAL units, got %d", len(nalus))
	}
	if !bytes.Equal(nalus[0], []byte{0x40, 0x01, 0xAA}) {
		t.Errorf("unexpected first NAL unit: %v", nalus[0])
	}
	if !bytes.Equal(nalus[1], []byte{0x26, 0x01, 0xBB}) {
		t.Errorf("unexpected second NAL unit: %v", nalus[1])
	}
}
