package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestAnimHeaderRoundTrip(t *testing.T) {
	in := AnimHeader{
		Frames:      3,
		Steps:       5,
		Width:       32,
		Height:      48,
		BitCount:    32,
		Planes:      1,
		DefaultRate: 6,
		Flags:       AnihFlagIcon | AnihFlagSequence,
	}
	b := make([]byte, AnihSize)
	PutAnimHeader(b, in)

	if got := binary.LittleEndian.Uint32(b); got != AnihSize {
		t.Fatalf("structure size = %d, want %d", got, AnihSize)
	}
	if got := binary.LittleEndian.Uint32(b[AnihRateOffset:]); got != 6 {
		t.Fatalf("rate field = %d, want 6", got)
	}

	out, err := ParseAnimHeader(b)
	if err != nil {
		t.Fatalf("ParseAnimHeader: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestParseAnimHeaderIgnoresExcess(t *testing.T) {
	b := make([]byte, AnihSize+8)
	PutAnimHeader(b, AnimHeader{Frames: 2, Steps: 2})
	binary.LittleEndian.PutUint32(b[AnihSize:], 0xdeadbeef)
	h, err := ParseAnimHeader(b)
	if err != nil {
		t.Fatalf("ParseAnimHeader: %v", err)
	}
	if h.Frames != 2 || h.Steps != 2 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestParseAnimHeaderShort(t *testing.T) {
	if _, err := ParseAnimHeader(make([]byte, AnihSize-1)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}
