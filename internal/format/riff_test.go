package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestChunkHeaderRoundTrip(t *testing.T) {
	b := make([]byte, ChunkHeaderSize)
	PutChunkHeader(b, SeqTag, 12)
	if want := []byte{'s', 'e', 'q', ' ', 12, 0, 0, 0}; !bytes.Equal(b, want) {
		t.Fatalf("chunk header = % x, want % x", b, want)
	}
	h, err := ParseChunkHeader(b)
	if err != nil {
		t.Fatalf("ParseChunkHeader: %v", err)
	}
	if h.ID != SeqTag || h.Size != 12 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if h.ID.String() != "seq " {
		t.Fatalf("String() = %q", h.ID.String())
	}
	if _, err := ParseChunkHeader(b[:7]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestChunkSpan(t *testing.T) {
	if got := (ChunkHeader{Size: 7}).Span(); got != 8 {
		t.Fatalf("Span(7) = %d, want 8", got)
	}
	if got := (ChunkHeader{Size: 8}).Span(); got != 8 {
		t.Fatalf("Span(8) = %d, want 8", got)
	}
}

func TestParseRIFFHeader(t *testing.T) {
	b := []byte{'R', 'I', 'F', 'F', 4, 0, 0, 0, 'A', 'C', 'O', 'N'}
	h, err := ParseRIFFHeader(b)
	if err != nil {
		t.Fatalf("ParseRIFFHeader: %v", err)
	}
	if h.Size != 4 || h.Form != ACONTag {
		t.Fatalf("unexpected header: %+v", h)
	}

	copy(b, "RIFX")
	if _, err := ParseRIFFHeader(b); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}
	if _, err := ParseRIFFHeader(b[:11]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestPadding(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 0, 99: 1, 100: 0} {
		if got := PadLen(n); got != want {
			t.Fatalf("PadLen(%d) = %d, want %d", n, got, want)
		}
		if got := AlignEven(n); got != n+want {
			t.Fatalf("AlignEven(%d) = %d, want %d", n, got, n+want)
		}
	}
	if got := AlignEven(uint32(5)); got != 6 {
		t.Fatalf("AlignEven(uint32 5) = %d", got)
	}
}
