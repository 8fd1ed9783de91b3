package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestDimensionConvention(t *testing.T) {
	cases := []struct {
		logical uint32
		wire    byte
	}{
		{1, 1},
		{32, 32},
		{255, 255},
		{256, 0},
	}
	for _, c := range cases {
		if got := EncodeDimension(c.logical); got != c.wire {
			t.Fatalf("EncodeDimension(%d) = %d, want %d", c.logical, got, c.wire)
		}
		if got := DecodeDimension(c.wire); got != c.logical {
			t.Fatalf("DecodeDimension(%d) = %d, want %d", c.wire, got, c.logical)
		}
	}
	if ValidDimension(0) || ValidDimension(257) {
		t.Fatalf("0 and 257 must be rejected")
	}
	if !ValidDimension(1) || !ValidDimension(256) {
		t.Fatalf("1 and 256 must be accepted")
	}
}

func TestDirHeaderRoundTrip(t *testing.T) {
	b := make([]byte, DirHeaderSize)
	PutDirHeader(b, ResourceTypeCursor, 2)
	if want := []byte{0, 0, 2, 0, 2, 0}; !bytes.Equal(b, want) {
		t.Fatalf("header bytes = % x, want % x", b, want)
	}
	h, err := ParseDirHeader(b)
	if err != nil {
		t.Fatalf("ParseDirHeader: %v", err)
	}
	if h.Type != ResourceTypeCursor || h.Count != 2 || h.Reserved != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if _, err := ParseDirHeader(b[:5]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}

func TestPutDirEntryLayout(t *testing.T) {
	b := make([]byte, DirEntrySize)
	PutDirEntry(b, DirEntry{Width: 32, Height: 32, Size: 100, Offset: 0x26})
	want := []byte{0x20, 0x20, 0, 0, 0, 0, 0, 0, 0x64, 0, 0, 0, 0x26, 0, 0, 0}
	if !bytes.Equal(b, want) {
		t.Fatalf("entry bytes = % x, want % x", b, want)
	}

	PutDirEntry(b, DirEntry{Width: 256, Height: 256, HotspotX: 128, HotspotY: 128, Size: 50, Offset: 0x8A})
	want = []byte{0, 0, 0, 0, 0x80, 0, 0x80, 0, 0x32, 0, 0, 0, 0x8A, 0, 0, 0}
	if !bytes.Equal(b, want) {
		t.Fatalf("entry bytes = % x, want % x", b, want)
	}

	e, err := ParseDirEntry(b)
	if err != nil {
		t.Fatalf("ParseDirEntry: %v", err)
	}
	if e.Width != 256 || e.Height != 256 || e.HotspotX != 128 || e.HotspotY != 128 || e.Size != 50 || e.Offset != 0x8A {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestParseDirectory(t *testing.T) {
	b := make([]byte, 2*DirEntrySize)
	PutDirEntry(b, DirEntry{Width: 16, Height: 16, Size: 10, Offset: 100})
	PutDirEntry(b[DirEntrySize:], DirEntry{Width: 48, Height: 48, Size: 20, Offset: 38})

	entries, err := ParseDirectory(b, 2)
	if err != nil {
		t.Fatalf("ParseDirectory: %v", err)
	}
	if len(entries) != 2 || entries[0].Offset != 100 || entries[1].Offset != 38 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if _, err := ParseDirectory(b, 3); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
}
