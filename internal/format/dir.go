package format

import (
	"fmt"

	"github.com/joshuapare/curkit/internal/buf"
)

// DirHeader is the 6-byte header that opens every CUR/ICO resource.
type DirHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// ParseDirHeader extracts the directory header from b. It does not check the
// resource type; callers decide which types they accept.
func ParseDirHeader(b []byte) (DirHeader, error) {
	if len(b) < DirHeaderSize {
		return DirHeader{}, fmt.Errorf("directory header: %w", ErrTruncated)
	}
	return DirHeader{
		Reserved: buf.U16LE(b[DirReservedOffset:]),
		Type:     buf.U16LE(b[DirTypeOffset:]),
		Count:    buf.U16LE(b[DirCountOffset:]),
	}, nil
}

// PutDirHeader writes a directory header with a zero reserved field.
func PutDirHeader(b []byte, typ, count uint16) {
	PutU16(b, DirReservedOffset, 0)
	PutU16(b, DirTypeOffset, typ)
	PutU16(b, DirCountOffset, count)
}

// DirEntry is one decoded directory entry. Width and Height hold the logical
// 1..256 value, not the on-disk byte.
type DirEntry struct {
	Width      uint32
	Height     uint32
	ColorCount uint8
	HotspotX   uint16
	HotspotY   uint16
	Size       uint32
	Offset     uint32
}

// EncodeDimension maps a logical width or height to its directory byte.
// 256 does not fit in a byte and is stored as 0.
func EncodeDimension(v uint32) byte {
	if v == MaxDimension {
		return 0
	}
	return byte(v)
}

// DecodeDimension maps a directory byte back to its logical value.
func DecodeDimension(b byte) uint32 {
	if b == 0 {
		return MaxDimension
	}
	return uint32(b)
}

// ValidDimension reports whether v can be stored in a directory entry.
func ValidDimension(v uint32) bool {
	return v >= 1 && v <= MaxDimension
}

// ParseDirEntry decodes the 16-byte entry at the start of b.
func ParseDirEntry(b []byte) (DirEntry, error) {
	if len(b) < DirEntrySize {
		return DirEntry{}, fmt.Errorf("directory entry: %w", ErrTruncated)
	}
	return DirEntry{
		Width:      DecodeDimension(b[EntryWidthOffset]),
		Height:     DecodeDimension(b[EntryHeightOffset]),
		ColorCount: b[EntryColorCountOffset],
		HotspotX:   buf.U16LE(b[EntryHotspotXOffset:]),
		HotspotY:   buf.U16LE(b[EntryHotspotYOffset:]),
		Size:       buf.U32LE(b[EntrySizeOffset:]),
		Offset:     buf.U32LE(b[EntryOffsetOffset:]),
	}, nil
}

// PutDirEntry encodes e into the first DirEntrySize bytes of b. The color
// count and reserved bytes are always written as zero.
func PutDirEntry(b []byte, e DirEntry) {
	b[EntryWidthOffset] = EncodeDimension(e.Width)
	b[EntryHeightOffset] = EncodeDimension(e.Height)
	b[EntryColorCountOffset] = 0
	b[EntryReservedOffset] = 0
	PutU16(b, EntryHotspotXOffset, e.HotspotX)
	PutU16(b, EntryHotspotYOffset, e.HotspotY)
	PutU32(b, EntrySizeOffset, e.Size)
	PutU32(b, EntryOffsetOffset, e.Offset)
}

// ParseDirectory decodes count consecutive entries starting at the beginning
// of b. Entries are returned in table order; offsets are not checked against
// each other.
func ParseDirectory(b []byte, count int) ([]DirEntry, error) {
	if _, err := buf.CheckListBounds(len(b), 0, count, DirEntrySize); err != nil {
		return nil, fmt.Errorf("directory: %w: %w", ErrTruncated, err)
	}
	entries := make([]DirEntry, count)
	for i := range entries {
		e, err := ParseDirEntry(b[i*DirEntrySize:])
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}
