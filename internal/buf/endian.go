// Package buf contains bounds-checked helpers for reading little-endian
// fields out of cursor and RIFF byte slices.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U32List decodes consecutive little-endian uint32 values from b.
// Trailing bytes that do not form a whole value are ignored.
func U32List(b []byte) []uint32 {
	out := make([]uint32, 0, len(b)/4)
	for len(b) >= 4 {
		out = append(out, binary.LittleEndian.Uint32(b))
		b = b[4:]
	}
	return out
}
