package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/curkit/internal/buf"
)

// FourCC is a four-byte RIFF tag such as "RIFF" or "seq ".
type FourCC [4]byte

func (f FourCC) String() string { return string(f[:]) }

// Tags used by animated cursors.
var (
	RIFFTag = FourCC{'R', 'I', 'F', 'F'}
	ACONTag = FourCC{'A', 'C', 'O', 'N'}
	AnihTag = FourCC{'a', 'n', 'i', 'h'}
	SeqTag  = FourCC{'s', 'e', 'q', ' '}
	RateTag = FourCC{'r', 'a', 't', 'e'}
	ListTag = FourCC{'L', 'I', 'S', 'T'}
	FramTag = FourCC{'f', 'r', 'a', 'm'}
	IconTag = FourCC{'i', 'c', 'o', 'n'}
	InfoTag = FourCC{'I', 'N', 'F', 'O'}
	INAMTag = FourCC{'I', 'N', 'A', 'M'}
	IARTTag = FourCC{'I', 'A', 'R', 'T'}
)

// ChunkHeader is the tag and declared body length preceding every chunk.
// Size never includes the pad byte.
type ChunkHeader struct {
	ID   FourCC
	Size uint32
}

// Span returns the bytes the chunk body occupies in the stream, pad included.
func (h ChunkHeader) Span() int64 {
	return AlignEven(int64(h.Size))
}

// ParseChunkHeader decodes the 8-byte chunk header at the start of b.
func ParseChunkHeader(b []byte) (ChunkHeader, error) {
	if len(b) < ChunkHeaderSize {
		return ChunkHeader{}, fmt.Errorf("chunk header: %w", ErrTruncated)
	}
	var h ChunkHeader
	copy(h.ID[:], b[:4])
	h.Size = buf.U32LE(b[4:])
	return h, nil
}

// PutChunkHeader writes id and size into the first 8 bytes of b.
func PutChunkHeader(b []byte, id FourCC, size uint32) {
	copy(b[:4], id[:])
	PutU32(b, 4, size)
}

// RIFFHeader is the 12-byte file header of a RIFF container.
type RIFFHeader struct {
	Size uint32
	Form FourCC
}

// ParseRIFFHeader validates the "RIFF" signature and returns the declared
// size and form type. The form type is left for the caller to check.
func ParseRIFFHeader(b []byte) (RIFFHeader, error) {
	if len(b) < RIFFHeaderSize {
		return RIFFHeader{}, fmt.Errorf("riff header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:4], RIFFTag[:]) {
		return RIFFHeader{}, fmt.Errorf("riff header: %w", ErrSignatureMismatch)
	}
	var h RIFFHeader
	h.Size = buf.U32LE(b[RIFFSizeOffset:])
	copy(h.Form[:], b[RIFFFormOffset:RIFFFormOffset+4])
	return h, nil
}
