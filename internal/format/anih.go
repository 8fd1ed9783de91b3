package format

import "fmt"

// AnimHeader mirrors the anih chunk body. The structure-size field is not
// kept; it is always written as AnihSize.
type AnimHeader struct {
	Frames      uint32
	Steps       uint32
	Width       uint32
	Height      uint32
	BitCount    uint32
	Planes      uint32
	DefaultRate uint32
	Flags       uint32
}

// ParseAnimHeader decodes the fixed 36-byte layout. Bytes past AnihSize are
// ignored.
func ParseAnimHeader(b []byte) (AnimHeader, error) {
	if len(b) < AnihSize {
		return AnimHeader{}, fmt.Errorf("anih: %w", ErrTruncated)
	}
	return AnimHeader{
		Frames:      ReadU32(b, AnihFramesOffset),
		Steps:       ReadU32(b, AnihStepsOffset),
		Width:       ReadU32(b, AnihWidthOffset),
		Height:      ReadU32(b, AnihHeightOffset),
		BitCount:    ReadU32(b, AnihBitCountOffset),
		Planes:      ReadU32(b, AnihPlanesOffset),
		DefaultRate: ReadU32(b, AnihRateOffset),
		Flags:       ReadU32(b, AnihFlagsOffset),
	}, nil
}

// PutAnimHeader writes h into the first AnihSize bytes of b.
func PutAnimHeader(b []byte, h AnimHeader) {
	PutU32(b, AnihCbSizeOffset, AnihSize)
	PutU32(b, AnihFramesOffset, h.Frames)
	PutU32(b, AnihStepsOffset, h.Steps)
	PutU32(b, AnihWidthOffset, h.Width)
	PutU32(b, AnihHeightOffset, h.Height)
	PutU32(b, AnihBitCountOffset, h.BitCount)
	PutU32(b, AnihPlanesOffset, h.Planes)
	PutU32(b, AnihRateOffset, h.DefaultRate)
	PutU32(b, AnihFlagsOffset, h.Flags)
}
