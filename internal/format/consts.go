// Package format houses the low-level layout of the Windows cursor (CUR) and
// animated cursor (ANI) file formats. It knows field offsets, signatures and
// padding rules, and nothing about files or streams, so the public codecs can
// share one definition of every byte position.
package format

// Resource types stored in the directory header.
const (
	ResourceTypeIcon   = 1
	ResourceTypeCursor = 2
)

// Directory header (ICONDIR) layout, little-endian:
//
//	Offset  Size  Field
//	0x00    2     reserved, always 0
//	0x02    2     resource type (1 = icon, 2 = cursor)
//	0x04    2     number of directory entries
const (
	DirReservedOffset = 0x00
	DirTypeOffset     = 0x02
	DirCountOffset    = 0x04
	DirHeaderSize     = 6
)

// Directory entry layout, little-endian. Cursor resources store the hotspot
// where icon resources store planes and bit count.
//
//	Offset  Size  Field
//	0x00    1     width  (0 means 256)
//	0x01    1     height (0 means 256)
//	0x02    1     color count
//	0x03    1     reserved
//	0x04    2     hotspot x (icon: planes)
//	0x06    2     hotspot y (icon: bit count)
//	0x08    4     payload size in bytes
//	0x0C    4     payload offset from start of file
const (
	EntryWidthOffset      = 0x00
	EntryHeightOffset     = 0x01
	EntryColorCountOffset = 0x02
	EntryReservedOffset   = 0x03
	EntryHotspotXOffset   = 0x04
	EntryHotspotYOffset   = 0x06
	EntryPlanesOffset     = EntryHotspotXOffset
	EntryBitCountOffset   = EntryHotspotYOffset
	EntrySizeOffset       = 0x08
	EntryOffsetOffset     = 0x0C
	DirEntrySize          = 16
)

const (
	// MinResourceSize is the smallest blob that holds a directory header and
	// its first entry.
	MinResourceSize = DirHeaderSize + DirEntrySize

	// MaxDimension is the largest width or height a directory entry can carry.
	MaxDimension = 256

	// MaxEntries is the largest entry count the 16-bit count field holds.
	MaxEntries = 0xFFFF
)

// RIFF framing.
const (
	// ChunkHeaderSize is the tag plus the 32-bit body length.
	ChunkHeaderSize = 8

	// RIFFHeaderSize covers "RIFF", the declared size and the form type.
	RIFFHeaderSize = 12

	RIFFSizeOffset = 0x04
	RIFFFormOffset = 0x08

	// ListTypeSize is the sub-type tag that opens every LIST body.
	ListTypeSize = 4
)

// anih body layout. Every field is a 32-bit little-endian value.
//
//	Offset  Field
//	0x00    structure size (36)
//	0x04    frame count
//	0x08    step count
//	0x0C    width
//	0x10    height
//	0x14    bit count
//	0x18    planes
//	0x1C    default rate in jiffies
//	0x20    flags
const (
	AnihCbSizeOffset   = 0x00
	AnihFramesOffset   = 0x04
	AnihStepsOffset    = 0x08
	AnihWidthOffset    = 0x0C
	AnihHeightOffset   = 0x10
	AnihBitCountOffset = 0x14
	AnihPlanesOffset   = 0x18
	AnihRateOffset     = 0x1C
	AnihFlagsOffset    = 0x20
	AnihSize           = 36
)

// Animation header flag bits.
const (
	AnihFlagIcon     = 0x1 // frames are icon/cursor resources, not raw DIBs
	AnihFlagSequence = 0x2 // a seq chunk is present
)
