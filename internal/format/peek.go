package format

import (
	"fmt"

	"github.com/joshuapare/curkit/internal/buf"
)

// ResourceGeometry is the size and hotspot of the first image in an embedded
// cursor resource.
type ResourceGeometry struct {
	Width    uint32
	Height   uint32
	HotspotX uint16
	HotspotY uint16
}

// PeekResource reads the directory header and first entry of an embedded
// resource without touching its payload. The resource type is not checked:
// for an icon-typed blob the hotspot fields hold planes and bit count.
func PeekResource(b []byte) (ResourceGeometry, error) {
	if !buf.Has(b, 0, MinResourceSize) {
		return ResourceGeometry{}, fmt.Errorf("resource peek: %w", ErrTruncated)
	}
	entry := b[DirHeaderSize:]
	return ResourceGeometry{
		Width:    DecodeDimension(entry[EntryWidthOffset]),
		Height:   DecodeDimension(entry[EntryHeightOffset]),
		HotspotX: ReadU16(entry, EntryHotspotXOffset),
		HotspotY: ReadU16(entry, EntryHotspotYOffset),
	}, nil
}
