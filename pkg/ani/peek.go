package ani

import (
	"bytes"

	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// ParseCursorData recovers a frame's size and hotspot from its embedded
// resource by reading only the directory header and first entry. The
// resource type is not checked: for an icon resource (type 1) the reported
// hotspot is really the planes and bit-count fields. The returned frame owns
// a copy of data and has no Duration.
func ParseCursorData(data []byte) (Frame, error) {
	g, err := format.PeekResource(data)
	if err != nil {
		return Frame{}, types.Format(types.ErrInvalidCursorData.Msg, err)
	}
	return Frame{
		Width:    g.Width,
		Height:   g.Height,
		HotspotX: g.HotspotX,
		HotspotY: g.HotspotY,
		Data:     bytes.Clone(data),
	}, nil
}
