package cur

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// Encode writes f to w: header, directory, then every payload in frame
// order, packed with no gaps. w needs no seeking.
func (f *File) Encode(w io.Writer) error {
	if len(f.Frames) == 0 {
		return types.ErrEmptyInput
	}
	if len(f.Frames) > format.MaxEntries {
		return types.Range(fmt.Sprintf("%d frames exceed the directory limit of %d", len(f.Frames), format.MaxEntries))
	}

	dirSize := format.DirHeaderSize + len(f.Frames)*format.DirEntrySize
	dir := make([]byte, dirSize)
	format.PutDirHeader(dir, format.ResourceTypeCursor, uint16(len(f.Frames)))

	offset := uint64(dirSize)
	for i, fr := range f.Frames {
		if !format.ValidDimension(fr.Width) || !format.ValidDimension(fr.Height) {
			return types.Range(fmt.Sprintf("frame %d: size %dx%d outside 1..256", i, fr.Width, fr.Height))
		}
		size := uint64(len(fr.Data))
		if offset+size > math.MaxUint32 {
			return types.Range(fmt.Sprintf("frame %d: payload ends past 4 GiB", i))
		}
		format.PutDirEntry(dir[format.DirHeaderSize+i*format.DirEntrySize:], format.DirEntry{
			Width:    fr.Width,
			Height:   fr.Height,
			HotspotX: fr.HotspotX,
			HotspotY: fr.HotspotY,
			Size:     uint32(size),
			Offset:   uint32(offset),
		})
		offset += size
	}

	if _, err := w.Write(dir); err != nil {
		return fmt.Errorf("cur: write directory: %w", err)
	}
	for i, fr := range f.Frames {
		if _, err := w.Write(fr.Data); err != nil {
			return fmt.Errorf("cur: write payload %d: %w", i, err)
		}
	}
	return nil
}
