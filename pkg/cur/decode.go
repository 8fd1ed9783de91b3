package cur

import (
	"fmt"
	"io"

	"github.com/joshuapare/curkit/internal/buf"
	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// Decode reads a cursor file from r. All directory entries are read first;
// each payload is then read with an absolute seek to its recorded offset, so
// no ordering or contiguity between payloads is assumed.
func Decode(r io.ReadSeeker) (*File, error) {
	var head [format.DirHeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, types.Truncated("cur header", err)
	}
	hdr, err := format.ParseDirHeader(head[:])
	if err != nil {
		return nil, types.Format("cur header", err)
	}
	if hdr.Type != format.ResourceTypeCursor {
		return nil, types.ErrNotCursor
	}
	if hdr.Count == 0 {
		return nil, types.ErrNoFrames
	}

	table := make([]byte, int(hdr.Count)*format.DirEntrySize)
	if _, err := io.ReadFull(r, table); err != nil {
		return nil, types.Truncated("cur directory", err)
	}
	entries, err := format.ParseDirectory(table, int(hdr.Count))
	if err != nil {
		return nil, types.Format("cur directory", err)
	}

	frames := make([]Frame, len(entries))
	for i, e := range entries {
		if _, err := r.Seek(int64(e.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("cur: seek payload %d: %w", i, err)
		}
		data, err := buf.ReadExact(r, int64(e.Size))
		if err != nil {
			return nil, types.Truncated(fmt.Sprintf("cur payload %d", i), err)
		}
		frames[i] = Frame{
			Width:    e.Width,
			Height:   e.Height,
			HotspotX: e.HotspotX,
			HotspotY: e.HotspotY,
			Data:     data,
		}
	}
	return &File{Frames: frames}, nil
}
