package cur

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/curkit/internal/mmfile"
	"github.com/joshuapare/curkit/internal/writer"
)

// Frame is one image of a cursor file. Data is the opaque image payload.
type Frame struct {
	Width    uint32
	Height   uint32
	HotspotX uint16
	HotspotY uint16
	Data     []byte
}

// File is a cursor file. Directory offsets are derived from Frames on
// encode and are not kept after decode.
type File struct {
	Frames []Frame
}

// New returns a cursor file holding frames in order.
func New(frames ...Frame) *File {
	return &File{Frames: frames}
}

// Single returns a cursor file holding one frame.
func Single(frame Frame) *File {
	return &File{Frames: []Frame{frame}}
}

// MarshalBinary encodes f into a new byte slice.
func (f *File) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := f.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// WriteFile encodes f and writes it to path atomically.
func (f *File) WriteFile(path string) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("cur: %w", err)
	}
	return nil
}

// Parse decodes a cursor file held in memory.
func Parse(b []byte) (*File, error) {
	return Decode(bytes.NewReader(b))
}

// Open decodes the cursor file at path. Frame payloads are copied out of the
// mapping, so the returned File stays valid after Open returns.
func Open(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("cur: open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()
	return Parse(data)
}

func (f *File) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cursor with %d frame(s):\n", len(f.Frames))
	for i, fr := range f.Frames {
		fmt.Fprintf(&sb, "  Frame %d:\n    Size:    %dx%d\n    Hotspot: (%d, %d)\n",
			i, fr.Width, fr.Height, fr.HotspotX, fr.HotspotY)
	}
	return sb.String()
}
