package ani

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/curkit/internal/buf"
	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// Decode reads an animated cursor from r.
//
// A missing "RIFF" or "ACON" marker fails immediately. Unknown chunks and
// LIST types are skipped. End of input while reading a chunk header ends the
// file without error; end of input inside a chunk body is a truncation
// error. When no seq chunk is present the sequence is 0..frames-1.
func Decode(r io.ReadSeeker) (*File, error) {
	var head [format.RIFFHeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, types.Truncated("ani header", err)
	}
	riff, err := format.ParseRIFFHeader(head[:])
	if err != nil {
		return nil, types.ErrNotRIFF
	}
	if riff.Form != format.ACONTag {
		return nil, types.ErrNotANI
	}

	d := &decoder{
		r: r,
		f: &File{Header: Header{DefaultRate: DefaultRate}},
	}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.finish(), nil
}

// maxSynthesizedSteps bounds the default sequence built from an untrusted
// anih frame count.
const maxSynthesizedSteps = 1 << 16

type decoder struct {
	r       io.ReadSeeker
	f       *File
	seqSeen bool
}

func (d *decoder) run() error {
	var hb [format.ChunkHeaderSize]byte
	for {
		if _, err := io.ReadFull(d.r, hb[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("ani: read chunk header: %w", err)
		}
		h, _ := format.ParseChunkHeader(hb[:])
		if err := d.chunk(h); err != nil {
			return err
		}
		if format.PadLen(h.Size) != 0 {
			d.skipPad()
		}
	}
}

func (d *decoder) chunk(h format.ChunkHeader) error {
	switch h.ID {
	case format.AnihTag:
		body, err := d.body(h)
		if err != nil {
			return err
		}
		// A short anih leaves the default header in place.
		if ah, err := format.ParseAnimHeader(body); err == nil {
			d.f.Header = Header(ah)
		}
	case format.SeqTag:
		body, err := d.body(h)
		if err != nil {
			return err
		}
		d.f.Sequence = append(d.f.Sequence, buf.U32List(body)...)
		d.seqSeen = true
	case format.RateTag:
		body, err := d.body(h)
		if err != nil {
			return err
		}
		d.f.Rates = append(d.f.Rates, buf.U32List(body)...)
	case format.ListTag:
		return d.list(h)
	default:
		return d.skip(int64(h.Size))
	}
	return nil
}

func (d *decoder) list(h format.ChunkHeader) error {
	if h.Size < format.ListTypeSize {
		return types.Format(fmt.Sprintf("LIST chunk of %d bytes has no type", h.Size), nil)
	}
	var lt [format.ListTypeSize]byte
	if _, err := io.ReadFull(d.r, lt[:]); err != nil {
		return types.Truncated("LIST type", err)
	}
	remaining := int64(h.Size) - format.ListTypeSize
	switch format.FourCC(lt) {
	case format.FramTag:
		return d.frames(remaining)
	case format.InfoTag:
		body, err := buf.ReadExact(d.r, remaining)
		if err != nil {
			return types.Truncated("LIST INFO", err)
		}
		d.f.Info = parseInfo(body)
		return nil
	default:
		return d.skip(remaining)
	}
}

// frames reads the icon sub-chunks of a LIST fram body. A sub-chunk header
// that cannot be read ends the list.
func (d *decoder) frames(remaining int64) error {
	var hb [format.ChunkHeaderSize]byte
	var consumed int64
	for consumed < remaining {
		if _, err := io.ReadFull(d.r, hb[:]); err != nil {
			break
		}
		consumed += format.ChunkHeaderSize
		h, _ := format.ParseChunkHeader(hb[:])
		if h.ID != format.IconTag {
			if err := d.skip(h.Span()); err != nil {
				return err
			}
			consumed += h.Span()
			continue
		}

		data, err := buf.ReadExact(d.r, int64(h.Size))
		if err != nil {
			return types.Truncated(fmt.Sprintf("icon %d", len(d.f.Frames)), err)
		}
		fr, err := ParseCursorData(data)
		if err != nil {
			return fmt.Errorf("ani: frame %d: %w", len(d.f.Frames), err)
		}
		d.f.Frames = append(d.f.Frames, fr)
		consumed += int64(h.Size)

		if format.PadLen(h.Size) != 0 {
			d.skipPad()
			consumed++
		}
	}
	return nil
}

func (d *decoder) body(h format.ChunkHeader) ([]byte, error) {
	b, err := buf.ReadExact(d.r, int64(h.Size))
	if err != nil {
		return nil, types.Truncated(fmt.Sprintf("%s chunk", h.ID), err)
	}
	return b, nil
}

func (d *decoder) skip(n int64) error {
	if _, err := d.r.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("ani: skip %d bytes: %w", n, err)
	}
	return nil
}

// skipPad consumes one pad byte. A missing pad at end of input is tolerated.
func (d *decoder) skipPad() {
	var pad [1]byte
	_, _ = io.ReadFull(d.r, pad[:])
}

// finish fills in the default sequence and per-frame durations.
func (d *decoder) finish() *File {
	f := d.f
	if !d.seqSeen {
		n := f.Header.Frames
		if n > maxSynthesizedSteps {
			n = uint32(len(f.Frames))
		}
		f.Sequence = identity(n)
	}
	if len(f.Rates) > 0 {
		assigned := make([]bool, len(f.Frames))
		for step, idx := range f.Sequence {
			if step >= len(f.Rates) || int(idx) >= len(f.Frames) || assigned[idx] {
				continue
			}
			f.Frames[idx].Duration = f.Rates[step]
			assigned[idx] = true
		}
	}
	return f
}
