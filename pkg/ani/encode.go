package ani

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// Encode writes f to ws in a single pass and then patches the LIST and RIFF
// sizes. The LIST fram size excludes the "fram" type; the RIFF size covers
// the form type and every chunk after it. The seq chunk is written only when the sequence is not the identity
// mapping, the rate chunk only when Rates is non-empty, and LIST INFO only
// when Info is set.
func (f *File) Encode(ws io.WriteSeeker) error {
	if len(f.Frames) == 0 {
		return types.ErrEmptyInput
	}
	hdr, err := f.animHeader()
	if err != nil {
		return err
	}

	w := &riffWriter{ws: ws}
	riff := w.begin(format.RIFFTag, format.ACONTag)

	var anih [format.AnihSize]byte
	format.PutAnimHeader(anih[:], hdr)
	w.chunk(format.AnihTag, anih[:])

	if !isIdentity(f.Sequence, hdr.Frames) {
		w.chunk(format.SeqTag, format.AppendU32List(nil, f.Sequence))
	}
	if len(f.Rates) > 0 {
		w.chunk(format.RateTag, format.AppendU32List(nil, f.Rates))
	}
	if !f.Info.IsZero() {
		info := w.begin(format.ListTag, format.InfoTag)
		for _, item := range f.Info.items() {
			w.chunk(item.id, item.value)
		}
		w.end(info)
	}

	fram := w.begin(format.ListTag, format.FramTag)
	for _, fr := range f.Frames {
		w.chunk(format.IconTag, fr.Data)
	}
	w.endFrames(fram)
	w.end(riff)
	return w.err
}

// animHeader validates the timeline against the frame list and returns the
// anih fields to write.
func (f *File) animHeader() (format.AnimHeader, error) {
	if uint64(len(f.Frames)) > math.MaxUint32 {
		return format.AnimHeader{}, types.Range("too many frames")
	}
	frames := uint32(len(f.Frames))
	steps := uint32(f.StepCount())
	for step, idx := range f.Sequence {
		if idx >= frames {
			return format.AnimHeader{}, types.Range(fmt.Sprintf("step %d references frame %d of %d", step, idx, frames))
		}
	}
	if len(f.Rates) > 0 && uint32(len(f.Rates)) != steps {
		return format.AnimHeader{}, types.Range(fmt.Sprintf("%d rates for %d steps", len(f.Rates), steps))
	}
	return format.AnimHeader{
		Frames:      frames,
		Steps:       steps,
		Width:       f.Header.Width,
		Height:      f.Header.Height,
		BitCount:    f.Header.BitCount,
		Planes:      f.Header.Planes,
		DefaultRate: f.Header.DefaultRate,
		Flags:       f.Header.Flags,
	}, nil
}
