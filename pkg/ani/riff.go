package ani

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

var padByte = []byte{0}

// riffWriter emits RIFF chunks to a seekable sink. The first error sticks
// and every later call becomes a no-op.
type riffWriter struct {
	ws  io.WriteSeeker
	err error
}

func (w *riffWriter) write(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.ws.Write(p); err != nil {
		w.err = fmt.Errorf("ani: write: %w", err)
	}
}

func (w *riffWriter) pos() int64 {
	if w.err != nil {
		return 0
	}
	p, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		w.err = fmt.Errorf("ani: seek: %w", err)
	}
	return p
}

func (w *riffWriter) seek(off int64) {
	if w.err != nil {
		return
	}
	if _, err := w.ws.Seek(off, io.SeekStart); err != nil {
		w.err = fmt.Errorf("ani: seek: %w", err)
	}
}

// chunk writes a complete chunk whose body is known up front.
func (w *riffWriter) chunk(id format.FourCC, body []byte) {
	if uint64(len(body)) > math.MaxUint32 {
		w.fail(types.Range(fmt.Sprintf("%s chunk body of %d bytes exceeds 4 GiB", id, len(body))))
		return
	}
	var hdr [format.ChunkHeaderSize]byte
	format.PutChunkHeader(hdr[:], id, uint32(len(body)))
	w.write(hdr[:])
	w.write(body)
	if format.PadLen(len(body)) != 0 {
		w.write(padByte)
	}
}

// begin opens a container chunk (RIFF or LIST) with a placeholder size and
// returns the offset of its header for end.
func (w *riffWriter) begin(id, form format.FourCC) int64 {
	start := w.pos()
	var hdr [format.ChunkHeaderSize + 4]byte
	format.PutChunkHeader(hdr[:], id, 0)
	copy(hdr[format.ChunkHeaderSize:], form[:])
	w.write(hdr[:])
	return start
}

// end pads the container opened at start, then seeks back and patches its
// size with the body length (form type included, pad excluded).
func (w *riffWriter) end(start int64) {
	w.close(start, format.ChunkHeaderSize)
}

// endFrames closes a LIST fram. Its size counts only the bytes after the
// "fram" type, as Windows writers emit it.
func (w *riffWriter) endFrames(start int64) {
	w.close(start, format.ChunkHeaderSize+format.ListTypeSize)
}

func (w *riffWriter) close(start, headerLen int64) {
	stop := w.pos()
	if w.err != nil {
		return
	}
	size := stop - start - headerLen
	if size > math.MaxUint32 {
		w.fail(types.Range(fmt.Sprintf("container of %d bytes exceeds 4 GiB", size)))
		return
	}
	if format.PadLen(size) != 0 {
		w.write(padByte)
	}
	tail := w.pos()

	var field [4]byte
	format.PutU32(field[:], 0, uint32(size))
	w.seek(start + 4)
	w.write(field[:])
	w.seek(tail)
}

func (w *riffWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
