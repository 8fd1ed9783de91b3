package writer

import (
	"errors"
	"io"
)

// MemWriter is an in-memory io.WriteSeeker. Writes past the current end
// grow the buffer; seeking beyond the end and writing zero-fills the gap.
type MemWriter struct {
	Buf []byte
	pos int64
}

// Write writes p at the current position.
func (w *MemWriter) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.Buf)) {
		if end > int64(cap(w.Buf)) {
			grown := make([]byte, len(w.Buf), max(end, 2*int64(cap(w.Buf))))
			copy(grown, w.Buf)
			w.Buf = grown
		}
		w.Buf = w.Buf[:end]
	}
	copy(w.Buf[w.pos:], p)
	w.pos = end
	return len(p), nil
}

// Seek sets the position for the next Write.
func (w *MemWriter) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = w.pos + offset
	case io.SeekEnd:
		abs = int64(len(w.Buf)) + offset
	default:
		return 0, errors.New("writer: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("writer: negative position")
	}
	w.pos = abs
	return abs, nil
}

// Bytes returns the bytes written so far.
func (w *MemWriter) Bytes() []byte {
	return w.Buf
}

// Reset discards the buffer contents and rewinds to the start.
func (w *MemWriter) Reset() {
	clear(w.Buf[:cap(w.Buf)])
	w.Buf = w.Buf[:0]
	w.pos = 0
}
