package buf

import (
	"bytes"
	"errors"
	"io"
)

// ReadExact reads n bytes from r without trusting n for the initial
// allocation. A short read returns io.ErrUnexpectedEOF.
func ReadExact(r io.Reader, n int64) ([]byte, error) {
	var b bytes.Buffer
	copied, err := io.CopyN(&b, r, n)
	if err != nil {
		if errors.Is(err, io.EOF) && copied < n {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	return b.Bytes(), nil
}
