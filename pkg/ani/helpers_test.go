package ani

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/curkit/pkg/cur"
)

// resource builds a single-image cursor resource whose image payload is n
// filler bytes.
func resource(t *testing.T, w, h uint32, hx, hy uint16, n int) []byte {
	t.Helper()
	body := bytes.Repeat([]byte{0x5A}, n)
	data, err := cur.Single(cur.Frame{Width: w, Height: h, HotspotX: hx, HotspotY: hy, Data: body}).MarshalBinary()
	require.NoError(t, err)
	return data
}

// frame returns a Frame whose fields agree with its embedded resource.
func frame(t *testing.T, w, h uint32, hx, hy uint16, n int, duration uint32) Frame {
	t.Helper()
	return Frame{
		Width:    w,
		Height:   h,
		HotspotX: hx,
		HotspotY: hy,
		Data:     resource(t, w, h, hx, hy, n),
		Duration: duration,
	}
}

// rawChunk renders a chunk with its pad byte.
func rawChunk(id string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString(id)
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(body)))
	b.Write(body)
	if len(body)%2 == 1 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

// rawRIFF wraps chunks in a RIFF ACON envelope.
func rawRIFF(chunks ...[]byte) []byte {
	body := bytes.Join(chunks, nil)
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(4+len(body)))
	b.WriteString("ACON")
	b.Write(body)
	return b.Bytes()
}

func rawList(listType string, subChunks ...[]byte) []byte {
	return rawChunk("LIST", append([]byte(listType), bytes.Join(subChunks, nil)...))
}

func rawAnih(frames, steps uint32) []byte {
	body := make([]byte, 36)
	vals := []uint32{36, frames, steps, 32, 32, 32, 1, DefaultRate, FlagIcon}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(body[i*4:], v)
	}
	return rawChunk("anih", body)
}

// findChunk returns the offset of the first top-level chunk with tag id,
// or -1.
func findChunk(data []byte, id string) int {
	off := 12
	for off+8 <= len(data) {
		if string(data[off:off+4]) == id {
			return off
		}
		size := int(binary.LittleEndian.Uint32(data[off+4:]))
		off += 8 + size + size%2
	}
	return -1
}
