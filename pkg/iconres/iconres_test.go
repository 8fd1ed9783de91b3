package iconres

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/cur"
	"github.com/joshuapare/curkit/pkg/types"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func TestEncodeCursorResource(t *testing.T) {
	data, err := Encode(testImage(32, 24), Options{HotspotX: 8, HotspotY: 9})
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 2, 0, 1, 0}, data[:6])
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(data[18:]), "payload follows the single entry")

	f, err := cur.Parse(data)
	require.NoError(t, err)
	require.Len(t, f.Frames, 1)
	assert.Equal(t, uint32(32), f.Frames[0].Width)
	assert.Equal(t, uint32(24), f.Frames[0].Height)
	assert.Equal(t, uint16(8), f.Frames[0].HotspotX)

	fr, err := ani.ParseCursorData(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(9), fr.HotspotY)
}

func TestEncodeIconResource(t *testing.T) {
	data, err := Encode(testImage(256, 256), Options{Kind: KindIcon})
	require.NoError(t, err)

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:]))
	assert.Equal(t, byte(0), data[6], "256 is stored as 0")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[10:]), "planes")
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(data[12:]), "bit count")
}

func TestEncodeRejectsOversize(t *testing.T) {
	_, err := Encode(testImage(257, 16), Options{})
	assert.True(t, types.IsKind(err, types.ErrKindRange))

	_, err = Encode(testImage(16, 16), Options{Kind: 7})
	assert.True(t, types.IsKind(err, types.ErrKindRange))
}

func TestDecodeRoundTrip(t *testing.T) {
	src := testImage(20, 10)
	data, err := Encode(src, Options{})
	require.NoError(t, err)

	img, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), img.Bounds())
	assert.Equal(t, color.NRGBAModel.Convert(src.At(7, 3)), color.NRGBAModel.Convert(img.At(7, 3)))
}

func TestDecodeErrors(t *testing.T) {
	data, err := Encode(testImage(4, 4), Options{})
	require.NoError(t, err)

	_, err = Decode(data[:30])
	assert.True(t, types.IsKind(err, types.ErrKindTruncated), "got %v", err)

	dib := append([]byte(nil), data...)
	copy(dib[22:], []byte{40, 0, 0, 0, 0, 0, 0, 0})
	_, err = Decode(dib)
	assert.True(t, types.IsKind(err, types.ErrKindUnsupported), "got %v", err)

	bad := append([]byte(nil), data...)
	binary.LittleEndian.PutUint16(bad[2:], 3)
	_, err = Decode(bad)
	assert.True(t, types.IsKind(err, types.ErrKindFormat), "got %v", err)

	_, err = Decode([]byte{0, 0, 2, 0, 0, 0})
	require.ErrorIs(t, err, types.ErrNoFrames)
}
