package ani

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/curkit/pkg/types"
)

func TestParseCursorData(t *testing.T) {
	data := resource(t, 256, 48, 200, 7, 3)

	fr, err := ParseCursorData(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), fr.Width)
	assert.Equal(t, uint32(48), fr.Height)
	assert.Equal(t, uint16(200), fr.HotspotX)
	assert.Equal(t, uint16(7), fr.HotspotY)
	assert.Zero(t, fr.Duration)

	data[0] = 0xFF
	assert.NotEqual(t, data[0], fr.Data[0], "frame must own its payload")
}

func TestParseCursorDataMinimum(t *testing.T) {
	_, err := ParseCursorData(make([]byte, 21))
	require.ErrorIs(t, err, types.ErrInvalidCursorData)

	fr, err := ParseCursorData(make([]byte, 22))
	require.NoError(t, err)
	assert.Equal(t, uint32(256), fr.Width, "zero byte means 256")
}

func TestParseCursorDataIconQuirk(t *testing.T) {
	// An icon-typed resource keeps planes and bit count where a cursor keeps
	// its hotspot; the peek reports them as the hotspot.
	data := make([]byte, 22)
	binary.LittleEndian.PutUint16(data[2:], 1)
	data[6], data[7] = 32, 32
	binary.LittleEndian.PutUint16(data[10:], 1)
	binary.LittleEndian.PutUint16(data[12:], 32)

	fr, err := ParseCursorData(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), fr.HotspotX)
	assert.Equal(t, uint16(32), fr.HotspotY)
}
