package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89}

	require.Equal(t, uint16(0x2301), U16LE(data))
	require.Equal(t, uint32(0x67452301), U32LE(data))

	short := []byte{0xAA}
	require.Zero(t, U16LE(short))
	require.Zero(t, U32LE(short))
}

func TestU32List(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []uint32
	}{
		{"empty", nil, []uint32{}},
		{"exact", []byte{1, 0, 0, 0, 2, 0, 0, 0}, []uint32{1, 2}},
		{"trailing bytes dropped", []byte{3, 0, 0, 0, 0xff, 0xff}, []uint32{3}},
		{"too short", []byte{1, 2, 3}, []uint32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, U32List(tt.in))
		})
	}
}
