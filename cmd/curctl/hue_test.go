package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/iconres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateHue(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 200})
	src.SetNRGBA(2, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})

	dst := rotateHue(src, 120)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, dst.NRGBAAt(0, 0))
	// Grey has no hue to rotate.
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 200}, dst.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0}, dst.NRGBAAt(2, 0))

	assert.Equal(t, color.NRGBA{B: 255, A: 255}, rotateHue(src, -120).NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, rotateHue(src, 360).NRGBAAt(0, 0))
}

func TestRotateHueOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})

	dst := rotateHue(src, 0)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, dst.NRGBAAt(0, 0))
}

func TestHue(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "cursor.png", 32, 32, red)
	out := filepath.Join(dir, "rainbow.ani")
	hueOpts.steps = 3
	hueOpts.degrees = 120
	hueOpts.duration = 12

	output, err := captureOutput(t, func() error { return runHue([]string{src, out}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"Wrote", "3 frames"})

	f, err := ani.Open(out)
	require.NoError(t, err)
	require.Len(t, f.Frames, 3)
	assert.Equal(t, []uint32{12, 12, 12}, f.Rates)
	assert.Equal(t, uint32(32), f.Header.Width)

	want := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for i, fr := range f.Frames {
		assert.Equal(t, uint16(8), fr.HotspotX)
		assert.Equal(t, uint16(9), fr.HotspotY)
		img, err := iconres.Decode(fr.Data)
		require.NoError(t, err)
		r, g, b, a := img.At(0, 0).RGBA()
		got := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		assert.Equal(t, want[i], got, "frame %d", i)
	}
}

func TestHueIconFrames(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "cursor.png", 16, 16, green)
	out := filepath.Join(dir, "icons.ani")
	hueOpts.steps = 2
	hueOpts.icon = true

	_, err := captureOutput(t, func() error { return runHue([]string{src, out}) })
	require.NoError(t, err)

	f, err := ani.Open(out)
	require.NoError(t, err)
	require.Len(t, f.Frames, 2)
	// Icon entries store planes=1 and bpp=32 where the hotspot would be.
	assert.Equal(t, uint16(1), f.Frames[0].HotspotX)
	assert.Equal(t, uint16(32), f.Frames[0].HotspotY)
	assert.Equal(t, byte(1), f.Frames[0].Data[2])
}

func TestHueFlagValidation(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "cursor.png", 8, 8, red)
	out := filepath.Join(dir, "x.ani")

	hueOpts.steps = 0
	err := runHue([]string{src, out})
	require.Error(t, err)

	resetFlags()
	hueOpts.hotspot = []uint{1}
	err = runHue([]string{src, out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two values")

	resetFlags()
	hueOpts.hotspot = []uint{70000, 0}
	err = runHue([]string{src, out})
	require.Error(t, err)
}
