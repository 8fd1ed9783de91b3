package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/cur"
	"github.com/joshuapare/curkit/pkg/iconres"
)

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// aniFrame wraps img in a single-image resource and reads its geometry back.
func aniFrame(img image.Image, opts iconres.Options, duration uint32) (ani.Frame, error) {
	res, err := iconres.Encode(img, opts)
	if err != nil {
		return ani.Frame{}, err
	}
	fr, err := ani.ParseCursorData(res)
	if err != nil {
		return ani.Frame{}, err
	}
	fr.Duration = duration
	return fr, nil
}

// curFrame returns img as a directory entry of a static cursor.
func curFrame(img image.Image, hotspotX, hotspotY uint16) (cur.Frame, error) {
	res, err := iconres.Encode(img, iconres.Options{
		Kind:     iconres.KindCursor,
		HotspotX: hotspotX,
		HotspotY: hotspotY,
	})
	if err != nil {
		return cur.Frame{}, err
	}
	single, err := cur.Parse(res)
	if err != nil {
		return cur.Frame{}, err
	}
	return single.Frames[0], nil
}
