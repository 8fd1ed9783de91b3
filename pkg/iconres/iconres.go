// Package iconres turns images into single-image cursor or icon resources,
// the payload an animated cursor frame or a static cursor entry carries.
// Images are stored PNG-compressed, which Windows accepts since Vista.
package iconres

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/joshuapare/curkit/internal/buf"
	"github.com/joshuapare/curkit/internal/format"
	"github.com/joshuapare/curkit/pkg/types"
)

// Kind selects the resource type written to the directory header.
type Kind uint16

const (
	KindIcon   Kind = format.ResourceTypeIcon
	KindCursor Kind = format.ResourceTypeCursor
)

// Options control Encode. The zero value builds a cursor with its hotspot
// at the top-left corner.
type Options struct {
	Kind     Kind
	HotspotX uint16
	HotspotY uint16
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encode PNG-compresses img and wraps it in a one-entry directory.
func Encode(img image.Image, opts Options) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 || w > format.MaxDimension || h > format.MaxDimension {
		return nil, types.Range(fmt.Sprintf("image size %dx%d outside 1..256", w, h))
	}
	kind := opts.Kind
	if kind == 0 {
		kind = KindCursor
	}

	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return nil, fmt.Errorf("iconres: png encode: %w", err)
	}

	entry := format.DirEntry{
		Width:  uint32(w),
		Height: uint32(h),
		Size:   uint32(pngData.Len()),
		Offset: format.MinResourceSize,
	}
	switch kind {
	case KindCursor:
		entry.HotspotX, entry.HotspotY = opts.HotspotX, opts.HotspotY
	case KindIcon:
		entry.HotspotX, entry.HotspotY = 1, 32 // planes, bits per pixel
	default:
		return nil, types.Range(fmt.Sprintf("unknown resource kind %d", kind))
	}

	out := make([]byte, format.MinResourceSize, format.MinResourceSize+pngData.Len())
	format.PutDirHeader(out, uint16(kind), 1)
	format.PutDirEntry(out[format.DirHeaderSize:], entry)
	return append(out, pngData.Bytes()...), nil
}

// Decode returns the image of the first entry of an icon or cursor
// resource. Only PNG-compressed entries can be decoded.
func Decode(data []byte) (image.Image, error) {
	hdr, err := format.ParseDirHeader(data)
	if err != nil {
		return nil, types.Truncated("resource header", err)
	}
	if hdr.Type != format.ResourceTypeIcon && hdr.Type != format.ResourceTypeCursor {
		return nil, types.Format(fmt.Sprintf("resource type %d is not an icon or cursor", hdr.Type), nil)
	}
	if hdr.Count == 0 {
		return nil, types.ErrNoFrames
	}
	entry, err := format.ParseDirEntry(data[format.DirHeaderSize:])
	if err != nil {
		return nil, types.Truncated("resource entry", err)
	}
	payload, ok := buf.Slice(data, int(entry.Offset), int(entry.Size))
	if !ok {
		return nil, types.Truncated("resource payload", format.ErrTruncated)
	}
	if !bytes.HasPrefix(payload, pngSignature) {
		return nil, types.Unsupported("resource payload is a DIB, not PNG")
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, types.Format("resource png", err)
	}
	return img, nil
}
