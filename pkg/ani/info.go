package ani

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/curkit/internal/buf"
	"github.com/joshuapare/curkit/internal/format"
)

// INFO strings are NUL-terminated Windows-1252 text.

type infoItem struct {
	id    format.FourCC
	value []byte
}

// items returns the INFO sub-chunks to write, title first.
func (i Info) items() []infoItem {
	var out []infoItem
	if i.Title != "" {
		out = append(out, infoItem{format.INAMTag, encodeInfoString(i.Title)})
	}
	if i.Artist != "" {
		out = append(out, infoItem{format.IARTTag, encodeInfoString(i.Artist)})
	}
	return out
}

func encodeInfoString(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		b = []byte(s)
	}
	return append(b, 0)
}

func decodeInfoString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// parseInfo reads the sub-chunks of a LIST INFO body. Metadata is optional,
// so a malformed item ends parsing instead of failing the decode.
func parseInfo(body []byte) Info {
	var info Info
	for off := 0; off+format.ChunkHeaderSize <= len(body); {
		h, err := format.ParseChunkHeader(body[off:])
		if err != nil {
			break
		}
		off += format.ChunkHeaderSize
		value, ok := buf.Slice(body, off, int(h.Size))
		if !ok {
			break
		}
		switch h.ID {
		case format.INAMTag:
			info.Title = decodeInfoString(value)
		case format.IARTTag:
			info.Artist = decodeInfoString(value)
		}
		off += int(h.Span())
	}
	return info
}
