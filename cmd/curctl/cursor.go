package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/curkit/cmd/curctl/logger"
	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/cur"
)

const (
	formatCUR = "cur"
	formatANI = "ani"
)

var riffMagic = []byte("RIFF")

// cursorFile is a decoded .cur or .ani file. Exactly one of CUR and ANI
// is set.
type cursorFile struct {
	Path   string
	Format string
	CUR    *cur.File
	ANI    *ani.File
}

// loadCursor opens path and decodes it as ANI when it starts with a RIFF
// header, otherwise as CUR.
func loadCursor(path string) (*cursorFile, error) {
	kind, err := sniffFormat(path)
	if err != nil {
		return nil, err
	}
	logger.L.Debug("decoding cursor", "path", path, "format", kind)

	cf := &cursorFile{Path: path, Format: kind}
	switch kind {
	case formatANI:
		cf.ANI, err = ani.Open(path)
	default:
		cf.CUR, err = cur.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.L.Info("decoded cursor", "path", path, "format", kind, "frames", cf.frameCount())
	return cf, nil
}

func sniffFormat(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	magic := make([]byte, len(riffMagic))
	if _, err := io.ReadFull(f, magic); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) &&
		!errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.Equal(magic, riffMagic) {
		return formatANI, nil
	}
	return formatCUR, nil
}

// formatForPath picks the output format from a file extension.
func formatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".ani") {
		return formatANI
	}
	return formatCUR
}

func (cf *cursorFile) frameCount() int {
	if cf.ANI != nil {
		return len(cf.ANI.Frames)
	}
	return len(cf.CUR.Frames)
}

// resource returns frame i as a standalone single-image resource.
func (cf *cursorFile) resource(i int) ([]byte, error) {
	if cf.ANI != nil {
		return cf.ANI.Frames[i].Data, nil
	}
	return cur.Single(cf.CUR.Frames[i]).MarshalBinary()
}
