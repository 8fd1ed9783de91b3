package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/joshuapare/curkit/cmd/curctl/logger"
	"github.com/joshuapare/curkit/internal/writer"
	"github.com/joshuapare/curkit/pkg/iconres"
	"github.com/joshuapare/curkit/pkg/types"
	"github.com/spf13/cobra"
)

var extractPNG bool

func init() {
	cmd := newExtractCmd()
	cmd.Flags().BoolVar(&extractPNG, "png", false, "Also write each frame as a PNG image")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> <dir>",
		Short: "Write every frame of a cursor file as its own .cur",
		Long: `The extract command splits a .cur or .ani file into one
single-image resource per frame, named frame_000.cur, frame_001.cur and so
on. With --png the frame images are decoded and written alongside.
Frames stored as bitmaps instead of PNG are skipped for --png.

Example:
  curctl extract busy.ani frames/
  curctl extract busy.ani frames/ --png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	src, dir := args[0], args[1]

	cf, err := loadCursor(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	written := 0
	for i := 0; i < cf.frameCount(); i++ {
		res, err := cf.resource(i)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("frame_%03d.cur", i))
		fw := writer.FileWriter{Path: name}
		if err := fw.WriteFile(res); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		printVerbose("Wrote %s (%d bytes)\n", name, len(res))
		written++

		if !extractPNG {
			continue
		}
		ok, err := extractImage(res, filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i)))
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if !ok {
			logger.L.Warn("frame has no png payload", "frame", i)
			printVerbose("Skipped PNG for frame %d: bitmap payload\n", i)
		}
	}

	printInfo("Extracted %d frame(s) to %s\n", written, dir)
	return nil
}

// extractImage decodes res and writes it as PNG. It reports false when the
// payload is a bitmap that cannot be decoded.
func extractImage(res []byte, path string) (bool, error) {
	img, err := iconres.Decode(res)
	if types.IsKind(err, types.ErrKindUnsupported) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return false, fmt.Errorf("png encode: %w", err)
	}
	fw := writer.FileWriter{Path: path}
	return true, fw.WriteFile(out.Bytes())
}
