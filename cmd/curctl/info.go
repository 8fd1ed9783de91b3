package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show frames, timing and metadata of a cursor file",
		Long: `The info command decodes a .cur or .ani file and prints the geometry
and hotspot of each frame. For animated cursors it also shows the step
sequence, per-step rates and any title or artist metadata.

Example:
  curctl info arrow.cur
  curctl info busy.ani --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type frameInfo struct {
	Index    int    `json:"index"`
	Width    uint32 `json:"width"`
	Height   uint32 `json:"height"`
	HotspotX uint16 `json:"hotspot_x"`
	HotspotY uint16 `json:"hotspot_y"`
	Size     int    `json:"size"`
	Duration uint32 `json:"duration,omitempty"`
}

type cursorInfo struct {
	File        string      `json:"file"`
	Format      string      `json:"format"`
	Frames      []frameInfo `json:"frames"`
	Steps       int         `json:"steps,omitempty"`
	DefaultRate uint32      `json:"default_rate,omitempty"`
	Flags       uint32      `json:"flags,omitempty"`
	Sequence    []uint32    `json:"sequence,omitempty"`
	Rates       []uint32    `json:"rates,omitempty"`
	DurationMS  int64       `json:"duration_ms,omitempty"`
	Title       string      `json:"title,omitempty"`
	Artist      string      `json:"artist,omitempty"`
}

func describe(cf *cursorFile) cursorInfo {
	info := cursorInfo{File: cf.Path, Format: cf.Format}
	if cf.CUR != nil {
		for i, fr := range cf.CUR.Frames {
			info.Frames = append(info.Frames, frameInfo{
				Index:    i,
				Width:    fr.Width,
				Height:   fr.Height,
				HotspotX: fr.HotspotX,
				HotspotY: fr.HotspotY,
				Size:     len(fr.Data),
			})
		}
		return info
	}

	a := cf.ANI
	for i, fr := range a.Frames {
		info.Frames = append(info.Frames, frameInfo{
			Index:    i,
			Width:    fr.Width,
			Height:   fr.Height,
			HotspotX: fr.HotspotX,
			HotspotY: fr.HotspotY,
			Size:     len(fr.Data),
			Duration: fr.Duration,
		})
	}
	info.Steps = a.StepCount()
	info.DefaultRate = a.Header.DefaultRate
	info.Flags = a.Header.Flags
	info.Sequence = a.Sequence
	info.Rates = a.Rates
	info.DurationMS = a.TotalDuration().Milliseconds()
	info.Title = a.Info.Title
	info.Artist = a.Info.Artist
	return info
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening cursor: %s\n", path)

	cf, err := loadCursor(path)
	if err != nil {
		return err
	}
	info := describe(cf)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nCursor Information:\n")
	printInfo("  File: %s\n", info.File)
	printInfo("  Format: %s\n", info.Format)
	printInfo("  Frames: %d\n", len(info.Frames))
	if info.Format == formatANI {
		printInfo("  Steps: %d\n", info.Steps)
		printInfo("  Default rate: %d jiffies\n", info.DefaultRate)
		printInfo("  Duration: %dms\n", info.DurationMS)
		if info.Title != "" {
			printInfo("  Title: %s\n", info.Title)
		}
		if info.Artist != "" {
			printInfo("  Artist: %s\n", info.Artist)
		}
		printVerbose("  Flags: %#x\n", info.Flags)
		printInfo("  Sequence: %v\n", info.Sequence)
		if len(info.Rates) > 0 {
			printInfo("  Rates: %v\n", info.Rates)
		}
	}

	printInfo("\nFrames:\n")
	for _, fr := range info.Frames {
		line := fmt.Sprintf("  [%d] %dx%d hotspot (%d,%d) %d bytes",
			fr.Index, fr.Width, fr.Height, fr.HotspotX, fr.HotspotY, fr.Size)
		if fr.Duration > 0 {
			line += fmt.Sprintf(" %d jiffies", fr.Duration)
		}
		printInfo("%s\n", line)
	}
	return nil
}
