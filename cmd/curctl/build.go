package main

import (
	"fmt"

	"github.com/joshuapare/curkit/cmd/curctl/logger"
	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/cur"
	"github.com/joshuapare/curkit/pkg/iconres"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <recipe.yaml>",
		Short: "Assemble a cursor file from PNG images",
		Long: `The build command reads a YAML recipe listing PNG images with their
hotspots and writes a .cur or .ani file.

Recipe example:
  output: busy.ani
  title: Busy
  artist: Someone
  default_rate: 6
  sequence: [0, 1, 2, 1]
  frames:
    - image: busy0.png
      hotspot_x: 8
      hotspot_y: 9
      duration: 10
    - image: busy1.png
    - image: busy2.png

Example:
  curctl build busy.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
	return cmd
}

func runBuild(args []string) error {
	recipe, err := LoadRecipe(args[0])
	if err != nil {
		return err
	}
	printVerbose("Building %s (%s, %d frame(s))\n", recipe.Output, recipe.Format, len(recipe.Frames))

	switch recipe.Format {
	case formatANI:
		err = buildANI(recipe)
	default:
		err = buildCUR(recipe)
	}
	if err != nil {
		return err
	}

	logger.L.Info("wrote cursor", "path", recipe.Output, "format", recipe.Format, "frames", len(recipe.Frames))
	printInfo("Wrote %s\n", recipe.Output)
	return nil
}

func buildCUR(recipe *Recipe) error {
	if recipe.Title != "" || recipe.Artist != "" {
		logger.L.Warn("title and artist are ignored for cur output")
	}
	frames := make([]cur.Frame, 0, len(recipe.Frames))
	for i, rf := range recipe.Frames {
		img, err := loadPNG(rf.Image)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		fr, err := curFrame(img, rf.HotspotX, rf.HotspotY)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, fr)
	}
	return cur.New(frames...).WriteFile(recipe.Output)
}

func buildANI(recipe *Recipe) error {
	frames := make([]ani.Frame, 0, len(recipe.Frames))
	for i, rf := range recipe.Frames {
		img, err := loadPNG(rf.Image)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		fr, err := aniFrame(img, iconres.Options{
			Kind:     iconres.KindCursor,
			HotspotX: rf.HotspotX,
			HotspotY: rf.HotspotY,
		}, rf.Duration)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, fr)
	}

	f := ani.New(frames)
	if recipe.DefaultRate > 0 {
		f.WithDefaultRate(recipe.DefaultRate)
	}
	if len(recipe.Sequence) > 0 {
		f.WithSequence(recipe.Sequence)
	}
	if len(recipe.Rates) > 0 {
		f.WithRates(recipe.Rates)
	}
	f.WithInfo(ani.Info{Title: recipe.Title, Artist: recipe.Artist})
	return f.WriteFile(recipe.Output)
}
