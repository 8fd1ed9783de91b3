package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/joshuapare/curkit/cmd/curctl/logger"
	"github.com/joshuapare/curkit/pkg/ani"
	"github.com/joshuapare/curkit/pkg/iconres"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var hueOpts struct {
	steps    int
	degrees  float64
	hotspot  []uint
	duration uint32
	icon     bool
}

func init() {
	cmd := newHueCmd()
	cmd.Flags().IntVar(&hueOpts.steps, "steps", 14, "Number of frames")
	cmd.Flags().Float64Var(&hueOpts.degrees, "degrees", 15, "Hue rotation between frames")
	cmd.Flags().UintSliceVar(&hueOpts.hotspot, "hotspot", []uint{8, 9}, "Hotspot as x,y")
	cmd.Flags().Uint32Var(&hueOpts.duration, "duration", 100, "Frame duration in jiffies (1/60 s)")
	cmd.Flags().BoolVar(&hueOpts.icon, "icon", false, "Store frames as icon resources instead of cursors")
	rootCmd.AddCommand(cmd)
}

func newHueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hue <image.png> <out.ani>",
		Short: "Build an animated cursor by cycling the hue of an image",
		Long: `The hue command builds an animated cursor whose frames are copies of
one PNG image with the hue rotated a little further on each frame.

Example:
  curctl hue cursor.png rainbow.ani
  curctl hue cursor.png rainbow.ani --steps 24 --degrees 15 --hotspot 0,0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHue(args)
		},
	}
	return cmd
}

func runHue(args []string) error {
	src, out := args[0], args[1]

	if hueOpts.steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}
	if len(hueOpts.hotspot) != 2 {
		return fmt.Errorf("--hotspot takes two values, got %d", len(hueOpts.hotspot))
	}
	if hueOpts.hotspot[0] > math.MaxUint16 || hueOpts.hotspot[1] > math.MaxUint16 {
		return fmt.Errorf("--hotspot values must fit 16 bits")
	}

	img, err := loadPNG(src)
	if err != nil {
		return err
	}

	opts := iconres.Options{
		Kind:     iconres.KindCursor,
		HotspotX: uint16(hueOpts.hotspot[0]),
		HotspotY: uint16(hueOpts.hotspot[1]),
	}
	if hueOpts.icon {
		opts = iconres.Options{Kind: iconres.KindIcon}
	}

	frames := make([]ani.Frame, 0, hueOpts.steps)
	for i := 0; i < hueOpts.steps; i++ {
		shift := float64(i) * hueOpts.degrees
		fr, err := aniFrame(rotateHue(img, shift), opts, hueOpts.duration)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		logger.L.Debug("built frame", "index", i, "hue_shift", shift, "bytes", len(fr.Data))
		frames = append(frames, fr)
	}

	f := ani.New(frames)
	if err := f.WriteFile(out); err != nil {
		return err
	}
	printInfo("Wrote %s (%d frames, %s)\n", out, len(frames), f.TotalDuration())
	return nil
}

// rotateHue returns a copy of src with every pixel's hue shifted by
// degrees. Alpha is kept; fully transparent pixels are copied unchanged.
func rotateHue(src image.Image, degrees float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.A == 0 || degrees == 0 {
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
				continue
			}
			h, s, l := colorful.Color{
				R: float64(c.R) / 255,
				G: float64(c.G) / 255,
				B: float64(c.B) / 255,
			}.Hsl()
			h = math.Mod(h+degrees, 360)
			if h < 0 {
				h += 360
			}
			r, g, bl := colorful.Hsl(h, s, l).Clamped().RGB255()
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{R: r, G: g, B: bl, A: c.A})
		}
	}
	return dst
}
