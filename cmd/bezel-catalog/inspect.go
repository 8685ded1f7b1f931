package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/menta2k/bezel-catalog/pkg/catalog"
	"github.com/menta2k/bezel-catalog/pkg/decode"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

func newInspectCmd() *cobra.Command {
	var (
		transparentMax uint8
		solidMin       uint8
		maxMaskDim     int
	)

	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Detect and print the viewport of a single bezel image",
		Args:  cobra.ExactArgs(1),
		Example: `  # Inspect one bezel with default thresholds
  bezel-catalog inspect "bezels/devices/Phones/Pixel 8 Pro/bezel.png"

  # Looser transparency threshold for lossy sources
  bezel-catalog inspect --transparent-max 24 bezel.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decode.Open(args[0])
			if err != nil {
				return err
			}

			detector := viewport.NewWithConfig(viewport.Config{
				TransparentMax: transparentMax,
				SolidMin:       solidMin,
				MaxMaskDim:     maxMaskDim,
			})
			vp := detector.Detect(img)
			bounds := img.Bounds()

			out := struct {
				Path               string             `json:"path"`
				ImageDimensions    catalog.Dimensions `json:"image_dimensions"`
				ViewportDimensions catalog.Dimensions `json:"viewport_dimensions"`
				ViewportOrigin     catalog.Point      `json:"viewport_origin"`
			}{
				Path:               args[0],
				ImageDimensions:    catalog.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()},
				ViewportDimensions: catalog.Dimensions{Width: vp.Width, Height: vp.Height},
				ViewportOrigin:     catalog.Point{X: vp.X, Y: vp.Y},
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	defaults := viewport.DefaultConfig()
	cmd.Flags().Uint8Var(&transparentMax, "transparent-max", defaults.TransparentMax, "Alpha at or below this is near-transparent")
	cmd.Flags().Uint8Var(&solidMin, "solid-min", defaults.SolidMin, "Alpha at or above this is near-solid bezel")
	cmd.Flags().IntVar(&maxMaskDim, "max-mask-dim", defaults.MaxMaskDim, "Downscale masks larger than this before flood fill")

	return cmd
}
