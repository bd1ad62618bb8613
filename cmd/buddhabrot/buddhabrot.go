package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/buddhabrot/pkg/geometry"
	"github.com/willbeason/buddhabrot/pkg/heatmap"
	"github.com/willbeason/buddhabrot/pkg/ppm"
	"github.com/willbeason/buddhabrot/pkg/render"
)

var (
	width  int
	height int

	realMin float64
	realMax float64
	imagMin float64
	imagMax float64

	redIterations   int
	greenIterations int
	blueIterations  int

	samplesPerPixel int64
	ceiling         int
	workers         int
	seed            int64

	outPath string
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buddhabrot",
		Short: "Render a Buddhabrot by sampling escaping orbits of z² + c",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().IntVar(&width, "width", 512, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "image height in pixels")

	cmd.Flags().Float64Var(&realMin, "real-min", real(geometry.Buddhabrot.Min), "left edge of the rendered window")
	cmd.Flags().Float64Var(&realMax, "real-max", real(geometry.Buddhabrot.Max), "right edge of the rendered window")
	cmd.Flags().Float64Var(&imagMin, "imag-min", imag(geometry.Buddhabrot.Min), "bottom edge of the rendered window")
	cmd.Flags().Float64Var(&imagMax, "imag-max", imag(geometry.Buddhabrot.Max), "top edge of the rendered window")

	cmd.Flags().IntVar(&redIterations, "red-iterations", 5, "iteration bound for the red channel")
	cmd.Flags().IntVar(&greenIterations, "green-iterations", 500, "iteration bound for the green channel")
	cmd.Flags().IntVar(&blueIterations, "blue-iterations", 5000, "iteration bound for the blue channel")

	cmd.Flags().Int64Var(&samplesPerPixel, "samples-per-pixel", 200, "random candidates to draw per pixel, per channel")
	cmd.Flags().IntVar(&ceiling, "ceiling", 255, "maximum output channel value")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "sampling goroutines per channel")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 seeds from the clock")

	cmd.Flags().StringVarP(&outPath, "out", "o", "out.ppm", "output path; .png selects PNG, anything else PPM")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	start := time.Now()

	samples := int64(width) * int64(height) * samplesPerPixel

	cfg := render.Config{
		Window: geometry.Window{
			Min: complex(realMin, imagMin),
			Max: complex(realMax, imagMax),
		},
		Width:  width,
		Height: height,
		Channels: []render.ChannelConfig{
			{Name: "red", Iterations: redIterations, Samples: samples},
			{Name: "green", Iterations: greenIterations, Samples: samples},
			{Name: "blue", Iterations: blueIterations, Samples: samples},
		},
		Ceiling: ceiling,
		Workers: workers,
		Seed:    seed,
		Progress: func(channel string, done, total int64) {
			log.Printf("%s channel: %d/%d samples", channel, done, total)
		},
	}

	grids, err := render.Generate(cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if strings.HasSuffix(outPath, ".png") {
		err = writePNG(out, grids[0], grids[1], grids[2], ceiling)
	} else {
		err = ppm.Encode(out, grids[0], grids[1], grids[2], ceiling)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Printf("wrote %s in %s", outPath, time.Since(start))
	return nil
}

// writePNG composes the three channel grids into an 8-bit RGBA image.
// Grid values sit in [0, ceiling], so they are rescaled when the
// ceiling is not already 255.
func writePNG(out *os.File, red, green, blue *heatmap.Grid, ceiling int) error {
	img := image.NewRGBA(image.Rect(0, 0, red.Width, red.Height))

	for row := 0; row < red.Height; row++ {
		for col := 0; col < red.Width; col++ {
			img.Set(col, row, color.RGBA{
				R: uint8(int(red.At(row, col)) * 255 / ceiling),
				G: uint8(int(green.At(row, col)) * 255 / ceiling),
				B: uint8(int(blue.At(row, col)) * 255 / ceiling),
				A: 0xff,
			})
		}
	}

	return png.Encode(out, img)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
