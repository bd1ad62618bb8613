// Package ppm writes the plain-text (P3) PPM image format: a header,
// the resolution, the maximum channel value, then one line of
// whitespace-separated R G B triplets per pixel row. Every viewer and
// converter understands it, and it keeps the output inspectable.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/willbeason/buddhabrot/pkg/heatmap"
)

// Encode writes the three channel grids as a P3 image. The grids must
// share one resolution and hold values already normalized to
// [0, ceiling]; pixel (row, col) is grid cell [row][col].
func Encode(w io.Writer, red, green, blue *heatmap.Grid, ceiling int) error {
	if red.Width != green.Width || red.Width != blue.Width ||
		red.Height != green.Height || red.Height != blue.Height {
		return fmt.Errorf("channel grids disagree on resolution: %dx%d, %dx%d, %dx%d",
			red.Width, red.Height, green.Width, green.Height, blue.Width, blue.Height)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "P3")
	fmt.Fprintln(bw, red.Width, red.Height)
	fmt.Fprintln(bw, ceiling)

	for row := 0; row < red.Height; row++ {
		for col := 0; col < red.Width; col++ {
			if col > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprint(bw, red.At(row, col), green.At(row, col), blue.At(row, col))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
