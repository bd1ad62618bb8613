package heatmap

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrEmptyHeatmap is returned when normalization runs against a max of
// zero: no sample ever escaped into the rendered window. That means
// the window or the iteration bounds are misconfigured, and is
// surfaced rather than silently producing a black image.
var ErrEmptyHeatmap = errors.New("heatmap is empty: no escaping orbit hit the window")

// A Grid is a fixed-size heatmap of visit counts, one cell per pixel.
// Cells are stored in a single row-major buffer rather than nested
// slices, so cell [row][col] lives at row*Width + col.
type Grid struct {
	Width, Height int
	cells         []uint32
}

func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]uint32, width*height),
	}, nil
}

// At returns the count at [row][col].
func (g *Grid) At(row, col int) uint32 {
	return g.cells[row*g.Width+col]
}

// Inc increments the count at [row][col] and returns the new value.
func (g *Grid) Inc(row, col int) uint32 {
	g.cells[row*g.Width+col]++
	return g.cells[row*g.Width+col]
}

// Merge adds other's counts into g cell by cell and observes every
// merged value into max. Workers accumulate into private grids and
// merge them here, so nothing contends on individual cells during
// sampling.
func (g *Grid) Merge(other *Grid, max *MaxCounter) error {
	if g.Width != other.Width || g.Height != other.Height {
		return fmt.Errorf("cannot merge %dx%d grid into %dx%d grid",
			other.Width, other.Height, g.Width, g.Height)
	}
	for i, n := range other.cells {
		if n == 0 {
			continue
		}
		g.cells[i] += n
		max.Observe(g.cells[i])
	}
	return nil
}

// Normalized rescales every count onto [0, ceiling] using the maximum
// cell value observed across all channels, so the three channel grids
// of an image share one scale. Cells equal to max come out exactly at
// ceiling.
func (g *Grid) Normalized(max uint32, ceiling int) (*Grid, error) {
	if max == 0 {
		return nil, ErrEmptyHeatmap
	}

	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  make([]uint32, len(g.cells)),
	}
	for i, n := range g.cells {
		out.cells[i] = uint32(uint64(n) * uint64(ceiling) / uint64(max))
	}
	return out, nil
}

// A MaxCounter tracks the largest cell value seen across every grid it
// is shared with. Observe is a compare-and-swap loop, so concurrent
// merges cannot lose a maximum.
type MaxCounter struct {
	v atomic.Uint32
}

// Observe records n if it exceeds the current maximum.
func (m *MaxCounter) Observe(n uint32) {
	for {
		cur := m.v.Load()
		if n <= cur || m.v.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Value returns the maximum observed so far.
func (m *MaxCounter) Value() uint32 {
	return m.v.Load()
}
