package render

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willbeason/buddhabrot/pkg/geometry"
	"github.com/willbeason/buddhabrot/pkg/heatmap"
	"github.com/willbeason/buddhabrot/pkg/orbit"
)

const (
	// The first progress report comes quickly so a misconfigured run
	// is visible early; later ones are spaced out.
	progressDelay    = 5 * time.Second
	progressInterval = 30 * time.Second
)

// Generate runs every channel pass in order and returns one normalized
// grid per channel, each cell in [0, cfg.Ceiling] on the scale set by
// the maximum count observed across all channels.
func Generate(cfg Config) ([]*heatmap.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	max := &heatmap.MaxCounter{}

	raw := make([]*heatmap.Grid, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		grid, err := heatmap.NewGrid(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}

		if err := generateChannel(cfg, ch, grid, max, seed+int64(i)); err != nil {
			return nil, fmt.Errorf("%s channel: %w", ch.Name, err)
		}
		raw[i] = grid
	}

	if max.Value() == 0 {
		// Nothing escaped into the window; normalizing would divide
		// by zero. The window or iteration bounds are misconfigured.
		return nil, heatmap.ErrEmptyHeatmap
	}

	normalized := make([]*heatmap.Grid, len(raw))
	for i, grid := range raw {
		norm, err := grid.Normalized(max.Value(), cfg.Ceiling)
		if err != nil {
			return nil, fmt.Errorf("%s channel: %w", cfg.Channels[i].Name, err)
		}
		normalized[i] = norm
	}
	return normalized, nil
}

// generateChannel draws ch.Samples random candidates from cfg.Window,
// runs each through the escape map, and bins every visited point into
// grid. Workers accumulate into private grids, merged at the end, so
// the only cross-worker state during sampling is the done counter.
func generateChannel(cfg Config, ch ChannelConfig, grid *heatmap.Grid, max *heatmap.MaxCounter, seed int64) error {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if int64(workers) > ch.Samples {
		workers = int(ch.Samples)
	}

	var done atomic.Int64

	if cfg.Progress != nil {
		stop := make(chan struct{})
		defer close(stop)
		go reportProgress(cfg.Progress, ch, &done, stop)
	}

	subs := make([]*heatmap.Grid, workers)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		samples := ch.Samples / int64(workers)
		if int64(i) < ch.Samples%int64(workers) {
			samples++
		}

		sub, err := heatmap.NewGrid(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		subs[i] = sub

		go func(i int, sub *heatmap.Grid, samples int64) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed + int64(i)*1e9))
			sample(cfg.Window, ch.Iterations, samples, rng, sub, &done)
		}(i, sub, samples)
	}
	wg.Wait()

	for _, sub := range subs {
		if err := grid.Merge(sub, max); err != nil {
			return err
		}
	}
	return nil
}

func sample(win geometry.Window, iterations int, samples int64, rng *rand.Rand, grid *heatmap.Grid, done *atomic.Int64) {
	spanR := real(win.Max) - real(win.Min)
	spanI := imag(win.Max) - imag(win.Min)

	buf := make([]complex128, 0, iterations)

	for s := int64(0); s < samples; s++ {
		c := complex(
			real(win.Min)+spanR*rng.Float64(),
			imag(win.Min)+spanI*rng.Float64(),
		)

		buf = orbit.AppendPoints(buf[:0], c, iterations)
		for _, z := range buf {
			Accumulate(z, win, grid, nil)
		}

		done.Add(1)
	}
}

// Accumulate bins z into grid if it lies within win, and observes the
// incremented count into max when max is non-nil. Points outside the
// window are dropped silently; orbits wander well outside the rendered
// crop before escaping and that is not an error. A point lying exactly
// on an axis maximum is inside the window but maps one cell past the
// grid edge, and is dropped too.
func Accumulate(z complex128, win geometry.Window, grid *heatmap.Grid, max *heatmap.MaxCounter) {
	if !win.Contains(z) {
		return
	}

	row := win.Row(z, grid.Height)
	col := win.Col(z, grid.Width)
	if row >= grid.Height || col >= grid.Width {
		return
	}

	n := grid.Inc(row, col)
	if max != nil {
		max.Observe(n)
	}
}

func reportProgress(progress Progress, ch ChannelConfig, done *atomic.Int64, stop chan struct{}) {
	timer := time.NewTimer(progressDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-stop:
		return
	}
	progress(ch.Name, done.Load(), ch.Samples)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			progress(ch.Name, done.Load(), ch.Samples)
		case <-stop:
			return
		}
	}
}
