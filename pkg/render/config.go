package render

import (
	"fmt"

	"github.com/willbeason/buddhabrot/pkg/geometry"
)

// A ChannelConfig describes one sampling pass. The three channels of
// an image differ only in iteration bound: short-lived escaping orbits
// light up the low-bound channel, long-lived ones the high-bound
// channel, which is what gives the composite its coloring.
type ChannelConfig struct {
	// Name labels the channel in progress reports.
	Name string

	// Iterations is the escape-time bound for this channel's orbits.
	Iterations int

	// Samples is how many random candidates to draw.
	Samples int64
}

func (c ChannelConfig) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%s channel: iteration bound must be positive, got %d", c.Name, c.Iterations)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%s channel: sample count must be positive, got %d", c.Name, c.Samples)
	}
	return nil
}

// Progress observes a running pass. It may be called from a different
// goroutine than the one sampling; implementations must not assume any
// particular call cadence.
type Progress func(channel string, done, total int64)

// A Config holds everything a run needs. The zero value is not usable;
// populate it and Validate before generating.
type Config struct {
	Window geometry.Window

	// Width and Height are the grid resolution in cells.
	Width, Height int

	// Channels are sampled in order, sharing one maximum across all
	// their grids.
	Channels []ChannelConfig

	// Ceiling is the top of the normalized intensity range,
	// typically 255.
	Ceiling int

	// Workers is the number of sampling goroutines per channel.
	// Values below 1 are treated as 1.
	Workers int

	// Seed seeds the per-worker random sources. Zero means seed from
	// the wall clock.
	Seed int64

	// Progress, if set, receives periodic per-channel reports.
	Progress Progress
}

func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}
	for _, ch := range c.Channels {
		if err := ch.Validate(); err != nil {
			return err
		}
	}
	if c.Ceiling <= 0 {
		return fmt.Errorf("ceiling must be positive, got %d", c.Ceiling)
	}
	return nil
}
