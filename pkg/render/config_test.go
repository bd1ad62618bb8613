package render

import (
	"testing"

	"github.com/willbeason/buddhabrot/pkg/geometry"
)

func validConfig() Config {
	return Config{
		Window: geometry.Buddhabrot,
		Width:  4,
		Height: 4,
		Channels: []ChannelConfig{
			{Name: "red", Iterations: 5, Samples: 100},
			{Name: "green", Iterations: 500, Samples: 100},
			{Name: "blue", Iterations: 5000, Samples: 100},
		},
		Ceiling: 255,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name: "inverted window",
			mutate: func(c *Config) {
				c.Window = geometry.Window{Min: complex(1, -2), Max: complex(-2, 2)}
			},
			wantErr: true,
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.Height = -4 },
			wantErr: true,
		},
		{
			name:    "no channels",
			mutate:  func(c *Config) { c.Channels = nil },
			wantErr: true,
		},
		{
			name:    "non-positive iteration bound",
			mutate:  func(c *Config) { c.Channels[1].Iterations = 0 },
			wantErr: true,
		},
		{
			name:    "non-positive sample count",
			mutate:  func(c *Config) { c.Channels[2].Samples = 0 },
			wantErr: true,
		},
		{
			name:    "zero ceiling",
			mutate:  func(c *Config) { c.Ceiling = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
