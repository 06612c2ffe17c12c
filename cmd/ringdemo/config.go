package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/ringbar"
)

// Config is the demo's configuration structure.
type Config struct {
	Ring  RingConfig  `toml:"ring"`
	Theme ThemeConfig `toml:"theme"`
}

// RingConfig holds the seek ring shape and projection settings.
type RingConfig struct {
	Size         float64 `toml:"size"`
	CornerRadius float64 `toml:"corner_radius"`
	BarWidth     float64 `toml:"bar_width"`
	Samples      int     `toml:"samples"`
}

// ThemeConfig holds hex colors for the ring bands.
type ThemeConfig struct {
	Track  string `toml:"track"`
	Played string `toml:"played"`
	Marker string `toml:"marker"`
}

// Default returns a Config populated with the library defaults.
func Default() *Config {
	r := ringbar.DefaultRing()
	return &Config{
		Ring: RingConfig{
			Size:         r.Size,
			CornerRadius: r.CornerRadius,
			BarWidth:     r.BarWidth,
			Samples:      ringbar.DefaultSamples,
		},
		Theme: ThemeConfig{
			Track:  "#343446",
			Played: "#7aa2f7",
			Marker: "#f2f3f7",
		},
	}
}

// ApplyDefaults fills in zero values with the library defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Ring.Size == 0 {
		c.Ring.Size = d.Ring.Size
	}
	if c.Ring.CornerRadius == 0 {
		c.Ring.CornerRadius = d.Ring.CornerRadius
	}
	if c.Ring.BarWidth == 0 {
		c.Ring.BarWidth = d.Ring.BarWidth
	}
	if c.Ring.Samples == 0 {
		c.Ring.Samples = d.Ring.Samples
	}

	if c.Theme.Track == "" {
		c.Theme.Track = d.Theme.Track
	}
	if c.Theme.Played == "" {
		c.Theme.Played = d.Theme.Played
	}
	if c.Theme.Marker == "" {
		c.Theme.Marker = d.Theme.Marker
	}
}

// Ring converts the shape settings to a ringbar.Ring.
func (c RingConfig) Ring() ringbar.Ring {
	return ringbar.Ring{
		Size:         c.Size,
		CornerRadius: c.CornerRadius,
		BarWidth:     c.BarWidth,
	}
}

// Load reads configuration from standard locations.
// Search order: $RINGDEMO_CONFIG, $XDG_CONFIG_HOME/ringdemo/config.toml,
// ~/.config/ringdemo/config.toml. A missing file yields the defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	if p := os.Getenv("RINGDEMO_CONFIG"); p != "" {
		return p
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}

	p := filepath.Join(xdgConfig, "ringdemo", "config.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
