// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"os"
	"strconv"

	"github.com/gogpu/figure"
)

// HUDEnvVar is the environment variable that turns on the GPU performance
// overlay of the host window layer. The view also shows its FPS counter
// when it is set.
const HUDEnvVar = "MTL_HUD_ENABLED"

const (
	// DefaultPixelScrollRate converts precise scroll pixels to zoom distance.
	DefaultPixelScrollRate = 1.0 / 100

	// DefaultLineScrollRate converts wheel lines to zoom distance.
	DefaultLineScrollRate = 1.0 / 10

	// titleHeight is the band reserved above the plots for the figure name.
	titleHeight = 20
)

// Option configures a View during creation.
type Option func(*config)

type config struct {
	pixelRate  float64
	lineRate   float64
	title      bool
	fps        bool
	hud        bool
	background figure.RGBA
	textColor  figure.RGBA
}

func defaultConfig() config {
	return config{
		pixelRate:  DefaultPixelScrollRate,
		lineRate:   DefaultLineScrollRate,
		title:      true,
		background: figure.White,
		textColor:  figure.Black,
	}
}

// WithScrollRates sets the factors converting scroll deltas to zoom
// distance. Non-positive rates keep the defaults.
func WithScrollRates(pixelRate, lineRate float64) Option {
	return func(c *config) {
		if pixelRate > 0 {
			c.pixelRate = pixelRate
		}
		if lineRate > 0 {
			c.lineRate = lineRate
		}
	}
}

// WithTitle shows or hides the figure name above the plots. Shown by default.
func WithTitle(enabled bool) Option {
	return func(c *config) {
		c.title = enabled
	}
}

// WithFPS shows a frames-per-second counter in the top-left corner.
func WithFPS(enabled bool) Option {
	return func(c *config) {
		c.fps = enabled
	}
}

// WithPerformanceOverlay requests the GPU performance overlay of the host
// window layer and shows the FPS counter.
func WithPerformanceOverlay(enabled bool) Option {
	return func(c *config) {
		c.hud = enabled
		if enabled {
			c.fps = true
		}
	}
}

// WithBackground sets the color the view is cleared to before each frame.
func WithBackground(bg figure.RGBA) Option {
	return func(c *config) {
		c.background = bg
	}
}

// WithTextColor sets the color of the title and the FPS counter.
func WithTextColor(fg figure.RGBA) Option {
	return func(c *config) {
		c.textColor = fg
	}
}

// OptionsFromEnv returns the options selected by the environment.
func OptionsFromEnv() []Option {
	return optionsFromLookup(os.LookupEnv)
}

func optionsFromLookup(lookup func(string) (string, bool)) []Option {
	var opts []Option
	if v, ok := lookup(HUDEnvVar); ok && envEnabled(v) {
		opts = append(opts, WithPerformanceOverlay(true))
	}
	return opts
}

// envEnabled reports whether v reads as a true boolean or a non-zero number.
func envEnabled(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	n, err := strconv.Atoi(v)
	return err == nil && n != 0
}
