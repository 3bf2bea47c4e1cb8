// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import "github.com/gogpu/figure"

// Modifiers is the set of keyboard modifiers held during an event.
type Modifiers uint8

// Modifier keys.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether every modifier in o is held.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

// ScrollDelta is the distance of one scroll event. Precise devices such as
// touchpads report pixels; mouse wheels report lines.
type ScrollDelta struct {
	X, Y  float64
	Lines bool
}

// PixelDelta returns a scroll distance in pixels.
func PixelDelta(x, y float64) ScrollDelta {
	return ScrollDelta{X: x, Y: y}
}

// LineDelta returns a scroll distance in wheel lines.
func LineDelta(x, y float64) ScrollDelta {
	return ScrollDelta{X: x, Y: y, Lines: true}
}

// zoomFactor converts a scroll event to a uniform zoom factor.
// Swiping down on a touchpad zooms in; rolling a wheel up zooms in.
func (c config) zoomFactor(d ScrollDelta) float64 {
	if d.Lines {
		return figure.ZoomFactorForScroll(-d.Y, c.lineRate)
	}
	return figure.ZoomFactorForScroll(d.Y, c.pixelRate)
}

// zoomAxes splits a uniform factor by the held modifiers. Shift restricts
// the zoom to the x axis and Alt to the y axis.
func zoomAxes(factor float64, mods Modifiers) (fx, fy float64) {
	switch {
	case mods.Has(ModShift) && !mods.Has(ModAlt):
		return factor, 1
	case mods.Has(ModAlt) && !mods.Has(ModShift):
		return 1, factor
	default:
		return factor, factor
	}
}
