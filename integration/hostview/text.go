// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/figure"
)

// textPad is the distance between overlay text and the view edges.
const textPad = 4

var face font.Face = basicfont.Face7x13

// drawText draws s with its top-left corner at pt.
func drawText(dst *image.RGBA, s string, pt image.Point, c figure.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawCentered draws s centered in r.
func drawCentered(dst *image.RGBA, s string, r image.Rectangle, c figure.RGBA) {
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	drawText(dst, s, image.Pt(r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2), c)
}
