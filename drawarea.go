package figure

import (
	"image"
	"image/draw"
)

// DrawArea is the drawing target handed to a delegated renderer.
//
// Rect is the whole plot area and Content is the axes viewport inside it,
// both in destination pixels. The snapshot passed with the area maps data
// to pixels relative to Content.Min.
type DrawArea struct {
	Rect    image.Rectangle
	Content image.Rectangle

	dst *Pixmap
}

// NewDrawArea creates an area over dst.
func NewDrawArea(dst *Pixmap, rect, content image.Rectangle) *DrawArea {
	return &DrawArea{Rect: rect, Content: content, dst: dst}
}

// Image returns the plot area of the destination. It shares pixels with
// the destination and its bounds are Rect.
func (a *DrawArea) Image() *image.RGBA {
	return a.dst.SubImage(a.Rect)
}

// ContentImage returns the axes viewport of the destination.
func (a *DrawArea) ContentImage() *image.RGBA {
	return a.dst.SubImage(a.Content)
}

// ContentSize returns the viewport size in pixels.
func (a *DrawArea) ContentSize() (width, height int) {
	return a.Content.Dx(), a.Content.Dy()
}

// Blit composites src over the content with its top-left corner at
// Content.Min. Pixels outside Content are dropped.
func (a *DrawArea) Blit(src image.Image) {
	a.blitAt(src, a.Content.Min, a.Content)
}

// BlitArea composites src over the plot area with its top-left corner at
// Rect.Min. Pixels outside Rect are dropped.
func (a *DrawArea) BlitArea(src image.Image) {
	a.blitAt(src, a.Rect.Min, a.Rect)
}

func (a *DrawArea) blitAt(src image.Image, at image.Point, clip image.Rectangle) {
	b := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}.Intersect(clip)
	if r.Empty() {
		return
	}
	draw.Draw(a.dst.Image(), r, src, b.Min.Add(r.Min.Sub(at)), draw.Over)
}
