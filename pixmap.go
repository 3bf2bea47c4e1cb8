package figure

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is the drawing surface of a render pass: a rectangular RGBA pixel
// buffer with its origin at the top-left corner.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions produce an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// Image returns the backing image. Drawing to it draws to the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// Resize reallocates the pixmap if the dimensions changed.
// The content is cleared when a reallocation happens.
func (p *Pixmap) Resize(width, height int) {
	if p.Width() == width && p.Height() == height {
		return
	}
	p.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// SubImage returns the part of the pixmap inside r, sharing pixels.
func (p *Pixmap) SubImage(r image.Rectangle) *image.RGBA {
	return p.img.SubImage(r).(*image.RGBA)
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single pixel.
// Pixels outside the pixmap are transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	p.Fill(p.img.Rect, c)
}

// Fill replaces the pixels inside r with a color.
func (p *Pixmap) Fill(r image.Rectangle, c RGBA) {
	draw.Draw(p.img, r, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// Blit composites src over the pixmap with its top-left corner at pt.
func (p *Pixmap) Blit(src image.Image, pt image.Point) {
	b := src.Bounds()
	draw.Draw(p.img, image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, src, b.Min, draw.Over)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
