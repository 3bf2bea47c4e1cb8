// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/figure"
)

// Presentation errors.
var (
	// ErrPresenterClosed is returned when operations are attempted on a closed presenter.
	ErrPresenterClosed = errors.New("hostview: presenter is closed")

	// ErrInvalidDimensions is returned when an uploaded frame is empty.
	ErrInvalidDimensions = errors.New("hostview: invalid dimensions")

	// ErrNoFrame is returned by Present before the first Upload.
	ErrNoFrame = errors.New("hostview: no frame uploaded")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("hostview: draw context must provide a gpucontext.TextureCreator")
)

// textureDestroyer matches gogpu textures that own GPU memory.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads view frames to a GPU texture and draws the texture.
// The texture is created lazily on the first Present; later frames update
// it in place until the frame size changes.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	texture     gpucontext.Texture
	oldTexture  gpucontext.Texture // replaced texture awaiting destruction
	data        []byte
	width       int
	height      int
	dirty       bool
	sizeChanged bool
	closed      bool
}

// NewPresenter creates a presenter without a texture.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Upload records pm as the frame for the next Present. The pixel data is
// not copied; pm must not be drawn to until Present returns.
func (p *Presenter) Upload(pm *figure.Pixmap) error {
	if p.closed {
		return ErrPresenterClosed
	}
	w, h := pm.Width(), pm.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	if p.data != nil && (w != p.width || h != p.height) {
		p.sizeChanged = true
	}
	p.width, p.height = w, h
	p.data = pm.Data()
	p.dirty = true
	return nil
}

// IsDirty reports whether an uploaded frame has not been presented yet.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Size returns the dimensions of the last uploaded frame.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Texture returns the current texture, or nil before the first Present.
func (p *Presenter) Texture() gpucontext.Texture {
	return p.texture
}

// Present brings the texture up to date with the last frame and draws it
// with its top-left corner at (x, y).
func (p *Presenter) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if p.data == nil {
		return ErrNoFrame
	}

	// The old texture may still be referenced by in-flight command buffers.
	// It is destroyed once the replacement upload has waited for the GPU.
	if p.sizeChanged {
		if p.texture != nil {
			destroy(p.oldTexture)
			p.oldTexture = p.texture
			p.texture = nil
		}
		p.sizeChanged = false
	}

	switch {
	case p.texture == nil:
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(p.width, p.height, p.data)
		if err != nil {
			return fmt.Errorf("hostview: texture creation failed: %w", err)
		}
		// Pixmap data is premultiplied alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		p.texture = tex
		destroy(p.oldTexture)
		p.oldTexture = nil
	case p.dirty:
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.data); err != nil {
				return fmt.Errorf("hostview: texture update failed: %w", err)
			}
		}
	}
	p.dirty = false

	if err := dc.DrawTexture(p.texture, x, y); err != nil {
		figure.Logger().Warn("hostview: draw texture failed", "err", err)
		return err
	}
	return nil
}

// Close releases the textures. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	destroy(p.oldTexture)
	destroy(p.texture)
	p.oldTexture, p.texture, p.data = nil, nil, nil
	return nil
}

func destroy(t gpucontext.Texture) {
	if d, ok := t.(textureDestroyer); ok {
		d.Destroy()
	}
}
