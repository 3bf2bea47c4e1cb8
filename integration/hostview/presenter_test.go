// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/figure"
)

// mockTexture implements the texture interfaces for testing.
type mockTexture struct {
	width     int
	height    int
	data      []byte
	updated   int
	destroyed bool
	premul    bool
}

func (m *mockTexture) Width() int               { return m.width }
func (m *mockTexture) Height() int              { return m.height }
func (m *mockTexture) Destroy()                 { m.destroyed = true }
func (m *mockTexture) SetPremultiplied(pm bool) { m.premul = pm }

func (m *mockTexture) UpdateData(data []byte) error {
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	x, y      float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn, m.x, m.y = tex, x, y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func newMockDrawer() *mockDrawer {
	return &mockDrawer{creator: &mockCreator{}}
}

func TestPresenterCreatesTextureLazily(t *testing.T) {
	p := NewPresenter()
	defer p.Close()
	dc := newMockDrawer()

	assert.ErrorIs(t, p.Present(dc, 0, 0), ErrNoFrame)
	assert.Nil(t, p.Texture())

	pm := figure.NewPixmap(4, 3)
	pm.Clear(figure.Red)
	require.NoError(t, p.Upload(pm))
	assert.True(t, p.IsDirty())
	w, h := p.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	require.NoError(t, p.Present(dc, 10, 20))
	require.Len(t, dc.creator.textures, 1)
	tex := dc.creator.textures[0]
	assert.Equal(t, 4, tex.width)
	assert.Equal(t, pm.Data(), tex.data)
	assert.True(t, tex.premul)
	assert.False(t, p.IsDirty())

	assert.Equal(t, 1, dc.drawCount)
	assert.Same(t, tex, dc.drawn)
	assert.Equal(t, float32(10), dc.x)
	assert.Equal(t, float32(20), dc.y)
}

func TestPresenterUpdatesInPlace(t *testing.T) {
	p := NewPresenter()
	defer p.Close()
	dc := newMockDrawer()
	pm := figure.NewPixmap(2, 2)

	require.NoError(t, p.Upload(pm))
	require.NoError(t, p.Present(dc, 0, 0))
	tex := dc.creator.textures[0]

	// Presenting without a new frame redraws without uploading.
	require.NoError(t, p.Present(dc, 0, 0))
	assert.Equal(t, 0, tex.updated)

	pm.Clear(figure.Blue)
	require.NoError(t, p.Upload(pm))
	require.NoError(t, p.Present(dc, 0, 0))
	assert.Equal(t, 1, tex.updated)
	assert.Equal(t, pm.Data(), tex.data)
	assert.Len(t, dc.creator.textures, 1)
	assert.Equal(t, 3, dc.drawCount)
}

func TestPresenterRecreatesOnResize(t *testing.T) {
	p := NewPresenter()
	defer p.Close()
	dc := newMockDrawer()

	require.NoError(t, p.Upload(figure.NewPixmap(2, 2)))
	require.NoError(t, p.Present(dc, 0, 0))
	first := dc.creator.textures[0]

	require.NoError(t, p.Upload(figure.NewPixmap(5, 4)))
	require.NoError(t, p.Present(dc, 0, 0))
	require.Len(t, dc.creator.textures, 2)
	second := dc.creator.textures[1]
	assert.True(t, first.destroyed)
	assert.False(t, second.destroyed)
	assert.Equal(t, 5, second.width)
	assert.Equal(t, 4, second.height)
	assert.Same(t, second, p.Texture())
}

func TestPresenterErrors(t *testing.T) {
	p := NewPresenter()
	assert.ErrorIs(t, p.Upload(figure.NewPixmap(0, 3)), ErrInvalidDimensions)

	require.NoError(t, p.Upload(figure.NewPixmap(2, 2)))
	assert.ErrorIs(t, p.Present(&mockDrawer{}, 0, 0), ErrInvalidRenderer)

	dc := newMockDrawer()
	dc.creator.failNext = true
	assert.ErrorContains(t, p.Present(dc, 0, 0), "texture creation failed")
	assert.Equal(t, 0, dc.drawCount)

	// The next frame retries the creation.
	require.NoError(t, p.Present(dc, 0, 0))
	assert.Len(t, dc.creator.textures, 1)
}

func TestPresenterClose(t *testing.T) {
	p := NewPresenter()
	dc := newMockDrawer()
	require.NoError(t, p.Upload(figure.NewPixmap(2, 2)))
	require.NoError(t, p.Present(dc, 0, 0))

	require.NoError(t, p.Close())
	assert.True(t, dc.creator.textures[0].destroyed)
	assert.Nil(t, p.Texture())
	require.NoError(t, p.Close())

	assert.ErrorIs(t, p.Upload(figure.NewPixmap(2, 2)), ErrPresenterClosed)
	assert.ErrorIs(t, p.Present(dc, 0, 0), ErrPresenterClosed)
}
