package figure

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigurePlotsInOrder(t *testing.T) {
	f := NewFigure("example")
	assert.Equal(t, "example", f.Name())
	f.SetName("renamed")
	assert.Equal(t, "renamed", f.Name())

	p1 := f.AddPlot(WithName("one"))
	p2 := f.AddPlot(WithName("two"))
	plots := f.Plots()
	require.Len(t, plots, 2)
	assert.Same(t, p1, plots[0])
	assert.Same(t, p2, plots[1])
	assert.Equal(t, "two", plots[1].Name())

	// The returned slice is a copy.
	plots[0] = nil
	assert.Same(t, p1, f.Plots()[0])
	assert.Equal(t, 2, f.Len())
}

func TestFigureConcurrentAddPlot(t *testing.T) {
	f := NewFigure("concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.AddPlot()
			_ = f.Plots()
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, f.Len())
}

func TestFigureLayoutStacksPlots(t *testing.T) {
	f := NewFigure("stack")
	top, bottom := newTestAxes(t), newTestAxes(t)
	AddAxes(f.AddPlot(WithMargins(Margins{})), top).Plot(NewLine[float64, float64]())
	AddAxes(f.AddPlot(WithMargins(Margins{})), bottom).Plot(NewLine[float64, float64]())

	require.NoError(t, f.Layout(image.Rect(0, 0, 100, 101)))
	plots := f.Plots()
	assert.Equal(t, image.Rect(0, 0, 100, 50), plots[0].Area())
	assert.Equal(t, image.Rect(0, 50, 100, 101), plots[1].Area())
	assert.Equal(t, Sz(100, 50), top.Snapshot().Viewport())
	assert.Equal(t, Sz(100, 51), bottom.Snapshot().Viewport())

	p, ok := f.PlotAt(image.Pt(10, 70))
	require.True(t, ok)
	assert.Same(t, plots[1], p)
	_, ok = f.PlotAt(image.Pt(200, 200))
	assert.False(t, ok)
}

func TestFigureLayoutErrors(t *testing.T) {
	assert.NoError(t, NewFigure("empty").Layout(image.Rect(0, 0, 0, 0)))

	f := NewFigure("small")
	f.AddPlot()
	f.AddPlot()
	assert.ErrorIs(t, f.Layout(image.Rect(0, 0, 10, 1)), ErrInvalidViewport)
}

func TestFigureRenderJoinsErrors(t *testing.T) {
	f := NewFigure("errors")
	a := newTestAxes(t)
	for i := 0; i < 2; i++ {
		AddAxesDelegated(f.AddPlot(), a, func(*DrawArea, Snapshot[float64, float64]) error {
			panic("down")
		})
	}
	err := f.Render(NewPixmap(100, 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRendererDraw)
	var de *DrawError
	assert.ErrorAs(t, err, &de)
}

func TestStackedRect(t *testing.T) {
	area := image.Rect(10, 20, 110, 50)
	assert.Equal(t, image.Rect(10, 20, 110, 30), StackedRect(area, 3, 0))
	assert.Equal(t, image.Rect(10, 30, 110, 40), StackedRect(area, 3, 1))
	assert.Equal(t, image.Rect(10, 40, 110, 50), StackedRect(area, 3, 2))
}
