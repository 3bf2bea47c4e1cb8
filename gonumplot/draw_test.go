package gonumplot

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	vgdraw "gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/figure"
)

type fixture struct {
	plot *figure.Plot
	axes *figure.Axes[float64, float64]
	dst  *figure.Pixmap
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	b, err := figure.NewAxesBounds(0.0, 100.0, 0.0, 100.0)
	require.NoError(t, err)
	a, err := figure.NewAxes(b, figure.Sz(100.0, 100.0))
	require.NoError(t, err)
	p := figure.NewPlot(figure.WithMargins(figure.Margins{}), figure.WithBackground(figure.Transparent))
	return fixture{plot: p, axes: a, dst: figure.NewPixmap(100, 100)}
}

func TestNewDrawsAlignedLine(t *testing.T) {
	f := newFixture(t)
	line := figure.LineBetween(figure.P2(-50.0, 50.0), figure.P2(150.0, 50.0)).WithColor(figure.Red).WithWidth(2)

	var built *plot.Plot
	figure.AddAxesDelegated(f.plot, f.axes, New(func(p *plot.Plot, _ figure.Snapshot[float64, float64]) error {
		built = p
		return AddLines(p, line)
	}))
	require.NoError(t, f.plot.Render(f.dst))

	// Data y=50 is the middle row of the viewport.
	assert.Positive(t, f.dst.GetPixel(50, 49).A)
	assert.Positive(t, f.dst.GetPixel(50, 50).A)
	assert.Zero(t, f.dst.GetPixel(50, 10).A)
	assert.Zero(t, f.dst.GetPixel(50, 90).A)

	// Axis limits follow the snapshot, not the data.
	require.NotNil(t, built)
	assert.Equal(t, 0.0, built.X.Min)
	assert.Equal(t, 100.0, built.X.Max)
	assert.Equal(t, 0.0, built.Y.Min)
	assert.Equal(t, 100.0, built.Y.Max)
}

func TestNewFollowsZoom(t *testing.T) {
	f := newFixture(t)
	var got figure.AxesBounds[float64, float64]
	var built *plot.Plot
	figure.AddAxesDelegated(f.plot, f.axes, New(func(p *plot.Plot, s figure.Snapshot[float64, float64]) error {
		got = s.Bounds()
		built = p
		return nil
	}))
	require.NoError(t, f.axes.Zoom(figure.Pt(50, 50), 0.5))
	require.NoError(t, f.plot.Render(f.dst))
	assert.InDelta(t, 25.0, got.X.Low(), 1e-9)
	assert.InDelta(t, 75.0, built.X.Max, 1e-9)
}

func TestNewBuilderError(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("no data")
	figure.AddAxesDelegated(f.plot, f.axes, New(func(*plot.Plot, figure.Snapshot[float64, float64]) error {
		return cause
	}))
	err := f.plot.Render(f.dst)
	assert.ErrorIs(t, err, figure.ErrRendererDraw)
	assert.ErrorIs(t, err, cause)
}

func TestNewEmptyContentSkipsBuild(t *testing.T) {
	dst := figure.NewPixmap(10, 10)
	called := false
	fn := New(func(*plot.Plot, figure.Snapshot[float64, float64]) error {
		called = true
		return nil
	})
	err := fn(figure.NewDrawArea(dst, dst.Bounds(), image.Rectangle{}), figure.Snapshot[float64, float64]{})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWithBackgroundFillsContent(t *testing.T) {
	dst := figure.NewPixmap(20, 20)
	b, err := figure.NewAxesBounds(0.0, 1.0, 0.0, 1.0)
	require.NoError(t, err)
	a, err := figure.NewAxes(b, figure.Sz(10.0, 10.0))
	require.NoError(t, err)

	fn := New(func(*plot.Plot, figure.Snapshot[float64, float64]) error { return nil }, WithBackground(figure.Blue), WithBackground(nil))
	require.NoError(t, fn(figure.NewDrawArea(dst, dst.Bounds(), image.Rect(5, 5, 15, 15)), a.Snapshot()))
	assert.Equal(t, figure.Blue, dst.GetPixel(5, 5))
	assert.Equal(t, figure.Blue, dst.GetPixel(14, 14))
	assert.Equal(t, figure.Transparent, dst.GetPixel(4, 4))
	assert.Equal(t, figure.Transparent, dst.GetPixel(15, 15))
}

func TestConfigPlot(t *testing.T) {
	cfg := defaultConfig()
	p := cfg.newPlot()
	assert.Zero(t, p.X.Padding)
	assert.Zero(t, p.Y.Width)

	for _, opt := range []Option{WithAxes(true), WithTitle("prices")} {
		opt(&cfg)
	}
	p = cfg.newPlot()
	assert.Equal(t, "prices", p.Title.Text)
	assert.Positive(t, float64(p.X.Width))
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 3.0, Length(3).Points(), 1e-12)
}

func TestXYs(t *testing.T) {
	xys := XYs([]figure.Point2[int, float32]{figure.P2(1, float32(2.5)), figure.P2(-3, float32(0))})
	require.Len(t, xys, 2)
	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 2.5, xys[0].Y)
	assert.Equal(t, -3.0, xys[1].X)
}

func TestNewLineErrors(t *testing.T) {
	_, err := NewLine(figure.NewLine[float64, float64]().Add(figure.P2(1.0, 1.0)))
	assert.Error(t, err)

	p := plot.New()
	err = AddLines(p, figure.LineBetween(figure.P2(0.0, 0.0), figure.P2(1.0, 1.0)), figure.NewLine[float64, float64]())
	assert.ErrorContains(t, err, "line 1")

	gl, err := NewLine(figure.LineBetween(figure.P2(0.0, 0.0), figure.P2(1.0, 1.0)).WithColor(figure.Green).WithWidth(3))
	require.NoError(t, err)
	assert.Equal(t, figure.Green, gl.LineStyle.Color)
	assert.InDelta(t, 3.0, gl.LineStyle.Width.Points(), 1e-12)
}

func TestNewScatterStyles(t *testing.T) {
	m := figure.NewMarkers(
		figure.NewMarker(figure.P2(1.0, 1.0), 4),
		figure.NewMarker(figure.P2(2.0, 2.0), 4).WithShape(figure.MarkerSquare).WithColor(figure.Red),
		figure.NewMarker(figure.P2(3.0, 3.0), 4).WithShape(figure.MarkerTriangleDown),
	)
	s, err := NewScatter(m)
	require.NoError(t, err)
	require.NotNil(t, s.GlyphStyleFunc)

	assert.IsType(t, vgdraw.CircleGlyph{}, s.GlyphStyleFunc(0).Shape)
	sq := s.GlyphStyleFunc(1)
	assert.IsType(t, vgdraw.BoxGlyph{}, sq.Shape)
	assert.InDelta(t, 2.0, sq.Radius.Points(), 1e-12)
	assert.Equal(t, figure.Red, sq.Color)
	assert.Equal(t, triangleGlyph{}, s.GlyphStyleFunc(2).Shape)

	p := plot.New()
	require.NoError(t, AddMarkers(p, figure.NewMarkers[float64, float64]()))
	require.NoError(t, AddMarkers(p, m))
}

func TestScatterRendersTriangles(t *testing.T) {
	f := newFixture(t)
	m := figure.NewMarkers(
		figure.NewMarker(figure.P2(25.0, 50.0), 6).WithShape(figure.MarkerTriangleUp),
		figure.NewMarker(figure.P2(75.0, 50.0), 6).WithShape(figure.MarkerTriangleDown),
	)
	figure.AddAxesDelegated(f.plot, f.axes, New(func(p *plot.Plot, _ figure.Snapshot[float64, float64]) error {
		return AddMarkers(p, m)
	}))
	require.NoError(t, f.plot.Render(f.dst))

	drawn := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if f.dst.GetPixel(x, y).A > 0 {
				drawn++
			}
		}
	}
	assert.Positive(t, drawn)
	assert.Zero(t, f.dst.GetPixel(50, 5).A)
}
