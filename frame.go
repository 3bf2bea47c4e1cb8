package figure

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// frameTicks is the approximate number of labeled ticks per axis.
	frameTicks = 5

	// tickLength is the length of a tick mark in pixels.
	tickLength = 4

	// labelGap separates tick labels from the frame.
	labelGap = 3
)

// frameStyle configures the border and tick labels drawn around native axes.
type frameStyle struct {
	color     RGBA
	width     float64
	formatter *TickFormatter
	xLabels   LabelFunc
	yLabels   LabelFunc
	face      font.Face
}

func defaultFrameStyle() frameStyle {
	return frameStyle{
		color:     Black,
		width:     1,
		formatter: DefaultTickFormatter(),
		face:      basicfont.Face7x13,
	}
}

// drawFrame draws a border around content and labels the ticks of s
// outside it. Drawing is clipped to area.
func drawFrame[X, Y Number](dst *Pixmap, area, content image.Rectangle, s Snapshot[X, Y], st frameStyle) {
	r := newRasterizer(dst.Image(), area, content.Min)
	if r == nil {
		return
	}
	w, h := s.Viewport().Width, s.Viewport().Height
	r.stroke(stroke{
		pts:   []Point{Pt(0, 0), Pt(w, 0), Pt(w, h), Pt(0, h), Pt(0, 0)},
		color: st.color,
		width: st.width,
	})

	b := s.Bounds()
	m := s.Transform()
	xs, ys := b.X.NiceTicks(frameTicks), b.Y.NiceTicks(frameTicks)
	var marks []Point
	for _, x := range xs {
		p := m.TransformPoint(Pt(float64(x), float64(b.Y.Low())))
		marks = append(marks, p, p.Add(Pt(0, tickLength)), Pt(nanFloat, nanFloat))
	}
	for _, y := range ys {
		p := m.TransformPoint(Pt(float64(b.X.Low()), float64(y)))
		marks = append(marks, p, p.Sub(Pt(tickLength, 0)), Pt(nanFloat, nanFloat))
	}
	r.stroke(stroke{pts: marks, color: st.color, width: st.width})

	// Labels are placed in destination pixels rather than viewport pixels.
	toDst := offset(content.Min).Multiply(m)
	labels := dst.SubImage(area)
	ascent := st.face.Metrics().Ascent.Ceil()
	for _, x := range xs {
		text := tickLabel(st.xLabels, st.formatter, x)
		p := toDst.TransformPoint(Pt(float64(x), float64(b.Y.Low())))
		adv := font.MeasureString(st.face, text).Ceil()
		drawLabel(labels, st, text,
			int(p.X)-adv/2,
			content.Max.Y+tickLength+labelGap+ascent)
	}
	for _, y := range ys {
		text := tickLabel(st.yLabels, st.formatter, y)
		p := toDst.TransformPoint(Pt(float64(b.X.Low()), float64(y)))
		adv := font.MeasureString(st.face, text).Ceil()
		drawLabel(labels, st, text,
			content.Min.X-tickLength-labelGap-adv,
			int(p.Y)+ascent/2)
	}
}

// drawLabel draws text with its baseline origin at (x, y).
func drawLabel(dst *image.RGBA, st frameStyle, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(st.color.Color()),
		Face: st.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
