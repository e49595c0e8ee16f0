package snapshot

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

// ggCanvas adapts a gg context to render.Canvas. The first drawing error is
// kept and later commands are skipped.
type ggCanvas struct {
	dc  *gg.Context
	err error
}

func (c *ggCanvas) FillWedge(cx, cy, r, startDeg, sweepDeg float64, col color.Color) {
	if c.err != nil {
		return
	}
	a1, a2 := chart.Radians(startDeg), chart.Radians(startDeg+sweepDeg)

	c.dc.SetColor(col)
	c.dc.MoveTo(cx, cy)
	c.dc.LineTo(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	c.dc.DrawArc(cx, cy, r, a1, a2)
	c.dc.ClosePath()
	c.err = errors.Wrap(c.dc.Fill(), "fill wedge")
}

func (c *ggCanvas) StrokeArc(cx, cy, r, width, startDeg, sweepDeg float64, col color.Color) {
	if c.err != nil {
		return
	}
	a1, a2 := chart.Radians(startDeg), chart.Radians(startDeg+sweepDeg)

	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.MoveTo(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	c.dc.DrawArc(cx, cy, r, a1, a2)
	c.err = errors.Wrap(c.dc.Stroke(), "stroke arc")
}

func (c *ggCanvas) Text(s string, x, y float64, col color.Color) {
	if c.err != nil {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}
