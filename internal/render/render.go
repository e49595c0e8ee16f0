// Package render turns a chart layout into drawing commands.
package render

import (
	"image/color"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

// Canvas is a 2D drawing surface. Angles are in degrees, measured clockwise
// from 3 o'clock in screen coordinates.
type Canvas interface {
	// FillWedge fills the sector of the circle at (cx, cy) with radius r.
	FillWedge(cx, cy, r, startDeg, sweepDeg float64, c color.Color)
	// StrokeArc strokes an arc of radius r with the given line width.
	StrokeArc(cx, cy, r, width, startDeg, sweepDeg float64, c color.Color)
	// Text draws s centered on (x, y).
	Text(s string, x, y float64, c color.Color)
}

// Draw paints segs into f. Rings are stroked through the middle of the band
// so the stroke stays between the hole and the outer radius; pies are filled
// wedges. Labels of empty segments are skipped.
func Draw(c Canvas, f chart.Frame, segs []chart.ArcSegment, labelColor color.Color) {
	for _, seg := range segs {
		if seg.SweepAngle <= 0 {
			continue
		}
		col := seg.Color
		if col == nil {
			col = color.Black
		}
		if f.Ring() {
			mid := (f.InnerRadius + f.OuterRadius) / 2
			c.StrokeArc(f.Center.X, f.Center.Y, mid, f.RingWidth(), seg.StartAngle, seg.SweepAngle, col)
		} else {
			c.FillWedge(f.Center.X, f.Center.Y, f.OuterRadius, seg.StartAngle, seg.SweepAngle, col)
		}
	}

	// Labels go on top of every arc.
	for _, seg := range segs {
		if seg.SweepAngle <= 0 || seg.Label == "" {
			continue
		}
		c.Text(seg.Label, seg.LabelAnchor.X, seg.LabelAnchor.Y, labelColor)
	}
}
