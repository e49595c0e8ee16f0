package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

// screenCanvas draws chart commands onto an ebiten image, shifted by
// (offsetX, offsetY). Vertex buffers are reused across frames.
type screenCanvas struct {
	dst              *ebiten.Image
	face             text.Face
	offsetX, offsetY float64

	vs []ebiten.Vertex
	is []uint16
}

func (c *screenCanvas) FillWedge(cx, cy, r, startDeg, sweepDeg float64, col color.Color) {
	x, y := c.at(cx, cy)

	var p vector.Path
	p.MoveTo(x, y)
	p.Arc(x, y, float32(r), radians32(startDeg), radians32(startDeg+sweepDeg), vector.Clockwise)
	p.Close()

	c.vs, c.is = p.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.fill(col)
}

func (c *screenCanvas) StrokeArc(cx, cy, r, width, startDeg, sweepDeg float64, col color.Color) {
	x, y := c.at(cx, cy)

	var p vector.Path
	p.Arc(x, y, float32(r), radians32(startDeg), radians32(startDeg+sweepDeg), vector.Clockwise)

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapButt,
		LineJoin: vector.LineJoinBevel,
	}
	c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], op)
	c.fill(col)
}

func (c *screenCanvas) Text(s string, x, y float64, col color.Color) {
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+c.offsetX, y+c.offsetY)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face, op)
}

func (c *screenCanvas) fill(col color.Color) {
	r, g, b, a := vertexColor(col)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, op)
}

func (c *screenCanvas) at(x, y float64) (float32, float32) {
	return float32(x + c.offsetX), float32(y + c.offsetY)
}

func radians32(deg float64) float32 { return float32(chart.Radians(deg)) }
