package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

type recorder struct {
	ops []string
}

func (r *recorder) FillWedge(cx, cy, rad, start, sweep float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("wedge %.0f,%.0f r=%.0f %.0f+%.0f", cx, cy, rad, start, sweep))
}

func (r *recorder) StrokeArc(cx, cy, rad, width, start, sweep float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("arc %.0f,%.0f r=%.0f w=%.0f %.0f+%.0f", cx, cy, rad, width, start, sweep))
}

func (r *recorder) Text(s string, x, y float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %s %.0f,%.0f", s, x, y))
}

func layout(t *testing.T, hole float64, sweeps []float64) (chart.Frame, []chart.ArcSegment) {
	t.Helper()
	spec := chart.Spec{
		Slices: []chart.Slice{
			{Value: 1, Color: color.RGBA{R: 255, A: 255}, Label: "A"},
			{Value: 3, Color: color.RGBA{B: 255, A: 255}, Label: "B"},
		},
		HoleFraction: hole,
	}
	size := chart.Size{Width: 200, Height: 200}
	f, err := chart.NewFrame(size, hole)
	require.NoError(t, err)
	segs, err := chart.Arrange(spec, sweeps, size)
	require.NoError(t, err)
	return f, segs
}

func TestDrawRing(t *testing.T) {
	f, segs := layout(t, 0.5, []float64{90, 270})
	r := &recorder{}
	Draw(r, f, segs, color.Black)

	assert.Equal(t, []string{
		"arc 100,100 r=75 w=50 -90+90",
		"arc 100,100 r=75 w=50 0+270",
		"text A 153,47",
		"text B 47,153",
	}, r.ops)
}

func TestDrawPie(t *testing.T) {
	f, segs := layout(t, 0, []float64{90, 270})
	r := &recorder{}
	Draw(r, f, segs, color.Black)

	require.Len(t, r.ops, 4)
	assert.Equal(t, "wedge 100,100 r=100 -90+90", r.ops[0])
	assert.Equal(t, "wedge 100,100 r=100 0+270", r.ops[1])
}

func TestDrawSkipsEmptySegments(t *testing.T) {
	f, segs := layout(t, 0.5, []float64{0, 30})
	r := &recorder{}
	Draw(r, f, segs, color.Black)

	assert.Equal(t, []string{
		"arc 100,100 r=75 w=50 -90+30",
		"text B 119,28",
	}, r.ops)
}
