package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pie-chart/internal/chart"
	"github.com/iburimskiy/pie-chart/internal/config"
)

const tick = time.Second / 60

func sweepsOf(segs []chart.ArcSegment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.SweepAngle
	}
	return out
}

func TestGameEntranceAnimation(t *testing.T) {
	g, err := New(config.DemoSpec(chart.ModeRing), nil)
	require.NoError(t, err)

	segs, err := g.segments()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, sweepsOf(segs))

	g.step(config.SweepDuration / 2)
	segs, err = g.segments()
	require.NoError(t, err)
	for i, s := range segs {
		assert.Greater(t, s.SweepAngle, 0.0, "slice %d", i)
	}
	assert.False(t, g.settled)

	for i := 0; i < 60; i++ {
		g.step(tick)
	}
	assert.True(t, g.settled)
	segs, err = g.segments()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{75, 45, 105, 60, 75}, sweepsOf(segs), 1e-9)
	assert.Equal(t, chart.StartAngle, segs[0].StartAngle)
}

func TestGameSetSpec(t *testing.T) {
	g, err := New(config.DemoSpec(chart.ModePie), nil)
	require.NoError(t, err)
	g.step(2 * config.SweepDuration)
	require.True(t, g.settled)

	spec := chart.Spec{Slices: []chart.Slice{
		{Value: 1, Color: color.Black, Label: "a"},
		{Value: 1, Color: color.White, Label: "b"},
	}}
	require.NoError(t, g.SetSpec(spec))
	assert.False(t, g.settled)

	g.step(2 * config.SweepDuration)
	segs, err := g.segments()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{180, 180}, sweepsOf(segs), 1e-9)
}

func TestGameRejectsInvalidSpec(t *testing.T) {
	_, err := New(chart.Spec{}, nil)
	assert.ErrorIs(t, err, chart.ErrInvalidSpec)

	g, err := New(config.DemoSpec(chart.ModeRing), nil)
	require.NoError(t, err)
	err = g.SetSpec(chart.Spec{Slices: []chart.Slice{{Value: -1}}})
	assert.ErrorIs(t, err, chart.ErrInvalidSpec)
	assert.Len(t, g.spec.Slices, 5, "previous data kept")
}

func TestGameClearsLayoutError(t *testing.T) {
	g, err := New(config.DemoSpec(chart.ModeRing), nil)
	require.NoError(t, err)

	// Out-of-range sizes fail the layout until they are corrected.
	g.size = chart.Size{}
	_, _, ok := g.chartLayout()
	assert.False(t, ok)
	require.ErrorIs(t, g.lastErr, chart.ErrInvalidSpec)

	g.size = chart.Size{Width: config.ChartSize, Height: config.ChartSize}
	_, segs, ok := g.chartLayout()
	assert.True(t, ok)
	assert.Len(t, segs, 5)
	assert.NoError(t, g.lastErr)

	g.lastErr = chart.ErrInvalidSpec
	require.NoError(t, g.SetSpec(config.DemoSpec(chart.ModePie)))
	assert.NoError(t, g.lastErr)
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 100, B: 0, A: 255}
	assert.Equal(t, a, lerpColor(a, b, 0))
	assert.Equal(t, b, lerpColor(a, b, 1))
	assert.Equal(t, color.RGBA{R: 50, G: 100, B: 100, A: 255}, lerpColor(a, b, 0.5))
	assert.Equal(t, b, lerpColor(a, b, 3))
}
