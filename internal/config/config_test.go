package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

func TestDemoSpec(t *testing.T) {
	ring := DemoSpec(chart.ModeRing)
	require.NoError(t, chart.Validate(ring))
	assert.Equal(t, chart.ModeRing, ring.Mode())

	pie := DemoSpec(chart.ModePie)
	require.NoError(t, chart.Validate(pie))
	assert.Equal(t, chart.ModePie, pie.Mode())

	sweeps, err := chart.Sweeps(pie)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{75, 45, 105, 60, 75}, sweeps, 1e-9)
}
