package config

import (
	"image/color"
	"time"

	"github.com/iburimskiy/pie-chart/internal/chart"
)

const (
	WindowWidth  = 480
	WindowHeight = 800
	WindowTitle  = "Pie Chart - Esc/Q: Quit"

	// Chart square, centered in the window
	ChartSize    = 360
	HoleFraction = 0.5

	// Animation parameters
	SweepDuration = 1000 * time.Millisecond

	// Labels
	LabelFontSize = 20

	// Snapshot output
	SnapshotSize = 600
)

var (
	LabelColor       = color.RGBA{A: 255}
	BackgroundTop    = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	BackgroundBottom = color.RGBA{R: 226, G: 230, B: 240, A: 255}
)

// DemoSlices is the chart data shown by the app.
func DemoSlices() []chart.Slice {
	return []chart.Slice{
		{Value: 25, Color: color.RGBA{R: 255, A: 255}, Label: "Red"},
		{Value: 15, Color: color.RGBA{G: 255, A: 255}, Label: "Green"},
		{Value: 35, Color: color.RGBA{B: 255, A: 255}, Label: "Blue"},
		{Value: 20, Color: color.RGBA{R: 255, B: 255, A: 255}, Label: "Magenta"},
		{Value: 25, Color: color.RGBA{R: 255, G: 255, A: 255}, Label: "Yellow"},
	}
}

// DemoSpec returns the demo data drawn in mode.
func DemoSpec(mode chart.Mode) chart.Spec {
	spec := chart.Spec{Slices: DemoSlices()}
	if mode == chart.ModeRing {
		spec.HoleFraction = HoleFraction
	}
	return spec
}
