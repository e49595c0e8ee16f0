// Package chart lays out circular proportion charts.
//
// Slices are placed clockwise (in screen coordinates, y down) starting at
// 12 o'clock, in input order, with no gaps. Angles are in degrees.
package chart

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// StartAngle is the angle the first slice begins at.
const StartAngle = -90.0

// PieLabelFraction is the label radius, as a fraction of the outer radius,
// used when the chart has no hole.
const PieLabelFraction = 0.7

// ErrInvalidSpec is returned for input that has no well-defined layout.
var ErrInvalidSpec = errors.New("invalid chart spec")

// Slice is one proportional segment of the chart.
type Slice struct {
	Value float64
	Color color.Color
	Label string
}

// Spec is an ordered set of slices plus the ring hole size.
// HoleFraction 0 draws a filled pie; anything in (0,1) draws a ring whose
// inner radius is HoleFraction times the outer radius.
type Spec struct {
	Slices       []Slice
	HoleFraction float64
}

// Mode reports whether s draws a pie or a ring.
func (s Spec) Mode() Mode {
	if s.HoleFraction > 0 {
		return ModeRing
	}
	return ModePie
}

type Size struct {
	Width, Height float64
}

type Point struct {
	X, Y float64
}

// ArcSegment is the drawable form of one slice.
type ArcSegment struct {
	StartAngle  float64
	SweepAngle  float64
	Color       color.Color
	Label       string
	LabelAnchor Point
}

// EndAngle returns StartAngle+SweepAngle.
func (a ArcSegment) EndAngle() float64 { return a.StartAngle + a.SweepAngle }

// MidAngle is the angular midpoint, where the label sits.
func (a ArcSegment) MidAngle() float64 { return a.StartAngle + a.SweepAngle/2 }

// Validate checks that spec has a well-defined layout. Negative values are
// rejected rather than clamped.
func Validate(spec Spec) error {
	if len(spec.Slices) == 0 {
		return errors.Wrap(ErrInvalidSpec, "no slices")
	}
	if math.IsNaN(spec.HoleFraction) || spec.HoleFraction < 0 || spec.HoleFraction >= 1 {
		return errors.Wrapf(ErrInvalidSpec, "hole fraction %v outside [0,1)", spec.HoleFraction)
	}
	total := 0.0
	for i, s := range spec.Slices {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			return errors.Wrapf(ErrInvalidSpec, "slice %d (%q) has non-finite value", i, s.Label)
		}
		if s.Value < 0 {
			return errors.Wrapf(ErrInvalidSpec, "slice %d (%q) has negative value %v", i, s.Label, s.Value)
		}
		total += s.Value
	}
	if math.IsInf(total, 0) {
		return errors.Wrap(ErrInvalidSpec, "total value overflows")
	}
	if total <= 0 {
		return errors.Wrapf(ErrInvalidSpec, "total value %v is not positive", total)
	}
	return nil
}

// Sweeps returns the target sweep angle of every slice, value/total*360.
func Sweeps(spec Spec) ([]float64, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}
	total := 0.0
	for _, s := range spec.Slices {
		total += s.Value
	}
	sweeps := make([]float64, len(spec.Slices))
	for i, s := range spec.Slices {
		sweeps[i] = s.Value / total * 360
	}
	return sweeps, nil
}

// ComputeLayout lays out spec at its final, fully grown sweep angles.
func ComputeLayout(spec Spec, size Size) ([]ArcSegment, error) {
	sweeps, err := Sweeps(spec)
	if err != nil {
		return nil, err
	}
	return Arrange(spec, sweeps, size)
}

// Arrange places the given sweeps one after another starting at StartAngle.
// The sweeps need not add up to 360; the animation path passes partially
// grown values here every frame.
func Arrange(spec Spec, sweeps []float64, size Size) ([]ArcSegment, error) {
	if len(sweeps) != len(spec.Slices) {
		return nil, errors.Wrapf(ErrInvalidSpec, "%d sweeps for %d slices", len(sweeps), len(spec.Slices))
	}
	frame, err := NewFrame(size, spec.HoleFraction)
	if err != nil {
		return nil, err
	}

	segs := make([]ArcSegment, len(sweeps))
	angle := StartAngle
	for i, sweep := range sweeps {
		if math.IsNaN(sweep) || math.IsInf(sweep, 0) || sweep < 0 {
			return nil, errors.Wrapf(ErrInvalidSpec, "sweep %d is %v", i, sweep)
		}
		slice := spec.Slices[i]
		seg := ArcSegment{
			StartAngle: angle,
			SweepAngle: sweep,
			Color:      slice.Color,
			Label:      slice.Label,
		}
		seg.LabelAnchor = frame.PointAt(seg.MidAngle(), frame.LabelRadius)
		segs[i] = seg
		angle += sweep
	}
	return segs, nil
}
