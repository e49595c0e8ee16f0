package chart

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how slices are drawn.
type Mode int

const (
	ModePie Mode = iota
	ModeRing
)

func (m Mode) String() string {
	switch m {
	case ModePie:
		return "pie"
	case ModeRing:
		return "ring"
	default:
		return "unknown"
	}
}

// ParseMode accepts "pie" or "ring" ("doughnut" is an alias for ring).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pie", "filled":
		return ModePie, nil
	case "ring", "doughnut", "donut":
		return ModeRing, nil
	}
	return ModePie, errors.Errorf("unknown chart mode %q", s)
}

// Frame is the circle a chart is drawn into.
type Frame struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	LabelRadius float64
}

// NewFrame fits a square chart into size, centered, governed by the smaller
// dimension. Ring labels sit midway across the ring; pie labels sit at
// PieLabelFraction of the radius.
func NewFrame(size Size, hole float64) (Frame, error) {
	if !(size.Width > 0) || !(size.Height > 0) || math.IsInf(size.Width, 0) || math.IsInf(size.Height, 0) {
		return Frame{}, errors.Wrapf(ErrInvalidSpec, "size %vx%v", size.Width, size.Height)
	}
	if math.IsNaN(hole) || hole < 0 || hole >= 1 {
		return Frame{}, errors.Wrapf(ErrInvalidSpec, "hole fraction %v outside [0,1)", hole)
	}

	outer := math.Min(size.Width, size.Height) / 2
	f := Frame{
		Center:      Point{X: size.Width / 2, Y: size.Height / 2},
		OuterRadius: outer,
		InnerRadius: outer * hole,
	}
	if f.Ring() {
		f.LabelRadius = (f.InnerRadius + f.OuterRadius) / 2
	} else {
		f.LabelRadius = outer * PieLabelFraction
	}
	return f, nil
}

// Ring reports whether the frame has a hole.
func (f Frame) Ring() bool { return f.InnerRadius > 0 }

// RingWidth is the radial thickness of the drawn band.
func (f Frame) RingWidth() float64 { return f.OuterRadius - f.InnerRadius }

// PointAt returns the point at angle degrees and distance r from the center.
func (f Frame) PointAt(angle, r float64) Point {
	rad := Radians(angle)
	return Point{
		X: f.Center.X + r*math.Cos(rad),
		Y: f.Center.Y + r*math.Sin(rad),
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
