package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return clamp01(t) }

// FastOutSlowIn accelerates quickly and settles gently. It is the default
// curve for sweep animations.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns the CSS-style timing curve through (0,0), (x1,y1),
// (x2,y2), (1,1). x1 and x2 are clamped to [0,1] so the curve is a function
// of x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1, x2 = clamp01(x1), clamp01(x2)
	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		u := solveBezier(t, x1, x2)
		return bezier(u, y1, y2)
	}
}

// bezier evaluates one coordinate of a curve with endpoints 0 and 1.
func bezier(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

// solveBezier finds u such that bezier(u, x1, x2) == x.
func solveBezier(x, x1, x2 float64) float64 {
	const eps = 1e-7

	u := x
	for i := 0; i < 8; i++ {
		diff := bezier(u, x1, x2) - x
		if math.Abs(diff) < eps {
			return u
		}
		d := bezierSlope(u, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= diff / d
	}

	// Newton stalled; bisect. x(u) is monotone for x1,x2 in [0,1].
	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 64 && hi-lo > eps; i++ {
		got := bezier(u, x1, x2)
		if got < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
