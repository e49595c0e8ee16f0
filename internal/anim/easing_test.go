package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":        Linear,
		"fastOutSlowIn": FastOutSlowIn,
		"ease":          CubicBezier(0.25, 0.1, 0.25, 1),
	} {
		assert.Equal(t, 0.0, e(0), name)
		assert.Equal(t, 1.0, e(1), name)
		assert.Equal(t, 0.0, e(-1), name)
		assert.Equal(t, 1.0, e(2), name)
	}
}

func TestFastOutSlowInMonotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := FastOutSlowIn(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev, "step %d", i)
		prev = v
	}
	// Ahead of linear through the middle of the animation.
	assert.Greater(t, FastOutSlowIn(0.5), 0.5)
}

func TestCubicBezierLinear(t *testing.T) {
	e := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.InDelta(t, x, e(x), 1e-5)
	}
}
