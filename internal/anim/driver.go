// Package anim interpolates chart sweep angles over time.
//
// A Driver owns one track per slice. Tracks are stepped by the host frame
// loop; nothing here reads the clock or starts goroutines.
package anim

import "time"

// DefaultDuration is how long one slice takes to reach its target.
const DefaultDuration = 1000 * time.Millisecond

type track struct {
	from, to float64
	elapsed  time.Duration
}

// Driver animates a list of values towards their targets, one independent
// eased track per index.
type Driver struct {
	duration time.Duration
	easing   Easing
	tracks   []track
}

// NewDriver creates a driver. A nil easing means FastOutSlowIn; a
// non-positive duration makes every change take effect on the next Advance.
func NewDriver(duration time.Duration, easing Easing) *Driver {
	if easing == nil {
		easing = FastOutSlowIn
	}
	return &Driver{duration: duration, easing: easing}
}

// SetTargets retargets the driver. A track whose target changed restarts from
// its current value; new tracks start from zero; tracks past len(targets) are
// dropped. Unchanged targets keep running undisturbed.
func (d *Driver) SetTargets(targets []float64) {
	if len(targets) < len(d.tracks) {
		d.tracks = d.tracks[:len(targets)]
	}
	for i, to := range targets {
		if i >= len(d.tracks) {
			d.tracks = append(d.tracks, track{to: to})
			continue
		}
		if d.tracks[i].to == to {
			continue
		}
		d.tracks[i] = track{from: d.value(i), to: to}
	}
}

// Advance moves every track forward by dt. It reports whether any track is
// still running afterwards.
func (d *Driver) Advance(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}
	running := false
	for i := range d.tracks {
		tr := &d.tracks[i]
		if d.done(tr) {
			continue
		}
		tr.elapsed += dt
		if d.duration > 0 && tr.elapsed > d.duration {
			tr.elapsed = d.duration
		}
		if d.duration <= 0 {
			tr.from = tr.to
		}
		if !d.done(tr) {
			running = true
		}
	}
	return running
}

// Values returns the current value of every track.
func (d *Driver) Values() []float64 {
	out := make([]float64, len(d.tracks))
	for i := range d.tracks {
		out[i] = d.value(i)
	}
	return out
}

// Progress returns each track's linear progress in [0,1].
func (d *Driver) Progress() []float64 {
	out := make([]float64, len(d.tracks))
	for i := range d.tracks {
		out[i] = d.progress(&d.tracks[i])
	}
	return out
}

// Settled reports whether every track has reached its target.
func (d *Driver) Settled() bool {
	for i := range d.tracks {
		if !d.done(&d.tracks[i]) {
			return false
		}
	}
	return true
}

// Len is the number of tracks.
func (d *Driver) Len() int { return len(d.tracks) }

func (d *Driver) progress(tr *track) float64 {
	if tr.from == tr.to {
		return 1
	}
	if d.duration <= 0 {
		return 0
	}
	return clamp01(float64(tr.elapsed) / float64(d.duration))
}

func (d *Driver) done(tr *track) bool { return d.progress(tr) >= 1 }

func (d *Driver) value(i int) float64 {
	tr := &d.tracks[i]
	p := d.progress(tr)
	if p >= 1 {
		return tr.to
	}
	return tr.from + (tr.to-tr.from)*d.easing(p)
}
