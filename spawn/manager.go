// Package spawn throttles enemy creation by time of day and chooses where
// and what to spawn.
package spawn

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

const (
	DayInterval   = 10.0
	NightInterval = 5.0
	DayBaseMax    = 5
	NightBaseMax  = 12

	MinDistance = 20.0
	MaxDistance = 40.0
	// RejectRadius guards against spawning on top of the player. With
	// MinDistance above it the guard never trips.
	RejectRadius = 10.0
)

// Limits returns the spawn interval in seconds and the concurrent enemy cap.
func Limits(night bool, level int) (float64, int) {
	if night {
		return NightInterval, NightBaseMax + level
	}
	return DayInterval, DayBaseMax + level
}

// Manager holds the spawn timer.
type Manager struct {
	Timer float64
}

// Tick advances the timer and reports whether an enemy should spawn now. The
// timer resets only when a spawn happens; while the cap is reached it keeps
// counting so the next free slot fills at once.
func (m *Manager) Tick(dt float64, night bool, level, alive int) bool {
	m.Timer += dt
	interval, max := Limits(night, level)
	if m.Timer > interval && alive < max {
		m.Timer = 0
		return true
	}
	return false
}

// Position picks a point at a random angle and a distance in
// [MinDistance, MaxDistance) around the player. It reports false when the
// candidate is rejected.
func Position(rng *rand.Rand, player cp.Vector) (cp.Vector, bool) {
	angle := rng.Float64() * 2 * math.Pi
	dist := MinDistance + rng.Float64()*(MaxDistance-MinDistance)
	p := player.Add(cp.ForAngle(angle).Mult(dist))
	if p.Distance(player) < RejectRadius {
		return cp.Vector{}, false
	}
	return p, true
}
