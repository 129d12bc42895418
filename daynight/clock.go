// Package daynight advances the time of day and derives phase and lighting.
package daynight

import "math"

// DefaultDayDuration is the length of a full cycle in seconds.
const DefaultDayDuration = 120.0

// NightThreshold is the time of day after which spawning runs on night rules.
const NightThreshold = 0.5

type Phase int

const (
	Day Phase = iota
	Sunset
	Twilight
	Night
	Sunrise
)

func (p Phase) String() string {
	switch p {
	case Day:
		return "day"
	case Sunset:
		return "sunset"
	case Twilight:
		return "twilight"
	case Night:
		return "night"
	case Sunrise:
		return "sunrise"
	default:
		return "unknown"
	}
}

// phase boundaries as fractions of the cycle
const (
	sunsetStart   = 0.4
	twilightStart = 0.5
	nightStart    = 0.6
	sunriseStart  = 0.9
)

// PhaseAt maps a time of day to its phase.
func PhaseAt(t float64) Phase {
	switch {
	case t < sunsetStart:
		return Day
	case t < twilightStart:
		return Sunset
	case t < nightStart:
		return Twilight
	case t < sunriseStart:
		return Night
	default:
		return Sunrise
	}
}

// Clock holds the time of day, always in [0, 1).
type Clock struct {
	t        float64
	duration float64
}

func NewClock(duration float64) *Clock {
	if duration <= 0 {
		duration = DefaultDayDuration
	}
	return &Clock{duration: duration}
}

// Advance moves the clock forward by dt seconds, wrapping at 1.0. Negative
// deltas are ignored.
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.Set(c.t + dt/c.duration)
}

// Set places the clock at t, wrapped into [0, 1).
func (c *Clock) Set(t float64) {
	t -= math.Floor(t)
	if t >= 1 || t < 0 || math.IsNaN(t) {
		t = 0
	}
	c.t = t
}

func (c *Clock) Time() float64 {
	return c.t
}

func (c *Clock) Duration() float64 {
	return c.duration
}

func (c *Clock) Phase() Phase {
	return PhaseAt(c.t)
}

// IsNight reports whether spawning should use night rules.
func (c *Clock) IsNight() bool {
	return c.t > NightThreshold
}

func (c *Clock) Lighting() Lighting {
	return LightingAt(c.t)
}
