package daynight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseBoundaries(t *testing.T) {
	cases := []struct {
		t    float64
		want Phase
	}{
		{0, Day},
		{0.399, Day},
		{0.4, Sunset},
		{0.5, Twilight},
		{0.6, Night},
		{0.899, Night},
		{0.9, Sunrise},
		{0.999, Sunrise},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PhaseAt(c.t), "t=%v", c.t)
	}
}

func TestClockAdvanceWraps(t *testing.T) {
	c := NewClock(120)
	for i := 0; i < 120*60; i++ {
		c.Advance(1.0 / 60)
		assert.GreaterOrEqual(t, c.Time(), 0.0)
		assert.Less(t, c.Time(), 1.0)
	}
	// a whole cycle lands back on the wrap point, from either side
	assert.Less(t, math.Min(c.Time(), 1-c.Time()), 1e-6)

	c.Set(0.95)
	c.Advance(12) // +0.1
	assert.InDelta(t, 0.05, c.Time(), 1e-9)

	c.Advance(-5)
	assert.InDelta(t, 0.05, c.Time(), 1e-9)

	c.Advance(360) // three full cycles
	assert.InDelta(t, 0.05, c.Time(), 1e-9)
}

func TestClockNightThreshold(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, DefaultDayDuration, c.Duration())

	c.Set(0.5)
	assert.False(t, c.IsNight(), "threshold is exclusive")
	c.Set(0.51)
	assert.True(t, c.IsNight())
	c.Set(0.3)
	assert.False(t, c.IsNight())
}

func TestLightingKeyframesAndContinuity(t *testing.T) {
	assert.Equal(t, dayLighting, LightingAt(0.2))
	assert.Equal(t, nightLighting, LightingAt(0.75))

	mid := LightingAt(0.45)
	assert.InDelta(t, (dayLighting.Ambient+sunsetLighting.Ambient)/2, mid.Ambient, 1e-9)

	// lantern is dark by day and through sunset, then ramps during twilight
	assert.Zero(t, LightingAt(0.1).Lantern)
	assert.Zero(t, LightingAt(0.49).Lantern)
	assert.InDelta(t, 0.5, LightingAt(0.55).Lantern, 1e-9)
	assert.Equal(t, 1.0, LightingAt(0.7).Lantern)
	assert.InDelta(t, 0.5, LightingAt(0.95).Lantern, 1e-9)

	// no jumps across phase boundaries
	for _, b := range []float64{sunsetStart, twilightStart, nightStart, sunriseStart} {
		before := LightingAt(b - 1e-9)
		after := LightingAt(b)
		assert.InDelta(t, before.Ambient, after.Ambient, 1e-6, "ambient at %v", b)
		assert.InDelta(t, before.FogFar, after.FogFar, 1e-4, "fog at %v", b)
	}
	wrapEnd := LightingAt(1 - 1e-9)
	assert.InDelta(t, dayLighting.Ambient, wrapEnd.Ambient, 1e-6)
}
