package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestAABBIntersectsIgnoresTouching(t *testing.T) {
	a := AABB{Min: V3(0, 0, 0), Max: V3(1, 1, 1)}
	assert.True(t, a.Intersects(AABB{Min: V3(0.5, 0.5, 0.5), Max: V3(2, 2, 2)}))
	assert.False(t, a.Intersects(AABB{Min: V3(1, 0, 0), Max: V3(2, 1, 1)}))
	assert.False(t, a.Intersects(AABB{Min: V3(0, 5, 0), Max: V3(1, 6, 1)}))
}

func TestRayHit(t *testing.T) {
	box := AABB{Min: V3(-1, 0, 4), Max: V3(1, 3, 6)}
	origin := V3(0, 1, 0)
	dir := V3(0, 0, 1)

	tHit, ok := box.RayHit(origin, dir, 10)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, tHit, 1e-9)

	_, ok = box.RayHit(origin, dir, 3)
	assert.False(t, ok, "segment ends before the box")

	_, ok = box.RayHit(V3(5, 1, 0), dir, 10)
	assert.False(t, ok, "parallel ray outside the x slab")
}

func TestYawForwardRoundTrip(t *testing.T) {
	for _, d := range []cp.Vector{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: -1}} {
		f := Forward(YawToward(d))
		n := d.Normalize()
		assert.InDelta(t, n.X, f.X, 1e-9)
		assert.InDelta(t, n.Y, f.Y, 1e-9)
	}
	assert.InDelta(t, math.Pi/2, YawToward(cp.Vector{X: 1, Y: 0}), 1e-9)
}
