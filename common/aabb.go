package common

import "math"

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min Vec3
	Max Vec3
}

// BoxAt returns the box of the given size centred on c.
func BoxAt(c Vec3, w, h, d float64) AABB {
	return AABB{
		Min: Vec3{c.X - w/2, c.Y - h/2, c.Z - d/2},
		Max: Vec3{c.X + w/2, c.Y + h/2, c.Z + d/2},
	}
}

// Intersects reports whether the boxes overlap with positive volume. Touching
// faces do not count, so a box resting flush against a wall is not blocked.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

func (a AABB) Center() Vec3 {
	return Vec3{(a.Min.X + a.Max.X) / 2, (a.Min.Y + a.Max.Y) / 2, (a.Min.Z + a.Max.Z) / 2}
}

// Union returns the smallest box containing both.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// RayHit intersects the segment origin + dir*t, t in [0, maxT], with the box
// using the slab method. It returns the entry parameter.
func (a AABB) RayHit(origin, dir Vec3, maxT float64) (float64, bool) {
	tmin := 0.0
	tmax := maxT

	slab := func(o, d, lo, hi float64) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		inv := 1.0 / d
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		return tmax >= tmin
	}

	if !slab(origin.X, dir.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, dir.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, dir.Z, a.Min.Z, a.Max.Z) {
		return 0, false
	}
	return tmin, true
}
