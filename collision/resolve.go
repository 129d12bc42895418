package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/common"
)

const (
	PlayerWidth  = 0.8
	PlayerHeight = 2.0
	PlayerDepth  = 0.8

	// DefaultBoundaryRadius is the hard planar world edge.
	DefaultBoundaryRadius = 69.0
)

// PlayerBox returns the player's collision volume for a ground position. The
// box is centred at (x, 1, z) whatever the position's height.
func PlayerBox(pos common.Vec3) common.AABB {
	return common.BoxAt(common.V3(pos.X, PlayerHeight/2, pos.Z), PlayerWidth, PlayerHeight, PlayerDepth)
}

// Blocker answers whether a box is obstructed.
type Blocker interface {
	Blocked(box common.AABB) bool
}

// Boxes adapts a plain list of boxes to a Blocker.
type Boxes []common.AABB

func (b Boxes) Blocked(box common.AABB) bool {
	for _, o := range b {
		if o.Intersects(box) {
			return true
		}
	}
	return false
}

// Resolve moves pos by the planar delta against the world's obstacles and
// clamps the result to the world boundary.
func (w *World) Resolve(pos common.Vec3, delta cp.Vector) common.Vec3 {
	return Resolve(pos, delta, w, w.boundary)
}

// Resolve applies axis-separated sliding: the full move is accepted when
// clear, otherwise x-only then z-only, otherwise the position is unchanged.
// The result is clamped to planar distance boundary from the origin; a
// non-positive boundary disables the clamp.
func Resolve(pos common.Vec3, delta cp.Vector, obstacles Blocker, boundary float64) common.Vec3 {
	next := pos
	candidates := []common.Vec3{
		{X: pos.X + delta.X, Y: pos.Y, Z: pos.Z + delta.Y},
		{X: pos.X + delta.X, Y: pos.Y, Z: pos.Z},
		{X: pos.X, Y: pos.Y, Z: pos.Z + delta.Y},
	}
	for _, c := range candidates {
		if obstacles == nil || !obstacles.Blocked(PlayerBox(c)) {
			next = c
			break
		}
	}
	return ClampToBoundary(next, boundary)
}

// ClampToBoundary pulls pos back inside the planar radius.
func ClampToBoundary(pos common.Vec3, radius float64) common.Vec3 {
	if radius <= 0 {
		return pos
	}
	p := pos.Planar()
	if p.Length() <= radius {
		return pos
	}
	return pos.WithPlanar(p.Normalize().Mult(radius))
}
