package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Vec3 is a world-space position. Y is up; the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Planar projects v onto the ground plane. The planar vector's X is world X
// and its Y is world Z.
func (v Vec3) Planar() cp.Vector { return cp.Vector{X: v.X, Y: v.Z} }

// WithPlanar returns v with its X and Z replaced by p.
func (v Vec3) WithPlanar(p cp.Vector) Vec3 { return Vec3{X: p.X, Y: v.Y, Z: p.Y} }

// PlanarDistance is the XZ distance between two positions.
func PlanarDistance(a, b Vec3) float64 {
	return a.Planar().Distance(b.Planar())
}

// PlanarDistanceSq is the squared XZ distance between two positions.
func PlanarDistanceSq(a, b Vec3) float64 {
	return a.Planar().DistanceSq(b.Planar())
}

// YawToward returns the yaw that faces along the planar direction d. A yaw of
// zero faces +Z.
func YawToward(d cp.Vector) float64 {
	return math.Atan2(d.X, d.Y)
}

// Forward returns the planar unit vector for yaw.
func Forward(yaw float64) cp.Vector {
	return cp.Vector{X: math.Sin(yaw), Y: math.Cos(yaw)}
}
