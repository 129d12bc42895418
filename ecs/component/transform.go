package component

import "github.com/milk9111/duskrun/common"

// Transform places an entity in the world. Y is up; the simulation plane is
// XZ. Yaw is measured from +Z toward +X.
type Transform struct {
	Position common.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
