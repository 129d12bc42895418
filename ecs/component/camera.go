package component

import "github.com/milk9111/duskrun/common"

// Camera follows the player from a fixed isometric offset. Position is the
// eye point used by rendering and occlusion.
type Camera struct {
	Offset     common.Vec3
	Position   common.Vec3
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
