package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

// CameraSystem keeps every camera at its isometric offset from the player.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, target, ok := playerTransform(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		want := target.Position.Add(cam.Offset)
		smooth := common.Clamp(cam.Smoothness, 0, 1)
		if smooth == 0 {
			smooth = 1
		}
		cam.Position = common.V3(
			common.Lerp(cam.Position.X, want.X, smooth),
			common.Lerp(cam.Position.Y, want.Y, smooth),
			common.Lerp(cam.Position.Z, want.Z, smooth),
		)
	})
}
