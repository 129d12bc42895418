package entity

import (
	"fmt"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

// DefaultCameraOffset is the isometric eye offset from the player.
var DefaultCameraOffset = common.V3(20, 20, 20)

func NewCamera(w *ecs.World, offset common.Vec3, target common.Vec3) (ecs.Entity, error) {
	if offset == (common.Vec3{}) {
		offset = DefaultCameraOffset
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Offset:     offset,
		Position:   target.Add(offset),
		Smoothness: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
