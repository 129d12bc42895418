package system

import (
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

func playerTransform(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return player, t, true
}

func runState(w *ecs.World) (*component.Run, bool) {
	e, ok := w.First(component.RunComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RunComponent.Kind())
}
