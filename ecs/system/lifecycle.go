package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

// DespawnRadius is the planar distance beyond which enemies are dropped.
const DespawnRadius = 80.0

// LifecycleSystem removes dead or distant enemies and collected pickups at
// the end of the frame.
type LifecycleSystem struct {
	radius float64
}

func NewLifecycleSystem(radius float64) *LifecycleSystem {
	if radius <= 0 {
		radius = DespawnRadius
	}
	return &LifecycleSystem{radius: radius}
}

func (s *LifecycleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var doomed []ecs.Entity

	_, player, hasPlayer := playerTransform(w)
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		if en.Dead || (hasPlayer && common.PlanarDistance(player.Position, t.Position) > s.radius) {
			doomed = append(doomed, e)
		}
	})
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, p *component.Pickup) {
		if p.Collected {
			doomed = append(doomed, e)
		}
	})

	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
}
