package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/effects"
)

const pickupBobSpeed = 3.0

type PickupCollectSystem struct {
	effects effects.Sink
}

func NewPickupCollectSystem(sink effects.Sink) *PickupCollectSystem {
	if sink == nil {
		sink = effects.Nop{}
	}
	return &PickupCollectSystem{effects: sink}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, player, ok := playerTransform(w)
	if !ok {
		return
	}
	run, _ := runState(w)

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		if p.Collected {
			return
		}
		p.BobPhase += pickupBobSpeed * w.Delta()
		if common.PlanarDistance(player.Position, t.Position) >= p.Radius {
			return
		}
		p.Collected = true
		if run != nil {
			run.Collected++
		}
		s.effects.PlayCollect()
		s.effects.Emit(t.Position, effects.Collect, 12)
	})
}
