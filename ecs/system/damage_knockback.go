package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/effects"
	"go.uber.org/zap"
)

const (
	ContactRangeSq          = 4.0
	InvulnerabilityDuration = 1.0
)

// ContactDamageSystem lets enemies touching the player hurt it, at most once
// per invulnerability window.
type ContactDamageSystem struct {
	effects effects.Sink
	log     *zap.Logger
}

func NewContactDamageSystem(sink effects.Sink, log *zap.Logger) *ContactDamageSystem {
	if sink == nil {
		sink = effects.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactDamageSystem{effects: sink, log: log}
}

func (s *ContactDamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, transform, ok := playerTransform(w)
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		if en.Dead || inv.Remaining > 0 {
			return
		}
		if common.PlanarDistanceSq(transform.Position, t.Position) >= ContactRangeSq {
			return
		}
		health.Damage(en.Damage)
		inv.Remaining = InvulnerabilityDuration
		s.effects.PlayDamage()
		s.effects.Emit(transform.Position.Add(common.V3(0, 1, 0)), effects.Damage, 10)
		s.log.Debug("player hit", zap.String("by", string(en.Type())), zap.Int("health", health.Current))
	})
}
