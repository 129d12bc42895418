package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/enemy"
)

const (
	KnockbackThreshold = 0.1
	// KnockbackFriction is applied once per frame regardless of the delta.
	KnockbackFriction = 0.9
)

// EnemyAISystem moves enemies. Knocked-back enemies slide and decay;
// everything else chases the player in a straight line, ignoring obstacles.
type EnemyAISystem struct {
	friction float64
}

func NewEnemyAISystem(friction float64) *EnemyAISystem {
	if friction <= 0 || friction >= 1 {
		friction = KnockbackFriction
	}
	return &EnemyAISystem{friction: friction}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, player, ok := playerTransform(w)
	if !ok {
		return
	}
	target := player.Position.Planar()
	dt := w.Delta()

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		if en.Dead {
			return
		}
		pos := t.Position.Planar()

		if en.Knockback.Length() > KnockbackThreshold {
			pos = pos.Add(en.Knockback.Mult(dt))
			en.Knockback = en.Knockback.Mult(s.friction)
		} else {
			steer := enemy.SteerDirect
			if en.Archetype != nil && en.Archetype.Steer != nil {
				steer = en.Archetype.Steer
			}
			pos = steer(pos, target, en.Speed, dt)
			if to := target.Sub(pos); to.LengthSq() > 1e-12 {
				t.Yaw = common.YawToward(to)
			}
		}
		t.Position = t.Position.WithPlanar(pos)

		if en.Archetype != nil && en.Archetype.Animate != nil {
			en.AnimPhase, en.Bob = en.Archetype.Animate(en.AnimPhase, en.Archetype.Stats.AnimRate, dt)
		}
	})
}
