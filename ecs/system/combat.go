package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/effects"
	"go.uber.org/zap"
)

const (
	AttackRange      = 6.0
	PointBlankRange  = 2.0
	AttackHalfAngle  = math.Pi / 2
	KnockbackImpulse = 15.0
)

// InAttackArc reports whether a target at planar position target is hit by
// an attack from origin facing yaw.
func InAttackArc(origin, target cp.Vector, yaw float64) bool {
	d := target.Sub(origin)
	dist := d.Length()
	if dist >= AttackRange {
		return false
	}
	if dist < PointBlankRange {
		return true
	}
	cos := common.Forward(yaw).Dot(d) / dist
	return math.Acos(common.Clamp(cos, -1, 1)) < AttackHalfAngle
}

// CombatSystem resolves each attack triggered this frame against every live
// enemy and every breakable prop.
type CombatSystem struct {
	collision *collision.World
	effects   effects.Sink
	log       *zap.Logger
}

func NewCombatSystem(cw *collision.World, sink effects.Sink, log *zap.Logger) *CombatSystem {
	if sink == nil {
		sink = effects.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CombatSystem{collision: cw, effects: sink, log: log}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain(EventAttack) {
		attacker, ok := evt.Data.(ecs.Entity)
		if !ok {
			continue
		}
		s.resolve(w, attacker)
	}
}

func (s *CombatSystem) resolve(w *ecs.World, attacker ecs.Entity) {
	player, ok := ecs.Get(w, attacker, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, attacker, component.TransformComponent.Kind())
	if !ok {
		return
	}
	origin := transform.Position.Planar()

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, t *component.Transform, health *component.Health) {
			if en.Dead {
				return
			}
			pos := t.Position.Planar()
			if !InAttackArc(origin, pos, transform.Yaw) {
				return
			}
			s.hit(w, e, en, t, health, player.Damage, origin, transform.Yaw)
		})

	s.breakProps(w, origin, transform.Yaw)
}

func (s *CombatSystem) hit(w *ecs.World, e ecs.Entity, en *component.Enemy, t *component.Transform, health *component.Health, damage int, origin cp.Vector, yaw float64) {
	killed := health.Damage(damage)
	startFlash(w, e)

	dir := t.Position.Planar().Sub(origin)
	if dir.LengthSq() < 1e-12 {
		dir = common.Forward(yaw)
	}
	en.ApplyKnockback(dir.Normalize().Mult(KnockbackImpulse))

	s.effects.Emit(t.Position.Add(common.V3(0, 1, 0)), effects.Hit, 6)
	s.effects.PlayHit()

	if !killed {
		return
	}
	en.Dead = true
	s.effects.Emit(t.Position, effects.Death, 20)
	if run, ok := runState(w); ok {
		run.Kills++
		if en.Archetype != nil {
			run.Bounty += en.Archetype.Stats.Gold
		}
	}
	s.log.Debug("enemy killed", zap.String("type", string(en.Type())), zap.String("entity", e.String()))
}

func (s *CombatSystem) breakProps(w *ecs.World, origin cp.Vector, yaw float64) {
	if s.collision == nil {
		return
	}
	ecs.ForEach(w, component.PropComponent.Kind(), func(e ecs.Entity, prop *component.Prop) {
		if !prop.Breakable || prop.Broken {
			return
		}
		obstacle, ok := s.collision.Get(prop.Obstacle)
		if !ok {
			return
		}
		centre := obstacle.Box.Center()
		if !InAttackArc(origin, centre.Planar(), yaw) {
			return
		}
		prop.Broken = true
		s.collision.QueueRemoval(prop.Obstacle)
		s.effects.Emit(centre, effects.Break, 8)
		s.log.Debug("prop broken", zap.String("name", prop.Name))
	})
}
