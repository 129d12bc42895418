package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

const (
	AttackDuration = 0.3
	AttackCooldown = 0.5

	// EventAttack carries the attacking entity.
	EventAttack ecs.EventType = "attack"
)

// IsoDirection rotates screen-relative axes onto the ground plane for a
// camera looking down the (-1,-1) diagonal, and normalises the result.
func IsoDirection(moveX, moveY float64) cp.Vector {
	d := cp.Vector{
		X: (moveX - moveY) / math.Sqrt2,
		Y: (-moveX - moveY) / math.Sqrt2,
	}
	if d.LengthSq() < 1e-12 {
		return cp.Vector{}
	}
	return d.Normalize()
}

type PlayerControllerSystem struct {
	collision *collision.World
}

func NewPlayerControllerSystem(cw *collision.World) *PlayerControllerSystem {
	return &PlayerControllerSystem{collision: cw}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(),
		func(e ecs.Entity, player *component.Player, transform *component.Transform, input *component.Input) {
			tickTimers(w, e, player, dt)

			dir := IsoDirection(input.MoveX, input.MoveY)
			player.Moving = dir != (cp.Vector{})
			if player.Moving {
				delta := dir.Mult(player.Speed * dt)
				if p.collision != nil {
					transform.Position = p.collision.Resolve(transform.Position, delta)
				} else {
					transform.Position = collision.Resolve(transform.Position, delta, nil, collision.DefaultBoundaryRadius)
				}
				transform.Yaw = common.YawToward(dir)
			}

			if input.Attack && player.Attack.Cooldown <= 0 && !player.Attack.Attacking {
				player.Attack.Attacking = true
				player.Attack.Elapsed = 0
				player.Attack.Swing = 0
				player.Attack.Cooldown = AttackCooldown
				w.Events().Push(ecs.Event{Type: EventAttack, Data: e})
			}
		})
}

func tickTimers(w *ecs.World, e ecs.Entity, player *component.Player, dt float64) {
	player.Attack.Cooldown = math.Max(0, player.Attack.Cooldown-dt)
	if player.Attack.Attacking {
		player.Attack.Elapsed += dt
		player.Attack.Swing = math.Min(1, player.Attack.Elapsed/AttackDuration)
		if player.Attack.Elapsed >= AttackDuration {
			player.Attack.Attacking = false
			player.Attack.Elapsed = 0
			player.Attack.Swing = 0
		}
	}
	if inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind()); ok {
		inv.Remaining = math.Max(0, inv.Remaining-dt)
	}
}
