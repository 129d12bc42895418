package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/enemy"
)

// Enemy holds the per-instance state of a chaser. Archetype is resolved once
// at spawn and never looked up again.
type Enemy struct {
	Archetype           *enemy.Archetype
	Speed               float64
	Damage              int
	KnockbackMultiplier float64
	Knockback           cp.Vector
	Dead                bool
	AnimPhase           float64
	Bob                 float64
}

// ApplyKnockback accumulates force scaled by the enemy's resistance.
func (e *Enemy) ApplyKnockback(force cp.Vector) {
	e.Knockback = e.Knockback.Add(force.Mult(e.KnockbackMultiplier))
}

// Type is a convenience for logs and effects.
func (e *Enemy) Type() enemy.Type {
	if e == nil || e.Archetype == nil {
		return ""
	}
	return e.Archetype.Type
}

var EnemyComponent = NewComponent[Enemy]()
