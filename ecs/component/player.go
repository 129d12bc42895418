package component

// AttackState is orthogonal to movement: the player keeps moving while
// Attacking is set.
type AttackState struct {
	// Cooldown counts down to zero; a new attack needs it at zero.
	Cooldown  float64
	Elapsed   float64
	Attacking bool
	// Swing is the arm-swing progress in [0,1] while attacking.
	Swing float64
}

type Player struct {
	Speed  float64
	Damage int
	Moving bool
	Attack AttackState
}

var PlayerComponent = NewComponent[Player]()
