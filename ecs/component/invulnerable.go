package component

// Invulnerable makes an entity immune to contact damage while Remaining is
// positive. Remaining counts down in seconds and never goes below zero.
type Invulnerable struct {
	Remaining float64
}

var InvulnerableComponent = NewComponent[Invulnerable]()
