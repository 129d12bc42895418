package component

type Health struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero, and reports whether health is
// now depleted.
func (h *Health) Damage(amount int) bool {
	if amount > 0 {
		h.Current -= amount
	}
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
