package system

import (
	"github.com/milk9111/duskrun/daynight"
	"github.com/milk9111/duskrun/ecs"
)

type DayNightSystem struct {
	clock *daynight.Clock
}

func NewDayNightSystem(clock *daynight.Clock) *DayNightSystem {
	return &DayNightSystem{clock: clock}
}

func (s *DayNightSystem) Update(w *ecs.World) {
	if w == nil || s.clock == nil {
		return
	}
	s.clock.Advance(w.Delta())
}
