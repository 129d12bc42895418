package system

import (
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

// FlashDuration is how long an enemy stays white after a hit.
const FlashDuration = 0.1

// startFlash turns the flash on and schedules the revert on the world's
// timer queue. The timer is owned by e, so destroying e cancels it; a dead
// but not yet removed enemy is also left alone.
func startFlash(w *ecs.World, e ecs.Entity) {
	wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind())
	if !ok {
		return
	}
	if wf.Revert != 0 {
		w.Cancel(ecs.TimerHandle(wf.Revert))
	}
	wf.On = true
	wf.Revert = uint64(w.After(e, FlashDuration, func() {
		en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok || en.Dead {
			return
		}
		if f, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
			f.On = false
			f.Revert = 0
		}
	}))
}
