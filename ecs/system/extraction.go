package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"go.uber.org/zap"
)

// ExtractionSystem decides the run outcome: death when the player's health
// is gone, extraction when the player stands in the zone with the quota met.
type ExtractionSystem struct {
	log *zap.Logger
}

func NewExtractionSystem(log *zap.Logger) *ExtractionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExtractionSystem{log: log}
}

func (s *ExtractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	run, ok := runState(w)
	if !ok || run.Outcome != component.Running {
		return
	}
	player, transform, ok := playerTransform(w)
	if !ok {
		return
	}

	if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && health.Current <= 0 {
		run.Outcome = component.Died
		s.log.Info("run ended", zap.Stringer("outcome", run.Outcome), zap.Int("level", run.Level), zap.Int("kills", run.Kills))
		return
	}
	if run.Collected < run.Quota {
		return
	}

	ecs.ForEach2(w, component.ExtractionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, x *component.Extraction, t *component.Transform) {
		if run.Outcome != component.Running {
			return
		}
		if common.PlanarDistance(transform.Position, t.Position) >= x.Radius {
			return
		}
		run.Outcome = component.Extracted
		run.Gold += run.Collected + run.Bounty
		s.log.Info("run ended",
			zap.Stringer("outcome", run.Outcome),
			zap.Int("level", run.Level),
			zap.Int("collected", run.Collected),
			zap.Int("kills", run.Kills),
			zap.Int("gold", run.Gold))
	})
}
