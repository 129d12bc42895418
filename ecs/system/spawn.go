package system

import (
	"math/rand"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/daynight"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/ecs/entity"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/spawn"
	"go.uber.org/zap"
)

// SpawnSystem throttles enemy creation by the day/night phase and picks the
// type from the map's weighted table.
type SpawnSystem struct {
	manager spawn.Manager
	types   *spawn.Table
	enemies *enemy.Table
	clock   *daynight.Clock
	rng     *rand.Rand
	log     *zap.Logger
}

func NewSpawnSystem(types *spawn.Table, enemies *enemy.Table, clock *daynight.Clock, rng *rand.Rand, log *zap.Logger) *SpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnSystem{types: types, enemies: enemies, clock: clock, rng: rng, log: log}
}

// Timer exposes the spawn timer for inspection.
func (s *SpawnSystem) Timer() float64 {
	return s.manager.Timer
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.types == nil || s.enemies == nil || s.clock == nil {
		return
	}
	_, player, ok := playerTransform(w)
	if !ok {
		return
	}
	level := 0
	if run, ok := runState(w); ok {
		level = run.Level
	}

	night := s.clock.IsNight()
	if !s.manager.Tick(w.Delta(), night, level, w.Count(component.EnemyComponent.Kind())) {
		return
	}

	pos, ok := spawn.Position(s.rng, player.Position.Planar())
	if !ok {
		s.log.Debug("spawn rejected: too close to player")
		return
	}
	typ := s.types.Pick(s.rng, level, night, s.clock.Time())
	arch, ok := s.enemies.Lookup(typ)
	if !ok {
		s.log.Warn("spawn skipped: unknown enemy type", zap.String("type", string(typ)))
		return
	}
	if _, err := entity.NewEnemyAt(w, arch, common.V3(pos.X, 0, pos.Y)); err != nil {
		s.log.Error("spawn enemy", zap.Error(err))
		return
	}
	s.log.Debug("enemy spawned",
		zap.String("type", string(typ)),
		zap.Bool("night", night),
		zap.Float64("x", pos.X), zap.Float64("z", pos.Y))
}
