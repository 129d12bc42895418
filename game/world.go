package game

import (
	"fmt"
	"math"

	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs/entity"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/spawn"
	"go.uber.org/zap"
)

const (
	itemMinRadius   = 8.0
	itemMaxRadius   = 50.0
	itemMaxAttempts = 30
)

func (s *Session) loadMap() error {
	m := s.mapSpec
	for _, wall := range m.Walls {
		if _, err := entity.NewWall(s.world, s.collision, wall); err != nil {
			return fmt.Errorf("game: map %s: %w", m.Name, err)
		}
	}
	for _, p := range m.Props {
		if _, err := entity.NewProp(s.world, s.collision, s.scene, p); err != nil {
			return fmt.Errorf("game: map %s: %w", m.Name, err)
		}
	}
	x := m.Extraction
	if _, err := entity.NewExtractionAt(s.world, common.V3(x[0], x[1], x[2])); err != nil {
		return fmt.Errorf("game: map %s: %w", m.Name, err)
	}
	if m.AllowItems {
		s.placeItems(s.progress.Quota + s.cfg.Simulation.ExtraItems)
	}
	return nil
}

// placeItems scatters n pickups on clear ground. A spot that stays blocked
// after several attempts is skipped.
func (s *Session) placeItems(n int) {
	placed := 0
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < itemMaxAttempts; attempt++ {
			angle := s.rng.Float64() * 2 * math.Pi
			dist := itemMinRadius + s.rng.Float64()*(itemMaxRadius-itemMinRadius)
			pos := common.V3(math.Sin(angle)*dist, 0, math.Cos(angle)*dist)
			if s.collision.Blocked(collision.PlayerBox(pos)) {
				continue
			}
			if _, err := entity.NewPickupAt(s.world, pos); err != nil {
				s.log.Error("place item", zap.Error(err))
				break
			}
			placed++
			break
		}
	}
	if placed < n {
		s.log.Warn("some items could not be placed", zap.Int("wanted", n), zap.Int("placed", placed))
	}
}

// spawnTable builds the map's type table. Maps without weights spawn every
// known type evenly; a broken script is logged and ignored.
func (s *Session) spawnTable() *spawn.Table {
	weights := s.mapSpec.SpawnWeights
	if len(weights) == 0 {
		weights = make(map[string]float64)
		for _, t := range s.enemies.Types() {
			weights[string(t)] = 1
		}
	}
	base, err := spawn.NewWeighted(weights)
	if err != nil {
		s.log.Warn("bad spawn weights, using slimes", zap.String("map", s.mapSpec.Name), zap.Error(err))
		base, _ = spawn.NewWeighted(map[string]float64{string(enemy.Slime): 1})
	}

	var script *spawn.Script
	if name := s.mapSpec.SpawnScript; name != "" {
		src, err := s.script(name)
		if err == nil {
			script, err = spawn.CompileScript(name, src)
		}
		if err != nil {
			s.log.Warn("spawn script unavailable", zap.String("script", name), zap.Error(err))
			script = nil
		}
	}
	return spawn.NewTable(base, script, s.log)
}
