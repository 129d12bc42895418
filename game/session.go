// Package game wires the simulation systems into a per-frame pipeline and
// exposes the run state to the host and to an external progression layer.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/config"
	"github.com/milk9111/duskrun/daynight"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/ecs/entity"
	"github.com/milk9111/duskrun/ecs/system"
	"github.com/milk9111/duskrun/effects"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/prefabs"
	"github.com/milk9111/duskrun/scene"
	"go.uber.org/zap"
)

// Progress is the numeric run state an external shop or save layer reads
// and writes between runs.
type Progress struct {
	Level     int
	Quota     int
	Collected int
	Gold      int
}

type PlayerStats struct {
	Health int
	Damage int
	Speed  float64
}

type Options struct {
	Config  *config.Config
	Maps    *prefabs.MapCatalog
	Enemies *enemy.Table
	Effects effects.Sink
	Input   system.InputSource
	Rand    *rand.Rand
	Log     *zap.Logger
	// LoadScript resolves a map's spawn script; defaults to prefabs.LoadScript.
	LoadScript func(name string) ([]byte, error)
}

// Session is one map being played. It is driven by Tick from the host loop
// and is not safe for concurrent use.
type Session struct {
	cfg     *config.Config
	maps    *prefabs.MapCatalog
	enemies *enemy.Table
	effects effects.Sink
	input   system.InputSource
	rng     *rand.Rand
	log     *zap.Logger
	script  func(string) ([]byte, error)

	world     *ecs.World
	collision *collision.World
	scene     *scene.Node
	clock     *daynight.Clock
	pipeline  *ecs.Scheduler
	occlusion *system.OcclusionSystem
	spawner   *system.SpawnSystem

	mapSpec prefabs.MapSpec
	player  ecs.Entity
	camera  ecs.Entity
	run     ecs.Entity

	paused   bool
	stats    PlayerStats
	progress Progress
}

func NewSession(opts Options) (*Session, error) {
	s := &Session{
		cfg:     opts.Config,
		maps:    opts.Maps,
		enemies: opts.Enemies,
		effects: opts.Effects,
		input:   opts.Input,
		rng:     opts.Rand,
		log:     opts.Log,
		script:  opts.LoadScript,
	}
	if s.cfg == nil {
		s.cfg = config.Defaults()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.effects == nil {
		s.effects = effects.Nop{}
	}
	if s.enemies == nil {
		s.enemies = enemy.DefaultTable()
	}
	if s.script == nil {
		s.script = prefabs.LoadScript
	}
	if s.rng == nil {
		seed := s.cfg.Simulation.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	if s.maps == nil {
		maps, err := prefabs.LoadMapCatalog()
		if err != nil {
			return nil, fmt.Errorf("game: load maps: %w", err)
		}
		s.maps = maps
	}

	s.stats = PlayerStats{
		Health: s.cfg.Player.Health,
		Damage: s.cfg.Player.Damage,
		Speed:  s.cfg.Player.Speed,
	}
	s.progress = Progress{Level: 1}

	spec, err := SelectMap(s.maps, s.cfg.Content.Map, s.log)
	if err != nil {
		return nil, err
	}
	s.mapSpec = spec
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectMap resolves name in the catalogue. Unknown names fall back to the
// catalogue default with a warning.
func SelectMap(maps *prefabs.MapCatalog, name string, log *zap.Logger) (prefabs.MapSpec, error) {
	if maps == nil {
		return prefabs.MapSpec{}, fmt.Errorf("game: no map catalogue")
	}
	if name != "" {
		if spec, ok := maps.Lookup(name); ok {
			return spec, nil
		}
	}
	spec, ok := maps.Lookup(maps.Default)
	if !ok {
		return prefabs.MapSpec{}, fmt.Errorf("game: default map %q missing", maps.Default)
	}
	if name != "" && log != nil {
		log.Warn("unknown map, using default", zap.String("requested", name), zap.String("map", spec.Name))
	}
	return spec, nil
}

// start builds a fresh world for the current map and progress.
func (s *Session) start() error {
	if s.occlusion != nil {
		s.occlusion.Reset()
	}
	s.world = ecs.NewWorld()
	s.collision = collision.NewWorld(collision.WithBoundary(s.cfg.Simulation.WorldRadius), collision.WithLogger(s.log))
	s.scene = scene.NewScene()
	s.clock = daynight.NewClock(s.cfg.Simulation.DayDuration)
	s.clock.Set(s.cfg.Simulation.StartTime)

	quota := 0
	if s.mapSpec.AllowItems {
		quota = s.mapSpec.Quota + s.progress.Level - 1
	}
	s.progress.Quota = quota
	s.progress.Collected = 0

	var err error
	if s.run, err = entity.NewRun(s.world, component.Run{
		Level: s.progress.Level,
		Quota: quota,
		Gold:  s.progress.Gold,
	}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if s.player, err = entity.NewPlayerAt(s.world, entity.PlayerConfig{
		Speed:  s.stats.Speed,
		Damage: s.stats.Damage,
		Health: s.stats.Health,
	}, common.Vec3{}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	off := s.cfg.Camera.Offset
	if s.camera, err = entity.NewCamera(s.world, common.V3(off[0], off[1], off[2]), common.Vec3{}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := s.loadMap(); err != nil {
		return err
	}

	s.pipeline = s.buildPipeline()
	s.world.AddSystem(s.pipeline)

	s.log.Info("run started",
		zap.String("map", s.mapSpec.Name),
		zap.Int("level", s.progress.Level),
		zap.Int("quota", quota),
		zap.Int("obstacles", s.collision.Len()))
	return nil
}

func (s *Session) buildPipeline() *ecs.Scheduler {
	s.occlusion = system.NewOcclusionSystem()
	s.spawner = nil
	if s.mapSpec.AllowEnemies {
		s.spawner = system.NewSpawnSystem(s.spawnTable(), s.enemies, s.clock, s.rng, s.log)
	}

	pipeline := ecs.NewScheduler(
		ecs.Stage{Name: "input", Systems: []ecs.System{system.NewInputSystem(s.input)}},
		ecs.Stage{Name: "daynight", Systems: []ecs.System{system.NewDayNightSystem(s.clock)}},
	)
	if s.spawner != nil {
		pipeline.Add("spawn", s.spawner)
	}
	pipeline.Add("player", system.NewPlayerControllerSystem(s.collision))
	pipeline.Add("combat", system.NewCombatSystem(s.collision, s.effects, s.log))
	pipeline.Add("enemies", system.NewEnemyAISystem(s.cfg.Simulation.KnockbackFriction))
	pipeline.Add("contact", system.NewContactDamageSystem(s.effects, s.log))
	pipeline.Add("pickups", system.NewPickupCollectSystem(s.effects), system.NewExtractionSystem(s.log))
	pipeline.Add("lifecycle", system.NewLifecycleSystem(s.cfg.Simulation.DespawnRadius))
	pipeline.Add("camera", system.NewCameraSystem())
	pipeline.Add("occlusion", s.occlusion)
	return pipeline
}

// Tick advances the simulation by dt seconds. Paused or finished sessions
// do nothing. Breakables destroyed last frame are removed first so no system
// sees the obstacle list change mid-frame.
func (s *Session) Tick(dt float64) {
	if s.paused || s.Outcome() != component.Running || dt <= 0 {
		return
	}
	s.flushBroken()
	s.world.Update(dt)
	s.syncProgress()
}

func (s *Session) flushBroken() {
	for _, o := range s.collision.FlushRemovals() {
		e, ok := o.Ref.(ecs.Entity)
		if !ok {
			continue
		}
		if prop, ok := ecs.Get(s.world, e, component.PropComponent.Kind()); ok && prop.Node != nil {
			prop.Node.Detach()
		}
		ecs.DestroyEntity(s.world, e)
	}
}

func (s *Session) syncProgress() {
	run, ok := ecs.Get(s.world, s.run, component.RunComponent.Kind())
	if !ok {
		return
	}
	s.progress.Collected = run.Collected
	s.progress.Gold = run.Gold
}

// NextLevel raises the level and starts a fresh run on the same map.
func (s *Session) NextLevel() error {
	s.progress.Level++
	return s.start()
}

// Restart replays the current level, keeping gold.
func (s *Session) Restart() error {
	return s.start()
}

// ChangeMap switches maps and restarts the current level.
func (s *Session) ChangeMap(name string) error {
	spec, err := SelectMap(s.maps, name, s.log)
	if err != nil {
		return err
	}
	s.mapSpec = spec
	return s.start()
}

func (s *Session) SetPaused(p bool) { s.paused = p }
func (s *Session) TogglePause()     { s.paused = !s.paused }
func (s *Session) Paused() bool     { return s.paused }

func (s *Session) Outcome() component.Outcome {
	run, ok := ecs.Get(s.world, s.run, component.RunComponent.Kind())
	if !ok {
		return component.Running
	}
	return run.Outcome
}

func (s *Session) Progress() Progress { return s.progress }

// SetProgress replaces level and gold between runs; takes effect on the next
// start.
func (s *Session) SetProgress(p Progress) {
	if p.Level < 1 {
		p.Level = 1
	}
	s.progress.Level = p.Level
	s.progress.Gold = p.Gold
}

func (s *Session) PlayerStats() PlayerStats { return s.stats }

// SetPlayerStats applies shop upgrades; takes effect on the next start.
func (s *Session) SetPlayerStats(p PlayerStats) { s.stats = p }

// ReloadEnemies applies new enemy stats to subsequent spawns.
func (s *Session) ReloadEnemies(specs []prefabs.EnemySpec) error {
	if err := s.enemies.Apply(specs); err != nil {
		return fmt.Errorf("game: reload enemies: %w", err)
	}
	s.log.Info("enemy stats reloaded", zap.Int("types", len(specs)))
	return nil
}

func (s *Session) World() *ecs.World                  { return s.world }
func (s *Session) Collision() *collision.World        { return s.collision }
func (s *Session) Scene() *scene.Node                 { return s.scene }
func (s *Session) Clock() *daynight.Clock             { return s.clock }
func (s *Session) Lighting() daynight.Lighting        { return s.clock.Lighting() }
func (s *Session) Map() prefabs.MapSpec               { return s.mapSpec }
func (s *Session) Occlusion() *system.OcclusionSystem { return s.occlusion }
func (s *Session) Player() ecs.Entity                 { return s.player }
func (s *Session) Camera() ecs.Entity                 { return s.camera }
func (s *Session) StageNames() []string               { return s.pipeline.StageNames() }
