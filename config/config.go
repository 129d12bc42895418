package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Player     PlayerConfig     `toml:"player"`
	Camera     CameraConfig     `toml:"camera"`
	Content    ContentConfig    `toml:"content"`
	Logging    LoggingConfig    `toml:"logging"`
	Window     WindowConfig     `toml:"window"`
}

type SimulationConfig struct {
	DayDuration       float64 `toml:"day_duration"`   // seconds per full day/night cycle
	StartTime         float64 `toml:"start_time"`     // time of day at run start, [0,1)
	DespawnRadius     float64 `toml:"despawn_radius"` // enemies farther than this are dropped
	WorldRadius       float64 `toml:"world_radius"`   // hard planar edge for the player
	KnockbackFriction float64 `toml:"knockback_friction"`
	ExtraItems        int     `toml:"extra_items"` // items placed beyond the quota
	Seed              int64   `toml:"seed"`        // 0 = seed from the clock
}

type PlayerConfig struct {
	Speed  float64 `toml:"speed"`
	Health int     `toml:"health"`
	Damage int     `toml:"damage"`
}

type CameraConfig struct {
	Offset [3]float64 `toml:"offset"`
}

type ContentConfig struct {
	Map       string `toml:"map"`
	Dir       string `toml:"dir"` // disk override for embedded prefabs
	HotReload bool   `toml:"hot_reload"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			DayDuration:       120,
			DespawnRadius:     80,
			WorldRadius:       69,
			KnockbackFriction: 0.9,
			ExtraItems:        2,
		},
		Player: PlayerConfig{
			Speed:  8,
			Health: 5,
			Damage: 1,
		},
		Camera: CameraConfig{
			Offset: [3]float64{20, 20, 20},
		},
		Content: ContentConfig{
			Map: "forest",
			Dir: "prefabs",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title:  "duskrun",
			Width:  1280,
			Height: 720,
		},
	}
}

var (
	ErrDayDuration = errors.New("simulation.day_duration must be positive")
	ErrStartTime   = errors.New("simulation.start_time must be in [0,1)")
	ErrFriction    = errors.New("simulation.knockback_friction must be in (0,1)")
	ErrPlayer      = errors.New("player speed, health and damage must be positive")
)

func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.DayDuration <= 0 {
		errs = append(errs, ErrDayDuration)
	}
	if c.Simulation.StartTime < 0 || c.Simulation.StartTime >= 1 {
		errs = append(errs, ErrStartTime)
	}
	if c.Simulation.KnockbackFriction <= 0 || c.Simulation.KnockbackFriction >= 1 {
		errs = append(errs, ErrFriction)
	}
	if c.Player.Speed <= 0 || c.Player.Health <= 0 || c.Player.Damage <= 0 {
		errs = append(errs, ErrPlayer)
	}
	return errors.Join(errs...)
}
