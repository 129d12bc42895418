package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/duskrun/config"
	"github.com/milk9111/duskrun/ecs/system"
	"github.com/milk9111/duskrun/effects"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/game"
	"github.com/milk9111/duskrun/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	mapName := flag.String("map", "", "map name from prefabs/maps.yaml (overrides config)")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	seed := flag.Int64("seed", 0, "random seed (0 = from config or clock)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapName != "" {
		cfg.Content.Map = *mapName
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Content.Dir != "" {
		prefabs.DiskRoot = cfg.Content.Dir
	}

	enemies := enemy.DefaultTable()
	if catalog, err := prefabs.LoadEnemyCatalog(); err != nil {
		logger.Warn("enemy catalogue unavailable, using built-in stats", zap.Error(err))
	} else if err := enemies.Apply(catalog.Enemies); err != nil {
		logger.Warn("enemy catalogue rejected, using built-in stats", zap.Error(err))
	}

	seedValue := cfg.Simulation.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	session, err := game.NewSession(game.Options{
		Config:  cfg,
		Enemies: enemies,
		Effects: effects.Logged{Next: effects.Nop{}, Log: logger.Named("effects")},
		Input:   system.KeyboardInput{},
		Rand:    rand.New(rand.NewSource(seedValue)),
		Log:     logger,
	})
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}

	var watcher *prefabs.Watcher
	if cfg.Content.HotReload {
		watcher, err = prefabs.NewWatcher(prefabs.DiskRoot, filepath.Join(prefabs.DiskRoot, "scripts"))
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	g := NewGame(session, watcher, logger, *debug)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
