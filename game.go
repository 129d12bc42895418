package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/game"
	"github.com/milk9111/duskrun/prefabs"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	session  *game.Session
	watcher  *prefabs.Watcher
	log      *zap.Logger
	pauseUI  *ebitenui.UI
	renderer *renderer
}

func NewGame(session *game.Session, watcher *prefabs.Watcher, log *zap.Logger, debug bool) *Game {
	g := &Game{
		debug:    debug,
		session:  session,
		watcher:  watcher,
		log:      log,
		renderer: newRenderer(),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++
	g.applyContentChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if g.session.Paused() {
		g.pauseUI.Update()
		return nil
	}

	switch g.session.Outcome() {
	case component.Extracted:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.session.NextLevel()
		}
		return nil
	case component.Died:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.session.Restart()
		}
		return nil
	}

	g.session.Tick(1 / float64(ebiten.TPS()))
	return nil
}

// applyContentChanges drains the watcher between frames.
func (g *Game) applyContentChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Changes:
			g.reload(change)
		case err := <-g.watcher.Errors:
			g.log.Warn("content watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch {
	case change.Kind == prefabs.ChangeSpec && change.Name == "enemies.yaml":
		catalog, err := prefabs.LoadEnemyCatalog()
		if err != nil {
			g.log.Warn("reload enemies", zap.Error(err))
			return
		}
		if err := g.session.ReloadEnemies(catalog.Enemies); err != nil {
			g.log.Warn("reload enemies", zap.Error(err))
		}
	default:
		g.log.Info("content changed, applies on next run", zap.String("file", change.Name))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.session)

	w := g.session.World()
	p := g.session.Progress()
	hud := fmt.Sprintf("Level %d  Items %d/%d  Gold %d  %s",
		p.Level, p.Collected, p.Quota, p.Gold, g.session.Clock().Phase())
	if health, ok := ecs.Get(w, g.session.Player(), component.HealthComponent.Kind()); ok {
		hud += fmt.Sprintf("  HP %d/%d", health.Current, health.Max)
	}
	if g.debug {
		hud += fmt.Sprintf("\nFPS %.1f  enemies %d  obstacles %d  faded %d",
			ebiten.ActualFPS(),
			w.Count(component.EnemyComponent.Kind()),
			g.session.Collision().Len(),
			g.session.Occlusion().FadedCount())
	}
	switch g.session.Outcome() {
	case component.Extracted:
		hud += "\nExtracted! Press Enter for the next level."
	case component.Died:
		hud += "\nYou died. Press Enter to retry."
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.session.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
