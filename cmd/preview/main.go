// Command preview shows every enemy archetype's animation and stats side by
// side, for tuning enemies.yaml.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/prefabs"
)

const (
	screenWidth  = 768
	screenHeight = 512
	cellWidth    = 256
	cellHeight   = 256
	bobPixels    = 40
)

type cell struct {
	arch  *enemy.Archetype
	phase float64
	bob   float64
}

type previewGame struct {
	cells []*cell
}

func (g *previewGame) Update() error {
	dt := 1 / float64(ebiten.TPS())
	for _, c := range g.cells {
		c.phase, c.bob = c.arch.Animate(c.phase, c.arch.Stats.AnimRate, dt)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	cols := screenWidth / cellWidth
	for i, c := range g.cells {
		x := float32((i%cols)*cellWidth + cellWidth/2)
		y := float32((i/cols)*cellHeight + cellHeight/2)
		vector.StrokeLine(screen, x-40, y+24, x+40, y+24, 1, color.RGBA{0x60, 0x60, 0x60, 0xff}, false)
		vector.DrawFilledCircle(screen, x, y-float32(c.bob*bobPixels), 20, c.arch.Stats.Color, true)

		s := c.arch.Stats
		label := fmt.Sprintf("%s\nspd %.1f hp %d dmg %d\nkb x%.1f gold %d",
			c.arch.Type, s.Speed, s.MaxHealth, s.Damage, s.KnockbackMultiplier, s.Gold)
		ebitenutil.DebugPrintAt(screen, label, int(x)-60, int(y)+40)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	builtin := flag.Bool("builtin", false, "ignore enemies.yaml and show the built-in stats")
	flag.Parse()

	table := enemy.DefaultTable()
	if !*builtin {
		catalog, err := prefabs.LoadEnemyCatalog()
		if err != nil {
			log.Fatalf("preview: %v", err)
		}
		if err := table.Apply(catalog.Enemies); err != nil {
			log.Fatalf("preview: %v", err)
		}
	}

	g := &previewGame{}
	for _, typ := range table.Types() {
		arch, _ := table.Lookup(typ)
		g.cells = append(g.cells, &cell{arch: arch})
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Enemy Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
