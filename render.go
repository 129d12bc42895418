package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/game"
	"github.com/milk9111/duskrun/scene"
)

const pixelsPerUnit = 9.0

var (
	wallColor       = color.RGBA{0x45, 0x3a, 0x30, 0xff}
	pickupColor     = color.RGBA{0xff, 0xd5, 0x4f, 0xff}
	extractionColor = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	playerColor     = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	flashColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// renderer draws a flat debug view of the simulation, rotated so screen up
// matches the isometric camera's forward.
type renderer struct {
	white *ebiten.Image
}

func newRenderer() *renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &renderer{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

type projector struct {
	origin common.Vec3
	cx, cy float64
}

func (p projector) point(v common.Vec3) (float32, float32) {
	dx := v.X - p.origin.X
	dz := v.Z - p.origin.Z
	sx := (dx - dz) / math.Sqrt2
	sy := (dx + dz) / math.Sqrt2
	return float32(p.cx + sx*pixelsPerUnit), float32(p.cy + sy*pixelsPerUnit)
}

func (r *renderer) draw(screen *ebiten.Image, s *game.Session) {
	light := s.Lighting()
	screen.Fill(light.Sky)

	w := s.World()
	bounds := screen.Bounds()
	proj := projector{cx: float64(bounds.Dx()) / 2, cy: float64(bounds.Dy()) / 2}
	if t, ok := ecs.Get(w, s.Player(), component.TransformComponent.Kind()); ok {
		proj.origin = t.Position
	}

	for _, o := range s.Collision().Obstacles() {
		if o.Ref == nil {
			continue
		}
		if e, ok := o.Ref.(ecs.Entity); ok {
			if prop, ok := ecs.Get(w, e, component.PropComponent.Kind()); ok && prop.Node != nil {
				continue
			}
		}
		r.box(screen, proj, o.Box, wallColor, 1)
	}
	s.Scene().Traverse(func(n *scene.Node) {
		if n.Mesh == nil || n.Mesh.Material == nil {
			return
		}
		m := n.Mesh.Material
		r.box(screen, proj, n.Mesh.Bounds, m.Color, m.Opacity)
	})

	ecs.ForEach2(w, component.ExtractionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, x *component.Extraction, t *component.Transform) {
		sx, sy := proj.point(t.Position)
		vector.StrokeCircle(screen, sx, sy, float32(x.Radius*pixelsPerUnit), 2, extractionColor, true)
	})
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		sx, sy := proj.point(t.Position)
		bob := float32(math.Sin(p.BobPhase) * 2)
		vector.DrawFilledCircle(screen, sx, sy+bob, 4, pickupColor, true)
	})
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		c := color.RGBA{0xaa, 0x22, 0x22, 0xff}
		if en.Archetype != nil {
			c = en.Archetype.Stats.Color
		}
		if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && wf.On {
			c = flashColor
		}
		sx, sy := proj.point(t.Position)
		vector.DrawFilledCircle(screen, sx, sy-float32(en.Bob*pixelsPerUnit), 6, c, true)
	})

	if t, ok := ecs.Get(w, s.Player(), component.TransformComponent.Kind()); ok {
		sx, sy := proj.point(t.Position)
		if light.Lantern > 0 {
			glow := color.NRGBA{0xff, 0xb3, 0x47, uint8(70 * light.Lantern)}
			vector.DrawFilledCircle(screen, sx, sy, 6*pixelsPerUnit, glow, true)
		}
		vector.DrawFilledCircle(screen, sx, sy, 7, playerColor, true)
		reach := 2.0
		if p, ok := ecs.Get(w, s.Player(), component.PlayerComponent.Kind()); ok && p.Attack.Attacking {
			reach = 2 + 4*p.Attack.Swing
		}
		f := common.Forward(t.Yaw)
		tx, ty := proj.point(t.Position.Add(common.V3(f.X*reach, 0, f.Y*reach)))
		vector.StrokeLine(screen, sx, sy, tx, ty, 2, playerColor, true)
	}

}

// box fills the footprint of b as a rotated quad.
func (r *renderer) box(screen *ebiten.Image, proj projector, b common.AABB, c color.RGBA, opacity float64) {
	corners := [4]common.Vec3{
		{X: b.Min.X, Z: b.Min.Z},
		{X: b.Max.X, Z: b.Min.Z},
		{X: b.Max.X, Z: b.Max.Z},
		{X: b.Min.X, Z: b.Max.Z},
	}
	var path vector.Path
	for i, v := range corners {
		x, y := proj.point(v)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(c.A) / 255 * float32(opacity)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{})
}
