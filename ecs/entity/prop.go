package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/prefabs"
	"github.com/milk9111/duskrun/scene"
)

var propColors = map[string]color.RGBA{
	"tree":     {0x2e, 0x7d, 0x32, 0xff},
	"building": {0x9e, 0x9e, 0x9e, 0xff},
	"crate":    {0xa1, 0x88, 0x7f, 0xff},
	"rock":     {0x75, 0x75, 0x75, 0xff},
}

// PropBox converts a prop's base position and size into world bounds. The
// position is the centre of the footprint at ground level.
func PropBox(p prefabs.PropSpec) common.AABB {
	pos := common.V3(p.Position[0], p.Position[1], p.Position[2])
	size := common.V3(p.Size[0], p.Size[1], p.Size[2])
	return common.AABB{
		Min: common.V3(pos.X-size.X/2, pos.Y, pos.Z-size.Z/2),
		Max: common.V3(pos.X+size.X/2, pos.Y+size.Y, pos.Z+size.Z/2),
	}
}

func WallBox(b prefabs.BoxSpec) common.AABB {
	return common.AABB{
		Min: common.V3(b.Min[0], b.Min[1], b.Min[2]),
		Max: common.V3(b.Max[0], b.Max[1], b.Max[2]),
	}
}

// BuildPropNode makes the scene group for a prop. Trees get a trunk and a
// canopy so occlusion has to promote hits to the group.
func BuildPropNode(p prefabs.PropSpec) *scene.Node {
	box := PropBox(p)
	c, ok := propColors[p.Kind]
	if !ok {
		c = propColors["rock"]
	}

	group := scene.NewGroup(p.Name)
	group.Instanced = p.Instanced
	if p.Kind == "tree" {
		trunkTop := box.Min.Y + (box.Max.Y-box.Min.Y)*0.4
		centre := box.Center()
		trunk := common.AABB{
			Min: common.V3(centre.X-0.2, box.Min.Y, centre.Z-0.2),
			Max: common.V3(centre.X+0.2, trunkTop, centre.Z+0.2),
		}
		canopy := common.AABB{Min: common.V3(box.Min.X, trunkTop, box.Min.Z), Max: box.Max}
		group.Add(scene.NewMesh(p.Name+"_trunk", trunk, scene.NewMaterial("bark", color.RGBA{0x5d, 0x40, 0x37, 0xff})))
		group.Add(scene.NewMesh(p.Name+"_canopy", canopy, scene.NewMaterial("leaves", c)))
		return group
	}
	group.Add(scene.NewMesh(p.Name+"_body", box, scene.NewMaterial(p.Kind, c)))
	return group
}

// NewProp registers a prop with the collision world, attaches its node under
// root and records both on a new entity.
func NewProp(w *ecs.World, cw *collision.World, root *scene.Node, p prefabs.PropSpec) (ecs.Entity, error) {
	box := PropBox(p)
	node := BuildPropNode(p)

	entity := ecs.CreateEntity(w)
	id := cw.Register(box, entity, p.Breakable)
	if root != nil {
		root.Add(node)
	}
	if err := ecs.Add(w, entity, component.PropComponent.Kind(), &component.Prop{
		Name:      p.Name,
		Kind:      p.Kind,
		Obstacle:  id,
		Node:      node,
		Breakable: p.Breakable,
	}); err != nil {
		return 0, fmt.Errorf("prop %s: add prop component: %w", p.Name, err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: box.Center()}); err != nil {
		return 0, fmt.Errorf("prop %s: add transform: %w", p.Name, err)
	}
	return entity, nil
}

func NewWall(w *ecs.World, cw *collision.World, b prefabs.BoxSpec) (ecs.Entity, error) {
	box := WallBox(b)
	entity := ecs.CreateEntity(w)
	id := cw.Register(box, entity, false)
	if err := ecs.Add(w, entity, component.PropComponent.Kind(), &component.Prop{Name: "wall", Kind: "wall", Obstacle: id}); err != nil {
		return 0, fmt.Errorf("wall: add prop component: %w", err)
	}
	return entity, nil
}
