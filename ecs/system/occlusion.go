package system

import (
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/scene"
)

const (
	FadedOpacity = 0.3
	// TorsoOffset raises the ray target from the player's feet.
	TorsoOffset = 1.0
)

// OcclusionSystem fades whole props standing between the camera and the
// player, and restores them once they stop occluding.
type OcclusionSystem struct {
	faded map[*scene.Node]struct{}
}

func NewOcclusionSystem() *OcclusionSystem {
	return &OcclusionSystem{faded: make(map[*scene.Node]struct{})}
}

func (s *OcclusionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	_, player, ok := playerTransform(w)
	if !ok {
		return
	}

	var props []*scene.Node
	ecs.ForEach(w, component.PropComponent.Kind(), func(e ecs.Entity, p *component.Prop) {
		if p.Node != nil && !p.Broken {
			props = append(props, p.Node)
		}
	})

	s.apply(Occluders(cam.Position, player.Position.Add(common.V3(0, TorsoOffset, 0)), props))
}

// Occluders returns the fade roots hit by the segment from eye to target.
func Occluders(eye, target common.Vec3, props []*scene.Node) map[*scene.Node]struct{} {
	out := make(map[*scene.Node]struct{})
	d := target.Sub(eye)
	dist := d.Length()
	if dist < 1e-9 {
		return out
	}
	for _, hit := range scene.Raycast(eye, d.Scale(1/dist), dist, props) {
		out[hit.Node.Root()] = struct{}{}
	}
	return out
}

func (s *OcclusionSystem) apply(current map[*scene.Node]struct{}) {
	for root := range s.faded {
		if _, still := current[root]; !still {
			restore(root)
			delete(s.faded, root)
		}
	}
	for root := range current {
		if _, already := s.faded[root]; already {
			continue
		}
		fade(root)
		s.faded[root] = struct{}{}
	}
}

// Faded reports whether root is currently faded.
func (s *OcclusionSystem) Faded(root *scene.Node) bool {
	_, ok := s.faded[root]
	return ok
}

func (s *OcclusionSystem) FadedCount() int {
	return len(s.faded)
}

// Reset restores everything, as on map unload.
func (s *OcclusionSystem) Reset() {
	for root := range s.faded {
		restore(root)
	}
	s.faded = make(map[*scene.Node]struct{})
}

func fade(root *scene.Node) {
	root.Traverse(func(n *scene.Node) {
		if n.Mesh == nil || n.Mesh.Material == nil || n.Mesh.Original != nil {
			return
		}
		clone := n.Mesh.Material.Clone()
		clone.Transparent = true
		clone.Opacity = FadedOpacity
		n.Mesh.Original = n.Mesh.Material
		n.Mesh.Material = clone
	})
}

func restore(root *scene.Node) {
	root.Traverse(func(n *scene.Node) {
		if n.Mesh == nil || n.Mesh.Original == nil {
			return
		}
		n.Mesh.Material.Dispose()
		n.Mesh.Material = n.Mesh.Original
		n.Mesh.Original = nil
	})
}
