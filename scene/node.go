// Package scene is the minimal prop graph the simulation needs: groups and
// meshes with world-space bounds and swappable materials.
package scene

import (
	"image/color"

	"github.com/milk9111/duskrun/common"
)

// Material is a renderer-agnostic surface description. Clones must be
// disposed by whoever created them.
type Material struct {
	Name        string
	Color       color.RGBA
	Opacity     float64
	Transparent bool

	disposals int
}

func NewMaterial(name string, c color.RGBA) *Material {
	return &Material{Name: name, Color: c, Opacity: 1}
}

func (m *Material) Clone() *Material {
	return &Material{Name: m.Name, Color: m.Color, Opacity: m.Opacity, Transparent: m.Transparent}
}

func (m *Material) Dispose() {
	m.disposals++
}

// Disposals counts Dispose calls; more than one is a bug in the caller.
func (m *Material) Disposals() int {
	return m.disposals
}

// Mesh is a leaf with world-space bounds.
type Mesh struct {
	Bounds   common.AABB
	Material *Material
	// Original holds the real material while a temporary one is swapped in.
	Original *Material
}

type Node struct {
	Name string
	Mesh *Mesh
	// Instanced nodes are drawn in bulk and cannot be faded individually.
	Instanced bool

	parent   *Node
	children []*Node
	isScene  bool
}

// NewScene returns a scene root.
func NewScene() *Node {
	return &Node{Name: "scene", isScene: true}
}

func NewGroup(name string) *Node {
	return &Node{Name: name}
}

func NewMesh(name string, bounds common.AABB, m *Material) *Node {
	return &Node{Name: name, Mesh: &Mesh{Bounds: bounds, Material: m}}
}

func (n *Node) IsScene() bool { return n.isScene }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// Add reparents child under n.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// Traverse visits n and its descendants depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Root walks up to the top-most ancestor that is not the scene itself. A
// detached node is its own root.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil && !cur.parent.isScene {
		cur = cur.parent
	}
	return cur
}

// Bounds is the union of every mesh under n.
func (n *Node) Bounds() (common.AABB, bool) {
	var out common.AABB
	found := false
	n.Traverse(func(c *Node) {
		if c.Mesh == nil {
			return
		}
		if !found {
			out = c.Mesh.Bounds
			found = true
			return
		}
		out = out.Union(c.Mesh.Bounds)
	})
	return out, found
}
