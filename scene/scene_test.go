package scene

import (
	"image/color"
	"testing"

	"github.com/milk9111/duskrun/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(name string, at common.Vec3) *Node {
	g := NewGroup(name)
	g.Add(NewMesh(name+"_trunk", common.BoxAt(at.Add(common.V3(0, 1.5, 0)), 0.6, 3, 0.6), NewMaterial("bark", color.RGBA{A: 255})))
	g.Add(NewMesh(name+"_canopy", common.BoxAt(at.Add(common.V3(0, 4, 0)), 3, 2, 3), NewMaterial("leaf", color.RGBA{G: 200, A: 255})))
	return g
}

func TestRootSkipsScene(t *testing.T) {
	root := NewScene()
	oak := tree("oak", common.V3(0, 0, 0))
	root.Add(oak)

	trunk := oak.Children()[0]
	assert.Same(t, oak, trunk.Root())
	assert.Same(t, oak, oak.Root())

	detached := NewMesh("loose", common.AABB{}, NewMaterial("m", color.RGBA{}))
	assert.Same(t, detached, detached.Root())
}

func TestAddReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	m := NewGroup("m")
	a.Add(m)
	b.Add(m)
	assert.Empty(t, a.Children())
	assert.Same(t, b, m.Parent())

	m.Detach()
	assert.Nil(t, m.Parent())
	assert.Empty(t, b.Children())
}

func TestBoundsUnion(t *testing.T) {
	oak := tree("oak", common.V3(0, 0, 0))
	b, ok := oak.Bounds()
	require.True(t, ok)
	assert.Equal(t, -1.5, b.Min.X)
	assert.Equal(t, 5.0, b.Max.Y)

	_, ok = NewGroup("empty").Bounds()
	assert.False(t, ok)
}

func TestRaycastOrdersAndSkipsInstanced(t *testing.T) {
	near := tree("near", common.V3(0, 0, 5))
	far := tree("far", common.V3(0, 0, 10))
	rocks := NewMesh("rocks", common.BoxAt(common.V3(0, 1, 2), 2, 2, 2), NewMaterial("rock", color.RGBA{}))
	rocks.Instanced = true

	hits := Raycast(common.V3(0, 1, 0), common.V3(0, 0, 1), 20, []*Node{far, rocks, near})
	require.Len(t, hits, 2)
	assert.Equal(t, "near_trunk", hits[0].Node.Name)
	assert.Equal(t, "far_trunk", hits[1].Node.Name)

	hits = Raycast(common.V3(0, 1, 0), common.V3(0, 0, 1), 4, []*Node{far, near})
	assert.Empty(t, hits, "segment is bounded")
}

func TestMaterialClone(t *testing.T) {
	m := NewMaterial("m", color.RGBA{R: 1, A: 255})
	c := m.Clone()
	c.Opacity = 0.3
	assert.Equal(t, 1.0, m.Opacity)
	c.Dispose()
	assert.Equal(t, 1, c.Disposals())
	assert.Zero(t, m.Disposals())
}
