package entity

import (
	"testing"

	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/enemy"
	"github.com/milk9111/duskrun/prefabs"
	"github.com/milk9111/duskrun/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, PlayerConfig{Speed: 8, Damage: 1, Health: 5}, common.V3(1, 0, 2))
	require.NoError(t, err)

	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 5, health.Current)
	assert.Equal(t, 5, health.Max)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, common.V3(1, 0, 2), tr.Position)
	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.InvulnerableComponent.Kind()))
}

func TestNewEnemyAtCopiesStats(t *testing.T) {
	w := ecs.NewWorld()
	arch, ok := enemy.DefaultTable().Lookup(enemy.Slime)
	require.True(t, ok)

	e, err := NewEnemyAt(w, arch, common.V3(10, 0, 0))
	require.NoError(t, err)

	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, arch.Stats.Speed, en.Speed)
	assert.Equal(t, arch.Stats.Damage, en.Damage)

	arch.Stats.Speed = 99
	assert.NotEqual(t, 99.0, en.Speed)

	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	assert.Equal(t, arch.Stats.MaxHealth, health.Current)
}

func TestNewEnemyAtRejectsNilArchetype(t *testing.T) {
	_, err := NewEnemyAt(ecs.NewWorld(), nil, common.Vec3{})
	assert.Error(t, err)
}

func TestNewCameraDefaultsOffset(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, common.Vec3{}, common.V3(1, 0, 1))
	require.NoError(t, err)

	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, DefaultCameraOffset, cam.Offset)
	assert.Equal(t, common.V3(21, 20, 21), cam.Position)
}

func TestPropBoxSitsOnGround(t *testing.T) {
	box := PropBox(prefabs.PropSpec{
		Position: prefabs.Vec3Spec{4, 0, -2},
		Size:     prefabs.Vec3Spec{2, 6, 2},
	})
	assert.Equal(t, common.V3(3, 0, -3), box.Min)
	assert.Equal(t, common.V3(5, 6, -1), box.Max)
}

func TestBuildPropNodeTreeHasTwoMeshes(t *testing.T) {
	node := BuildPropNode(prefabs.PropSpec{
		Name:     "oak",
		Kind:     "tree",
		Position: prefabs.Vec3Spec{0, 0, 0},
		Size:     prefabs.Vec3Spec{3, 8, 3},
	})
	require.Len(t, node.Children(), 2)
	for _, c := range node.Children() {
		assert.Equal(t, node, c.Root())
	}

	bounds, ok := node.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 8, bounds.Max.Y, 1e-9)
}

func TestNewPropRegistersObstacle(t *testing.T) {
	w := ecs.NewWorld()
	cw := collision.NewWorld()
	root := scene.NewScene()

	e, err := NewProp(w, cw, root, prefabs.PropSpec{
		Name:      "crate_a",
		Kind:      "crate",
		Position:  prefabs.Vec3Spec{5, 0, 5},
		Size:      prefabs.Vec3Spec{1, 1, 1},
		Breakable: true,
	})
	require.NoError(t, err)

	prop, ok := ecs.Get(w, e, component.PropComponent.Kind())
	require.True(t, ok)
	ob, ok := cw.Get(prop.Obstacle)
	require.True(t, ok)
	assert.Equal(t, e, ob.Ref)
	assert.True(t, ob.Breakable)
	assert.Len(t, root.Children(), 1)
	assert.Equal(t, prop.Node, root.Children()[0])
}
