package enemy

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableStats(t *testing.T) {
	table := DefaultTable()
	cases := []struct {
		typ    Type
		speed  float64
		health int
		damage int
		kb     float64
	}{
		{Slime, 3.0, 3, 1, 1.0},
		{Spider, 5.5, 2, 1, 1.0},
		{Golem, 1.5, 8, 2, 0.2},
		{Car, 6.0, 5, 3, 1.0},
		{Drone, 7.0, 2, 1, 1.0},
		{Patient, 4.5, 4, 2, 1.0},
	}
	for _, c := range cases {
		a, ok := table.Lookup(c.typ)
		require.True(t, ok, c.typ)
		assert.Equal(t, c.speed, a.Stats.Speed, c.typ)
		assert.Equal(t, c.health, a.Stats.MaxHealth, c.typ)
		assert.Equal(t, c.damage, a.Stats.Damage, c.typ)
		assert.Equal(t, c.kb, a.Stats.KnockbackMultiplier, c.typ)
		assert.NotNil(t, a.Steer)
		assert.NotNil(t, a.Animate)
	}
	assert.Len(t, table.Types(), 6)
}

func TestTableMatchesContent(t *testing.T) {
	cat, err := prefabs.LoadEnemyCatalog()
	require.NoError(t, err)

	fromContent := DefaultTable()
	require.NoError(t, fromContent.Apply(cat.Enemies))
	builtin := DefaultTable()
	for _, typ := range builtin.Types() {
		a, _ := builtin.Lookup(typ)
		b, ok := fromContent.Lookup(typ)
		require.True(t, ok)
		assert.Equal(t, a.Stats, b.Stats, typ)
	}
}

func TestApplyAddsAndReplaces(t *testing.T) {
	table := DefaultTable()
	before, _ := table.Lookup(Slime)

	err := table.Apply([]prefabs.EnemySpec{
		{Type: "Slime", Speed: 4, Health: 5, Damage: 1, KnockbackMultiplier: 1},
		{Type: "bat", Speed: 8, Health: 1, Damage: 1, KnockbackMultiplier: 1.5},
	})
	require.NoError(t, err)

	after, _ := table.Lookup(Slime)
	assert.Equal(t, 4.0, after.Stats.Speed)
	assert.Equal(t, 3.0, before.Stats.Speed, "existing archetype is not mutated")

	bat, ok := table.Lookup("bat")
	require.True(t, ok)
	assert.NotNil(t, bat.Steer)

	assert.Error(t, table.Apply([]prefabs.EnemySpec{{Type: "x", Health: 0}}))
	assert.Error(t, table.Apply([]prefabs.EnemySpec{{Type: " ", Health: 1}}))
}

func TestSteerDirect(t *testing.T) {
	pos := SteerDirect(cp.Vector{X: 0, Y: 25}, cp.Vector{}, 3, 1)
	assert.InDelta(t, 22.0, pos.Length(), 1e-9)

	pos = SteerDirect(cp.Vector{X: 0.5, Y: 0}, cp.Vector{}, 3, 1)
	assert.Equal(t, cp.Vector{}, pos, "does not overshoot")
}

func TestAnimateAdvancesPhase(t *testing.T) {
	for _, typ := range DefaultTable().Types() {
		a, _ := DefaultTable().Lookup(typ)
		phase, _ := a.Animate(0, a.Stats.AnimRate, 0.1)
		assert.Greater(t, phase, 0.0, typ)
	}
}
