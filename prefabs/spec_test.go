package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadEnemyCatalog(t *testing.T) {
	cat, err := LoadEnemyCatalog()
	require.NoError(t, err)

	byType := map[string]EnemySpec{}
	for _, e := range cat.Enemies {
		byType[e.Type] = e
	}
	require.Len(t, byType, 6)

	golem := byType["golem"]
	assert.Equal(t, 1.5, golem.Speed)
	assert.Equal(t, 8, golem.Health)
	assert.Equal(t, 2, golem.Damage)
	assert.Equal(t, 0.2, golem.KnockbackMultiplier)
	assert.Equal(t, HexColor{R: 0x8a, G: 0x8d, B: 0x91, A: 0xff}, golem.Color)

	assert.Equal(t, 3.0, byType["slime"].Speed)
	assert.Equal(t, 7.0, byType["drone"].Speed)
}

func TestLoadMapCatalog(t *testing.T) {
	cat, err := LoadMapCatalog()
	require.NoError(t, err)
	assert.Equal(t, "forest", cat.Default)
	assert.Equal(t, []string{"forest", "city", "hospital", "arena"}, cat.Names())

	forest, ok := cat.Lookup("FOREST")
	require.True(t, ok)
	assert.True(t, forest.AllowItems)
	assert.Equal(t, 3, forest.Quota)
	assert.Equal(t, Vec3Spec{0, 0, -55}, forest.Extraction)
	assert.Equal(t, 5.0, forest.SpawnWeights["slime"])

	var instanced, breakable int
	for _, p := range forest.Props {
		if p.Instanced {
			instanced++
		}
		if p.Breakable {
			breakable++
		}
	}
	assert.Equal(t, 1, instanced)
	assert.Equal(t, 2, breakable)

	hospital, ok := cat.Lookup("hospital")
	require.True(t, ok)
	assert.Equal(t, "hospital.tengo", hospital.SpawnScript)

	_, ok = cat.Lookup("moon")
	assert.False(t, ok)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"hospital.tengo", "scripts/hospital.tengo", "prefabs/scripts/hospital.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "weights")
	}
}

func TestHexColorRejectsGarbage(t *testing.T) {
	var spec struct {
		C HexColor `yaml:"c"`
	}
	assert.Error(t, yaml.Unmarshal([]byte(`c: "#12"`), &spec))
	assert.Error(t, yaml.Unmarshal([]byte(`c: "#zzzzzz"`), &spec))
	require.NoError(t, yaml.Unmarshal([]byte(`c: "#01020304"`), &spec))
	assert.Equal(t, HexColor{R: 1, G: 2, B: 3, A: 4}, spec.C)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := DiskRoot
	DiskRoot = dir
	t.Cleanup(func() { DiskRoot = prev })

	body := "enemies:\n  - type: bat\n    speed: 9\n    health: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.yaml"), []byte(body), 0o644))

	cat, err := LoadEnemyCatalog()
	require.NoError(t, err)
	require.Len(t, cat.Enemies, 1)
	assert.Equal(t, "bat", cat.Enemies[0].Type)

	_, ok := ModTime("enemies.yaml")
	assert.True(t, ok)
}

func TestEnemyCatalogValidation(t *testing.T) {
	dir := t.TempDir()
	prev := DiskRoot
	DiskRoot = dir
	t.Cleanup(func() { DiskRoot = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.yaml"), []byte("enemies:\n  - type: bat\n    health: 0\n"), 0o644))
	_, err := LoadEnemyCatalog()
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	c, ok := classify("/x/prefabs/enemies.yaml")
	require.True(t, ok)
	assert.Equal(t, ChangeSpec, c.Kind)
	assert.Equal(t, "enemies.yaml", c.Name)

	c, ok = classify("scripts/hospital.tengo")
	require.True(t, ok)
	assert.Equal(t, ChangeScript, c.Kind)

	_, ok = classify("notes.txt")
	assert.False(t, ok)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "enemies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies: []\n"), 0o644))

	select {
	case c := <-w.Changes:
		assert.Equal(t, "enemies.yaml", c.Name)
		assert.Equal(t, ChangeSpec, c.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
