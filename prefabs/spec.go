package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec is written as a [x, y, z] sequence.
type Vec3Spec [3]float64

type BoxSpec struct {
	Min Vec3Spec `yaml:"min"`
	Max Vec3Spec `yaml:"max"`
}

// HexColor decodes "#rrggbb" or "#rrggbbaa".
type HexColor color.RGBA

func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimPrefix(strings.TrimSpace(node.Value), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("prefabs: line %d: bad color %q", node.Line, node.Value)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("prefabs: line %d: bad color %q: %w", node.Line, node.Value, err)
	}
	*c = HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

type EnemySpec struct {
	Type                string   `yaml:"type"`
	Speed               float64  `yaml:"speed"`
	Health              int      `yaml:"health"`
	Damage              int      `yaml:"damage"`
	KnockbackMultiplier float64  `yaml:"knockback_multiplier"`
	AnimRate            float64  `yaml:"anim_rate"`
	Gold                int      `yaml:"gold"`
	Color               HexColor `yaml:"color"`
}

type EnemyCatalog struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

func LoadEnemyCatalog() (*EnemyCatalog, error) {
	spec, err := LoadSpec[EnemyCatalog]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	for i, e := range spec.Enemies {
		if strings.TrimSpace(e.Type) == "" {
			return nil, fmt.Errorf("prefabs: enemies.yaml: entry %d has no type", i)
		}
		if e.Health <= 0 {
			return nil, fmt.Errorf("prefabs: enemies.yaml: %s: health must be positive", e.Type)
		}
	}
	return &spec, nil
}

type PropSpec struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"`
	Position  Vec3Spec `yaml:"position"`
	Size      Vec3Spec `yaml:"size"`
	Breakable bool     `yaml:"breakable"`
	// Instanced props share one draw batch and cannot be faded one by one.
	Instanced bool `yaml:"instanced"`
}

type MapSpec struct {
	Name         string             `yaml:"name"`
	AllowEnemies bool               `yaml:"allow_enemies"`
	AllowItems   bool               `yaml:"allow_items"`
	Quota        int                `yaml:"quota"`
	Extraction   Vec3Spec           `yaml:"extraction"`
	SpawnWeights map[string]float64 `yaml:"spawn_weights"`
	SpawnScript  string             `yaml:"spawn_script"`
	Walls        []BoxSpec          `yaml:"walls"`
	Props        []PropSpec         `yaml:"props"`
}

type MapCatalog struct {
	Default string    `yaml:"default"`
	Maps    []MapSpec `yaml:"maps"`
}

func LoadMapCatalog() (*MapCatalog, error) {
	spec, err := LoadSpec[MapCatalog]("maps.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Maps) == 0 {
		return nil, fmt.Errorf("prefabs: maps.yaml: no maps defined")
	}
	if _, ok := spec.Lookup(spec.Default); !ok {
		return nil, fmt.Errorf("prefabs: maps.yaml: default map %q not defined", spec.Default)
	}
	return &spec, nil
}

// Lookup finds a map by case-insensitive name.
func (c *MapCatalog) Lookup(name string) (MapSpec, bool) {
	if c == nil {
		return MapSpec{}, false
	}
	name = strings.TrimSpace(name)
	for _, m := range c.Maps {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return MapSpec{}, false
}

// Names lists the map names in file order.
func (c *MapCatalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Maps))
	for _, m := range c.Maps {
		names = append(names, m.Name)
	}
	return names
}
