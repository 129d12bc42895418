// Package enemy defines enemy archetypes: per-type stats plus the steering
// and animation behaviour resolved once when an enemy is created.
package enemy

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/prefabs"
)

type Type string

const (
	Slime   Type = "slime"
	Spider  Type = "spider"
	Golem   Type = "golem"
	Car     Type = "car"
	Drone   Type = "drone"
	Patient Type = "patient"
)

type Stats struct {
	Speed               float64
	MaxHealth           int
	Damage              int
	KnockbackMultiplier float64
	AnimRate            float64
	Gold                int
	Color               color.RGBA
}

// SteerFunc returns the enemy's next planar position when chasing target.
type SteerFunc func(pos, target cp.Vector, speed, dt float64) cp.Vector

// AnimateFunc advances the animation phase and returns the new phase and a
// cosmetic vertical offset.
type AnimateFunc func(phase, rate, dt float64) (float64, float64)

type Archetype struct {
	Type    Type
	Stats   Stats
	Steer   SteerFunc
	Animate AnimateFunc
}

// Table maps types to archetypes. It is read and written only from the game
// loop.
type Table struct {
	archetypes map[Type]*Archetype
}

// DefaultTable returns the built-in archetypes.
func DefaultTable() *Table {
	t := &Table{archetypes: make(map[Type]*Archetype)}
	add := func(typ Type, s Stats, animate AnimateFunc) {
		t.archetypes[typ] = &Archetype{Type: typ, Stats: s, Steer: SteerDirect, Animate: animate}
	}
	add(Slime, Stats{Speed: 3.0, MaxHealth: 3, Damage: 1, KnockbackMultiplier: 1.0, AnimRate: 5, Gold: 1, Color: color.RGBA{0x6c, 0xc2, 0x4a, 0xff}}, AnimateBounce)
	add(Spider, Stats{Speed: 5.5, MaxHealth: 2, Damage: 1, KnockbackMultiplier: 1.0, AnimRate: 14, Gold: 1, Color: color.RGBA{0x3b, 0x2f, 0x2f, 0xff}}, AnimateScuttle)
	add(Golem, Stats{Speed: 1.5, MaxHealth: 8, Damage: 2, KnockbackMultiplier: 0.2, AnimRate: 2, Gold: 4, Color: color.RGBA{0x8a, 0x8d, 0x91, 0xff}}, AnimateStomp)
	add(Car, Stats{Speed: 6.0, MaxHealth: 5, Damage: 3, KnockbackMultiplier: 1.0, AnimRate: 10, Gold: 3, Color: color.RGBA{0xc0, 0x39, 0x2b, 0xff}}, AnimateRoll)
	add(Drone, Stats{Speed: 7.0, MaxHealth: 2, Damage: 1, KnockbackMultiplier: 1.0, AnimRate: 6, Gold: 2, Color: color.RGBA{0x2c, 0x3e, 0x50, 0xff}}, AnimateHover)
	add(Patient, Stats{Speed: 4.5, MaxHealth: 4, Damage: 2, KnockbackMultiplier: 1.0, AnimRate: 3, Gold: 2, Color: color.RGBA{0xdf, 0xe6, 0xe9, 0xff}}, AnimateShamble)
	return t
}

// Lookup returns the archetype for typ.
func (t *Table) Lookup(typ Type) (*Archetype, bool) {
	if t == nil {
		return nil, false
	}
	a, ok := t.archetypes[Type(strings.ToLower(string(typ)))]
	return a, ok
}

// Types lists the known types in name order.
func (t *Table) Types() []Type {
	if t == nil {
		return nil
	}
	out := make([]Type, 0, len(t.archetypes))
	for typ := range t.archetypes {
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Apply overlays stats from content. Known types keep their behaviour; new
// types chase directly and bounce. Archetypes are replaced rather than
// mutated so enemies already alive keep the stats they spawned with.
func (t *Table) Apply(specs []prefabs.EnemySpec) error {
	next := make(map[Type]*Archetype, len(t.archetypes)+len(specs))
	for typ, a := range t.archetypes {
		next[typ] = a
	}
	for _, s := range specs {
		typ := Type(strings.ToLower(strings.TrimSpace(s.Type)))
		if typ == "" {
			return fmt.Errorf("enemy: spec without type")
		}
		if s.Health <= 0 || s.Speed < 0 || s.KnockbackMultiplier < 0 {
			return fmt.Errorf("enemy: %s: invalid stats", typ)
		}
		a := &Archetype{Type: typ, Steer: SteerDirect, Animate: AnimateBounce}
		if prev, ok := t.archetypes[typ]; ok {
			a.Steer = prev.Steer
			a.Animate = prev.Animate
		}
		a.Stats = Stats{
			Speed:               s.Speed,
			MaxHealth:           s.Health,
			Damage:              s.Damage,
			KnockbackMultiplier: s.KnockbackMultiplier,
			AnimRate:            s.AnimRate,
			Gold:                s.Gold,
			Color:               color.RGBA(s.Color),
		}
		next[typ] = a
	}
	t.archetypes = next
	return nil
}

// SteerDirect moves straight at the target at a fixed speed without
// overshooting it.
func SteerDirect(pos, target cp.Vector, speed, dt float64) cp.Vector {
	d := target.Sub(pos)
	dist := d.Length()
	step := speed * dt
	if dist <= step || dist == 0 {
		return target
	}
	return pos.Add(d.Mult(step / dist))
}

func AnimateBounce(phase, rate, dt float64) (float64, float64) {
	phase += rate * dt
	return phase, 0.25 * math.Abs(math.Sin(phase))
}

func AnimateScuttle(phase, rate, dt float64) (float64, float64) {
	phase += rate * dt
	return phase, 0.05 * math.Sin(phase)
}

func AnimateStomp(phase, rate, dt float64) (float64, float64) {
	phase += rate * dt
	return phase, 0.1 * math.Max(0, math.Sin(phase))
}

// AnimateRoll spins wheels; the body does not move vertically.
func AnimateRoll(phase, rate, dt float64) (float64, float64) {
	return math.Mod(phase+rate*dt, 2*math.Pi), 0
}

func AnimateHover(phase, rate, dt float64) (float64, float64) {
	phase += rate * dt
	return phase, 1.2 + 0.15*math.Sin(phase)
}

func AnimateShamble(phase, rate, dt float64) (float64, float64) {
	phase += rate * dt
	return phase, 0.08 * math.Abs(math.Sin(phase*0.5))
}
