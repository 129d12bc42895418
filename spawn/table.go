package spawn

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/duskrun/enemy"
	"go.uber.org/zap"
)

type weightedEntry struct {
	typ    enemy.Type
	weight float64
}

// Weighted is a weighted random choice over enemy types.
type Weighted struct {
	entries []weightedEntry
	total   float64
}

// NewWeighted builds a table from type weights. Non-positive weights are
// dropped; entries are kept in name order so a seeded rng is reproducible.
func NewWeighted(weights map[string]float64) (*Weighted, error) {
	w := &Weighted{}
	for name, weight := range weights {
		if weight <= 0 {
			continue
		}
		typ := enemy.Type(strings.ToLower(strings.TrimSpace(name)))
		if typ == "" {
			return nil, fmt.Errorf("spawn: empty enemy type in weights")
		}
		w.entries = append(w.entries, weightedEntry{typ: typ, weight: weight})
		w.total += weight
	}
	if len(w.entries) == 0 {
		return nil, fmt.Errorf("spawn: no positive weights")
	}
	sort.Slice(w.entries, func(i, j int) bool { return w.entries[i].typ < w.entries[j].typ })
	return w, nil
}

func (w *Weighted) Pick(rng *rand.Rand) enemy.Type {
	r := rng.Float64() * w.total
	for _, e := range w.entries {
		if r < e.weight {
			return e.typ
		}
		r -= e.weight
	}
	return w.entries[len(w.entries)-1].typ
}

// Types lists the types with a positive weight.
func (w *Weighted) Types() []enemy.Type {
	out := make([]enemy.Type, 0, len(w.entries))
	for _, e := range w.entries {
		out = append(out, e.typ)
	}
	return out
}

// Script computes weights from a tengo program. The program sees `level`
// (int), `night` (bool) and `time` (float) and must leave a `weights` map.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("level", 0)
	_ = script.Add("night", false)
	_ = script.Add("time", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Weights runs the script for the current conditions. Inputs the script never
// reads are dropped by the compiler and skipped here.
func (s *Script) Weights(level int, night bool, t float64) (map[string]float64, error) {
	inputs := []struct {
		name  string
		value any
	}{
		{"level", level},
		{"night", night},
		{"time", t},
	}
	for _, in := range inputs {
		if !s.compiled.IsDefined(in.name) {
			continue
		}
		if err := s.compiled.Set(in.name, in.value); err != nil {
			return nil, fmt.Errorf("spawn: %s: set %s: %w", s.name, in.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("spawn: run %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("weights") {
		return nil, fmt.Errorf("spawn: %s: weights not defined", s.name)
	}
	raw := s.compiled.Get("weights").Map()
	if raw == nil {
		return nil, fmt.Errorf("spawn: %s: weights is not a map", s.name)
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		switch n := v.(type) {
		case int64:
			out[k] = float64(n)
		case float64:
			out[k] = n
		default:
			return nil, fmt.Errorf("spawn: %s: weight %q is %T", s.name, k, v)
		}
	}
	return out, nil
}

// Table picks the enemy type for a spawn: from the map's script when it has
// one, otherwise (or when the script fails) from the static weights.
type Table struct {
	base   *Weighted
	script *Script
	log    *zap.Logger
}

func NewTable(base *Weighted, script *Script, log *zap.Logger) *Table {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table{base: base, script: script, log: log}
}

func (t *Table) Pick(rng *rand.Rand, level int, night bool, timeOfDay float64) enemy.Type {
	if t.script != nil {
		weights, err := t.script.Weights(level, night, timeOfDay)
		if err == nil {
			var w *Weighted
			w, err = NewWeighted(weights)
			if err == nil {
				return w.Pick(rng)
			}
		}
		t.log.Warn("spawn script failed, using static weights", zap.String("script", t.script.name), zap.Error(err))
	}
	return t.base.Pick(rng)
}
