// Package effects is the fire-and-forget boundary to particles and audio.
package effects

import (
	"github.com/milk9111/duskrun/common"
	"go.uber.org/zap"
)

type Type string

const (
	Hit     Type = "hit"
	Death   Type = "death"
	Damage  Type = "damage"
	Collect Type = "collect"
	Break   Type = "break"
)

// Sink receives cosmetic side effects. Calls return immediately and never
// report back into the simulation.
type Sink interface {
	Emit(pos common.Vec3, typ Type, count int)
	PlayHit()
	PlayDamage()
	PlayCollect()
}

type Nop struct{}

func (Nop) Emit(common.Vec3, Type, int) {}
func (Nop) PlayHit()                    {}
func (Nop) PlayDamage()                 {}
func (Nop) PlayCollect()                {}

type Emission struct {
	Pos   common.Vec3
	Type  Type
	Count int
}

// Recorder keeps every call, for tests and replays.
type Recorder struct {
	Emitted  []Emission
	Hits     int
	Damages  int
	Collects int
}

func (r *Recorder) Emit(pos common.Vec3, typ Type, count int) {
	r.Emitted = append(r.Emitted, Emission{Pos: pos, Type: typ, Count: count})
}

func (r *Recorder) PlayHit()     { r.Hits++ }
func (r *Recorder) PlayDamage()  { r.Damages++ }
func (r *Recorder) PlayCollect() { r.Collects++ }

// Count returns how many emissions of typ were recorded.
func (r *Recorder) Count(typ Type) int {
	n := 0
	for _, e := range r.Emitted {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// Logged forwards to another sink and writes a debug line per emission.
type Logged struct {
	Next Sink
	Log  *zap.Logger
}

func (l Logged) Emit(pos common.Vec3, typ Type, count int) {
	l.Log.Debug("effect", zap.String("type", string(typ)), zap.Int("count", count),
		zap.Float64("x", pos.X), zap.Float64("z", pos.Z))
	l.Next.Emit(pos, typ, count)
}

func (l Logged) PlayHit()     { l.Next.PlayHit() }
func (l Logged) PlayDamage()  { l.Next.PlayDamage() }
func (l Logged) PlayCollect() { l.Next.PlayCollect() }
