// Package collision owns the static obstacle registry and resolves player
// movement against it.
package collision

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/common"
	"go.uber.org/zap"
)

// ObstacleID identifies a registered obstacle. Zero is never issued.
type ObstacleID uint32

// Obstacle is an immutable static box plus the object that owns it (usually
// a *scene.Node). Walls carry no owner.
type Obstacle struct {
	ID        ObstacleID
	Box       common.AABB
	Ref       any
	Breakable bool
}

type entry struct {
	obstacle Obstacle
	shape    *cp.Shape
}

// World is the single owner of static collision geometry. Obstacle
// footprints live in a chipmunk space as static shapes so queries can use its
// spatial index; vertical overlap is checked exactly afterwards.
//
// Registration and immediate unregistration are for map load and unload.
// Gameplay removals (breakables) go through QueueRemoval and are applied by
// FlushRemovals between frames so readers never see a half-mutated list.
type World struct {
	space   *cp.Space
	entries map[ObstacleID]*entry
	next    ObstacleID
	pending []ObstacleID

	boundary float64
	log      *zap.Logger
}

type Option func(*World)

// WithBoundary sets the planar world-edge radius used by Resolve.
func WithBoundary(radius float64) Option {
	return func(w *World) { w.boundary = radius }
}

func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		space:    cp.NewSpace(),
		entries:  make(map[ObstacleID]*entry),
		boundary: DefaultBoundaryRadius,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Boundary returns the world-edge radius.
func (w *World) Boundary() float64 {
	return w.boundary
}

// Register adds a static obstacle and returns its id.
func (w *World) Register(box common.AABB, ref any, breakable bool) ObstacleID {
	w.next++
	id := w.next

	bb := cp.BB{L: box.Min.X, B: box.Min.Z, R: box.Max.X, T: box.Max.Z}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.UserData = id
	w.space.AddShape(shape)

	w.entries[id] = &entry{
		obstacle: Obstacle{ID: id, Box: box, Ref: ref, Breakable: breakable},
		shape:    shape,
	}
	return id
}

// Unregister removes an obstacle immediately. Use QueueRemoval during a frame.
func (w *World) Unregister(id ObstacleID) bool {
	e, ok := w.entries[id]
	if !ok {
		return false
	}
	w.space.RemoveShape(e.shape)
	delete(w.entries, id)
	return true
}

// QueueRemoval schedules an obstacle for removal at the next FlushRemovals.
// Unknown or already queued ids are ignored.
func (w *World) QueueRemoval(id ObstacleID) bool {
	if _, ok := w.entries[id]; !ok {
		return false
	}
	for _, p := range w.pending {
		if p == id {
			return false
		}
	}
	w.pending = append(w.pending, id)
	return true
}

// FlushRemovals applies queued removals and returns the removed obstacles.
func (w *World) FlushRemovals() []Obstacle {
	if len(w.pending) == 0 {
		return nil
	}
	removed := make([]Obstacle, 0, len(w.pending))
	for _, id := range w.pending {
		if e, ok := w.entries[id]; ok {
			removed = append(removed, e.obstacle)
			w.Unregister(id)
			w.log.Debug("obstacle removed", zap.Uint32("id", uint32(id)))
		}
	}
	w.pending = w.pending[:0]
	return removed
}

// Clear unregisters everything, as on map unload.
func (w *World) Clear() {
	for id := range w.entries {
		w.Unregister(id)
	}
	w.pending = nil
}

// Len returns the number of registered obstacles.
func (w *World) Len() int {
	return len(w.entries)
}

// Get returns a registered obstacle.
func (w *World) Get(id ObstacleID) (Obstacle, bool) {
	e, ok := w.entries[id]
	if !ok {
		return Obstacle{}, false
	}
	return e.obstacle, true
}

// Obstacles returns every registered obstacle in registration order.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, len(w.entries))
	for _, e := range w.entries {
		out = append(out, e.obstacle)
	}
	sortByID(out)
	return out
}

// Query returns the obstacles whose boxes intersect box, in registration
// order.
func (w *World) Query(box common.AABB) []Obstacle {
	var out []Obstacle
	bb := cp.BB{L: box.Min.X, B: box.Min.Z, R: box.Max.X, T: box.Max.Z}
	w.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		id, ok := shape.UserData.(ObstacleID)
		if !ok {
			return
		}
		e, ok := w.entries[id]
		if !ok || !e.obstacle.Box.Intersects(box) {
			return
		}
		out = append(out, e.obstacle)
	}, nil)
	sortByID(out)
	return out
}

// Blocked reports whether box intersects any obstacle.
func (w *World) Blocked(box common.AABB) bool {
	return len(w.Query(box)) > 0
}

func sortByID(obs []Obstacle) {
	sort.Slice(obs, func(i, j int) bool { return obs[i].ID < obs[j].ID })
}
