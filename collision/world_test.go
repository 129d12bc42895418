package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duskrun/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallAtX(x float64) common.AABB {
	return common.AABB{Min: common.V3(x, 0, -10), Max: common.V3(x+1, 3, 10)}
}

func TestResolveFreeMove(t *testing.T) {
	w := NewWorld()
	got := w.Resolve(common.V3(0, 0, 0), cp.Vector{X: 1, Y: 2})
	assert.Equal(t, common.V3(1, 0, 2), got)
}

func TestResolveSlidesAlongWall(t *testing.T) {
	w := NewWorld()
	w.Register(wallAtX(1), nil, false)

	// moving diagonally into a wall on +x keeps the z component
	got := w.Resolve(common.V3(0, 0, 0), cp.Vector{X: 1, Y: 1})
	assert.Equal(t, common.V3(0, 0, 1), got)
}

func TestResolveSlidesOnX(t *testing.T) {
	w := NewWorld()
	w.Register(common.AABB{Min: common.V3(-10, 0, 1), Max: common.V3(10, 3, 2)}, nil, false)

	got := w.Resolve(common.V3(0, 0, 0), cp.Vector{X: 1, Y: 1})
	assert.Equal(t, common.V3(1, 0, 0), got)
}

func TestResolveCornerStops(t *testing.T) {
	w := NewWorld()
	w.Register(wallAtX(1), nil, false)
	w.Register(common.AABB{Min: common.V3(-10, 0, 1), Max: common.V3(10, 3, 2)}, nil, false)

	start := common.V3(0, 0, 0)
	got := w.Resolve(start, cp.Vector{X: 1, Y: 1})
	assert.Equal(t, start, got)
}

func TestResolveIgnoresObstaclesAboveHead(t *testing.T) {
	w := NewWorld()
	w.Register(common.AABB{Min: common.V3(-5, 2.5, -5), Max: common.V3(5, 4, 5)}, nil, false)

	got := w.Resolve(common.V3(0, 0, 0), cp.Vector{X: 1, Y: 0})
	assert.Equal(t, common.V3(1, 0, 0), got)
}

func TestResolveClampsToBoundary(t *testing.T) {
	w := NewWorld()
	got := w.Resolve(common.V3(68, 0, 0), cp.Vector{X: 5, Y: 0})
	assert.InDelta(t, DefaultBoundaryRadius, got.Planar().Length(), 1e-9)

	got = w.Resolve(common.V3(40, 0, 40), cp.Vector{X: 20, Y: 20})
	assert.InDelta(t, DefaultBoundaryRadius, got.Planar().Length(), 1e-9)
	assert.InDelta(t, got.X, got.Z, 1e-9)
}

func TestResolveNeverEntersObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	boxes := Boxes{}
	for i := 0; i < 30; i++ {
		c := common.V3(rng.Float64()*40-20, 1, rng.Float64()*40-20)
		boxes = append(boxes, common.BoxAt(c, 1+rng.Float64()*3, 2, 1+rng.Float64()*3))
	}

	for i := 0; i < 500; i++ {
		pos := common.V3(rng.Float64()*40-20, 0, rng.Float64()*40-20)
		if boxes.Blocked(PlayerBox(pos)) {
			continue
		}
		d := cp.Vector{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		got := Resolve(pos, d, boxes, 0)
		if got != pos {
			require.False(t, boxes.Blocked(PlayerBox(got)), "resolved into an obstacle from %v by %v", pos, d)
		}
	}
}

func TestQueryUsesExactBoxes(t *testing.T) {
	w := NewWorld()
	a := w.Register(common.AABB{Min: common.V3(0, 0, 0), Max: common.V3(1, 1, 1)}, "a", false)
	w.Register(common.AABB{Min: common.V3(5, 0, 5), Max: common.V3(6, 1, 6)}, "b", false)

	hits := w.Query(common.AABB{Min: common.V3(0.5, 0.5, 0.5), Max: common.V3(2, 2, 2)})
	require.Len(t, hits, 1)
	assert.Equal(t, a, hits[0].ID)
	assert.Equal(t, "a", hits[0].Ref)

	// touching faces are not a hit
	assert.Empty(t, w.Query(common.AABB{Min: common.V3(1, 0, 0), Max: common.V3(2, 1, 1)}))
}

func TestQueuedRemovalAppliesOnFlush(t *testing.T) {
	w := NewWorld()
	id := w.Register(wallAtX(1), nil, true)

	assert.True(t, w.QueueRemoval(id))
	assert.False(t, w.QueueRemoval(id), "double queue is ignored")
	assert.True(t, w.Blocked(PlayerBox(common.V3(1.2, 0, 0))), "still present until flush")

	removed := w.FlushRemovals()
	require.Len(t, removed, 1)
	assert.Equal(t, id, removed[0].ID)
	assert.False(t, w.Blocked(PlayerBox(common.V3(1.2, 0, 0))))
	assert.Nil(t, w.FlushRemovals())
	assert.False(t, w.QueueRemoval(id))
}

func TestClearAndObstaclesOrder(t *testing.T) {
	w := NewWorld(WithBoundary(math.Inf(1)))
	ids := []ObstacleID{}
	for i := 0; i < 5; i++ {
		ids = append(ids, w.Register(wallAtX(float64(i*3)), i, false))
	}
	obs := w.Obstacles()
	require.Len(t, obs, 5)
	for i, o := range obs {
		assert.Equal(t, ids[i], o.ID)
	}

	w.Clear()
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Blocked(PlayerBox(common.V3(0.5, 0, 0))))
}
