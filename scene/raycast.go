package scene

import (
	"sort"

	"github.com/milk9111/duskrun/common"
)

type Hit struct {
	Node     *Node
	Distance float64
}

// Raycast intersects the segment from origin along dir (unit length) up to
// far with every mesh under nodes. Instanced subtrees are skipped. Hits are
// ordered nearest first.
func Raycast(origin, dir common.Vec3, far float64, nodes []*Node) []Hit {
	var hits []Hit
	var visit func(n *Node)
	visit = func(n *Node) {
		if n.Instanced {
			return
		}
		if n.Mesh != nil {
			if t, ok := n.Mesh.Bounds.RayHit(origin, dir, far); ok {
				hits = append(hits, Hit{Node: n, Distance: t})
			}
		}
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, n := range nodes {
		if n != nil {
			visit(n)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
