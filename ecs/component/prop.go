package component

import (
	"github.com/milk9111/duskrun/collision"
	"github.com/milk9111/duskrun/scene"
)

// Prop is a piece of static map geometry: a collision obstacle and the scene
// node that draws it. Node is nil for invisible walls.
type Prop struct {
	Name      string
	Kind      string
	Obstacle  collision.ObstacleID
	Node      *scene.Node
	Breakable bool
	Broken    bool
}

var PropComponent = NewComponent[Prop]()
