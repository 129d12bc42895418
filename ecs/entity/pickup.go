package entity

import (
	"fmt"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

const (
	PickupRadius     = 1.5
	ExtractionRadius = 3.0
)

func NewPickupAt(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{Radius: PickupRadius}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	return entity, nil
}

func NewExtractionAt(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ExtractionComponent.Kind(), &component.Extraction{Radius: ExtractionRadius}); err != nil {
		return 0, fmt.Errorf("extraction: add extraction component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("extraction: add transform: %w", err)
	}
	return entity, nil
}

// NewRun creates the singleton run tally.
func NewRun(w *ecs.World, run component.Run) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.RunComponent.Kind(), &run); err != nil {
		return 0, fmt.Errorf("run: add run component: %w", err)
	}
	return entity, nil
}
