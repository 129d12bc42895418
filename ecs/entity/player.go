package entity

import (
	"fmt"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
)

type PlayerConfig struct {
	Speed  float64
	Damage int
	Health int
}

func NewPlayerAt(w *ecs.World, cfg PlayerConfig, pos common.Vec3) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Speed:  cfg.Speed,
		Damage: cfg.Damage,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: cfg.Health, Max: cfg.Health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{}); err != nil {
		return 0, fmt.Errorf("player: add invulnerable: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return entity, nil
}
