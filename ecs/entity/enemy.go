package entity

import (
	"fmt"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs"
	"github.com/milk9111/duskrun/ecs/component"
	"github.com/milk9111/duskrun/enemy"
)

// NewEnemyAt spawns a fresh enemy of the given archetype. Stats are copied
// so later table reloads do not affect live enemies.
func NewEnemyAt(w *ecs.World, arch *enemy.Archetype, pos common.Vec3) (ecs.Entity, error) {
	if arch == nil {
		return 0, fmt.Errorf("enemy: nil archetype")
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Archetype:           arch,
		Speed:               arch.Stats.Speed,
		Damage:              arch.Stats.Damage,
		KnockbackMultiplier: arch.Stats.KnockbackMultiplier,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: arch.Stats.MaxHealth,
		Max:     arch.Stats.MaxHealth,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{}); err != nil {
		return 0, fmt.Errorf("enemy: add white flash: %w", err)
	}
	return entity, nil
}
