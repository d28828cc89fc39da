// internal/system/status_effect.go
package system

import "go-wave-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление и оглушение.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update decays stuns, slows and hit flashes. It runs before movement so
// an enemy whose stun ends this tick can already move.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		enemy.Effects.Tick(deltaTime)
		if enemy.HitFlash > 0 {
			enemy.HitFlash -= deltaTime
			if enemy.HitFlash < 0 {
				enemy.HitFlash = 0
			}
		}
	}
}
