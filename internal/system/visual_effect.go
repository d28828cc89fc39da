// internal/system/visual_effect.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами атак.
// Эффекты не влияют на симуляцию.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update ages the effects and drops the finished ones.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	lasers := s.ecs.Lasers[:0]
	for _, l := range s.ecs.Lasers {
		l.Timer += deltaTime
		if l.Timer < l.Duration {
			lasers = append(lasers, l)
		}
	}
	s.ecs.Lasers = lasers

	blasts := s.ecs.Blasts[:0]
	for _, b := range s.ecs.Blasts {
		b.Timer += deltaTime
		if b.Timer >= b.Duration {
			continue
		}
		// Кольцо растёт до полного радиуса атаки
		b.Radius = b.Progress() * b.MaxRadius
		blasts = append(blasts, b)
	}
	s.ecs.Blasts = blasts
}

// recordAttack adds the effects of one attack.
func recordAttack(ecs *entity.ECS, tower *component.Tower, target *component.Enemy) {
	if tower.Def.Kind == defs.TowerMelee {
		ecs.Blasts = append(ecs.Blasts, &component.Blast{Center: tower.Position, MaxRadius: tower.Def.Range, Duration: component.BlastDuration})
		return
	}
	ecs.Lasers = append(ecs.Lasers, &component.Laser{From: tower.Position, To: target.Position, Duration: component.LaserDuration})
	if tower.Def.AreaAttack {
		ecs.Blasts = append(ecs.Blasts, &component.Blast{Center: target.Position, MaxRadius: tower.Def.AreaRadius, Duration: component.BlastDuration})
	}
}
