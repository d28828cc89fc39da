package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
)

// attackMode selects how a tower resolves a shot.
type attackMode struct {
	kind defs.TowerKind
	area bool
}

// attackResolver returns every enemy a shot at target hits.
type attackResolver func(s *CombatSystem, tower *component.Tower, target *component.Enemy) []*component.Enemy

var attackResolvers = map[attackMode]attackResolver{
	{defs.TowerRanged, false}: singleTarget,
	{defs.TowerRanged, true}:  areaAroundTarget,
	{defs.TowerMelee, false}:  areaAroundTower,
	{defs.TowerMelee, true}:   areaAroundTower,
}

func singleTarget(_ *CombatSystem, _ *component.Tower, target *component.Enemy) []*component.Enemy {
	return []*component.Enemy{target}
}

// areaAroundTarget hits everything near the target, not near the tower.
func areaAroundTarget(s *CombatSystem, tower *component.Tower, target *component.Enemy) []*component.Enemy {
	return enemiesAround(s.index, target.Position, tower.Def.AreaRadius)
}

func areaAroundTower(s *CombatSystem, tower *component.Tower, _ *component.Enemy) []*component.Enemy {
	return enemiesAround(s.index, tower.Position, tower.Def.Range)
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs          *entity.ECS
	index        SpatialIndex
	logger       *log.Logger
	scanInterval float64
}

func NewCombatSystem(ecs *entity.ECS, index SpatialIndex, logger *log.Logger, scanInterval float64) *CombatSystem {
	return &CombatSystem{
		ecs:          ecs,
		index:        index,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Update runs every tower's attack loop. Enemies killed here report their
// death before the wave system checks for completion in the same tick.
func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range s.ecs.SortedTowerIDs() {
		tower := s.ecs.Towers[id]
		if !tower.Active {
			continue
		}

		target := s.currentTarget(tower)
		if target == nil {
			if tower.Target != 0 {
				// Target died or walked away: rescan right away.
				tower.Target = 0
				tower.ScanTimer = 0
				tower.State = component.TowerSeeking
			}
			tower.ScanTimer -= deltaTime
			if tower.ScanTimer > 0 {
				continue
			}
			tower.ScanTimer = s.scanInterval
			target = s.Rescan(tower)
			if target == nil {
				continue
			}
		}

		tower.State = component.TowerEngaged
		if !tower.CanFire(now) {
			continue
		}
		s.fire(tower, target, now)
	}
}

// Rescan picks the nearest living enemy in range and engages it.
func (s *CombatSystem) Rescan(tower *component.Tower) *component.Enemy {
	candidates := s.index.EnemiesWithin(tower.Position, tower.Def.Range)
	target, ok := SelectNearest(tower.Position, candidates,
		Both(enemyAttackable, WithinRange[*component.Enemy](tower.Position, tower.Def.Range)))
	if !ok {
		tower.Target = 0
		tower.State = component.TowerIdle
		return nil
	}
	tower.Target = target.ID
	tower.State = component.TowerEngaged
	return target
}

func (s *CombatSystem) currentTarget(tower *component.Tower) *component.Enemy {
	if tower.Target == 0 {
		return nil
	}
	enemy, ok := s.ecs.Enemies[tower.Target]
	if !ok || !enemy.Alive || enemy.Position.Dist(tower.Position) > tower.Def.Range {
		return nil
	}
	return enemy
}

// fire resolves one attack. Status effects are applied once to every enemy hit.
func (s *CombatSystem) fire(tower *component.Tower, target *component.Enemy, now float64) {
	tower.State = component.TowerAttacking
	tower.MarkFired(now)

	resolve, ok := attackResolvers[attackMode{tower.Def.Kind, tower.Def.AreaAttack}]
	if !ok {
		s.logger.Printf("CombatSystem: tower %d has unknown kind %q", tower.ID, tower.Def.Kind)
		return
	}
	recordAttack(s.ecs, tower, target)

	for _, enemy := range resolve(s, tower, target) {
		if enemy.TakeDamage(tower.Def.Damage) {
			continue
		}
		if tower.Def.Stun != nil {
			enemy.ApplyStun(tower.Def.Stun.Duration)
		}
		if tower.Def.Slow != nil {
			enemy.ApplySlow(tower.Def.Slow.Duration, tower.Def.Slow.Multiplier)
		}
	}

	if !target.Alive {
		tower.Target = 0
		tower.ScanTimer = 0
		tower.State = component.TowerSeeking
	}
}
