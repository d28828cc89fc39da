// internal/system/enemy_attack.go
package system

import (
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// EnemyAttackSystem lets tower-attacking enemies stop next to the nearest
// tower and hit it until it is destroyed.
type EnemyAttackSystem struct {
	ecs             *entity.ECS
	index           SpatialIndex
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	scanInterval    float64
}

func NewEnemyAttackSystem(ecs *entity.ECS, index SpatialIndex, eventDispatcher *event.Dispatcher, logger *log.Logger, scanInterval float64) *EnemyAttackSystem {
	return &EnemyAttackSystem{
		ecs:             ecs,
		index:           index,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		scanInterval:    scanInterval,
	}
}

func (s *EnemyAttackSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive || !enemy.AttacksTowers() || enemy.Jump != nil {
			continue
		}

		target := s.validTarget(enemy)
		if target == nil {
			enemy.TargetTower = 0
			enemy.ScanTimer -= deltaTime
			if enemy.ScanTimer > 0 {
				continue
			}
			enemy.ScanTimer = s.scanInterval
			candidates := s.index.TowersWithin(enemy.Position, enemy.Attack.Range)
			found, ok := SelectNearest(enemy.Position, candidates,
				Both(towerAttackable, WithinRange[*component.Tower](enemy.Position, enemy.Attack.Range)))
			if !ok {
				continue
			}
			target = found
			enemy.TargetTower = found.ID
			enemy.AttackTimer = 0
		}

		// A stunned enemy keeps its target but cannot swing.
		if enemy.Effects.Stunned() {
			continue
		}
		enemy.AttackTimer -= deltaTime
		if enemy.AttackTimer > 0 {
			continue
		}
		enemy.AttackTimer = enemy.Attack.Cooldown()
		if target.TakeDamage(enemy.Attack.Damage) {
			s.destroyTower(target)
			enemy.TargetTower = 0
		}
	}
}

// validTarget returns the engaged tower if it is still standing and in reach.
func (s *EnemyAttackSystem) validTarget(enemy *component.Enemy) *component.Tower {
	if enemy.TargetTower == 0 {
		return nil
	}
	tower, ok := s.ecs.Towers[enemy.TargetTower]
	if !ok || !tower.Active || tower.Position.Dist(enemy.Position) > enemy.Attack.Range {
		return nil
	}
	return tower
}

func (s *EnemyAttackSystem) destroyTower(tower *component.Tower) {
	s.ecs.ReleaseSlot(tower)
	s.logger.Printf("EnemyAttackSystem: tower %d (%s) destroyed at slot %d", tower.ID, tower.Def.ID, tower.SlotID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerDestroyed,
		Data: event.TowerData{ID: tower.ID, SlotID: tower.SlotID, DefID: tower.Def.ID},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: event.MessageData{Text: fmt.Sprintf("%s destroyed", tower.Def.Name), Duration: config.StatusMessageDuration, Warning: true},
	})
}
