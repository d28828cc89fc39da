// internal/system/movement.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"
)

// PathPlanner moves a point towards a destination. ok is false when there
// is no walkable way forward.
type PathPlanner interface {
	Advance(from, to geom.Vec3, maxDistance float64) (next geom.Vec3, ok bool)
}

// MovementSystem обновляет позиции врагов.
type MovementSystem struct {
	ecs             *entity.ECS
	planner         PathPlanner
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	settings        config.Settings
	objective       geom.Vec3
}

func NewMovementSystem(ecs *entity.ECS, planner PathPlanner, eventDispatcher *event.Dispatcher, logger *log.Logger, settings config.Settings) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		planner:         planner,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		settings:        settings,
	}
}

func (s *MovementSystem) SetObjective(p geom.Vec3) {
	s.objective = p
}

func (s *MovementSystem) Objective() geom.Vec3 {
	return s.objective
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive {
			continue
		}

		switch {
		case enemy.Effects.Stunned():
			// A stun also pauses a jump in flight.
		case enemy.Jump != nil:
			pos, done := enemy.Jump.Advance(deltaTime)
			enemy.Position = pos
			if done {
				enemy.Jump = nil
				enemy.NoPathTime = 0
			}
		case enemy.TargetTower != 0:
			// Busy with a tower.
		default:
			s.walk(enemy, deltaTime)
		}

		if enemy.Position.Flat().Dist(s.objective.Flat()) <= s.settings.ContactRadius {
			s.reachObjective(enemy)
			return
		}
	}
}

func (s *MovementSystem) walk(enemy *component.Enemy, deltaTime float64) {
	step := enemy.EffectiveSpeed() * deltaTime
	if s.planner == nil {
		enemy.Position = enemy.Position.MoveTowards(s.objective, step)
		return
	}

	next, ok := s.planner.Advance(enemy.Position, s.objective, step)
	if ok {
		enemy.Position = next
		enemy.NoPathTime = 0
		return
	}

	enemy.NoPathTime += deltaTime
	if enemy.NoPathTime >= s.settings.NoPathGrace {
		s.startFallbackJump(enemy)
	}
}

// startFallbackJump hops the enemy towards the objective when the planner
// cannot get it there.
func (s *MovementSystem) startFallbackJump(enemy *component.Enemy) {
	from := enemy.Position
	landing := from.MoveTowards(geom.V(s.objective.X, from.Y, s.objective.Z), s.settings.FallbackJumpDistance)
	if surface, ok := s.planner.(navigation.Surface); ok {
		landing, _ = navigation.NearestNavigable(surface, landing, s.settings.SpawnSearchRadius, s.settings.SpawnSearchStep, s.settings.SpawnSearchSamples)
	}
	enemy.Jump = component.NewJump(from, landing, s.settings.FallbackJumpHeight, s.settings.FallbackJumpDuration)
	enemy.NoPathTime = 0
	s.logger.Printf("MovementSystem: enemy %d has no path for %.2fs, jumping to (%.1f, %.1f)", enemy.ID, s.settings.NoPathGrace, landing.X, landing.Z)
}

func (s *MovementSystem) reachObjective(enemy *component.Enemy) {
	if s.ecs.GameState == component.GameOver {
		return
	}
	s.ecs.GameState = component.GameOver
	s.logger.Printf("MovementSystem: enemy %d reached the objective, game over", enemy.ID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.EnemyData{ID: enemy.ID, DefID: enemy.DefID, WaveIndex: enemy.WaveIndex, Position: enemy.Position},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: event.MessageData{Text: "Game over! Press R to restart", Duration: 0, Warning: true},
	})
}
