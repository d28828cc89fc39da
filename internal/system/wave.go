// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"
)

var (
	ErrNoSpawnPoints    = errors.New("no spawn points configured")
	ErrInvalidWaveIndex = errors.New("invalid wave index")
	ErrUnknownEnemy     = errors.New("unknown enemy definition")
	ErrNotReady         = errors.New("next wave cannot be started now")
)

type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	ledger          *Ledger
	rng             *utils.PRNGService
	surface         navigation.Surface
	logger          *log.Logger
	settings        config.Settings
	spawnPoints     []geom.Vec3
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher, ledger *Ledger,
	rng *utils.PRNGService, surface navigation.Surface, logger *log.Logger, settings config.Settings) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		eventDispatcher: eventDispatcher,
		ledger:          ledger,
		rng:             rng,
		surface:         surface,
		logger:          logger,
		settings:        settings,
		spawnPoints:     lib.Level.SpawnPoints,
	}
}

func (s *WaveSystem) State() *component.Wave {
	return s.ecs.Wave
}

func (s *WaveSystem) WaveCount() int {
	return len(s.lib.Waves)
}

// Begin starts the countdown to the first wave.
func (s *WaveSystem) Begin() {
	if len(s.lib.Waves) == 0 {
		s.ecs.Wave.Phase = component.WaveAllComplete
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesComplete})
		return
	}
	s.startCountdown(0, s.settings.InitialCountdown)
}

// Reset cancels any countdown or spawning and begins again from wave one.
func (s *WaveSystem) Reset() {
	s.ecs.Wave = component.NewWave()
	s.Begin()
}

func (s *WaveSystem) startCountdown(next int, duration float64) {
	w := s.ecs.Wave
	w.Phase = component.WaveCountdown
	w.NextIndex = next
	w.Countdown = duration
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CountdownStarted,
		Data: event.CountdownData{NextWave: next, Duration: duration},
	})
}

// SkipCountdown collapses a running countdown. The wave starts on the next update.
func (s *WaveSystem) SkipCountdown() bool {
	w := s.ecs.Wave
	if w.Phase != component.WaveCountdown {
		return false
	}
	w.Countdown = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.CountdownSkipped})
	s.message("Countdown skipped", false)
	return true
}

// StartNextWave starts the pending wave immediately from a countdown or
// from the ready state.
func (s *WaveSystem) StartNextWave() error {
	w := s.ecs.Wave
	if w.Phase != component.WaveCountdown && w.Phase != component.WaveReady {
		return fmt.Errorf("wave system is %s: %w", w.Phase, ErrNotReady)
	}
	return s.StartWave(w.NextIndex)
}

// StartWave makes the wave at index active and starts spawning it. With no
// spawn points the wave stays active but stalled and never completes.
func (s *WaveSystem) StartWave(index int) error {
	if index < 0 || index >= len(s.lib.Waves) {
		s.logger.Printf("WaveSystem: cannot start wave %d of %d", index+1, len(s.lib.Waves))
		return fmt.Errorf("wave %d: %w", index, ErrInvalidWaveIndex)
	}
	waveDef := s.lib.Waves[index]
	if _, err := s.lib.WaveEnemy(waveDef); err != nil {
		s.logger.Printf("WaveSystem: wave %d skipped: %v", index+1, err)
		return fmt.Errorf("wave %d: %w: %v", index, ErrUnknownEnemy, err)
	}

	w := s.ecs.Wave
	w.Phase = component.WaveActive
	w.Index = index
	w.NextIndex = index + 1
	w.Countdown = 0
	w.LiveEnemies = 0
	w.RemainingToSpawn = waveDef.EnemyCount
	w.SpawnTimer = 0
	w.Stalled = false

	s.logger.Printf("WaveSystem: starting %s", waveDef.Summary())
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: index, Total: len(s.lib.Waves), EnemyCount: waveDef.EnemyCount, Name: waveDef.Name},
	})
	s.message(fmt.Sprintf("%s (%d/%d): %d enemies", waveDef.Name, index+1, len(s.lib.Waves), waveDef.EnemyCount), false)

	if len(s.spawnPoints) == 0 && waveDef.EnemyCount > 0 {
		w.Stalled = true
		s.logger.Printf("WaveSystem: wave %d stalled: %v", index+1, ErrNoSpawnPoints)
		s.eventDispatcher.Dispatch(event.Event{Type: event.SpawnFailed, Data: ErrNoSpawnPoints})
		s.message("No spawn points configured!", true)
		return ErrNoSpawnPoints
	}
	return nil
}

// Update advances the countdown and the spawn loop, then checks whether the
// active wave is done. It must run after every death of the tick has been
// reported through OnEnemyDeath.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	switch w.Phase {
	case component.WaveCountdown:
		w.Countdown -= deltaTime
		if w.Countdown > 0 {
			return
		}
		w.Countdown = 0
		if !s.settings.AutoStartWaves {
			w.Phase = component.WaveReady
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveReady, Data: event.CountdownData{NextWave: w.NextIndex}})
			s.message(fmt.Sprintf("Wave %d ready, press N to start", w.NextIndex+1), false)
			return
		}
		if err := s.StartWave(w.NextIndex); err != nil && !errors.Is(err, ErrNoSpawnPoints) {
			// Nothing to spawn: treat the wave as done so the session moves on.
			w.Index = w.NextIndex
			s.finishWave()
		}

	case component.WaveActive:
		s.spawnDue(deltaTime)
		if w.Complete() {
			s.finishWave()
		}
	}
}

func (s *WaveSystem) spawnDue(deltaTime float64) {
	w := s.ecs.Wave
	if w.Stalled || w.RemainingToSpawn <= 0 {
		return
	}
	waveDef := s.lib.Waves[w.Index]
	w.SpawnTimer -= deltaTime
	for w.SpawnTimer <= 0 && w.RemainingToSpawn > 0 {
		if _, err := s.spawnEnemy(w.Index); err != nil {
			s.logger.Printf("WaveSystem: spawn aborted: %v", err)
			w.Stalled = true
			return
		}
		w.RemainingToSpawn--
		w.SpawnTimer += waveDef.SpawnInterval
	}
}

// spawnEnemy creates one enemy of the wave at a random spawn point.
func (s *WaveSystem) spawnEnemy(waveIndex int) (*component.Enemy, error) {
	if len(s.spawnPoints) == 0 {
		return nil, ErrNoSpawnPoints
	}
	waveDef := s.lib.Waves[waveIndex]
	enemyDef, err := s.lib.WaveEnemy(waveDef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEnemy, err)
	}

	raw := s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]
	pos, ok := navigation.NearestNavigable(s.surface, raw, s.settings.SpawnSearchRadius, s.settings.SpawnSearchStep, s.settings.SpawnSearchSamples)
	if !ok {
		s.logger.Printf("WaveSystem: no walkable point near spawn (%.1f, %.1f), using it as is", raw.X, raw.Z)
	}

	enemy := component.NewEnemy(s.ecs.NewEntity(), s)
	enemy.Initialize(component.EnemyConfig{
		Def:              enemyDef,
		WaveIndex:        waveIndex,
		HealthMultiplier: waveDef.HealthMultiplier,
		SpeedMultiplier:  waveDef.SpeedMultiplier,
		GoldMultiplier:   waveDef.GoldMultiplier,
		Jitter:           s.rng.Range(s.settings.SpeedJitterMin, s.settings.SpeedJitterMax),
		MinSpeed:         s.settings.MinMoveSpeed,
	})
	enemy.Position = pos
	s.ecs.Enemies[enemy.ID] = enemy
	s.ecs.Wave.LiveEnemies++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: enemy.ID, DefID: enemy.DefID, WaveIndex: waveIndex, Position: pos},
	})
	return enemy, nil
}

// OnEnemyDeath keeps the live count and pays the reward for the kill.
func (s *WaveSystem) OnEnemyDeath(e *component.Enemy) {
	w := s.ecs.Wave
	if w.LiveEnemies > 0 {
		w.LiveEnemies--
	}
	s.ledger.Add(e.GoldReward)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RewardCredited,
		Data: event.RewardData{EnemyID: e.ID, Amount: e.GoldReward},
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyData{ID: e.ID, DefID: e.DefID, WaveIndex: e.WaveIndex, Position: e.Position},
	})
}

func (s *WaveSystem) finishWave() {
	w := s.ecs.Wave
	total := len(s.lib.Waves)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Index: w.Index, Total: total, Name: s.lib.Waves[w.Index].Name},
	})

	if w.Index+1 >= total {
		w.Phase = component.WaveAllComplete
		s.logger.Printf("WaveSystem: all %d waves complete", total)
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesComplete})
		s.notify("All waves complete!", 0, false)
		return
	}
	s.message(fmt.Sprintf("Wave %d/%d cleared", w.Index+1, total), false)
	s.startCountdown(w.Index+1, s.settings.WaveInterval)
}

func (s *WaveSystem) message(text string, warning bool) {
	s.notify(text, config.StatusMessageDuration, warning)
}

// notify sends a HUD line. A zero duration keeps it until restart.
func (s *WaveSystem) notify(text string, duration float64, warning bool) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: event.MessageData{Text: text, Duration: duration, Warning: warning},
	})
}
