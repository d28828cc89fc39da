// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"
)

// ErrGameOver is returned by player actions after the objective has been reached.
var ErrGameOver = errors.New("game is over")

// Option customises a Game at construction.
type Option func(*Game)

// WithLogger routes every system's log output to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithPlanner replaces the default path planner. A planner that also
// implements navigation.Surface is used for spawn and landing checks.
func WithPlanner(planner system.PathPlanner) Option {
	return func(g *Game) { g.planner = planner }
}

// WithDispatcher shares an existing dispatcher, so listeners can subscribe
// before the first event is sent.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// Game holds the main game state and logic. It is driven from a single
// goroutine and is not safe for concurrent use.
type Game struct {
	Library         *defs.Library
	Settings        config.Settings
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Ledger          *system.Ledger
	Rng             *utils.PRNGService
	Field           *navigation.Field

	StatusEffectSystem *system.StatusEffectSystem
	EnemyAttackSystem  *system.EnemyAttackSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem

	SpeedMultiplier float64

	logger  *log.Logger
	planner system.PathPlanner
	started bool
}

// NewGame wires a simulation for the given definitions and settings.
func NewGame(lib *defs.Library, settings config.Settings, opts ...Option) (*Game, error) {
	if lib == nil {
		return nil, fmt.Errorf("definition library is required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	g := &Game{
		Library:         lib,
		Settings:        settings,
		ECS:             entity.NewECS(),
		Rng:             utils.NewPRNGService(settings.Seed),
		Field:           navigation.NewField(lib.Level.Bounds, lib.Level.Obstacles),
		SpeedMultiplier: 1.0,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.planner == nil {
		g.planner = g.Field
		if grid := navigation.NewGrid(g.Field, settings.PathGridCell); grid != nil {
			g.planner = grid
		}
	}
	surface, _ := g.planner.(navigation.Surface)

	g.Ledger = system.NewLedger(settings.InitialGold, g.EventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(g.ECS)
	g.EnemyAttackSystem = system.NewEnemyAttackSystem(g.ECS, g.ECS, g.EventDispatcher, g.logger, settings.EnemyScanInterval)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.planner, g.EventDispatcher, g.logger, settings)
	g.MovementSystem.SetObjective(lib.Level.Objective)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.ECS, g.logger, settings.TowerScanInterval)
	g.WaveSystem = system.NewWaveSystem(g.ECS, lib, g.EventDispatcher, g.Ledger, g.Rng, surface, g.logger, settings)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.ECS)
	g.ECS.SetSlots(lib.Level.TowerSlots)

	g.logger.Printf("Game: %d waves, %d tower slots, %d spawn points, seed %d",
		len(lib.Waves), len(lib.Level.TowerSlots), len(lib.Level.SpawnPoints), g.Rng.Seed())
	return g, nil
}

// Start begins the countdown to the first wave. Calling it again has no effect.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.WaveSystem.Begin()
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if !g.started || g.GameOver() || deltaTime <= 0 {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.ECS.GameTime += dt

	g.StatusEffectSystem.Update(dt)
	g.EnemyAttackSystem.Update(dt)
	g.MovementSystem.Update(dt)
	if g.GameOver() {
		return
	}
	g.CombatSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.ECS.Purge()
}

// SkipCountdown starts the next wave early.
func (g *Game) SkipCountdown() bool {
	if g.GameOver() {
		return false
	}
	return g.WaveSystem.SkipCountdown()
}

// StartNextWave starts a pending wave right away.
func (g *Game) StartNextWave() error {
	if g.GameOver() {
		return ErrGameOver
	}
	return g.WaveSystem.StartNextWave()
}

// SetObjective moves the point enemies walk to.
func (g *Game) SetObjective(p geom.Vec3) {
	g.MovementSystem.SetObjective(p)
}

// CycleSpeed switches between 1x, 2x and 4x simulation speed.
func (g *Game) CycleSpeed() float64 {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
	return g.SpeedMultiplier
}

func (g *Game) GameOver() bool {
	return g.ECS.GameState == component.GameOver
}

// Restart clears the world and starts over from the first countdown.
func (g *Game) Restart() {
	g.ECS.Clear()
	g.Rng.Reseed()
	g.Ledger.Reset()
	g.WaveSystem.Reset()
	g.started = true
	g.logger.Println("Game: restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// Status is a snapshot for the HUD and for tests.
type Status struct {
	Phase       component.WavePhase
	Wave        int // 1-based wave shown to the player
	TotalWaves  int
	LiveEnemies int
	ToSpawn     int
	Countdown   float64
	Gold        int
	Towers      int
	GameOver    bool
}

func (g *Game) Status() Status {
	w := g.ECS.Wave
	wave := w.Index + 1
	if w.Phase == component.WaveCountdown || w.Phase == component.WaveReady {
		wave = w.NextIndex + 1
	}
	return Status{
		Phase:       w.Phase,
		Wave:        wave,
		TotalWaves:  g.WaveSystem.WaveCount(),
		LiveEnemies: w.LiveEnemies,
		ToSpawn:     w.RemainingToSpawn,
		Countdown:   w.Countdown,
		Gold:        g.Ledger.Gold(),
		Towers:      len(g.ECS.Towers),
		GameOver:    g.GameOver(),
	}
}
