package system

import (
	"io"
	"log"
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"
)

// world wires the systems the way the game does, without a planner.
type world struct {
	ecs      *entity.ECS
	events   *event.Dispatcher
	ledger   *Ledger
	status   *StatusEffectSystem
	siege    *EnemyAttackSystem
	movement *MovementSystem
	combat   *CombatSystem
	waves    *WaveSystem
	seen     map[event.EventType]int
}

func testSettings() config.Settings {
	s := config.Default()
	s.Seed = 1
	s.SpeedJitterMin = 0
	s.SpeedJitterMax = 0
	return s
}

func testLibrary() *defs.Library {
	return &defs.Library{
		DefaultEnemyID: "grunt",
		Enemies: map[string]defs.EnemyDefinition{
			"grunt": {ID: "grunt", Kind: defs.EnemyBasic, MaxHealth: 100, MoveSpeed: 3},
		},
		Towers: map[string]*defs.TowerDefinition{},
		Waves: []defs.WaveDefinition{
			{Name: "first", EnemyID: "grunt", EnemyCount: 3, SpawnInterval: 1, SpeedMultiplier: 1, HealthMultiplier: 1, GoldMultiplier: 1.5},
			{Name: "second", EnemyID: "grunt", EnemyCount: 1, SpawnInterval: 1, SpeedMultiplier: 1, HealthMultiplier: 1, GoldMultiplier: 1},
		},
		Level: defs.LevelDefinition{
			Objective:   geom.V(100, 0, 0),
			SpawnPoints: []geom.Vec3{geom.V(0, 0, 0)},
		},
	}
}

func newWorld(t *testing.T, lib *defs.Library, settings config.Settings, surface navigation.Surface, planner PathPlanner) *world {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	w := &world{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		seen:   make(map[event.EventType]int),
	}
	w.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.seen[e.Type]++ }))
	w.ledger = NewLedger(settings.InitialGold, w.events)
	w.status = NewStatusEffectSystem(w.ecs)
	w.siege = NewEnemyAttackSystem(w.ecs, w.ecs, w.events, logger, settings.EnemyScanInterval)
	w.movement = NewMovementSystem(w.ecs, planner, w.events, logger, settings)
	w.movement.SetObjective(lib.Level.Objective)
	w.combat = NewCombatSystem(w.ecs, w.ecs, logger, settings.TowerScanInterval)
	w.waves = NewWaveSystem(w.ecs, lib, w.events, w.ledger, utils.NewPRNGService(settings.Seed), surface, logger, settings)
	w.ecs.SetSlots(lib.Level.TowerSlots)
	return w
}

// tick runs one frame in game order, without movement.
func (w *world) tick(dt float64) {
	w.ecs.GameTime += dt
	w.status.Update(dt)
	w.siege.Update(dt)
	w.combat.Update(dt)
	w.waves.Update(dt)
	w.ecs.Purge()
}

func (w *world) addTower(pos geom.Vec3, def *defs.TowerDefinition) *component.Tower {
	tower := component.NewTower(w.ecs.NewEntity(), -1, pos, def)
	w.ecs.Towers[tower.ID] = tower
	return tower
}

func (w *world) addEnemy(pos geom.Vec3, def defs.EnemyDefinition) *component.Enemy {
	e := component.NewEnemy(w.ecs.NewEntity(), w.waves)
	e.Initialize(component.EnemyConfig{Def: def, HealthMultiplier: 1, SpeedMultiplier: 1, GoldMultiplier: 1, MinSpeed: 0.5})
	e.Position = pos
	w.ecs.Enemies[e.ID] = e
	w.ecs.Wave.LiveEnemies++
	return e
}

func grunt() defs.EnemyDefinition {
	return defs.EnemyDefinition{ID: "grunt", Kind: defs.EnemyBasic, MaxHealth: 100, MoveSpeed: 3}
}
