package component

import (
	"math"
	"testing"

	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/geom"
)

type deathCounter struct {
	deaths []*Enemy
}

func (c *deathCounter) OnEnemyDeath(e *Enemy) {
	c.deaths = append(c.deaths, e)
}

func newTestEnemy(listener DeathListener, maxHealth float64) *Enemy {
	e := NewEnemy(1, listener)
	e.Initialize(EnemyConfig{
		Def:              defs.EnemyDefinition{ID: "grunt", Kind: defs.EnemyBasic, MaxHealth: maxHealth, MoveSpeed: 3},
		HealthMultiplier: 1,
		SpeedMultiplier:  1,
		GoldMultiplier:   1,
		MinSpeed:         0.5,
	})
	return e
}

func TestInitialize(t *testing.T) {
	e := NewEnemy(7, nil)
	e.Effects.ApplySlow(5, 0.5)
	e.Effects.ApplyStun(5)
	e.Initialize(EnemyConfig{
		Def:              defs.EnemyDefinition{ID: "boss", Kind: defs.EnemyBoss, MaxHealth: 100, MoveSpeed: 2},
		WaveIndex:        3,
		HealthMultiplier: 1.5,
		SpeedMultiplier:  2,
		GoldMultiplier:   1.5,
		Jitter:           0.25,
		MinSpeed:         0.5,
	})

	if !e.Alive || e.Health != 150 || e.MaxHealth != 150 {
		t.Errorf("expected alive with 150/150, got alive=%v %v/%v", e.Alive, e.Health, e.MaxHealth)
	}
	if e.BaseSpeed != 4.25 {
		t.Errorf("expected base speed 4.25, got %v", e.BaseSpeed)
	}
	if e.GoldReward != 150 {
		t.Errorf("expected boss reward 150, got %d", e.GoldReward)
	}
	if e.Effects.Stunned() || e.Effects.Slowed() {
		t.Error("expected status effects reset on initialize")
	}
	if e.WaveIndex != 3 {
		t.Errorf("expected wave index 3, got %d", e.WaveIndex)
	}
}

func TestInitializeSpeedFloor(t *testing.T) {
	e := NewEnemy(1, nil)
	e.Initialize(EnemyConfig{
		Def:              defs.EnemyDefinition{MaxHealth: 10, MoveSpeed: 0.2},
		HealthMultiplier: 1,
		SpeedMultiplier:  1,
		Jitter:           -0.5,
		MinSpeed:         0.5,
	})
	if e.BaseSpeed != 0.5 {
		t.Errorf("expected speed floored at 0.5, got %v", e.BaseSpeed)
	}
}

func TestTakeDamage(t *testing.T) {
	for _, maxHealth := range []float64{1, 100, 1e9} {
		counter := &deathCounter{}
		e := newTestEnemy(counter, maxHealth)
		if !e.TakeDamage(maxHealth) {
			t.Errorf("maxHealth %v: expected killing blow", maxHealth)
		}
		if e.Alive || e.Health != 0 {
			t.Errorf("maxHealth %v: expected dead with 0 health, got alive=%v health=%v", maxHealth, e.Alive, e.Health)
		}
		if len(counter.deaths) != 1 {
			t.Errorf("maxHealth %v: expected one death notification, got %d", maxHealth, len(counter.deaths))
		}
	}
}

func TestTakeDamageOverkillAndDeadTarget(t *testing.T) {
	counter := &deathCounter{}
	e := newTestEnemy(counter, 50)

	e.TakeDamage(20)
	if e.Health != 30 || e.HitFlash == 0 {
		t.Errorf("expected 30 health and a hit flash, got %v / %v", e.Health, e.HitFlash)
	}
	e.TakeDamage(-10)
	if e.Health != 30 {
		t.Errorf("negative damage must not heal, got %v", e.Health)
	}
	e.TakeDamage(500)
	if e.Health != 0 {
		t.Errorf("expected health floored at 0, got %v", e.Health)
	}
	if e.TakeDamage(10) {
		t.Error("a dead enemy cannot be killed again")
	}
	if len(counter.deaths) != 1 {
		t.Errorf("expected one death notification, got %d", len(counter.deaths))
	}
}

func TestDieIsIdempotent(t *testing.T) {
	counter := &deathCounter{}
	e := newTestEnemy(counter, 100)
	if !e.Die() {
		t.Fatal("expected first Die to succeed")
	}
	if e.Die() {
		t.Error("expected second Die to be a no-op")
	}
	if len(counter.deaths) != 1 {
		t.Errorf("expected exactly one notification, got %d", len(counter.deaths))
	}

	// Respawning the same instance rearms it.
	e.Initialize(EnemyConfig{Def: defs.EnemyDefinition{MaxHealth: 10}, HealthMultiplier: 1, SpeedMultiplier: 1})
	e.Die()
	if len(counter.deaths) != 2 {
		t.Errorf("expected a second notification after respawn, got %d", len(counter.deaths))
	}
}

func TestEffectiveSpeed(t *testing.T) {
	e := newTestEnemy(nil, 100)
	if got := e.EffectiveSpeed(); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	e.ApplySlow(2, 0.5)
	e.ApplySlow(2, 0.8)
	if got := e.EffectiveSpeed(); got != 1.5 {
		t.Errorf("expected strongest slow 1.5, got %v", got)
	}

	if !e.ApplyStun(1) || e.CanMove() {
		t.Error("expected stun to stop the enemy")
	}
	e.Effects.Tick(1)
	if !e.CanMove() {
		t.Error("expected enemy to move again after stun")
	}

	e.Die()
	e.ApplySlow(5, 0.1)
	if got := e.EffectiveSpeed(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("dead enemies ignore new effects, got speed %v", got)
	}
}

func TestJumpArc(t *testing.T) {
	j := NewJump(geom.V(0, 0, 0), geom.V(4, 0, 0), 2, 1)
	mid, done := j.Advance(0.5)
	if done {
		t.Fatal("jump finished early")
	}
	if math.Abs(mid.X-2) > 1e-9 || math.Abs(mid.Y-2) > 1e-9 {
		t.Errorf("expected apex at (2,2), got (%v,%v)", mid.X, mid.Y)
	}
	end, done := j.Advance(0.6)
	if !done || end.X != 4 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("expected landing at (4,0), got %+v done=%v", end, done)
	}
}
