package component

import (
	"errors"
	"testing"

	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/geom"
)

func upgradableDef() *defs.TowerDefinition {
	a := &defs.TowerDefinition{ID: "a", Range: 8, Damage: 20, Cooldown: 2, MaxHealth: 50}
	b := &defs.TowerDefinition{ID: "b", Range: 4, Damage: 5, Cooldown: 0.5, AreaAttack: true, AreaRadius: 2}
	return &defs.TowerDefinition{
		ID:             "base",
		Range:          6,
		Damage:         10,
		Cooldown:       1,
		MaxHealth:      100,
		CanUpgrade:     true,
		UpgradeOptions: []*defs.TowerDefinition{a, b},
	}
}

func TestUpgradeOutOfRange(t *testing.T) {
	base := upgradableDef()
	tower := NewTower(1, 0, geom.Vec3{}, base)
	tower.Target = 9
	tower.NextAttackTime = 5

	for _, option := range []int{2, -1} {
		if _, err := tower.Upgrade(option); !errors.Is(err, ErrInvalidUpgrade) {
			t.Errorf("option %d: expected ErrInvalidUpgrade, got %v", option, err)
		}
	}
	if tower.Def != base || tower.Target != 9 || tower.NextAttackTime != 5 {
		t.Error("failed upgrade must leave the tower unchanged")
	}
}

func TestUpgradeSwapsConfiguration(t *testing.T) {
	tower := NewTower(1, 0, geom.Vec3{}, upgradableDef())
	tower.Target = 9
	tower.NextAttackTime = 5
	tower.State = TowerAttacking

	def, err := tower.Upgrade(1)
	if err != nil {
		t.Fatalf("Upgrade failed: %v", err)
	}
	if def.ID != "b" || tower.Def.ID != "b" {
		t.Errorf("expected configuration b, got %s", tower.Def.ID)
	}
	if tower.Target != 0 || tower.NextAttackTime != 0 || tower.State != TowerIdle {
		t.Errorf("expected target and cooldown reset, got target=%d next=%v state=%s", tower.Target, tower.NextAttackTime, tower.State)
	}
	if _, err := tower.Upgrade(0); !errors.Is(err, ErrInvalidUpgrade) {
		t.Errorf("expected a leaf tower to refuse upgrades, got %v", err)
	}
}

func TestUpgradeDisabled(t *testing.T) {
	def := upgradableDef()
	def.CanUpgrade = false
	tower := NewTower(1, 0, geom.Vec3{}, def)
	if _, err := tower.Upgrade(0); !errors.Is(err, ErrInvalidUpgrade) {
		t.Errorf("expected ErrInvalidUpgrade, got %v", err)
	}
}

func TestCooldown(t *testing.T) {
	tower := NewTower(1, 0, geom.Vec3{}, upgradableDef())
	if !tower.CanFire(0) {
		t.Fatal("new tower should be ready")
	}
	tower.MarkFired(3)
	if tower.CanFire(3.5) {
		t.Error("fired before the cooldown elapsed")
	}
	if !tower.CanFire(4) {
		t.Error("expected tower ready exactly at nextAttackTime")
	}
}

func TestTowerDamage(t *testing.T) {
	tower := NewTower(1, 0, geom.Vec3{}, upgradableDef())
	if tower.TakeDamage(60) {
		t.Fatal("destroyed too early")
	}
	if !tower.TakeDamage(60) {
		t.Fatal("expected tower destroyed")
	}
	if tower.Active || tower.Health != 0 || tower.CanFire(100) {
		t.Error("destroyed tower must be inactive")
	}
	if tower.TakeDamage(10) {
		t.Error("tower destroyed twice")
	}

	sturdy := NewTower(2, 0, geom.Vec3{}, &defs.TowerDefinition{Range: 1})
	if sturdy.TakeDamage(1e6) || !sturdy.Active {
		t.Error("towers without maxHealth cannot be destroyed")
	}
}

func TestWaveComplete(t *testing.T) {
	w := NewWave()
	if w.Complete() {
		t.Fatal("idle wave cannot be complete")
	}
	w.Phase = WaveActive
	w.RemainingToSpawn = 1
	if w.Complete() {
		t.Error("wave with enemies left to spawn is not complete")
	}
	w.RemainingToSpawn = 0
	if !w.Complete() {
		t.Error("expected complete wave")
	}
}
