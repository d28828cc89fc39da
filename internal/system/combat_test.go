package system

import (
	"io"
	"log"
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/pkg/geom"
)

func rangedDef() *defs.TowerDefinition {
	return &defs.TowerDefinition{ID: "arrow", Kind: defs.TowerRanged, Range: 6, Damage: 10, Cooldown: 1}
}

func TestTowerTargetsNearestInRange(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	tower := w.addTower(geom.Vec3{}, rangedDef())
	at5 := w.addEnemy(geom.V(5, 0, 0), grunt())
	at2 := w.addEnemy(geom.V(0, 0, 2), grunt())
	at8 := w.addEnemy(geom.V(-8, 0, 0), grunt())

	w.combat.Update(0.1)

	if tower.Target != at2.ID {
		t.Fatalf("expected target %d, got %d", at2.ID, tower.Target)
	}
	if at2.Health != 90 || at5.Health != 100 || at8.Health != 100 {
		t.Errorf("expected only the target hit, got %v/%v/%v", at2.Health, at5.Health, at8.Health)
	}
	if tower.State != component.TowerAttacking {
		t.Errorf("expected attacking state, got %s", tower.State)
	}
}

func TestTowerRespectsCooldown(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	w.addTower(geom.Vec3{}, rangedDef())
	e := w.addEnemy(geom.V(1, 0, 0), grunt())

	for i := 0; i < 4; i++ {
		w.tick(0.25) // first shot at 0.25, next one due at 1.25
	}
	if e.Health != 90 {
		t.Errorf("expected a single shot within the cooldown, got health %v", e.Health)
	}
	w.tick(0.25)
	if e.Health != 80 {
		t.Errorf("expected a second shot once the cooldown elapsed, got health %v", e.Health)
	}
}

func TestTowerRetargetsAfterKill(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	def := rangedDef()
	def.Damage = 100
	def.Cooldown = 0.5
	tower := w.addTower(geom.Vec3{}, def)
	first := w.addEnemy(geom.V(1, 0, 0), grunt())
	second := w.addEnemy(geom.V(3, 0, 0), grunt())

	w.tick(0.1)
	if first.Alive {
		t.Fatal("expected first enemy killed")
	}
	if tower.Target != 0 || tower.State != component.TowerSeeking {
		t.Errorf("expected tower seeking after the kill, got target %d state %s", tower.Target, tower.State)
	}
	for i := 0; i < 6 && second.Alive; i++ {
		w.tick(0.1)
	}
	if second.Alive {
		t.Error("expected tower to retarget and kill the second enemy")
	}
}

func TestTowerDropsTargetOutOfRange(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	tower := w.addTower(geom.Vec3{}, rangedDef())
	e := w.addEnemy(geom.V(1, 0, 0), grunt())

	w.combat.Update(0.1)
	if tower.Target != e.ID {
		t.Fatalf("expected target %d, got %d", e.ID, tower.Target)
	}
	e.Position = geom.V(20, 0, 0)
	w.combat.Update(0.1)
	if tower.Target != 0 || tower.State != component.TowerIdle {
		t.Errorf("expected idle tower without target, got target %d state %s", tower.Target, tower.State)
	}
}

func TestAreaAttackCentersOnTarget(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	def := rangedDef()
	def.AreaAttack = true
	def.AreaRadius = 1.5
	def.Slow = &defs.SlowDef{Duration: 2, Multiplier: 0.5}
	w.addTower(geom.Vec3{}, def)

	target := w.addEnemy(geom.V(5, 0, 0), grunt())
	nearTarget := w.addEnemy(geom.V(6.2, 0, 0), grunt()) // out of tower range, inside the blast
	nearTower := w.addEnemy(geom.V(0, 0, -5.5), grunt())

	w.combat.Update(0.1)

	if target.Health != 90 || nearTarget.Health != 90 {
		t.Errorf("expected target and neighbour hit, got %v and %v", target.Health, nearTarget.Health)
	}
	if nearTower.Health != 100 {
		t.Errorf("blast must not center on the tower, got %v", nearTower.Health)
	}
	for _, e := range []*component.Enemy{target, nearTarget} {
		if len(e.Effects.Slows) != 1 || e.EffectiveSpeed() != 1.5 {
			t.Errorf("enemy %d: expected one slow halving speed, got %d entries speed %v", e.ID, len(e.Effects.Slows), e.EffectiveSpeed())
		}
	}
	if nearTower.Effects.Slowed() {
		t.Error("enemy outside the blast must not be slowed")
	}
}

func TestMeleeHitsAroundTower(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	def := &defs.TowerDefinition{ID: "brawler", Kind: defs.TowerMelee, Range: 3, Damage: 15, Cooldown: 1, Stun: &defs.StunDef{Duration: 1}}
	w.addTower(geom.Vec3{}, def)
	a := w.addEnemy(geom.V(2, 0, 0), grunt())
	b := w.addEnemy(geom.V(-2.5, 0, 0), grunt())
	outside := w.addEnemy(geom.V(4, 0, 0), grunt())

	w.combat.Update(0.1)

	for _, e := range []*component.Enemy{a, b} {
		if e.Health != 85 || !e.Effects.Stunned() {
			t.Errorf("enemy %d: expected 85 health and stunned, got %v stunned=%v", e.ID, e.Health, e.Effects.Stunned())
		}
	}
	if outside.Health != 100 || outside.Effects.Stunned() {
		t.Error("enemy outside melee range must be untouched")
	}
}

func TestSingleTargetEffects(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	def := rangedDef()
	def.Stun = &defs.StunDef{Duration: 0.5}
	w.addTower(geom.Vec3{}, def)
	target := w.addEnemy(geom.V(1, 0, 0), grunt())
	bystander := w.addEnemy(geom.V(1.2, 0, 0), grunt())

	w.combat.Update(0.1)

	if target.Effects.StunRemaining != 0.5 {
		t.Errorf("expected target stunned for 0.5, got %v", target.Effects.StunRemaining)
	}
	if bystander.Effects.Stunned() || bystander.Health != 100 {
		t.Error("single target attack must not touch bystanders")
	}
}

func TestUpgradeResetsCombat(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	base := rangedDef()
	sniper := &defs.TowerDefinition{ID: "sniper", Kind: defs.TowerRanged, Range: 10, Damage: 50, Cooldown: 3}
	frost := &defs.TowerDefinition{ID: "frost", Kind: defs.TowerRanged, Range: 6, Damage: 5, Cooldown: 1}
	base.CanUpgrade = true
	base.UpgradeOptions = []*defs.TowerDefinition{sniper, frost}
	tower := w.addTower(geom.Vec3{}, base)
	e := w.addEnemy(geom.V(1, 0, 0), grunt())

	w.tick(0.1)
	if _, err := tower.Upgrade(2); err == nil {
		t.Fatal("expected upgrade(2) to fail")
	}
	if tower.Def != base {
		t.Fatal("failed upgrade changed the configuration")
	}

	if _, err := tower.Upgrade(0); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	w.tick(0.1)
	if e.Health != 40 {
		t.Errorf("expected the upgraded tower to fire right away, got health %v", e.Health)
	}
}

// coarseIndex ignores the radius and returns everything alive.
type coarseIndex struct{ ecs *entity.ECS }

func (c coarseIndex) EnemiesWithin(_ geom.Vec3, _ float64) []*component.Enemy {
	return c.ecs.EnemiesWithin(geom.Vec3{}, 1e9)
}

func (c coarseIndex) TowersWithin(_ geom.Vec3, _ float64) []*component.Tower {
	return c.ecs.TowersWithin(geom.Vec3{}, 1e9)
}

func TestScansFilterCoarseIndex(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	logger := log.New(io.Discard, "", 0)
	combat := NewCombatSystem(w.ecs, coarseIndex{w.ecs}, logger, 0.2)
	siege := NewEnemyAttackSystem(w.ecs, coarseIndex{w.ecs}, w.events, logger, 0.2)

	def := rangedDef()
	def.AreaAttack, def.AreaRadius = true, 1
	tower := w.addTower(geom.Vec3{}, def)
	far := w.addEnemy(geom.V(8, 0, 0), grunt())

	combat.Update(0.1)
	if tower.Target != 0 || far.Health != 100 {
		t.Fatalf("tower engaged an enemy out of range: target %d, health %v", tower.Target, far.Health)
	}

	near := w.addEnemy(geom.V(2, 0, 0), grunt())
	beside := w.addEnemy(geom.V(4, 0, 0), grunt())
	w.ecs.GameTime += 0.3
	combat.Update(0.3)
	if tower.Target != near.ID || near.Health != 90 {
		t.Fatalf("expected %d hit, got target %d with health %v", near.ID, tower.Target, near.Health)
	}
	if beside.Health != 100 || far.Health != 100 {
		t.Errorf("area hit leaked past its radius: %v/%v", beside.Health, far.Health)
	}

	breaker := grunt()
	breaker.Attack = &defs.EnemyAttackDef{Range: 1, AttacksPerSecond: 1, Damage: 10}
	attacker := w.addEnemy(geom.V(0, 0, 6), breaker)
	siege.Update(0.5)
	if attacker.TargetTower != 0 {
		t.Errorf("enemy engaged tower %d out of reach", attacker.TargetTower)
	}
}
