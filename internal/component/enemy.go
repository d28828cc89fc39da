package component

import (
	"math"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

// HitFlashDuration is how long an enemy is highlighted after taking damage.
const HitFlashDuration = 0.15

// DeathListener is told once when an enemy dies.
type DeathListener interface {
	OnEnemyDeath(e *Enemy)
}

// EnemyConfig is everything Initialize needs to (re)spawn an enemy.
type EnemyConfig struct {
	Def              defs.EnemyDefinition
	WaveIndex        int
	HealthMultiplier float64
	SpeedMultiplier  float64
	GoldMultiplier   float64
	Jitter           float64 // Pre-drawn speed jitter
	MinSpeed         float64
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	DefID      string
	Kind       defs.EnemyKind
	WaveIndex  int // Wave the enemy was spawned in
	MaxHealth  float64
	Health     float64
	BaseSpeed  float64
	GoldReward int
	Alive      bool
	Effects    StatusEffects
	Attack     *defs.EnemyAttackDef // nil for enemies that ignore towers

	Position   geom.Vec3
	NoPathTime float64
	Jump       *Jump
	HitFlash   float64

	TargetTower types.EntityID
	ScanTimer   float64
	AttackTimer float64

	listener DeathListener
	dead     bool
}

// NewEnemy creates an enemy that reports its death to listener.
func NewEnemy(id types.EntityID, listener DeathListener) *Enemy {
	return &Enemy{ID: id, listener: listener}
}

// GoldFor is the reward for killing an enemy of the given kind.
func GoldFor(kind defs.EnemyKind, multiplier float64) int {
	return int(math.Round(float64(defs.BaseGoldForKind(kind)) * multiplier))
}

// Initialize resets the enemy for a fresh spawn.
func (e *Enemy) Initialize(cfg EnemyConfig) {
	e.DefID = cfg.Def.ID
	e.Kind = cfg.Def.Kind
	e.WaveIndex = cfg.WaveIndex
	e.Attack = cfg.Def.Attack

	e.MaxHealth = cfg.Def.MaxHealth * cfg.HealthMultiplier
	e.Health = e.MaxHealth
	e.BaseSpeed = math.Max(cfg.MinSpeed, cfg.Def.MoveSpeed*cfg.SpeedMultiplier+cfg.Jitter)
	e.GoldReward = GoldFor(cfg.Def.Kind, cfg.GoldMultiplier)

	e.Effects.Reset()
	e.NoPathTime = 0
	e.Jump = nil
	e.HitFlash = 0
	e.TargetTower = 0
	e.ScanTimer = 0
	e.AttackTimer = 0

	e.Alive = e.MaxHealth > 0
	e.dead = !e.Alive
}

// TakeDamage reduces health and kills the enemy when it reaches zero.
// It reports whether this hit was the killing blow.
func (e *Enemy) TakeDamage(amount float64) bool {
	if !e.Alive || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		return e.Die()
	}
	e.HitFlash = HitFlashDuration
	return false
}

// Die marks the enemy dead and notifies the listener. Only the first call
// has any effect.
func (e *Enemy) Die() bool {
	if e.dead {
		return false
	}
	e.dead = true
	e.Alive = false
	e.Jump = nil
	e.TargetTower = 0
	if e.listener != nil {
		e.listener.OnEnemyDeath(e)
	}
	return true
}

// EffectiveSpeed is the base speed scaled by the strongest slow.
func (e *Enemy) EffectiveSpeed() float64 {
	return math.Max(0, e.BaseSpeed*e.Effects.StrongestMultiplier())
}

// ApplyStun reports whether the enemy has just been stopped.
func (e *Enemy) ApplyStun(duration float64) bool {
	if !e.Alive {
		return false
	}
	return e.Effects.ApplyStun(duration)
}

func (e *Enemy) ApplySlow(duration, multiplier float64) {
	if !e.Alive {
		return
	}
	e.Effects.ApplySlow(duration, multiplier)
}

// CanMove reports whether the enemy may walk this tick.
func (e *Enemy) CanMove() bool {
	return e.Alive && !e.Effects.Stunned()
}

func (e *Enemy) TargetID() types.EntityID  { return e.ID }
func (e *Enemy) TargetPosition() geom.Vec3 { return e.Position }

// AttacksTowers reports whether the enemy stops to attack towers.
func (e *Enemy) AttacksTowers() bool {
	return e.Attack != nil && e.Attack.Damage > 0
}
