// component/tower.go
package component

import (
	"errors"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

// ErrInvalidUpgrade is returned for an out of range option or a tower
// without an upgrade path.
var ErrInvalidUpgrade = errors.New("invalid upgrade")

// TowerState is where a tower is in its attack loop.
type TowerState int

const (
	TowerIdle TowerState = iota
	TowerSeeking
	TowerEngaged
	TowerAttacking
)

func (s TowerState) String() string {
	switch s {
	case TowerIdle:
		return "idle"
	case TowerSeeking:
		return "seeking"
	case TowerEngaged:
		return "engaged"
	case TowerAttacking:
		return "attacking"
	}
	return "unknown"
}

type Tower struct {
	ID       types.EntityID
	SlotID   int
	Position geom.Vec3
	Def      *defs.TowerDefinition // Swapped wholesale on upgrade

	State          TowerState
	Target         types.EntityID // Weak reference, 0 when none
	NextAttackTime float64
	ScanTimer      float64

	Health float64
	Active bool // false once removed or destroyed
}

// NewTower creates an active tower with the given configuration.
func NewTower(id types.EntityID, slotID int, pos geom.Vec3, def *defs.TowerDefinition) *Tower {
	t := &Tower{ID: id, SlotID: slotID, Position: pos, Active: true}
	t.Configure(def)
	return t
}

// Configure installs a configuration and resets combat state.
func (t *Tower) Configure(def *defs.TowerDefinition) {
	t.Def = def
	t.Health = def.MaxHealth
	t.ResetCombat()
}

// ResetCombat drops the target and the cooldown.
func (t *Tower) ResetCombat() {
	t.State = TowerIdle
	t.Target = 0
	t.NextAttackTime = 0
	t.ScanTimer = 0
}

// Upgrade swaps in one of the configured upgrade options. On failure the
// tower is left untouched.
func (t *Tower) Upgrade(option int) (*defs.TowerDefinition, error) {
	options := t.Def.AvailableUpgrades()
	if option < 0 || option >= len(options) {
		return nil, ErrInvalidUpgrade
	}
	t.Configure(options[option])
	return t.Def, nil
}

func (t *Tower) CanFire(now float64) bool {
	return t.Active && now >= t.NextAttackTime
}

func (t *Tower) MarkFired(now float64) {
	t.NextAttackTime = now + t.Def.Cooldown
}

func (t *Tower) TargetID() types.EntityID  { return t.ID }
func (t *Tower) TargetPosition() geom.Vec3 { return t.Position }

// Destructible reports whether enemies can damage the tower.
func (t *Tower) Destructible() bool {
	return t.Def.MaxHealth > 0
}

// TakeDamage reports whether the hit destroyed the tower.
func (t *Tower) TakeDamage(amount float64) bool {
	if !t.Active || !t.Destructible() || amount <= 0 {
		return false
	}
	t.Health -= amount
	if t.Health > 0 {
		return false
	}
	t.Health = 0
	t.Active = false
	t.Target = 0
	return true
}

// Slot is a placement spot for a single tower.
type Slot struct {
	ID       int
	Position geom.Vec3
	TowerID  types.EntityID // 0 when free
}

func (s *Slot) Free() bool {
	return s.TowerID == 0
}
