// internal/defs/types.go
package defs

// EnemyKind selects the behaviour and base bounty of an enemy.
type EnemyKind string

const (
	EnemyBasic     EnemyKind = "basic"
	EnemyAttacking EnemyKind = "attacking"
	EnemyZombie    EnemyKind = "zombie"
	EnemyBoss      EnemyKind = "boss"
)

// Valid reports whether k is one of the known kinds.
func (k EnemyKind) Valid() bool {
	switch k {
	case EnemyBasic, EnemyAttacking, EnemyZombie, EnemyBoss:
		return true
	}
	return false
}

// BaseGoldForKind returns the gold paid for a kill before the wave multiplier.
func BaseGoldForKind(k EnemyKind) int {
	switch k {
	case EnemyAttacking:
		return 30
	case EnemyZombie:
		return 40
	case EnemyBoss:
		return 100
	default:
		return 20
	}
}

// TowerKind selects how a tower resolves its attacks.
type TowerKind string

const (
	TowerRanged TowerKind = "ranged" // hits the target, or an area around it
	TowerMelee  TowerKind = "melee"  // hits everything within range of the tower
)

// Valid reports whether k is one of the known kinds.
func (k TowerKind) Valid() bool {
	return k == TowerRanged || k == TowerMelee
}
