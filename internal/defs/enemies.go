// internal/defs/enemies.go
package defs

import "gopkg.in/yaml.v3"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Kind      EnemyKind       `yaml:"kind"`
	MaxHealth float64         `yaml:"maxHealth"`
	MoveSpeed float64         `yaml:"moveSpeed"`
	Attack    *EnemyAttackDef `yaml:"attack,omitempty"`
}

// EnemyAttackDef is set for enemies that attack towers on their way.
type EnemyAttackDef struct {
	Range            float64 `yaml:"range"`
	AttacksPerSecond float64 `yaml:"attacksPerSecond"`
	Damage           float64 `yaml:"damage"`
}

// Cooldown returns the delay between two strikes.
func (a *EnemyAttackDef) Cooldown() float64 {
	if a.AttacksPerSecond <= 0 {
		return 1
	}
	return 1 / a.AttacksPerSecond
}

func (d *EnemyDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain EnemyDefinition
	p := plain{Kind: EnemyBasic, MaxHealth: 100, MoveSpeed: 3}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = EnemyDefinition(p)
	return nil
}

func (a *EnemyAttackDef) UnmarshalYAML(node *yaml.Node) error {
	type plain EnemyAttackDef
	p := plain{Range: 2, AttacksPerSecond: 1}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = EnemyAttackDef(p)
	return nil
}
