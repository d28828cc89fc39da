// internal/defs/towers.go
package defs

import "gopkg.in/yaml.v3"

// MaxUpgradeOptions is the number of branches a tower can offer.
const MaxUpgradeOptions = 2

// TowerDefinition holds all the static data for a specific type of tower.
// A tower's configuration is swapped wholesale on upgrade, so every stat lives here.
type TowerDefinition struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Kind        TowerKind `yaml:"kind"`
	Cost        int       `yaml:"cost"`

	Range     float64 `yaml:"range"`
	Damage    float64 `yaml:"damage"`
	Cooldown  float64 `yaml:"cooldown"`  // Seconds between attacks
	MaxHealth float64 `yaml:"maxHealth"` // 0 means the tower cannot be destroyed

	AreaAttack bool    `yaml:"areaAttack"`
	AreaRadius float64 `yaml:"areaRadius"`

	Stun *StunDef `yaml:"stun,omitempty"`
	Slow *SlowDef `yaml:"slow,omitempty"`

	CanUpgrade bool     `yaml:"canUpgrade"`
	Upgrades   []string `yaml:"upgrades,omitempty"`

	// UpgradeOptions is resolved from Upgrades when the library is loaded.
	UpgradeOptions []*TowerDefinition `yaml:"-"`
}

// StunDef applies a stun on hit.
type StunDef struct {
	Duration float64 `yaml:"duration"`
}

// SlowDef applies a slow on hit.
type SlowDef struct {
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"` // 0.5 halves the speed
}

// AvailableUpgrades returns the resolved upgrade branches, or nil when the
// tower cannot be upgraded.
func (d *TowerDefinition) AvailableUpgrades() []*TowerDefinition {
	if d == nil || !d.CanUpgrade {
		return nil
	}
	return d.UpgradeOptions
}

func (d *TowerDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain TowerDefinition
	p := plain{
		Kind:       TowerRanged,
		Cost:       100,
		Range:      5,
		Damage:     10,
		Cooldown:   1,
		AreaRadius: 2,
		CanUpgrade: true,
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = TowerDefinition(p)
	return nil
}

func (s *StunDef) UnmarshalYAML(node *yaml.Node) error {
	type plain StunDef
	p := plain{Duration: 2}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = StunDef(p)
	return nil
}

func (s *SlowDef) UnmarshalYAML(node *yaml.Node) error {
	type plain SlowDef
	p := plain{Duration: 3, Multiplier: 0.5}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = SlowDef(p)
	return nil
}
