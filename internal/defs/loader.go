// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// ErrUnknownDefinition is wrapped by lookups of ids the library does not hold.
var ErrUnknownDefinition = errors.New("unknown definition")

// Library is the immutable definition data a session runs with.
type Library struct {
	DefaultEnemyID string
	Enemies        map[string]EnemyDefinition
	Towers         map[string]*TowerDefinition
	TowerOrder     []string // Build menu order, as listed in the file
	Waves          []WaveDefinition
	Level          LevelDefinition
}

type libraryFile struct {
	DefaultEnemy string            `yaml:"defaultEnemy"`
	Enemies      []EnemyDefinition `yaml:"enemies"`
	Towers       []TowerDefinition `yaml:"towers"`
	Waves        []WaveDefinition  `yaml:"waves"`
	Level        LevelDefinition   `yaml:"level"`
}

// Load reads a definition file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Default returns the library embedded in the binary.
func Default() (*Library, error) {
	return Parse(defaultData)
}

// Parse decodes, validates and links a definition document.
func Parse(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse definitions YAML: %w", err)
	}

	lib := &Library{
		DefaultEnemyID: file.DefaultEnemy,
		Enemies:        make(map[string]EnemyDefinition, len(file.Enemies)),
		Towers:         make(map[string]*TowerDefinition, len(file.Towers)),
		Waves:          file.Waves,
		Level:          file.Level,
	}

	for _, def := range file.Enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition without id")
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		lib.Enemies[def.ID] = def
	}
	for i := range file.Towers {
		def := &file.Towers[i]
		if def.ID == "" {
			return nil, fmt.Errorf("tower definition without id")
		}
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		lib.Towers[def.ID] = def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}

	if err := lib.link(); err != nil {
		return nil, err
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// link resolves upgrade ids into definition pointers.
func (l *Library) link() error {
	for _, def := range l.Towers {
		if len(def.Upgrades) > MaxUpgradeOptions {
			return fmt.Errorf("tower %s: at most %d upgrades allowed, got %d", def.ID, MaxUpgradeOptions, len(def.Upgrades))
		}
		def.UpgradeOptions = def.UpgradeOptions[:0]
		for _, id := range def.Upgrades {
			target, ok := l.Towers[id]
			if !ok {
				return fmt.Errorf("tower %s: upgrade %q: %w", def.ID, id, ErrUnknownDefinition)
			}
			def.UpgradeOptions = append(def.UpgradeOptions, target)
		}
	}
	return nil
}

func (l *Library) validate() error {
	if l.DefaultEnemyID != "" {
		if _, ok := l.Enemies[l.DefaultEnemyID]; !ok {
			return fmt.Errorf("defaultEnemy %q: %w", l.DefaultEnemyID, ErrUnknownDefinition)
		}
	}

	for id, def := range l.Enemies {
		if !def.Kind.Valid() {
			return fmt.Errorf("enemy %s: unknown kind %q", id, def.Kind)
		}
		if def.MaxHealth <= 0 {
			return fmt.Errorf("enemy %s: maxHealth must be positive, got %.2f", id, def.MaxHealth)
		}
		if def.MoveSpeed < 0 {
			return fmt.Errorf("enemy %s: moveSpeed cannot be negative, got %.2f", id, def.MoveSpeed)
		}
		if def.Attack != nil && (def.Attack.Range <= 0 || def.Attack.Damage < 0) {
			return fmt.Errorf("enemy %s: attack needs a positive range and non-negative damage", id)
		}
	}

	for id, def := range l.Towers {
		if !def.Kind.Valid() {
			return fmt.Errorf("tower %s: unknown kind %q", id, def.Kind)
		}
		if def.Range <= 0 || def.Cooldown < 0 || def.Damage < 0 || def.Cost < 0 || def.MaxHealth < 0 {
			return fmt.Errorf("tower %s: range must be positive, cost/damage/cooldown/maxHealth non-negative", id)
		}
		if def.AreaAttack && def.AreaRadius <= 0 {
			return fmt.Errorf("tower %s: areaRadius must be positive for area attacks", id)
		}
		if def.Slow != nil && (def.Slow.Multiplier <= 0 || def.Slow.Multiplier > 1) {
			return fmt.Errorf("tower %s: slow multiplier must be in (0,1], got %.2f", id, def.Slow.Multiplier)
		}
	}

	for i, w := range l.Waves {
		if w.EnemyCount < 0 {
			return fmt.Errorf("wave %d: enemyCount cannot be negative, got %d", i+1, w.EnemyCount)
		}
		if w.SpawnInterval < 0 {
			return fmt.Errorf("wave %d: spawnInterval cannot be negative", i+1)
		}
		if w.HealthMultiplier <= 0 || w.SpeedMultiplier <= 0 || w.GoldMultiplier < 0 {
			return fmt.Errorf("wave %d: health/speed multipliers must be positive and gold multiplier non-negative", i+1)
		}
		if _, err := l.WaveEnemy(w); err != nil {
			return fmt.Errorf("wave %d: %w", i+1, err)
		}
	}
	return nil
}

// Tower looks up a tower definition.
func (l *Library) Tower(id string) (*TowerDefinition, error) {
	def, ok := l.Towers[id]
	if !ok {
		return nil, fmt.Errorf("tower %q: %w", id, ErrUnknownDefinition)
	}
	return def, nil
}

// WaveEnemy resolves the enemy a wave spawns, honouring the library default.
func (l *Library) WaveEnemy(w WaveDefinition) (EnemyDefinition, error) {
	id := w.EnemyID
	if id == "" {
		id = l.DefaultEnemyID
	}
	def, ok := l.Enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("enemy %q: %w", id, ErrUnknownDefinition)
	}
	return def, nil
}

// BuildableTowers returns the towers that can be placed on an empty slot, in
// file order. Towers only reachable as an upgrade are left out.
func (l *Library) BuildableTowers() []*TowerDefinition {
	upgradeOnly := make(map[string]bool)
	for _, def := range l.Towers {
		for _, id := range def.Upgrades {
			upgradeOnly[id] = true
		}
	}
	var out []*TowerDefinition
	for _, id := range l.TowerOrder {
		if !upgradeOnly[id] {
			out = append(out, l.Towers[id])
		}
	}
	return out
}
