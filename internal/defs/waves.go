// internal/defs/waves.go
package defs

import (
	"fmt"

	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"

	"gopkg.in/yaml.v3"
)

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	EnemyID          string  `yaml:"enemy"` // Empty falls back to the library default
	EnemyCount       int     `yaml:"enemyCount"`
	SpawnInterval    float64 `yaml:"spawnInterval"` // Seconds between spawns
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	HealthMultiplier float64 `yaml:"healthMultiplier"`
	GoldMultiplier   float64 `yaml:"goldMultiplier"`
}

// TotalDuration is the time needed to spawn the whole wave.
func (w WaveDefinition) TotalDuration() float64 {
	return float64(w.EnemyCount) * w.SpawnInterval
}

// Summary is a one-line description for logs and menus.
func (w WaveDefinition) Summary() string {
	return fmt.Sprintf("%s: %d enemies, every %.1fs, %.1fs total", w.Name, w.EnemyCount, w.SpawnInterval, w.TotalDuration())
}

func (w *WaveDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain WaveDefinition
	p := plain{
		Name:             "Wave",
		EnemyCount:       10,
		SpawnInterval:    1,
		SpeedMultiplier:  1,
		HealthMultiplier: 1,
		GoldMultiplier:   1,
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*w = WaveDefinition(p)
	return nil
}

// LevelDefinition is the static layout the simulation runs on.
type LevelDefinition struct {
	Name        string                `yaml:"name"`
	Objective   geom.Vec3             `yaml:"objective"`
	SpawnPoints []geom.Vec3           `yaml:"spawnPoints"`
	TowerSlots  []geom.Vec3           `yaml:"towerSlots"`
	Bounds      navigation.Bounds     `yaml:"bounds"`
	Obstacles   []navigation.Obstacle `yaml:"obstacles"`
}
