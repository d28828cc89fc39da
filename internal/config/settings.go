package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the simulation tunables. Zero-valued fields in a settings
// file keep their defaults because the file is decoded over Default().
type Settings struct {
	Seed int64 `yaml:"seed"` // 0 seeds from the clock

	InitialGold      int     `yaml:"initialGold"`
	InitialCountdown float64 `yaml:"initialCountdown"`
	WaveInterval     float64 `yaml:"waveInterval"`
	AutoStartWaves   bool    `yaml:"autoStartWaves"`

	TowerScanInterval float64 `yaml:"towerScanInterval"`
	EnemyScanInterval float64 `yaml:"enemyScanInterval"`

	NoPathGrace          float64 `yaml:"noPathGrace"`
	FallbackJumpDistance float64 `yaml:"fallbackJumpDistance"`
	FallbackJumpDuration float64 `yaml:"fallbackJumpDuration"`
	FallbackJumpHeight   float64 `yaml:"fallbackJumpHeight"`

	SpeedJitterMin float64 `yaml:"speedJitterMin"`
	SpeedJitterMax float64 `yaml:"speedJitterMax"`
	MinMoveSpeed   float64 `yaml:"minMoveSpeed"`

	ContactRadius float64 `yaml:"contactRadius"`
	PathGridCell  float64 `yaml:"pathGridCell"`

	SpawnSearchRadius  float64 `yaml:"spawnSearchRadius"`
	SpawnSearchStep    float64 `yaml:"spawnSearchStep"`
	SpawnSearchSamples int     `yaml:"spawnSearchSamples"`
}

// Default returns the settings built from the package constants.
func Default() Settings {
	return Settings{
		InitialGold:          InitialGold,
		InitialCountdown:     InitialCountdown,
		WaveInterval:         DefaultWaveInterval,
		AutoStartWaves:       AutoStartWaves,
		TowerScanInterval:    TowerScanInterval,
		EnemyScanInterval:    EnemyScanInterval,
		NoPathGrace:          NoPathGrace,
		FallbackJumpDistance: FallbackJumpDistance,
		FallbackJumpDuration: FallbackJumpDuration,
		FallbackJumpHeight:   FallbackJumpHeight,
		SpeedJitterMin:       SpeedJitterMin,
		SpeedJitterMax:       SpeedJitterMax,
		MinMoveSpeed:         MinMoveSpeed,
		ContactRadius:        ContactRadius,
		PathGridCell:         PathGridCell,
		SpawnSearchRadius:    SpawnSearchRadius,
		SpawnSearchStep:      SpawnSearchStep,
		SpawnSearchSamples:   SpawnSearchSamples,
	}
}

// LoadSettings reads a YAML settings file on top of Default().
func LoadSettings(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.InitialGold < 0 {
		return fmt.Errorf("initialGold cannot be negative, got %d", s.InitialGold)
	}
	if s.InitialCountdown < 0 || s.WaveInterval < 0 {
		return fmt.Errorf("countdowns cannot be negative")
	}
	if s.TowerScanInterval <= 0 || s.EnemyScanInterval <= 0 {
		return fmt.Errorf("scan intervals must be positive")
	}
	if s.SpeedJitterMin > s.SpeedJitterMax {
		return fmt.Errorf("speedJitterMin %.2f exceeds speedJitterMax %.2f", s.SpeedJitterMin, s.SpeedJitterMax)
	}
	if s.MinMoveSpeed <= 0 {
		return fmt.Errorf("minMoveSpeed must be positive, got %.2f", s.MinMoveSpeed)
	}
	if s.FallbackJumpDuration <= 0 {
		return fmt.Errorf("fallbackJumpDuration must be positive, got %.2f", s.FallbackJumpDuration)
	}
	if s.PathGridCell < 0 {
		return fmt.Errorf("pathGridCell cannot be negative, got %.2f", s.PathGridCell)
	}
	if s.SpawnSearchSamples < 0 || s.SpawnSearchStep < 0 || s.SpawnSearchRadius < 0 {
		return fmt.Errorf("spawn search parameters cannot be negative")
	}
	return nil
}
