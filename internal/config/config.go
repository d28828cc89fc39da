// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// WorldScale converts level units to screen pixels in the debug view.
	WorldScale = 24.0

	InitialGold         = 200
	InitialCountdown    = 10.0 // Before the first wave
	DefaultWaveInterval = 10.0 // Between waves
	AutoStartWaves      = true

	TowerScanInterval = 0.2
	EnemyScanInterval = 0.3

	// Enemies that cannot find a path for this long jump towards the objective.
	NoPathGrace          = 0.3
	FallbackJumpDistance = 3.0
	FallbackJumpDuration = 0.6
	FallbackJumpHeight   = 1.5

	SpeedJitterMin = -0.5
	SpeedJitterMax = 0.5
	MinMoveSpeed   = 0.5

	MinSlowMultiplier = 0.1
	SlowBucketEpsilon = 1e-3

	// An enemy this close to the objective ends the game.
	ContactRadius = 0.8

	// PathGridCell is the cell size of the obstacle-avoiding path grid. 0
	// falls back to the straight-line field planner.
	PathGridCell = 0.5

	SpawnSearchRadius  = 3.0
	SpawnSearchStep    = 0.5
	SpawnSearchSamples = 8

	StatusMessageDuration = 2.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{70, 100, 120, 220}
	ObstacleColor    = color.RGBA{150, 70, 70, 220}
	SpawnColor       = color.RGBA{0, 255, 0, 255}
	ObjectiveColor   = color.RGBA{255, 215, 0, 255}
	SlotColor        = color.RGBA{128, 128, 128, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	StunnedColor     = color.RGBA{240, 240, 240, 255}
	SlowedColor      = color.RGBA{50, 100, 255, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	WarningColor     = color.RGBA{255, 200, 60, 255}
	TowerColors      = map[string]color.RGBA{
		"ranged": {50, 255, 50, 255},
		"melee":  {180, 50, 230, 255},
	}
)
