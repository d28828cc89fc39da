// internal/event/types.go
package event

import (
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

const (
	CountdownStarted EventType = "CountdownStarted" // Data: CountdownData
	CountdownSkipped EventType = "CountdownSkipped"
	WaveReady        EventType = "WaveReady"   // Countdown finished, waiting for the player
	WaveStarted      EventType = "WaveStarted" // Data: WaveData
	WaveEnded        EventType = "WaveEnded"   // Волна закончилась. Data: WaveData
	AllWavesComplete EventType = "AllWavesComplete"
	SpawnFailed      EventType = "SpawnFailed" // Data: error

	EnemySpawned   EventType = "EnemySpawned"   // Data: EnemyData
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен. Data: EnemyData
	RewardCredited EventType = "RewardCredited" // Data: RewardData
	GoldChanged    EventType = "GoldChanged"    // Data: GoldData

	TowerPlaced    EventType = "TowerPlaced" // Башня построена. Data: TowerData
	TowerUpgraded  EventType = "TowerUpgraded"
	TowerRemoved   EventType = "TowerRemoved"
	TowerDestroyed EventType = "TowerDestroyed"

	StatusMessage EventType = "StatusMessage" // Data: MessageData
	GameOver      EventType = "GameOver"
	GameRestarted EventType = "GameRestarted"
)

type CountdownData struct {
	NextWave int // 0-based
	Duration float64
}

type WaveData struct {
	Index      int // 0-based
	Total      int
	EnemyCount int
	Name       string
}

type EnemyData struct {
	ID        types.EntityID
	DefID     string
	WaveIndex int
	Position  geom.Vec3
}

type RewardData struct {
	EnemyID types.EntityID
	Amount  int
}

type GoldData struct {
	Gold  int
	Delta int
}

type TowerData struct {
	ID     types.EntityID
	SlotID int
	DefID  string
}

// MessageData is a transient line of text for the HUD.
type MessageData struct {
	Text     string
	Duration float64
	Warning  bool
}
