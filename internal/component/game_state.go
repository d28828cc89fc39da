package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	GameRunning GameState = iota
	GameOver
)

// WavePhase is the wave controller's mode. Exactly one holds at a time.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveCountdown
	WaveReady // Countdown done, waiting for the player to start the wave
	WaveActive
	WaveAllComplete
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveCountdown:
		return "countdown"
	case WaveReady:
		return "ready"
	case WaveActive:
		return "active"
	case WaveAllComplete:
		return "all complete"
	}
	return "unknown"
}

// Wave holds the progress of the wave sequence.
type Wave struct {
	Phase WavePhase
	// Index is the wave being spawned or last finished, -1 before the first.
	Index            int
	NextIndex        int
	LiveEnemies      int
	RemainingToSpawn int
	SpawnTimer       float64 // Time until the next spawn
	Countdown        float64
	Stalled          bool // Spawning aborted, the wave will not complete
}

// NewWave returns the state before anything has started.
func NewWave() *Wave {
	return &Wave{Phase: WaveIdle, Index: -1}
}

// Complete reports whether the active wave has nothing left to spawn or kill.
func (w *Wave) Complete() bool {
	return w.Phase == WaveActive && !w.Stalled && w.LiveEnemies == 0 && w.RemainingToSpawn == 0
}
