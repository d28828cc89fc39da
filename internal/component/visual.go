// internal/component/visual.go
package component

import "go-wave-defense/pkg/geom"

// Default lifetimes of attack effects, in seconds.
const (
	LaserDuration = 0.12
	BlastDuration = 0.3
)

// Laser — след выстрела от башни к цели.
type Laser struct {
	From, To geom.Vec3
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64
}

// Blast — расходящееся кольцо атаки по области.
type Blast struct {
	Center    geom.Vec3
	MaxRadius float64
	Radius    float64 // Текущий радиус анимации
	Timer     float64
	Duration  float64
}

// Progress returns how far the effect is through its lifetime, in [0, 1].
func (l *Laser) Progress() float64 {
	return progress(l.Timer, l.Duration)
}

func (b *Blast) Progress() float64 {
	return progress(b.Timer, b.Duration)
}

func progress(timer, duration float64) float64 {
	if duration <= 0 || timer >= duration {
		return 1
	}
	return timer / duration
}
