// component/movement.go
package component

import (
	"math"

	"go-wave-defense/pkg/geom"
)

// Jump is an arc relocation used when an enemy cannot find a path.
type Jump struct {
	From     geom.Vec3
	To       geom.Vec3
	Height   float64
	Duration float64
	Elapsed  float64
}

// NewJump creates a jump from one point to another.
func NewJump(from, to geom.Vec3, height, duration float64) *Jump {
	return &Jump{From: from, To: to, Height: height, Duration: duration}
}

// Advance moves the jump forward and returns the position on the arc.
// done is true once the landing point is reached.
func (j *Jump) Advance(dt float64) (pos geom.Vec3, done bool) {
	j.Elapsed += dt
	t := 1.0
	if j.Duration > 0 {
		t = geom.Clamp(j.Elapsed/j.Duration, 0, 1)
	}
	pos = j.From.Lerp(j.To, t)
	pos.Y += j.Height * math.Sin(t*math.Pi)
	return pos, t >= 1
}
