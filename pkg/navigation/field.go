// pkg/navigation/field.go
package navigation

import (
	"math"

	"go-wave-defense/pkg/geom"
)

// Surface reports whether a point lies on walkable ground.
type Surface interface {
	Navigable(p geom.Vec3) bool
}

// Obstacle is a vertical cylinder that blocks movement on the XZ plane.
type Obstacle struct {
	Center geom.Vec3 `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

// Bounds is an axis-aligned rectangle on the XZ plane. The zero value is unbounded.
type Bounds struct {
	MinX float64 `yaml:"minX"`
	MinZ float64 `yaml:"minZ"`
	MaxX float64 `yaml:"maxX"`
	MaxZ float64 `yaml:"maxZ"`
}

func (b Bounds) empty() bool {
	return b.MinX == 0 && b.MinZ == 0 && b.MaxX == 0 && b.MaxZ == 0
}

// Contains reports whether p lies within b.
func (b Bounds) Contains(p geom.Vec3) bool {
	if b.empty() {
		return true
	}
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Field is a flat level with cylindrical obstacles. It serves both as the
// walkable surface and as a straight-line path planner with a single detour.
type Field struct {
	Bounds    Bounds
	Obstacles []Obstacle
	// Clearance is kept between a detour waypoint and the obstacle edge.
	Clearance float64
}

// NewField creates a field with the default clearance.
func NewField(bounds Bounds, obstacles []Obstacle) *Field {
	return &Field{Bounds: bounds, Obstacles: obstacles, Clearance: 0.5}
}

// Navigable reports whether p is inside the bounds and outside every obstacle.
func (f *Field) Navigable(p geom.Vec3) bool {
	if !f.Bounds.Contains(p) {
		return false
	}
	flat := p.Flat()
	for _, o := range f.Obstacles {
		if flat.Dist(o.Center.Flat()) < o.Radius {
			return false
		}
	}
	return true
}

// Advance moves from towards to by at most maxDistance. The second result is
// false when neither the direct line nor a detour around the first blocking
// obstacle is walkable.
func (f *Field) Advance(from, to geom.Vec3, maxDistance float64) (geom.Vec3, bool) {
	if !f.Navigable(from) {
		return from, false
	}
	blocker, blocked := f.firstBlocker(from, to)
	if !blocked {
		return from.MoveTowards(to, maxDistance), true
	}

	dir := to.Sub(from).Flat().Normalize()
	side := geom.V(-dir.Z, 0, dir.X)
	offset := blocker.Radius + f.Clearance
	for _, sign := range []float64{1, -1} {
		waypoint := blocker.Center.Flat().Add(side.Scale(sign * offset))
		waypoint.Y = from.Y
		if !f.Navigable(waypoint) {
			continue
		}
		if _, stillBlocked := f.firstBlocker(from, waypoint); stillBlocked {
			continue
		}
		return from.MoveTowards(waypoint, maxDistance), true
	}
	return from, false
}

// firstBlocker returns the obstacle closest to from whose footprint
// intersects the segment from→to.
func (f *Field) firstBlocker(from, to geom.Vec3) (Obstacle, bool) {
	a, b := from.Flat(), to.Flat()
	var (
		best  Obstacle
		found bool
		bestT = math.MaxFloat64
	)
	for _, o := range f.Obstacles {
		t, d := closestOnSegment(a, b, o.Center.Flat())
		if d < o.Radius && t < bestT {
			best, bestT, found = o, t, true
		}
	}
	return best, found
}

func closestOnSegment(a, b, p geom.Vec3) (t, dist float64) {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Z*ab.Z
	if lenSq == 0 {
		return 0, a.Dist(p)
	}
	ap := p.Sub(a)
	t = geom.Clamp((ap.X*ab.X+ap.Z*ab.Z)/lenSq, 0, 1)
	return t, a.Add(ab.Scale(t)).Dist(p)
}

// NearestNavigable searches rings of growing radius around p for a walkable
// point. The search is bounded by maxRadius; ok is false when nothing walkable
// was found, in which case p is returned unchanged.
func NearestNavigable(s Surface, p geom.Vec3, maxRadius, step float64, samples int) (geom.Vec3, bool) {
	if s == nil || s.Navigable(p) {
		return p, true
	}
	if step <= 0 || samples <= 0 {
		return p, false
	}
	for r := step; r <= maxRadius+1e-9; r += step {
		for i := 0; i < samples; i++ {
			angle := 2 * math.Pi * float64(i) / float64(samples)
			candidate := geom.V(p.X+r*math.Cos(angle), p.Y, p.Z+r*math.Sin(angle))
			if s.Navigable(candidate) {
				return candidate, true
			}
		}
	}
	return p, false
}
