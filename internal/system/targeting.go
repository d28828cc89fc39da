// internal/system/targeting.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

// Target is anything a tower or an enemy can aim at.
type Target interface {
	TargetID() types.EntityID
	TargetPosition() geom.Vec3
}

// SpatialIndex answers radius queries over the live world. An index may
// return extra candidates; callers filter by exact distance.
type SpatialIndex interface {
	EnemiesWithin(p geom.Vec3, radius float64) []*component.Enemy
	TowersWithin(p geom.Vec3, radius float64) []*component.Tower
}

// SelectNearest returns the accepted candidate closest to origin. Equal
// distances go to the lowest entity id, so the result does not depend on
// the order of candidates. A nil accept takes every candidate.
func SelectNearest[T Target](origin geom.Vec3, candidates []T, accept func(T) bool) (T, bool) {
	var (
		best     T
		bestDist float64
		found    bool
	)
	for _, c := range candidates {
		if accept != nil && !accept(c) {
			continue
		}
		d := c.TargetPosition().Dist(origin)
		if !found || d < bestDist || (d == bestDist && c.TargetID() < best.TargetID()) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// WithinRange accepts candidates no further than r from origin.
func WithinRange[T Target](origin geom.Vec3, r float64) func(T) bool {
	return func(c T) bool {
		return c.TargetPosition().Dist(origin) <= r
	}
}

// Both combines two predicates.
func Both[T any](a, b func(T) bool) func(T) bool {
	return func(c T) bool {
		return a(c) && b(c)
	}
}

// filter keeps the candidates accept takes, preserving order.
func filter[T any](candidates []T, accept func(T) bool) []T {
	kept := candidates[:0:0]
	for _, c := range candidates {
		if accept(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// enemiesAround returns the attackable enemies within r of p.
func enemiesAround(index SpatialIndex, p geom.Vec3, r float64) []*component.Enemy {
	return filter(index.EnemiesWithin(p, r), Both(enemyAttackable, WithinRange[*component.Enemy](p, r)))
}

func enemyAttackable(e *component.Enemy) bool {
	return e.Alive
}

func towerAttackable(t *component.Tower) bool {
	return t.Active
}
