package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/geom"
)

func enemyAt(id uint64, x float64) *component.Enemy {
	e := component.NewEnemy(0, nil)
	e.ID = types.EntityID(id)
	e.Alive = true
	e.Position = geom.V(x, 0, 0)
	return e
}

func TestSelectNearestInRange(t *testing.T) {
	origin := geom.Vec3{}
	candidates := []*component.Enemy{enemyAt(1, 5), enemyAt(2, 2), enemyAt(3, 8)}

	got, ok := SelectNearest(origin, candidates, WithinRange[*component.Enemy](origin, 6))
	if !ok {
		t.Fatal("expected a target")
	}
	if got.ID != 2 {
		t.Errorf("expected enemy at distance 2, got id %d", got.ID)
	}
}

func TestSelectNearestTieBreak(t *testing.T) {
	origin := geom.Vec3{}
	a := enemyAt(7, 3)
	b := enemyAt(4, -3)
	for _, order := range [][]*component.Enemy{{a, b}, {b, a}} {
		got, ok := SelectNearest(origin, order, nil)
		if !ok {
			t.Fatal("expected a target")
		}
		if got.ID != 4 {
			t.Errorf("expected lowest id 4 on a tie, got %d", got.ID)
		}
	}
}

func TestSelectNearestFiltered(t *testing.T) {
	dead := enemyAt(1, 1)
	dead.Alive = false
	alive := enemyAt(2, 4)

	got, ok := SelectNearest(geom.Vec3{}, []*component.Enemy{dead, alive}, enemyAttackable)
	if !ok || got != alive {
		t.Errorf("expected the living enemy, got %v", got)
	}

	accept := Both(enemyAttackable, WithinRange[*component.Enemy](geom.Vec3{}, 3))
	if _, ok := SelectNearest(geom.Vec3{}, []*component.Enemy{dead, alive}, accept); ok {
		t.Error("expected no candidate to pass both predicates")
	}
	if _, ok := SelectNearest[*component.Enemy](geom.Vec3{}, nil, nil); ok {
		t.Error("expected none from an empty set")
	}
}

func TestSelectNearestTowers(t *testing.T) {
	w := newWorld(t, testLibrary(), testSettings(), nil, nil)
	near := w.addTower(geom.V(1, 0, 0), rangedDef())
	far := w.addTower(geom.V(2, 0, 0), rangedDef())
	near.Active = false

	got, ok := SelectNearest(geom.Vec3{}, w.ecs.TowersWithin(geom.Vec3{}, 5), towerAttackable)
	if !ok || got != far {
		t.Errorf("expected the only active tower, got %v", got)
	}
}
