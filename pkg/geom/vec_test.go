package geom

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	a := V(0, 0, 0)
	b := V(3, 4, 12)
	if got := a.Dist(b); got != 13 {
		t.Errorf("expected 13, got %v", got)
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		from   Vec3
		to     Vec3
		step   float64
		expect Vec3
	}{
		{"partial step", V(0, 0, 0), V(10, 0, 0), 4, V(4, 0, 0)},
		{"overshoot snaps to target", V(0, 0, 0), V(1, 0, 1), 5, V(1, 0, 1)},
		{"already there", V(2, 0, 2), V(2, 0, 2), 1, V(2, 0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.MoveTowards(tt.to, tt.step)
			if got.Dist(tt.expect) > 1e-9 {
				t.Errorf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("expected zero vector, got %+v", got)
	}
	if got := V(0, 0, 5).Normalize().Len(); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected unit length, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned a value outside the expected range")
	}
}
