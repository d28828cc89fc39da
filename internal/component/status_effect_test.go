package component

import (
	"math"
	"testing"
)

func TestApplyStunKeepsLongest(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 float64
	}{
		{"longer second", 1, 3},
		{"shorter second", 3, 1},
		{"equal", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StatusEffects
			if !s.ApplyStun(tt.d1) {
				t.Error("expected first stun to halt movement")
			}
			if s.ApplyStun(tt.d2) {
				t.Error("expected second stun not to report a new halt")
			}
			want := math.Max(tt.d1, tt.d2)
			if s.StunRemaining != want {
				t.Errorf("expected stunRemaining %v, got %v", want, s.StunRemaining)
			}
		})
	}
}

func TestStunEndsOnTick(t *testing.T) {
	var s StatusEffects
	s.ApplyStun(0.5)
	if s.Tick(0.3) {
		t.Fatal("stun ended too early")
	}
	if !s.Tick(0.3) {
		t.Fatal("expected stun to end")
	}
	if s.StunRemaining != 0 || s.Stunned() {
		t.Errorf("expected stun cleared, got %v", s.StunRemaining)
	}
	if s.Tick(0.3) {
		t.Error("an expired stun must not end twice")
	}
	if s.ApplyStun(0) {
		t.Error("zero stun must be ignored")
	}
}

func TestApplySlowSameBucket(t *testing.T) {
	var s StatusEffects
	s.ApplySlow(3, 0.5)
	s.Tick(2) // 1s left

	s.ApplySlow(0.5, 0.5)
	if len(s.Slows) != 1 {
		t.Fatalf("expected one bucket, got %d", len(s.Slows))
	}
	if got := s.Slows[0].Remaining; math.Abs(got-1) > 1e-9 {
		t.Errorf("shorter slow must not shorten: expected 1, got %v", got)
	}

	s.ApplySlow(4, 0.5004)
	if len(s.Slows) != 1 {
		t.Fatalf("approximately equal multiplier should share a bucket, got %d entries", len(s.Slows))
	}
	if got := s.Slows[0].Remaining; got != 4 {
		t.Errorf("expected refreshed duration 4, got %v", got)
	}
}

func TestStrongestMultiplier(t *testing.T) {
	var s StatusEffects
	if got := s.StrongestMultiplier(); got != 1 {
		t.Fatalf("expected 1 without slows, got %v", got)
	}

	s.ApplySlow(1, 0.7)
	s.ApplySlow(3, 0.4)
	s.ApplySlow(2, 0.01) // clamped to the floor
	if got := s.StrongestMultiplier(); got != 0.1 {
		t.Errorf("expected clamped 0.1, got %v", got)
	}

	prev := s.StrongestMultiplier()
	for i := 0; i < 40; i++ {
		s.Tick(0.1)
		cur := s.StrongestMultiplier()
		if cur < prev {
			t.Fatalf("multiplier dropped without a new slow: %v -> %v", prev, cur)
		}
		prev = cur
	}
	if prev != 1 || s.Slowed() {
		t.Errorf("expected every slow to expire, got %v with %d entries", prev, len(s.Slows))
	}
}

func TestApplySlowIgnoresInvalid(t *testing.T) {
	var s StatusEffects
	s.ApplySlow(0, 0.5)
	s.ApplySlow(-1, 0.5)
	if s.Slowed() {
		t.Errorf("expected non-positive durations to be ignored, got %d entries", len(s.Slows))
	}
	s.ApplySlow(1, 2)
	if got := s.StrongestMultiplier(); got != 1 {
		t.Errorf("expected multiplier above 1 clamped to 1, got %v", got)
	}
}
