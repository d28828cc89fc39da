// internal/component/status_effect.go
package component

import (
	"math"

	"go-wave-defense/internal/config"
)

// SlowEffect is one active slow. Entries are unique by multiplier.
type SlowEffect struct {
	Multiplier float64 // 0.5 halves the speed
	Remaining  float64
}

// StatusEffects tracks the stun and slows applied to a single enemy.
type StatusEffects struct {
	StunRemaining float64
	Slows         []SlowEffect
}

// ApplyStun keeps the longer of the current and the new stun. It reports
// whether the enemy has just become stunned, in which case it must stop.
func (s *StatusEffects) ApplyStun(duration float64) bool {
	if duration <= s.StunRemaining {
		return false
	}
	wasStunned := s.Stunned()
	s.StunRemaining = duration
	return !wasStunned
}

// ApplySlow adds a slow or refreshes the entry with the same multiplier.
// A refresh never shortens the remaining time.
func (s *StatusEffects) ApplySlow(duration, multiplier float64) {
	if duration <= 0 {
		return
	}
	multiplier = math.Max(config.MinSlowMultiplier, math.Min(1, multiplier))
	for i := range s.Slows {
		if math.Abs(s.Slows[i].Multiplier-multiplier) < config.SlowBucketEpsilon {
			if duration > s.Slows[i].Remaining {
				s.Slows[i].Remaining = duration
			}
			return
		}
	}
	s.Slows = append(s.Slows, SlowEffect{Multiplier: multiplier, Remaining: duration})
}

// Tick decays every effect and drops the expired ones. It reports whether
// a stun ended during this tick.
func (s *StatusEffects) Tick(dt float64) bool {
	stunEnded := false
	if s.StunRemaining > 0 {
		s.StunRemaining -= dt
		if s.StunRemaining <= 0 {
			s.StunRemaining = 0
			stunEnded = true
		}
	}

	kept := s.Slows[:0]
	for _, slow := range s.Slows {
		slow.Remaining -= dt
		if slow.Remaining > 0 {
			kept = append(kept, slow)
		}
	}
	s.Slows = kept
	return stunEnded
}

// StrongestMultiplier returns the smallest active slow multiplier, or 1.
func (s *StatusEffects) StrongestMultiplier() float64 {
	strongest := 1.0
	for _, slow := range s.Slows {
		if slow.Multiplier < strongest {
			strongest = slow.Multiplier
		}
	}
	return strongest
}

func (s *StatusEffects) Stunned() bool {
	return s.StunRemaining > 0
}

func (s *StatusEffects) Slowed() bool {
	return len(s.Slows) > 0
}

// Reset clears every effect.
func (s *StatusEffects) Reset() {
	s.StunRemaining = 0
	s.Slows = s.Slows[:0]
}
