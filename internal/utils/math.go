// internal/utils/math.go
package utils

import "math"

// LerpAngle интерполирует угол по кратчайшей дуге
func LerpAngle(from, to, t float64) float64 {
	diff := NormalizeAngle(to - from)
	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle приводит угол к диапазону [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Heading is the screen angle from (x0, z0) towards (x1, z1).
func Heading(x0, z0, x1, z1 float64) float64 {
	return math.Atan2(z1-z0, x1-x0)
}
