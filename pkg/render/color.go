// pkg/render/color.go
package render

import "image/color"

// WorldColors holds all the color definitions needed to render the level.
type WorldColors struct {
	Background  color.RGBA
	Ground      color.RGBA
	Obstacle    color.RGBA
	Spawn       color.RGBA
	Objective   color.RGBA
	Slot        color.RGBA
	Enemy       color.RGBA
	Stunned     color.RGBA
	Slowed      color.RGBA
	TowerStroke color.RGBA
	Text        color.RGBA
	Towers      map[string]color.RGBA // By tower kind
}

// TowerColor returns the fill for a tower kind, falling back to the slot color.
func (c *WorldColors) TowerColor(kind string) color.RGBA {
	if clr, ok := c.Towers[kind]; ok {
		return clr
	}
	return c.Slot
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// MixColor blends a towards b by t in [0, 1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
