// pkg/render/projection.go
package render

import (
	"go-wave-defense/pkg/geom"
	"go-wave-defense/pkg/navigation"
)

// Projection maps the XZ plane of the level onto the screen, top-down.
// Screen x follows world X and screen y follows world Z.
type Projection struct {
	Scale   float64 // Pixels per level unit
	OffsetX float64
	OffsetY float64
}

// NewProjection centres bounds on a screen of the given size.
func NewProjection(bounds navigation.Bounds, scale float64, screenWidth, screenHeight int) Projection {
	cx := (bounds.MinX + bounds.MaxX) / 2
	cz := (bounds.MinZ + bounds.MaxZ) / 2
	return Projection{
		Scale:   scale,
		OffsetX: float64(screenWidth)/2 - cx*scale,
		OffsetY: float64(screenHeight)/2 - cz*scale,
	}
}

// ToScreen returns the pixel position of p. Height is ignored.
func (p Projection) ToScreen(v geom.Vec3) (float32, float32) {
	return float32(p.OffsetX + v.X*p.Scale), float32(p.OffsetY + v.Z*p.Scale)
}

// ToWorld returns the ground point under a pixel.
func (p Projection) ToWorld(x, y int) geom.Vec3 {
	return geom.V((float64(x)-p.OffsetX)/p.Scale, 0, (float64(y)-p.OffsetY)/p.Scale)
}

// Length converts a level distance to pixels.
func (p Projection) Length(d float64) float32 {
	return float32(d * p.Scale)
}
