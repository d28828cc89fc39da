// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton shows the simulation speed as one to three arrows.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Color         color.RGBA
	StrokeColor   color.RGBA
}

func NewSpeedButton(x, y, size float32, fill, stroke color.RGBA) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, Color: fill, StrokeColor: stroke}
}

// Draw рисует по стрелке на каждую ступень ускорения (1x, 2x, 4x).
func (b *SpeedButton) Draw(screen *ebiten.Image, speed float64) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	arrows := 1
	if speed >= 4 {
		arrows = 3
	} else if speed >= 2 {
		arrows = 2
	}
	height := size * 1.2
	width := size * 0.8
	left := b.X - float32(arrows)*width/2
	for i := 0; i < arrows; i++ {
		x := left + float32(i)*width
		var path vector.Path
		path.MoveTo(x, b.Y-height/2)
		path.LineTo(x+width, b.Y)
		path.LineTo(x, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, b.Color)
		vector.StrokeLine(screen, x, b.Y-height/2, x+width, b.Y, 1, b.StrokeColor, true)
		vector.StrokeLine(screen, x+width, b.Y, x, b.Y+height/2, 1, b.StrokeColor, true)
	}
}

// IsClicked uses a circle for hit testing, the shape is too irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Toggle() {
	b.LastClickTime = time.Now()
}

var whitePixel *ebiten.Image

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
