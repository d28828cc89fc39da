package ui

import (
	"image/color"
	"strings"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	FinalColor       color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ObjectiveColor,
		FinalColor:       config.EnemyColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Последняя волна выделяется цветом.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, total int) {
	if waveNumber <= 0 || waveNumber > total {
		return
	}
	label := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber == total {
		textColor = i.FinalColor
	}

	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, i.Y, textColor)
}
