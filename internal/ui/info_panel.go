// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	buttonWidth    = 170
	buttonHeight   = 36
	buttonSpacing  = 12
)

// ActionKind is what a panel button asks the game to do.
type ActionKind int

const (
	ActionBuild ActionKind = iota
	ActionUpgrade
	ActionRemove
)

// PanelAction is returned when a button is clicked. Option indexes
// Library.BuildableTowers for ActionBuild and the upgrade branch for ActionUpgrade.
type PanelAction struct {
	Kind   ActionKind
	Option int
}

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Action  PanelAction
	Enabled bool
}

// InfoPanel shows the selected slot: build choices for a free slot, the
// tower's stats and upgrade branches otherwise.
type InfoPanel struct {
	IsVisible     bool
	SlotID        int
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	Buttons       []Button
}

func NewInfoPanel(font font.Face, titleFont font.Face) *InfoPanel {
	return &InfoPanel{
		SlotID:        -1,
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetSlot(slotID int) {
	p.SlotID = slotID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point falls on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel and lays out its buttons for the current slot.
func (p *InfoPanel) Update(g *app.Game) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.SlotID = -1
		}
	}
	p.layout(g)
}

// Click returns the action of the enabled button under (x, y).
func (p *InfoPanel) Click(x, y int) (PanelAction, bool) {
	pt := image.Point{X: x, Y: y}
	for _, b := range p.Buttons {
		if b.Enabled && pt.In(b.Rect) {
			return b.Action, true
		}
	}
	return PanelAction{}, false
}

func (p *InfoPanel) layout(g *app.Game) {
	p.Buttons = p.Buttons[:0]
	if !p.IsVisible || p.SlotID < 0 {
		return
	}
	gold := g.Ledger.Gold()
	right := config.ScreenWidth - panelMargin - 15
	top := int(p.currentY) + panelHeight - panelMargin - buttonHeight - 15
	add := func(label string, action PanelAction, enabled bool) {
		x := right - (len(p.Buttons)+1)*(buttonWidth+buttonSpacing) + buttonSpacing
		p.Buttons = append(p.Buttons, Button{
			Rect:    image.Rect(x, top, x+buttonWidth, top+buttonHeight),
			Text:    label,
			Action:  action,
			Enabled: enabled && !g.GameOver(),
		})
	}

	tower, occupied := g.TowerAt(p.SlotID)
	if !occupied {
		for i, def := range g.Library.BuildableTowers() {
			add(fmt.Sprintf("[%d] %s %dg", i+1, def.Name, def.Cost), PanelAction{Kind: ActionBuild, Option: i}, gold >= def.Cost)
		}
		return
	}
	add("[X] Remove", PanelAction{Kind: ActionRemove}, true)
	keys := []string{"U", "I"}
	for i, up := range tower.Def.AvailableUpgrades() {
		add(fmt.Sprintf("[%s] %s %dg", keys[i], up.Name, up.Cost), PanelAction{Kind: ActionUpgrade, Option: i}, gold >= up.Cost)
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, g *app.Game) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.SlotID < 0 {
		return
	}
	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + 15 + lineHeight

	tower, occupied := g.TowerAt(p.SlotID)
	if !occupied {
		text.Draw(screen, fmt.Sprintf("Slot %d (free)", p.SlotID+1), p.titleFontFace, x, y, config.TextLightColor)
	} else {
		p.drawTowerInfo(screen, tower, x, y)
	}

	for _, b := range p.Buttons {
		btnColor := color.RGBA{R: 60, G: 100, B: 60, A: 255}
		if !b.Enabled {
			btnColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
		} else if b.Action.Kind == ActionRemove {
			btnColor = color.RGBA{R: 100, G: 60, B: 60, A: 255}
		}
		vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), float32(b.Rect.Dx()), float32(b.Rect.Dy()), btnColor, true)

		textBounds := text.BoundString(p.fontFace, b.Text)
		textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
		textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
		text.Draw(screen, b.Text, p.fontFace, textX, textY, color.White)
	}
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, tower *component.Tower, x, y int) {
	def := tower.Def
	text.Draw(screen, def.Name, p.titleFontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %.0f  Range: %.1f  Cooldown: %.1fs", def.Damage, def.Range, def.Cooldown), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight

	effects := "none"
	switch {
	case def.Stun != nil && def.Slow != nil:
		effects = fmt.Sprintf("stun %.1fs, slow x%.1f", def.Stun.Duration, def.Slow.Multiplier)
	case def.Stun != nil:
		effects = fmt.Sprintf("stun %.1fs", def.Stun.Duration)
	case def.Slow != nil:
		effects = fmt.Sprintf("slow x%.1f for %.1fs", def.Slow.Multiplier, def.Slow.Duration)
	}
	text.Draw(screen, fmt.Sprintf("State: %s  Effects: %s", tower.State, effects), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight

	if tower.Destructible() {
		text.Draw(screen, fmt.Sprintf("Health: %.0f / %.0f", tower.Health, def.MaxHealth), p.fontFace, x, y, config.TextLightColor)
	}
}
