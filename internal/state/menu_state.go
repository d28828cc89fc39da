// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/records"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState lists the waves ahead and waits for Space.
type MenuState struct {
	sm       *StateMachine
	game     *app.Game
	fontFace font.Face
	tracker  *records.Tracker // may be nil
}

func NewMenuState(sm *StateMachine, game *app.Game, face font.Face, tracker *records.Tracker) *MenuState {
	return &MenuState{sm: sm, game: game, fontFace: face, tracker: tracker}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := 80, 100
	text.Draw(screen, "Wave Defense  [Space] start", m.fontFace, x, y, config.TextLightColor)
	y += 40
	for i, w := range m.game.Library.Waves {
		text.Draw(screen, fmt.Sprintf("%d. %s", i+1, w.Summary()), m.fontFace, x, y, config.TextLightColor)
		y += 20
	}
	if m.tracker != nil {
		r := m.tracker.Record()
		y += 20
		text.Draw(screen, fmt.Sprintf("Runs: %d  Best wave: %d  Victories: %d  Defeats: %d", r.Runs, r.BestWave, r.Victories, r.Defeats),
			m.fontFace, x, y, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
