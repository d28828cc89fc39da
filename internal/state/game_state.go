// internal/state/game_state.go
package state

import (
	"errors"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// slotPickRadius is how far from a slot centre a click still selects it, in level units.
const slotPickRadius = 1.2

var buildKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	fontFace      font.Face
	renderer      *render.WorldRenderer
	hud           *ui.HUD
	infoPanel     *ui.InfoPanel
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	selectedSlot  int
	lastDelta     float64
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face) *GameState {
	colors := &render.WorldColors{
		Background:  config.BackgroundColor,
		Ground:      config.GroundColor,
		Obstacle:    config.ObstacleColor,
		Spawn:       config.SpawnColor,
		Objective:   config.ObjectiveColor,
		Slot:        config.SlotColor,
		Enemy:       config.EnemyColor,
		Stunned:     config.StunnedColor,
		Slowed:      config.SlowedColor,
		TowerStroke: config.TowerStrokeColor,
		Text:        config.TextLightColor,
		Towers:      config.TowerColors,
	}
	proj := render.NewProjection(game.Library.Level.Bounds, config.WorldScale, config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewWorldRenderer(proj, colors, face, config.ScreenWidth, config.ScreenHeight)
	renderer.RenderMapImage(game.Library.Level)

	return &GameState{
		sm:            sm,
		game:          game,
		fontFace:      face,
		renderer:      renderer,
		hud:           ui.NewHUD(20, 30, face, game.EventDispatcher),
		infoPanel:     ui.NewInfoPanel(face, face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 40, face),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-60, 40, 14, config.ObjectiveColor, config.TowerStrokeColor),
		selectedSlot:  -1,
	}
}

func (g *GameState) Enter() {
	g.game.Start()
}

func (g *GameState) Update(deltaTime float64) {
	g.lastDelta = deltaTime
	g.hud.Update(deltaTime)
	g.infoPanel.Update(g.game)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.fontFace))
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	g.game.Update(deltaTime)
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.SkipCountdown()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.report(g.game.StartNextWave())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Restart()
		g.selectSlot(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.game.CycleSpeed()
		g.speedButton.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cycleSlot(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cycleSlot(-1)
	}

	if g.selectedSlot < 0 {
		return
	}
	for i, key := range buildKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.perform(ui.PanelAction{Kind: ui.ActionBuild, Option: i})
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.perform(ui.PanelAction{Kind: ui.ActionUpgrade, Option: 0})
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.perform(ui.PanelAction{Kind: ui.ActionUpgrade, Option: 1})
	case inpututil.IsKeyJustPressed(ebiten.KeyX), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.perform(ui.PanelAction{Kind: ui.ActionRemove})
	}
}

func (g *GameState) handleClick(x, y int) {
	if g.speedButton.IsClicked(x, y) {
		g.game.CycleSpeed()
		g.speedButton.Toggle()
		return
	}
	if g.infoPanel.Contains(x, y) {
		if action, ok := g.infoPanel.Click(x, y); ok {
			g.perform(action)
		}
		return
	}

	// Клик по карте: выбираем ближайший слот
	p := g.renderer.Projection().ToWorld(x, y)
	best, bestDist := -1, slotPickRadius
	for _, slot := range g.game.ECS.Slots {
		if d := slot.Position.Flat().Dist(p); d <= bestDist {
			best, bestDist = slot.ID, d
		}
	}
	g.selectSlot(best)
}

func (g *GameState) cycleSlot(step int) {
	n := len(g.game.ECS.Slots)
	if n == 0 {
		return
	}
	next := (g.selectedSlot + step + n) % n
	if g.selectedSlot < 0 {
		next = 0
	}
	g.selectSlot(next)
}

func (g *GameState) selectSlot(id int) {
	g.selectedSlot = id
	if id < 0 {
		g.infoPanel.Hide()
		return
	}
	g.infoPanel.SetSlot(id)
}

func (g *GameState) perform(action ui.PanelAction) {
	switch action.Kind {
	case ui.ActionBuild:
		options := g.game.Library.BuildableTowers()
		if action.Option >= len(options) {
			return
		}
		_, err := g.game.PlaceTower(g.selectedSlot, options[action.Option].ID)
		g.report(err)
	case ui.ActionUpgrade:
		if tower, ok := g.game.TowerAt(g.selectedSlot); ok {
			g.report(g.game.UpgradeTower(tower.ID, action.Option))
		}
	case ui.ActionRemove:
		if tower, ok := g.game.TowerAt(g.selectedSlot); ok {
			g.report(g.game.RemoveTower(tower.ID))
		}
	}
}

// report shows action errors in the HUD. Gold shortages are already announced.
func (g *GameState) report(err error) {
	if err == nil || errors.Is(err, app.ErrInsufficientGold) {
		return
	}
	g.game.EventDispatcher.Dispatch(event.Event{
		Type: event.StatusMessage,
		Data: event.MessageData{Text: err.Error(), Duration: config.StatusMessageDuration, Warning: true},
	})
}

func (g *GameState) Draw(screen *ebiten.Image) {
	status := g.game.Status()
	g.renderer.Draw(screen, g.game.ECS, g.game.MovementSystem.Objective(), g.selectedSlot, g.lastDelta)
	g.hud.Draw(screen, status, g.game.SpeedMultiplier)
	g.waveIndicator.Draw(screen, status.Wave, status.TotalWaves)
	g.speedButton.Draw(screen, g.game.SpeedMultiplier)
	g.infoPanel.Draw(screen, g.game)
}

func (g *GameState) Exit() {}
