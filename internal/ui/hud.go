// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const maxMessages = 4

type timedMessage struct {
	text      string
	remaining float64 // 0 keeps the message until the next restart
	sticky    bool
	warning   bool
}

// HUD shows the wave status line and transient messages. It listens on the
// game's dispatcher.
type HUD struct {
	X, Y     float32
	fontFace font.Face
	messages []timedMessage
}

func NewHUD(x, y float32, face font.Face, dispatcher *event.Dispatcher) *HUD {
	h := &HUD{X: x, Y: y, fontFace: face}
	dispatcher.Subscribe(event.StatusMessage, h)
	dispatcher.Subscribe(event.GameRestarted, h)
	return h
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatusMessage:
		if data, ok := e.Data.(event.MessageData); ok {
			h.push(data.Text, data.Duration, data.Warning)
		}
	case event.GameRestarted:
		h.messages = h.messages[:0]
	}
}

func (h *HUD) push(text string, duration float64, warning bool) {
	h.messages = append(h.messages, timedMessage{text: text, remaining: duration, sticky: duration <= 0, warning: warning})
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
}

// Update expires timed messages. It runs on real time, also while paused.
func (h *HUD) Update(deltaTime float64) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		if !m.sticky {
			m.remaining -= deltaTime
			if m.remaining <= 0 {
				continue
			}
		}
		kept = append(kept, m)
	}
	h.messages = kept
}

func (h *HUD) Draw(screen *ebiten.Image, status app.Status, speed float64) {
	x, y := int(h.X), int(h.Y)
	text.Draw(screen, statusLine(status), h.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Gold: %d   Towers: %d   Speed: x%.0f", status.Gold, status.Towers, speed), h.fontFace, x, y+18, config.TextLightColor)

	for i, m := range h.messages {
		var clr color.Color = config.TextLightColor
		if m.warning {
			clr = config.WarningColor
		}
		text.Draw(screen, m.text, h.fontFace, x, y+48+i*18, clr)
	}
}

func statusLine(s app.Status) string {
	switch s.Phase {
	case component.WaveCountdown:
		return fmt.Sprintf("Wave %d/%d in %.0fs  [Space] skip", s.Wave, s.TotalWaves, s.Countdown)
	case component.WaveReady:
		return fmt.Sprintf("Wave %d/%d ready  [N] start", s.Wave, s.TotalWaves)
	case component.WaveActive:
		return fmt.Sprintf("Wave %d/%d  enemies: %d  to spawn: %d", s.Wave, s.TotalWaves, s.LiveEnemies, s.ToSpawn)
	case component.WaveAllComplete:
		return "Victory"
	}
	return "Get ready"
}
