// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/records"
	"go-wave-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "YAML file with enemies, towers, waves and the level (default: built in)")
	settingsPath := flag.String("settings", "", "YAML file overriding simulation settings")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	skipMenu := flag.Bool("play", false, "start straight in the game instead of the wave menu")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib, err := loadLibrary(*defsPath)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	settings := config.Default()
	if *settingsPath != "" {
		if settings, err = config.LoadSettings(*settingsPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	game, err := app.NewGame(lib, settings)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Без хранилища рекорды живут только в памяти
	store, err := gdata.Open(gdata.Config{AppName: "wave_defense"})
	if err != nil {
		log.Printf("Records storage unavailable: %v", err)
		store = nil
	}
	tracker := records.NewTracker(store, lib.Level.Name, game.EventDispatcher, log.Default())

	face := basicfont.Face7x13
	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, game, face))
	} else {
		sm.SetState(state.NewMenuState(sm, game, face, tracker))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadLibrary(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.Load(path)
}
