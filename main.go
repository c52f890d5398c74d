package main

import (
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/logger"
	"github.com/automoto/skyball/scenes"
	"github.com/automoto/skyball/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding flight tuning")
	profile := flag.String("profile", "", "input profile: classic or modern (overrides saved setting)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	noDebug := flag.Bool("no-debug", false, "start with the debug overlay hidden")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat, Output: os.Stderr})
	lg := logger.L()

	if *tuningPath != "" {
		t, err := flight.LoadTuning(*tuningPath)
		if err != nil {
			fatal(lg, "load tuning", err)
		}
		config.Flight = t
		lg.Info("flight tuning loaded", "path", *tuningPath)
	}
	if *noDebug {
		config.Debug.Overlay = false
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("skyball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		lg.Warn("settings will not be saved", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		lg.Warn("ignoring saved settings", "err", err)
		saved = nil
	}
	if *profile != "" {
		if !config.Input.ValidProfile(config.InputProfile(*profile)) {
			lg.Error("unknown input profile", "profile", *profile)
			os.Exit(1)
		}
		if saved == nil {
			saved = &systems.SavedSettings{SFXVolume: config.Audio.DefaultSFXVol}
		}
		saved.Profile = *profile
	}

	g := &Game{}
	arena, err := scenes.NewArenaScene(g, config.Flight, saved)
	if err != nil {
		fatal(lg, "build arena", err)
	}
	g.scene = arena

	err = ebiten.RunGame(g)
	arena.Close()
	if err != nil {
		fatal(lg, "run game", err)
	}
}

func fatal(lg *slog.Logger, msg string, err error) {
	lg.Error(msg, "err", err)
	os.Exit(1)
}
