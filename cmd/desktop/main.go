package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ugaemi/frogger-server/internal/audio"
	"github.com/ugaemi/frogger-server/internal/config"
	"github.com/ugaemi/frogger-server/internal/desktop"
	"github.com/ugaemi/frogger-server/internal/desktop/control"
	"github.com/ugaemi/frogger-server/internal/store"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg, os.Stderr)

	g, err := config.LoadGame(cfg.LevelsFile)
	if err != nil {
		slog.Error("failed to load game definition", "file", cfg.LevelsFile, "error", err)
		os.Exit(1)
	}

	scores := store.OpenLocal(cfg.DataAppName)
	defer scores.Close()

	sounds := audio.Open(cfg.AudioEnabled)
	defer sounds.Close()

	ctl, err := control.New(control.Options{
		Settings:   g.Settings,
		Levels:     g.Levels,
		Scores:     scores,
		Sounds:     sounds,
		PlayerName: cfg.PlayerName,
		Seed:       time.Now().UnixNano(),
	})
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	w, h := desktop.ScreenSize(ctl)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Frogger")
	if err := ebiten.RunGame(desktop.New(ctl)); err != nil {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
