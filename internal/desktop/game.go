// Package desktop is the ebiten frontend for a local single-player game.
package desktop

import (
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ugaemi/frogger-server/internal/desktop/control"
)

// HUDHeight is the strip below the playfield that holds the status line.
const HUDHeight = 30

// Game adapts a control.Controller to ebiten.Game.
type Game struct {
	ctl  *control.Controller
	face text.Face
}

// New wraps a controller for ebiten.
func New(ctl *control.Controller) *Game {
	return &Game{
		ctl:  ctl,
		face: text.NewGoXFace(bitmapfont.Face),
	}
}

// Update advances one frame.
func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	return g.ctl.Step(dt, readInput())
}

// Layout returns the playfield plus the HUD strip.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenSize(g.ctl)
}

// ScreenSize returns the logical screen size for a controller's settings.
func ScreenSize(ctl *control.Controller) (int, int) {
	s := ctl.Settings()
	return int(s.RoadWidth), int(s.RoadHeight) + HUDHeight
}
