package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ugaemi/frogger-server/internal/game"
)

var (
	colorGrass   = color.RGBA{34, 110, 48, 255}
	colorRoad    = color.RGBA{40, 40, 48, 255}
	colorWater   = color.RGBA{28, 72, 160, 255}
	colorSlot    = color.RGBA{14, 50, 20, 255}
	colorHUD     = color.RGBA{10, 10, 14, 255}
	colorText    = color.RGBA{235, 235, 235, 255}
	colorDim     = color.RGBA{150, 150, 150, 255}
	colorOverlay = color.RGBA{0, 0, 0, 200}
)

var entityColors = map[string]color.RGBA{
	"car":            {220, 60, 60, 255},
	"semi_truck":     {230, 170, 40, 255},
	"oil_semi_truck": {120, 120, 130, 255},
	"raft":           {170, 120, 70, 255},
	"log":            {110, 70, 35, 255},
	"time_bonus":     {80, 220, 240, 255},
	"score_bonus":    {250, 220, 60, 255},
}

var spriteColors = map[game.SpriteRef]color.RGBA{
	game.SpriteFrog:           {90, 230, 90, 255},
	game.SpriteJumpingLegs:    {140, 250, 120, 255},
	game.SpriteStationaryLegs: {110, 240, 100, 255},
	game.SpriteDeath1:         {230, 200, 90, 255},
	game.SpriteDeath2:         {220, 150, 80, 255},
	game.SpriteDeath3:         {200, 100, 70, 255},
	game.SpriteCrossbones:     {240, 240, 240, 255},
	game.SpriteLanded:         {60, 200, 60, 255},
}

// Draw renders the playfield, the HUD and, after a game, the board.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctl.Settings()
	snap := g.ctl.Snapshot()

	screen.Fill(colorGrass)
	fillRect(screen, game.Rect{X: 0, Y: s.TopEdgeOfLanes, Width: s.RoadWidth, Height: s.BottomRowY() - s.TopEdgeOfLanes}, colorRoad)
	for _, w := range snap.Water {
		fillRect(screen, w, colorWater)
	}
	for _, f := range snap.Fillers {
		fillRect(screen, f, colorGrass)
	}
	for _, slot := range snap.Slots {
		fillRect(screen, slot.Rect(), colorSlot)
		if slot.Occupied {
			fillRect(screen, inset(slot.Rect(), 8), spriteColors[game.SpriteLanded])
		}
	}
	for _, lane := range snap.Lanes {
		for _, e := range lane.Entities {
			fillRect(screen, viewRect(e), entityColors[e.Type])
		}
	}
	for _, p := range snap.PowerUps {
		fillRect(screen, viewRect(p), entityColors[p.Type])
	}
	g.drawPlayer(screen, snap.Player)
	g.drawHUD(screen, s, snap)

	if g.ctl.GameOver() {
		g.drawBoard(screen, s, snap)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p game.PlayerView) {
	r := inset(game.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}, 5)
	fillRect(screen, r, spriteColors[p.Sprite])

	// A darker band on the leading edge shows the facing.
	band := r
	switch p.Facing {
	case game.DirectionUp:
		band.Height = 6
	case game.DirectionDown:
		band.Y, band.Height = r.Y+r.Height-6, 6
	case game.DirectionLeft:
		band.Width = 6
	case game.DirectionRight:
		band.X, band.Width = r.X+r.Width-6, 6
	}
	fillRect(screen, band, color.RGBA{20, 90, 20, 255})
}

func (g *Game) drawHUD(screen *ebiten.Image, s game.Settings, snap game.Snapshot) {
	fillRect(screen, game.Rect{X: 0, Y: s.RoadHeight, Width: s.RoadWidth, Height: HUDHeight}, colorHUD)
	line := fmt.Sprintf("LIVES %d   SCORE %d   LEVEL %d/%d   TIME %4.1f",
		snap.Lives, snap.Score, min(snap.Level, g.ctl.TotalLevels()), g.ctl.TotalLevels(), snap.TimeRemaining)
	g.drawText(screen, line, 10, s.RoadHeight+8, colorText)
}

func (g *Game) drawBoard(screen *ebiten.Image, s game.Settings, snap game.Snapshot) {
	fillRect(screen, game.Rect{X: 0, Y: 0, Width: s.RoadWidth, Height: s.RoadHeight}, colorOverlay)

	y := 30.0
	g.drawText(screen, fmt.Sprintf("GAME OVER   SCORE %d", snap.Score), 40, y, colorText)
	y += 30
	g.drawText(screen, "HIGH SCORES BY "+g.ctl.SortKey().String(), 40, y, colorDim)
	y += 24
	for i, line := range g.ctl.BoardLines() {
		g.drawText(screen, fmt.Sprintf("%2d. %s", i+1, line), 40, y, colorText)
		y += 20
	}
	if status := g.ctl.Status(); status != "" {
		g.drawText(screen, status, 40, s.RoadHeight-60, entityColors["car"])
	}
	g.drawText(screen, "R: restart   C: clear   1: score   2: level   3: name", 40, s.RoadHeight-36, colorDim)
}

func (g *Game) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, g.face, op)
}

func viewRect(e game.EntityView) game.Rect {
	return game.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

func inset(r game.Rect, d float64) game.Rect {
	return game.Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

func fillRect(screen *ebiten.Image, r game.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
