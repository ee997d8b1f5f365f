package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ugaemi/frogger-server/internal/desktop/control"
	"github.com/ugaemi/frogger-server/internal/game"
	"github.com/ugaemi/frogger-server/internal/highscore"
)

var moveKeys = []struct {
	key ebiten.Key
	dir game.Direction
}{
	{ebiten.KeyArrowUp, game.DirectionUp},
	{ebiten.KeyArrowDown, game.DirectionDown},
	{ebiten.KeyArrowLeft, game.DirectionLeft},
	{ebiten.KeyArrowRight, game.DirectionRight},
}

var sortKeys = []struct {
	key  ebiten.Key
	sort highscore.SortKey
}{
	{ebiten.Key1, highscore.ByScore},
	{ebiten.Key2, highscore.ByLevel},
	{ebiten.Key3, highscore.ByName},
}

func readInput() control.Input {
	var in control.Input
	for _, m := range moveKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			in.Moves = append(in.Moves, m.dir)
		}
	}
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Clear = inpututil.IsKeyJustPressed(ebiten.KeyC)
	for _, s := range sortKeys {
		if inpututil.IsKeyJustPressed(s.key) {
			sort := s.sort
			in.Sort = &sort
		}
	}
	return in
}
