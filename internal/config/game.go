package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ugaemi/frogger-server/internal/game"
)

//go:embed default.yaml
var defaultGame []byte

// Game is the validated tuning and level list of one game.
type Game struct {
	Settings game.Settings
	Levels   []game.Level
}

type gameDocument struct {
	Settings game.Settings   `yaml:"settings"`
	Levels   []levelDocument `yaml:"levels"`
}

type levelDocument struct {
	Lanes []laneDocument `yaml:"lanes"`
}

type laneDocument struct {
	Kind      string  `yaml:"kind"`
	Type      string  `yaml:"type"`
	Direction string  `yaml:"direction"`
	Speed     float64 `yaml:"speed"`
	Capacity  int     `yaml:"capacity"`
}

// DefaultGame returns the built-in game document.
func DefaultGame() (*Game, error) {
	return ParseGame(defaultGame)
}

// LoadGame reads a game document from path. An empty path selects the
// built-in document.
func LoadGame(path string) (*Game, error) {
	if path == "" {
		return DefaultGame()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game file: %w", err)
	}
	return ParseGame(data)
}

// ParseGame decodes a YAML game document. Settings missing from the document
// keep their defaults.
func ParseGame(data []byte) (*Game, error) {
	doc := gameDocument{Settings: game.DefaultSettings()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse game YAML: %w", err)
	}

	if err := doc.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	levels := make([]game.Level, 0, len(doc.Levels))
	for i, ld := range doc.Levels {
		lvl := game.Level{Lanes: make([]game.LaneSpec, 0, len(ld.Lanes))}
		for j, lane := range ld.Lanes {
			spec, err := lane.toSpec()
			if err != nil {
				return nil, fmt.Errorf("level %d lane %d: %w", i+1, j+1, err)
			}
			lvl.Lanes = append(lvl.Lanes, spec)
		}
		levels = append(levels, lvl)
	}

	if err := game.ValidateLevels(levels, doc.Settings); err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}

	return &Game{Settings: doc.Settings, Levels: levels}, nil
}

func (d laneDocument) toSpec() (game.LaneSpec, error) {
	kind, err := game.ParseLaneKind(d.Kind)
	if err != nil {
		return game.LaneSpec{}, err
	}
	dir, err := game.ParseDirection(d.Direction)
	if err != nil {
		return game.LaneSpec{}, err
	}

	spec := game.LaneSpec{Kind: kind, Direction: dir, Speed: d.Speed, Capacity: d.Capacity}
	switch kind {
	case game.LaneVehicle:
		spec.Vehicle, err = game.ParseVehicleType(d.Type)
	case game.LaneWater:
		spec.Platform, err = game.ParsePlatformType(d.Type)
	}
	if err != nil {
		return game.LaneSpec{}, err
	}
	return spec, spec.Validate()
}
