package game

import (
	"encoding/json"
	"fmt"
)

// Kind tags the variant an Entity represents.
type Kind int

const (
	KindVehicle Kind = iota
	KindPlatform
	KindPowerUp
	KindPlayer
	KindGoalSlot
	KindWater
)

func (k Kind) String() string {
	switch k {
	case KindVehicle:
		return "vehicle"
	case KindPlatform:
		return "platform"
	case KindPowerUp:
		return "power_up"
	case KindPlayer:
		return "player"
	case KindGoalSlot:
		return "goal_slot"
	case KindWater:
		return "water"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Kind as a string.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// VehicleType selects the size and look of a vehicle.
type VehicleType int

const (
	VehicleCar VehicleType = iota
	VehicleSemiTruck
	VehicleOilSemiTruck
)

func (v VehicleType) String() string {
	switch v {
	case VehicleCar:
		return "car"
	case VehicleSemiTruck:
		return "semi_truck"
	case VehicleOilSemiTruck:
		return "oil_semi_truck"
	default:
		return "unknown"
	}
}

// ParseVehicleType converts a vehicle type name to a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	switch s {
	case "car":
		return VehicleCar, nil
	case "semi_truck":
		return VehicleSemiTruck, nil
	case "oil_semi_truck":
		return VehicleOilSemiTruck, nil
	default:
		return 0, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidArgument, s)
	}
}

// PlatformType selects the size and look of a water platform.
type PlatformType int

const (
	PlatformRaft PlatformType = iota
	PlatformLog
)

func (p PlatformType) String() string {
	switch p {
	case PlatformRaft:
		return "raft"
	case PlatformLog:
		return "log"
	default:
		return "unknown"
	}
}

// ParsePlatformType converts a platform type name to a PlatformType.
func ParsePlatformType(s string) (PlatformType, error) {
	switch s {
	case "raft":
		return PlatformRaft, nil
	case "log":
		return PlatformLog, nil
	default:
		return 0, fmt.Errorf("%w: unknown platform type %q", ErrInvalidArgument, s)
	}
}

// PowerUpType selects the effect applied when a power-up is collected.
type PowerUpType int

const (
	PowerUpTimeBonus PowerUpType = iota
	PowerUpScoreBonus
)

func (p PowerUpType) String() string {
	switch p {
	case PowerUpTimeBonus:
		return "time_bonus"
	case PowerUpScoreBonus:
		return "score_bonus"
	default:
		return "unknown"
	}
}

// Entity sizes (width, height) by archetype name.
var entitySizes = map[string][2]float64{
	"car":            {75, 40},
	"semi_truck":     {150, 40},
	"oil_semi_truck": {150, 40},
	"raft":           {100, 40},
	"log":            {150, 40},
	"power_up":       {30, 30},
}

func sizeOf(name string) (float64, float64) {
	size, ok := entitySizes[name]
	if !ok {
		panic(fmt.Sprintf("game: no size for archetype %q", name))
	}
	return size[0], size[1]
}

// Entity is a positioned, sized rectangle with a speed and a facing. Kind
// selects which of the variant fields are meaningful.
type Entity struct {
	ID     int       `json:"id"`
	Kind   Kind      `json:"kind"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	SpeedX float64   `json:"-"`
	SpeedY float64   `json:"-"`
	Facing Direction `json:"facing"`

	Vehicle  VehicleType  `json:"-"`
	Platform PlatformType `json:"-"`
	PowerUp  PowerUpType  `json:"-"`
	Landable bool         `json:"-"`
}

// NewVehicle creates a vehicle of the given type heading in dir.
func NewVehicle(vt VehicleType, dir Direction, speed float64) (*Entity, error) {
	w, h := sizeOf(vt.String())
	e := &Entity{Kind: KindVehicle, Vehicle: vt, Width: w, Height: h, Facing: dir}
	if err := e.SetSpeed(speed, 0); err != nil {
		return nil, err
	}
	return e, nil
}

// NewPlatform creates a landable water platform of the given type.
func NewPlatform(pt PlatformType, dir Direction, speed float64) (*Entity, error) {
	w, h := sizeOf(pt.String())
	e := &Entity{Kind: KindPlatform, Platform: pt, Width: w, Height: h, Facing: dir, Landable: true}
	if err := e.SetSpeed(speed, 0); err != nil {
		return nil, err
	}
	return e, nil
}

// NewPowerUp creates a stationary power-up.
func NewPowerUp(pt PowerUpType) *Entity {
	w, h := sizeOf("power_up")
	return &Entity{Kind: KindPowerUp, PowerUp: pt, Width: w, Height: h, Facing: DirectionUp}
}

// SetSpeed sets the speed magnitudes. Direction supplies the sign.
func (e *Entity) SetSpeed(speedX, speedY float64) error {
	if speedX < 0 {
		return fmt.Errorf("%w: horizontal speed must not be negative, got %v", ErrInvalidArgument, speedX)
	}
	if speedY < 0 {
		return fmt.Errorf("%w: vertical speed must not be negative, got %v", ErrInvalidArgument, speedY)
	}
	e.SpeedX = speedX
	e.SpeedY = speedY
	return nil
}

// Step moves the entity one tick's worth of speed in dir.
func (e *Entity) Step(dir Direction) {
	dx, dy := dir.delta()
	e.X += dx * e.SpeedX
	e.Y += dy * e.SpeedY
}

// Advance moves the entity along its own facing.
func (e *Entity) Advance() {
	e.Step(e.Facing)
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// TypeName returns the archetype name used for sizing and rendering.
func (e *Entity) TypeName() string {
	switch e.Kind {
	case KindVehicle:
		return e.Vehicle.String()
	case KindPlatform:
		return e.Platform.String()
	case KindPowerUp:
		return e.PowerUp.String()
	default:
		return e.Kind.String()
	}
}
