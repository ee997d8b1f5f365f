package game

import "fmt"

// LaneKind says which archetype population a lane carries.
type LaneKind int

const (
	LaneVehicle LaneKind = iota
	LaneWater
)

func (k LaneKind) String() string {
	switch k {
	case LaneVehicle:
		return "vehicle"
	case LaneWater:
		return "water"
	default:
		return "unknown"
	}
}

// ParseLaneKind converts a lane kind name to a LaneKind.
func ParseLaneKind(s string) (LaneKind, error) {
	switch s {
	case "vehicle":
		return LaneVehicle, nil
	case "water":
		return LaneWater, nil
	default:
		return 0, fmt.Errorf("%w: unknown lane kind %q", ErrInvalidArgument, s)
	}
}

// LaneSpec describes one lane of a level definition.
type LaneSpec struct {
	Kind      LaneKind
	Vehicle   VehicleType
	Platform  PlatformType
	Direction Direction
	Speed     float64
	Capacity  int
}

// IsWater reports whether the lane carries water platforms.
func (s LaneSpec) IsWater() bool {
	return s.Kind == LaneWater
}

// Validate rejects lane definitions the road cannot run.
func (s LaneSpec) Validate() error {
	if !s.Direction.IsHorizontal() {
		return fmt.Errorf("%w: lane direction must be left or right, got %s", ErrInvalidArgument, s.Direction)
	}
	if s.Speed < 0 {
		return fmt.Errorf("%w: lane speed must not be negative, got %v", ErrInvalidArgument, s.Speed)
	}
	if s.Capacity < 1 {
		return fmt.Errorf("%w: lane capacity must be at least 1, got %d", ErrInvalidArgument, s.Capacity)
	}
	switch s.Kind {
	case LaneVehicle:
		if s.Vehicle.String() == "unknown" {
			return fmt.Errorf("%w: unknown vehicle type %d", ErrInvalidArgument, int(s.Vehicle))
		}
	case LaneWater:
		if s.Platform.String() == "unknown" {
			return fmt.Errorf("%w: unknown platform type %d", ErrInvalidArgument, int(s.Platform))
		}
	default:
		return fmt.Errorf("%w: unknown lane kind %d", ErrInvalidArgument, int(s.Kind))
	}
	return nil
}

// Level is an ordered list of lanes, top lane first.
type Level struct {
	Lanes []LaneSpec
}

// ValidateLevels checks every level against the playfield described by s.
func ValidateLevels(levels []Level, s Settings) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalidArgument)
	}
	for i, lvl := range levels {
		if len(lvl.Lanes) == 0 {
			return fmt.Errorf("%w: level %d has no lanes", ErrInvalidArgument, i+1)
		}
		if len(lvl.Lanes) > s.MaxLanes() {
			return fmt.Errorf("%w: level %d has %d lanes, playfield fits %d", ErrInvalidArgument, i+1, len(lvl.Lanes), s.MaxLanes())
		}
		for j, lane := range lvl.Lanes {
			if err := lane.Validate(); err != nil {
				return fmt.Errorf("level %d lane %d: %w", i+1, j+1, err)
			}
		}
	}
	return nil
}

func vehicleLane(vt VehicleType, dir Direction, speed float64, capacity int) LaneSpec {
	return LaneSpec{Kind: LaneVehicle, Vehicle: vt, Direction: dir, Speed: speed, Capacity: capacity}
}

func waterLane(pt PlatformType, dir Direction, speed float64, capacity int) LaneSpec {
	return LaneSpec{Kind: LaneWater, Platform: pt, Direction: dir, Speed: speed, Capacity: capacity}
}

// DefaultLevels returns the three built-in levels.
func DefaultLevels() []Level {
	return []Level{
		{Lanes: []LaneSpec{
			vehicleLane(VehicleCar, DirectionLeft, 3.0, 3),
			vehicleLane(VehicleSemiTruck, DirectionRight, 3.5, 2),
			vehicleLane(VehicleCar, DirectionLeft, 4.0, 4),
			vehicleLane(VehicleOilSemiTruck, DirectionLeft, 4.5, 3),
			waterLane(PlatformRaft, DirectionRight, 5.0, 5),
		}},
		{Lanes: []LaneSpec{
			vehicleLane(VehicleCar, DirectionLeft, 3.0, 3),
			vehicleLane(VehicleSemiTruck, DirectionRight, 3.5, 2),
			waterLane(PlatformLog, DirectionLeft, 4.0, 2),
			vehicleLane(VehicleOilSemiTruck, DirectionLeft, 5.0, 3),
			vehicleLane(VehicleCar, DirectionRight, 2.0, 5),
		}},
		{Lanes: []LaneSpec{
			vehicleLane(VehicleCar, DirectionLeft, 4.0, 4),
			vehicleLane(VehicleSemiTruck, DirectionRight, 4.5, 3),
			vehicleLane(VehicleCar, DirectionLeft, 5.0, 5),
			waterLane(PlatformLog, DirectionLeft, 4.5, 2),
			waterLane(PlatformRaft, DirectionRight, 5.0, 5),
		}},
	}
}
