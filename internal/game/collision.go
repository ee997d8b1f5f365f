package game

// Rect is an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Intersects reports whether two rectangles overlap. Rectangles that only
// share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Cushioned insets the rectangle from the left by half the cushion and
// narrows it by the same amount.
func (r Rect) Cushioned(cushion float64) Rect {
	half := cushion / 2
	return Rect{X: r.X + half, Y: r.Y, Width: r.Width - half, Height: r.Height}
}

// IsCollisionBetween reports whether the bounding boxes of a and b overlap.
func IsCollisionBetween(a, b *Entity) bool {
	return a.Rect().Intersects(b.Rect())
}

// IsCollisionBetweenWithCushion is the lenient variant used for goal-slot
// landing: the first entity's box is shrunk by the cushion before testing.
func IsCollisionBetweenWithCushion(a, b *Entity, cushion float64) bool {
	return a.Rect().Cushioned(cushion).Intersects(b.Rect())
}

// ClampX clamps an x coordinate so an entity of the given width stays inside
// [LeftEdgeOfRoad, roadWidth].
func ClampX(x, width, roadWidth float64) float64 {
	minX := LeftEdgeOfRoad
	maxX := roadWidth - width
	if x < minX {
		return minX
	}
	if x > maxX {
		return maxX
	}
	return x
}
