// Package geom holds the minimap coordinate primitives shared by every
// other package. It has no dependencies of its own so that both the core
// state machine and the host-facing packages can import it without risk
// of a cycle.
package geom

import "math"

// Point is an integer minimap coordinate.
type Point struct {
	X int32
	Y int32
}

// DistanceX returns the absolute horizontal distance between p and other.
func (p Point) DistanceX(other Point) int32 {
	return abs32(p.X - other.X)
}

// DistanceY returns the absolute vertical distance between p and other.
func (p Point) DistanceY(other Point) int32 {
	return abs32(p.Y - other.Y)
}

// Distance returns the euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Hypot(dx, dy)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Rect is an axis-aligned bounding box expressed in minimap coordinates.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether p lies within r, inclusive of the bounds.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
