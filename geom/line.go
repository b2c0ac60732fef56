// Package geom provides the line primitives used to validate hand-drawn board lines.
package geom

import (
	"math"

	"tictacpen/types"
)

// epsilon absorbs float error when testing whether a point lies on a segment.
const epsilon = 1e-9

// Vec is a point with floating-point coordinates.
type Vec struct {
	X float64
	Y float64
}

// Point rounds v to the nearest device point.
func (v Vec) Point() types.Point {
	return types.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// IsVertical reports whether the line a-b deviates from vertical by less than
// precision degrees.
func IsVertical(a, b types.Point, precision float64) bool {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx == 0 {
		return true
	}
	if dy == 0 {
		return false
	}
	return withinAngle(dx/dy, precision)
}

// IsHorizontal reports whether the line a-b deviates from horizontal by less
// than precision degrees.
func IsHorizontal(a, b types.Point, precision float64) bool {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx == 0 {
		return false
	}
	if dy == 0 {
		return true
	}
	return withinAngle(dy/dx, precision)
}

func withinAngle(tan, precision float64) bool {
	angle := math.Atan(tan)
	limit := math.Pi / 180 * precision
	return math.Abs(angle) < math.Abs(limit)
}

// Length returns the Euclidean length of the line a-b in device units.
func Length(a, b types.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Intersection returns the point where the infinite lines through a1-a2 and
// b1-b2 meet. ok is false when the determinant is zero (parallel or coincident).
func Intersection(a1, a2, b1, b2 types.Point) (Vec, bool) {
	x1, y1 := float64(a1.X), float64(a1.Y)
	x2, y2 := float64(a2.X), float64(a2.Y)
	x3, y3 := float64(b1.X), float64(b1.Y)
	x4, y4 := float64(b2.X), float64(b2.Y)

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if d == 0 {
		return Vec{}, false
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4
	return Vec{
		X: ((x3-x4)*c1 - (x1-x2)*c2) / d,
		Y: ((y3-y4)*c1 - (y1-y2)*c2) / d,
	}, true
}

// SegmentIntersection is Intersection restricted to points lying on both
// segments, endpoints included.
func SegmentIntersection(a1, a2, b1, b2 types.Point) (Vec, bool) {
	v, ok := Intersection(a1, a2, b1, b2)
	if !ok {
		return Vec{}, false
	}
	if !onSegment(v, a1, a2) || !onSegment(v, b1, b2) {
		return Vec{}, false
	}
	return v, true
}

func onSegment(v Vec, a, b types.Point) bool {
	minX, maxX := math.Min(float64(a.X), float64(b.X)), math.Max(float64(a.X), float64(b.X))
	minY, maxY := math.Min(float64(a.Y), float64(b.Y)), math.Max(float64(a.Y), float64(b.Y))
	return v.X >= minX-epsilon && v.X <= maxX+epsilon &&
		v.Y >= minY-epsilon && v.Y <= maxY+epsilon
}
