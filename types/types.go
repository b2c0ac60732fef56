// Package types contains shared data structures for tictacpen.
package types

import "fmt"

// Point is a position on the paper in device units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Stroke is the ordered list of vertices recorded between pen down and pen up.
type Stroke []Point

// Endpoints returns the first and last recorded vertex.
// ok is false when the stroke has fewer than two vertices.
func (s Stroke) Endpoints() (first, last Point, ok bool) {
	if len(s) < 2 {
		return Point{}, Point{}, false
	}
	return s[0], s[len(s)-1], true
}

// Bounds returns the smallest rectangle containing every vertex.
func (s Stroke) Bounds() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	minX, minY := s[0].X, s[0].Y
	maxX, maxY := minX, minY
	for _, p := range s[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Rect is an axis-aligned rectangle in device units.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the midpoint of the rectangle, rounded toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.Width, r.Y+r.Height
	if o.X < minX {
		minX = o.X
	}
	if o.Y < minY {
		minY = o.Y
	}
	if o.X+o.Width > maxX {
		maxX = o.X + o.Width
	}
	if o.Y+o.Height > maxY {
		maxY = o.Y + o.Height
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
