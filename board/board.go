// Package board turns four hand-drawn strokes into a 3x3 tic-tac-toe grid.
//
// Lines must be drawn in a fixed order: the left vertical, the right vertical,
// the top horizontal and the bottom horizontal. Each accepted line is
// normalised so that its constant axis is exact, and once all four are in
// place Calculate derives nine cell rectangles numbered 1-9 from left to right
// and top to bottom.
package board

import (
	"fmt"
	"io"
	"log"
	"math"

	"tictacpen/geom"
	"tictacpen/types"
)

// NoCell is returned by TurnField for points outside the board.
const NoCell = -1

// borderSpan is how far the outer cells reach past the inner lines, in cells.
// The outer cells never stop short of the drawn lines.
const borderSpan = 1.5

// Slot names one of the four board lines.
type Slot int

const (
	FirstVertical Slot = iota
	SecondVertical
	FirstHorizontal
	SecondHorizontal
)

func (s Slot) String() string {
	switch s {
	case FirstVertical:
		return "first vertical line"
	case SecondVertical:
		return "second vertical line"
	case FirstHorizontal:
		return "first horizontal line"
	case SecondHorizontal:
		return "second horizontal line"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Vertical reports whether the slot holds a vertical line.
func (s Slot) Vertical() bool {
	return s == FirstVertical || s == SecondVertical
}

// Options holds the tolerances used to accept a line.
type Options struct {
	AnglePrecision float64 // degrees
	MinLineLength  float64 // millimetres
	UnitsPerMM     float64 // device units per millimetre
}

// DefaultOptions returns the stock tolerances: 10 degrees and 10 mm.
func DefaultOptions() Options {
	return Options{
		AnglePrecision: 10,
		MinLineLength:  10,
		UnitsPerMM:     10,
	}
}

// Line is a two-point board line in device units.
type Line struct {
	A types.Point
	B types.Point
}

// Cell is an axis-aligned cell rectangle.
type Cell struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p is inside the cell, edges included.
func (c Cell) Contains(p types.Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= c.X && x <= c.X+c.Width && y >= c.Y && y <= c.Y+c.Height
}

// Geometry accumulates the board lines of one game and maps points to cells.
type Geometry struct {
	opts       Options
	lines      [4]*Line
	cells      [10]Cell
	calculated bool
	log        *log.Logger
}

// New creates an empty geometry. A nil logger discards output.
func New(opts Options, logger *log.Logger) *Geometry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Geometry{opts: opts, log: logger}
}

// SetFirstVerticalLine accepts the left vertical line.
func (g *Geometry) SetFirstVerticalLine(pts []types.Point) error {
	return g.set(FirstVertical, pts)
}

// SetSecondVerticalLine accepts the right vertical line. Measured against the
// first line's length L, it must start between L/4 and L/2 to the right of
// it, its top must be within L/4 of the first line's top, and its own length
// must be between 2L/3 and 5L/4.
func (g *Geometry) SetSecondVerticalLine(pts []types.Point) error {
	return g.set(SecondVertical, pts)
}

// SetFirstHorizontalLine accepts the top horizontal line. It must cross both
// vertical lines.
func (g *Geometry) SetFirstHorizontalLine(pts []types.Point) error {
	return g.set(FirstHorizontal, pts)
}

// SetSecondHorizontalLine accepts the bottom horizontal line. It must cross
// both vertical lines below the first horizontal one.
func (g *Geometry) SetSecondHorizontalLine(pts []types.Point) error {
	return g.set(SecondHorizontal, pts)
}

// Set dispatches to the setter of slot.
func (g *Geometry) Set(slot Slot, pts []types.Point) error {
	return g.set(slot, pts)
}

func (g *Geometry) set(slot Slot, pts []types.Point) error {
	line, err := g.validate(slot, pts)
	if err != nil {
		g.log.Printf("[board] %s rejected: %v", slot, err)
		return err
	}
	g.lines[slot] = &line
	g.log.Printf("[board] %s accepted: %v-%v", slot, line.A, line.B)
	return nil
}

// validate checks pts for slot and returns the normalised line. It never
// mutates g.
func (g *Geometry) validate(slot Slot, pts []types.Point) (Line, error) {
	if len(pts) != 2 {
		return Line{}, reject(slot, ReasonMalformedLine)
	}
	line := Line{A: pts[0], B: pts[1]}

	if slot.Vertical() {
		if !geom.IsVertical(line.A, line.B, g.opts.AnglePrecision) {
			return Line{}, reject(slot, ReasonNotVertical)
		}
		line.B.X = line.A.X
	} else {
		if !geom.IsHorizontal(line.A, line.B, g.opts.AnglePrecision) {
			return Line{}, reject(slot, ReasonNotHorizontal)
		}
		line.B.Y = line.A.Y
	}

	length := geom.Length(line.A, line.B) / g.opts.UnitsPerMM
	if length < g.opts.MinLineLength {
		return Line{}, reject(slot, ReasonTooShort)
	}

	if g.lines[slot] != nil {
		return Line{}, reject(slot, ReasonInvalidDrawingOrder)
	}
	for s := FirstVertical; s < slot; s++ {
		if g.lines[s] == nil {
			return Line{}, reject(slot, ReasonInvalidDrawingOrder)
		}
	}

	switch slot {
	case SecondVertical:
		if err := g.nearFirstVertical(line); err != nil {
			return Line{}, err
		}
	case FirstHorizontal, SecondHorizontal:
		if !g.crossesVerticals(line) {
			return Line{}, reject(slot, ReasonMustCrossBothVerticalLines)
		}
		if slot == SecondHorizontal && line.A.Y <= g.lines[FirstHorizontal].A.Y {
			return Line{}, reject(slot, ReasonMustBeAtBottom)
		}
	}
	return line, nil
}

func (g *Geometry) nearFirstVertical(line Line) error {
	first := g.lines[FirstVertical]
	if line.A.X <= first.A.X {
		return reject(SecondVertical, ReasonMustBeRight)
	}

	firstTop, firstBottom := minMax(first.A.Y, first.B.Y)
	firstLen := float64(firstBottom - firstTop)

	gap := float64(line.A.X - first.A.X)
	if gap < firstLen/4 || gap > firstLen/2 {
		return reject(SecondVertical, ReasonMustBeNearOtherLines)
	}

	top, bottom := minMax(line.A.Y, line.B.Y)
	if math.Abs(float64(top-firstTop)) > firstLen/4 {
		return reject(SecondVertical, ReasonMustBeNearOtherLines)
	}

	length := float64(bottom - top)
	if length < firstLen*2/3 {
		return reject(SecondVertical, ReasonTooShort)
	}
	if length > firstLen*5/4 {
		return reject(SecondVertical, ReasonTooLong)
	}
	if !overlapY(*first, line) {
		return reject(SecondVertical, ReasonMustBeNearOtherLines)
	}
	return nil
}

// overlapY reports whether some horizontal line could cross both a and b.
func overlapY(a, b Line) bool {
	aMin, aMax := minMax(a.A.Y, a.B.Y)
	bMin, bMax := minMax(b.A.Y, b.B.Y)
	return !(bMax < aMin || bMin > aMax)
}

func (g *Geometry) crossesVerticals(line Line) bool {
	for _, v := range []*Line{g.lines[FirstVertical], g.lines[SecondVertical]} {
		if _, ok := geom.SegmentIntersection(v.A, v.B, line.A, line.B); !ok {
			return false
		}
	}
	return true
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// Calculate derives the nine cells from the four accepted lines. Border cells
// extend one and a half cells past the inner lines, and at least to the ends
// of the drawn lines, so every point inside the drawing lands in a cell.
func (g *Geometry) Calculate() error {
	for s := FirstVertical; s <= SecondHorizontal; s++ {
		if g.lines[s] == nil {
			return fmt.Errorf("%w: %s missing", ErrBoardImpossible, s)
		}
	}
	v1, v2 := g.lines[FirstVertical], g.lines[SecondVertical]
	h1, h2 := g.lines[FirstHorizontal], g.lines[SecondHorizontal]

	var corners [4]geom.Vec
	pairs := [4][2]*Line{{v1, h1}, {v2, h1}, {v1, h2}, {v2, h2}}
	for i, p := range pairs {
		c, ok := geom.Intersection(p[0].A, p[0].B, p[1].A, p[1].B)
		if !ok {
			return ErrBoardImpossible
		}
		corners[i] = c
	}
	topLeft, topRight, bottomLeft, bottomRight := corners[0], corners[1], corners[2], corners[3]

	w := ((topRight.X - topLeft.X) + (bottomRight.X - bottomLeft.X)) / 2
	h := ((bottomLeft.Y - topLeft.Y) + (bottomRight.Y - topRight.Y)) / 2
	if w <= 0 || h <= 0 {
		return ErrBoardImpossible
	}
	x1 := (topLeft.X + bottomLeft.X) / 2
	x2 := (topRight.X + bottomRight.X) / 2
	y1 := (topLeft.Y + topRight.Y) / 2
	y2 := (bottomLeft.Y + bottomRight.Y) / 2

	minX, minY, maxX, maxY := g.extent()
	cols := [4]float64{math.Min(x1-borderSpan*w, minX), x1, x2, math.Max(x2+borderSpan*w, maxX)}
	rows := [4]float64{math.Min(y1-borderSpan*h, minY), y1, y2, math.Max(y2+borderSpan*h, maxY)}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.cells[r*3+c+1] = Cell{
				X:      cols[c],
				Y:      rows[r],
				Width:  cols[c+1] - cols[c],
				Height: rows[r+1] - rows[r],
			}
		}
	}
	g.calculated = true
	g.log.Printf("[board] board calculated: cell %.1fx%.1f at (%.1f,%.1f)", w, h, x1, y1)
	return nil
}

// extent returns the bounding box of the four lines.
func (g *Geometry) extent() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, l := range g.lines {
		for _, p := range []types.Point{l.A, l.B} {
			minX, maxX = math.Min(minX, float64(p.X)), math.Max(maxX, float64(p.X))
			minY, maxY = math.Min(minY, float64(p.Y)), math.Max(maxY, float64(p.Y))
		}
	}
	return minX, minY, maxX, maxY
}

// TurnField returns the cell (1-9) containing p, or NoCell.
func (g *Geometry) TurnField(p types.Point) int {
	if !g.calculated {
		return NoCell
	}
	for i := 1; i <= 9; i++ {
		if g.cells[i].Contains(p) {
			return i
		}
	}
	return NoCell
}

// Cells returns the cell map; index 0 is unused.
func (g *Geometry) Cells() [10]Cell {
	return g.cells
}

// Line returns the accepted line of slot.
func (g *Geometry) Line(slot Slot) (Line, bool) {
	if slot < FirstVertical || slot > SecondHorizontal || g.lines[slot] == nil {
		return Line{}, false
	}
	return *g.lines[slot], true
}

// Calculated reports whether the cell map is available.
func (g *Geometry) Calculated() bool {
	return g.calculated
}

// Reset forgets all lines and cells.
func (g *Geometry) Reset() {
	g.lines = [4]*Line{}
	g.cells = [10]Cell{}
	g.calculated = false
	g.log.Printf("[board] reset")
}
