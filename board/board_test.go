package board

import (
	"errors"
	"testing"

	"tictacpen/types"
)

func pts(x1, y1, x2, y2 int) []types.Point {
	return []types.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}
}

// drawBoard accepts a square board with 100mm cells between x,y 1000 and 2000.
func drawBoard(t *testing.T) *Geometry {
	t.Helper()
	g := New(DefaultOptions(), nil)
	steps := []struct {
		slot Slot
		line []types.Point
	}{
		{FirstVertical, pts(1000, 500, 1000, 2500)},
		{SecondVertical, pts(2000, 500, 2010, 2500)},
		{FirstHorizontal, pts(500, 1000, 2500, 1000)},
		{SecondHorizontal, pts(500, 2000, 2500, 2020)},
	}
	for _, s := range steps {
		if err := g.Set(s.slot, s.line); err != nil {
			t.Fatalf("Set(%s): %v", s.slot, err)
		}
	}
	return g
}

func wantReason(t *testing.T, err error, slot Slot, reason Reason) {
	t.Helper()
	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LineError, got %v", err)
	}
	if le.Slot != slot || le.Reason != reason {
		t.Errorf("got %s/%s, want %s/%s", le.Slot, le.Reason, slot, reason)
	}
}

func TestNormalisation(t *testing.T) {
	g := drawBoard(t)
	v2, _ := g.Line(SecondVertical)
	if v2.A.X != v2.B.X {
		t.Errorf("vertical line not normalised: %v-%v", v2.A, v2.B)
	}
	h2, _ := g.Line(SecondHorizontal)
	if h2.A.Y != h2.B.Y {
		t.Errorf("horizontal line not normalised: %v-%v", h2.A, h2.B)
	}
}

func TestFirstVerticalRejections(t *testing.T) {
	tests := []struct {
		name   string
		line   []types.Point
		reason Reason
	}{
		{"one point", []types.Point{{X: 1, Y: 1}}, ReasonMalformedLine},
		{"three points", []types.Point{{}, {X: 1}, {X: 2}}, ReasonMalformedLine},
		{"horizontal", pts(0, 1000, 2000, 1000), ReasonNotVertical},
		{"short", pts(1000, 1000, 1000, 1050), ReasonTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(DefaultOptions(), nil)
			wantReason(t, g.SetFirstVerticalLine(tt.line), FirstVertical, tt.reason)
			if _, ok := g.Line(FirstVertical); ok {
				t.Error("rejected line must not be stored")
			}
		})
	}
}

func TestSecondVerticalRejections(t *testing.T) {
	tests := []struct {
		name   string
		line   []types.Point
		reason Reason
	}{
		{"left of first", pts(900, 500, 900, 2500), ReasonMustBeRight},
		{"same x", pts(1000, 500, 1000, 2500), ReasonMustBeRight},
		{"above first", pts(2000, -200, 2000, 1800), ReasonMustBeNearOtherLines},
		{"below first", pts(2000, 2600, 2000, 2900), ReasonMustBeNearOtherLines},
		{"too close", pts(1400, 500, 1400, 2500), ReasonMustBeNearOtherLines},
		{"too far", pts(2100, 500, 2100, 2500), ReasonMustBeNearOtherLines},
		{"shorter than two thirds", pts(2000, 500, 2000, 1800), ReasonTooShort},
		{"longer than five quarters", pts(2000, 500, 2000, 3100), ReasonTooLong},
		{"tilted", pts(2000, 500, 2500, 2500), ReasonNotVertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(DefaultOptions(), nil)
			if err := g.SetFirstVerticalLine(pts(1000, 500, 1000, 2500)); err != nil {
				t.Fatal(err)
			}
			wantReason(t, g.SetSecondVerticalLine(tt.line), SecondVertical, tt.reason)
		})
	}
}

func TestSecondVerticalLimits(t *testing.T) {
	// The first line is 2000 units long.
	tests := []struct {
		name string
		line []types.Point
	}{
		{"quarter gap", pts(1500, 500, 1500, 2500)},
		{"half gap", pts(2000, 500, 2000, 2500)},
		{"top quarter lower", pts(1800, 1000, 1800, 3000)},
		{"top quarter higher", pts(1800, 0, 1800, 2000)},
		{"two thirds long", pts(1800, 500, 1800, 1834)},
		{"five quarters long", pts(1800, 500, 1800, 3000)},
		{"drawn upwards", pts(1800, 2500, 1800, 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(DefaultOptions(), nil)
			if err := g.SetFirstVerticalLine(pts(1000, 500, 1000, 2500)); err != nil {
				t.Fatal(err)
			}
			if err := g.SetSecondVerticalLine(tt.line); err != nil {
				t.Errorf("SetSecondVerticalLine(%v): %v", tt.line, err)
			}
		})
	}
}

func TestHorizontalRejections(t *testing.T) {
	g := New(DefaultOptions(), nil)
	if err := g.SetFirstVerticalLine(pts(1000, 500, 1000, 2500)); err != nil {
		t.Fatal(err)
	}
	if err := g.SetSecondVerticalLine(pts(2000, 500, 2000, 2500)); err != nil {
		t.Fatal(err)
	}

	wantReason(t, g.SetFirstHorizontalLine(pts(500, 1000, 1500, 1000)), FirstHorizontal, ReasonMustCrossBothVerticalLines)
	wantReason(t, g.SetFirstHorizontalLine(pts(500, 2700, 2500, 2700)), FirstHorizontal, ReasonMustCrossBothVerticalLines)
	wantReason(t, g.SetFirstHorizontalLine(pts(1500, 500, 1500, 2500)), FirstHorizontal, ReasonNotHorizontal)

	if err := g.SetFirstHorizontalLine(pts(500, 1500, 2500, 1500)); err != nil {
		t.Fatal(err)
	}
	wantReason(t, g.SetSecondHorizontalLine(pts(500, 1000, 2500, 1000)), SecondHorizontal, ReasonMustBeAtBottom)
	wantReason(t, g.SetSecondHorizontalLine(pts(500, 1500, 2500, 1500)), SecondHorizontal, ReasonMustBeAtBottom)
	if err := g.SetSecondHorizontalLine(pts(500, 2000, 2500, 2000)); err != nil {
		t.Fatal(err)
	}
}

func TestDrawingOrder(t *testing.T) {
	g := New(DefaultOptions(), nil)
	wantReason(t, g.SetSecondVerticalLine(pts(2000, 500, 2000, 2500)), SecondVertical, ReasonInvalidDrawingOrder)
	wantReason(t, g.SetFirstHorizontalLine(pts(500, 1000, 2500, 1000)), FirstHorizontal, ReasonInvalidDrawingOrder)

	if err := g.SetFirstVerticalLine(pts(1000, 500, 1000, 2500)); err != nil {
		t.Fatal(err)
	}
	wantReason(t, g.SetFirstVerticalLine(pts(1100, 500, 1100, 2500)), FirstVertical, ReasonInvalidDrawingOrder)
	if l, _ := g.Line(FirstVertical); l.A.X != 1000 {
		t.Errorf("accepted line was overwritten: %v", l)
	}
}

func TestCalculateIncomplete(t *testing.T) {
	g := New(DefaultOptions(), nil)
	if err := g.Calculate(); !errors.Is(err, ErrBoardImpossible) {
		t.Errorf("Calculate on empty board = %v, want ErrBoardImpossible", err)
	}
	if g.TurnField(types.Point{X: 1500, Y: 1500}) != NoCell {
		t.Error("TurnField before Calculate must return NoCell")
	}
}

func TestTurnField(t *testing.T) {
	g := drawBoard(t)
	if err := g.Calculate(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p    types.Point
		want int
	}{
		{types.Point{X: 1500, Y: 1500}, 5},
		{types.Point{X: 500, Y: 500}, 1},
		{types.Point{X: 1500, Y: 500}, 2},
		{types.Point{X: 2500, Y: 500}, 3},
		{types.Point{X: 500, Y: 1500}, 4},
		{types.Point{X: 2500, Y: 1500}, 6},
		{types.Point{X: 500, Y: 2500}, 7},
		{types.Point{X: 1500, Y: 2500}, 8},
		{types.Point{X: 2500, Y: 2500}, 9},
		{types.Point{X: -400, Y: 1500}, 4},
		{types.Point{X: -1000, Y: 1500}, NoCell},
		{types.Point{X: 1500, Y: 4000}, NoCell},
	}
	for _, tt := range tests {
		if got := g.TurnField(tt.p); got != tt.want {
			t.Errorf("TurnField(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestTurnFieldCoversDrawing(t *testing.T) {
	boards := []struct {
		name  string
		lines [4][]types.Point
	}{
		{"square", [4][]types.Point{
			pts(1000, 500, 1000, 2500), pts(2000, 500, 2010, 2500),
			pts(500, 1000, 2500, 1000), pts(500, 2000, 2500, 2020),
		}},
		{"narrow with long horizontals", [4][]types.Point{
			pts(1000, 500, 1000, 2500), pts(1500, 500, 1500, 2500),
			pts(100, 1400, 2100, 1400), pts(100, 1600, 2100, 1600),
		}},
		{"horizontals far past the verticals", [4][]types.Point{
			pts(1000, 500, 1000, 2500), pts(1500, 1000, 1500, 3000),
			pts(-3000, 1400, 4000, 1400), pts(-3000, 1600, 4000, 1600),
		}},
	}
	for _, b := range boards {
		t.Run(b.name, func(t *testing.T) {
			g := New(DefaultOptions(), nil)
			minX, minY, maxX, maxY := b.lines[0][0].X, b.lines[0][0].Y, b.lines[0][0].X, b.lines[0][0].Y
			for slot, line := range b.lines {
				if err := g.Set(Slot(slot), line); err != nil {
					t.Fatalf("Set(%s): %v", Slot(slot), err)
				}
				for _, p := range line {
					minX, maxX = min(minX, p.X), max(maxX, p.X)
					minY, maxY = min(minY, p.Y), max(maxY, p.Y)
				}
			}
			if err := g.Calculate(); err != nil {
				t.Fatal(err)
			}
			const steps = 40
			for i := 0; i <= steps; i++ {
				for j := 0; j <= steps; j++ {
					p := types.Point{
						X: minX + (maxX-minX)*i/steps,
						Y: minY + (maxY-minY)*j/steps,
					}
					if g.TurnField(p) == NoCell {
						t.Fatalf("TurnField(%v) = NoCell inside the drawing", p)
					}
				}
			}
		})
	}
}

func TestCellsTile(t *testing.T) {
	g := drawBoard(t)
	if err := g.Calculate(); err != nil {
		t.Fatal(err)
	}
	cells := g.Cells()
	for i := 1; i <= 9; i++ {
		if cells[i].Width <= 0 || cells[i].Height <= 0 {
			t.Errorf("cell %d is empty: %+v", i, cells[i])
		}
	}
	// Rows share their top edge, columns share their left edge.
	for r := 0; r < 3; r++ {
		for c := 1; c < 3; c++ {
			left, right := cells[r*3+c], cells[r*3+c+1]
			if left.X+left.Width != right.X {
				t.Errorf("cells %d and %d do not touch", r*3+c, r*3+c+1)
			}
			if left.Y != right.Y {
				t.Errorf("cells %d and %d are not aligned", r*3+c, r*3+c+1)
			}
		}
	}
}

func TestReset(t *testing.T) {
	g := drawBoard(t)
	if err := g.Calculate(); err != nil {
		t.Fatal(err)
	}
	g.Reset()
	if g.Calculated() {
		t.Error("Reset must clear the cell map")
	}
	if _, ok := g.Line(FirstVertical); ok {
		t.Error("Reset must clear the lines")
	}
	if err := g.SetFirstVerticalLine(pts(1000, 500, 1000, 2500)); err != nil {
		t.Errorf("first line after reset: %v", err)
	}
}

func TestLineErrorMessage(t *testing.T) {
	err := &LineError{Slot: SecondHorizontal, Reason: ReasonMustBeAtBottom}
	want := "second horizontal line: line must be at the bottom of the previous one"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
