package ui

import (
	"testing"

	"tictacpen/config"
	"tictacpen/types"
)

func newTestPaper(t *testing.T) *Paper {
	t.Helper()
	c := config.DefaultConfig
	return NewPaper(&c, nil)
}

func TestPaperCoordinates(t *testing.T) {
	p := newTestPaper(t)
	tests := []struct {
		col, row int
		want     types.Point
	}{
		{0, 0, types.Point{X: 12, Y: 25}},
		{4, 2, types.Point{X: 112, Y: 125}},
		{40, 20, types.Point{X: 1012, Y: 1025}},
	}
	for _, tt := range tests {
		got := p.ToDevice(tt.col, tt.row)
		if got != tt.want {
			t.Errorf("ToDevice(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
		col, row := p.ToCell(got)
		if col != tt.col || row != tt.row {
			t.Errorf("ToCell(%v) = %d, %d; want %d, %d", got, col, row, tt.col, tt.row)
		}
	}
	if col, row := p.ToCell(types.Point{X: -1, Y: -1}); col != -1 || row != -1 {
		t.Errorf("negative units should map left of and above the paper, got %d, %d", col, row)
	}
}

func TestPaperStroke(t *testing.T) {
	p := newTestPaper(t)
	var strokes []types.Stroke
	p.OnStroke = func(s types.Stroke) { strokes = append(strokes, s) }

	p.Extend(3, 3)
	p.Finish(3, 3)
	if len(strokes) != 0 {
		t.Fatal("a stroke was reported without a pen down")
	}

	p.Begin(10, 2)
	p.Extend(10, 2)
	p.Extend(10, 10)
	p.Finish(10, 22)
	if len(strokes) != 1 {
		t.Fatalf("expected 1 stroke, got %d", len(strokes))
	}
	want := types.Stroke{p.ToDevice(10, 2), p.ToDevice(10, 10), p.ToDevice(10, 22)}
	if len(strokes[0]) != len(want) {
		t.Fatalf("expected %d vertices, got %v", len(want), strokes[0])
	}
	for i := range want {
		if strokes[0][i] != want[i] {
			t.Fatalf("vertex %d = %v, want %v", i, strokes[0][i], want[i])
		}
	}
	if len(p.Strokes()) != 1 {
		t.Fatal("stroke not kept as ink")
	}
}

func TestPaperPages(t *testing.T) {
	p := newTestPaper(t)
	var pages []int
	p.OnPageChanged = func(page int) { pages = append(pages, page) }

	p.PrevPage()
	if len(pages) != 0 || p.Page() != 1 {
		t.Fatal("page 1 has no previous page")
	}

	p.Begin(1, 1)
	p.Finish(1, 5)
	p.NextPage()
	if p.Page() != 2 || len(p.Strokes()) != 0 {
		t.Fatalf("expected a blank page 2, got page %d with %d strokes", p.Page(), len(p.Strokes()))
	}
	p.PrevPage()
	if len(p.Strokes()) != 1 {
		t.Fatal("ink of page 1 lost")
	}
	if len(pages) != 2 || pages[0] != 2 || pages[1] != 1 {
		t.Fatalf("page events = %v", pages)
	}

	p.ClearInk()
	if len(p.Strokes()) != 0 {
		t.Fatal("ClearInk left strokes behind")
	}
}

func TestPlotSegment(t *testing.T) {
	var cells [][2]int
	plotSegment(0, 0, 3, 6, func(col, row int) { cells = append(cells, [2]int{col, row}) })
	if len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %v", cells)
	}
	if cells[0] != [2]int{0, 0} || cells[6] != [2]int{3, 6} {
		t.Fatalf("segment ends wrong: %v", cells)
	}
}
