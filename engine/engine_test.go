package engine

import (
	"io"
	"log"
	"math/rand"
	"testing"
)

func newTestEngine(seed int64) *Engine {
	e := New(rand.New(rand.NewSource(seed)), log.New(io.Discard, "", 0))
	e.SelectPlayerOrder()
	return e
}

// board builds fields from a 9-character layout read left to right, top to
// bottom, using 'X', 'O' and '.'.
func board(t *testing.T, layout string) [10]Symbol {
	t.Helper()
	if len(layout) != 9 {
		t.Fatalf("layout %q must have 9 cells", layout)
	}
	var f [10]Symbol
	for i, ch := range layout {
		switch ch {
		case 'X':
			f[i+1] = X
		case 'O':
			f[i+1] = O
		}
	}
	return f
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   Status
	}{
		{"empty", ".........", NotCompleted},
		{"row", "XXXOO....", XWins},
		{"row swapped", "OOOXX....", OWins},
		{"column", "OX.OX.O.X", OWins},
		{"diagonal", "X.O.XO..X", XWins},
		{"anti diagonal", "X.OXO.O.X", OWins},
		{"full board", "XOXXOOOXX", Draw},
		{"full board alternating", "XOXOXOOXO", Draw},
		{"all lines blocked", "XOXXOOOX.", Draw},
		{"open line left", "XO.......", NotCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluate(board(t, tt.layout)); got != tt.want {
				t.Errorf("evaluate(%s) = %s, want %s", tt.layout, got, tt.want)
			}
		})
	}
}

func TestSelectPlayerOrder(t *testing.T) {
	e := New(nil, nil)
	if !e.SelectPlayerOrder() {
		t.Error("human must go first")
	}
	if e.HumanSymbol() != X || e.AISymbol() != O {
		t.Errorf("human %s, pen %s; want X and O", e.HumanSymbol(), e.AISymbol())
	}
}

func TestHumanTurn(t *testing.T) {
	e := newTestEngine(1)
	for _, cell := range []int{0, 10, -1} {
		if e.HumanTurn(cell) {
			t.Errorf("HumanTurn(%d) should fail", cell)
		}
	}
	if !e.HumanTurn(5) {
		t.Fatal("HumanTurn(5) should succeed")
	}
	if e.HumanTurn(5) {
		t.Error("HumanTurn on an occupied cell should fail")
	}
	if f := e.Fields(); f[5] != X {
		t.Errorf("cell 5 = %s, want X", f[5])
	}
	if moves := e.Moves(); len(moves) != 1 || moves[0] != (Move{Symbol: X, Cell: 5}) {
		t.Errorf("moves = %v", moves)
	}
}

func TestHumanTurnAfterEnd(t *testing.T) {
	e := newTestEngine(1)
	e.fields = board(t, "XXXOO....")
	if e.HumanTurn(9) {
		t.Error("HumanTurn after a win should fail")
	}
	if cell := e.AITurn(); cell != -1 {
		t.Errorf("AITurn after a win = %d, want -1", cell)
	}
}

func TestHardCompletesLine(t *testing.T) {
	e := newTestEngine(7)
	e.SetLevel(Hard)
	e.fields = board(t, "OO.XX...X")
	if cell := e.AITurn(); cell != 3 {
		t.Errorf("AITurn = %d, want 3", cell)
	}
	if e.Status() != OWins {
		t.Errorf("status = %s, want O wins", e.Status())
	}
}

func TestHardBlocksLine(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newTestEngine(seed)
		e.SetLevel(Hard)
		e.fields = board(t, "XX..O....")
		if cell := e.AITurn(); cell != 3 {
			t.Fatalf("seed %d: AITurn = %d, want 3", seed, cell)
		}
	}
}

func TestRatings(t *testing.T) {
	empty := rate([10]Symbol{}, X, O)
	for c := 1; c <= 9; c++ {
		if empty[c] != DefaultWeights.Available {
			t.Errorf("empty board cell %d rated %d, want %d", c, empty[c], DefaultWeights.Available)
		}
	}

	fields := board(t, "X...O...X")
	r := rate(fields, X, O)
	for c := 1; c <= 9; c++ {
		if fields[c] != Empty && r[c] != 0 {
			t.Errorf("occupied cell %d rated %d", c, r[c])
		}
		if fields[c] == Empty && r[c] < DefaultWeights.Available {
			t.Errorf("empty cell %d rated %d", c, r[c])
		}
	}
}

func TestRatingValues(t *testing.T) {
	tests := []struct {
		layout string
		want   [9]int
	}{
		{"X........", [9]int{0, 41, 61, 41, 91, 41, 61, 41, 71}},
		{"X...O...X", [9]int{0, 1001, 1001, 1001, 0, 1001, 1001, 1001, 0}},
		{"X.O.X....", [9]int{0, 11, 0, 1011, 0, 1001, 1121, 121, 100021}},
		{".X..O..X.", [9]int{231, 0, 231, 221, 0, 221, 231, 0, 231}},
		{"OO.XX...X", [9]int{0, 0, 1002001, 0, 0, 101001, 2001, 1001, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			r := rate(board(t, tt.layout), X, O)
			var got [9]int
			copy(got[:], r[1:])
			if got != tt.want {
				t.Errorf("rate(%s) = %v, want %v", tt.layout, got, tt.want)
			}
		})
	}
}

func TestEasyPicksEmptyCells(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		e := newTestEngine(seed)
		e.fields = board(t, "X.O.X....")
		before := e.Fields()
		cell := e.AITurn()
		if cell < 1 || cell > 9 {
			t.Fatalf("seed %d: AITurn = %d", seed, cell)
		}
		if before[cell] != Empty {
			t.Fatalf("seed %d: pen played on occupied cell %d", seed, cell)
		}
		if e.Fields()[cell] != O {
			t.Fatalf("seed %d: cell %d not marked", seed, cell)
		}
	}
}

func TestSeededGamesRepeat(t *testing.T) {
	play := func() []Move {
		e := newTestEngine(42)
		e.NewGame()
		for !e.Status().Terminal() {
			for c := 1; c <= 9; c++ {
				if e.HumanTurn(c) {
					break
				}
			}
			if e.Status().Terminal() {
				break
			}
			if e.AITurn() == -1 {
				t.Fatal("pen could not move in an open game")
			}
		}
		return e.Moves()
	}
	a, b := play(), play()
	if len(a) != len(b) {
		t.Fatalf("games differ in length: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNewGame(t *testing.T) {
	e := newTestEngine(3)
	e.HumanTurn(1)
	e.AITurn()
	e.NewGame()
	if e.Fields() != ([10]Symbol{}) {
		t.Error("NewGame must clear the board")
	}
	if len(e.Moves()) != 0 {
		t.Error("NewGame must clear the moves")
	}
	if e.Status() != NotCompleted {
		t.Error("NewGame must reset the status")
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("HARD"); err != nil || l != Hard {
		t.Errorf("ParseLevel(HARD) = %v, %v", l, err)
	}
	if _, err := ParseLevel("medium"); err == nil {
		t.Error("ParseLevel(medium) should fail")
	}
}

func TestParseSymbol(t *testing.T) {
	if s, ok := ParseSymbol("x"); !ok || s != X {
		t.Errorf("ParseSymbol(x) = %v, %v", s, ok)
	}
	if s, ok := ParseSymbol("O"); !ok || s != O {
		t.Errorf("ParseSymbol(O) = %v, %v", s, ok)
	}
	if _, ok := ParseSymbol("z"); ok {
		t.Error("ParseSymbol(z) should fail")
	}
}

func TestString(t *testing.T) {
	e := newTestEngine(1)
	e.fields = board(t, "X...O....")
	want := "   A B C\n1  X . .\n2  . O .\n3  . . .\n"
	if got := e.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
