// Package engine holds the tic-tac-toe board and chooses the pen's moves.
package engine

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
)

// Symbol is the content of a board cell. The values are chosen so that the
// sum of a line identifies its contents unambiguously.
type Symbol int

const (
	Empty Symbol = 0
	X     Symbol = 1
	O     Symbol = 4
)

func (s Symbol) String() string {
	switch s {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSymbol maps "x" or "o" (any case) to a symbol.
func ParseSymbol(s string) (Symbol, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, true
	case "o":
		return O, true
	}
	return Empty, false
}

// Status is the outcome of the current game.
type Status int

const (
	NotCompleted Status = 0
	XWins        Status = 1
	Draw         Status = 3
	OWins        Status = 4
)

func (s Status) String() string {
	switch s {
	case NotCompleted:
		return "in progress"
	case XWins:
		return "X wins"
	case Draw:
		return "draw"
	case OWins:
		return "O wins"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no more moves can be made.
func (s Status) Terminal() bool {
	return s != NotCompleted
}

// Level selects how the pen picks among rated cells.
type Level int

const (
	Easy Level = iota
	Hard
)

func (l Level) String() string {
	if l == Hard {
		return "hard"
	}
	return "easy"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel accepts "easy" or "hard".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown level %q (must be easy or hard)", s)
}

// Move is one mark placed on the board.
type Move struct {
	Symbol Symbol `json:"symbol"`
	Cell   int    `json:"cell"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Symbol, CellName(m.Cell))
}

// lines lists the eight winning triples.
var lines = [8][3]int{
	{1, 2, 3}, {4, 5, 6}, {7, 8, 9},
	{1, 4, 7}, {2, 5, 8}, {3, 6, 9},
	{1, 5, 9}, {3, 5, 7},
}

// Engine holds one game. It is not safe for concurrent use.
type Engine struct {
	fields [10]Symbol
	status Status
	moves  []Move
	level  Level
	human  Symbol
	ai     Symbol
	rnd    *rand.Rand
	log    *log.Logger
}

// New creates an engine at the easy level. The random source drives the
// pen's choices; pass a seeded source for reproducible games.
func New(rnd *rand.Rand, logger *log.Logger) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	e := &Engine{rnd: rnd, log: logger, human: X, ai: O}
	e.log.Printf("[engine] initialised, level %s", e.level)
	return e
}

// SetLevel changes the pen's level.
func (e *Engine) SetLevel(l Level) {
	e.level = l
	e.log.Printf("[engine] level set to %s", l)
}

// Level returns the pen's level.
func (e *Engine) Level() Level {
	return e.level
}

// NewGame clears the board.
func (e *Engine) NewGame() {
	e.fields = [10]Symbol{}
	e.status = NotCompleted
	e.moves = nil
	e.log.Printf("[engine] new game")
}

// SelectPlayerOrder assigns symbols. The human always plays crosses and goes
// first, so it always returns true.
func (e *Engine) SelectPlayerOrder() bool {
	e.human, e.ai = X, O
	e.log.Printf("[engine] human plays %s, pen plays %s, human starts", e.human, e.ai)
	return true
}

// HumanSymbol returns the human's symbol.
func (e *Engine) HumanSymbol() Symbol { return e.human }

// AISymbol returns the pen's symbol.
func (e *Engine) AISymbol() Symbol { return e.ai }

// HumanTurn places the human's mark in cell. It returns false when the cell
// is out of range or occupied, or when the game is already over.
func (e *Engine) HumanTurn(cell int) bool {
	if cell < 1 || cell > 9 {
		e.log.Printf("[engine] human move to invalid cell %d", cell)
		return false
	}
	if e.Status().Terminal() {
		e.log.Printf("[engine] human move to %s after the game ended", CellName(cell))
		return false
	}
	if e.fields[cell] != Empty {
		e.log.Printf("[engine] human move to %s, occupied by %s", CellName(cell), e.fields[cell])
		return false
	}
	e.place(e.human, cell)
	return true
}

// AITurn rates every empty cell and places the pen's mark. It returns the
// chosen cell, or -1 when the game is already over.
func (e *Engine) AITurn() int {
	if e.Status().Terminal() {
		e.log.Printf("[engine] pen move requested after the game ended")
		return -1
	}
	ratings := rate(e.fields, e.human, e.ai)

	var cell int
	if e.level == Easy {
		cell = pickWeighted(ratings, e.rnd)
	} else {
		cell = pickBest(ratings, e.fields, e.rnd)
	}
	if cell < 1 {
		return -1
	}
	e.place(e.ai, cell)
	return cell
}

func (e *Engine) place(s Symbol, cell int) {
	e.fields[cell] = s
	e.moves = append(e.moves, Move{Symbol: s, Cell: cell})
	e.log.Printf("[engine] %s to %s", s, CellName(cell))
	e.Status()
}

// Status recomputes and returns the game status. A line of three equal marks
// wins. When every line holds both symbols nobody can win any more and the
// game is a draw, even if empty cells remain.
func (e *Engine) Status() Status {
	e.status = evaluate(e.fields)
	return e.status
}

func evaluate(fields [10]Symbol) Status {
	blocked := 0
	for _, l := range lines {
		a, b, c := fields[l[0]], fields[l[1]], fields[l[2]]
		if a != Empty && a == b && b == c {
			if a == X {
				return XWins
			}
			return OWins
		}
		if hasBoth(a, b, c) {
			blocked++
		}
	}
	if blocked == len(lines) {
		return Draw
	}
	return NotCompleted
}

func hasBoth(cells ...Symbol) bool {
	var x, o bool
	for _, s := range cells {
		x = x || s == X
		o = o || s == O
	}
	return x && o
}

// Fields returns a copy of the board; index 0 is unused.
func (e *Engine) Fields() [10]Symbol {
	return e.fields
}

// Moves returns the moves of the current game in order.
func (e *Engine) Moves() []Move {
	out := make([]Move, len(e.moves))
	copy(out, e.moves)
	return out
}

// Rows renders fields as three strings such as "X.O", top row first.
func Rows(fields [10]Symbol) []string {
	rows := make([]string, 3)
	for r := range rows {
		var b [3]byte
		for c := 0; c < 3; c++ {
			switch fields[r*3+c+1] {
			case X:
				b[c] = 'X'
			case O:
				b[c] = 'O'
			default:
				b[c] = '.'
			}
		}
		rows[r] = string(b[:])
	}
	return rows
}

// String renders the board as three rows of text.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.WriteString("   A B C\n")
	for r := 0; r < 3; r++ {
		fmt.Fprintf(&sb, "%d ", r+1)
		for c := 1; c <= 3; c++ {
			s := e.fields[r*3+c]
			if s == Empty {
				sb.WriteString(" .")
			} else {
				sb.WriteString(" " + s.String())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
