package flow

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"tictacpen/board"
	"tictacpen/engine"
	"tictacpen/types"
)

type fakeCanvas struct {
	ops []string
}

func (c *fakeCanvas) Clear() { c.ops = nil }

func (c *fakeCanvas) DrawLine(x1, y1, x2, y2 int) {
	c.ops = append(c.ops, fmt.Sprintf("line %d,%d-%d,%d", x1, y1, x2, y2))
}

func (c *fakeCanvas) FillRect(x, y, w, h int) {
	c.ops = append(c.ops, fmt.Sprintf("rect %d,%d %dx%d", x, y, w, h))
}

func (c *fakeCanvas) DrawString(s string, x, y int) {
	c.ops = append(c.ops, "text "+s)
}

type shownMenu struct {
	menu    Menu
	focused int
}

type fakeDisplay struct {
	canvas   fakeCanvas
	menus    []shownMenu
	texts    []string
	drawings [][]string
	last     string
}

func (d *fakeDisplay) ShowMenu(m Menu, items []string, focused int) {
	d.menus = append(d.menus, shownMenu{m, focused})
	d.last = fmt.Sprintf("menu %s %s", m, items[focused])
}

func (d *fakeDisplay) ShowText(msg string, scroll bool) {
	d.texts = append(d.texts, msg)
	d.last = msg
}

func (d *fakeDisplay) Canvas() Canvas { return &d.canvas }

func (d *fakeDisplay) ShowDrawing() {
	ops := append([]string(nil), d.canvas.ops...)
	d.drawings = append(d.drawings, ops)
	d.last = "drawing"
}

// lastDrawing returns the operations of the most recently shown image.
func (d *fakeDisplay) lastDrawing() []string {
	if len(d.drawings) == 0 {
		return nil
	}
	return d.drawings[len(d.drawings)-1]
}

type fakeSound struct {
	played []SoundKey
}

func (s *fakeSound) Play(key SoundKey) { s.played = append(s.played, key) }

func (s *fakeSound) last() SoundKey {
	if len(s.played) == 0 {
		return ""
	}
	return s.played[len(s.played)-1]
}

type fakeRecognizer struct {
	strokes int
	clears  int
}

func (r *fakeRecognizer) AddStroke(types.Stroke) { r.strokes++ }
func (r *fakeRecognizer) Clear()                 { r.clears++ }

type task struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	done      bool
}

// fakeScheduler runs tasks only when the test fires them.
type fakeScheduler struct {
	tasks []*task
}

func (s *fakeScheduler) After(d time.Duration, fn func()) func() {
	t := &task{delay: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

func (s *fakeScheduler) pending() []*task {
	var out []*task
	for _, t := range s.tasks {
		if !t.cancelled && !t.done {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the oldest pending task and reports whether there was one.
func (s *fakeScheduler) fire() bool {
	p := s.pending()
	if len(p) == 0 {
		return false
	}
	p[0].done = true
	p[0].fn()
	return true
}

// scriptedEngine plays the pen's moves from a fixed list.
type scriptedEngine struct {
	fields  [10]engine.Symbol
	level   engine.Level
	replies []int
	aiTurns int
}

func (e *scriptedEngine) SetLevel(l engine.Level)    { e.level = l }
func (e *scriptedEngine) Level() engine.Level        { return e.level }
func (e *scriptedEngine) NewGame()                   { e.fields = [10]engine.Symbol{} }
func (e *scriptedEngine) SelectPlayerOrder() bool    { return true }
func (e *scriptedEngine) HumanSymbol() engine.Symbol { return engine.X }
func (e *scriptedEngine) Moves() []engine.Move       { return nil }
func (e *scriptedEngine) Fields() [10]engine.Symbol  { return e.fields }

func (e *scriptedEngine) HumanTurn(cell int) bool {
	if e.Status().Terminal() || e.fields[cell] != engine.Empty {
		return false
	}
	e.fields[cell] = engine.X
	return true
}

func (e *scriptedEngine) AITurn() int {
	if e.Status().Terminal() || len(e.replies) == 0 {
		return -1
	}
	cell := e.replies[0]
	e.replies = e.replies[1:]
	e.fields[cell] = engine.O
	e.aiTurns++
	return cell
}

func (e *scriptedEngine) Status() engine.Status {
	wins := [8][3]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {1, 4, 7}, {2, 5, 8}, {3, 6, 9}, {1, 5, 9}, {3, 5, 7}}
	for _, l := range wins {
		a := e.fields[l[0]]
		if a != engine.Empty && a == e.fields[l[1]] && a == e.fields[l[2]] {
			if a == engine.X {
				return engine.XWins
			}
			return engine.OWins
		}
	}
	for c := 1; c <= 9; c++ {
		if e.fields[c] == engine.Empty {
			return engine.NotCompleted
		}
	}
	return engine.Draw
}

type harness struct {
	t       *testing.T
	f       *FSM
	board   *board.Geometry
	display *fakeDisplay
	sound   *fakeSound
	rec     *fakeRecognizer
	sched   *fakeScheduler
	snaps   []Snapshot
}

func newHarness(t *testing.T, eng MoveEngine) *harness {
	t.Helper()
	if eng == nil {
		eng = engine.New(rand.New(rand.NewSource(1)), nil)
	}
	h := &harness{
		t:       t,
		board:   board.New(board.DefaultOptions(), nil),
		display: &fakeDisplay{},
		sound:   &fakeSound{},
		rec:     &fakeRecognizer{},
		sched:   &fakeScheduler{},
	}
	h.f = New(Deps{
		Board:      h.board,
		Engine:     eng,
		Display:    h.display,
		Sound:      h.sound,
		Recognizer: h.rec,
		Scheduler:  h.sched,
		Logger:     log.New(io.Discard, "", 0),
		Options:    DefaultOptions(),
		Observer:   func(s Snapshot) { h.snaps = append(h.snaps, s) },
	})
	return h
}

func (h *harness) wantState(want State) {
	h.t.Helper()
	if got := h.f.State(); got != want {
		h.t.Fatalf("state = %s, want %s", got, want)
	}
}

func stroke(pts ...int) types.Stroke {
	var s types.Stroke
	for i := 0; i+1 < len(pts); i += 2 {
		s = append(s, types.Point{X: pts[i], Y: pts[i+1]})
	}
	return s
}

// boardStrokes draw a board with 100mm cells between x,y 1000 and 2000.
var boardStrokes = []types.Stroke{
	stroke(1000, 500, 1004, 1500, 1000, 2500),
	stroke(2000, 500, 2000, 2500),
	stroke(500, 1000, 2500, 1000),
	stroke(500, 2000, 2500, 2000),
}

// startDrawing opens the level menu and picks easy.
func (h *harness) startDrawing() {
	h.t.Helper()
	h.f.OnApplicationStart()
	h.f.OnMenuRight()
	h.f.OnMenuRight()
	h.wantState(StateDrawFirstVerticalLine)
}

// startGame draws the whole board.
func (h *harness) startGame() {
	h.t.Helper()
	h.startDrawing()
	for _, s := range boardStrokes {
		h.f.OnStrokeCompleted(s)
	}
	h.wantState(StateHumanTurn)
}

// cellBox returns a handwriting bounding box centred on cell.
func cellBox(cell int) types.Rect {
	cx := 500 + (cell-1)%3*1000
	cy := 500 + (cell-1)/3*1000
	return types.Rect{X: cx - 100, Y: cy - 100, Width: 200, Height: 200}
}

func (h *harness) play(cell int) {
	h.t.Helper()
	h.f.OnHandwritingResult("x", cellBox(cell))
}

func contains(ops []string, want string) bool {
	for _, op := range ops {
		if op == want {
			return true
		}
	}
	return false
}
