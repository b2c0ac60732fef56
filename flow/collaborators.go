package flow

import (
	"time"

	"tictacpen/board"
	"tictacpen/engine"
	"tictacpen/types"
)

// Menu identifies one of the pen display menus.
type Menu int

const (
	MenuMain Menu = iota
	MenuHelp
	MenuLevel
)

func (m Menu) String() string {
	switch m {
	case MenuHelp:
		return "help"
	case MenuLevel:
		return "level"
	}
	return "main"
}

// Display is the pen's small screen.
type Display interface {
	// ShowMenu shows a menu with one item focused.
	ShowMenu(m Menu, items []string, focused int)
	// ShowText shows a message, scrolling it when it does not fit.
	ShowText(msg string, scroll bool)
	// Canvas returns the off-screen image drawn by the flow.
	Canvas() Canvas
	// ShowDrawing shows the current canvas content.
	ShowDrawing()
}

// Canvas is an off-screen monochrome image. Coordinates are pixels.
type Canvas interface {
	Clear()
	DrawLine(x1, y1, x2, y2 int)
	FillRect(x, y, w, h int)
	DrawString(s string, x, y int)
}

// Sound plays a named prompt.
type Sound interface {
	Play(key SoundKey)
}

// Recognizer collects the strokes of a handwritten symbol. Results come back
// through FSM.OnHandwritingResult.
type Recognizer interface {
	AddStroke(s types.Stroke)
	Clear()
}

// Scheduler runs fn once after d on the same goroutine that delivers the
// other events. The returned func cancels the call if it has not run yet.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Geometry is the hand-drawn board.
type Geometry interface {
	Set(slot board.Slot, pts []types.Point) error
	Calculate() error
	TurnField(p types.Point) int
	Reset()
}

// MoveEngine owns the marks on the board and plays the pen's moves.
type MoveEngine interface {
	SetLevel(l engine.Level)
	Level() engine.Level
	NewGame()
	SelectPlayerOrder() bool
	HumanTurn(cell int) bool
	AITurn() int
	Status() engine.Status
	Fields() [10]engine.Symbol
	HumanSymbol() engine.Symbol
	Moves() []engine.Move
}

// Snapshot is a read-only copy of the game published after every event.
type Snapshot struct {
	GameID string            `json:"game_id,omitempty"`
	State  State             `json:"state"`
	Level  engine.Level      `json:"level"`
	Fields [10]engine.Symbol `json:"-"`
	Board  []string          `json:"board"`
	Status engine.Status     `json:"status"`
	Moves  []engine.Move     `json:"moves"`
}
