// Package flow sequences the game: menu browsing, the four-line board drawing
// ritual, turn alternation and the result screens.
//
// Every public method runs to completion. A transition may produce a
// follow-up Event, which is handled before the method returns, so chains such
// as "board finished, select player order, human starts" settle within one
// call. The FSM is not safe for concurrent use; the host must deliver events
// and scheduled callbacks from a single goroutine.
package flow

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"tictacpen/board"
	"tictacpen/engine"
	"tictacpen/types"
)

// Options holds the pacing of the game flow.
type Options struct {
	// PlayerOrderDelay keeps the player order announcement on screen before
	// the board is shown.
	PlayerOrderDelay time.Duration
	// ResultDelay keeps results and error messages on screen.
	ResultDelay time.Duration
	// BlinkInterval toggles the pending line while drawing. Zero disables it.
	BlinkInterval time.Duration
}

// DefaultOptions returns the stock pacing.
func DefaultOptions() Options {
	return Options{
		PlayerOrderDelay: 2 * time.Second,
		ResultDelay:      3 * time.Second,
		BlinkInterval:    500 * time.Millisecond,
	}
}

// Deps are the collaborators of the FSM. Board, Engine, Display and Scheduler
// are required.
type Deps struct {
	Board      Geometry
	Engine     MoveEngine
	Display    Display
	Sound      Sound
	Recognizer Recognizer
	Scheduler  Scheduler
	Logger     *log.Logger
	Options    Options
	// Observer receives a snapshot after every handled event.
	Observer func(Snapshot)
}

// FSM is the game flow state machine.
type FSM struct {
	state      State
	board      Geometry
	engine     MoveEngine
	display    Display
	sound      Sound
	recognizer Recognizer
	scheduler  Scheduler
	log        *log.Logger
	opts       Options
	observer   func(Snapshot)

	gameID string

	cancelTimer func()
	timerGen    uint64
}

// New creates an FSM in StateStart.
func New(d Deps) *FSM {
	f := &FSM{
		state:      StateStart,
		board:      d.Board,
		engine:     d.Engine,
		display:    d.Display,
		sound:      d.Sound,
		recognizer: d.Recognizer,
		scheduler:  d.Scheduler,
		log:        d.Logger,
		opts:       d.Options,
		observer:   d.Observer,
	}
	if f.log == nil {
		f.log = log.New(io.Discard, "", 0)
	}
	if f.sound == nil {
		f.sound = silence{}
	}
	if f.recognizer == nil {
		f.recognizer = noRecognizer{}
	}
	return f
}

type silence struct{}

func (silence) Play(SoundKey) {}

type noRecognizer struct{}

func (noRecognizer) AddStroke(types.Stroke) {}
func (noRecognizer) Clear()                 {}

// State returns the current state.
func (f *FSM) State() State {
	return f.state
}

// Snapshot returns a copy of the current game.
func (f *FSM) Snapshot() Snapshot {
	fields := f.engine.Fields()
	return Snapshot{
		GameID: f.gameID,
		State:  f.state,
		Level:  f.engine.Level(),
		Fields: fields,
		Board:  engine.Rows(fields),
		Status: f.engine.Status(),
		Moves:  f.engine.Moves(),
	}
}

func (f *FSM) publish() {
	if f.observer != nil {
		f.observer(f.Snapshot())
	}
}

// OnApplicationStart shows the main menu.
func (f *FSM) OnApplicationStart() {
	f.sound.Play(SoundTitle)
	f.move(StateMainMenuStartGame)
}

// OnApplicationEnd moves to StateEnd and drops pending scheduled work.
func (f *FSM) OnApplicationEnd() {
	f.run(EventEnd)
}

// OnMenuDown moves the focus down. It is always consumed.
func (f *FSM) OnMenuDown() bool {
	if to, ok := menuDown[f.state]; ok {
		f.move(to)
	}
	return true
}

// OnMenuUp moves the focus up. It is always consumed.
func (f *FSM) OnMenuUp() bool {
	if to, ok := menuUp[f.state]; ok {
		f.move(to)
	}
	return true
}

// OnMenuLeft goes back one level. It is consumed only where going back is
// possible, so the host may use the key elsewhere.
func (f *FSM) OnMenuLeft() bool {
	to, ok := menuLeft[f.state]
	if !ok {
		return false
	}
	f.move(to)
	return true
}

// OnMenuRight opens the focused item. On the level menu it sets the pen's
// level and starts a new board. It is always consumed.
func (f *FSM) OnMenuRight() bool {
	switch f.state {
	case StateLevelMenuEasy:
		f.engine.SetLevel(engine.Easy)
	case StateLevelMenuHard:
		f.engine.SetLevel(engine.Hard)
	}
	if to, ok := menuRight[f.state]; ok {
		f.move(to)
	}
	return true
}

// OnFirstVerticalLineReady advances the drawing after the first line.
func (f *FSM) OnFirstVerticalLineReady() { f.lineReady(StateDrawFirstVerticalLine) }

// OnSecondVerticalLineReady advances the drawing after the second line.
func (f *FSM) OnSecondVerticalLineReady() { f.lineReady(StateDrawSecondVerticalLine) }

// OnFirstHorizontalLineReady advances the drawing after the third line.
func (f *FSM) OnFirstHorizontalLineReady() { f.lineReady(StateDrawFirstHorizontalLine) }

// OnSecondHorizontalLineReady finishes the drawing and starts the game. The
// state settles in a turn state before it returns.
func (f *FSM) OnSecondHorizontalLineReady() { f.lineReady(StateDrawSecondHorizontalLine) }

func (f *FSM) lineReady(s State) {
	if f.state != s {
		f.log.Printf("[fsm] %s line ready ignored in %s", steps[s].slot, f.state)
		return
	}
	f.move(steps[s].next)
}

// OnStrokeCompleted handles a stroke drawn on the paper. While drawing the
// board its first and last vertices form the next line; during the human's
// turn it goes to the recogniser; after a game it starts a new board.
func (f *FSM) OnStrokeCompleted(stroke types.Stroke) {
	switch {
	case f.state.Drawing():
		f.drawLine(stroke)
	case f.state == StateHumanTurn:
		f.recognizer.AddStroke(stroke)
	case f.state.GameOver():
		f.log.Printf("[fsm] stroke after game %s, starting a new board", f.gameID)
		f.move(StateDrawFirstVerticalLine)
		f.drawLine(stroke)
	default:
		f.log.Printf("[fsm] stroke ignored in %s", f.state)
	}
}

func (f *FSM) drawLine(stroke types.Stroke) {
	st := steps[f.state]
	var pts []types.Point
	if first, last, ok := stroke.Endpoints(); ok {
		pts = []types.Point{first, last}
	}
	if err := f.board.Set(st.slot, pts); err != nil {
		f.lineFailed(err)
		return
	}
	if st.slot == board.SecondHorizontal {
		if err := f.board.Calculate(); err != nil {
			f.log.Printf("[fsm] game %s: %v", f.gameID, err)
			f.move(StateDrawFirstVerticalLine)
			f.holdMessage(textBoardFailed)
			return
		}
	}
	f.lineReady(f.state)
}

func (f *FSM) lineFailed(err error) {
	msg := textTryAgain
	var le *board.LineError
	if errors.As(err, &le) {
		if m, ok := lineMessages[le.Reason]; ok {
			msg = m.text + textTryAgain
			if m.sound != "" {
				f.sound.Play(m.sound)
			}
		}
	}
	f.log.Printf("[fsm] line rejected: %v", err)
	f.holdMessage(msg)
	f.publish()
}

// OnHandwritingResult handles a recognised symbol. It becomes the human's
// move when it is the human's symbol and its centre lies on a free cell.
func (f *FSM) OnHandwritingResult(symbol string, box types.Rect) {
	if f.state != StateHumanTurn {
		f.log.Printf("[fsm] handwriting %q ignored in %s", symbol, f.state)
		return
	}
	sym, ok := engine.ParseSymbol(symbol)
	if !ok || sym != f.engine.HumanSymbol() {
		f.log.Printf("[fsm] handwriting %q is not the human's symbol", symbol)
		return
	}
	f.recognizer.Clear()

	center := box.Center()
	cell := f.board.TurnField(center)
	if cell == board.NoCell {
		f.log.Printf("[fsm] %s at %v is outside the board", sym, center)
		return
	}
	if !f.engine.HumanTurn(cell) {
		f.log.Printf("[fsm] %s at %s rejected", sym, engine.CellName(cell))
		return
	}
	f.run(EventHumanTurnReady)
}

// OnPageChanged handles the player moving to another paper page. A board in
// progress is thrown away and drawing starts over.
func (f *FSM) OnPageChanged() {
	if !f.state.Drawing() && !f.state.Playing() {
		f.board.Reset()
		return
	}
	f.log.Printf("[fsm] page changed in %s, game %s abandoned", f.state, f.gameID)
	f.move(StateDrawFirstVerticalLine)
	f.holdMessage(textPageChanged)
}

func (f *FSM) move(to State) {
	f.run(f.transition(to))
}

// run handles ev and every follow-up event it produces, then publishes.
func (f *FSM) run(ev Event) {
	for ev != EventNone {
		ev = f.handle(ev)
	}
	f.publish()
}

func (f *FSM) handle(ev Event) Event {
	f.log.Printf("[fsm] event %s in %s", ev, f.state)
	switch ev {
	case EventHumanTurnNext:
		if f.state == StateSelectPlayerOrder {
			f.display.ShowText(textHumanFirst, true)
			f.sound.Play(SoundYourTurn)
			return f.transition(StateHumanTurn)
		}
	case EventPenTurnNext:
		if f.state == StateSelectPlayerOrder {
			f.display.ShowText(textPenFirst, true)
			return f.transition(StatePenTurn)
		}
	case EventHumanTurnReady:
		if f.state == StateHumanTurn {
			return f.transition(StatePenTurn)
		}
	case EventPenTurnReady:
		if f.state == StatePenTurn {
			return f.transition(StateHumanTurn)
		}
	case EventHumanWins:
		return f.transition(StateEndHumanWins)
	case EventPenWins:
		return f.transition(StateEndPenWins)
	case EventDraw:
		return f.transition(StateEndDraw)
	case EventEnd:
		return f.transition(StateEnd)
	}
	return EventNone
}

// transition moves to state to when the arrival guard allows it, performs
// the side effects of entering it and returns the follow-up event.
func (f *FSM) transition(to State) Event {
	from := f.state
	if !allowed(from, to) {
		f.log.Printf("[fsm] transition %s -> %s rejected", from, to)
		return EventNone
	}
	f.log.Printf("[fsm] %s -> %s", from, to)
	f.stopTimer()
	f.state = to
	return f.enter(from, to)
}

func (f *FSM) enter(from, to State) Event {
	if item, ok := menuItems[to]; ok {
		f.display.ShowMenu(item.menu, Items(item.menu), item.index)
		if from != StateStart {
			f.sound.Play(item.sound)
		}
		return EventNone
	}
	if text, ok := helpTexts[to]; ok {
		f.display.ShowText(text, true)
		return EventNone
	}

	switch to {
	case StateDrawFirstVerticalLine:
		f.newGame()
		f.startStep(to)
	case StateDrawSecondVerticalLine, StateDrawFirstHorizontalLine, StateDrawSecondHorizontalLine:
		f.startStep(to)
	case StateSelectPlayerOrder:
		if f.engine.SelectPlayerOrder() {
			return EventHumanTurnNext
		}
		return EventPenTurnNext
	case StateHumanTurn:
		if ev := f.checkStatus(); ev != EventNone {
			return ev
		}
		if from == StateSelectPlayerOrder && f.opts.PlayerOrderDelay > 0 {
			f.after(f.opts.PlayerOrderDelay, func() { f.drawBoard(textYourTurn) })
		} else {
			f.drawBoard(textYourTurn)
		}
	case StatePenTurn:
		if ev := f.checkStatus(); ev != EventNone {
			return ev
		}
		f.drawBoard(textPenTurn)
		cell := f.engine.AITurn()
		f.log.Printf("[fsm] game %s: pen plays %s", f.gameID, engine.CellName(cell))
		return EventPenTurnReady
	case StateEndHumanWins, StateEndPenWins, StateEndDraw:
		r := results[to]
		f.recognizer.Clear()
		f.drawBoard(r.caption)
		f.sound.Play(r.sound)
		f.log.Printf("[fsm] game %s over: %s", f.gameID, f.engine.Status())
		f.after(f.opts.ResultDelay, func() {
			f.display.ShowText(textStartNewGame, true)
			f.sound.Play(SoundStartNewGame)
		})
	case StateEnd:
		f.recognizer.Clear()
	}
	return EventNone
}

func (f *FSM) newGame() {
	f.gameID = uuid.NewString()
	f.board.Reset()
	f.engine.NewGame()
	f.recognizer.Clear()
	f.log.Printf("[fsm] game %s started, level %s", f.gameID, f.engine.Level())
}

// checkStatus returns the end event for a finished game.
func (f *FSM) checkStatus() Event {
	var winner engine.Symbol
	switch f.engine.Status() {
	case engine.XWins:
		winner = engine.X
	case engine.OWins:
		winner = engine.O
	case engine.Draw:
		return EventDraw
	default:
		return EventNone
	}
	if winner == f.engine.HumanSymbol() {
		return EventHumanWins
	}
	return EventPenWins
}

// startStep prompts for the line of drawing step s and blinks it.
func (f *FSM) startStep(s State) {
	f.sound.Play(steps[s].sound)
	f.blink(s, true)
}

func (f *FSM) blink(s State, visible bool) {
	f.drawStep(s, visible)
	if f.opts.BlinkInterval > 0 {
		f.after(f.opts.BlinkInterval, func() { f.blink(s, !visible) })
	}
}

// holdMessage shows msg and, while drawing, returns to the step prompt after
// ResultDelay.
func (f *FSM) holdMessage(msg string) {
	f.stopTimer()
	f.display.ShowText(msg, true)
	if s := f.state; s.Drawing() {
		f.after(f.opts.ResultDelay, func() { f.blink(s, true) })
	}
}

// after schedules fn, replacing any pending call. A replaced call never runs,
// even if the scheduler fails to cancel it.
func (f *FSM) after(d time.Duration, fn func()) {
	f.stopTimer()
	gen := f.timerGen
	f.cancelTimer = f.scheduler.After(d, func() {
		if gen != f.timerGen {
			return
		}
		f.cancelTimer = nil
		fn()
	})
}

func (f *FSM) stopTimer() {
	if f.cancelTimer != nil {
		f.cancelTimer()
		f.cancelTimer = nil
	}
	f.timerGen++
}
