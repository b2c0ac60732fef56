// Package ui is the terminal host of the pen game. It draws the paper, the pen
// display and the info panel with tview, and turns terminal input into game
// flow events.
package ui

import (
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictacpen/config"
	"tictacpen/flow"
	"tictacpen/types"
)

// scrollInterval is how often long texts on the pen display scroll.
const scrollInterval = 1500 * time.Millisecond

// Host implements the display, sound and scheduler collaborators of the game
// flow on top of a tview application.
type Host struct {
	app        *tview.Application
	cfg        *config.Config
	log        *log.Logger
	screen     tcell.Screen
	fsm        *flow.FSM
	done       chan struct{}
	Display    *PenDisplay
	Paper      *Paper
	Panel      *GameInfoPanel
	Hint       *tview.TextView
	Recognizer *Recognizer
	Layout     *tview.Flex
}

// NewHost builds the widgets. The host and its Recognizer are passed to
// flow.New; call Bind with the result before running the application.
func NewHost(app *tview.Application, c *config.Config, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	SetTheme(c.Theme)

	h := &Host{
		app:     app,
		cfg:     c,
		log:     logger,
		done:    make(chan struct{}),
		Display: NewPenDisplay(),
		Paper:   NewPaper(c, logger),
		Panel:   NewGameInfoPanel(),
		Hint:    tview.NewTextView(),
	}
	h.Recognizer = NewRecognizer(
		c.Game.RecognizePauseDuration(),
		func(fn func()) { app.QueueUpdateDraw(fn) },
		func(symbol string, box types.Rect) {
			if h.fsm != nil {
				h.fsm.OnHandwritingResult(symbol, box)
			}
		},
		logger,
	)
	h.Hint.SetDynamicColors(true)
	h.Hint.SetBorder(true)
	h.Hint.SetBorderPadding(0, 0, 1, 1)
	h.Hint.SetTitle(" Status ")
	h.Hint.SetTitleAlign(tview.AlignLeft)
	h.showControls()

	h.Layout = CreateGameLayout(h.Paper, h.Panel, h.Display, h.Hint)
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		h.screen = screen
		return false
	})
	return h
}

// Bind connects the host to the game flow and installs the input handlers.
func (h *Host) Bind(f *flow.FSM) {
	h.fsm = f
	h.Paper.OnStroke = f.OnStrokeCompleted
	h.Paper.OnPageChanged = func(page int) {
		h.Panel.SetPage(page)
		f.OnPageChanged()
	}
	h.app.SetInputCapture(h.handleKey)
}

func (h *Host) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if h.fsm == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyUp:
		h.fsm.OnMenuUp()
	case tcell.KeyDown:
		h.fsm.OnMenuDown()
	case tcell.KeyLeft:
		if !h.fsm.OnMenuLeft() {
			return event
		}
	case tcell.KeyRight:
		h.fsm.OnMenuRight()
	case tcell.KeyEnter:
		h.Recognizer.Flush()
	case tcell.KeyPgDn:
		h.Paper.NextPage()
	case tcell.KeyPgUp:
		h.Paper.PrevPage()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			h.fsm.OnMenuUp()
		case 'j':
			h.fsm.OnMenuDown()
		case 'h':
			if !h.fsm.OnMenuLeft() {
				return event
			}
		case 'l':
			h.fsm.OnMenuRight()
		case 'c':
			h.Paper.ClearInk()
		case 'q':
			h.Stop()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// Start shows the main menu and starts scrolling long texts.
func (h *Host) Start() {
	go func() {
		t := time.NewTicker(scrollInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				h.app.QueueUpdateDraw(h.Display.Tick)
			case <-h.done:
				return
			}
		}
	}()
	h.fsm.OnApplicationStart()
}

// Stop ends the game flow and the application.
func (h *Host) Stop() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}
	h.Recognizer.Clear()
	h.fsm.OnApplicationEnd()
	h.app.Stop()
}

// Observe updates the info panel. Use it as the flow observer.
func (h *Host) Observe(s flow.Snapshot) {
	h.Panel.SetSnapshot(s)
}

// Play announces a prompt: a terminal bell and its name in the hint line.
func (h *Host) Play(key flow.SoundKey) {
	h.log.Printf("[ui] sound %s", key)
	if !h.cfg.Sound.Enabled {
		return
	}
	if h.screen != nil {
		h.screen.Beep()
	}
	if h.cfg.Sound.ShowHints {
		h.Hint.SetText("[yellow]♪[-] " + string(key))
	}
}

// After runs fn on the UI goroutine once d has passed, unless cancelled
// first.
func (h *Host) After(d time.Duration, fn func()) func() {
	cancelled := false
	t := time.AfterFunc(d, func() {
		h.app.QueueUpdateDraw(func() {
			if !cancelled {
				fn()
			}
		})
	})
	return func() {
		cancelled = true
		t.Stop()
	}
}

func (h *Host) showControls() {
	h.Hint.SetText(`[dimgray]hjkl/↑↓←→ menu   drag to draw   ⏎ read mark
PgUp/PgDn page   c clear ink   q quit[-]`)
}

var (
	_ flow.Display    = (*PenDisplay)(nil)
	_ flow.Canvas     = (*Image)(nil)
	_ flow.Recognizer = (*Recognizer)(nil)
	_ flow.Sound      = (*Host)(nil)
	_ flow.Scheduler  = (*Host)(nil)
)
