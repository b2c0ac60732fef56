package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictacpen/flow"
)

type displayMode int

const (
	modeBlank displayMode = iota
	modeMenu
	modeText
	modeDrawing
)

// DisplayHeight is the number of terminal rows the pen display needs,
// border included.
const DisplayHeight = (flow.ImageHeight+1)/2 + 2

// DisplayWidth is the number of terminal columns the pen display needs,
// border included.
const DisplayWidth = flow.ImageWidth + 2

// PenDisplay is the pen's small screen. It implements flow.Display.
type PenDisplay struct {
	*tview.Box
	mode    displayMode
	menu    flow.Menu
	items   []string
	focused int
	text    string
	scroll  bool
	offset  int
	image   *Image
	shown   []string
}

// NewPenDisplay creates a blank display.
func NewPenDisplay() *PenDisplay {
	return &PenDisplay{
		Box:   tview.NewBox(),
		image: NewImage(),
	}
}

func (d *PenDisplay) ShowMenu(m flow.Menu, items []string, focused int) {
	d.mode = modeMenu
	d.menu = m
	d.items = items
	d.focused = focused
}

func (d *PenDisplay) ShowText(msg string, scroll bool) {
	d.mode = modeText
	d.text = msg
	d.scroll = scroll
	d.offset = 0
}

func (d *PenDisplay) Canvas() flow.Canvas {
	return d.image
}

// ShowDrawing freezes the current canvas content on screen. Later canvas
// changes stay invisible until the next call.
func (d *PenDisplay) ShowDrawing() {
	d.mode = modeDrawing
	d.shown = d.image.Rows()
}

// Tick advances scrolling text by one line.
func (d *PenDisplay) Tick() {
	if d.mode == modeText && d.scroll {
		d.offset++
	}
}

// Lines returns what the display shows, one string per row, for a display
// of the given inner width and height.
func (d *PenDisplay) Lines(width, height int) []string {
	switch d.mode {
	case modeMenu:
		out := make([]string, 0, len(d.items))
		for i, item := range d.items {
			prefix := "  ○ "
			if i == d.focused {
				prefix = "▸ ● "
			}
			out = append(out, prefix+item)
		}
		return out
	case modeText:
		if width <= 0 || height <= 0 {
			return nil
		}
		lines := tview.WordWrap(d.text, width)
		if !d.scroll || len(lines) <= height {
			return lines
		}
		start := d.offset % (len(lines) - height + 1)
		return lines[start : start+height]
	case modeDrawing:
		return d.shown
	}
	return nil
}

// Draw renders the display inside a rounded frame.
func (d *PenDisplay) Draw(screen tcell.Screen) {
	d.Box.DrawForSubclass(screen, d)
	x, y, width, height := d.GetInnerRect()

	title := "pen"
	if d.mode == modeMenu {
		title = "pen · " + d.menu.String()
	}
	x, y, width, height = drawFrame(screen, x, y, width, height, title, Colors.Display, false)
	if width <= 0 || height <= 0 {
		return
	}

	inkStyle := tcell.StyleDefault.Foreground(Colors.DisplayInk).Background(Colors.Display)
	switch d.mode {
	case modeMenu:
		drawMenu(screen, x+1, y, width-2, height, d.items, d.focused)
	case modeText:
		for i, line := range d.Lines(width-2, height) {
			drawText(screen, x+1, y+i, width-2, line, inkStyle)
		}
	case modeDrawing:
		for i, line := range d.shown {
			if i >= height {
				break
			}
			drawText(screen, x, y+i, width, line, inkStyle)
		}
	}
}
