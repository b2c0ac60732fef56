package ui

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictacpen/config"
	"tictacpen/types"
)

// Paper is the drawing surface. Mouse drags become strokes in device units.
// Every page keeps its own ink.
type Paper struct {
	*tview.Box
	pages    map[int][]types.Stroke
	page     int
	current  types.Stroke
	drawing  bool
	colUnits int
	rowUnits int
	log      *log.Logger

	// OnStroke receives every completed stroke.
	OnStroke func(types.Stroke)
	// OnPageChanged is called after the page number changed.
	OnPageChanged func(page int)
}

// NewPaper creates page 1 of an empty pad. The config maps one terminal cell
// onto paper millimetres.
func NewPaper(c *config.Config, logger *log.Logger) *Paper {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	unit := func(mm float64) int {
		u := int(math.Round(mm * c.Geometry.UnitsPerMM))
		if u < 1 {
			u = 1
		}
		return u
	}
	return &Paper{
		Box:      tview.NewBox(),
		pages:    make(map[int][]types.Stroke),
		page:     1,
		colUnits: unit(c.Paper.ColumnMM),
		rowUnits: unit(c.Paper.RowMM),
		log:      logger,
	}
}

// ToDevice maps a cell, relative to the top-left of the paper, to the device
// units of its centre.
func (p *Paper) ToDevice(col, row int) types.Point {
	return types.Point{
		X: col*p.colUnits + p.colUnits/2,
		Y: row*p.rowUnits + p.rowUnits/2,
	}
}

// ToCell maps device units back to a cell relative to the top-left of the
// paper.
func (p *Paper) ToCell(pt types.Point) (int, int) {
	return floorDiv(pt.X, p.colUnits), floorDiv(pt.Y, p.rowUnits)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Page returns the current page number, starting at 1.
func (p *Paper) Page() int {
	return p.page
}

// Strokes returns the ink of the current page.
func (p *Paper) Strokes() []types.Stroke {
	return p.pages[p.page]
}

// NextPage turns to the next page.
func (p *Paper) NextPage() {
	p.turn(p.page + 1)
}

// PrevPage turns back one page. Page 1 has no predecessor.
func (p *Paper) PrevPage() {
	if p.page > 1 {
		p.turn(p.page - 1)
	}
}

func (p *Paper) turn(page int) {
	p.drawing = false
	p.current = nil
	p.page = page
	p.log.Printf("[ui] page %d", page)
	if p.OnPageChanged != nil {
		p.OnPageChanged(page)
	}
}

// ClearInk wipes the current page.
func (p *Paper) ClearInk() {
	delete(p.pages, p.page)
}

// Begin starts a stroke at a paper-relative cell.
func (p *Paper) Begin(col, row int) {
	p.drawing = true
	p.current = types.Stroke{p.ToDevice(col, row)}
}

// Extend adds a vertex to the stroke in progress.
func (p *Paper) Extend(col, row int) {
	if !p.drawing {
		return
	}
	pt := p.ToDevice(col, row)
	if pt == p.current[len(p.current)-1] {
		return
	}
	p.current = append(p.current, pt)
}

// Finish completes the stroke in progress and hands it to OnStroke.
func (p *Paper) Finish(col, row int) {
	if !p.drawing {
		return
	}
	p.Extend(col, row)
	s := p.current
	p.drawing = false
	p.current = nil
	p.pages[p.page] = append(p.pages[p.page], s)
	first, last := s[0], s[len(s)-1]
	p.log.Printf("[ui] stroke of %d vertices %v-%v on page %d", len(s), first, last, p.page)
	if p.OnStroke != nil {
		p.OnStroke(s)
	}
}

// MouseHandler turns left button drags into strokes. The paper captures the
// mouse until the button is released.
func (p *Paper) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return p.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := event.Position()
		ix, iy, _, _ := p.GetInnerRect()
		col, row := x-ix, y-iy
		switch action {
		case tview.MouseLeftDown:
			if !p.InRect(x, y) {
				return false, nil
			}
			setFocus(p)
			p.Begin(col, row)
			return true, p
		case tview.MouseMove:
			if p.drawing {
				p.Extend(col, row)
				return true, p
			}
		case tview.MouseLeftUp:
			if p.drawing {
				p.Finish(col, row)
				return true, nil
			}
		}
		return false, nil
	})
}

// Draw renders the ink of the current page.
func (p *Paper) Draw(screen tcell.Screen) {
	p.Box.DrawForSubclass(screen, p)
	x, y, width, height := p.GetInnerRect()
	title := fmt.Sprintf("paper · page %d", p.page)
	drawFrame(screen, x, y, width, height, title, Colors.Paper, p.HasFocus())

	// Strokes use the coordinates of the whole inner rect; the frame hides
	// the outermost cells.
	inkStyle := tcell.StyleDefault.Foreground(Colors.Ink).Background(Colors.Paper)
	plot := func(col, row int) {
		if col <= 0 || row <= 0 || col >= width-1 || row >= height-1 {
			return
		}
		screen.SetContent(x+col, y+row, Symbols.Ink, nil, inkStyle)
	}
	strokes := p.pages[p.page]
	if p.drawing {
		strokes = append(strokes[:len(strokes):len(strokes)], p.current)
	}
	for _, s := range strokes {
		for i, pt := range s {
			col, row := p.ToCell(pt)
			if i == 0 {
				plot(col, row)
				continue
			}
			pc, pr := p.ToCell(s[i-1])
			plotSegment(pc, pr, col, row, plot)
		}
	}
}

// plotSegment calls plot for every cell on the segment between two cells.
func plotSegment(c1, r1, c2, r2 int, plot func(col, row int)) {
	steps := abs(c2 - c1)
	if d := abs(r2 - r1); d > steps {
		steps = d
	}
	if steps == 0 {
		plot(c1, r1)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c1 + int(math.Round(t*float64(c2-c1)))
		row := r1 + int(math.Round(t*float64(r2-r1)))
		plot(col, row)
	}
}
