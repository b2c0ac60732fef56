package flow

import "tictacpen/engine"

// Size of the pen display image in pixels.
const (
	ImageWidth  = 96
	ImageHeight = 18
)

// captionX is where turn and result captions start.
const captionX = 25

// gridLines holds the four board lines of the display pictogram in drawing
// order.
var gridLines = [4][4]int{
	{5, 1, 5, 17},
	{11, 1, 11, 17},
	{0, 6, 16, 6},
	{0, 12, 16, 12},
}

// markOrigins holds the top-left pixel of the 3x3 mark area of each cell.
var markOrigins = [10][2]int{
	{0, 0},
	{1, 2}, {7, 2}, {13, 2},
	{1, 8}, {7, 8}, {13, 8},
	{1, 14}, {7, 14}, {13, 14},
}

func drawGridLines(c Canvas, n int) {
	for _, l := range gridLines[:n] {
		c.DrawLine(l[0], l[1], l[2], l[3])
	}
}

func drawMarks(c Canvas, fields [10]engine.Symbol) {
	for cell := 1; cell <= 9; cell++ {
		x, y := markOrigins[cell][0], markOrigins[cell][1]
		switch fields[cell] {
		case engine.X:
			c.DrawLine(x, y, x+2, y+2)
			c.DrawLine(x, y+2, x+2, y)
		case engine.O:
			c.FillRect(x, y, 3, 3)
		}
	}
}

// drawStep renders drawing step s: the accepted lines, the pending one when
// visible, and the step caption.
func (f *FSM) drawStep(s State, visible bool) {
	st := steps[s]
	c := f.display.Canvas()
	c.Clear()
	n := int(st.slot)
	if visible {
		n++
	}
	drawGridLines(c, n)
	c.DrawString(st.caption, st.x, 2)
	f.display.ShowDrawing()
}

// drawBoard renders the full board with the current marks and a caption.
func (f *FSM) drawBoard(caption string) {
	c := f.display.Canvas()
	c.Clear()
	drawGridLines(c, len(gridLines))
	drawMarks(c, f.engine.Fields())
	c.DrawString(caption, captionX, 2)
	f.display.ShowDrawing()
}
