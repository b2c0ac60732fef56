package ui

import (
	"github.com/gdamore/tcell/v2"
)

// drawFrame fills the rectangle with bg and draws a rounded border with a
// title in the top edge. It returns the area inside the border.
func drawFrame(screen tcell.Screen, x, y, width, height int, title string, bg tcell.Color, focused bool) (int, int, int, int) {
	borderColor := Colors.Border
	if focused {
		borderColor = Colors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(bg)
	bgStyle := tcell.StyleDefault.Background(bg)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}
	if width < 2 || height < 2 {
		return x, y, 0, 0
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if title != "" {
		titleStyle := borderStyle.Bold(true)
		col := x + 2
		for _, ch := range " " + title + " " {
			if col >= x+width-2 {
				break
			}
			screen.SetContent(col, y, ch, nil, titleStyle)
			col++
		}
	}
	return x + 1, y + 1, width - 2, height - 2
}

// drawText writes s at x, y and clips it to width.
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		if col >= x+width {
			return
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
