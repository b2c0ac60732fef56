package ui

import (
	"github.com/gdamore/tcell/v2"
)

// drawMenu renders menu items one per row with a bullet, highlighting the
// focused one. It returns the number of rows used.
func drawMenu(screen tcell.Screen, x, y, width, height int, items []string, focused int) int {
	itemStyle := tcell.StyleDefault.Foreground(Colors.DisplayInk).Background(Colors.Display)
	focusStyle := tcell.StyleDefault.Foreground(Colors.MenuFocusFG).Background(Colors.MenuFocusBG).Bold(true)

	// Keep the focused item visible on short displays.
	first := 0
	if focused >= height {
		first = focused - height + 1
	}

	row := y
	for i := first; i < len(items) && row < y+height; i++ {
		style := itemStyle
		cursor, bullet := ' ', '○'
		if i == focused {
			style = focusStyle
			cursor, bullet = '▸', '●'
		}
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
		screen.SetContent(x, row, cursor, nil, style)
		screen.SetContent(x+2, row, bullet, nil, style)
		drawText(screen, x+4, row, width-4, items[i], style)
		row++
	}
	return row - y
}
