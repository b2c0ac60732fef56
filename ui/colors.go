package ui

import (
	"github.com/gdamore/tcell/v2"

	"tictacpen/config"
)

// Colors is the palette of the paper and the pen display.
var Colors = struct {
	Paper       tcell.Color // Paper background
	Ink         tcell.Color // Strokes on the paper
	Display     tcell.Color // Pen display background
	DisplayInk  tcell.Color // Pen display pixels and text
	MenuFocusFG tcell.Color // Focused menu item
	MenuFocusBG tcell.Color
	Border      tcell.Color // Muted blue-gray for frames
	BorderFocus tcell.Color // Frame of the focused panel
	Hint        tcell.Color // Dim gray for hints
}{
	Paper:       tcell.PaletteColor(230),
	Ink:         tcell.PaletteColor(19),
	Display:     tcell.PaletteColor(22),
	DisplayInk:  tcell.PaletteColor(120),
	MenuFocusFG: tcell.PaletteColor(22),
	MenuFocusBG: tcell.PaletteColor(120),
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	Hint:        tcell.PaletteColor(245),
}

// Symbols are the runes used to draw ink and display pixels.
var Symbols = config.DefaultTheme.Symbols

// SetTheme applies the colours and symbols of a config theme.
func SetTheme(t config.Theme) {
	Colors.Paper = tcell.PaletteColor(t.Colors.Paper)
	Colors.Ink = tcell.PaletteColor(t.Colors.Ink)
	Colors.Display = tcell.PaletteColor(t.Colors.Display)
	Colors.DisplayInk = tcell.PaletteColor(t.Colors.DisplayInk)
	Colors.MenuFocusFG = tcell.PaletteColor(t.Colors.MenuFocusFG)
	Colors.MenuFocusBG = tcell.PaletteColor(t.Colors.MenuFocusBG)
	Colors.Hint = tcell.PaletteColor(t.Colors.Hint)
	Symbols = t.Symbols
}
