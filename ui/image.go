package ui

import (
	"strings"

	"tictacpen/flow"
)

// textItem is a string drawn on the image at a pixel position.
type textItem struct {
	s    string
	x, y int
}

// Image is the monochrome pen display image. Pixels outside the image are
// dropped. Strings are kept as text and rendered by the terminal, since the
// display has no font of its own.
type Image struct {
	pix   [flow.ImageHeight][flow.ImageWidth]bool
	texts []textItem
}

// NewImage returns a blank image.
func NewImage() *Image {
	return &Image{}
}

func (m *Image) Clear() {
	m.pix = [flow.ImageHeight][flow.ImageWidth]bool{}
	m.texts = nil
}

func (m *Image) set(x, y int) {
	if x < 0 || y < 0 || x >= flow.ImageWidth || y >= flow.ImageHeight {
		return
	}
	m.pix[y][x] = true
}

// DrawLine draws a one pixel wide line with Bresenham's algorithm.
func (m *Image) DrawLine(x1, y1, x2, y2 int) {
	dx, sx := abs(x2-x1), 1
	if x1 > x2 {
		sx = -1
	}
	dy, sy := -abs(y2-y1), 1
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		m.set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func (m *Image) FillRect(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			m.set(col, row)
		}
	}
}

func (m *Image) DrawString(s string, x, y int) {
	m.texts = append(m.texts, textItem{s, x, y})
}

// Pixel reports whether the pixel at x, y is set.
func (m *Image) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= flow.ImageWidth || y >= flow.ImageHeight {
		return false
	}
	return m.pix[y][x]
}

// Rows renders the image with half-block characters, two pixel rows per text
// row, and overlays the strings.
func (m *Image) Rows() []string {
	rows := make([][]rune, (flow.ImageHeight+1)/2)
	for r := range rows {
		rows[r] = make([]rune, flow.ImageWidth)
		for x := range rows[r] {
			rows[r][x] = halfBlock(m.Pixel(x, 2*r), m.Pixel(x, 2*r+1))
		}
	}
	for _, t := range m.texts {
		r := t.y / 2
		if r < 0 || r >= len(rows) {
			continue
		}
		for i, ch := range []rune(t.s) {
			if x := t.x + i; x >= 0 && x < flow.ImageWidth {
				rows[r][x] = ch
			}
		}
	}
	out := make([]string, len(rows))
	for r, row := range rows {
		out[r] = strings.TrimRight(string(row), " ")
	}
	return out
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
