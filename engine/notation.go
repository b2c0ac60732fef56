package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell notation:
// - Columns: A-C (left to right)
// - Rows: 1-3 (top to bottom)
// - Example: A1 is cell 1, B2 is cell 5, C3 is cell 9

// CellName converts a cell index (1-9) to notation, or "--" when out of range.
func CellName(cell int) string {
	if cell < 1 || cell > 9 {
		return "--"
	}
	col := 'A' + rune((cell-1)%3)
	row := (cell-1)/3 + 1
	return fmt.Sprintf("%c%d", col, row)
}

// ParseCell converts notation such as "b2" to a cell index.
func ParseCell(name string) (int, error) {
	name = strings.TrimSpace(strings.ToUpper(name))
	if len(name) != 2 {
		return 0, fmt.Errorf("invalid cell: %q", name)
	}

	col := int(name[0] - 'A')
	if name[0] < 'A' || col > 2 {
		return 0, fmt.Errorf("invalid column in cell: %q", name)
	}

	row, err := strconv.Atoi(name[1:])
	if err != nil || row < 1 || row > 3 {
		return 0, fmt.Errorf("invalid row in cell: %q", name)
	}

	return (row-1)*3 + col + 1, nil
}
