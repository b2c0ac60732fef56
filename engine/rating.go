package engine

import "math/rand"

// Line contents, keyed by the sum of a line where a human mark counts 1 and a
// pen mark counts 4. Mixed lines sum to values no rule looks at.
const (
	lineEmpty      = 0
	lineHumanOne   = 1
	lineHumanTwo   = 2
	linePenOne     = 4
	linePenTwo     = 8
	humanLineValue = 1
	penLineValue   = 4
)

// Weights scores the patterns a cell can complete.
type Weights struct {
	Available    int // the cell is empty
	ShareHuman   int // an empty line crosses a line with one human mark
	SharePen     int // an empty line crosses a line with one pen mark
	BlockFork    int // two lines with one human mark cross here
	Fork         int // two lines with one pen mark cross here
	BlockLine    int // a line holds two human marks
	CompleteLine int // a line holds two pen marks
}

// DefaultWeights is the table the pen plays with.
var DefaultWeights = Weights{
	Available:    1,
	ShareHuman:   10,
	SharePen:     100,
	BlockFork:    1000,
	Fork:         10000,
	BlockLine:    100000,
	CompleteLine: 1000000,
}

// cellLines lists the lines through each cell as indexes into lines. The
// order matters: a pattern is scored against the lines already visited for
// the same cell.
var cellLines = [10][]int{
	1: {0, 3, 6},
	2: {0, 4},
	3: {0, 5, 7},
	4: {1, 3},
	5: {1, 4, 6, 7},
	6: {1, 5},
	7: {2, 3, 7},
	8: {2, 4},
	9: {2, 5, 6},
}

// rate scores every empty cell for the pen. Occupied cells score zero.
func rate(fields [10]Symbol, human, pen Symbol) [10]int {
	return rateWith(DefaultWeights, fields, human, pen)
}

func rateWith(w Weights, fields [10]Symbol, human, pen Symbol) [10]int {
	var sums [8]int
	for i, l := range lines {
		for _, c := range l {
			switch fields[c] {
			case human:
				sums[i] += humanLineValue
			case pen:
				sums[i] += penLineValue
			}
		}
	}

	var ratings [10]int
	addLine := func(line, amount, skip int, emptyOnly bool) {
		for _, c := range lines[line] {
			if c == skip || (emptyOnly && fields[c] != Empty) {
				continue
			}
			ratings[c] += amount
		}
	}

	for cell := 1; cell <= 9; cell++ {
		if fields[cell] != Empty {
			continue
		}
		ratings[cell] += w.Available

		var empties, humanOnes, penOnes []int
		for _, line := range cellLines[cell] {
			switch sums[line] {
			case lineEmpty:
				empties = append(empties, line)
				for range penOnes {
					addLine(line, w.SharePen, cell, false)
				}
				for _, other := range humanOnes {
					addLine(line, w.ShareHuman, 0, false)
					addLine(other, w.ShareHuman, cell, true)
				}
			case lineHumanOne:
				humanOnes = append(humanOnes, line)
				if len(humanOnes) > 1 {
					ratings[cell] += w.BlockFork
					for _, other := range humanOnes {
						addLine(other, w.BlockFork, cell, true)
					}
				}
				for _, other := range empties {
					addLine(line, w.ShareHuman, 0, true)
					addLine(other, w.ShareHuman, cell, true)
				}
			case lineHumanTwo:
				ratings[cell] += w.BlockLine
			case linePenOne:
				penOnes = append(penOnes, line)
				if len(penOnes) > 1 {
					ratings[cell] += w.Fork
				}
				for _, other := range empties {
					addLine(other, w.SharePen, cell, false)
				}
			case linePenTwo:
				ratings[cell] += w.CompleteLine
			}
		}
	}
	return ratings
}

// pickWeighted draws a cell with probability proportional to its rating.
func pickWeighted(ratings [10]int, rnd *rand.Rand) int {
	total := 0
	for c := 1; c <= 9; c++ {
		total += ratings[c]
	}
	if total == 0 {
		return -1
	}
	r := rnd.Intn(total) + 1
	for c := 1; c <= 9; c++ {
		r -= ratings[c]
		if r <= 0 {
			return c
		}
	}
	return -1
}

// pickBest draws uniformly among the empty cells with the highest rating.
func pickBest(ratings [10]int, fields [10]Symbol, rnd *rand.Rand) int {
	best := -1
	var tied []int
	for c := 1; c <= 9; c++ {
		if fields[c] != Empty {
			continue
		}
		switch {
		case ratings[c] > best:
			best = ratings[c]
			tied = append(tied[:0], c)
		case ratings[c] == best:
			tied = append(tied, c)
		}
	}
	if len(tied) == 0 {
		return -1
	}
	return tied[rnd.Intn(len(tied))]
}
