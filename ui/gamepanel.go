package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"tictacpen/engine"
	"tictacpen/flow"
)

// GameInfoPanel shows the state of the game and its move list beside the
// paper.
type GameInfoPanel struct {
	box  *tview.TextView
	snap flow.Snapshot
	page int
}

// NewGameInfoPanel creates an empty panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:  tview.NewTextView(),
		page: 1,
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSnapshot updates the panel with the latest game snapshot.
func (p *GameInfoPanel) SetSnapshot(s flow.Snapshot) {
	p.snap = s
	p.refresh()
}

// SetPage updates the displayed paper page.
func (p *GameInfoPanel) SetPage(page int) {
	p.page = page
	p.refresh()
}

// Text returns the panel content with colour tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(false)
}

func (p *GameInfoPanel) refresh() {
	var b strings.Builder
	s := p.snap

	b.WriteString("[white::b]Game Info[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if s.GameID != "" {
		fmt.Fprintf(&b, "[white]Game:[-:-:-]  %s\n", shortID(s.GameID))
	}
	fmt.Fprintf(&b, "[white]Level:[-:-:-] %s\n", s.Level)
	fmt.Fprintf(&b, "[white]Page:[-:-:-]  %d\n", p.page)
	fmt.Fprintf(&b, "[white]State:[-:-:-] %s\n", s.State)
	if s.State.Playing() || s.State.GameOver() {
		fmt.Fprintf(&b, "[white]Result:[-:-:-] %s\n", s.Status)
		b.WriteString("\n")
		for _, row := range s.Board {
			fmt.Fprintf(&b, "  %s\n", strings.Join(strings.Split(row, ""), " "))
		}
	}

	if len(s.Moves) > 0 {
		b.WriteString("\n[white::b]Moves[-:-:-]\n")
		b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		for i, m := range s.Moves {
			marker := " "
			if i == len(s.Moves)-1 {
				marker = "[white]>[-]"
			}
			who := "[white]X[-]"
			if m.Symbol == engine.O {
				who = "[dimgray]O[-]"
			}
			fmt.Fprintf(&b, "%s[dimgray]%2d.[-] %s %s\n", marker, i+1, who, engine.CellName(m.Cell))
		}
	}
	p.box.SetText(b.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// CreateGameLayout places the paper with the info panel on its right above
// the pen display and the hint line.
func CreateGameLayout(paper *Paper, panel *GameInfoPanel, display *PenDisplay, hint *tview.TextView) *tview.Flex {
	top := tview.NewFlex().SetDirection(tview.FlexColumn)
	top.AddItem(paper, 0, 1, true)
	top.AddItem(panel.Box(), 26, 0, false)

	bottom := tview.NewFlex().SetDirection(tview.FlexColumn)
	bottom.AddItem(display, DisplayWidth, 0, false)
	bottom.AddItem(hint, 0, 1, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(top, 0, 1, true)
	mainFlex.AddItem(bottom, DisplayHeight, 0, false)
	return mainFlex
}
