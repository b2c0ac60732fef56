package flow

import "fmt"

// State is a game flow state. Exactly one is current at any time.
type State int

const (
	StateStart State = iota
	StateMainMenuStartGame
	StateMainMenuHelp
	StateMainMenuAbout
	StateMainMenuAboutDisplayed
	StateHelpMenuRules
	StateHelpMenuRulesDisplayed
	StateHelpMenuHowToDrawBoard
	StateHelpMenuHowToDrawBoardDisplayed
	StateHelpMenuHowToPlay
	StateHelpMenuHowToPlayDisplayed
	StateLevelMenuEasy
	StateLevelMenuHard
	StateDrawFirstVerticalLine
	StateDrawSecondVerticalLine
	StateDrawFirstHorizontalLine
	StateDrawSecondHorizontalLine
	StateSelectPlayerOrder
	StateHumanTurn
	StatePenTurn
	StateEndHumanWins
	StateEndPenWins
	StateEndDraw
	StateEnd
)

var stateNames = [...]string{
	StateStart:                           "start",
	StateMainMenuStartGame:               "main-menu/start-game",
	StateMainMenuHelp:                    "main-menu/help",
	StateMainMenuAbout:                   "main-menu/about",
	StateMainMenuAboutDisplayed:          "main-menu/about (shown)",
	StateHelpMenuRules:                   "help-menu/rules",
	StateHelpMenuRulesDisplayed:          "help-menu/rules (shown)",
	StateHelpMenuHowToDrawBoard:          "help-menu/how-to-draw-board",
	StateHelpMenuHowToDrawBoardDisplayed: "help-menu/how-to-draw-board (shown)",
	StateHelpMenuHowToPlay:               "help-menu/how-to-play",
	StateHelpMenuHowToPlayDisplayed:      "help-menu/how-to-play (shown)",
	StateLevelMenuEasy:                   "level-menu/easy",
	StateLevelMenuHard:                   "level-menu/hard",
	StateDrawFirstVerticalLine:           "draw/first-vertical-line",
	StateDrawSecondVerticalLine:          "draw/second-vertical-line",
	StateDrawFirstHorizontalLine:         "draw/first-horizontal-line",
	StateDrawSecondHorizontalLine:        "draw/second-horizontal-line",
	StateSelectPlayerOrder:               "game/select-player-order",
	StateHumanTurn:                       "game/human-turn",
	StatePenTurn:                         "game/pen-turn",
	StateEndHumanWins:                    "game/end-human-wins",
	StateEndPenWins:                      "game/end-pen-wins",
	StateEndDraw:                         "game/end-draw",
	StateEnd:                             "end",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Drawing reports whether the player is drawing the board.
func (s State) Drawing() bool {
	return s >= StateDrawFirstVerticalLine && s <= StateDrawSecondHorizontalLine
}

// Playing reports whether a game is in progress.
func (s State) Playing() bool {
	return s == StateSelectPlayerOrder || s == StateHumanTurn || s == StatePenTurn
}

// GameOver reports whether the state shows a game result.
func (s State) GameOver() bool {
	return s == StateEndHumanWins || s == StateEndPenWins || s == StateEndDraw
}

var (
	endStates     = []State{StateEndHumanWins, StateEndPenWins, StateEndDraw}
	drawingStates = []State{StateDrawFirstVerticalLine, StateDrawSecondVerticalLine, StateDrawFirstHorizontalLine, StateDrawSecondHorizontalLine}
	turnStates    = []State{StateSelectPlayerOrder, StateHumanTurn, StatePenTurn}
)

func concat(groups ...[]State) []State {
	var out []State
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// arrivals lists, per target state, the states it may be entered from.
// StateEnd is reachable from everywhere and is not listed.
var arrivals = map[State][]State{
	StateMainMenuStartGame:               concat([]State{StateStart, StateLevelMenuEasy, StateLevelMenuHard, StateMainMenuHelp}, endStates),
	StateMainMenuHelp:                    {StateMainMenuStartGame, StateMainMenuAbout, StateHelpMenuRules, StateHelpMenuHowToDrawBoard, StateHelpMenuHowToPlay},
	StateMainMenuAbout:                   {StateMainMenuHelp, StateMainMenuAboutDisplayed},
	StateMainMenuAboutDisplayed:          {StateMainMenuAbout},
	StateLevelMenuEasy:                   {StateMainMenuStartGame, StateLevelMenuHard},
	StateLevelMenuHard:                   {StateLevelMenuEasy},
	StateHelpMenuRules:                   {StateMainMenuHelp, StateHelpMenuRulesDisplayed, StateHelpMenuHowToDrawBoard},
	StateHelpMenuRulesDisplayed:          {StateHelpMenuRules},
	StateHelpMenuHowToDrawBoard:          {StateHelpMenuRules, StateHelpMenuHowToPlay, StateHelpMenuHowToDrawBoardDisplayed},
	StateHelpMenuHowToDrawBoardDisplayed: {StateHelpMenuHowToDrawBoard},
	StateHelpMenuHowToPlay:               {StateHelpMenuHowToDrawBoard, StateHelpMenuHowToPlayDisplayed},
	StateHelpMenuHowToPlayDisplayed:      {StateHelpMenuHowToPlay},
	StateDrawFirstVerticalLine:           concat([]State{StateLevelMenuEasy, StateLevelMenuHard}, endStates, drawingStates, turnStates),
	StateDrawSecondVerticalLine:          {StateDrawFirstVerticalLine},
	StateDrawFirstHorizontalLine:         {StateDrawSecondVerticalLine},
	StateDrawSecondHorizontalLine:        {StateDrawFirstHorizontalLine},
	StateSelectPlayerOrder:               {StateDrawSecondHorizontalLine},
	StateHumanTurn:                       {StateSelectPlayerOrder, StatePenTurn},
	StatePenTurn:                         {StateSelectPlayerOrder, StateHumanTurn},
	StateEndHumanWins:                    {StateHumanTurn, StatePenTurn},
	StateEndPenWins:                      {StateHumanTurn, StatePenTurn},
	StateEndDraw:                         {StateHumanTurn, StatePenTurn},
}

// allowed reports whether to may be entered from from.
func allowed(from, to State) bool {
	if to == StateEnd {
		return from != StateEnd
	}
	for _, s := range arrivals[to] {
		if s == from {
			return true
		}
	}
	return false
}

// Menu navigation. A state absent from a map ignores that key.
var (
	menuDown = map[State]State{
		StateMainMenuStartGame:      StateMainMenuHelp,
		StateMainMenuHelp:           StateMainMenuAbout,
		StateHelpMenuRules:          StateHelpMenuHowToDrawBoard,
		StateHelpMenuHowToDrawBoard: StateHelpMenuHowToPlay,
		StateLevelMenuEasy:          StateLevelMenuHard,
	}
	menuUp = map[State]State{
		StateMainMenuHelp:           StateMainMenuStartGame,
		StateMainMenuAbout:          StateMainMenuHelp,
		StateHelpMenuHowToDrawBoard: StateHelpMenuRules,
		StateHelpMenuHowToPlay:      StateHelpMenuHowToDrawBoard,
		StateLevelMenuHard:          StateLevelMenuEasy,
	}
	menuLeft = map[State]State{
		StateLevelMenuEasy:                   StateMainMenuStartGame,
		StateLevelMenuHard:                   StateMainMenuStartGame,
		StateHelpMenuRules:                   StateMainMenuHelp,
		StateHelpMenuHowToDrawBoard:          StateMainMenuHelp,
		StateHelpMenuHowToPlay:               StateMainMenuHelp,
		StateMainMenuAboutDisplayed:          StateMainMenuAbout,
		StateHelpMenuRulesDisplayed:          StateHelpMenuRules,
		StateHelpMenuHowToDrawBoardDisplayed: StateHelpMenuHowToDrawBoard,
		StateHelpMenuHowToPlayDisplayed:      StateHelpMenuHowToPlay,
		StateEndHumanWins:                    StateMainMenuStartGame,
		StateEndPenWins:                      StateMainMenuStartGame,
		StateEndDraw:                         StateMainMenuStartGame,
	}
	menuRight = map[State]State{
		StateMainMenuStartGame:      StateLevelMenuEasy,
		StateMainMenuHelp:           StateHelpMenuRules,
		StateMainMenuAbout:          StateMainMenuAboutDisplayed,
		StateHelpMenuRules:          StateHelpMenuRulesDisplayed,
		StateHelpMenuHowToDrawBoard: StateHelpMenuHowToDrawBoardDisplayed,
		StateHelpMenuHowToPlay:      StateHelpMenuHowToPlayDisplayed,
		StateLevelMenuEasy:          StateDrawFirstVerticalLine,
		StateLevelMenuHard:          StateDrawFirstVerticalLine,
	}
)
