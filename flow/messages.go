package flow

import "tictacpen/board"

// SoundKey names a recorded prompt.
type SoundKey string

const (
	SoundTitle              SoundKey = "tick-tack-toe"
	SoundStartGame          SoundKey = "start-game"
	SoundHelp               SoundKey = "help"
	SoundAbout              SoundKey = "about"
	SoundRules              SoundKey = "rules"
	SoundHowToDrawBoard     SoundKey = "how-to-draw-game-board"
	SoundHowToPlay          SoundKey = "how-to-play-the-game"
	SoundEasy               SoundKey = "easy"
	SoundHard               SoundKey = "hard"
	SoundDrawFirstVertical  SoundKey = "please-draw-first-vertical-line"
	SoundDrawSecondVertical SoundKey = "please-draw-second-vertical-line"
	SoundDrawFirstHoriz     SoundKey = "please-draw-first-horizontal-line"
	SoundDrawSecondHoriz    SoundKey = "please-draw-second-horizontal-line"
	SoundYourTurn           SoundKey = "crosses-is-yours-make-your-turn"
	SoundYouWin             SoundKey = "congratulations-you-win"
	SoundPenWins            SoundKey = "sorry-but-pen-wins"
	SoundDraw               SoundKey = "the-game-ends-with-a-draw"
	SoundStartNewGame       SoundKey = "to-start-new-game-start-drawing"
	SoundLineTooShort       SoundKey = "line-is-to-short"
	SoundLineNotVertical    SoundKey = "line-is-not-vertical"
	SoundLineNotHorizontal  SoundKey = "line-is-not-horizontal"
	SoundLineMustBeRight    SoundKey = "line-must-be-at-the-right"
	SoundLineMustBeBottom   SoundKey = "line-must-be-at-the-bottom"
	SoundLineMustBeNear     SoundKey = "line-must-be-near"
	SoundLineMustCross      SoundKey = "line-must-cross"
)

var (
	mainMenuItems  = []string{"Start game", "Help", "About"}
	helpMenuItems  = []string{"Rules", "How to draw game board", "How to play the game"}
	levelMenuItems = []string{"Easy", "Hard"}
)

// Items returns the labels of menu m.
func Items(m Menu) []string {
	switch m {
	case MenuHelp:
		return helpMenuItems
	case MenuLevel:
		return levelMenuItems
	}
	return mainMenuItems
}

type menuItem struct {
	menu  Menu
	index int
	sound SoundKey
}

var menuItems = map[State]menuItem{
	StateMainMenuStartGame:      {MenuMain, 0, SoundStartGame},
	StateMainMenuHelp:           {MenuMain, 1, SoundHelp},
	StateMainMenuAbout:          {MenuMain, 2, SoundAbout},
	StateHelpMenuRules:          {MenuHelp, 0, SoundRules},
	StateHelpMenuHowToDrawBoard: {MenuHelp, 1, SoundHowToDrawBoard},
	StateHelpMenuHowToPlay:      {MenuHelp, 2, SoundHowToPlay},
	StateLevelMenuEasy:          {MenuLevel, 0, SoundEasy},
	StateLevelMenuHard:          {MenuLevel, 1, SoundHard},
}

const (
	textAbout = "Tic Tac Toe game. Version 1.0 Copyright Difane Group"

	textRules = "The object of Tic Tac Toe is to get three in a row. You play on a three by three game board. " +
		"The first player is known as X and the second is O. X always goes first. " +
		"Players alternate placing Xs and Os on the game board until either one player has three in a row, " +
		"horizontally, vertically or diagonally, or all nine squares are filled. " +
		"If a player is able to draw three Xs or three Os in a row, that player wins. " +
		"If all nine squares are filled and neither player has three in a row, the game is a draw."

	textHowToDrawBoard = "Game board is 3x3 grid of squares. To draw it please make following steps. " +
		"First draw one vertical line, that has minimal length of 1 centimeter. " +
		"Next draw another vertical line near the first one at the right. " +
		"Then draw horizontal line, that crosses both vertical lines. " +
		"Next draw another horizontal line near the first one on the bottom, that also crosses both vertical lines. " +
		"Your board is ready."

	textHowToPlay = "At first please select 'Start Game' in the main menu. Next select pen level: easy or hard. " +
		"Then please draw the board. To learn, how to draw game board, please look at the corresponding help menu item. " +
		"After drawing the board the game begins. Your turn is first. " +
		"To make a turn please draw an 'x' in one of the board fields. Then look at the pen screen. " +
		"If your turn is correct you will see it on the screen together with the pen's turn. " +
		"Continue making turns until game ends."

	textHumanFirst   = "You play crosses and go first"
	textPenFirst     = "You play noughts and go second"
	textYourTurn     = "Your turn!"
	textPenTurn      = "Pen's turn!"
	textYouWin       = "YOU WIN !!!"
	textYouLose      = "YOU LOSE !!!"
	textDraw         = "DRAW !!!"
	textStartNewGame = "To start new game start drawing a new board!"
	textPageChanged  = "You have changed a page. Please continue on the page, when You started."
	textBoardFailed  = "The board cannot be built. Please draw a new board."
	textTryAgain     = "Please try again or read game help."
)

var helpTexts = map[State]string{
	StateMainMenuAboutDisplayed:          textAbout,
	StateHelpMenuRulesDisplayed:          textRules,
	StateHelpMenuHowToDrawBoardDisplayed: textHowToDrawBoard,
	StateHelpMenuHowToPlayDisplayed:      textHowToPlay,
}

type lineMessage struct {
	text  string
	sound SoundKey
}

var lineMessages = map[board.Reason]lineMessage{
	board.ReasonNotHorizontal:              {"Line is not horizontal. ", SoundLineNotHorizontal},
	board.ReasonNotVertical:                {"Line is not vertical. ", SoundLineNotVertical},
	board.ReasonTooShort:                   {"Line is too short. ", SoundLineTooShort},
	board.ReasonTooLong:                    {"Line is too long. ", ""},
	board.ReasonMustBeRight:                {"Line must be at the right of previous one. ", SoundLineMustBeRight},
	board.ReasonMustBeAtBottom:             {"Line must be at the bottom of previous one. ", SoundLineMustBeBottom},
	board.ReasonMustBeNearOtherLines:       {"Line must be near the other line. ", SoundLineMustBeNear},
	board.ReasonMustCrossBothVerticalLines: {"Line must cross both vertical lines. ", SoundLineMustCross},
}

// step describes one of the four board drawing steps.
type step struct {
	slot    board.Slot
	caption string
	x       int
	sound   SoundKey
	next    State
}

var steps = map[State]step{
	StateDrawFirstVerticalLine:    {board.FirstVertical, "1st vertical line", 20, SoundDrawFirstVertical, StateDrawSecondVerticalLine},
	StateDrawSecondVerticalLine:   {board.SecondVertical, "2nd vertical line", 20, SoundDrawSecondVertical, StateDrawFirstHorizontalLine},
	StateDrawFirstHorizontalLine:  {board.FirstHorizontal, "1st horiz. line", 22, SoundDrawFirstHoriz, StateDrawSecondHorizontalLine},
	StateDrawSecondHorizontalLine: {board.SecondHorizontal, "2nd horiz. line", 22, SoundDrawSecondHoriz, StateSelectPlayerOrder},
}

type result struct {
	caption string
	sound   SoundKey
}

var results = map[State]result{
	StateEndHumanWins: {textYouWin, SoundYouWin},
	StateEndPenWins:   {textYouLose, SoundPenWins},
	StateEndDraw:      {textDraw, SoundDraw},
}
