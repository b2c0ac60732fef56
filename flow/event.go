package flow

import "fmt"

// Event is a follow-up produced by a transition. The caller keeps handling
// events until EventNone comes back.
type Event int

const (
	EventNone Event = iota
	EventHumanTurnNext
	EventPenTurnNext
	EventHumanTurnReady
	EventPenTurnReady
	EventHumanWins
	EventPenWins
	EventDraw
	EventEnd
)

var eventNames = [...]string{
	EventNone:           "none",
	EventHumanTurnNext:  "human-turn-next",
	EventPenTurnNext:    "pen-turn-next",
	EventHumanTurnReady: "human-turn-ready",
	EventPenTurnReady:   "pen-turn-ready",
	EventHumanWins:      "human-wins",
	EventPenWins:        "pen-wins",
	EventDraw:           "draw",
	EventEnd:            "end",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("event(%d)", int(e))
}
