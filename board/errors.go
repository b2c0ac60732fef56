package board

import (
	"errors"
	"fmt"
)

// ErrBoardImpossible is returned by Calculate when the accepted lines do not
// produce four corner intersections.
var ErrBoardImpossible = errors.New("board impossible")

// Reason tells why a line was rejected.
type Reason int

const (
	ReasonMalformedLine Reason = iota
	ReasonNotVertical
	ReasonNotHorizontal
	ReasonTooShort
	ReasonTooLong
	ReasonMustBeRight
	ReasonMustBeAtBottom
	ReasonMustBeNearOtherLines
	ReasonMustCrossBothVerticalLines
	ReasonInvalidDrawingOrder
)

var reasonNames = map[Reason]string{
	ReasonMalformedLine:              "line must contain two points",
	ReasonNotVertical:                "line is not vertical",
	ReasonNotHorizontal:              "line is not horizontal",
	ReasonTooShort:                   "line is too short",
	ReasonTooLong:                    "line is too long",
	ReasonMustBeRight:                "line must be at the right of the previous one",
	ReasonMustBeAtBottom:             "line must be at the bottom of the previous one",
	ReasonMustBeNearOtherLines:       "line must be near the other lines",
	ReasonMustCrossBothVerticalLines: "line must cross both vertical lines",
	ReasonInvalidDrawingOrder:        "invalid drawing order",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// LineError is returned when a hand-drawn line cannot be used for a slot.
// Every LineError is recoverable: the slot stays empty and may be drawn again.
type LineError struct {
	Slot   Slot
	Reason Reason
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Slot, e.Reason)
}

func reject(slot Slot, reason Reason) error {
	return &LineError{Slot: slot, Reason: reason}
}
