package ui

import (
	"io"
	"log"
	"math"
	"time"

	"tictacpen/types"
)

// closedRatio is the largest gap between the ends of a single stroke,
// relative to its bounding box diagonal, that still reads as a nought.
const closedRatio = 0.35

// Classify reads the strokes of one handwritten symbol. Two or more strokes
// make a cross, a single closed stroke makes a nought. Anything else is
// returned as "?".
func Classify(strokes []types.Stroke) (symbol string, box types.Rect, ok bool) {
	if len(strokes) == 0 {
		return "", types.Rect{}, false
	}
	box = strokes[0].Bounds()
	for _, s := range strokes[1:] {
		box = box.Union(s.Bounds())
	}
	if len(strokes) >= 2 {
		return "x", box, true
	}

	first, last, ok := strokes[0].Endpoints()
	if !ok {
		return "?", box, true
	}
	diag := math.Hypot(float64(box.Width), float64(box.Height))
	gap := math.Hypot(float64(last.X-first.X), float64(last.Y-first.Y))
	if diag > 0 && gap <= closedRatio*diag {
		return "o", box, true
	}
	return "?", box, true
}

// Recognizer collects strokes and classifies them once the writer pauses.
// AddStroke, Clear and Flush must be called from the UI goroutine; the pause
// timer re-enters it through queue.
type Recognizer struct {
	strokes  []types.Stroke
	pause    time.Duration
	queue    func(func())
	onResult func(symbol string, box types.Rect)
	timer    *time.Timer
	gen      uint64
	log      *log.Logger
}

// NewRecognizer creates a recogniser. queue must run its argument on the UI
// goroutine, e.g. tview's QueueUpdateDraw.
func NewRecognizer(pause time.Duration, queue func(func()), onResult func(string, types.Rect), logger *log.Logger) *Recognizer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Recognizer{pause: pause, queue: queue, onResult: onResult, log: logger}
}

// AddStroke adds a stroke and restarts the pause timer.
func (r *Recognizer) AddStroke(s types.Stroke) {
	r.strokes = append(r.strokes, s)
	r.stop()
	if r.pause <= 0 {
		return
	}
	gen := r.gen
	r.timer = time.AfterFunc(r.pause, func() {
		r.queue(func() {
			if gen == r.gen {
				r.Flush()
			}
		})
	})
}

// Clear drops the collected strokes.
func (r *Recognizer) Clear() {
	r.stop()
	r.strokes = nil
}

// Flush classifies the collected strokes now and reports the result.
func (r *Recognizer) Flush() {
	strokes := r.strokes
	r.Clear()
	symbol, box, ok := Classify(strokes)
	if !ok {
		return
	}
	r.log.Printf("[ui] recognised %q in %d stroke(s) at %+v", symbol, len(strokes), box)
	if r.onResult != nil {
		r.onResult(symbol, box)
	}
}

// Pending returns the number of collected strokes.
func (r *Recognizer) Pending() int {
	return len(r.strokes)
}

func (r *Recognizer) stop() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
}
