package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/driftline/driftline/engine"
)

// keyHoldWindow is how long a key counts as held after its last event.
// Terminals deliver repeats, not key-up, so "held" is inferred from repeat
// cadence; the window must exceed the slowest common repeat interval.
const keyHoldWindow = 150 * time.Millisecond

// Handler samples terminal events into the ActionState resource once per
// tick. Polling runs on its own goroutine (a tcell requirement); the tick
// thread only drains the channel, so the world is never touched off the
// driving thread.
type Handler struct {
	bindings *Bindings
	events   chan tcell.Event
	lastSeen [actionCount]time.Time

	// QuitRequested is set when the close chord arrives; the driver exits
	// the loop between ticks
	QuitRequested bool
}

// NewHandler starts polling screen events with the given bindings
func NewHandler(screen tcell.Screen, bindings *Bindings) *Handler {
	h := &Handler{
		bindings: bindings,
		events:   make(chan tcell.Event, 64),
	}
	go screen.ChannelEvents(h.events, nil)
	return h
}

// Sample drains pending terminal events and rewrites the ActionState
// resource for this tick. Call before the control system runs.
func (h *Handler) Sample(w *engine.World) {
	now := time.Now()

	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.QuitRequested = true
				goto drained
			}
			h.handleEvent(ev, now)
		default:
			goto drained
		}
	}
drained:

	state := engine.EnsureResource(w.Resources, NewActionState)
	state.Reset()
	for a := Action(0); a < actionCount; a++ {
		if !h.lastSeen[a].IsZero() && now.Sub(h.lastSeen[a]) < keyHoldWindow {
			state.Set(a, 1.0)
		}
	}
}

func (h *Handler) handleEvent(ev tcell.Event, now time.Time) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyCtrlQ {
		h.QuitRequested = true
		return
	}
	if action, ok := h.bindings.resolve(key); ok {
		h.lastSeen[action] = now
	}
}
