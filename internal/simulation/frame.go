package simulation

import (
	"fmt"
	"strings"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/entity"
)

// Event is one edge-triggered input.
type Event uint8

const (
	EventRight Event = iota
	EventUp
	EventLeft
	EventDown
	EventInteract
	EventQuit
)

var eventNames = map[Event]string{
	EventRight:    "right",
	EventUp:       "up",
	EventLeft:     "left",
	EventDown:     "down",
	EventInteract: "interact",
	EventQuit:     "quit",
}

func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return "unknown"
}

// ParseEvent maps a name such as "left" or "interact" to its Event.
func ParseEvent(s string) (Event, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, n := range eventNames {
		if n == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", s)
}

// direction returns the facing and unit offset for a movement event.
func (e Event) direction() (entity.Direction, geom.Vec2, bool) {
	switch e {
	case EventRight:
		return entity.DirRight, geom.V(1, 0), true
	case EventUp:
		return entity.DirUp, geom.V(0, 1), true
	case EventLeft:
		return entity.DirLeft, geom.V(-1, 0), true
	case EventDown:
		return entity.DirDown, geom.V(0, -1), true
	}
	return 0, geom.Vec2{}, false
}

// Frame is everything that happened between two updates, in order.
type Frame struct {
	Events []Event

	// Elapsed is the wall time since the previous frame in seconds. No rule
	// reads it yet.
	Elapsed float64
}

// F builds a frame from events.
func F(events ...Event) Frame {
	return Frame{Events: events}
}
