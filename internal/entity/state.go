package entity

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a movable is asked to enter a state
// it cannot reach from its current one.
var ErrIllegalTransition = errors.New("illegal state transition")

// State is where a movable is in its lifecycle. The render and interaction
// flags are derived from it, so combinations such as shown-and-carried cannot
// be expressed.
type State uint8

const (
	Hidden    State = iota // not yet revealed
	Dormant                // visible but out of reach
	Available              // on the ground, can be picked up
	Carried                // in the player's hand
	Placed                 // on a pedestal, can be taken back
	Locked                 // on a pedestal after the puzzle is solved
	Consumed               // used up at the workbench, a landmark or the gate
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Dormant:
		return "dormant"
	case Available:
		return "available"
	case Carried:
		return "carried"
	case Placed:
		return "placed"
	case Locked:
		return "locked"
	case Consumed:
		return "consumed"
	default:
		return "unknown"
	}
}

var transitions = map[State][]State{
	Hidden:    {Dormant, Available},
	Dormant:   {Available},
	Available: {Carried},
	Carried:   {Consumed, Placed},
	Placed:    {Carried, Locked},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Show reports whether the movable is drawn in the world.
func (s State) Show() bool {
	switch s {
	case Dormant, Available, Placed, Locked:
		return true
	}
	return false
}

// CanInteract reports whether the player can pick the movable up.
func (s State) CanInteract() bool {
	return s == Available || s == Placed
}

// IsCarried reports whether the movable follows the player.
func (s State) IsCarried() bool {
	return s == Carried
}

// Used reports whether the movable has been spent.
func (s State) Used() bool {
	return s == Consumed
}

func transitionError(kind Item, from, to State) error {
	return fmt.Errorf("%s: %s -> %s: %w", kind, from, to, ErrIllegalTransition)
}
