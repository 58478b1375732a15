package game

import (
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/simulation"
)

// Binding maps a key to the event it produces.
type Binding struct {
	Key   render.Key
	Event simulation.Event
}

// DefaultBindings is the keyboard layout. Order decides the event order
// within a frame.
var DefaultBindings = []Binding{
	{render.KeyRight, simulation.EventRight},
	{render.KeyUp, simulation.EventUp},
	{render.KeyLeft, simulation.EventLeft},
	{render.KeyDown, simulation.EventDown},
	{render.KeyZ, simulation.EventInteract},
	{render.KeySpace, simulation.EventInteract},
	{render.KeyEscape, simulation.EventQuit},
}

// Poll turns this tick's key presses into a frame. A window close request
// counts as quit.
func Poll(in render.InputManager, bindings []Binding, elapsed float64) simulation.Frame {
	f := simulation.Frame{Elapsed: elapsed}
	for _, b := range bindings {
		if in.IsKeyJustPressed(b.Key) {
			f.Events = append(f.Events, b.Event)
		}
	}
	if in.IsWindowClosing() {
		f.Events = append(f.Events, simulation.EventQuit)
	}
	return f
}
