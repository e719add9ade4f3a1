package component

import "github.com/milk9111/grapplerig/input"

// Input stores per-frame input state for an entity.
type Input struct {
	State input.State

	edge input.Edge
}

// Events converts the current button state into on-press events.
func (i *Input) Events() []input.Event {
	return i.edge.Update(i.State.Buttons)
}

var InputComponent = NewComponent[Input]()
