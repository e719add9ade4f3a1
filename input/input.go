package input

import "fmt"

// Event is an edge-triggered skill input.
type Event int

const (
	NextSkill Event = iota + 1
	PreviousSkill
	MainAction
	SecondaryAction
)

var eventNames = map[Event]string{
	NextSkill:       "next_skill",
	PreviousSkill:   "previous_skill",
	MainAction:      "main_action",
	SecondaryAction: "secondary_action",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// ParseEvent maps a config name such as "main_action" to its Event.
func ParseEvent(name string) (Event, error) {
	for e, n := range eventNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("input: unknown event %q", name)
}

// Buttons is the polled button state for one frame.
type Buttons struct {
	Next      bool
	Previous  bool
	Main      bool
	Secondary bool
}

// Edge turns polled button state into on-press events.
type Edge struct {
	prev Buttons
}

// Update returns the events for buttons that went down since the last call,
// in a fixed order.
func (e *Edge) Update(cur Buttons) []Event {
	var out []Event
	if cur.Next && !e.prev.Next {
		out = append(out, NextSkill)
	}
	if cur.Previous && !e.prev.Previous {
		out = append(out, PreviousSkill)
	}
	if cur.Main && !e.prev.Main {
		out = append(out, MainAction)
	}
	if cur.Secondary && !e.prev.Secondary {
		out = append(out, SecondaryAction)
	}
	e.prev = cur
	return out
}

// Reset forgets held buttons so the next press fires again.
func (e *Edge) Reset() {
	e.prev = Buttons{}
}

// State is everything the rig reads from the player's controls in one frame.
type State struct {
	Buttons Buttons
	// MoveX strafes along world X, MoveZ along world Z; both in [-1,1].
	MoveX float64
	MoveZ float64
	Jump  bool
}

// Source supplies the control state once per frame.
type Source interface {
	Poll() State
}

type SourceFunc func() State

func (f SourceFunc) Poll() State { return f() }
