package main

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/milk9111/grapplerig/input"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoTimeline []byte

// cue changes the controls at a point in time. Presses last one frame; move
// and jump hold until the next cue changes them.
type cue struct {
	At    float64  `yaml:"at"`
	Press []string `yaml:"press"`
	MoveX *float64 `yaml:"move_x"`
	MoveZ *float64 `yaml:"move_z"`
	Jump  *bool    `yaml:"jump"`

	buttons input.Buttons
}

type timeline struct {
	cues []cue
	next int
	held input.State
}

func parseTimeline(data []byte) (*timeline, error) {
	var cues []cue
	if err := yaml.Unmarshal(data, &cues); err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	for i := range cues {
		c := &cues[i]
		if c.At < 0 {
			return nil, fmt.Errorf("timeline: cue %d: negative time %v", i, c.At)
		}
		for _, name := range c.Press {
			ev, err := input.ParseEvent(name)
			if err != nil {
				return nil, fmt.Errorf("timeline: cue %d: %w", i, err)
			}
			press(&c.buttons, ev)
		}
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].At < cues[j].At })
	return &timeline{cues: cues}, nil
}

func press(b *input.Buttons, ev input.Event) {
	switch ev {
	case input.NextSkill:
		b.Next = true
	case input.PreviousSkill:
		b.Previous = true
	case input.MainAction:
		b.Main = true
	case input.SecondaryAction:
		b.Secondary = true
	}
}

// At returns the controls for the frame at time now. Calls must not go back
// in time.
func (t *timeline) At(now float64) input.State {
	st := t.held
	for t.next < len(t.cues) && t.cues[t.next].At <= now {
		c := t.cues[t.next]
		t.next++
		if c.MoveX != nil {
			t.held.MoveX = *c.MoveX
		}
		if c.MoveZ != nil {
			t.held.MoveZ = *c.MoveZ
		}
		if c.Jump != nil {
			t.held.Jump = *c.Jump
		}
		st.Buttons.Next = st.Buttons.Next || c.buttons.Next
		st.Buttons.Previous = st.Buttons.Previous || c.buttons.Previous
		st.Buttons.Main = st.Buttons.Main || c.buttons.Main
		st.Buttons.Secondary = st.Buttons.Secondary || c.buttons.Secondary
	}
	st.MoveX, st.MoveZ, st.Jump = t.held.MoveX, t.held.MoveZ, t.held.Jump
	return st
}

// Rewind starts the timeline over, used when the rig is rebuilt.
func (t *timeline) Rewind() {
	t.next = 0
	t.held = input.State{}
}

// End is the time of the last cue.
func (t *timeline) End() float64 {
	if len(t.cues) == 0 {
		return 0
	}
	return t.cues[len(t.cues)-1].At
}
