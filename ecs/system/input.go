package system

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/input"
)

// InputSystem polls the control source and routes skill button presses to
// each entity's slot machine.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil || i.source == nil {
		return
	}

	state := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.State = state
	})

	ecs.ForEach2(w, component.InputComponent.Kind(), component.SkillsComponent.Kind(), func(e ecs.Entity, in *component.Input, skills *component.Skills) {
		for _, ev := range in.Events() {
			skills.Machine.Handle(ev)
		}
		if skills.SkyWalker != nil {
			// on glass forward input climbs
			skills.SkyWalker.SetMoveInput(in.State.MoveX, in.State.MoveZ)
		}
	})
}
