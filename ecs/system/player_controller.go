package system

import (
	"math"

	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
)

// restingSpeed is the vertical speed under which a body may jump.
const restingSpeed = 0.05

// PlayerControllerSystem turns move input into body velocity through the
// movement controller. Without input the body keeps its momentum so rope
// tension is not cancelled out.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach3(w, component.InputComponent.Kind(), component.MovementComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, in *component.Input, mv *component.Movement, pb *component.PhysicsBody) {
		if mv.Controller == nil || pb.Body == nil {
			return
		}
		st := in.State
		current := pb.Body.Velocity()
		jump := st.Jump && math.Abs(current.Y) < restingSpeed
		if st.MoveX == 0 && st.MoveZ == 0 && !jump {
			return
		}
		if st.MoveX != 0 || st.MoveZ != 0 {
			pb.Body.SetForward(common.V3(st.MoveX, 0, st.MoveZ))
		}
		if v, ok := mv.Controller.Velocity(st.MoveX, st.MoveZ, jump, current); ok {
			pb.Body.SetVelocity(v)
		}
	})
}
