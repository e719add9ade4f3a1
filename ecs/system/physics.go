package system

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/physics"
)

// PhysicsSystem steps the physics world and syncs transforms from bodies.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || ps.world == nil || w == nil {
		return
	}
	ps.world.Step(dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		t.Position = pb.Body.Position()
		t.Forward = pb.Body.Forward()
	})
}
