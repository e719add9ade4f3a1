package system

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
)

type ventKey struct {
	body, vent ecs.Entity
}

// VentSystem locks the size shifter when a body leaves a vent entrance and
// unlocks it when the body leaves a vent exit. Like GlassContactSystem it
// acts on transitions only.
type VentSystem struct {
	inside map[ventKey]bool
}

func NewVentSystem() *VentSystem {
	return &VentSystem{inside: map[ventKey]bool{}}
}

func (v *VentSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.SkillsComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, skills *component.Skills, pb *component.PhysicsBody) {
		if skills.SizeShifter == nil || pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		ecs.ForEach(w, component.VentAreaComponent.Kind(), func(vent ecs.Entity, area *component.VentArea) {
			key := ventKey{body: e, vent: vent}
			now := area.Contains(pos.X, pos.Y, pos.Z)
			was := v.inside[key]
			if now == was {
				return
			}
			if now {
				v.inside[key] = true
				return
			}
			delete(v.inside, key)
			if area.Entrance {
				skills.SizeShifter.Lock()
			} else {
				skills.SizeShifter.Unlock()
			}
		})
	})
}
