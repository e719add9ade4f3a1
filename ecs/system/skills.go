package system

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
)

// SkillSystem ticks skills on the frame cadence.
type SkillSystem struct{}

func NewSkillSystem() *SkillSystem {
	return &SkillSystem{}
}

func (s *SkillSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.SkillsComponent.Kind(), func(e ecs.Entity, skills *component.Skills) {
		skills.Machine.Tick(dt)
	})
}

// SkillFixedSystem ticks skills on the physics cadence, before the physics
// step consumes the forces they add.
type SkillFixedSystem struct{}

func NewSkillFixedSystem() *SkillFixedSystem {
	return &SkillFixedSystem{}
}

func (s *SkillFixedSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.SkillsComponent.Kind(), func(e ecs.Entity, skills *component.Skills) {
		skills.Machine.FixedTick(dt)
	})
}

// RopeSystem copies the grapple rope polyline into RopeLine for drawing.
type RopeSystem struct{}

func NewRopeSystem() *RopeSystem {
	return &RopeSystem{}
}

func (r *RopeSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.SkillsComponent.Kind(), component.RopeLineComponent.Kind(), func(e ecs.Entity, skills *component.Skills, line *component.RopeLine) {
		line.Points = nil
		if skills.Grapple != nil {
			line.Points = skills.Grapple.Rope()
		}
	})
}
