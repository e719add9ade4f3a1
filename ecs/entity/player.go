package entity

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
)

// Player returns the first entity tagged as the player.
func Player(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

// PlayerSkills returns the player's skills component.
func PlayerSkills(w *ecs.World) (*component.Skills, bool) {
	e, ok := Player(w)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SkillsComponent.Kind())
}

// GrapplePointByID finds the grapple point entity with the given id.
func GrapplePointByID(w *ecs.World, id string) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.GrapplePointComponent.Kind(), func(e ecs.Entity, gp *component.GrapplePoint) {
		if !ok && gp.ID == id {
			found, ok = e, true
		}
	})
	return found, ok
}
