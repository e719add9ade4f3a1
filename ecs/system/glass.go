package system

import (
	"math"

	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
)

// GlassContactSystem reports glass enter/exit to the sky walker. Only
// transitions are forwarded, like a trigger volume.
type GlassContactSystem struct {
	touching map[ecs.Entity]bool
}

func NewGlassContactSystem() *GlassContactSystem {
	return &GlassContactSystem{touching: map[ecs.Entity]bool{}}
}

func (g *GlassContactSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.SkillsComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, skills *component.Skills, pb *component.PhysicsBody) {
		if skills.SkyWalker == nil || pb.Body == nil {
			return
		}
		now := touchingGlass(w, pb.Body.Position())
		if now == g.touching[e] {
			return
		}
		g.touching[e] = now
		skills.SkyWalker.SetAgainstGlass(now)
	})
}

func touchingGlass(w *ecs.World, pos common.Vec3) bool {
	hit := false
	ecs.ForEach(w, component.GlassPanelComponent.Kind(), func(e ecs.Entity, panel *component.GlassPanel) {
		if hit {
			return
		}
		hit = pos.X >= panel.MinX && pos.X <= panel.MaxX &&
			pos.Y >= panel.MinY && pos.Y <= panel.MaxY &&
			math.Abs(pos.Z-panel.Z) <= panel.Reach
	})
	return hit
}
