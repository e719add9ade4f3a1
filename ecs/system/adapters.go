package system

import (
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/grapple"
)

// EventGrappleHighlight carries a HighlightChange.
const EventGrappleHighlight = "grapple_highlight"

type HighlightChange struct {
	Prev grapple.Selection
	Next grapple.Selection
}

// GrapplePoints supplies the solver with every grapple point entity in
// component storage order. Destroying a point moves the last one into its
// slot, so the order only holds between structural changes.
type GrapplePoints struct {
	w *ecs.World
}

func NewGrapplePoints(w *ecs.World) *GrapplePoints {
	return &GrapplePoints{w: w}
}

func (g *GrapplePoints) GrapplePoints() []grapple.Point {
	var out []grapple.Point
	ecs.ForEach2(g.w, component.GrapplePointComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.GrapplePoint, t *component.Transform) {
		out = append(out, grapple.Point{ID: p.ID, Pos: t.Position})
	})
	return out
}

// HighlightEvents forwards selection changes onto the world event queue for
// the highlight system.
type HighlightEvents struct {
	w *ecs.World
}

func NewHighlightEvents(w *ecs.World) *HighlightEvents {
	return &HighlightEvents{w: w}
}

func (h *HighlightEvents) SelectionChanged(prev, next grapple.Selection) {
	h.w.Events().Push(ecs.Event{Type: EventGrappleHighlight, Data: HighlightChange{Prev: prev, Next: next}})
}
