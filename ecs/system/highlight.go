package system

import (
	"log/slog"

	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/grapple"
)

// HighlightSystem applies queued grapple selection changes to the
// Highlight component of the matching grapple point.
type HighlightSystem struct {
	logger *slog.Logger
}

func NewHighlightSystem(logger *slog.Logger) *HighlightSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &HighlightSystem{logger: logger}
}

func (h *HighlightSystem) Update(w *ecs.World, dt float64) {
	events := w.Events().DrainType(EventGrappleHighlight)
	if len(events) == 0 {
		return
	}
	for _, evt := range events {
		change, ok := evt.Data.(HighlightChange)
		if !ok {
			continue
		}
		if change.Prev.OK {
			h.set(w, change.Prev.Point, false)
		}
		if change.Next.OK {
			h.set(w, change.Next.Point, true)
		}
	}
}

func (h *HighlightSystem) set(w *ecs.World, p grapple.Point, on bool) {
	found := false
	ecs.ForEach3(w, component.GrapplePointComponent.Kind(), component.TransformComponent.Kind(), component.HighlightComponent.Kind(), func(e ecs.Entity, gp *component.GrapplePoint, t *component.Transform, hl *component.Highlight) {
		if found {
			return
		}
		if p.ID != "" && gp.ID != p.ID {
			return
		}
		if p.ID == "" && (gp.ID != "" || t.Position != p.Pos) {
			return
		}
		found = true
		if hl.On != on {
			hl.On = on
			hl.Changes++
		}
	})
	if !found {
		h.logger.Debug("highlight: no entity for grapple point", slog.String("point", p.ID))
	}
}
