package entity

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/grapple"
	"github.com/milk9111/grapplerig/movement"
	"github.com/milk9111/grapplerig/physics"
	"github.com/milk9111/grapplerig/prefabs"
	"github.com/milk9111/grapplerig/skill"
)

// BuildContext carries what component builders need beyond the raw spec.
type BuildContext struct {
	Rig     prefabs.RigSpec
	Physics *physics.World
	Loader  prefabs.Loader
	Logger  *slog.Logger

	// Candidates and Highlights are handed to grapple skills.
	Candidates skill.CandidateSource
	Highlights grapple.HighlightSink

	name string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"transform":     addTransform,
	"grapple_point": addGrapplePoint,
	"highlight":     addHighlight,
	"glass_panel":   addGlassPanel,
	"vent_area":     addVentArea,
	"physics_body":  addPhysicsBody,
	"movement":      addMovement,
	"input":         addInput,
	"glasses":       addGlasses,
	"rope_line":     addRopeLine,
	"skills":        addSkills,
}

// skills must come after everything its variants are wired to.
var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"grapple_point",
	"highlight",
	"glass_panel",
	"vent_area",
	"physics_body",
	"movement",
	"input",
	"glasses",
	"rope_line",
	"skills",
}

var errMissingDependency = errors.New("missing dependency")

func BuildEntity(w *ecs.World, spec prefabs.EntityBuildSpec, ctx *BuildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if ctx == nil {
		ctx = &BuildContext{}
	}
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: %q does not define components", spec.Name)
	}
	ctx.name = spec.Name

	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", spec.Name, unknown)
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			destroy(w, e, ctx)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}

	ctx.Logger.Debug("entity built", slog.String("name", spec.Name), slog.String("entity", e.String()))
	return e, nil
}

// destroy tears down a partially built entity, releasing its body and skills.
func destroy(w *ecs.World, e ecs.Entity, ctx *BuildContext) {
	if skills, ok := ecs.Get(w, e, component.SkillsComponent.Kind()); ok && skills.Machine != nil {
		skills.Machine.Close()
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && ctx.Physics != nil {
		ctx.Physics.RemoveBody(pb.Body)
	}
	ecs.DestroyEntity(w, e)
}

// Destroy removes an entity built by BuildEntity.
func Destroy(w *ecs.World, e ecs.Entity, ctx *BuildContext) {
	destroy(w, e, ctx)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Position(),
		Forward:  spec.ForwardVec(),
		Scale:    spec.ScaleVec(),
	})
}

func addGrapplePoint(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GrapplePointComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.ID == "" {
		spec.ID = uuid.NewString()
		ctx.Logger.Debug("grapple point without id", slog.String("entity", ctx.name), slog.String("id", spec.ID))
	}
	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		return fmt.Errorf("%w: grapple_point needs transform", errMissingDependency)
	}
	return ecs.Add(w, e, component.GrapplePointComponent.Kind(), &component.GrapplePoint{ID: spec.ID})
}

func addHighlight(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.HighlightComponent.Kind(), &component.Highlight{})
}

func addGlassPanel(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GlassPanelComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.MaxX < spec.MinX || spec.MaxY < spec.MinY {
		return fmt.Errorf("glass panel bounds inverted")
	}
	if spec.Reach <= 0 {
		spec.Reach = 0.5
	}
	return ecs.Add(w, e, component.GlassPanelComponent.Kind(), &component.GlassPanel{
		MinX:  spec.MinX,
		MaxX:  spec.MaxX,
		MinY:  spec.MinY,
		MaxY:  spec.MaxY,
		Z:     spec.Z,
		Reach: spec.Reach,
	})
}

func addVentArea(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VentAreaComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.MaxX < spec.MinX || spec.MaxY < spec.MinY || spec.MaxZ < spec.MinZ {
		return fmt.Errorf("vent area bounds inverted")
	}
	return ecs.Add(w, e, component.VentAreaComponent.Kind(), &component.VentArea{
		MinX:     spec.MinX,
		MaxX:     spec.MaxX,
		MinY:     spec.MinY,
		MaxY:     spec.MaxY,
		MinZ:     spec.MinZ,
		MaxZ:     spec.MaxZ,
		Entrance: spec.Entrance,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error {
	if ctx.Physics == nil {
		return fmt.Errorf("%w: physics world", errMissingDependency)
	}
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("%w: physics_body needs transform", errMissingDependency)
	}
	body := ctx.Physics.NewBody(spec.Mass, spec.Radius, t.Position)
	body.SetForward(t.Forward)
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body})
}

func addMovement(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MovementComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive")
	}
	return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{
		Controller: movement.NewController(spec.MoveSpeed, spec.JumpSpeed),
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addGlasses(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.GlassesComponent.Kind(), &component.Glasses{})
}

func addRopeLine(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.RopeLineComponent.Kind(), &component.RopeLine{})
}
