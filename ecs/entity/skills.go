package entity

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/grapple"
	"github.com/milk9111/grapplerig/prefabs"
	"github.com/milk9111/grapplerig/skill"
)

// skillDeps are the entity's collaborators a variant can be wired to.
type skillDeps struct {
	w       *ecs.World
	e       ecs.Entity
	ctx     *BuildContext
	body    skill.Body
	mover   *component.Movement
	scale   *transformScale
	glasses *component.Glasses
	sink    skill.AppearanceSink
}

func addSkills(w *ecs.World, e ecs.Entity, _ any, ctx *BuildContext) error {
	deps := skillDeps{
		w:     w,
		e:     e,
		ctx:   ctx,
		scale: &transformScale{w: w, e: e},
		sink:  &appearanceWriter{w: w, e: e},
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		deps.body = pb.Body
	}
	if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok && mv.Controller != nil {
		deps.mover = mv
	}
	if g, ok := ecs.Get(w, e, component.GlassesComponent.Kind()); ok {
		deps.glasses = g
	}

	out := &component.Skills{}
	roster := make([]skill.Variant, 0, len(ctx.Rig.Skills.Roster))
	for _, name := range ctx.Rig.Skills.Roster {
		v, err := deps.build(name, out)
		if err != nil {
			return fmt.Errorf("skill %q: %w", name, err)
		}
		roster = append(roster, v)
	}

	logger := ctx.Logger.With(slog.String("entity", ctx.name))
	machine, err := skill.NewSlotMachine(roster,
		skill.WithMachineLogger(logger),
		skill.OnEquip(func(prev, next skill.Variant) {
			from := ""
			if prev != nil {
				from = prev.Name()
			}
			logger.Info("skill swapped", slog.String("from", from), slog.String("to", next.Name()))
		}),
	)
	if err != nil {
		return err
	}
	out.Machine = machine
	if err := ecs.Add(w, e, component.SkillsComponent.Kind(), out); err != nil {
		return err
	}
	if i := ctx.Rig.Skills.EquipOnStart; i >= 0 {
		machine.EquipAt(i)
	}
	return nil
}

func (d skillDeps) build(name string, out *component.Skills) (skill.Variant, error) {
	rig := d.ctx.Rig
	base := skill.NewBase(name, rig.Skills.Appearances[name].Appearance(), d.sink, d.ctx.Logger)

	switch name {
	case prefabs.SkillGrapple:
		if d.body == nil {
			return nil, fmt.Errorf("%w: physics_body", errMissingDependency)
		}
		solver, err := grapple.NewSolver(rig.Grapple.Params(rig.Physics.Gravity),
			grapple.WithHighlightSink(d.ctx.Highlights),
			grapple.WithLogger(d.ctx.Logger.With(slog.String("skill", name))),
		)
		if err != nil {
			return nil, err
		}
		var speed skill.SpeedSink
		if d.mover != nil {
			speed = d.mover.Controller
		}
		g := skill.NewGrappleSkill(base, solver, d.body, d.ctx.Candidates, speed)
		out.Grapple = g
		return g, nil

	case prefabs.SkillSizeShifter:
		if d.mover == nil {
			return nil, fmt.Errorf("%w: movement", errMissingDependency)
		}
		cfg := rig.Skills.SizeShifter.Config(d.scale.Scale())
		ss := skill.NewSizeShifter(base, cfg, d.scale, d.mover.Controller)
		out.SizeShifter = ss
		return ss, nil

	case prefabs.SkillSuperGlasses:
		if d.glasses == nil {
			return nil, fmt.Errorf("%w: glasses", errMissingDependency)
		}
		return skill.NewSuperGlasses(base, rig.Skills.SuperGlasses.Config(), d.glasses), nil

	case prefabs.SkillSkyWalker:
		if d.body == nil || d.mover == nil {
			return nil, fmt.Errorf("%w: physics_body and movement", errMissingDependency)
		}
		sw := skill.NewSkyWalker(base, rig.Skills.SkyWalker.Config(), d.body, d.mover.Controller, d.scale)
		out.SkyWalker = sw
		return sw, nil
	}

	for _, s := range rig.Skills.Scripted {
		if s.Name != name {
			continue
		}
		src, err := d.ctx.Loader.LoadScript(s.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", s.Script, err)
		}
		var mover skill.Mover
		if d.mover != nil {
			mover = d.mover.Controller
		}
		return skill.NewScriptedSkill(base, s.Script, src, mover, d.body)
	}
	return nil, fmt.Errorf("unknown skill")
}

// transformScale exposes the entity's Transform scale to skills.
type transformScale struct {
	w *ecs.World
	e ecs.Entity
}

func (s *transformScale) Scale() common.Vec3 {
	t, ok := ecs.Get(s.w, s.e, component.TransformComponent.Kind())
	if !ok {
		return common.V3(1, 1, 1)
	}
	return t.Scale
}

func (s *transformScale) SetScale(v common.Vec3) {
	if t, ok := ecs.Get(s.w, s.e, component.TransformComponent.Kind()); ok {
		t.Scale = v
	}
}

// appearanceWriter records applied appearances on the entity.
type appearanceWriter struct {
	w *ecs.World
	e ecs.Entity
}

func (a *appearanceWriter) ApplyAppearance(app skill.Appearance) {
	if comp, ok := ecs.Get(a.w, a.e, component.AppearanceComponent.Kind()); ok {
		comp.Current = app
		return
	}
	_ = ecs.Add(a.w, a.e, component.AppearanceComponent.Kind(), &component.Appearance{Current: app})
}
