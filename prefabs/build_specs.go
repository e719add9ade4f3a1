package prefabs

import (
	"fmt"

	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/grapple"
	"github.com/milk9111/grapplerig/skill"
	"gopkg.in/yaml.v3"
)

// Skill names accepted in SkillsSpec.Roster. Scripted skills are listed by
// their own name.
const (
	SkillGrapple      = "grapple"
	SkillSizeShifter  = "size_shifter"
	SkillSuperGlasses = "super_glasses"
	SkillSkyWalker    = "sky_walker"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func DefaultRigSpec() RigSpec {
	p := grapple.DefaultParams()
	ss := skill.DefaultSizeShifterConfig()
	sg := skill.DefaultSuperGlassesConfig()
	sw := skill.DefaultSkyWalkerConfig()
	return RigSpec{
		Name: "rig",
		Physics: PhysicsSpec{
			Gravity:    p.Gravity,
			GroundMinX: -100,
			GroundMaxX: 100,
		},
		Timing: TimingSpec{FixedHz: 50, MaxFixedSteps: 8},
		Grapple: GrappleSpec{
			HookRange:            p.HookRange,
			MaxAngle:             p.MaxAngle,
			SpringStiffness:      p.SpringStiffness,
			Damping:              p.Damping,
			GravityCounterFactor: p.GravityCounterFactor,
			Cooldown:             p.Cooldown,
			SnapAnchorHeight:     p.SnapAnchorHeight,
			AnchorHeightOffset:   p.AnchorHeightOffset,
			RopeSegments:         p.RopeSegments,
			RopeSag:              p.RopeSag,
		},
		Skills: SkillsSpec{
			Roster: []string{SkillGrapple, SkillSizeShifter, SkillSuperGlasses, SkillSkyWalker},
			SizeShifter: SizeShifterSpec{
				SmallScale:    0.5,
				LargeScale:    2,
				SmallSpeed:    ss.SmallSpeed,
				SmallJump:     ss.SmallJump,
				LargeSpeed:    ss.LargeSpeed,
				LargeJump:     ss.LargeJump,
				Cooldown:      ss.Cooldown,
				TweenDuration: ss.TweenDuration,
			},
			SuperGlasses: SuperGlassesSpec{
				Cooldown:      sg.Cooldown,
				TweenDuration: sg.TweenDuration,
				OnPitch:       sg.OnPitch,
				OffPitch:      sg.OffPitch,
			},
			SkyWalker: SkyWalkerSpec{
				BackwardPush:  sw.BackwardPush,
				DetachLockout: sw.DetachLockout,
				GlassSpeed:    sw.GlassSpeed,
				ActiveScale:   sw.ActiveScale,
				InactiveScale: sw.InactiveScale,
			},
		},
	}
}

func (r RigSpec) Validate() error {
	if r.Timing.FixedHz <= 0 {
		return fmt.Errorf("%w: fixed_hz must be positive, got %v", ErrInvalidRig, r.Timing.FixedHz)
	}
	if r.Timing.MaxFixedSteps < 1 {
		return fmt.Errorf("%w: max_fixed_steps must be at least 1", ErrInvalidRig)
	}
	if r.Physics.Gravity < 0 {
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidRig)
	}
	if err := r.Grapple.Params(r.Physics.Gravity).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRig, err)
	}
	if len(r.Skills.Roster) == 0 {
		return fmt.Errorf("%w: empty skill roster", ErrInvalidRig)
	}
	known := map[string]bool{
		SkillGrapple:      true,
		SkillSizeShifter:  true,
		SkillSuperGlasses: true,
		SkillSkyWalker:    true,
	}
	for _, s := range r.Skills.Scripted {
		if s.Name == "" || s.Script == "" {
			return fmt.Errorf("%w: scripted skill needs name and script", ErrInvalidRig)
		}
		if known[s.Name] {
			return fmt.Errorf("%w: scripted skill %q shadows a built-in", ErrInvalidRig, s.Name)
		}
		known[s.Name] = true
	}
	seen := map[string]bool{}
	for _, name := range r.Skills.Roster {
		if !known[name] {
			return fmt.Errorf("%w: unknown skill %q", ErrInvalidRig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: skill %q listed twice", ErrInvalidRig, name)
		}
		seen[name] = true
	}
	if r.Skills.EquipOnStart < -1 || r.Skills.EquipOnStart >= len(r.Skills.Roster) {
		return fmt.Errorf("%w: equip_on_start %d out of range", ErrInvalidRig, r.Skills.EquipOnStart)
	}
	return nil
}

// FixedDt is the physics step length in seconds.
func (t TimingSpec) FixedDt() float64 {
	return 1 / t.FixedHz
}

// Params converts the spec to solver params. Gravity comes from the world.
func (g GrappleSpec) Params(gravity float64) grapple.Params {
	return grapple.Params{
		HookRange:            g.HookRange,
		MaxAngle:             g.MaxAngle,
		SpringStiffness:      g.SpringStiffness,
		Damping:              g.Damping,
		GravityCounterFactor: g.GravityCounterFactor,
		Cooldown:             g.Cooldown,
		Gravity:              gravity,
		SnapAnchorHeight:     g.SnapAnchorHeight,
		AnchorHeightOffset:   g.AnchorHeightOffset,
		RopeSegments:         g.RopeSegments,
		RopeSag:              g.RopeSag,
	}
}

func (a AppearanceSpec) Appearance() skill.Appearance {
	return skill.Appearance{Mesh: a.Mesh, Material: a.Material}
}

// Config builds the size shifter config relative to the holder's scale.
func (s SizeShifterSpec) Config(normal common.Vec3) skill.SizeShifterConfig {
	return skill.SizeShifterConfig{
		Small:         normal.Scale(s.SmallScale),
		Large:         normal.Scale(s.LargeScale),
		SmallSpeed:    s.SmallSpeed,
		SmallJump:     s.SmallJump,
		LargeSpeed:    s.LargeSpeed,
		LargeJump:     s.LargeJump,
		Cooldown:      s.Cooldown,
		TweenDuration: s.TweenDuration,
	}
}

func (s SuperGlassesSpec) Config() skill.SuperGlassesConfig {
	return skill.SuperGlassesConfig{
		Cooldown:      s.Cooldown,
		TweenDuration: s.TweenDuration,
		OnPitch:       s.OnPitch,
		OffPitch:      s.OffPitch,
	}
}

func (s SkyWalkerSpec) Config() skill.SkyWalkerConfig {
	return skill.SkyWalkerConfig{
		BackwardPush:  s.BackwardPush,
		DetachLockout: s.DetachLockout,
		GlassSpeed:    s.GlassSpeed,
		ActiveScale:   s.ActiveScale,
		InactiveScale: s.InactiveScale,
	}
}

// Position returns the spec's position.
func (t TransformComponentSpec) Position() common.Vec3 {
	return common.V3(t.X, t.Y, t.Z)
}

// ForwardVec defaults to +X when unset.
func (t TransformComponentSpec) ForwardVec() common.Vec3 {
	f := common.V3(t.Forward[0], t.Forward[1], t.Forward[2])
	if f.IsZero() {
		return common.Right
	}
	return f.Normalize()
}

// ScaleVec defaults to unit scale when unset.
func (t TransformComponentSpec) ScaleVec() common.Vec3 {
	if t.Scale <= 0 {
		return common.V3(1, 1, 1)
	}
	return common.V3(t.Scale, t.Scale, t.Scale)
}
