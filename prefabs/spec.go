package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRig = errors.New("prefabs: invalid rig")

// RigFile is the default rig prefab name.
const RigFile = "rig.yaml"

// LoadInto decodes filename over out, so fields the file leaves out keep
// their current values.
func (l Loader) LoadInto(filename string, out any) error {
	data, err := l.Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// LoadRig reads a rig prefab on top of DefaultRigSpec and validates it.
func (l Loader) LoadRig(filename string) (RigSpec, error) {
	spec := DefaultRigSpec()
	if err := l.LoadInto(filename, &spec); err != nil {
		return RigSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return RigSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// RigSpec describes a whole grapple rig: world, tuning and entities.
type RigSpec struct {
	Name     string            `yaml:"name"`
	Physics  PhysicsSpec       `yaml:"physics"`
	Timing   TimingSpec        `yaml:"timing"`
	Grapple  GrappleSpec       `yaml:"grapple"`
	Skills   SkillsSpec        `yaml:"skills"`
	Entities []EntityBuildSpec `yaml:"entities"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	GroundY    float64 `yaml:"ground_y"`
	GroundMinX float64 `yaml:"ground_min_x"`
	GroundMaxX float64 `yaml:"ground_max_x"`
	NoGround   bool    `yaml:"no_ground"`
}

type TimingSpec struct {
	FixedHz float64 `yaml:"fixed_hz"`
	// MaxFixedSteps caps catch-up steps per frame.
	MaxFixedSteps int `yaml:"max_fixed_steps"`
}

type GrappleSpec struct {
	HookRange            float64 `yaml:"hook_range"`
	MaxAngle             float64 `yaml:"max_angle"`
	SpringStiffness      float64 `yaml:"spring_stiffness"`
	Damping              float64 `yaml:"damping"`
	GravityCounterFactor float64 `yaml:"gravity_counter_factor"`
	Cooldown             float64 `yaml:"cooldown"`
	SnapAnchorHeight     bool    `yaml:"snap_anchor_height"`
	AnchorHeightOffset   float64 `yaml:"anchor_height_offset"`
	RopeSegments         int     `yaml:"rope_segments"`
	RopeSag              float64 `yaml:"rope_sag"`
}

type AppearanceSpec struct {
	Mesh     string `yaml:"mesh"`
	Material string `yaml:"material"`
}

type SkillsSpec struct {
	// Roster lists skill names in equip order.
	Roster []string `yaml:"roster"`
	// EquipOnStart is the roster index equipped when the rig is built, or -1
	// to start with nothing equipped.
	EquipOnStart int                       `yaml:"equip_on_start"`
	Appearances  map[string]AppearanceSpec `yaml:"appearances"`
	SizeShifter  SizeShifterSpec           `yaml:"size_shifter"`
	SuperGlasses SuperGlassesSpec          `yaml:"super_glasses"`
	SkyWalker    SkyWalkerSpec             `yaml:"sky_walker"`
	Scripted     []ScriptedSkillSpec       `yaml:"scripted"`
}

type SizeShifterSpec struct {
	SmallScale    float64 `yaml:"small_scale"`
	LargeScale    float64 `yaml:"large_scale"`
	SmallSpeed    float64 `yaml:"small_speed"`
	SmallJump     float64 `yaml:"small_jump"`
	LargeSpeed    float64 `yaml:"large_speed"`
	LargeJump     float64 `yaml:"large_jump"`
	Cooldown      float64 `yaml:"cooldown"`
	TweenDuration float64 `yaml:"tween_duration"`
}

type SuperGlassesSpec struct {
	Cooldown      float64 `yaml:"cooldown"`
	TweenDuration float64 `yaml:"tween_duration"`
	OnPitch       float64 `yaml:"on_pitch"`
	OffPitch      float64 `yaml:"off_pitch"`
}

type SkyWalkerSpec struct {
	BackwardPush  float64 `yaml:"backward_push"`
	DetachLockout float64 `yaml:"detach_lockout"`
	GlassSpeed    float64 `yaml:"glass_speed"`
	ActiveScale   float64 `yaml:"active_scale"`
	InactiveScale float64 `yaml:"inactive_scale"`
}

type ScriptedSkillSpec struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`
}

// Component specs decoded from EntityBuildSpec.Components.

type TransformComponentSpec struct {
	X       float64    `yaml:"x"`
	Y       float64    `yaml:"y"`
	Z       float64    `yaml:"z"`
	Forward [3]float64 `yaml:"forward"`
	Scale   float64    `yaml:"scale"`
}

type GrapplePointComponentSpec struct {
	ID string `yaml:"id"`
}

type PhysicsBodyComponentSpec struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

type MovementComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type GlassPanelComponentSpec struct {
	MinX  float64 `yaml:"min_x"`
	MaxX  float64 `yaml:"max_x"`
	MinY  float64 `yaml:"min_y"`
	MaxY  float64 `yaml:"max_y"`
	Z     float64 `yaml:"z"`
	Reach float64 `yaml:"reach"`
}

// VentAreaComponentSpec is one end of a crawl vent. Entrance marks the end
// that locks the size shifter on the way out.
type VentAreaComponentSpec struct {
	MinX     float64 `yaml:"min_x"`
	MaxX     float64 `yaml:"max_x"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	MinZ     float64 `yaml:"min_z"`
	MaxZ     float64 `yaml:"max_z"`
	Entrance bool    `yaml:"entrance"`
}
