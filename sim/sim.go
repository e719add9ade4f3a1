// Package sim runs a grapple rig headlessly: it builds an ECS world from a
// rig prefab and drives the frame and physics cadences from wall-clock deltas.
package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/ecs"
	"github.com/milk9111/grapplerig/ecs/component"
	"github.com/milk9111/grapplerig/ecs/entity"
	"github.com/milk9111/grapplerig/ecs/system"
	"github.com/milk9111/grapplerig/grapple"
	"github.com/milk9111/grapplerig/input"
	"github.com/milk9111/grapplerig/physics"
	"github.com/milk9111/grapplerig/prefabs"
)

type Sim struct {
	rig     prefabs.RigSpec
	world   *ecs.World
	physics *physics.World
	build   *entity.BuildContext

	frame *ecs.Scheduler
	fixed *ecs.Scheduler

	fixedDt  float64
	maxSteps int
	acc      float64
	elapsed  float64
	steps    int

	controls input.State
	logger   *slog.Logger
}

type options struct {
	logger *slog.Logger
	loader prefabs.Loader
	source input.Source
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLoader sets where scripts referenced by the rig are read from.
func WithLoader(l prefabs.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithInput replaces the built-in controls set through SetInput.
func WithInput(src input.Source) Option {
	return func(o *options) { o.source = src }
}

func New(rig prefabs.RigSpec, opts ...Option) (*Sim, error) {
	o := options{logger: slog.Default(), loader: prefabs.DefaultLoader}
	for _, opt := range opts {
		opt(&o)
	}
	if err := rig.Validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		rig:      rig,
		world:    ecs.NewWorld(),
		physics:  physics.NewWorld(rig.Physics.Gravity, o.logger),
		fixedDt:  rig.Timing.FixedDt(),
		maxSteps: rig.Timing.MaxFixedSteps,
		logger:   o.logger,
	}
	if !rig.Physics.NoGround {
		s.physics.AddGround(rig.Physics.GroundY, rig.Physics.GroundMinX, rig.Physics.GroundMaxX)
	}

	source := o.source
	if source == nil {
		source = input.SourceFunc(func() input.State { return s.controls })
	}

	s.build = &entity.BuildContext{
		Rig:        rig,
		Physics:    s.physics,
		Loader:     o.loader,
		Logger:     o.logger,
		Candidates: system.NewGrapplePoints(s.world),
		Highlights: system.NewHighlightEvents(s.world),
	}
	for _, spec := range rig.Entities {
		if _, err := entity.BuildEntity(s.world, spec, s.build); err != nil {
			s.Close()
			return nil, fmt.Errorf("sim: %w", err)
		}
	}

	s.frame = ecs.NewScheduler(
		system.NewInputSystem(source),
		system.NewSkillSystem(),
		system.NewHighlightSystem(o.logger),
		system.NewRopeSystem(),
	)
	s.fixed = ecs.NewScheduler(
		system.NewGlassContactSystem(),
		system.NewVentSystem(),
		system.NewPlayerControllerSystem(),
		system.NewSkillFixedSystem(),
		system.NewPhysicsSystem(s.physics),
	)

	s.logger.Info("sim ready",
		slog.String("rig", rig.Name),
		slog.Int("entities", len(ecs.Entities(s.world))),
		slog.Float64("fixed_dt", s.fixedDt),
	)
	return s, nil
}

// Frame advances the simulation by dt seconds of wall time: as many fixed
// steps as fit in the accumulated time, then one frame pass. It returns the
// number of fixed steps run.
func (s *Sim) Frame(dt float64) int {
	if dt <= 0 {
		return 0
	}
	s.acc += dt
	steps := 0
	for s.acc >= s.fixedDt && steps < s.maxSteps {
		s.fixed.Update(s.world, s.fixedDt)
		s.acc -= s.fixedDt
		steps++
	}
	if s.acc >= s.fixedDt {
		dropped := int(math.Floor(s.acc / s.fixedDt))
		s.logger.Warn("sim: falling behind, dropping fixed steps", slog.Int("dropped", dropped))
		s.acc = 0
	}
	s.steps += steps
	s.elapsed += dt

	s.frame.Update(s.world, dt)
	return steps
}

// SetInput sets the controls read on the next frame. Ignored when the sim
// was built WithInput.
func (s *Sim) SetInput(st input.State) {
	s.controls = st
}

// Close deactivates every skill and releases physics bodies.
func (s *Sim) Close() {
	for _, e := range ecs.Entities(s.world) {
		entity.Destroy(s.world, e, s.build)
	}
}

func (s *Sim) World() *ecs.World       { return s.world }
func (s *Sim) Physics() *physics.World { return s.physics }
func (s *Sim) Rig() prefabs.RigSpec    { return s.rig }
func (s *Sim) Elapsed() float64        { return s.elapsed }
func (s *Sim) FixedSteps() int         { return s.steps }

// Snapshot is a read-only view of the player's rig state.
type Snapshot struct {
	Time         float64
	Position     common.Vec3
	Velocity     common.Vec3
	Scale        common.Vec3
	Equipped     string
	GrappleState grapple.State
	Selected     string
	SpeedFactor  float64
	JumpFactor   float64
	RopePoints   int
	Highlighted  []string
}

func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{Time: s.elapsed, SpeedFactor: 1, JumpFactor: 1}
	player, ok := entity.Player(s.world)
	if !ok {
		return snap
	}
	if t, ok := ecs.Get(s.world, player, component.TransformComponent.Kind()); ok {
		snap.Position = t.Position
		snap.Scale = t.Scale
	}
	if pb, ok := ecs.Get(s.world, player, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		snap.Velocity = pb.Body.Velocity()
	}
	if mv, ok := ecs.Get(s.world, player, component.MovementComponent.Kind()); ok && mv.Controller != nil {
		snap.SpeedFactor = mv.Controller.SpeedFactor()
		snap.JumpFactor = mv.Controller.JumpFactor()
	}
	if skills, ok := ecs.Get(s.world, player, component.SkillsComponent.Kind()); ok {
		if cur, ok := skills.Machine.Current(); ok {
			snap.Equipped = cur.Name()
		}
		if skills.Grapple != nil {
			solver := skills.Grapple.Solver()
			snap.GrappleState = solver.State()
			if p, ok := solver.Selected(); ok {
				snap.Selected = p.ID
			}
		}
	}
	if line, ok := ecs.Get(s.world, player, component.RopeLineComponent.Kind()); ok {
		snap.RopePoints = len(line.Points)
	}
	ecs.ForEach2(s.world, component.GrapplePointComponent.Kind(), component.HighlightComponent.Kind(), func(e ecs.Entity, gp *component.GrapplePoint, hl *component.Highlight) {
		if hl.On {
			snap.Highlighted = append(snap.Highlighted, gp.ID)
		}
	})
	return snap
}
