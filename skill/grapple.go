package skill

import (
	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/grapple"
)

// GrappleSkill drives a grapple.Solver from the player's body: acquisition
// on the frame cadence, rope tension on the physics cadence.
type GrappleSkill struct {
	Base

	solver *grapple.Solver
	body   Body
	points CandidateSource
	speed  SpeedSink

	slowed bool
	last   grapple.Tension
}

func NewGrappleSkill(base Base, solver *grapple.Solver, body Body, points CandidateSource, speed SpeedSink) *GrappleSkill {
	return &GrappleSkill{
		Base:   base,
		solver: solver,
		body:   body,
		points: points,
		speed:  speed,
	}
}

func (g *GrappleSkill) Solver() *grapple.Solver { return g.solver }

// LastTension returns the output of the most recent physics step.
func (g *GrappleSkill) LastTension() grapple.Tension { return g.last }

func (g *GrappleSkill) Deactivate() {
	g.Base.Deactivate()
	g.solver.Release()
	g.resetSpeed()
}

// MainAction attaches to the highlighted point or lets go.
func (g *GrappleSkill) MainAction() {
	if !g.active {
		return
	}
	g.solver.Toggle(g.body.Position())
}

func (g *GrappleSkill) Tick(dt float64) {
	if !g.active {
		return
	}
	g.solver.Advance(dt)
	if g.solver.Attached() {
		return
	}
	var candidates []grapple.Point
	if g.points != nil {
		candidates = g.points.GrapplePoints()
	}
	g.solver.AcquireTarget(g.body.Position(), g.body.Forward(), candidates)
}

func (g *GrappleSkill) FixedTick(dt float64) {
	if !g.active {
		return
	}
	if !g.solver.Attached() {
		g.resetSpeed()
		return
	}
	t := g.solver.Step(dt, g.body.Position(), g.body.Velocity(), g.body.Mass())
	g.last = t
	g.body.AddForce(t.Force)
	if g.speed != nil {
		g.speed.SetSpeedFactor(t.SpeedFactor)
		g.slowed = true
	}
}

// Rope returns the rope polyline from the body to the anchor, or nil.
func (g *GrappleSkill) Rope() []common.Vec3 {
	return g.solver.Rope(g.body.Position())
}

func (g *GrappleSkill) resetSpeed() {
	g.last = grapple.Tension{SpeedFactor: 1}
	if !g.slowed || g.speed == nil {
		return
	}
	g.speed.SetSpeedFactor(1)
	g.slowed = false
}
