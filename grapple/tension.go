package grapple

import "github.com/milk9111/grapplerig/common"

// Tension is the advisory output of one physics step.
type Tension struct {
	// Force is the external force to add to the player's body this step.
	Force common.Vec3
	// Impulse is Force integrated over the step.
	Impulse common.Vec3
	// SpeedFactor scales the player's movement speed, in [0,1].
	SpeedFactor float64

	Direction     common.Vec3
	Distance      float64
	DistanceError float64
}

// Slack reports whether the rope is at or under its rest length.
func (t Tension) Slack() bool { return t.DistanceError <= 0 }

var idleTension = Tension{SpeedFactor: 1}

// Step integrates rope tension for one fixed tick. It returns a zero force
// and a speed factor of 1 when not attached.
func (s *Solver) Step(dt float64, playerPos, playerVelocity common.Vec3, playerMass float64) Tension {
	if s.state != StateAttached {
		return idleTension
	}
	p := s.params

	anchor := s.attachment.Anchor
	if p.SnapAnchorHeight {
		anchor.Y = playerPos.Y + p.AnchorHeightOffset
	}
	toAnchor := anchor.Sub(playerPos)
	dir := toAnchor.Normalize()
	dist := toAnchor.Len()

	t := Tension{
		Direction:     dir,
		Distance:      dist,
		DistanceError: dist - s.attachment.RestLength,
	}

	var force common.Vec3
	if t.DistanceError > 0 {
		force = force.Add(dir.Scale(p.SpringStiffness * t.DistanceError))
	}

	along := playerVelocity.Project(dir)
	force = force.Add(along.Scale(-p.Damping))

	force.Y += p.GravityCounterFactor * p.Gravity * playerMass

	t.Force = force
	if dt > 0 {
		t.Impulse = force.Scale(dt)
	}

	t.SpeedFactor = 1
	if dist > common.Epsilon {
		t.SpeedFactor = common.Clamp01(s.attachment.RestLength / dist)
	}
	return t
}
