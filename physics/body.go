package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapplerig/common"
)

// Body is a dynamic body in a World. Forces added between steps accumulate
// and are applied on the next World.Step. Chipmunk simulates X and Y; depth
// (Z) has no collision and is integrated by the world directly.
type Body struct {
	body    *cp.Body
	shape   *cp.Shape
	pending cp.Vector
	gravity bool

	depth        float64
	depthVel     float64
	pendingDepth float64
	forward      common.Vec3
}

func (b *Body) Position() common.Vec3 {
	p := common.FromSide(b.body.Position())
	p.Z = b.depth
	return p
}

func (b *Body) SetPosition(p common.Vec3) {
	b.body.SetPosition(p.Side())
	b.depth = p.Z
}

func (b *Body) Velocity() common.Vec3 {
	v := common.FromSide(b.body.Velocity())
	v.Z = b.depthVel
	return v
}

func (b *Body) SetVelocity(v common.Vec3) {
	b.body.SetVelocityVector(v.Side())
	b.depthVel = v.Z
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// AddForce queues a force for the next step.
func (b *Body) AddForce(f common.Vec3) {
	b.pending = b.pending.Add(f.Side())
	b.pendingDepth += f.Z
}

// PendingForce returns the force queued for the next step.
func (b *Body) PendingForce() common.Vec3 {
	f := common.FromSide(b.pending)
	f.Z = b.pendingDepth
	return f
}

// AddVelocity applies an instant velocity change regardless of mass.
func (b *Body) AddVelocity(dv common.Vec3) {
	b.body.SetVelocityVector(b.body.Velocity().Add(dv.Side()))
	b.depthVel += dv.Z
}

// stepDepth integrates the depth axis with semi-implicit Euler.
func (b *Body) stepDepth(dt float64) {
	b.depthVel += b.pendingDepth / b.body.Mass() * dt
	b.depth += b.depthVel * dt
	b.pendingDepth = 0
}

func (b *Body) SetGravityEnabled(enabled bool) { b.gravity = enabled }
func (b *Body) GravityEnabled() bool           { return b.gravity }

// Forward is the facing direction used for targeting.
func (b *Body) Forward() common.Vec3 { return b.forward }

func (b *Body) SetForward(f common.Vec3) {
	if f.IsZero() {
		return
	}
	b.forward = f.Normalize()
}
