package physics

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapplerig/common"
)

const (
	collisionTypeGround cp.CollisionType = iota + 1
	collisionTypeBody
)

// World owns the Chipmunk space. The simulation runs in the side-view plane:
// world X and Y map to the space, depth (Z) is carried by callers only.
type World struct {
	space  *cp.Space
	bodies []*Body
	logger *slog.Logger
}

// NewWorld creates a space with gravity pulling along -Y.
func NewWorld(gravity float64, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &World{space: space, logger: logger}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddGround adds a static floor segment at height y spanning [minX, maxX].
func (w *World) AddGround(y, minX, maxX float64) {
	if w == nil || w.space == nil {
		return
	}
	seg := cp.NewSegment(w.space.StaticBody, cp.Vector{X: minX, Y: y}, cp.Vector{X: maxX, Y: y}, 0)
	seg.SetFriction(0.8)
	seg.SetCollisionType(collisionTypeGround)
	w.space.AddShape(seg)
	w.logger.Debug("physics: ground added", slog.Float64("y", y), slog.Float64("min_x", minX), slog.Float64("max_x", maxX))
}

// NewBody adds a dynamic circle body with locked rotation.
func (w *World) NewBody(mass, radius float64, pos common.Vec3) *Body {
	if mass <= 0 {
		mass = 1
	}
	if radius <= 0 {
		radius = 0.5
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(pos.Side())
	shape := cp.NewCircle(cpBody, radius, cp.Vector{})
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeBody)

	b := &Body{
		body:    cpBody,
		shape:   shape,
		gravity: true,
		depth:   pos.Z,
		forward: common.Right,
	}
	cpBody.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		if !b.gravity {
			gravity = cp.Vector{}
		}
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
	})

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)
	w.bodies = append(w.bodies, b)
	w.logger.Debug("physics: body added", slog.Float64("mass", mass), slog.Float64("radius", radius))
	return b
}

// RemoveBody takes a body out of the space.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil {
		return
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.space.RemoveShape(b.shape)
			w.space.RemoveBody(b.body)
			return
		}
	}
}

// Step applies accumulated forces and advances the space by dt.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.body.SetForce(b.pending)
		b.pending = cp.Vector{}
		b.stepDepth(dt)
	}
	w.space.Step(dt)
}
