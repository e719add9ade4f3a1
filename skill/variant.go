package skill

import (
	"github.com/milk9111/grapplerig/common"
	"github.com/milk9111/grapplerig/grapple"
)

// Variant is one equippable ability. MainAction and SecondaryAction must be
// no-ops while the variant is inactive.
type Variant interface {
	Name() string
	Active() bool
	Activate()
	Deactivate()
	MainAction()
	SecondaryAction()
	ChangeAppearance()
}

// Ticker is implemented by variants that advance on the frame cadence.
type Ticker interface {
	Tick(dt float64)
}

// FixedTicker is implemented by variants that advance on the physics cadence.
type FixedTicker interface {
	FixedTick(dt float64)
}

// Body is the player's physics body as seen by skills.
type Body interface {
	Position() common.Vec3
	Velocity() common.Vec3
	Forward() common.Vec3
	Mass() float64
	AddForce(f common.Vec3)
	AddVelocity(dv common.Vec3)
	SetVelocity(v common.Vec3)
	SetGravityEnabled(enabled bool)
}

// SpeedSink consumes the movement speed factor.
type SpeedSink interface {
	SetSpeedFactor(f float64)
}

// Mover is the player's movement controller.
type Mover interface {
	SpeedSink
	SetJumpFactor(f float64)
	SetEnabled(enabled bool)
	BaseSpeed() float64
}

// ScaleSink owns the player's visual/collision scale.
type ScaleSink interface {
	Scale() common.Vec3
	SetScale(s common.Vec3)
}

// CandidateSource supplies this tick's grapple points.
type CandidateSource interface {
	GrapplePoints() []grapple.Point
}

type CandidateFunc func() []grapple.Point

func (f CandidateFunc) GrapplePoints() []grapple.Point { return f() }
