package movement

import "github.com/milk9111/grapplerig/common"

// Controller turns move input into a target velocity. Skills scale it through
// the speed and jump factors; a disabled controller leaves the body alone.
type Controller struct {
	baseSpeed float64
	jumpSpeed float64

	speedFactor float64
	jumpFactor  float64
	disabled    bool
}

func NewController(baseSpeed, jumpSpeed float64) *Controller {
	return &Controller{
		baseSpeed:   baseSpeed,
		jumpSpeed:   jumpSpeed,
		speedFactor: 1,
		jumpFactor:  1,
	}
}

func (c *Controller) SetSpeedFactor(f float64) {
	if f < 0 {
		f = 0
	}
	c.speedFactor = f
}

func (c *Controller) SetJumpFactor(f float64) {
	if f < 0 {
		f = 0
	}
	c.jumpFactor = f
}

func (c *Controller) SpeedFactor() float64 { return c.speedFactor }
func (c *Controller) JumpFactor() float64  { return c.jumpFactor }

func (c *Controller) SetEnabled(enabled bool) { c.disabled = !enabled }
func (c *Controller) Enabled() bool           { return !c.disabled }

func (c *Controller) BaseSpeed() float64 { return c.baseSpeed }

// Speed is the base speed scaled by the current speed factor.
func (c *Controller) Speed() float64 {
	return c.baseSpeed * c.speedFactor
}

// Velocity returns the horizontal velocity for the given input, keeping the
// current vertical velocity unless a jump is requested.
func (c *Controller) Velocity(moveX, moveZ float64, jump bool, current common.Vec3) (common.Vec3, bool) {
	if c.disabled {
		return current, false
	}
	dir := common.V3(moveX, 0, moveZ)
	if dir.Len() > 1 {
		dir = dir.Normalize()
	}
	v := dir.Scale(c.Speed())
	v.Y = current.Y
	if jump {
		v.Y = c.jumpSpeed * c.jumpFactor
	}
	return v, true
}
