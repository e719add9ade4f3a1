package movement

import (
	"testing"

	"github.com/milk9111/grapplerig/common"
	"github.com/stretchr/testify/assert"
)

func TestController_SpeedFactorScalesVelocity(t *testing.T) {
	c := NewController(6, 5)

	v, ok := c.Velocity(1, 0, false, common.V3(0, -2, 0))
	assert.True(t, ok)
	assert.Equal(t, common.V3(6, -2, 0), v)

	c.SetSpeedFactor(0.5)
	v, _ = c.Velocity(1, 0, false, common.Vec3{})
	assert.Equal(t, common.V3(3, 0, 0), v)

	c.SetSpeedFactor(-3)
	assert.Zero(t, c.SpeedFactor())
}

func TestController_DiagonalIsNormalized(t *testing.T) {
	c := NewController(4, 5)
	v, _ := c.Velocity(1, 1, false, common.Vec3{})
	assert.InDelta(t, 4, v.Len(), 1e-9)
}

func TestController_JumpFactor(t *testing.T) {
	c := NewController(4, 10)
	c.SetJumpFactor(1.5)
	v, _ := c.Velocity(0, 0, true, common.Vec3{})
	assert.Equal(t, 15.0, v.Y)
}

func TestController_Disabled(t *testing.T) {
	c := NewController(4, 10)
	c.SetEnabled(false)
	cur := common.V3(1, 2, 3)
	v, ok := c.Velocity(1, 0, true, cur)
	assert.False(t, ok)
	assert.Equal(t, cur, v)
	assert.False(t, c.Enabled())
}
