package grapple

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("grapple: invalid params")

// Params tunes target acquisition and rope tension.
type Params struct {
	// HookRange is the maximum planar distance to a candidate.
	HookRange float64
	// MaxAngle is the half-angle of the acquisition cone, in degrees.
	MaxAngle float64

	SpringStiffness      float64
	Damping              float64
	GravityCounterFactor float64 // 0 = full gravity, 1 = weightless
	Cooldown             float64 // seconds between attach/detach actions

	Gravity float64 // magnitude, applied along -Y

	// SnapAnchorHeight moves the anchor to the player's height plus
	// AnchorHeightOffset when computing tension, so the rope never yanks the
	// player vertically.
	SnapAnchorHeight   bool
	AnchorHeightOffset float64

	RopeSegments int
	RopeSag      float64
}

func DefaultParams() Params {
	return Params{
		HookRange:            15,
		MaxAngle:             60,
		SpringStiffness:      50,
		Damping:              0.8,
		GravityCounterFactor: 0.3,
		Cooldown:             0.5,
		Gravity:              9.81,
		SnapAnchorHeight:     true,
		AnchorHeightOffset:   0.2,
		RopeSegments:         15,
		RopeSag:              0.5,
	}
}

func (p Params) Validate() error {
	switch {
	case p.HookRange < 0:
		return fmt.Errorf("%w: hook range %v < 0", ErrInvalidParams, p.HookRange)
	case p.MaxAngle < 0 || p.MaxAngle > 180:
		return fmt.Errorf("%w: max angle %v outside [0,180]", ErrInvalidParams, p.MaxAngle)
	case p.SpringStiffness < 0:
		return fmt.Errorf("%w: spring stiffness %v < 0", ErrInvalidParams, p.SpringStiffness)
	case p.Damping < 0:
		return fmt.Errorf("%w: damping %v < 0", ErrInvalidParams, p.Damping)
	case p.GravityCounterFactor < 0 || p.GravityCounterFactor > 1:
		return fmt.Errorf("%w: gravity counter factor %v outside [0,1]", ErrInvalidParams, p.GravityCounterFactor)
	case p.Cooldown < 0:
		return fmt.Errorf("%w: cooldown %v < 0", ErrInvalidParams, p.Cooldown)
	case p.Gravity < 0:
		return fmt.Errorf("%w: gravity %v < 0", ErrInvalidParams, p.Gravity)
	case p.RopeSegments < 2:
		return fmt.Errorf("%w: rope segments %d < 2", ErrInvalidParams, p.RopeSegments)
	}
	return nil
}
