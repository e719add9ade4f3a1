package skill

import "github.com/milk9111/grapplerig/common"

type SizeShifterConfig struct {
	// Small and Large default to half and double the holder's scale at
	// construction when left zero.
	Small common.Vec3
	Large common.Vec3

	SmallSpeed, SmallJump float64
	LargeSpeed, LargeJump float64

	Cooldown      float64
	TweenDuration float64
}

func DefaultSizeShifterConfig() SizeShifterConfig {
	return SizeShifterConfig{
		SmallSpeed:    1.8,
		SmallJump:     1.5,
		LargeSpeed:    0.75,
		LargeJump:     0.9,
		Cooldown:      0.5,
		TweenDuration: 0.2,
	}
}

// SizeShifter shrinks or grows the player, trading size for speed and jump.
type SizeShifter struct {
	Base

	cfg    SizeShifterConfig
	normal common.Vec3
	scale  ScaleSink
	mover  Mover

	small    bool
	locked   bool
	cooldown float64
	target   common.Vec3
	tween    *Tween[common.Vec3]
}

func NewSizeShifter(base Base, cfg SizeShifterConfig, scale ScaleSink, mover Mover) *SizeShifter {
	normal := scale.Scale()
	if cfg.Small.IsZero() {
		cfg.Small = normal.Scale(0.5)
	}
	if cfg.Large.IsZero() {
		cfg.Large = normal.Scale(2)
	}
	return &SizeShifter{
		Base:   base,
		cfg:    cfg,
		normal: normal,
		scale:  scale,
		mover:  mover,
		target: normal,
	}
}

func (s *SizeShifter) Small() bool        { return s.small }
func (s *SizeShifter) Locked() bool       { return s.locked }
func (s *SizeShifter) Target() common.Vec3 { return s.target }
func (s *SizeShifter) Cooldown() float64  { return s.cooldown }

func (s *SizeShifter) Activate() {
	s.Base.Activate()
	s.setNormal()
}

func (s *SizeShifter) Deactivate() {
	s.Base.Deactivate()
	s.setNormal()
}

// MainAction alternates between small and large.
func (s *SizeShifter) MainAction() {
	if !s.ready() {
		return
	}
	if s.small {
		s.setLarge()
	} else {
		s.setSmall()
	}
	s.cooldown = s.cfg.Cooldown
}

// SecondaryAction returns to normal size.
func (s *SizeShifter) SecondaryAction() {
	if !s.ready() {
		return
	}
	if s.target != s.normal {
		s.setNormal()
	}
	s.cooldown = s.cfg.Cooldown
}

// Lock freezes the current size, e.g. while squeezed into a vent.
func (s *SizeShifter) Lock() {
	if s.active {
		s.locked = true
	}
}

func (s *SizeShifter) Unlock() {
	if s.active {
		s.locked = false
	}
}

func (s *SizeShifter) Tick(dt float64) {
	if s.cooldown > 0 {
		s.cooldown -= dt
		if s.cooldown < 0 {
			s.cooldown = 0
		}
	}
	if s.tween == nil {
		return
	}
	v, done := s.tween.Advance(dt)
	s.scale.SetScale(v)
	if done {
		s.tween = nil
	}
}

func (s *SizeShifter) ready() bool {
	return s.active && !s.locked && s.cooldown <= 0
}

func (s *SizeShifter) setSmall() {
	s.small = true
	s.apply(s.cfg.Small, s.cfg.SmallSpeed, s.cfg.SmallJump)
}

func (s *SizeShifter) setLarge() {
	s.small = false
	s.apply(s.cfg.Large, s.cfg.LargeSpeed, s.cfg.LargeJump)
}

func (s *SizeShifter) setNormal() {
	s.small = false
	s.apply(s.normal, 1, 1)
}

func (s *SizeShifter) apply(target common.Vec3, speed, jump float64) {
	s.target = target
	s.tween = NewVec3Tween(s.scale.Scale(), target, s.cfg.TweenDuration)
	if s.mover != nil {
		s.mover.SetSpeedFactor(speed)
		s.mover.SetJumpFactor(jump)
	}
}
