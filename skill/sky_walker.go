package skill

import "github.com/milk9111/grapplerig/common"

type SkyWalkerConfig struct {
	BackwardPush  float64 // velocity change when leaving the glass
	DetachLockout float64 // seconds before the controller is handed back
	GlassSpeed    float64 // fraction of base speed while on glass
	ActiveScale   float64
	InactiveScale float64
}

func DefaultSkyWalkerConfig() SkyWalkerConfig {
	return SkyWalkerConfig{
		BackwardPush:  5,
		DetachLockout: 0.5,
		GlassSpeed:    0.5,
		ActiveScale:   3,
		InactiveScale: 1,
	}
}

// SkyWalker lets the player stick to and crawl along glass surfaces.
type SkyWalker struct {
	Base

	cfg   SkyWalkerConfig
	body  Body
	mover Mover
	scale ScaleSink

	onGlass   bool
	detaching bool
	lockout   float64
	moveX     float64
	moveY     float64
}

func NewSkyWalker(base Base, cfg SkyWalkerConfig, body Body, mover Mover, scale ScaleSink) *SkyWalker {
	return &SkyWalker{
		Base:  base,
		cfg:   cfg,
		body:  body,
		mover: mover,
		scale: scale,
	}
}

func (s *SkyWalker) OnGlass() bool   { return s.onGlass }
func (s *SkyWalker) Detaching() bool { return s.detaching }

// SetMoveInput records the crawl direction: x is sideways, y is up.
func (s *SkyWalker) SetMoveInput(x, y float64) {
	s.moveX, s.moveY = x, y
}

// SetAgainstGlass is fed by the glass trigger. Ignored while inactive.
func (s *SkyWalker) SetAgainstGlass(status bool) {
	if !s.active {
		return
	}
	s.setOnGlass(status)
}

func (s *SkyWalker) Activate() {
	s.Base.Activate()
	if s.scale != nil {
		k := s.cfg.ActiveScale
		s.scale.SetScale(common.V3(k, k, k))
	}
}

func (s *SkyWalker) Deactivate() {
	s.setOnGlass(false)
	s.Base.Deactivate()
	if s.scale != nil {
		k := s.cfg.InactiveScale
		s.scale.SetScale(common.V3(k, k, k))
	}
}

// MainAction pushes the player off the glass.
func (s *SkyWalker) MainAction() {
	if !s.active || !s.onGlass || s.detaching {
		return
	}
	s.detaching = true
	s.lockout = s.cfg.DetachLockout
	s.setOnGlass(false)
	s.body.AddVelocity(s.body.Forward().Scale(-s.cfg.BackwardPush))
}

func (s *SkyWalker) Tick(dt float64) {
	if !s.detaching {
		return
	}
	s.lockout -= dt
	if s.lockout > 0 {
		return
	}
	s.lockout = 0
	s.detaching = false
	if !s.onGlass {
		s.mover.SetEnabled(true)
	}
}

func (s *SkyWalker) FixedTick(dt float64) {
	if !s.active || !s.onGlass {
		return
	}
	dir := common.Up.Scale(s.moveY).Add(common.Right.Scale(s.moveX)).Normalize()
	s.body.SetVelocity(dir.Scale(s.mover.BaseSpeed() * s.cfg.GlassSpeed))
}

func (s *SkyWalker) setOnGlass(status bool) {
	if s.onGlass == status {
		return
	}
	s.onGlass = status
	if status {
		s.body.SetGravityEnabled(false)
		s.mover.SetEnabled(false)
		return
	}
	s.body.SetGravityEnabled(true)
	if !s.detaching {
		s.mover.SetEnabled(true)
	}
}
