package skill

// GlassesRig is the visual rig the glasses drive.
type GlassesRig interface {
	SetVisible(visible bool)
	SetPitch(deg float64)
	SetLight(on bool)
}

type SuperGlassesConfig struct {
	Cooldown      float64
	TweenDuration float64
	OnPitch       float64 // degrees, glasses over the eyes
	OffPitch      float64 // degrees, glasses flipped up
}

func DefaultSuperGlassesConfig() SuperGlassesConfig {
	return SuperGlassesConfig{
		Cooldown:      0.5,
		TweenDuration: 0.3,
		OnPitch:       0,
		OffPitch:      -90,
	}
}

// SuperGlasses flips a pair of glasses down and lights them up.
type SuperGlasses struct {
	Base

	cfg SuperGlassesConfig
	rig GlassesRig

	on       bool
	pitch    float64
	cooldown float64
	tween    *Tween[float64]
}

func NewSuperGlasses(base Base, cfg SuperGlassesConfig, rig GlassesRig) *SuperGlasses {
	g := &SuperGlasses{
		Base:  base,
		cfg:   cfg,
		rig:   rig,
		pitch: cfg.OffPitch,
	}
	rig.SetVisible(false)
	rig.SetLight(false)
	return g
}

func (g *SuperGlasses) On() bool         { return g.on }
func (g *SuperGlasses) Pitch() float64   { return g.pitch }
func (g *SuperGlasses) Moving() bool     { return g.tween != nil }
func (g *SuperGlasses) Cooldown() float64 { return g.cooldown }

func (g *SuperGlasses) Activate() {
	g.Base.Activate()
	g.rig.SetVisible(true)
	g.rig.SetLight(g.on)
}

func (g *SuperGlasses) Deactivate() {
	g.Base.Deactivate()
	g.rig.SetVisible(false)
	g.rig.SetLight(false)
	if g.on {
		g.toggle()
	}
}

func (g *SuperGlasses) MainAction() {
	if !g.active || g.cooldown > 0 {
		return
	}
	g.cooldown = g.cfg.Cooldown
	g.toggle()
}

func (g *SuperGlasses) Tick(dt float64) {
	if g.active && g.cooldown > 0 {
		g.cooldown -= dt
		if g.cooldown < 0 {
			g.cooldown = 0
		}
	}
	if g.tween == nil {
		return
	}
	v, done := g.tween.Advance(dt)
	g.pitch = v
	g.rig.SetPitch(v)
	if done {
		g.tween = nil
		g.rig.SetLight(g.on)
	}
}

func (g *SuperGlasses) toggle() {
	g.on = !g.on
	target := g.cfg.OffPitch
	if g.on {
		target = g.cfg.OnPitch
	}
	g.tween = NewScalarTween(g.pitch, target, g.cfg.TweenDuration)
}
