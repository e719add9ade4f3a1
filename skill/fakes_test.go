package skill

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/milk9111/grapplerig/common"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// recorder collects lifecycle calls across variants in order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

type fakeVariant struct {
	name   string
	active bool
	rec    *recorder
}

func newFake(name string, rec *recorder) *fakeVariant {
	return &fakeVariant{name: name, rec: rec}
}

func (f *fakeVariant) Name() string { return f.name }
func (f *fakeVariant) Active() bool { return f.active }

func (f *fakeVariant) Activate() {
	f.active = true
	f.rec.add("activate %s", f.name)
}

func (f *fakeVariant) Deactivate() {
	f.active = false
	f.rec.add("deactivate %s", f.name)
}

func (f *fakeVariant) MainAction() {
	if f.active {
		f.rec.add("main %s", f.name)
	}
}

func (f *fakeVariant) SecondaryAction() {
	if f.active {
		f.rec.add("secondary %s", f.name)
	}
}

func (f *fakeVariant) ChangeAppearance() {}

type fakeBody struct {
	pos, vel, fwd common.Vec3
	mass          float64
	force         common.Vec3
	gravity       bool
}

func newFakeBody(pos common.Vec3) *fakeBody {
	return &fakeBody{pos: pos, fwd: common.Forward, mass: 1, gravity: true}
}

func (b *fakeBody) Position() common.Vec3          { return b.pos }
func (b *fakeBody) Velocity() common.Vec3          { return b.vel }
func (b *fakeBody) Forward() common.Vec3           { return b.fwd }
func (b *fakeBody) Mass() float64                  { return b.mass }
func (b *fakeBody) AddForce(f common.Vec3)         { b.force = b.force.Add(f) }
func (b *fakeBody) AddVelocity(dv common.Vec3)     { b.vel = b.vel.Add(dv) }
func (b *fakeBody) SetVelocity(v common.Vec3)      { b.vel = v }
func (b *fakeBody) SetGravityEnabled(enabled bool) { b.gravity = enabled }

type fakeMover struct {
	speed, jump float64
	enabled     bool
	base        float64
	speedCalls  int
}

func newFakeMover() *fakeMover {
	return &fakeMover{speed: 1, jump: 1, enabled: true, base: 6}
}

func (m *fakeMover) SetSpeedFactor(f float64) {
	m.speed = f
	m.speedCalls++
}
func (m *fakeMover) SetJumpFactor(f float64)  { m.jump = f }
func (m *fakeMover) SetEnabled(enabled bool)  { m.enabled = enabled }
func (m *fakeMover) BaseSpeed() float64       { return m.base }

type fakeScale struct {
	scale common.Vec3
}

func (s *fakeScale) Scale() common.Vec3     { return s.scale }
func (s *fakeScale) SetScale(v common.Vec3) { s.scale = v }

type fakeRig struct {
	visible bool
	pitch   float64
	light   bool
}

func (r *fakeRig) SetVisible(visible bool) { r.visible = visible }
func (r *fakeRig) SetPitch(deg float64)    { r.pitch = deg }
func (r *fakeRig) SetLight(on bool)        { r.light = on }
