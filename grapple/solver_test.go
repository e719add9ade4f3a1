package grapple

import (
	"testing"

	"github.com/milk9111/grapplerig/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	changes [][2]Selection
}

func (r *recordingSink) SelectionChanged(prev, next Selection) {
	r.changes = append(r.changes, [2]Selection{prev, next})
}

func newTestSolver(t *testing.T, p Params) (*Solver, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	s, err := NewSolver(p, WithHighlightSink(sink))
	require.NoError(t, err)
	return s, sink
}

func TestNewSolver_RejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative range", func(p *Params) { p.HookRange = -1 }},
		{"angle too wide", func(p *Params) { p.MaxAngle = 181 }},
		{"negative stiffness", func(p *Params) { p.SpringStiffness = -1 }},
		{"negative damping", func(p *Params) { p.Damping = -0.1 }},
		{"gravity counter above one", func(p *Params) { p.GravityCounterFactor = 1.5 }},
		{"negative cooldown", func(p *Params) { p.Cooldown = -1 }},
		{"single rope segment", func(p *Params) { p.RopeSegments = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := NewSolver(p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestSolver_AcquireTransitionsAndHighlights(t *testing.T) {
	s, sink := newTestSolver(t, testParams())
	a := Point{ID: "a", Pos: common.V3(0, 0, 10)}
	b := Point{ID: "b", Pos: common.V3(0, 0, 5)}

	assert.Equal(t, StateIdle, s.State())

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	assert.Equal(t, StateTargeting, s.State())
	require.Len(t, sink.changes, 1)
	assert.False(t, sink.changes[0][0].OK)
	assert.Equal(t, "a", sink.changes[0][1].Point.ID)

	// unchanged selection raises nothing
	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	assert.Len(t, sink.changes, 1)

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{b, a})
	require.Len(t, sink.changes, 2)
	assert.Equal(t, "a", sink.changes[1][0].Point.ID)
	assert.Equal(t, "b", sink.changes[1][1].Point.ID)

	s.AcquireTarget(common.Vec3{}, common.Forward, nil)
	assert.Equal(t, StateIdle, s.State())
	require.Len(t, sink.changes, 3)
	assert.False(t, sink.changes[2][1].OK)
}

func TestSolver_AttachPreconditions(t *testing.T) {
	s, _ := newTestSolver(t, testParams())
	anchor := common.V3(0, 0, 10)

	_, ok := s.Attach(anchor, common.Vec3{})
	assert.False(t, ok, "no selection")
	assert.Equal(t, StateIdle, s.State())

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{{ID: "a", Pos: anchor}})
	att, ok := s.Attach(anchor, common.Vec3{})
	require.True(t, ok)
	assert.Equal(t, StateAttached, s.State())
	assert.InDelta(t, 10, att.RestLength, 1e-9)

	before, _ := s.Attachment()
	cooldown := s.Cooldown()

	_, ok = s.Attach(common.V3(0, 0, 3), common.V3(1, 1, 1))
	assert.False(t, ok, "second attach is a no-op")
	after, attached := s.Attachment()
	assert.True(t, attached)
	assert.Equal(t, before, after)
	assert.Equal(t, cooldown, s.Cooldown())
}

func TestSolver_AttachRespectsCooldown(t *testing.T) {
	p := testParams()
	p.Cooldown = 0.5
	s, _ := newTestSolver(t, p)
	a := Point{ID: "a", Pos: common.V3(0, 0, 10)}

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	_, ok := s.Attach(a.Pos, common.Vec3{})
	require.True(t, ok)
	require.True(t, s.Detach())

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	_, ok = s.Attach(a.Pos, common.Vec3{})
	assert.False(t, ok, "cooldown still running")

	s.Advance(0.3)
	_, ok = s.Attach(a.Pos, common.Vec3{})
	assert.False(t, ok)

	s.Advance(0.3)
	assert.Zero(t, s.Cooldown())
	_, ok = s.Attach(a.Pos, common.Vec3{})
	assert.True(t, ok)
}

func TestSolver_AttachDetachRoundTrip(t *testing.T) {
	s, sink := newTestSolver(t, testParams())
	a := Point{ID: "a", Pos: common.V3(0, 0, 10)}

	assert.False(t, s.Detach(), "detach while idle")

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	_, ok := s.Attach(a.Pos, common.Vec3{})
	require.True(t, ok)

	// acquisition is frozen while attached
	got, ok := s.AcquireTarget(common.Vec3{}, common.Forward, nil)
	assert.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, StateAttached, s.State())

	require.True(t, s.Detach())
	assert.Equal(t, StateIdle, s.State())
	att, attached := s.Attachment()
	assert.False(t, attached)
	assert.Equal(t, Attachment{}, att)
	_, selected := s.Selected()
	assert.False(t, selected)
	assert.False(t, sink.changes[len(sink.changes)-1][1].OK)
}

func TestSolver_Toggle(t *testing.T) {
	p := testParams()
	p.Cooldown = 0.5
	s, _ := newTestSolver(t, p)
	a := Point{ID: "a", Pos: common.V3(0, 0, 10)}

	assert.False(t, s.Toggle(common.Vec3{}), "nothing selected")

	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	require.True(t, s.Toggle(common.Vec3{}))
	assert.True(t, s.Attached())

	assert.False(t, s.Toggle(common.Vec3{}), "cooldown gates detach too")
	s.Advance(1)
	require.True(t, s.Toggle(common.Vec3{}))
	assert.False(t, s.Attached())
}

func TestSolver_Release(t *testing.T) {
	s, sink := newTestSolver(t, testParams())
	a := Point{ID: "a", Pos: common.V3(0, 0, 10)}
	s.AcquireTarget(common.Vec3{}, common.Forward, []Point{a})
	s.Toggle(common.Vec3{})

	s.Release()
	assert.Equal(t, StateIdle, s.State())
	_, selected := s.Selected()
	assert.False(t, selected)
	assert.Len(t, sink.changes, 2)

	s.Release()
	assert.Len(t, sink.changes, 2, "release while idle raises nothing")
}
