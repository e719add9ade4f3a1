package grapple

import (
	"log/slog"

	"github.com/milk9111/grapplerig/common"
)

type State int

const (
	StateIdle State = iota
	StateTargeting
	StateAttached
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTargeting:
		return "targeting"
	case StateAttached:
		return "attached"
	}
	return "unknown"
}

// Attachment is the rope geometry fixed at attach time.
type Attachment struct {
	Anchor     common.Vec3
	RestLength float64
}

// Solver owns the grapple state for a single player. It is not safe for
// concurrent use; the driver calls it from one goroutine.
type Solver struct {
	params Params
	sink   HighlightSink
	logger *slog.Logger

	state      State
	selected   Selection
	attachment Attachment
	cooldown   float64
}

type Option func(*Solver)

func WithHighlightSink(sink HighlightSink) Option {
	return func(s *Solver) {
		if sink != nil {
			s.sink = sink
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSolver(params Params, opts ...Option) (*Solver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		params: params,
		sink:   nopHighlight{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Solver) Params() Params { return s.params }

func (s *Solver) State() State { return s.state }

func (s *Solver) Attached() bool { return s.state == StateAttached }

// Attachment returns the anchor and rest length while attached.
func (s *Solver) Attachment() (Attachment, bool) {
	return s.attachment, s.state == StateAttached
}

func (s *Solver) Selected() (Point, bool) {
	return s.selected.Point, s.selected.OK
}

// Cooldown returns the seconds left before the next attach/detach action.
func (s *Solver) Cooldown() float64 { return s.cooldown }

// Advance counts the cooldown down by dt.
func (s *Solver) Advance(dt float64) {
	if dt <= 0 || s.cooldown <= 0 {
		return
	}
	s.cooldown -= dt
	if s.cooldown < 0 {
		s.cooldown = 0
	}
}

// AcquireTarget refreshes the selection from this tick's candidates. While
// attached the selection is frozen and the current anchor point is returned.
func (s *Solver) AcquireTarget(playerPos, playerForward common.Vec3, candidates []Point) (Point, bool) {
	if s.state == StateAttached {
		return s.selected.Point, s.selected.OK
	}
	p, ok := SelectTarget(s.params, playerPos, playerForward, candidates)
	s.setSelection(Selection{Point: p, OK: ok})
	if ok {
		s.state = StateTargeting
	} else {
		s.state = StateIdle
	}
	return p, ok
}

// Attach fixes the rope to anchor. It is a no-op unless a candidate is
// selected, the rope is free and the cooldown has elapsed.
func (s *Solver) Attach(anchor, playerPos common.Vec3) (Attachment, bool) {
	if !s.selected.OK || s.state == StateAttached || s.cooldown > 0 {
		return Attachment{}, false
	}
	s.attachment = Attachment{
		Anchor:     anchor,
		RestLength: playerPos.Dist(anchor),
	}
	s.state = StateAttached
	s.cooldown = s.params.Cooldown
	s.logger.Debug("grapple attached",
		slog.String("point", s.selected.Point.ID),
		slog.Float64("rest_length", s.attachment.RestLength),
	)
	return s.attachment, true
}

// Detach frees the rope and drops the selection. It is a no-op unless
// attached.
func (s *Solver) Detach() bool {
	if s.state != StateAttached {
		return false
	}
	s.clear()
	s.cooldown = s.params.Cooldown
	s.logger.Debug("grapple detached")
	return true
}

// Toggle attaches to the selection or detaches, gated by the cooldown.
func (s *Solver) Toggle(playerPos common.Vec3) bool {
	if s.cooldown > 0 {
		return false
	}
	if s.state == StateAttached {
		return s.Detach()
	}
	if !s.selected.OK {
		s.logger.Debug("grapple: no point in range")
		return false
	}
	_, ok := s.Attach(s.selected.Point.Pos, playerPos)
	return ok
}

// Release detaches and clears the selection regardless of cooldown.
func (s *Solver) Release() {
	if s.state == StateAttached {
		s.logger.Debug("grapple released")
	}
	s.clear()
}

func (s *Solver) clear() {
	s.attachment = Attachment{}
	s.state = StateIdle
	s.setSelection(Selection{})
}

func (s *Solver) setSelection(next Selection) {
	prev := s.selected
	if samePoint(prev, next) {
		// same point, its position may have moved
		s.selected = next
		return
	}
	s.selected = next
	s.sink.SelectionChanged(prev, next)
}

// samePoint compares by ID, falling back to position for anonymous points.
func samePoint(a, b Selection) bool {
	if a.OK != b.OK {
		return false
	}
	if !a.OK {
		return true
	}
	if a.Point.ID != "" || b.Point.ID != "" {
		return a.Point.ID == b.Point.ID
	}
	return a.Point.Pos == b.Point.Pos
}
