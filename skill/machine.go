package skill

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/grapplerig/input"
)

var (
	ErrEmptyRoster = errors.New("skill: empty roster")
	ErrNilVariant  = errors.New("skill: nil variant in roster")
)

// SlotMachine owns a fixed roster of variants and keeps at most one of them
// equipped. It is driven from a single goroutine.
type SlotMachine struct {
	roster   []Variant
	cursor   int
	equipped bool

	// handlers bound to the equipped variant; nil while none is equipped
	main      func()
	secondary func()

	onEquip func(prev, next Variant)
	logger  *slog.Logger
}

type MachineOption func(*SlotMachine)

// OnEquip registers an observer called after every swap. prev is nil for the
// first equip.
func OnEquip(fn func(prev, next Variant)) MachineOption {
	return func(m *SlotMachine) { m.onEquip = fn }
}

func WithMachineLogger(logger *slog.Logger) MachineOption {
	return func(m *SlotMachine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewSlotMachine(roster []Variant, opts ...MachineOption) (*SlotMachine, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	for i, v := range roster {
		if v == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilVariant, i)
		}
	}
	m := &SlotMachine{
		roster: append([]Variant(nil), roster...),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *SlotMachine) Len() int { return len(m.roster) }

func (m *SlotMachine) Cursor() int { return m.cursor }

func (m *SlotMachine) Equipped() bool { return m.equipped }

// Current returns the equipped variant.
func (m *SlotMachine) Current() (Variant, bool) {
	if !m.equipped {
		return nil, false
	}
	return m.roster[m.cursor], true
}

// Roster returns a copy of the roster in equip order.
func (m *SlotMachine) Roster() []Variant {
	return append([]Variant(nil), m.roster...)
}

// EquipAt swaps to the variant at i. Out-of-range indices are ignored.
// Re-equipping the current index deactivates and reactivates it.
func (m *SlotMachine) EquipAt(i int) bool {
	if i < 0 || i >= len(m.roster) {
		return false
	}
	var prev Variant
	if m.equipped {
		prev = m.roster[m.cursor]
		m.unbind()
		prev.Deactivate()
	}
	next := m.roster[i]
	m.cursor = i
	m.equipped = true
	next.Activate()
	m.bind(next)

	m.logger.Debug("skill equipped", slog.Int("index", i), slog.String("skill", next.Name()))
	if m.onEquip != nil {
		m.onEquip(prev, next)
	}
	return true
}

func (m *SlotMachine) EquipNext() bool {
	return m.EquipAt((m.cursor + 1) % len(m.roster))
}

func (m *SlotMachine) EquipPrevious() bool {
	return m.EquipAt((m.cursor - 1 + len(m.roster)) % len(m.roster))
}

func (m *SlotMachine) DispatchMainAction() {
	if m.main != nil {
		m.main()
	}
}

func (m *SlotMachine) DispatchSecondaryAction() {
	if m.secondary != nil {
		m.secondary()
	}
}

// Handle routes one input event.
func (m *SlotMachine) Handle(ev input.Event) {
	switch ev {
	case input.NextSkill:
		m.EquipNext()
	case input.PreviousSkill:
		m.EquipPrevious()
	case input.MainAction:
		m.DispatchMainAction()
	case input.SecondaryAction:
		m.DispatchSecondaryAction()
	}
}

// Tick advances every frame-cadence variant. Variants gate on their own
// active flag so inactive ones can finish their tweens.
func (m *SlotMachine) Tick(dt float64) {
	for _, v := range m.roster {
		if t, ok := v.(Ticker); ok {
			t.Tick(dt)
		}
	}
}

// FixedTick advances every physics-cadence variant.
func (m *SlotMachine) FixedTick(dt float64) {
	for _, v := range m.roster {
		if t, ok := v.(FixedTicker); ok {
			t.FixedTick(dt)
		}
	}
}

// Close deactivates the equipped variant and returns to no equipped state.
func (m *SlotMachine) Close() {
	if !m.equipped {
		return
	}
	m.unbind()
	m.roster[m.cursor].Deactivate()
	m.equipped = false
}

func (m *SlotMachine) bind(v Variant) {
	m.main = v.MainAction
	m.secondary = v.SecondaryAction
}

func (m *SlotMachine) unbind() {
	m.main = nil
	m.secondary = nil
}
