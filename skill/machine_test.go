package skill

import (
	"fmt"
	"testing"

	"github.com/milk9111/grapplerig/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, names ...string) (*SlotMachine, []*fakeVariant, *recorder) {
	t.Helper()
	rec := &recorder{}
	fakes := make([]*fakeVariant, len(names))
	roster := make([]Variant, len(names))
	for i, n := range names {
		fakes[i] = newFake(n, rec)
		roster[i] = fakes[i]
	}
	m, err := NewSlotMachine(roster, WithMachineLogger(quietLogger))
	require.NoError(t, err)
	return m, fakes, rec
}

func TestNewSlotMachine_Errors(t *testing.T) {
	_, err := NewSlotMachine(nil)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = NewSlotMachine([]Variant{newFake("a", &recorder{}), nil})
	assert.ErrorIs(t, err, ErrNilVariant)
}

func TestSlotMachine_StartsWithNothingEquipped(t *testing.T) {
	m, fakes, rec := newTestMachine(t, "a", "b")

	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.Equipped())
	for _, f := range fakes {
		assert.False(t, f.Active())
	}

	m.DispatchMainAction()
	m.DispatchSecondaryAction()
	assert.Empty(t, rec.calls)
}

func TestSlotMachine_EquipAtSwapsInOrder(t *testing.T) {
	m, fakes, rec := newTestMachine(t, "a", "b", "c")

	require.True(t, m.EquipAt(0))
	assert.Equal(t, []string{"activate a"}, rec.calls)

	rec.reset()
	require.True(t, m.EquipAt(2))
	assert.Equal(t, []string{"deactivate a", "activate c"}, rec.calls)
	assert.False(t, fakes[0].Active())
	assert.True(t, fakes[2].Active())

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "c", cur.Name())
}

func TestSlotMachine_EquipAtOutOfRangeIsNoop(t *testing.T) {
	m, _, rec := newTestMachine(t, "a", "b")
	m.EquipAt(1)
	rec.reset()

	for _, i := range []int{-1, 2, 100} {
		assert.False(t, m.EquipAt(i), "index %d", i)
	}
	assert.Empty(t, rec.calls)
	assert.Equal(t, 1, m.Cursor())
}

func TestSlotMachine_ReequipSameIndex(t *testing.T) {
	m, fakes, rec := newTestMachine(t, "a", "b")
	m.EquipAt(1)
	rec.reset()

	m.EquipAt(1)
	assert.Equal(t, []string{"deactivate b", "activate b"}, rec.calls)
	assert.True(t, fakes[1].Active())
}

func TestSlotMachine_EquipNextWrapsAround(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("v%d", i)
			}
			m, fakes, rec := newTestMachine(t, names...)
			m.EquipAt(0)

			for i := 0; i < n; i++ {
				rec.reset()
				prev := m.Cursor()
				m.EquipNext()
				next := m.Cursor()
				assert.Equal(t, (prev+1)%n, next)
				assert.Equal(t, []string{
					"deactivate " + names[prev],
					"activate " + names[next],
				}, rec.calls)
			}
			assert.Equal(t, 0, m.Cursor())

			active := 0
			for _, f := range fakes {
				if f.Active() {
					active++
				}
			}
			assert.Equal(t, 1, active)
		})
	}
}

func TestSlotMachine_EquipPreviousWrapsAround(t *testing.T) {
	m, _, _ := newTestMachine(t, "a", "b", "c")
	m.EquipAt(0)

	m.EquipPrevious()
	assert.Equal(t, 2, m.Cursor())
	m.EquipPrevious()
	assert.Equal(t, 1, m.Cursor())
}

func TestSlotMachine_EquipNextFromNothing(t *testing.T) {
	m, _, rec := newTestMachine(t, "a", "b")

	m.EquipNext()
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, []string{"activate b"}, rec.calls)
}

func TestSlotMachine_DispatchReachesOnlyEquipped(t *testing.T) {
	m, _, rec := newTestMachine(t, "a", "b")
	m.EquipAt(0)
	m.EquipAt(1)
	rec.reset()

	m.DispatchMainAction()
	m.DispatchSecondaryAction()
	assert.Equal(t, []string{"main b", "secondary b"}, rec.calls)
}

func TestSlotMachine_Handle(t *testing.T) {
	m, _, rec := newTestMachine(t, "a", "b")

	m.Handle(input.NextSkill)
	m.Handle(input.MainAction)
	m.Handle(input.PreviousSkill)
	m.Handle(input.SecondaryAction)

	assert.Equal(t, []string{
		"activate b",
		"main b",
		"deactivate b",
		"activate a",
		"secondary a",
	}, rec.calls)
}

func TestSlotMachine_OnEquipObserver(t *testing.T) {
	rec := &recorder{}
	a, b := newFake("a", rec), newFake("b", rec)

	var seen []string
	m, err := NewSlotMachine([]Variant{a, b}, OnEquip(func(prev, next Variant) {
		p := "<nil>"
		if prev != nil {
			p = prev.Name()
		}
		seen = append(seen, p+"->"+next.Name())
	}), WithMachineLogger(quietLogger))
	require.NoError(t, err)

	m.EquipAt(0)
	m.EquipNext()
	assert.Equal(t, []string{"<nil>->a", "a->b"}, seen)
}

func TestSlotMachine_Close(t *testing.T) {
	m, fakes, rec := newTestMachine(t, "a", "b")
	m.EquipAt(1)
	rec.reset()

	m.Close()
	assert.Equal(t, []string{"deactivate b"}, rec.calls)
	assert.False(t, m.Equipped())
	assert.False(t, fakes[1].Active())

	rec.reset()
	m.DispatchMainAction()
	m.Close()
	assert.Empty(t, rec.calls)
}

type tickingFake struct {
	*fakeVariant
	ticks, fixed int
}

func (f *tickingFake) Tick(dt float64)      { f.ticks++ }
func (f *tickingFake) FixedTick(dt float64) { f.fixed++ }

func TestSlotMachine_TicksWholeRoster(t *testing.T) {
	rec := &recorder{}
	a := &tickingFake{fakeVariant: newFake("a", rec)}
	b := newFake("b", rec)
	c := &tickingFake{fakeVariant: newFake("c", rec)}

	m, err := NewSlotMachine([]Variant{a, b, c}, WithMachineLogger(quietLogger))
	require.NoError(t, err)
	m.EquipAt(0)

	m.Tick(0.016)
	m.Tick(0.016)
	m.FixedTick(0.02)

	assert.Equal(t, 2, a.ticks)
	assert.Equal(t, 2, c.ticks)
	assert.Equal(t, 1, a.fixed)
	assert.Equal(t, 1, c.fixed)
}
