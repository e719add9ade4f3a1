package component

import "testing"

func TestHandlesGetDistinctValidKinds(t *testing.T) {
	var zero ComponentKind[int]
	if zero.Valid() {
		t.Fatalf("zero kind should be invalid")
	}
	a := NewComponent[int]()
	b := NewComponent[int]()
	if !a.Kind().Valid() || !b.Kind().Valid() {
		t.Fatalf("registered kinds should be valid")
	}
	if a.Kind().ID() == b.Kind().ID() {
		t.Fatalf("two handles share id %d", a.Kind().ID())
	}
	if TransformComponent.Kind().ID() == VentAreaComponent.Kind().ID() {
		t.Fatalf("package handles share an id")
	}
}

func TestVentAreaContainsIsInclusive(t *testing.T) {
	v := VentArea{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1, MinZ: -1, MaxZ: 1}
	cases := []struct {
		x, y, z float64
		want    bool
	}{
		{1, 0.5, 0, true},
		{0, 0, -1, true},
		{2, 1, 1, true},
		{2.01, 0.5, 0, false},
		{1, 0.5, 1.5, false},
		{1, -0.1, 0, false},
	}
	for _, c := range cases {
		if got := v.Contains(c.x, c.y, c.z); got != c.want {
			t.Fatalf("Contains(%v, %v, %v) = %v, want %v", c.x, c.y, c.z, got, c.want)
		}
	}
}
