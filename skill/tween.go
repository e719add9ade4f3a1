package skill

import "github.com/milk9111/grapplerig/common"

// Tween interpolates from Start to Target over Duration seconds as the
// driver advances it.
type Tween[T any] struct {
	Start    T
	Target   T
	Duration float64
	Elapsed  float64

	lerp func(a, b T, t float64) T
}

func NewTween[T any](start, target T, duration float64, lerp func(a, b T, t float64) T) *Tween[T] {
	return &Tween[T]{Start: start, Target: target, Duration: duration, lerp: lerp}
}

func NewScalarTween(start, target, duration float64) *Tween[float64] {
	return NewTween(start, target, duration, common.Lerp)
}

func NewVec3Tween(start, target common.Vec3, duration float64) *Tween[common.Vec3] {
	return NewTween(start, target, duration, common.Vec3.Lerp)
}

func (t *Tween[T]) Done() bool {
	return t.Elapsed >= t.Duration
}

// Value returns the interpolated value at the current elapsed time.
func (t *Tween[T]) Value() T {
	if t.Done() {
		return t.Target
	}
	return t.lerp(t.Start, t.Target, t.Elapsed/t.Duration)
}

// Advance moves the tween forward by dt and reports the new value and
// whether it has finished.
func (t *Tween[T]) Advance(dt float64) (T, bool) {
	if dt > 0 {
		t.Elapsed += dt
	}
	return t.Value(), t.Done()
}
