package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec3 is a world-space vector. Y is up; X and Z span the ground plane.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: 1}
	Right   = Vec3{X: 1}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l <= Epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Project returns the component of v along dir. dir need not be unit length.
func (v Vec3) Project(dir Vec3) Vec3 {
	d := dir.Dot(dir)
	if d <= Epsilon {
		return Vec3{}
	}
	return dir.Scale(v.Dot(dir) / d)
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

func (v Vec3) IsZero() bool {
	return v.Dot(v) <= Epsilon*Epsilon
}

func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return ApproxEqual(v.X, o.X, tol) && ApproxEqual(v.Y, o.Y, tol) && ApproxEqual(v.Z, o.Z, tol)
}

// Planar drops the height component and returns the ground-plane (X, Z)
// coordinates as a 2D vector.
func (v Vec3) Planar() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// Side drops depth and returns the (X, Y) side-view coordinates used by the
// 2D physics world.
func (v Vec3) Side() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// FromSide lifts a side-view physics vector back into world space at Z = 0.
func FromSide(p cp.Vector) Vec3 {
	return Vec3{X: p.X, Y: p.Y}
}

// AngleDeg returns the unsigned angle between two 2D vectors in degrees.
// It reports 0 when either vector is degenerate.
func AngleDeg(a, b cp.Vector) float64 {
	denom := math.Sqrt(a.LengthSq() * b.LengthSq())
	if denom < 1e-15 {
		return 0
	}
	return Rad2Deg(math.Acos(Clamp(a.Dot(b)/denom, -1, 1)))
}

// Unit2 normalizes a 2D vector, returning the zero vector for degenerate
// input instead of propagating NaN.
func Unit2(v cp.Vector) cp.Vector {
	l := v.Length()
	if l <= Epsilon {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}
