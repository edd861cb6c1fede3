// Package d2 holds small 2D point helpers shared by the profile generators.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Set []r2.Vec

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	sin, cos := math.Sincos(theta)
	return r2.Vec{X: r * cos, Y: r * sin}
}

// Angle returns the polar angle of a point about the origin.
func Angle(a r2.Vec) float64 {
	return math.Atan2(a.Y, a.X)
}

// Rotate rotates a point about the origin.
func Rotate(a r2.Vec, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: a.X*cos - a.Y*sin, Y: a.X*sin + a.Y*cos}
}

// RotateSet rotates every point of a set about the origin.
func RotateSet(s Set, angle float64) Set {
	out := make(Set, len(s))
	for i, p := range s {
		out[i] = Rotate(p, angle)
	}
	return out
}

// MirrorX mirrors a point across the Y axis.
func MirrorX(a r2.Vec) r2.Vec {
	return r2.Vec{X: -a.X, Y: a.Y}
}

// MirrorXReversed mirrors a set across the Y axis and reverses its order,
// so a flank traced root-to-tip comes back tip-to-root on the other side.
func MirrorXReversed(s Set) Set {
	out := make(Set, len(s))
	for i, p := range s {
		out[len(s)-1-i] = MirrorX(p)
	}
	return out
}

// Scale scales a point about the origin.
func Scale(k float64, a r2.Vec) r2.Vec {
	return r2.Vec{X: k * a.X, Y: k * a.Y}
}

// HasNaN reports whether any coordinate of the set is NaN.
func (s Set) HasNaN() bool {
	for _, p := range s {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return true
		}
	}
	return false
}
