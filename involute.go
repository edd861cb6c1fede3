package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// InvoluteFunction evaluates inv(α) = tan(α) - α.
// It is exactly 0 at α=0 and increases monotonically on [0, π/2).
func InvoluteFunction(angle float64) float64 {
	return math.Tan(angle) - angle
}

// InvolutePoint returns the point reached by unwinding a taut line from a
// base circle through the roll angle theta. At theta=0 it sits on the base
// circle at (baseRadius, 0); for theta>0 its distance from the origin
// strictly exceeds baseRadius.
func InvolutePoint(baseRadius, theta float64) r2.Vec {
	sin, cos := math.Sincos(theta)
	return r2.Vec{
		X: baseRadius * (cos + theta*sin),
		Y: baseRadius * (sin - theta*cos),
	}
}

// InvoluteRollAngle returns the roll angle at which the involute of a base
// circle reaches the given radius. Radii at or below the base radius map
// to 0.
func InvoluteRollAngle(baseRadius, radius float64) float64 {
	if radius <= baseRadius {
		return 0
	}
	r := radius / baseRadius
	return math.Sqrt(r*r - 1)
}
