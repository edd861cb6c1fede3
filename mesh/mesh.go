// Package mesh computes pairing geometry for two gears: whether their
// modules are compatible, the distance between their axes, and where to
// place one gear relative to the other for tooth engagement.
package mesh

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
	"gonum.org/v1/gonum/spatial/r3"
)

// ModuleTolerance is the largest module mismatch, in mm, at which two
// gears still mesh.
const ModuleTolerance = 0.001

// Compatible reports whether two gears can mesh. Only the module is
// decisive; pressure angle and family mismatches are left to the caller's
// judgment.
func Compatible(a, b gears.Summary) bool {
	return math.Abs(a.Module-b.Module) < ModuleTolerance
}

// CenterDistance returns the axis-to-axis distance of a meshed pair in mm.
// An internal gear wraps around its external mate, so the distance is half
// the pitch diameter difference; two internal gears cannot mesh at all.
func CenterDistance(a, b gears.Summary) (float64, error) {
	switch {
	case a.Internal && b.Internal:
		return 0, &gears.ParameterError{
			Field: "internal gears in pair",
			Value: 2,
			Rule:  "at most 1",
		}
	case a.Internal:
		return (a.PitchDiameter - b.PitchDiameter) / 2, nil
	case b.Internal:
		return (b.PitchDiameter - a.PitchDiameter) / 2, nil
	default:
		return (a.PitchDiameter + b.PitchDiameter) / 2, nil
	}
}

// Placement locates a gear in the fixed gear's frame: an origin for its
// axis and a rotation about the shared normal, in degrees.
type Placement struct {
	Origin   r3.Vec
	Rotation float64 // degrees
}

// Position places the moving gear against a fixed gear whose axis passes
// through refOrigin. The engagement angle selects where on the fixed
// gear's circumference the mate sits, measured in degrees from the fixed
// gear's local +X axis. The rotation faces the moving gear toward the
// reference; no gear-ratio phase synchronization is applied.
func Position(refOrigin r3.Vec, fixed, moving gears.Summary, engagementAngleDeg float64) (Placement, error) {
	cd, err := CenterDistance(fixed, moving)
	if err != nil {
		return Placement{}, err
	}
	theta := gears.Radians(engagementAngleDeg)
	return Placement{
		Origin: r3.Add(refOrigin, r3.Vec{
			X: cd * math.Cos(theta),
			Y: cd * math.Sin(theta),
		}),
		Rotation: engagementAngleDeg,
	}, nil
}

// Pair is a meshed gear pair: two gear summaries, their center distance,
// and the chosen engagement angle. Pairs are transient, derived values;
// build a new one after any parameter edit.
type Pair struct {
	Fixed, Moving   gears.Summary
	CenterDistance  float64 // mm
	EngagementAngle float64 // degrees
	Placement       Placement
}

// NewPair meshes two gears at the given engagement angle, with the fixed
// gear's axis at refOrigin.
func NewPair(refOrigin r3.Vec, fixed, moving gears.Summary, engagementAngleDeg float64) (Pair, error) {
	cd, err := CenterDistance(fixed, moving)
	if err != nil {
		return Pair{}, err
	}
	pl, err := Position(refOrigin, fixed, moving, engagementAngleDeg)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		Fixed:           fixed,
		Moving:          moving,
		CenterDistance:  cd,
		EngagementAngle: engagementAngleDeg,
		Placement:       pl,
	}, nil
}
