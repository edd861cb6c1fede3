// Package gears implements the geometry and meshing mathematics for
// mechanical gears. It computes involute and cycloid tooth curves, derived
// diameters, undercut limits and the twist angles needed to loft conic and
// crown teeth. All functions are pure mappings from validated parameters to
// geometry; solid modeling, rendering and persistence live downstream.
package gears

import "math"

// Legal parameter ranges shared by every gear family.
const (
	MinModule = 0.30 // mm
	MaxModule = 75.0 // mm
	MinTeeth  = 3
	MaxTeeth  = 200

	MinPressureAngle      = 1.0  // degrees
	MaxPressureAngle      = 35.0 // degrees
	StandardPressureAngle = 20.0 // degrees

	MinProfileShift = -1.0
	MaxProfileShift = 1.0
)

// Standard tooth proportions (ISO 53:1998).
const (
	AddendumFactor  = 1.0
	DedendumFactor  = 1.25
	ClearanceFactor = 0.25
)

// MinInternalRimThickness is the thinnest ring wall accepted for
// internal (ring) gears, in mm.
const MinInternalRimThickness = 0.5

const tolerance = 1e-9

// Family identifies a gear family. It selects the profile generator and
// informs meshing decisions; it never changes the diameter formulas.
type Family int

const (
	FamilySpur Family = iota
	FamilyHelical
	FamilyHerringbone
	FamilyBevel
	FamilyHypoid
	FamilyCrown
	FamilyRack
	FamilyScrew // worm and crossed-axis screw gears
	FamilyCycloid
	FamilyNonCircular
)

func (f Family) String() string {
	switch f {
	case FamilySpur:
		return "spur"
	case FamilyHelical:
		return "helical"
	case FamilyHerringbone:
		return "herringbone"
	case FamilyBevel:
		return "bevel"
	case FamilyHypoid:
		return "hypoid"
	case FamilyCrown:
		return "crown"
	case FamilyRack:
		return "rack"
	case FamilyScrew:
		return "screw"
	case FamilyCycloid:
		return "cycloid"
	case FamilyNonCircular:
		return "non-circular"
	}
	return "unknown"
}

// Summary is the read-only view of a gear used by meshing decisions.
// It is recomputed from the owning parameter set whenever that changes.
type Summary struct {
	Module        float64
	PressureAngle float64 // degrees
	HelixAngle    float64 // degrees, signed = handedness
	Family        Family
	Internal      bool
	PitchDiameter float64 // mm
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
func r2d(radians float64) float64 { return radians / math.Pi * 180. }

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 { return r2d(radians) }

// Radians converts degrees to radians.
func Radians(degrees float64) float64 { return d2r(degrees) }
