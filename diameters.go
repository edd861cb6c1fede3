package gears

import "math"

// PitchDiameter returns d = m·z.
func PitchDiameter(module float64, teeth int) float64 {
	return module * float64(teeth)
}

// BaseDiameter returns db = d·cos(α). Equal to the pitch diameter
// when the pressure angle is zero.
func BaseDiameter(pitchDiameter, pressureAngleDeg float64) float64 {
	return pitchDiameter * math.Cos(d2r(pressureAngleDeg))
}

// AddendumDiameter returns the tip diameter of an external gear.
func AddendumDiameter(pitchDiameter, module, profileShift float64) float64 {
	return pitchDiameter + 2*module*(AddendumFactor+profileShift)
}

// DedendumDiameter returns the root diameter of an external gear.
func DedendumDiameter(pitchDiameter, module, profileShift float64) float64 {
	return pitchDiameter - 2*module*(DedendumFactor-profileShift)
}

// InternalAddendumDiameter returns the inner (tip) diameter of a ring gear.
// Internal teeth point inward, so the sign conventions are reversed from
// the external formulas.
func InternalAddendumDiameter(pitchDiameter, module, profileShift float64) float64 {
	return pitchDiameter - 2*module*(AddendumFactor+profileShift)
}

// InternalDedendumDiameter returns the outer (root) diameter of a ring gear.
// The root sits outward of the pitch circle and the ring extends a further
// rimThickness beyond it.
func InternalDedendumDiameter(pitchDiameter, module, profileShift, rimThickness float64) float64 {
	return pitchDiameter + 2*module*(DedendumFactor-profileShift) + 2*rimThickness
}

// BaseToothThickness returns the circular tooth thickness at the pitch
// circle, s = m·(π/2 + 2x·tanα).
func BaseToothThickness(module, pressureAngleDeg, profileShift float64) float64 {
	return module * (math.Pi/2 + 2*profileShift*math.Tan(d2r(pressureAngleDeg)))
}

// TransverseModule returns mt = m/cos(β) for a helix angle β. Crossed and
// screw gears use the transverse module for radial dimensions while the
// nominal module governs axial tooth spacing.
func TransverseModule(module, helixAngleDeg float64) float64 {
	return module / math.Cos(d2r(helixAngleDeg))
}

// TransversePressureAngle returns αt = atan(tan(αn)/cos(β)).
func TransversePressureAngle(pressureAngleDeg, helixAngleDeg float64) float64 {
	return r2d(math.Atan(math.Tan(d2r(pressureAngleDeg)) / math.Cos(d2r(helixAngleDeg))))
}

// HelixPitch returns the axial advance of one full helix turn wound on the
// pitch cylinder, π·d/tan(β).
func HelixPitch(pitchDiameter, helixAngleDeg float64) float64 {
	return math.Abs(math.Pi * pitchDiameter / math.Tan(d2r(helixAngleDeg)))
}

// Dimensions bundles the derived diameters of one gear.
type Dimensions struct {
	Pitch    float64 // mm
	Base     float64 // mm
	Addendum float64 // mm, tip diameter
	Dedendum float64 // mm, root diameter
}

// ExternalDimensions derives the diameter set of an external involute gear.
func ExternalDimensions(module float64, teeth int, pressureAngleDeg, profileShift float64) Dimensions {
	d := PitchDiameter(module, teeth)
	return Dimensions{
		Pitch:    d,
		Base:     BaseDiameter(d, pressureAngleDeg),
		Addendum: AddendumDiameter(d, module, profileShift),
		Dedendum: DedendumDiameter(d, module, profileShift),
	}
}

// InternalDimensions derives the diameter set of a ring gear. Addendum is
// the inner tip diameter, Dedendum the outer root diameter including the rim.
func InternalDimensions(module float64, teeth int, pressureAngleDeg, profileShift, rimThickness float64) Dimensions {
	d := PitchDiameter(module, teeth)
	return Dimensions{
		Pitch:    d,
		Base:     BaseDiameter(d, pressureAngleDeg),
		Addendum: InternalAddendumDiameter(d, module, profileShift),
		Dedendum: InternalDedendumDiameter(d, module, profileShift, rimThickness),
	}
}
