package profile

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Involute flanks are sampled at this many points before the kernel fits
// its spline through them.
const involutePoints = 20

// InvoluteTooth returns the closed boundary of one external involute tooth,
// centered on the +Y axis: right flank root→tip, tip arc, left flank
// tip→root, root arc.
func InvoluteTooth(p gears.SpurParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	return involuteTooth(p.Module, p.Teeth, p.PressureAngle, p.ProfileShift), nil
}

// HelicalTooth returns the transverse tooth section of a helical gear. The
// section equals the spur tooth; the helix angle only twists the 3D sweep
// performed by the kernel.
func HelicalTooth(p gears.HelicalParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	return involuteTooth(p.Module, p.Teeth, p.PressureAngle, p.ProfileShift), nil
}

// HerringboneTooth returns the shared tooth section of a double-helical
// gear; the two opposed sweeps reuse the same curve.
func HerringboneTooth(p gears.HerringboneParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	return involuteTooth(p.Module, p.Teeth, p.PressureAngle, p.ProfileShift), nil
}

// ScrewTooth returns the transverse tooth section of a worm or screw gear.
// Radial dimensions come from the transverse module and transverse pressure
// angle; the nominal module only governs axial spacing.
func ScrewTooth(p gears.ScrewParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	mt := gears.TransverseModule(p.Module, p.HelixAngle)
	at := gears.TransversePressureAngle(p.PressureAngle, p.HelixAngle)
	return involuteTooth(mt, p.Teeth, at, 0), nil
}

func involuteTooth(module float64, teeth int, pressureAngleDeg, shift float64) ToothProfile {
	dims := gears.ExternalDimensions(module, teeth, pressureAngleDeg, shift)
	_, db, da, df := dims.Pitch, dims.Base, dims.Addendum, dims.Dedendum
	alpha := gears.Radians(pressureAngleDeg)

	// Angle from the involute's base-circle origin to the flank's pitch
	// point, plus half the angular tooth thickness at the pitch circle.
	involuteRot := gears.InvoluteFunction(alpha) +
		(math.Pi/2+2*shift*math.Tan(alpha))/float64(teeth)

	start := 0.0
	if db <= df {
		start = gears.InvoluteRollAngle(db/2, df/2)
	}
	end := gears.InvoluteRollAngle(db/2, da/2)

	var right d2.Set
	if df < db {
		// The root circle lies inside the base circle: bridge the gap
		// with a radial point before the involute starts.
		right = append(right, r2.Vec{X: df / 2})
	}
	for i := 0; i < involutePoints; i++ {
		t := float64(i) / float64(involutePoints-1)
		right = append(right, gears.InvolutePoint(db/2, start+t*(end-start)))
	}

	right = d2.RotateSet(right, math.Pi/2-involuteRot)
	left := d2.MirrorXReversed(right)

	return ToothProfile{Segments: []Segment{
		Spline{Points: right},
		Arc{P0: right[len(right)-1], PM: r2.Vec{Y: da / 2}, P1: left[0]},
		Spline{Points: left},
		Arc{P0: left[len(left)-1], PM: r2.Vec{Y: df / 2}, P1: right[0]},
	}}
}

// Flank points for internal teeth; the kernel's spline needs few because
// the flank is short.
const internalFlankPoints = 5

// InternalTooth returns the boundary of one ring gear tooth. The tooth is
// the metal between two inward-facing flanks: thin at the inner tip, thick
// at the outer root, with the flank angle inverted relative to an external
// tooth.
func InternalTooth(p gears.InternalParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	alpha := gears.Radians(p.PressureAngle)
	z := float64(p.Teeth)
	dw := gears.PitchDiameter(p.Module, p.Teeth)
	dg := gears.BaseDiameter(dw, p.PressureAngle)
	da := gears.InternalAddendumDiameter(dw, p.Module, p.ProfileShift)
	df := dw + 2*p.Module*(gears.DedendumFactor-p.ProfileShift)

	// Half angular thickness at the pitch circle, offset by the involute
	// function so the pitch point lands on the flank.
	beta := math.Pi/(2*z) + 2*p.ProfileShift*math.Tan(alpha)/z
	centerOffset := beta - gears.InvoluteFunction(alpha)

	const epsilon = 1e-3
	startRadius := math.Max(da/2, dg/2+epsilon)
	endRadius := df / 2
	phiStart := gears.InvoluteRollAngle(dg/2, startRadius)
	phiEnd := gears.InvoluteRollAngle(dg/2, endRadius)

	right := make(d2.Set, internalFlankPoints)
	for i := range right {
		t := float64(i) / float64(internalFlankPoints-1)
		phi := phiStart + t*(phiEnd-phiStart)
		r := (dg / 2) * math.Sqrt(1+phi*phi)
		thetaInv := phi - math.Atan(phi)
		// Thickness grows with radius: the flank angle walks away from
		// the tooth center line as the involute unwinds.
		right[i] = d2.PolarToXY(r, math.Pi/2-centerOffset-thetaInv)
	}
	left := d2.MirrorXReversed(right)

	return ToothProfile{Segments: []Segment{
		Spline{Points: right},
		Arc{P0: right[len(right)-1], PM: r2.Vec{Y: df / 2}, P1: left[0]},
		Spline{Points: left},
		Arc{P0: left[len(left)-1], PM: r2.Vec{Y: da / 2}, P1: right[0]},
	}}, nil
}
