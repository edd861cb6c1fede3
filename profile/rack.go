package profile

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// RackPitch returns the linear tooth-to-tooth distance of a rack, π·m.
func RackPitch(module float64) float64 { return math.Pi * module }

// InvoluteRackTooth returns the trapezoidal boundary of one involute rack
// tooth, centered on the Y axis with the pitch line at y=0. The profile
// repeats along X with period RackPitch.
func InvoluteRackTooth(p gears.RackParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	return rackTooth(p.Module, p.PressureAngle), nil
}

func rackTooth(module, pressureAngleDeg float64) ToothProfile {
	addendum := module * gears.AddendumFactor
	dedendum := module * gears.DedendumFactor
	tanA := math.Tan(gears.Radians(pressureAngleDeg))
	halfWidth := RackPitch(module) / 4

	xTop := halfWidth - addendum*tanA
	xBot := halfWidth + dedendum*tanA
	tl := r2.Vec{X: -xTop, Y: addendum}
	tr := r2.Vec{X: xTop, Y: addendum}
	br := r2.Vec{X: xBot, Y: -dedendum}
	bl := r2.Vec{X: -xBot, Y: -dedendum}

	return ToothProfile{Segments: []Segment{
		Line{A: tl, B: tr},
		Line{A: tr, B: br},
		Line{A: br, B: bl},
		Line{A: bl, B: tl},
	}}
}

// Cycloid rack flanks need only a handful of interpolation points; the
// rolling-circle curve is shallow.
const cycloidRackPoints = 6

// CycloidRackTooth returns the boundary of one cycloidal rack tooth. Both
// flanks are arcs of a cycloid rolled along the pitch line: the tip curve
// rolls above it, the root curve below and outward so the root flares.
func CycloidRackTooth(p gears.CycloidRackParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	addendum := p.Module * p.AddendumFactor
	dedendum := p.Module * p.DedendumFactor
	rRoll := 2.5 * p.Module
	halfWidth := RackPitch(p.Module) / 4

	cycloidX := func(t float64) float64 { return rRoll * (t - math.Sin(t)) }
	cycloidY := func(t float64) float64 { return rRoll * (1 - math.Cos(t)) }

	// Roll angle at which the cycloid reaches the tip and root heights.
	tTip := math.Acos(clamp(1-addendum/rRoll, -1, 1))
	tRoot := math.Acos(clamp(1-dedendum/rRoll, -1, 1))

	tip := make(d2.Set, cycloidRackPoints)
	root := make(d2.Set, cycloidRackPoints)
	for i := range tip {
		s := float64(i) / float64(cycloidRackPoints-1)
		tip[i] = r2.Vec{X: halfWidth - cycloidX(s*tTip), Y: cycloidY(s * tTip)}
		root[i] = r2.Vec{X: halfWidth + cycloidX(s*tRoot), Y: -cycloidY(s * tRoot)}
	}

	right := make(d2.Set, 0, 2*cycloidRackPoints-1)
	for i := len(root) - 1; i >= 0; i-- {
		right = append(right, root[i])
	}
	right = append(right, tip[1:]...)
	left := d2.MirrorXReversed(right)

	return ToothProfile{Segments: []Segment{
		Spline{Points: right},
		Line{A: right[len(right)-1], B: left[0]},
		Spline{Points: left},
		Line{A: left[len(left)-1], B: right[0]},
	}}, nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(x, lo))
}
