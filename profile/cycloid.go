package profile

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cycloid flank sampling: march the roll parameter until the curve crosses
// the tip or root circle, then bisect to land on it.
const (
	cycloidSteps     = 50
	cycloidBisection = 10
)

// CycloidTooth returns the boundary of one cycloidal gear tooth (clock and
// watch standard): an epicycloid above the pitch circle, a hypocycloid
// below it, mirrored for the second flank and closed by a tip arc and a
// root chord.
func CycloidTooth(p gears.CycloidParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	module := p.Module
	z := float64(p.Teeth)
	pitchR := gears.PitchDiameter(module, p.Teeth) / 2
	tipR := pitchR + module*p.AddendumFactor
	rootR := pitchR - module*p.DedendumFactor
	rollR := 2.5 * module

	epi := func(t float64) r2.Vec {
		k := (pitchR + rollR) / rollR
		return r2.Vec{
			X: (pitchR+rollR)*math.Cos(t) - rollR*math.Cos(k*t),
			Y: (pitchR+rollR)*math.Sin(t) - rollR*math.Sin(k*t),
		}
	}
	hypo := func(t float64) r2.Vec {
		k := (pitchR - rollR) / rollR
		return r2.Vec{
			X: (pitchR-rollR)*math.Cos(t) + rollR*math.Cos(k*t),
			Y: -((pitchR-rollR)*math.Sin(t) - rollR*math.Sin(k*t)),
		}
	}

	// One full lobe of either curve spans a roll parameter of π·rollR/pitchR;
	// the tip and root circles are always crossed inside it.
	maxT := math.Pi * rollR / pitchR
	epiPts := marchToRadius(epi, tipR, true, maxT)
	hypoPts := marchToRadius(hypo, rootR, false, maxT)

	// Bias both curves so the tooth is centered on the +Y axis.
	bias := math.Pi/2 - math.Pi/(2*z)
	epiPts = d2.RotateSet(epiPts, bias)
	hypoPts = d2.RotateSet(hypoPts, bias)

	right := make(d2.Set, 0, len(epiPts)+len(hypoPts))
	for i := len(hypoPts) - 1; i >= 0; i-- {
		right = append(right, hypoPts[i])
	}
	right = append(right, epiPts[1:]...)
	left := d2.MirrorXReversed(right)

	return ToothProfile{Segments: []Segment{
		Spline{Points: right},
		Arc{P0: right[len(right)-1], PM: r2.Vec{Y: tipR}, P1: left[0]},
		Spline{Points: left},
		Line{A: left[len(left)-1], B: right[0]},
	}}, nil
}

// marchToRadius samples curve(t) for t in [0, maxT] and stops when the
// point's radius crosses limit (outward when outward is true, inward
// otherwise), bisecting the final step onto the limit circle.
func marchToRadius(curve func(float64) r2.Vec, limit float64, outward bool, maxT float64) d2.Set {
	crossed := func(p r2.Vec) bool {
		if outward {
			return r2.Norm(p) > limit
		}
		return r2.Norm(p) < limit
	}
	step := maxT / cycloidSteps
	var pts d2.Set
	for i := 0; i <= cycloidSteps; i++ {
		t := float64(i) * step
		p := curve(t)
		if crossed(p) {
			lo, hi := t-step, t
			for j := 0; j < cycloidBisection; j++ {
				mid := (lo + hi) / 2
				if crossed(curve(mid)) {
					hi = mid
				} else {
					lo = mid
				}
			}
			pts = append(pts, curve(lo))
			break
		}
		pts = append(pts, p)
	}
	return pts
}
