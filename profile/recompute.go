package profile

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	gears "github.com/iplayfast/GearWorkBench-sub000"
)

// Result bundles everything a single recompute derives from one parameter
// set. Conic and Crown are nil except for the families that produce them,
// in which case Profile holds the outer section.
type Result struct {
	Summary    gears.Summary
	Dimensions gears.Dimensions
	Profile    ToothProfile
	Conic      *ConicSections
	Crown      *CrownSections
	Bores      []ToothProfile
	Undercut   bool
	MinTeeth   float64 // minimum non-undercutting tooth count
}

// Recompute validates p and derives its dimensions and tooth profile in one
// pass. It is a pure function: same parameters, same result.
func Recompute(p gears.Parameters) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Summary: p.Summary()}
	var err error
	switch q := p.(type) {
	case gears.SpurParams:
		res.Dimensions = gears.ExternalDimensions(q.Module, q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Undercut, res.MinTeeth = gears.CheckUndercut(q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Profile, err = InvoluteTooth(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.HelicalParams:
		res.Dimensions = gears.ExternalDimensions(q.Module, q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Undercut, res.MinTeeth = gears.CheckUndercut(q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Profile, err = HelicalTooth(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.HerringboneParams:
		res.Dimensions = gears.ExternalDimensions(q.Module, q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Undercut, res.MinTeeth = gears.CheckUndercut(q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Profile, err = HerringboneTooth(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.InternalParams:
		res.Dimensions = gears.InternalDimensions(q.Module, q.Teeth, q.PressureAngle, q.ProfileShift, q.RimThickness)
		res.Undercut, res.MinTeeth = gears.CheckUndercut(q.Teeth, q.PressureAngle, q.ProfileShift)
		res.Profile, err = InternalTooth(q)
	case gears.ScrewParams:
		mt := gears.TransverseModule(q.Module, q.HelixAngle)
		at := gears.TransversePressureAngle(q.PressureAngle, q.HelixAngle)
		res.Dimensions = gears.ExternalDimensions(mt, q.Teeth, at, 0)
		res.Undercut, res.MinTeeth = gears.CheckUndercut(q.Teeth, at, 0)
		res.Profile, err = ScrewTooth(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.BevelParams:
		var cs ConicSections
		cs, err = BevelSections(q)
		if err == nil {
			res.Conic = &cs
			res.Profile = cs.Outer
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.HypoidParams:
		var cs ConicSections
		cs, err = HypoidSections(q)
		if err == nil {
			res.Conic = &cs
			res.Profile = cs.Outer
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.CrownParams:
		var cs CrownSections
		cs, err = Crown(q)
		if err == nil {
			res.Crown = &cs
			res.Profile = cs.Outer
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.RackParams:
		res.Profile, err = InvoluteRackTooth(q)
	case gears.CycloidParams:
		d := gears.PitchDiameter(q.Module, q.Teeth)
		res.Dimensions = gears.Dimensions{
			Pitch:    d,
			Addendum: d + 2*q.Module*q.AddendumFactor,
			Dedendum: d - 2*q.Module*q.DedendumFactor,
		}
		res.Profile, err = CycloidTooth(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	case gears.CycloidRackParams:
		res.Profile, err = CycloidRackTooth(q)
	case gears.NonCircularParams:
		res.Profile, err = NonCircular(q)
		if err == nil {
			res.Bores, err = BoreOutlines(q.Bore)
		}
	default:
		err = gears.ErrParameter
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Debouncer coalesces bursts of parameter edits into a single recompute.
// Only the latest requested parameter set is computed; intermediate sets
// arriving within the delay window are dropped.
type Debouncer struct {
	mu        sync.Mutex
	pending   gears.Parameters
	debounced func(func())
	deliver   func(Result, error)
}

// NewDebouncer returns a Debouncer that waits delay after the last Request
// before recomputing, then hands the result to deliver. deliver runs on the
// debounce timer goroutine.
func NewDebouncer(delay time.Duration, deliver func(Result, error)) *Debouncer {
	return &Debouncer{
		debounced: debounce.New(delay),
		deliver:   deliver,
	}
}

// Request schedules a recompute of p, superseding any earlier request still
// waiting out the delay.
func (d *Debouncer) Request(p gears.Parameters) {
	d.mu.Lock()
	d.pending = p
	d.mu.Unlock()
	d.debounced(d.run)
}

func (d *Debouncer) run() {
	d.mu.Lock()
	p := d.pending
	d.mu.Unlock()
	if p == nil {
		return
	}
	d.deliver(Recompute(p))
}
