package profile

import (
	gears "github.com/iplayfast/GearWorkBench-sub000"
	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
)

// NonCircular realizes a caller-supplied boundary function as a closed
// profile. The engine does no curve math of its own here: it validates the
// point sequence and closes the loop if the function left it open.
func NonCircular(p gears.NonCircularParams) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	pts := d2.Set(p.Boundary())
	if len(pts) < 3 {
		return ToothProfile{}, &gears.ParameterError{
			Field: "boundary points", Value: float64(len(pts)), Rule: "at least 3 points"}
	}
	if pts.HasNaN() {
		return ToothProfile{}, &gears.ParameterError{
			Field: "boundary points", Value: 0, Rule: "free of NaN coordinates"}
	}
	if !d2.EqualWithin(pts[0], pts[len(pts)-1], tolerance) {
		pts = append(pts, pts[0])
	}
	return ToothProfile{Segments: []Segment{Spline{Points: pts}}}, nil
}
