package profile

import (
	gears "github.com/iplayfast/GearWorkBench-sub000"
)

// minCrownInnerRadius keeps the inner end of a crown tooth off the disk
// center when the face width nearly spans the whole radius.
const minCrownInnerRadius = 1.0 // mm

// CrownSections is the pair of rack-like tooth sections a crown (face) gear
// tooth is lofted between. Teeth radiate inward from the outer pitch radius
// of the disk; the inner section is scaled like a conic section and rotated
// by the spiral twist.
type CrownSections struct {
	Outer, Inner  ToothProfile
	OuterRadius   float64 // mm
	InnerRadius   float64 // mm, floored at minCrownInnerRadius
	InnerClamped  bool
	TwistAngle    float64 // degrees applied to the inner section
	BaseThickness float64 // mm, disk below the tooth roots
}

// Crown returns the tooth sections of a crown gear.
func Crown(p gears.CrownParams) (CrownSections, error) {
	if err := p.Validate(); err != nil {
		return CrownSections{}, err
	}
	outerR := gears.PitchDiameter(p.Module, p.Teeth) / 2
	innerR := outerR - p.FaceWidth
	clamped := false
	if innerR < minCrownInnerRadius {
		innerR = minCrownInnerRadius
		clamped = true
	}
	scale := innerR / outerR

	twist := gears.TwistAngle(p.FaceWidth, p.SpiralAngle,
		gears.CrownMeanRadius(outerR, innerR))

	return CrownSections{
		Outer:         rackTooth(p.Module, p.PressureAngle),
		Inner:         rackTooth(p.Module*scale, p.PressureAngle),
		OuterRadius:   outerR,
		InnerRadius:   innerR,
		InnerClamped:  clamped,
		TwistAngle:    twist,
		BaseThickness: p.Height,
	}, nil
}
