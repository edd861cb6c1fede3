package profile

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
)

// Geometric floors for near-degenerate cones. Out-of-range user parameters
// are rejected by validation; these only guard cosmetic geometry.
const (
	minSinPitchAngle = 1e-3
	minRootRadius    = 0.1 // mm
)

// SectionPlacement positions one profile section for the kernel's loft:
// a translation along the gear axis and a rotation about it.
type SectionPlacement struct {
	Z        float64 // mm
	Rotation float64 // degrees about the axis
}

// ConicSections is the pair of tooth cross-sections a bevel or hypoid tooth
// is lofted between. The inner section is the outer one scaled by the cone
// distance ratio and rotated by the spiral twist; the kernel connects the
// two with a ruled or smooth loft.
type ConicSections struct {
	Outer, Inner      ToothProfile
	OuterPlacement    SectionPlacement
	InnerPlacement    SectionPlacement
	ConeDistance      float64 // apex to outer pitch circle, mm
	ConeDistanceInner float64 // mm
	RootRadiusOuter   float64 // root cone radius at the outer section, mm
	RootRadiusInner   float64 // mm
	FaceWidth         float64 // mm, possibly clamped
	FaceWidthClamped  bool
	TwistAngle        float64 // degrees applied to the inner section
}

// BevelSections returns the outer and inner tooth sections of a straight or
// spiral bevel gear, apex at the origin.
func BevelSections(p gears.BevelParams) (ConicSections, error) {
	if err := p.Validate(); err != nil {
		return ConicSections{}, err
	}
	return conicSections(p.Module, p.Teeth, p.PressureAngle, p.PitchAngle, p.SpiralAngle, p.FaceWidth, 0), nil
}

// HypoidSections returns the tooth sections of a hypoid gear. The axis
// offset shifts both sections along the axis; the tooth math matches the
// bevel case.
func HypoidSections(p gears.HypoidParams) (ConicSections, error) {
	if err := p.Validate(); err != nil {
		return ConicSections{}, err
	}
	return conicSections(p.Module, p.Teeth, p.PressureAngle, p.PitchAngle, p.SpiralAngle, p.FaceWidth, p.Offset), nil
}

func conicSections(module float64, teeth int, pressureAngleDeg, pitchAngleDeg, spiralAngleDeg, faceWidth, offset float64) ConicSections {
	pitchR := gears.PitchDiameter(module, teeth) / 2
	sinD := math.Sin(gears.Radians(pitchAngleDeg))
	if sinD < minSinPitchAngle {
		sinD = minSinPitchAngle
	}
	coneDist := pitchR / sinD

	clamped := false
	if faceWidth > coneDist*0.5 {
		faceWidth = coneDist * 0.5
		clamped = true
	}
	coneInner := coneDist - faceWidth
	scale := coneInner / coneDist
	moduleInner := module * scale

	cosD := math.Cos(gears.Radians(pitchAngleDeg))
	rootOuter := pitchR - module*gears.DedendumFactor*cosD
	rootInner := pitchR*scale - moduleInner*gears.DedendumFactor*cosD
	if rootOuter < minRootRadius {
		rootOuter = minRootRadius
	}
	if rootInner < minRootRadius {
		rootInner = minRootRadius
	}

	twist := gears.TwistAngle(faceWidth, spiralAngleDeg,
		gears.BevelMeanRadius(coneDist, coneInner, pitchAngleDeg))

	return ConicSections{
		Outer:             involuteTooth(module, teeth, pressureAngleDeg, 0),
		Inner:             involuteTooth(moduleInner, teeth, pressureAngleDeg, 0),
		OuterPlacement:    SectionPlacement{Z: coneDist + offset},
		InnerPlacement:    SectionPlacement{Z: coneInner + offset, Rotation: twist},
		ConeDistance:      coneDist,
		ConeDistanceInner: coneInner,
		RootRadiusOuter:   rootOuter,
		RootRadiusInner:   rootInner,
		FaceWidth:         faceWidth,
		FaceWidthClamped:  clamped,
		TwistAngle:        twist,
	}
}
