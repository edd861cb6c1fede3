package gears

import "math"

// straightToothBand is the spiral angle magnitude below which teeth are
// treated as straight and no twist is applied.
const straightToothBand = 0.001 // degrees

// TwistAngle returns the rotation, in degrees, between the inner and outer
// tooth sections of a lofted spiral tooth. The tooth line advances by
// faceWidth·tan(spiral) along the mean circumference; dividing by the mean
// radius gives the subtended angle.
func TwistAngle(faceWidth, spiralAngleDeg, meanRadius float64) float64 {
	if math.Abs(spiralAngleDeg) <= straightToothBand {
		return 0
	}
	twistArc := faceWidth * math.Tan(d2r(spiralAngleDeg))
	return r2d(twistArc / meanRadius)
}

// CrownMeanRadius returns the mean radius used to twist crown gear teeth:
// the arithmetic mean of the outer and inner pitch radii of the disk.
func CrownMeanRadius(outerRadius, innerRadius float64) float64 {
	return (outerRadius + innerRadius) / 2
}

// BevelMeanRadius returns the mean radius used to twist bevel and hypoid
// teeth: the mean cone distance projected through the pitch angle.
func BevelMeanRadius(coneDistOuter, coneDistInner, pitchAngleDeg float64) float64 {
	mean := (coneDistOuter + coneDistInner) / 2
	return mean * math.Sin(d2r(pitchAngleDeg))
}
