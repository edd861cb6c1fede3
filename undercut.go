package gears

import "math"

// MinTeethNoUndercut returns the smallest tooth count that avoids
// undercutting for a pressure angle and profile shift,
// zmin = 2·(ha* − x)/sin²(α). The pressure angle must already be inside its
// validated range; the validator rejects 0° upstream.
func MinTeethNoUndercut(pressureAngleDeg, profileShift float64) float64 {
	sin := math.Sin(d2r(pressureAngleDeg))
	return 2 * (AddendumFactor - profileShift) / (sin * sin)
}

// CheckUndercut reports whether a tooth count produces undercutting and the
// minimum non-undercutting tooth count for the same pressure angle and
// profile shift.
func CheckUndercut(teeth int, pressureAngleDeg, profileShift float64) (hasUndercut bool, minTeeth float64) {
	minTeeth = MinTeethNoUndercut(pressureAngleDeg, profileShift)
	return float64(teeth) < minTeeth, minTeeth
}
