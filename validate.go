package gears

import (
	"fmt"
	"math"
)

// Shared range checks. Every check returns a ParameterError naming the
// offending field, its value and the violated bound.

func checkModule(m float64) error {
	if m < MinModule {
		return errParam("module", m, fmt.Sprintf(">= %g mm", MinModule))
	}
	if m > MaxModule {
		return errParam("module", m, fmt.Sprintf("<= %g mm", MaxModule))
	}
	return nil
}

func checkTeeth(z, min int) error {
	if z < min {
		return errParam("teeth", float64(z), fmt.Sprintf(">= %d", min))
	}
	if z > MaxTeeth {
		return errParam("teeth", float64(z), fmt.Sprintf("<= %d", MaxTeeth))
	}
	return nil
}

func checkPressureAngle(deg float64) error {
	if deg < MinPressureAngle {
		return errParam("pressure angle", deg, fmt.Sprintf(">= %g deg", MinPressureAngle))
	}
	if deg > MaxPressureAngle {
		return errParam("pressure angle", deg, fmt.Sprintf("<= %g deg", MaxPressureAngle))
	}
	return nil
}

func checkProfileShift(x float64) error {
	if x < MinProfileShift || x > MaxProfileShift {
		return errParam("profile shift", x, fmt.Sprintf("within [%g, %g]", MinProfileShift, MaxProfileShift))
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if v <= 0 {
		return errParam(field, v, "> 0")
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the spur parameter set against its legal ranges.
func (p SpurParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkProfileShift(p.ProfileShift),
		checkPositive("height", p.Height),
		p.Bore.Validate(),
	)
}

func checkHelixAngle(deg float64) error {
	if math.Abs(deg) >= 80 {
		return errParam("helix angle", deg, "within (-80, 80) deg")
	}
	return nil
}

func (p HelicalParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkProfileShift(p.ProfileShift),
		checkPositive("height", p.Height),
		checkHelixAngle(p.HelixAngle),
		p.Bore.Validate(),
	)
}

func (p HerringboneParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkProfileShift(p.ProfileShift),
		checkPositive("height", p.Height),
		checkHelixAngle(p.HelixAngle),
		p.Bore.Validate(),
	)
}

func (p InternalParams) Validate() error {
	err := firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkProfileShift(p.ProfileShift),
		checkPositive("height", p.Height),
	)
	if err != nil {
		return err
	}
	if p.RimThickness < MinInternalRimThickness {
		return errParam("rim thickness", p.RimThickness, fmt.Sprintf(">= %g mm", MinInternalRimThickness))
	}
	return nil
}

func checkPitchAngle(deg float64) error {
	if deg <= 0 || deg >= 90 {
		return errParam("pitch angle", deg, "within (0, 90) deg")
	}
	return nil
}

func checkSpiralAngle(deg float64) error {
	if math.Abs(deg) >= 80 {
		return errParam("spiral angle", deg, "within (-80, 80) deg")
	}
	return nil
}

func (p BevelParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkPitchAngle(p.PitchAngle),
		checkSpiralAngle(p.SpiralAngle),
		checkPositive("face width", p.FaceWidth),
		p.Bore.Validate(),
	)
}

func (p HypoidParams) Validate() error {
	err := firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkPitchAngle(p.PitchAngle),
		checkSpiralAngle(p.SpiralAngle),
		checkPositive("face width", p.FaceWidth),
		p.Bore.Validate(),
	)
	if err != nil {
		return err
	}
	if p.Offset < 0 {
		return errParam("offset", p.Offset, ">= 0 mm")
	}
	return nil
}

func (p CrownParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkSpiralAngle(p.SpiralAngle),
		checkPositive("face width", p.FaceWidth),
		checkPositive("height", p.Height),
		p.Bore.Validate(),
	)
}

// Validate checks the rack parameter set. A rack is periodic rather than
// circular, so a single tooth is legal.
func (p RackParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, 1),
		checkPressureAngle(p.PressureAngle),
		checkPositive("height", p.Height),
		checkPositive("base thickness", p.BaseThickness),
	)
}

func (p ScrewParams) Validate() error {
	err := firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPressureAngle(p.PressureAngle),
		checkPositive("face width", p.FaceWidth),
		p.Bore.Validate(),
	)
	if err != nil {
		return err
	}
	if p.HelixAngle <= 0 {
		return errParam("helix angle", p.HelixAngle, "> 0 deg")
	}
	if p.HelixAngle >= 80 {
		return errParam("helix angle", p.HelixAngle, "< 80 deg")
	}
	return nil
}

// Validate checks the cycloid parameter set. Cycloid teeth are shaped by
// addendum and dedendum factors; there is no pressure angle to bound.
func (p CycloidParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, MinTeeth),
		checkPositive("addendum factor", p.AddendumFactor),
		checkPositive("dedendum factor", p.DedendumFactor),
		checkPositive("height", p.Height),
		p.Bore.Validate(),
	)
}

func (p CycloidRackParams) Validate() error {
	return firstErr(
		checkModule(p.Module),
		checkTeeth(p.Teeth, 1),
		checkPositive("addendum factor", p.AddendumFactor),
		checkPositive("dedendum factor", p.DedendumFactor),
		checkPositive("height", p.Height),
		checkPositive("base thickness", p.BaseThickness),
	)
}

// Validate checks the non-circular parameter set. The boundary point
// sequence itself is validated by the profile generator, which is where
// the points are first realized.
func (p NonCircularParams) Validate() error {
	if err := checkPositive("height", p.Height); err != nil {
		return err
	}
	if p.Boundary == nil {
		return errParam("boundary", 0, "a non-nil boundary function")
	}
	return p.Bore.Validate()
}
