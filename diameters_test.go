package gears

import (
	"math"
	"testing"
)

// Reference gear used throughout: m=2, z=20, α=20°, no shift.
const (
	refModule   = 2.0
	refTeeth    = 20
	refPressure = 20.0
)

func TestDiameters(t *testing.T) {
	const tol = 1e-2
	d := PitchDiameter(refModule, refTeeth)
	if d != 40 {
		t.Fatalf("pitch diameter = %g, want 40 exactly", d)
	}
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"base", BaseDiameter(d, refPressure), 37.588},
		{"addendum", AddendumDiameter(d, refModule, 0), 44},
		{"dedendum", DedendumDiameter(d, refModule, 0), 35},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) > tol {
			t.Errorf("%s diameter = %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestBaseDiameterZeroPressureAngle(t *testing.T) {
	d := PitchDiameter(3, 17)
	if got := BaseDiameter(d, 0); got != d {
		t.Errorf("base diameter at α=0 is %g, want pitch diameter %g", got, d)
	}
}

func TestProfileShiftMovesDiameters(t *testing.T) {
	d := PitchDiameter(refModule, refTeeth)
	const x = 0.5
	if got, want := AddendumDiameter(d, refModule, x), 44+2*refModule*x; math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted addendum = %g, want %g", got, want)
	}
	if got, want := DedendumDiameter(d, refModule, x), 35+2*refModule*x; math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted dedendum = %g, want %g", got, want)
	}
}

func TestInternalDiameters(t *testing.T) {
	// The ring's tip points inward and its root lies outward of pitch.
	d := PitchDiameter(refModule, 30)
	tip := InternalAddendumDiameter(d, refModule, 0)
	root := InternalDedendumDiameter(d, refModule, 0, 3)
	if tip >= d {
		t.Errorf("internal tip %g not inside pitch %g", tip, d)
	}
	if root <= d {
		t.Errorf("internal root %g not outside pitch %g", root, d)
	}
	if got, want := root-d, 2*refModule*DedendumFactor+2*3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("root offset %g, want %g", got, want)
	}
}

func TestBaseToothThickness(t *testing.T) {
	if got, want := BaseToothThickness(refModule, refPressure, 0), refModule*math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("no-shift thickness = %g, want %g", got, want)
	}
	const x = 0.3
	want := refModule * (math.Pi/2 + 2*x*math.Tan(d2r(refPressure)))
	if got := BaseToothThickness(refModule, refPressure, x); math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted thickness = %g, want %g", got, want)
	}
}

func TestTransverseQuantities(t *testing.T) {
	const beta = 30.0
	mt := TransverseModule(refModule, beta)
	if want := refModule / math.Cos(d2r(beta)); math.Abs(mt-want) > 1e-12 {
		t.Errorf("transverse module = %g, want %g", mt, want)
	}
	at := TransversePressureAngle(refPressure, beta)
	if want := r2d(math.Atan(math.Tan(d2r(refPressure)) / math.Cos(d2r(beta)))); math.Abs(at-want) > 1e-9 {
		t.Errorf("transverse pressure angle = %g, want %g", at, want)
	}
	// Straight teeth leave both unchanged.
	if got := TransverseModule(refModule, 0); got != refModule {
		t.Errorf("transverse module at β=0 is %g", got)
	}
	if got := TransversePressureAngle(refPressure, 0); math.Abs(got-refPressure) > 1e-12 {
		t.Errorf("transverse pressure angle at β=0 is %g", got)
	}
}

func TestHelixPitch(t *testing.T) {
	const d = 40.0
	want := math.Pi * d / math.Tan(d2r(30))
	if got := HelixPitch(d, 30); math.Abs(got-want) > 1e-9 {
		t.Errorf("helix pitch = %g, want %g", got, want)
	}
	// The hand does not change the axial pitch length.
	if got := HelixPitch(d, -30); math.Abs(got-want) > 1e-9 {
		t.Errorf("left-hand helix pitch = %g, want %g", got, want)
	}
}

func TestDimensionSets(t *testing.T) {
	ext := ExternalDimensions(refModule, refTeeth, refPressure, 0)
	if ext.Pitch != 40 || ext.Addendum != 44 || ext.Dedendum != 35 {
		t.Errorf("external dimensions %+v", ext)
	}
	in := InternalDimensions(refModule, 30, refPressure, 0, 3)
	if in.Pitch != 60 || in.Addendum >= in.Pitch || in.Dedendum <= in.Pitch {
		t.Errorf("internal dimensions %+v", in)
	}
}
