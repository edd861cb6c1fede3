package profile

import (
	"math"

	gears "github.com/iplayfast/GearWorkBench-sub000"
	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// BoreOutlines returns the 2D outlines the kernel pockets out of a gear
// blank for its center bore. A keyway bore yields two outlines: the round
// hole and the keyway slot. BoreNone yields none.
func BoreOutlines(b gears.Bore) ([]ToothProfile, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	switch b.Kind {
	case gears.BoreNone:
		return nil, nil
	case gears.BoreCircular:
		return []ToothProfile{circleProfile(b.Diameter / 2)}, nil
	case gears.BoreSquare:
		// Diameter is across corners; the flats sit at size/(2·√2).
		half := b.Diameter / (2 * math.Sqrt2)
		return []ToothProfile{quadProfile(
			r2.Vec{X: half, Y: half},
			r2.Vec{X: -half, Y: half},
			r2.Vec{X: -half, Y: -half},
			r2.Vec{X: half, Y: -half},
		)}, nil
	case gears.BoreHexagonal:
		radius := b.Diameter / 2
		segs := make([]Segment, 6)
		for i := range segs {
			a0 := gears.Radians(float64(i) * 60)
			a1 := gears.Radians(float64(i+1) * 60)
			segs[i] = Line{A: d2.PolarToXY(radius, a0), B: d2.PolarToXY(radius, a1)}
		}
		return []ToothProfile{{Segments: segs}}, nil
	case gears.BoreKeyway:
		// DIN 6885 style: round bore plus a rectangular slot reaching
		// radially outward from the bore wall.
		half := b.KeywayWidth / 2
		length := b.Diameter/2 + b.KeywayDepth
		slot := quadProfile(
			r2.Vec{X: -half},
			r2.Vec{X: half},
			r2.Vec{X: half, Y: length},
			r2.Vec{X: -half, Y: length},
		)
		return []ToothProfile{circleProfile(b.Diameter / 2), slot}, nil
	}
	return nil, &gears.ParameterError{Field: "bore kind", Value: float64(b.Kind), Rule: "a known bore kind"}
}

func circleProfile(radius float64) ToothProfile {
	return ToothProfile{Segments: []Segment{Circle{Radius: radius}}}
}

func quadProfile(a, b, c, d r2.Vec) ToothProfile {
	return ToothProfile{Segments: []Segment{
		Line{A: a, B: b},
		Line{A: b, B: c},
		Line{A: c, B: d},
		Line{A: d, B: a},
	}}
}
