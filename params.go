package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parameters is implemented by every gear family's parameter set. A set is
// validated once and then treated as immutable for the computation it feeds;
// edits produce a new value.
type Parameters interface {
	Validate() error
	Summary() Summary
}

// BoreKind selects the center bore cut into a gear blank.
type BoreKind int

const (
	BoreNone BoreKind = iota
	BoreCircular
	BoreSquare
	BoreHexagonal
	BoreKeyway
)

func (k BoreKind) String() string {
	switch k {
	case BoreNone:
		return "none"
	case BoreCircular:
		return "circular"
	case BoreSquare:
		return "square"
	case BoreHexagonal:
		return "hexagonal"
	case BoreKeyway:
		return "keyway"
	}
	return "unknown"
}

// Bore describes the center bore of a gear. Diameter is the hole diameter
// for circular and keyway bores, the across-corner size for square and
// hexagonal bores. The keyway follows DIN 6885 proportions.
type Bore struct {
	Kind         BoreKind
	Diameter     float64 // mm
	CornerRadius float64 // mm, square and hexagonal bores
	KeywayWidth  float64 // mm
	KeywayDepth  float64 // mm
}

// Validate reports whether the bore geometry is well formed.
func (b Bore) Validate() error {
	if b.Kind == BoreNone {
		return nil
	}
	if b.Diameter <= 0 {
		return errParam("bore diameter", b.Diameter, "> 0 mm")
	}
	if b.Kind == BoreKeyway {
		if b.KeywayWidth <= 0 {
			return errParam("keyway width", b.KeywayWidth, "> 0 mm")
		}
		if b.KeywayDepth <= 0 {
			return errParam("keyway depth", b.KeywayDepth, "> 0 mm")
		}
	}
	return nil
}

// SpurParams parameterizes an external involute spur gear.
type SpurParams struct {
	Module        float64 // mm
	Teeth         int
	PressureAngle float64 // degrees
	ProfileShift  float64 // dimensionless, signed
	Height        float64 // mm, extrusion height
	Bore          Bore
}

// HelicalParams parameterizes a helical gear. The helix angle is signed;
// the sign selects the hand. The 2D tooth profile is that of the equivalent
// spur gear; the helix only twists the 3D sweep performed downstream.
type HelicalParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	ProfileShift  float64
	Height        float64
	HelixAngle    float64 // degrees
	Bore          Bore
}

// HerringboneParams parameterizes a double-helical gear: two opposed helical
// halves sharing one tooth profile.
type HerringboneParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	ProfileShift  float64
	Height        float64
	HelixAngle    float64 // degrees, applied with opposite sign per half
	Bore          Bore
}

// InternalParams parameterizes a ring gear. The teeth face inward and the
// root circle sits outward of the pitch circle, surrounded by a rim.
type InternalParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	ProfileShift  float64
	Height        float64
	RimThickness  float64 // mm, ring wall beyond the root circle
}

// BevelParams parameterizes a straight or spiral bevel gear.
type BevelParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	PitchAngle    float64 // degrees, pitch cone half angle; 45 for a 1:1 pair
	SpiralAngle   float64 // degrees, 0 for straight teeth
	FaceWidth     float64 // mm, along the cone
	Bore          Bore
}

// HypoidParams parameterizes a hypoid gear: a spiral bevel with its axis
// offset from the mate's so the axes do not intersect.
type HypoidParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	PitchAngle    float64 // degrees
	SpiralAngle   float64 // degrees
	FaceWidth     float64 // mm
	Offset        float64 // mm, axial offset of the pitch apex
	Bore          Bore
}

// CrownParams parameterizes a crown (face) gear: a disk with rack-like
// teeth radiating from the center.
type CrownParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	SpiralAngle   float64 // degrees, 0 for straight teeth
	FaceWidth     float64 // mm, radial tooth length
	Height        float64 // mm, base disk thickness
	Bore          Bore
}

// RackParams parameterizes a straight involute rack.
type RackParams struct {
	Module        float64
	Teeth         int     // number of teeth cut along the bar
	PressureAngle float64 // degrees
	Height        float64 // mm, extrusion height (face width)
	BaseThickness float64 // mm, bar below the tooth roots
}

// ScrewParams parameterizes a worm or crossed-axis screw gear. Radial
// dimensions use the transverse module m/cos(β); the nominal module governs
// axial spacing.
type ScrewParams struct {
	Module        float64
	Teeth         int
	PressureAngle float64 // degrees, normal pressure angle
	HelixAngle    float64 // degrees, must be positive
	FaceWidth     float64 // mm, axial length
	Bore          Bore
}

// CycloidParams parameterizes a cycloidal gear (clock and watch work).
// Tooth shape comes from user-supplied addendum and dedendum factors
// rather than a pressure angle.
type CycloidParams struct {
	Module         float64
	Teeth          int
	AddendumFactor float64 // head height factor, standard ~1.4
	DedendumFactor float64 // root depth factor, standard ~1.6
	Height         float64 // mm
	Bore           Bore
}

// CycloidRackParams parameterizes a cycloidal rack meshing with
// cycloid gears.
type CycloidRackParams struct {
	Module         float64
	Teeth          int
	AddendumFactor float64
	DedendumFactor float64
	Height         float64
	BaseThickness  float64
}

// BoundaryFunc returns an ordered point sequence tracing a full gear
// boundary in a local 2D frame.
type BoundaryFunc func() []r2.Vec

// NonCircularParams parameterizes a non-circular gear. The boundary function
// supplies the full outline; the engine only closes the loop and validates
// the point sequence.
type NonCircularParams struct {
	Height   float64 // mm
	Boundary BoundaryFunc
	Bore     Bore
}

// LobedBoundary returns a sinusoidal lobed boundary
// r(θ) = (major+minor)/2 + (major−minor)/2 · cos(lobes·θ), the stock
// profile for elliptical-like non-circular gears.
func LobedBoundary(majorRadius, minorRadius float64, lobes, points int) BoundaryFunc {
	return func() []r2.Vec {
		avg := (majorRadius + minorRadius) / 2
		amp := (majorRadius - minorRadius) / 2
		pts := make([]r2.Vec, points)
		for i := range pts {
			theta := 2 * math.Pi * float64(i) / float64(points)
			r := avg + amp*math.Cos(float64(lobes)*theta)
			sin, cos := math.Sincos(theta)
			pts[i] = r2.Vec{X: r * cos, Y: r * sin}
		}
		return pts
	}
}

// Default parameter sets. Every set validates cleanly and is undercut-free.

func DefaultSpur() SpurParams {
	return SpurParams{Module: 1, Teeth: 20, PressureAngle: 20, Height: 10}
}

func DefaultHelical() HelicalParams {
	return HelicalParams{Module: 1, Teeth: 20, PressureAngle: 20, Height: 10, HelixAngle: 30}
}

func DefaultHerringbone() HerringboneParams {
	return HerringboneParams{Module: 1, Teeth: 20, PressureAngle: 20, Height: 10, HelixAngle: 30}
}

func DefaultInternal() InternalParams {
	return InternalParams{Module: 1, Teeth: 30, PressureAngle: 20, Height: 10, RimThickness: 3}
}

func DefaultBevel() BevelParams {
	return BevelParams{Module: 1, Teeth: 20, PressureAngle: 20, PitchAngle: 45, FaceWidth: 5}
}

func DefaultHypoid() HypoidParams {
	return HypoidParams{Module: 1, Teeth: 20, PressureAngle: 20, PitchAngle: 45, SpiralAngle: 35, FaceWidth: 4, Offset: 10}
}

func DefaultCrown() CrownParams {
	return CrownParams{Module: 1, Teeth: 30, PressureAngle: 20, FaceWidth: 5, Height: 3}
}

func DefaultRack() RackParams {
	return RackParams{Module: 1, Teeth: 10, PressureAngle: 20, Height: 10, BaseThickness: 5}
}

func DefaultScrew() ScrewParams {
	return ScrewParams{Module: 1, Teeth: 12, PressureAngle: 20, HelixAngle: 30, FaceWidth: 10}
}

func DefaultCycloid() CycloidParams {
	return CycloidParams{Module: 1, Teeth: 12, AddendumFactor: 1.4, DedendumFactor: 1.6, Height: 10}
}

func DefaultCycloidRack() CycloidRackParams {
	return CycloidRackParams{Module: 1, Teeth: 10, AddendumFactor: 1.4, DedendumFactor: 1.6, Height: 10, BaseThickness: 5}
}

func DefaultNonCircular() NonCircularParams {
	return NonCircularParams{Height: 10, Boundary: LobedBoundary(30, 20, 2, 120)}
}

// Summaries. Each derives the read-only meshing view from its parameter set.

func (p SpurParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle,
		Family: FamilySpur, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p HelicalParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.HelixAngle,
		Family: FamilyHelical, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p HerringboneParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.HelixAngle,
		Family: FamilyHerringbone, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p InternalParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle,
		Family: FamilySpur, Internal: true, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p BevelParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.SpiralAngle,
		Family: FamilyBevel, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p HypoidParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.SpiralAngle,
		Family: FamilyHypoid, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p CrownParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.SpiralAngle,
		Family: FamilyCrown, PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p RackParams) Summary() Summary {
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, Family: FamilyRack}
}

// Summary of a screw gear reports the transverse pitch diameter: radial
// dimensions of crossed gears come from the transverse module.
func (p ScrewParams) Summary() Summary {
	mt := TransverseModule(p.Module, p.HelixAngle)
	return Summary{Module: p.Module, PressureAngle: p.PressureAngle, HelixAngle: p.HelixAngle,
		Family: FamilyScrew, PitchDiameter: PitchDiameter(mt, p.Teeth)}
}

func (p CycloidParams) Summary() Summary {
	return Summary{Module: p.Module, Family: FamilyCycloid,
		PitchDiameter: PitchDiameter(p.Module, p.Teeth)}
}

func (p CycloidRackParams) Summary() Summary {
	return Summary{Module: p.Module, Family: FamilyCycloid}
}

func (p NonCircularParams) Summary() Summary {
	return Summary{Family: FamilyNonCircular}
}
