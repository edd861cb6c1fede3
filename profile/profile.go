// Package profile generates 2D tooth boundary curves for every gear family.
// A profile is an ordered list of curve segments in a local frame centered
// on the gear axis; the downstream modeling kernel extrudes, lofts and
// patterns them into solids. Each generator is a pure function of its
// parameter set and returns a fresh profile owned by the caller.
package profile

import (
	"math"

	"github.com/iplayfast/GearWorkBench-sub000/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// Segment is one curve piece of a tooth boundary.
type Segment interface {
	Start() r2.Vec
	End() r2.Vec
	// Sample returns n points along the segment including both endpoints.
	Sample(n int) []r2.Vec
}

// Line is a straight segment.
type Line struct {
	A, B r2.Vec
}

func (l Line) Start() r2.Vec { return l.A }
func (l Line) End() r2.Vec   { return l.B }

func (l Line) Sample(n int) []r2.Vec {
	if n < 2 {
		n = 2
	}
	pts := make([]r2.Vec, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = r2.Add(l.A, r2.Scale(t, r2.Sub(l.B, l.A)))
	}
	return pts
}

// Arc is a circular arc through three points, traversed P0 → PM → P1.
type Arc struct {
	P0, PM, P1 r2.Vec
}

func (a Arc) Start() r2.Vec { return a.P0 }
func (a Arc) End() r2.Vec   { return a.P1 }

// Center returns the arc's circumcenter and radius. Collinear points
// degenerate to an infinite radius; callers fall back to a chord.
func (a Arc) Center() (c r2.Vec, radius float64, ok bool) {
	d := 2 * (a.P0.X*(a.PM.Y-a.P1.Y) + a.PM.X*(a.P1.Y-a.P0.Y) + a.P1.X*(a.P0.Y-a.PM.Y))
	if math.Abs(d) < tolerance {
		return r2.Vec{}, math.Inf(1), false
	}
	n0 := r2.Norm2(a.P0)
	nm := r2.Norm2(a.PM)
	n1 := r2.Norm2(a.P1)
	c = r2.Vec{
		X: (n0*(a.PM.Y-a.P1.Y) + nm*(a.P1.Y-a.P0.Y) + n1*(a.P0.Y-a.PM.Y)) / d,
		Y: (n0*(a.P1.X-a.PM.X) + nm*(a.P0.X-a.P1.X) + n1*(a.PM.X-a.P0.X)) / d,
	}
	return c, r2.Norm(r2.Sub(a.P0, c)), true
}

func (a Arc) Sample(n int) []r2.Vec {
	if n < 2 {
		n = 2
	}
	c, radius, ok := a.Center()
	if !ok {
		return Line{A: a.P0, B: a.P1}.Sample(n)
	}
	a0 := d2.Angle(r2.Sub(a.P0, c))
	am := d2.Angle(r2.Sub(a.PM, c))
	a1 := d2.Angle(r2.Sub(a.P1, c))
	// Sweep in whichever direction passes through the mid point.
	ccwMid := math.Mod(am-a0+4*math.Pi, 2*math.Pi)
	ccwEnd := math.Mod(a1-a0+4*math.Pi, 2*math.Pi)
	sweep := ccwEnd
	if ccwMid > ccwEnd {
		sweep = ccwEnd - 2*math.Pi
	}
	pts := make([]r2.Vec, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = r2.Add(c, d2.PolarToXY(radius, a0+t*sweep))
	}
	return pts
}

// Circle is a full circle, used for bore outlines and blank boundaries.
type Circle struct {
	Center r2.Vec
	Radius float64
}

func (c Circle) Start() r2.Vec { return r2.Add(c.Center, r2.Vec{X: c.Radius}) }
func (c Circle) End() r2.Vec   { return c.Start() }

func (c Circle) Sample(n int) []r2.Vec {
	if n < 3 {
		n = 3
	}
	pts := make([]r2.Vec, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		pts[i] = r2.Add(c.Center, d2.PolarToXY(c.Radius, theta))
	}
	return pts
}

// Spline is an interpolating curve through an ordered point sequence. The
// kernel fits the actual B-spline; sampling returns the control polyline.
type Spline struct {
	Points []r2.Vec
}

func (s Spline) Start() r2.Vec { return s.Points[0] }
func (s Spline) End() r2.Vec   { return s.Points[len(s.Points)-1] }

func (s Spline) Sample(n int) []r2.Vec {
	pts := make([]r2.Vec, len(s.Points))
	copy(pts, s.Points)
	return pts
}

// ToothProfile is an ordered sequence of curve segments bounding one tooth,
// or the full boundary of a non-circular gear.
type ToothProfile struct {
	Segments []Segment
}

// Closed reports whether consecutive segments join end-to-start and the
// last segment returns to the first, within tol.
func (t ToothProfile) Closed(tol float64) bool {
	n := len(t.Segments)
	if n == 0 {
		return false
	}
	for i, s := range t.Segments {
		next := t.Segments[(i+1)%n]
		if !d2.EqualWithin(s.End(), next.Start(), tol) {
			return false
		}
	}
	return true
}

// Points flattens the profile to a polyline with perSegment samples per
// segment, dropping duplicated joint points.
func (t ToothProfile) Points(perSegment int) []r2.Vec {
	var pts []r2.Vec
	for _, s := range t.Segments {
		sp := s.Sample(perSegment)
		if len(pts) > 0 && d2.EqualWithin(pts[len(pts)-1], sp[0], 1e-6) {
			sp = sp[1:]
		}
		pts = append(pts, sp...)
	}
	return pts
}

// Rotated returns a copy of the profile rotated about the origin.
func (t ToothProfile) Rotated(angle float64) ToothProfile {
	segs := make([]Segment, len(t.Segments))
	for i, s := range t.Segments {
		segs[i] = rotateSegment(s, angle)
	}
	return ToothProfile{Segments: segs}
}

func rotateSegment(s Segment, angle float64) Segment {
	switch v := s.(type) {
	case Line:
		return Line{A: d2.Rotate(v.A, angle), B: d2.Rotate(v.B, angle)}
	case Arc:
		return Arc{P0: d2.Rotate(v.P0, angle), PM: d2.Rotate(v.PM, angle), P1: d2.Rotate(v.P1, angle)}
	case Circle:
		return Circle{Center: d2.Rotate(v.Center, angle), Radius: v.Radius}
	case Spline:
		return Spline{Points: d2.RotateSet(v.Points, angle)}
	}
	return s
}
