package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestLineSample(t *testing.T) {
	l := Line{A: r2.Vec{X: 1, Y: 2}, B: r2.Vec{X: 5, Y: -2}}
	pts := l.Sample(5)
	require.Len(t, pts, 5)
	assert.Equal(t, l.A, pts[0])
	assert.Equal(t, l.B, pts[4])
	mid := pts[2]
	assert.InDelta(t, 3, mid.X, 1e-12)
	assert.InDelta(t, 0, mid.Y, 1e-12)
}

func TestArcSample(t *testing.T) {
	// Upper unit semicircle through three of its points.
	a := Arc{
		P0: r2.Vec{X: 1, Y: 0},
		PM: r2.Vec{X: 0, Y: 1},
		P1: r2.Vec{X: -1, Y: 0},
	}
	c, radius, ok := a.Center()
	require.True(t, ok)
	assert.InDelta(t, 0, c.X, 1e-12)
	assert.InDelta(t, 0, c.Y, 1e-12)
	assert.InDelta(t, 1, radius, 1e-12)

	pts := a.Sample(9)
	require.Len(t, pts, 9)
	assert.Equal(t, a.P0, pts[0])
	assert.Equal(t, a.P1, pts[8])
	for _, p := range pts {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-9)
		assert.GreaterOrEqual(t, p.Y, -1e-12, "sample left the upper half plane")
	}
}

func TestArcCollinearFallsBackToChord(t *testing.T) {
	a := Arc{
		P0: r2.Vec{X: 0, Y: 0},
		PM: r2.Vec{X: 1, Y: 1},
		P1: r2.Vec{X: 2, Y: 2},
	}
	_, _, ok := a.Center()
	assert.False(t, ok)
	pts := a.Sample(3)
	require.Len(t, pts, 3)
	assert.Equal(t, a.P0, pts[0])
	assert.Equal(t, a.P1, pts[2])
}

func TestCircleSample(t *testing.T) {
	c := Circle{Center: r2.Vec{X: 1, Y: -1}, Radius: 2.5}
	pts := c.Sample(16)
	for _, p := range pts {
		assert.InDelta(t, 2.5, math.Hypot(p.X-1, p.Y+1), 1e-9)
	}
	assert.True(t, ToothProfile{Segments: []Segment{c}}.Closed(1e-12))
}

func TestProfileClosed(t *testing.T) {
	open := ToothProfile{Segments: []Segment{
		Line{A: r2.Vec{}, B: r2.Vec{X: 1}},
		Line{A: r2.Vec{X: 1}, B: r2.Vec{X: 1, Y: 1}},
	}}
	assert.False(t, open.Closed(1e-9))
	closed := ToothProfile{Segments: append(open.Segments,
		Line{A: r2.Vec{X: 1, Y: 1}, B: r2.Vec{}})}
	assert.True(t, closed.Closed(1e-9))
}

func TestProfilePoints(t *testing.T) {
	tri := ToothProfile{Segments: []Segment{
		Line{A: r2.Vec{}, B: r2.Vec{X: 1}},
		Line{A: r2.Vec{X: 1}, B: r2.Vec{Y: 1}},
		Line{A: r2.Vec{Y: 1}, B: r2.Vec{}},
	}}
	pts := tri.Points(2)
	// Shared joints appear once; the closing point repeats the first.
	require.Len(t, pts, 4)
	assert.Equal(t, pts[0], pts[3])
}

func TestProfileRotated(t *testing.T) {
	p := ToothProfile{Segments: []Segment{
		Line{A: r2.Vec{X: 1}, B: r2.Vec{X: 2}},
	}}
	r := p.Rotated(math.Pi / 2)
	got := r.Segments[0].Start()
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
	// Rotation preserves segment lengths.
	end := r.Segments[0].End()
	assert.InDelta(t, 1, math.Hypot(end.X-got.X, end.Y-got.Y), 1e-12)
}
