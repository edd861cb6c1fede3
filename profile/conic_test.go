package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gears "github.com/iplayfast/GearWorkBench-sub000"
)

func testBevel() gears.BevelParams {
	return gears.BevelParams{
		Module: 2, Teeth: 20, PressureAngle: 20,
		PitchAngle: 45, SpiralAngle: 0, FaceWidth: 5,
	}
}

func TestBevelSections(t *testing.T) {
	cs, err := BevelSections(testBevel())
	require.NoError(t, err)

	pitchR := 20.0
	wantCone := pitchR / math.Sin(math.Pi/4)
	assert.InDelta(t, wantCone, cs.ConeDistance, 1e-9)
	assert.InDelta(t, wantCone-5, cs.ConeDistanceInner, 1e-9)
	assert.False(t, cs.FaceWidthClamped)
	assert.True(t, cs.Outer.Closed(1e-9))
	assert.True(t, cs.Inner.Closed(1e-9))

	// Straight teeth: sections share one angular position.
	assert.Zero(t, cs.TwistAngle)
	assert.Zero(t, cs.InnerPlacement.Rotation)

	// Inner section is the outer scaled by the cone distance ratio.
	scale := cs.ConeDistanceInner / cs.ConeDistance
	out := cs.Outer.Points(8)
	in := cs.Inner.Points(8)
	require.Equal(t, len(out), len(in))
	for i := range out {
		assert.InDelta(t, out[i].X*scale, in[i].X, 1e-9)
		assert.InDelta(t, out[i].Y*scale, in[i].Y, 1e-9)
	}
}

func TestBevelSpiralTwist(t *testing.T) {
	p := testBevel()
	p.SpiralAngle = 35
	cs, err := BevelSections(p)
	require.NoError(t, err)
	assert.Greater(t, cs.TwistAngle, 0.0)
	assert.Equal(t, cs.TwistAngle, cs.InnerPlacement.Rotation)

	p.SpiralAngle = -35
	mirror, err := BevelSections(p)
	require.NoError(t, err)
	assert.InDelta(t, -cs.TwistAngle, mirror.TwistAngle, 1e-9)
}

func TestBevelFaceWidthClamp(t *testing.T) {
	p := testBevel()
	p.FaceWidth = 50 // more than half the cone distance (~28.3)
	cs, err := BevelSections(p)
	require.NoError(t, err)
	assert.True(t, cs.FaceWidthClamped)
	assert.InDelta(t, cs.ConeDistance/2, cs.FaceWidth, 1e-9)
	assert.Greater(t, cs.ConeDistanceInner, 0.0)
}

func TestConicRootRadiusFloor(t *testing.T) {
	// A tiny gear on a shallow cone drives the root radius under the
	// floor; the floor wins.
	cs := conicSections(0.3, 3, 20, 5, 0, 0.2, 0)
	assert.Equal(t, minRootRadius, cs.RootRadiusOuter)
	assert.Equal(t, minRootRadius, cs.RootRadiusInner)
}

func TestHypoidSections(t *testing.T) {
	p := gears.HypoidParams{
		Module: 2, Teeth: 20, PressureAngle: 20,
		PitchAngle: 45, SpiralAngle: 35, FaceWidth: 4, Offset: 10,
	}
	cs, err := HypoidSections(p)
	require.NoError(t, err)
	assert.Greater(t, cs.TwistAngle, 0.0)

	// The axis offset shifts both sections without changing the cone.
	straight := gears.BevelParams{
		Module: 2, Teeth: 20, PressureAngle: 20,
		PitchAngle: 45, SpiralAngle: 35, FaceWidth: 4,
	}
	bs, err := BevelSections(straight)
	require.NoError(t, err)
	assert.InDelta(t, bs.OuterPlacement.Z+p.Offset, cs.OuterPlacement.Z, 1e-9)
	assert.InDelta(t, bs.InnerPlacement.Z+p.Offset, cs.InnerPlacement.Z, 1e-9)
	assert.InDelta(t, bs.ConeDistance, cs.ConeDistance, 1e-9)
}

func TestCrown(t *testing.T) {
	p := gears.CrownParams{
		Module: 2, Teeth: 30, PressureAngle: 20,
		SpiralAngle: 0, FaceWidth: 5, Height: 3,
	}
	cs, err := Crown(p)
	require.NoError(t, err)
	assert.InDelta(t, 30, cs.OuterRadius, 1e-12)
	assert.InDelta(t, 25, cs.InnerRadius, 1e-12)
	assert.False(t, cs.InnerClamped)
	assert.Zero(t, cs.TwistAngle)
	assert.Equal(t, p.Height, cs.BaseThickness)
	assert.True(t, cs.Outer.Closed(1e-9))
	assert.True(t, cs.Inner.Closed(1e-9))
}

func TestCrownInnerRadiusClamp(t *testing.T) {
	p := gears.CrownParams{
		Module: 2, Teeth: 3, PressureAngle: 20, FaceWidth: 5, Height: 3,
	}
	cs, err := Crown(p)
	require.NoError(t, err)
	assert.True(t, cs.InnerClamped)
	assert.Equal(t, minCrownInnerRadius, cs.InnerRadius)
}

func TestCrownSpiralTwist(t *testing.T) {
	p := gears.CrownParams{
		Module: 2, Teeth: 30, PressureAngle: 20,
		SpiralAngle: 20, FaceWidth: 5, Height: 3,
	}
	cs, err := Crown(p)
	require.NoError(t, err)
	want := gears.TwistAngle(5, 20, gears.CrownMeanRadius(30, 25))
	assert.InDelta(t, want, cs.TwistAngle, 1e-12)
}
