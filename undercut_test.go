package gears

import (
	"math"
	"testing"
)

func TestMinTeethNoUndercut(t *testing.T) {
	// Standard 20° gear: z_min ≈ 17.1.
	got := MinTeethNoUndercut(20, 0)
	want := 2 / math.Pow(math.Sin(d2r(20)), 2)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("z_min = %g, want %g", got, want)
	}
	if got < 17 || got > 17.2 {
		t.Errorf("z_min at 20° = %g, expected near 17.1", got)
	}
	// Positive shift relaxes the limit, negative shift tightens it.
	if shifted := MinTeethNoUndercut(20, 0.5); shifted >= got {
		t.Errorf("positive shift did not lower z_min: %g >= %g", shifted, got)
	}
	if shifted := MinTeethNoUndercut(20, -0.5); shifted <= got {
		t.Errorf("negative shift did not raise z_min: %g <= %g", shifted, got)
	}
}

func TestCheckUndercut(t *testing.T) {
	if under, min := CheckUndercut(20, 20, 0); under {
		t.Errorf("z=20 flagged as undercut (z_min=%g)", min)
	}
	under, min := CheckUndercut(10, 20, 0)
	if !under {
		t.Errorf("z=10 not flagged as undercut (z_min=%g)", min)
	}
	if min <= 10 || min >= 20 {
		t.Errorf("z_min = %g, expected in (10, 20)", min)
	}
}
