package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestAngleFactor_Cardinals(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"right of circle", 0, 1.0},
		{"top of circle", 90, 0.1},
		{"left of circle", 180, 1.0},
		{"bottom of circle", 270, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngleFactor(tt.angle), tolerance)
		})
	}
}

func TestAngleFactor_QuadrantInterpolation(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"midway first quadrant", 45, 0.55},
		{"midway second quadrant", 135, 0.55},
		{"midway third quadrant", 225, 0.55},
		{"midway fourth quadrant", 315, 0.55},
		{"first quadrant third", 30, 0.7},
		{"fourth quadrant near wrap", 359, 0.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngleFactor(tt.angle), tolerance)
		})
	}
}

func TestAngleFactor_Periodicity(t *testing.T) {
	angles := []float64{0, 13, 45, 90, 101.5, 180, 269, 270, 300, 359.9}
	for _, a := range angles {
		base := AngleFactor(a)
		for _, k := range []float64{-3, -1, 1, 2, 10} {
			assert.InDelta(t, base, AngleFactor(a+360*k), tolerance,
				"angle %v + %v turns", a, k)
		}
	}
}

func TestAngleFactor_NegativeAngles(t *testing.T) {
	// -90 normalizes to 270 (bottom), -45 to 315.
	assert.InDelta(t, 0.1, AngleFactor(-90), tolerance)
	assert.InDelta(t, 0.55, AngleFactor(-45), tolerance)
	assert.InDelta(t, 1.0, AngleFactor(-360), tolerance)
}

func TestAngleFactor_Range(t *testing.T) {
	for a := 0.0; a < 360; a += 0.25 {
		f := AngleFactor(a)
		assert.GreaterOrEqual(t, f, 0.1, "angle %v", a)
		assert.LessOrEqual(t, f, 1.0, "angle %v", a)
	}
}

func TestAngleFactor_ContinuityAtBoundaries(t *testing.T) {
	const eps = 1e-7
	for _, boundary := range []float64{90, 180, 270, 360} {
		below := AngleFactor(boundary - eps)
		above := AngleFactor(boundary + eps)
		at := AngleFactor(boundary)
		assert.InDelta(t, at, below, 1e-6, "approach %v from below", boundary)
		assert.InDelta(t, at, above, 1e-6, "approach %v from above", boundary)
	}
}

func TestAdjustDistance_Headwind(t *testing.T) {
	trace, err := AdjustDistance(103, 15, 0, "headwind")
	require.NoError(t, err)

	assert.InDelta(t, 1545.0, trace.Step1.Result, tolerance)
	assert.Equal(t, "103 * 15", trace.Step1.Formula)
	assert.InDelta(t, 1.0, trace.AngleFactor, tolerance)
	assert.InDelta(t, 180.0, trace.Step2.Divisor, tolerance)
	assert.InDelta(t, 180.0, trace.Step2.Result, tolerance)
	assert.Equal(t, "180 / 1.0000", trace.Step2.Formula)
	assert.InDelta(t, 8.583333333333334, trace.Step3.Result, tolerance)
	assert.Equal(t, "1545.0000 / 180.0000", trace.Step3.Formula)
	assert.InDelta(t, 111.58333333333333, trace.Step4.Result, tolerance)
	assert.Equal(t, "103 + 8.5833", trace.Step4.Formula)
	assert.InDelta(t, 111.58333333333333, trace.AdjustedDistance, tolerance)
}

func TestAdjustDistance_Tailwind(t *testing.T) {
	trace, err := AdjustDistance(103, 15, 0, "tailwind")
	require.NoError(t, err)

	assert.InDelta(t, 1545.0, trace.Step1.Result, tolerance)
	assert.InDelta(t, 225.0, trace.Step2.Divisor, tolerance)
	assert.InDelta(t, 225.0, trace.Step2.Result, tolerance)
	assert.InDelta(t, 6.866666666666667, trace.Step3.Result, tolerance)
	assert.Equal(t, "103 - 6.8667", trace.Step4.Formula)
	assert.InDelta(t, 96.13333333333333, trace.AdjustedDistance, tolerance)
}

func TestAdjustDistance_AngledShot(t *testing.T) {
	// factor at 45° is 0.55, so step2 = 180/0.55 and the wind effect shrinks
	trace, err := AdjustDistance(103, 15, 45, "headwind")
	require.NoError(t, err)

	assert.InDelta(t, 0.55, trace.AngleFactor, tolerance)
	assert.InDelta(t, 180.0/0.55, trace.Step2.Result, tolerance)
	assert.InDelta(t, 1545.0/(180.0/0.55), trace.Step3.Result, tolerance)
	assert.InDelta(t, 103+1545.0/(180.0/0.55), trace.AdjustedDistance, tolerance)
}

func TestAdjustDistance_InvalidDirection(t *testing.T) {
	for _, dir := range []string{"bogus", "", "crosswind", "head wind"} {
		t.Run("direction "+dir, func(t *testing.T) {
			trace, err := AdjustDistance(103, 15, 0, dir)
			require.ErrorIs(t, err, ErrInvalidWindDirection)
			assert.Equal(t, CalculationTrace{}, trace)
		})
	}
}

func TestAdjustDistance_DirectionCaseInsensitive(t *testing.T) {
	lower, err := AdjustDistance(103, 15, 0, "headwind")
	require.NoError(t, err)

	for _, dir := range []string{"HeadWind", "HEADWIND", "Headwind"} {
		trace, err := AdjustDistance(103, 15, 0, dir)
		require.NoError(t, err)
		assert.Equal(t, lower, trace)
	}
}

func TestAdjustDistance_Deterministic(t *testing.T) {
	first, err := AdjustDistance(87.5, 12.5, 203.25, "tailwind")
	require.NoError(t, err)
	second, err := AdjustDistance(87.5, 12.5, 203.25, "tailwind")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAdjustDistance_ZeroWind(t *testing.T) {
	trace, err := AdjustDistance(103, 0, 0, "headwind")
	require.NoError(t, err)

	assert.InDelta(t, 0.0, trace.Step1.Result, tolerance)
	assert.InDelta(t, 0.0, trace.Step3.Result, tolerance)
	assert.InDelta(t, 103.0, trace.AdjustedDistance, tolerance)
}

func TestParseWindDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected WindDirection
		wantErr  bool
	}{
		{"headwind", Headwind, false},
		{"tailwind", Tailwind, false},
		{"TailWind", Tailwind, false},
		{"HEADWIND", Headwind, false},
		{"sidewind", "", true},
		{"", "", true},
		{" headwind", "", true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			dir, err := ParseWindDirection(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWindDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestWindDirection_Divisor(t *testing.T) {
	assert.Equal(t, 180.0, Headwind.Divisor())
	assert.Equal(t, 225.0, Tailwind.Divisor())
}
