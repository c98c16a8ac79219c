package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	minFactor = 0.1
	maxFactor = 1.0

	headwindDivisor = 180.0
	tailwindDivisor = 225.0
)

// WindDirection is a canonicalized wind direction relative to the shot.
type WindDirection string

const (
	// Headwind opposes the shot; the adjustment adds distance.
	Headwind WindDirection = "headwind"
	// Tailwind aids the shot; the adjustment subtracts distance.
	Tailwind WindDirection = "tailwind"
)

// ErrInvalidWindDirection is returned when a direction string matches
// neither recognized value. The message text is part of the API contract
// and is rendered to users as-is.
var ErrInvalidWindDirection = errors.New("Invalid wind direction. Please use 'headwind' or 'tailwind'.")

// ParseWindDirection canonicalizes a wind direction string. Matching is
// case-insensitive; anything other than "headwind" or "tailwind" yields
// ErrInvalidWindDirection.
func ParseWindDirection(s string) (WindDirection, error) {
	switch {
	case strings.EqualFold(s, string(Headwind)):
		return Headwind, nil
	case strings.EqualFold(s, string(Tailwind)):
		return Tailwind, nil
	default:
		return "", ErrInvalidWindDirection
	}
}

// Divisor returns the wind-scaling constant for the direction: 180 for
// headwind, 225 for tailwind.
func (d WindDirection) Divisor() float64 {
	if d == Tailwind {
		return tailwindDivisor
	}
	return headwindDivisor
}

// AngleFactor maps a shot angle in degrees to a factor in [0.1, 1.0].
// The angle is normalized to [0, 360) first, so any finite real is valid.
// Each quadrant interpolates linearly between 1.0 and 0.1, closed on its
// upper boundary (90° belongs to the first quadrant, 180° to the second).
func AngleFactor(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}

	const span = maxFactor - minFactor
	switch {
	case a <= 90:
		return maxFactor - (a/90)*span
	case a <= 180:
		return minFactor + ((a-90)/90)*span
	case a <= 270:
		return maxFactor - ((a-180)/90)*span
	default:
		return minFactor + ((a-270)/90)*span
	}
}

// AdjustDistance runs the four-step wind-adjustment pipeline and returns
// the full derivation. distance is in yards, wind in WGT wind-strength
// units, angle in degrees. windDirection is matched case-insensitively;
// an unrecognized value returns ErrInvalidWindDirection and a zero trace.
func AdjustDistance(distance, wind, angle float64, windDirection string) (CalculationTrace, error) {
	direction, err := ParseWindDirection(windDirection)
	if err != nil {
		return CalculationTrace{}, err
	}

	step1 := distance * wind
	factor := AngleFactor(angle)
	divisor := direction.Divisor()
	step2 := divisor / factor
	step3 := step1 / step2

	var adjusted float64
	var step4 Step
	if direction == Headwind {
		adjusted = distance + step3
		step4 = Step{
			Formula: fmt.Sprintf("%g + %.4f", distance, step3),
			Result:  adjusted,
		}
	} else {
		adjusted = distance - step3
		step4 = Step{
			Formula: fmt.Sprintf("%g - %.4f", distance, step3),
			Result:  adjusted,
		}
	}

	return CalculationTrace{
		Step1: Step{
			Formula: fmt.Sprintf("%g * %g", distance, wind),
			Result:  step1,
		},
		AngleFactor: factor,
		Step2: DivisorStep{
			Divisor: divisor,
			Formula: fmt.Sprintf("%g / %.4f", divisor, factor),
			Result:  step2,
		},
		Step3: Step{
			Formula: fmt.Sprintf("%.4f / %.4f", step1, step2),
			Result:  step3,
		},
		Step4:            step4,
		AdjustedDistance: adjusted,
	}, nil
}
