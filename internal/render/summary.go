package render

import "math"

// Summary compares the adjusted distance against the original.
type Summary struct {
	Original      float64 `json:"original"`
	Adjusted      float64 `json:"adjusted"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percentChange"`
}

// NewSummary derives the adjustment summary shown alongside the trace.
// PercentChange is |adjusted − distance| / distance × 100, zero when the
// original distance is zero.
func NewSummary(distance, adjusted float64) Summary {
	diff := math.Abs(adjusted - distance)
	var pct float64
	if distance != 0 {
		pct = diff / distance * 100
	}
	return Summary{
		Original:      distance,
		Adjusted:      adjusted,
		Difference:    diff,
		PercentChange: pct,
	}
}
