// Package domain implements the WGT wind-adjustment model for golf shots.
//
// # Angle Factor
//
// The angle factor is a dimensionless multiplier in [0.1, 1.0] that scales
// how much the wind influences a shot, based on the shot's angle around the
// aiming circle:
//
//	  0° (right of circle)  → 1.0
//	 90° (top of circle)    → 0.1
//	180° (left of circle)   → 1.0
//	270° (bottom of circle) → 0.1
//
// Between the cardinals the factor is piecewise-linear, interpolated over
// each 90° quadrant. This is a gameplay heuristic, not a physical model;
// it is kept exactly as the community formula defines it rather than being
// replaced with a smooth trigonometric curve, because every downstream
// number depends on its exact output. Each quadrant is closed on its upper
// boundary: 90° uses the first quadrant's formula, 180° the second, and so
// on. 360° wraps to 0°.
//
// Angles are taken modulo 360, so negative and oversized angles are valid
// input. The factor is continuous and periodic with period 360.
//
// # Adjustment Pipeline
//
// AdjustDistance derives the wind-adjusted distance in four steps:
//
//	step1 = distance × wind
//	step2 = divisor / angleFactor     (divisor: 180 headwind, 225 tailwind)
//	step3 = step1 / step2
//	step4 = distance + step3          (headwind; tailwind subtracts)
//
// The factor floor of 0.1 guarantees step2 never divides by zero. Every
// step is captured in a CalculationTrace together with a display formula
// string, so a UI can show the full derivation. Traces are immutable value
// structs; the pipeline is deterministic and holds no state, so calls are
// safe from any number of goroutines.
//
// # Wind Direction
//
// The only recoverable error in the package is an unrecognized wind
// direction. Matching is case-insensitive against "headwind" and
// "tailwind"; anything else yields ErrInvalidWindDirection, whose message
// is part of the wire contract consumed by UI clients.
//
// Non-finite inputs (NaN, ±Inf) are not validated here; callers own that
// guard. The HTTP adapter rejects them before they reach this package.
package domain
