// Package anim holds the per-frame animation primitives: range remapping,
// pointer tracking, the wave field, the bob oscillator and target easing.
package anim

import "math"

// Normalize clamps v into [vmin, vmax] and maps it linearly onto [tmin, tmax].
// vmin must be less than vmax; this is not checked.
func Normalize(v, vmin, vmax, tmin, tmax float64) float64 {
	nv := max(min(v, vmax), vmin)
	pc := (nv - vmin) / (vmax - vmin)
	return tmin + pc*(tmax-tmin)
}

// Spin adds delta to the angle a and wraps the result into [-pi, pi], so a
// rotation that runs for hours keeps its float32 precision.
func Spin(a, delta float32) float32 {
	return float32(math.Remainder(float64(a)+float64(delta), 2*math.Pi))
}
