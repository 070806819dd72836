package core

import "math"

// SolveLinear solves a*t + b = 0 and returns the root count (0 or 1).
// Roots are written into the first slot of roots.
func SolveLinear(a, b float64, roots *[2]float64) int {
	if a == 0 {
		return 0
	}
	roots[0] = -b / a
	return 1
}

// SolveQuadratic solves a*t² + b*t + c = 0 and returns the real root count
// (0, 1 or 2). When two roots exist they are written sorted ascending; a
// double root, or the single root of a degenerate linear equation, fills
// both slots with the same value.
//
// The two-root case uses the sign-aware form q = -(b + sign(b)·√Δ)/2 with
// t0 = q/a, t1 = c/q, which avoids the catastrophic cancellation the naive
// (-b ± √Δ)/(2a) form suffers when b and √Δ are close in magnitude.
func SolveQuadratic(a, b, c float64, roots *[2]float64) int {
	if a == 0 {
		n := SolveLinear(b, c, roots)
		if n == 1 {
			roots[1] = roots[0]
		}
		return n
	}

	delta := b*b - 4*a*c
	if delta < 0 {
		return 0
	}

	if delta == 0 {
		t := -b / (2 * a)
		roots[0] = t
		roots[1] = t
		return 2
	}

	q := -(b + math.Copysign(math.Sqrt(delta), b)) / 2
	roots[0] = q / a
	roots[1] = c / q
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return 2
}
