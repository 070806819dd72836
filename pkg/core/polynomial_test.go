package core

import (
	"math"
	"testing"
)

func TestSolveQuadratic_TwoRoots(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"simple factored", 1, -5, 6},               // roots 2, 3
		{"negative roots", 1, 3, 2},                 // roots -2, -1
		{"scaled", 2, -8, 6},                        // roots 1, 3
		{"cancellation prone", 1, 1e8, 1},           // tiny root near -1e-8
		{"negative leading", -1, 2, 3},              // roots -1, 3
		{"wide spread", 1e-3, 1, 1e-3},              // roots near -1000 and -0.001
		{"unit sphere entry", 1, -4, 3.75},          // sphere radius 0.5 at distance 2
		{"mixed sign constant", 3, -2, -5},          // roots -1, 5/3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var roots [2]float64
			n := SolveQuadratic(tt.a, tt.b, tt.c, &roots)
			if n != 2 {
				t.Fatalf("expected 2 roots, got %d", n)
			}
			if roots[0] > roots[1] {
				t.Errorf("roots not sorted: %v > %v", roots[0], roots[1])
			}
			for _, root := range roots {
				residual := tt.a*root*root + tt.b*root + tt.c
				// scale tolerance by the magnitude of the evaluated terms
				scale := math.Max(1, math.Abs(tt.a*root*root)+math.Abs(tt.b*root)+math.Abs(tt.c))
				if math.Abs(residual)/scale > 1e-9 {
					t.Errorf("root %v does not satisfy equation, residual %v", root, residual)
				}
			}
		})
	}
}

func TestSolveQuadratic_NoRoots(t *testing.T) {
	var roots [2]float64
	if n := SolveQuadratic(1, 0, 1, &roots); n != 0 {
		t.Errorf("expected 0 roots for negative discriminant, got %d", n)
	}
	if n := SolveQuadratic(2, 2, 5, &roots); n != 0 {
		t.Errorf("expected 0 roots for negative discriminant, got %d", n)
	}
}

func TestSolveQuadratic_DoubleRoot(t *testing.T) {
	// (t - 3)² = t² - 6t + 9
	var roots [2]float64
	n := SolveQuadratic(1, -6, 9, &roots)
	if n == 0 {
		t.Fatal("expected a double root, got none")
	}
	if roots[0] != roots[1] {
		t.Errorf("double root should fill both slots equally, got %v and %v", roots[0], roots[1])
	}
	if math.Abs(roots[0]-3) > 1e-12 {
		t.Errorf("expected double root 3, got %v", roots[0])
	}
}

func TestSolveQuadratic_DegradesToLinear(t *testing.T) {
	var roots [2]float64
	n := SolveQuadratic(0, 2, -8, &roots)
	if n != 1 {
		t.Fatalf("expected 1 root for linear case, got %d", n)
	}
	if math.Abs(roots[0]-4) > 1e-12 {
		t.Errorf("expected root 4, got %v", roots[0])
	}
	if roots[1] != roots[0] {
		t.Errorf("linear root should fill both slots, got %v and %v", roots[0], roots[1])
	}

	if n := SolveQuadratic(0, 0, 5, &roots); n != 0 {
		t.Errorf("expected 0 roots for constant equation, got %d", n)
	}
}

func TestSolveQuadratic_CancellationStability(t *testing.T) {
	// With b large and positive, the naive (-b + √Δ)/(2a) form loses nearly
	// all significant digits on the small root. The stable form must keep it.
	a, b, c := 1.0, 1e8, 1.0

	var roots [2]float64
	n := SolveQuadratic(a, b, c, &roots)
	if n != 2 {
		t.Fatalf("expected 2 roots, got %d", n)
	}

	smallRoot := roots[1] // closer to zero
	if math.Abs(roots[0]) < math.Abs(roots[1]) {
		smallRoot = roots[0]
	}

	expected := -1e-8
	if math.Abs(smallRoot-expected)/math.Abs(expected) > 1e-6 {
		t.Errorf("small root lost precision: got %v, expected about %v", smallRoot, expected)
	}
}

func TestSolveLinear(t *testing.T) {
	var roots [2]float64
	if n := SolveLinear(2, -6, &roots); n != 1 || roots[0] != 3 {
		t.Errorf("SolveLinear(2,-6) = %d roots %v, expected 1 root 3", n, roots[0])
	}
	if n := SolveLinear(0, 1, &roots); n != 0 {
		t.Errorf("expected 0 roots for a=0, got %d", n)
	}
}
