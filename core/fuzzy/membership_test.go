package fuzzy_test

import (
	"math"
	"testing"

	"example.com/pump-service/core/fuzzy"
)

func tri(t *testing.T, a, b, c float64) fuzzy.MembershipFunction {
	t.Helper()
	m, err := fuzzy.Triangular(a, b, c)
	if err != nil {
		t.Fatalf("Triangular(%v, %v, %v) failed: %v", a, b, c, err)
	}
	return m
}

func trap(t *testing.T, a, b, c, d float64) fuzzy.MembershipFunction {
	t.Helper()
	m, err := fuzzy.Trapezoidal(a, b, c, d)
	if err != nil {
		t.Fatalf("Trapezoidal(%v, %v, %v, %v) failed: %v", a, b, c, d, err)
	}
	return m
}

func TestTriangularDegree(t *testing.T) {
	m := tri(t, 0, 5, 10)
	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{2.5, 0.5},
		{5, 1},
		{7.5, 0.5},
		{10, 0},
		{11, 0},
	}
	for _, tt := range tests {
		if got := m.Degree(tt.x); got != tt.want {
			t.Errorf("Degree(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTriangularShoulders(t *testing.T) {
	left := tri(t, 0, 0, 5)
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{2.5, 0.5},
		{5, 0},
	}
	for _, tt := range tests {
		if got := left.Degree(tt.x); got != tt.want {
			t.Errorf("left shoulder Degree(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	right := tri(t, 5, 10, 10)
	tests = []struct {
		x    float64
		want float64
	}{
		{5, 0},
		{7.5, 0.5},
		{10, 1},
	}
	for _, tt := range tests {
		if got := right.Degree(tt.x); got != tt.want {
			t.Errorf("right shoulder Degree(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTrapezoidalDegree(t *testing.T) {
	m := trap(t, 60, 60, 70, 80)
	tests := []struct {
		x    float64
		want float64
	}{
		{59, 0},
		{60, 1},
		{65, 1},
		{70, 1},
		{75, 0.5},
		{80, 0},
		{81, 0},
	}
	for _, tt := range tests {
		if got := m.Degree(tt.x); got != tt.want {
			t.Errorf("Degree(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTrapezoidalPlateau(t *testing.T) {
	m := trap(t, 0, 2, 6, 9)
	for x := 2.0; x <= 6.0; x += 0.25 {
		if got := m.Degree(x); got != 1 {
			t.Errorf("Degree(%v) = %v, want 1", x, got)
		}
	}
}

func TestDegreeBoundedAndZeroOutsideSupport(t *testing.T) {
	ms := []fuzzy.MembershipFunction{
		tri(t, 0, 5, 10),
		tri(t, 0, 0, 5),
		tri(t, 5, 10, 10),
		trap(t, -60, -60, -40, -30),
		trap(t, 180, 190, 200, 200),
	}
	for _, m := range ms {
		lo, hi := m.Support()
		for x := lo - 50; x <= hi+50; x += 0.5 {
			d := m.Degree(x)
			if d < 0 || d > 1 {
				t.Errorf("Degree(%v) = %v, want value in [0, 1]", x, d)
			}
			if (x < lo || x > hi) && d != 0 {
				t.Errorf("Degree(%v) = %v outside support [%v, %v], want 0", x, d, lo, hi)
			}
		}
	}
}

func TestTriangularMonotonicity(t *testing.T) {
	m := tri(t, 0, 5, 10)
	prev := math.Inf(-1)
	for x := 0.0; x <= 5.0; x += 0.1 {
		d := m.Degree(x)
		if d < prev {
			t.Fatalf("Degree not non-decreasing on rising ramp at %v: %v < %v", x, d, prev)
		}
		prev = d
	}
	prev = math.Inf(1)
	for x := 5.0; x <= 10.0; x += 0.1 {
		d := m.Degree(x)
		if d > prev {
			t.Fatalf("Degree not non-increasing on falling ramp at %v: %v > %v", x, d, prev)
		}
		prev = d
	}
}

func TestMisorderedBreakpoints(t *testing.T) {
	if _, err := fuzzy.Triangular(1, 0, 2); err == nil {
		t.Error("Triangular(1, 0, 2) succeeded, want error")
	}
	if _, err := fuzzy.Triangular(0, 2, 1); err == nil {
		t.Error("Triangular(0, 2, 1) succeeded, want error")
	}
	if _, err := fuzzy.Trapezoidal(0, 2, 1, 3); err == nil {
		t.Error("Trapezoidal(0, 2, 1, 3) succeeded, want error")
	}
	if _, err := fuzzy.Trapezoidal(0, 1, 3, 2); err == nil {
		t.Error("Trapezoidal(0, 1, 3, 2) succeeded, want error")
	}
}
