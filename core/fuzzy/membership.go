// Package fuzzy implements a Mamdani-style fuzzy inference engine:
// linguistic variables with piecewise-linear membership functions, a rule
// base over AND/OR antecedent trees, min-implication with max-aggregation,
// and centroid defuzzification.
package fuzzy

import (
	"fmt"
)

// MembershipFunction is a triangular or trapezoidal fuzzy set shape over a
// scalar domain. It is immutable once constructed; both variants are held
// as a trapezoid, a triangle being one with a single-point plateau.
type MembershipFunction struct {
	a, b, c, d float64
}

func Triangular(a, b, c float64) (MembershipFunction, error) {
	if !(a <= b && b <= c) {
		return MembershipFunction{}, fmt.Errorf(
			"triangular breakpoints not ordered: %v, %v, %v", a, b, c)
	}
	return MembershipFunction{a: a, b: b, c: b, d: c}, nil
}

func Trapezoidal(a, b, c, d float64) (MembershipFunction, error) {
	if !(a <= b && b <= c && c <= d) {
		return MembershipFunction{}, fmt.Errorf(
			"trapezoidal breakpoints not ordered: %v, %v, %v, %v", a, b, c, d)
	}
	return MembershipFunction{a: a, b: b, c: c, d: d}, nil
}

// Degree evaluates the membership of x. It is a total function: 0 outside
// the support, 1 on the plateau, linear interpolation on the ramps.
func (m MembershipFunction) Degree(x float64) float64 {
	if x < m.a || x > m.d {
		return 0
	}
	if x < m.b {
		return (x - m.a) / (m.b - m.a)
	}
	if x <= m.c {
		return 1
	}
	return (m.d - x) / (m.d - m.c)
}

// Support returns the interval outside of which Degree is 0.
func (m MembershipFunction) Support() (lo, hi float64) {
	return m.a, m.d
}
