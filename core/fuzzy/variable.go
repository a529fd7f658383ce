package fuzzy

import (
	"fmt"
)

// Term is a labeled fuzzy set over its variable's domain.
type Term struct {
	Label string
	MF    MembershipFunction
}

// Variable is a named linguistic variable: a scalar domain [min, max] with
// an ordered set of uniquely labeled terms. Variables are created once at
// engine construction and are read-only afterward.
type Variable struct {
	name     string
	min, max float64
	terms    []Term
	index    map[string]int
}

func NewVariable(name string, min, max float64, terms []Term) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("variable has no name")
	}
	if !(min < max) {
		return nil, fmt.Errorf("variable %s: invalid domain [%v, %v]", name, min, max)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("variable %s: no terms", name)
	}
	v := &Variable{
		name:  name,
		min:   min,
		max:   max,
		terms: append([]Term(nil), terms...),
		index: make(map[string]int, len(terms)),
	}
	for i, t := range v.terms {
		if t.Label == "" {
			return nil, fmt.Errorf("variable %s: term %d has no label", name, i)
		}
		if _, ok := v.index[t.Label]; ok {
			return nil, fmt.Errorf("variable %s: duplicate term %s", name, t.Label)
		}
		v.index[t.Label] = i
	}
	return v, nil
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) Domain() (min, max float64) {
	return v.min, v.max
}

func (v *Variable) Terms() []Term {
	return append([]Term(nil), v.terms...)
}

func (v *Variable) Term(label string) (Term, bool) {
	i, ok := v.index[label]
	if !ok {
		return Term{}, false
	}
	return v.terms[i], true
}

// Clamp forces a crisp value into the variable's domain. Out-of-domain
// inputs are clamped silently before fuzzification.
func (v *Variable) Clamp(x float64) float64 {
	if x < v.min {
		return v.min
	}
	if x > v.max {
		return v.max
	}
	return x
}

// Fuzzify evaluates every term's membership at x, after clamping x into
// the domain.
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	x = v.Clamp(x)
	degrees := make(map[string]float64, len(v.terms))
	for _, t := range v.terms {
		degrees[t.Label] = t.MF.Degree(x)
	}
	return degrees
}
