package fuzzy

import (
	"fmt"
)

// Fuzzified holds per-variable, per-term membership degrees as produced by
// fuzzifying one crisp input vector.
type Fuzzified map[string]map[string]float64

// Expr is a rule antecedent: a tree of term references combined with
// AND/OR. Expressions reference variables and terms by name only; the
// references are resolved once, at engine construction.
type Expr interface {
	activation(fz Fuzzified) float64
	check(vars map[string]*Variable) error
}

// TermRef names a term of a variable.
type TermRef struct {
	Variable string
	Term     string
}

func (r TermRef) activation(fz Fuzzified) float64 {
	return fz[r.Variable][r.Term]
}

func (r TermRef) check(vars map[string]*Variable) error {
	v, ok := vars[r.Variable]
	if !ok {
		return fmt.Errorf("unknown variable %s", r.Variable)
	}
	if _, ok := v.Term(r.Term); !ok {
		return fmt.Errorf("variable %s has no term %s", r.Variable, r.Term)
	}
	return nil
}

// And is the Zadeh conjunction: the minimum of its children's activations.
type And []Expr

func (e And) activation(fz Fuzzified) float64 {
	a := e[0].activation(fz)
	for _, c := range e[1:] {
		if x := c.activation(fz); x < a {
			a = x
		}
	}
	return a
}

func (e And) check(vars map[string]*Variable) error {
	if len(e) == 0 {
		return fmt.Errorf("empty AND")
	}
	for _, c := range e {
		if err := c.check(vars); err != nil {
			return err
		}
	}
	return nil
}

// Or is the Zadeh disjunction: the maximum of its children's activations.
type Or []Expr

func (e Or) activation(fz Fuzzified) float64 {
	a := e[0].activation(fz)
	for _, c := range e[1:] {
		if x := c.activation(fz); x > a {
			a = x
		}
	}
	return a
}

func (e Or) check(vars map[string]*Variable) error {
	if len(e) == 0 {
		return fmt.Errorf("empty OR")
	}
	for _, c := range e {
		if err := c.check(vars); err != nil {
			return err
		}
	}
	return nil
}

// Activation evaluates an antecedent against a fuzzified input vector.
func Activation(e Expr, fz Fuzzified) float64 {
	return e.activation(fz)
}

// Rule maps an antecedent to one term of the output variable.
type Rule struct {
	ID    string
	Label string
	When  Expr
	Then  TermRef
}
