// Package config holds the declarative engine specification: linguistic
// variables with their term shapes, the rule base, and the runtime
// parameters of the control loop. It is the only configuration surface of
// the service.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"example.com/pump-service/core/fuzzy"
)

const (
	defaultTickInterval = 100 * time.Millisecond

	shapeTriangle  = "triangle"
	shapeTrapezoid = "trapezoid"
)

type Config struct {
	MetricsAddr     string  `toml:"metrics_address,omitempty"`
	TickInterval    string  `toml:"tick_interval,omitempty"`
	HistoryCapacity int     `toml:"history_capacity,omitempty"`
	Resolution      float64 `toml:"resolution,omitempty"`
	FallbackOutput  float64 `toml:"fallback_output,omitempty"`

	Inputs []VariableConfig `toml:"input,omitempty"`
	Output VariableConfig   `toml:"output,omitempty"`
	Rules  []RuleConfig     `toml:"rule,omitempty"`
}

type VariableConfig struct {
	Name  string       `toml:"name"`
	Min   float64      `toml:"min"`
	Max   float64      `toml:"max"`
	Terms []TermConfig `toml:"term"`
}

type TermConfig struct {
	Label  string    `toml:"label"`
	Shape  string    `toml:"shape"`
	Points []float64 `toml:"points"`
}

type RuleConfig struct {
	ID    string     `toml:"id"`
	Label string     `toml:"label,omitempty"`
	When  ExprConfig `toml:"when"`
	Then  string     `toml:"then"`
}

// ExprConfig is a rule antecedent node. Exactly one of Term, All or Any
// must be set; Term references are written "variable:term".
type ExprConfig struct {
	Term string       `toml:"term,omitempty"`
	All  []ExprConfig `toml:"all,omitempty"`
	Any  []ExprConfig `toml:"any,omitempty"`
}

func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Tick returns the control loop cadence.
func (c Config) Tick() (time.Duration, error) {
	if c.TickInterval == "" {
		return defaultTickInterval, nil
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid tick_interval: %s", c.TickInterval)
	}
	return d, nil
}

// Build constructs the inference engine described by the configuration.
func (c Config) Build(log *zap.Logger) (*fuzzy.Engine, error) {
	inputs := make([]*fuzzy.Variable, 0, len(c.Inputs))
	for _, vc := range c.Inputs {
		v, err := buildVariable(vc)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, v)
	}
	output, err := buildVariable(c.Output)
	if err != nil {
		return nil, err
	}
	rules := make([]fuzzy.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		r, err := buildRule(rc)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return fuzzy.NewEngine(log, inputs, output, rules, fuzzy.Options{
		Resolution:      c.Resolution,
		FallbackOutput:  c.FallbackOutput,
		HistoryCapacity: c.HistoryCapacity,
	})
}

func buildVariable(vc VariableConfig) (*fuzzy.Variable, error) {
	terms := make([]fuzzy.Term, 0, len(vc.Terms))
	for _, tc := range vc.Terms {
		mf, err := buildShape(tc)
		if err != nil {
			return nil, fmt.Errorf("variable %s, term %s: %w", vc.Name, tc.Label, err)
		}
		terms = append(terms, fuzzy.Term{Label: tc.Label, MF: mf})
	}
	return fuzzy.NewVariable(vc.Name, vc.Min, vc.Max, terms)
}

func buildShape(tc TermConfig) (fuzzy.MembershipFunction, error) {
	switch tc.Shape {
	case shapeTriangle:
		if len(tc.Points) != 3 {
			return fuzzy.MembershipFunction{}, fmt.Errorf(
				"triangle needs 3 points, got %d", len(tc.Points))
		}
		return fuzzy.Triangular(tc.Points[0], tc.Points[1], tc.Points[2])
	case shapeTrapezoid:
		if len(tc.Points) != 4 {
			return fuzzy.MembershipFunction{}, fmt.Errorf(
				"trapezoid needs 4 points, got %d", len(tc.Points))
		}
		return fuzzy.Trapezoidal(tc.Points[0], tc.Points[1], tc.Points[2], tc.Points[3])
	default:
		return fuzzy.MembershipFunction{}, fmt.Errorf("unknown shape %q", tc.Shape)
	}
}

func buildRule(rc RuleConfig) (fuzzy.Rule, error) {
	when, err := buildExpr(rc.When)
	if err != nil {
		return fuzzy.Rule{}, fmt.Errorf("rule %s: %w", rc.ID, err)
	}
	then, err := parseTermRef(rc.Then)
	if err != nil {
		return fuzzy.Rule{}, fmt.Errorf("rule %s: %w", rc.ID, err)
	}
	return fuzzy.Rule{
		ID:    rc.ID,
		Label: rc.Label,
		When:  when,
		Then:  then,
	}, nil
}

func buildExpr(ec ExprConfig) (fuzzy.Expr, error) {
	set := 0
	if ec.Term != "" {
		set++
	}
	if len(ec.All) != 0 {
		set++
	}
	if len(ec.Any) != 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("antecedent node must set exactly one of term, all, any")
	}
	switch {
	case ec.Term != "":
		ref, err := parseTermRef(ec.Term)
		if err != nil {
			return nil, err
		}
		return ref, nil
	case len(ec.All) != 0:
		children, err := buildExprs(ec.All)
		if err != nil {
			return nil, err
		}
		return fuzzy.And(children), nil
	default:
		children, err := buildExprs(ec.Any)
		if err != nil {
			return nil, err
		}
		return fuzzy.Or(children), nil
	}
}

func buildExprs(ecs []ExprConfig) ([]fuzzy.Expr, error) {
	exprs := make([]fuzzy.Expr, 0, len(ecs))
	for _, ec := range ecs {
		e, err := buildExpr(ec)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func parseTermRef(s string) (fuzzy.TermRef, error) {
	v, t, ok := strings.Cut(s, ":")
	if !ok || v == "" || t == "" {
		return fuzzy.TermRef{}, fmt.Errorf("term reference %q is not variable:term", s)
	}
	return fuzzy.TermRef{Variable: v, Term: t}, nil
}
