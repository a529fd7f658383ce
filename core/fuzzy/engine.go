package fuzzy

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"example.com/pump-service/core/history"
	"example.com/pump-service/core/timebase"
)

const (
	defaultResolution      = 1.0
	defaultHistoryCapacity = 1000
)

// Options tune the non-structural parts of an engine. Zero values select
// the defaults.
type Options struct {
	// Resolution is the sample step over the output universe used for
	// aggregation and defuzzification.
	Resolution float64
	// FallbackOutput is the crisp output reported when no rule fires
	// anywhere over the output universe.
	FallbackOutput float64
	// HistoryCapacity is the ring capacity of the decision history.
	HistoryCapacity int
}

// Engine owns the linguistic variables and the rule base. It is immutable
// after construction except for the history buffer, which records one
// sample per evaluation.
type Engine struct {
	log        *zap.Logger
	inputs     []*Variable
	byName     map[string]*Variable
	output     *Variable
	rules      []Rule
	resolution float64
	fallback   float64
	hist       *history.Buffer
}

// RuleActivation is the firing strength of one rule for one evaluation.
type RuleActivation struct {
	ID     string
	Label  string
	Degree float64
}

// Result carries the crisp output of one evaluation plus its diagnostics.
type Result struct {
	Output      float64
	NoRuleFired bool
	Fuzzified   Fuzzified
	Activations []RuleActivation
	TermPeaks   map[string]float64
}

// NewEngine validates the declarative specification and builds an engine.
// Any rule referencing an unknown variable or term, or containing an empty
// combinator, fails construction with a MalformedRuleError.
func NewEngine(log *zap.Logger, inputs []*Variable, output *Variable,
	rules []Rule, opts Options) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input variables")
	}
	if output == nil {
		return nil, fmt.Errorf("no output variable")
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules")
	}
	if opts.Resolution < 0 {
		return nil, fmt.Errorf("invalid resolution %v", opts.Resolution)
	}
	if opts.HistoryCapacity < 0 {
		return nil, fmt.Errorf("invalid history capacity %d", opts.HistoryCapacity)
	}

	byName := make(map[string]*Variable, len(inputs))
	signals := make([]string, 0, len(inputs)+1)
	for _, v := range inputs {
		if _, ok := byName[v.Name()]; ok {
			return nil, fmt.Errorf("duplicate variable %s", v.Name())
		}
		byName[v.Name()] = v
		signals = append(signals, v.Name())
	}
	if _, ok := byName[output.Name()]; ok {
		return nil, fmt.Errorf("output variable %s collides with an input", output.Name())
	}
	signals = append(signals, output.Name())

	ids := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, &MalformedRuleError{RuleID: "?", Reason: "missing rule id"}
		}
		if ids[r.ID] {
			return nil, &MalformedRuleError{RuleID: r.ID, Reason: "duplicate rule id"}
		}
		ids[r.ID] = true
		if r.When == nil {
			return nil, &MalformedRuleError{RuleID: r.ID, Reason: "missing antecedent"}
		}
		if err := r.When.check(byName); err != nil {
			return nil, &MalformedRuleError{RuleID: r.ID, Reason: err.Error()}
		}
		if r.Then.Variable != output.Name() {
			return nil, &MalformedRuleError{
				RuleID: r.ID,
				Reason: fmt.Sprintf("consequent variable %s is not the output", r.Then.Variable),
			}
		}
		if _, ok := output.Term(r.Then.Term); !ok {
			return nil, &MalformedRuleError{
				RuleID: r.ID,
				Reason: fmt.Sprintf("output has no term %s", r.Then.Term),
			}
		}
	}

	resolution := opts.Resolution
	if resolution == 0 {
		resolution = defaultResolution
	}
	capacity := opts.HistoryCapacity
	if capacity == 0 {
		capacity = defaultHistoryCapacity
	}

	return &Engine{
		log:        log,
		inputs:     append([]*Variable(nil), inputs...),
		byName:     byName,
		output:     output,
		rules:      append([]Rule(nil), rules...),
		resolution: resolution,
		fallback:   opts.FallbackOutput,
		hist:       history.NewBuffer(capacity, signals),
	}, nil
}

func (e *Engine) Inputs() []*Variable {
	return append([]*Variable(nil), e.inputs...)
}

func (e *Engine) Output() *Variable {
	return e.output
}

func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// History is the bounded record of past evaluations.
func (e *Engine) History() *history.Buffer {
	return e.hist
}

// Evaluate runs one crisp input vector through the Mamdani pipeline:
// fuzzification, rule activation, min-implication with max-aggregation
// over the sampled output universe, and centroid defuzzification. The
// decision is appended to the history buffer. Inputs must contain a value
// for every declared input variable; extra keys are ignored.
func (e *Engine) Evaluate(inputs map[string]float64) (Result, error) {
	for _, v := range e.inputs {
		if _, ok := inputs[v.Name()]; !ok {
			return Result{}, &MissingInputError{Variable: v.Name()}
		}
	}

	fz := make(Fuzzified, len(e.inputs))
	for _, v := range e.inputs {
		fz[v.Name()] = v.Fuzzify(inputs[v.Name()])
	}

	activations := make([]RuleActivation, len(e.rules))
	strengths := make(map[string]float64)
	for i, r := range e.rules {
		a := r.When.activation(fz)
		activations[i] = RuleActivation{ID: r.ID, Label: r.Label, Degree: a}
		if a > strengths[r.Then.Term] {
			strengths[r.Then.Term] = a
		}
	}

	terms := e.output.Terms()
	peaks := make(map[string]float64, len(terms))
	for _, t := range terms {
		peaks[t.Label] = 0
	}

	min, max := e.output.Domain()
	n := int(math.Floor((max-min)/e.resolution + 1e-9))
	var num, den float64
	for i := 0; i <= n; i++ {
		x := min + float64(i)*e.resolution
		var y float64
		for _, t := range terms {
			s := strengths[t.Label]
			if s == 0 {
				continue
			}
			d := t.MF.Degree(x)
			if d > s {
				d = s
			}
			if d > peaks[t.Label] {
				peaks[t.Label] = d
			}
			if d > y {
				y = d
			}
		}
		num += x * y
		den += y
	}

	noRuleFired := den == 0
	output := e.fallback
	if !noRuleFired {
		output = num / den
	}

	e.log.Debug("evaluation",
		zap.Float64("output", output),
		zap.Bool("no_rule_fired", noRuleFired),
	)

	values := make(map[string]float64, len(e.inputs)+1)
	for _, v := range e.inputs {
		values[v.Name()] = inputs[v.Name()]
	}
	values[e.output.Name()] = output
	e.hist.Append(history.Sample{Time: timebase.Now(), Values: values})

	return Result{
		Output:      output,
		NoRuleFired: noRuleFired,
		Fuzzified:   fz,
		Activations: activations,
		TermPeaks:   peaks,
	}, nil
}
