package fuzzy

import (
	"fmt"
)

// MissingInputError reports an evaluation call that did not supply a value
// for a declared input variable. The call fails; engine state is
// unchanged.
type MissingInputError struct {
	Variable string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input for variable %s", e.Variable)
}

// MalformedRuleError reports a rule that references an unknown variable or
// term, or contains an empty combinator. It is only produced at engine
// construction.
type MalformedRuleError struct {
	RuleID string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule %s: %s", e.RuleID, e.Reason)
}
