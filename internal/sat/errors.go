package sat

import "fmt"

// InvariantError reports a violation of one of spec §8's quantified
// invariants (trail consistency, antecedent validity, the watch
// invariant, phase monotonicity, the learned-clause asserting
// property). These indicate a bug in the solver, not a recoverable
// search outcome — unlike a conflict, which drives learning.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sat: invariant %q violated: %s", e.Invariant, e.Detail)
}

func invariantViolation(name, format string, args ...any) error {
	return &InvariantError{Invariant: name, Detail: fmt.Sprintf(format, args...)}
}
