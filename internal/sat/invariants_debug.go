//go:build satispy_debug

package sat

// debugAssertInvariants panics with diagnostic context if any of spec
// §8's checked invariants is violated. Internal invariant violations
// are treated as fatal bugs, not recoverable conflicts (spec §7).
func (s *Solver) debugAssertInvariants(where string) {
	if err := s.checkInvariants(); err != nil {
		panic(where + ": " + err.Error())
	}
}
