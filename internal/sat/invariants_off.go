//go:build !satispy_debug

package sat

// debugAssertInvariants is a no-op in production builds. Build with
// -tags satispy_debug to run checkInvariants at every safe point
// (bcp entry, backtrack exit, decide entry) instead.
func (s *Solver) debugAssertInvariants(where string) {}
