package sat

// checkInvariants verifies spec §8's quantified invariants 1-3 (trail
// consistency, antecedent validity, the watch invariant). It compiles
// regardless of build tags; its only caller is debugAssertInvariants,
// so on the search path it runs only when built with -tags
// satispy_debug (see invariants_off.go).
func (s *Solver) checkInvariants() error {
	// 1. Trail consistency.
	for idx, lit := range s.trail.lits {
		if s.trail.literalValue(lit) != LTrue {
			return invariantViolation("trail-consistency", "trail[%d]=%v is not true", idx, lit)
		}
	}

	// 2. Antecedent validity: every literal of a non-decision,
	// non-unit assignment's antecedent other than the assigned one
	// must be false.
	for v := Variable(1); v < Variable(len(s.trail.value)); v++ {
		if !s.trail.isAssigned(v) {
			continue
		}
		ante := s.trail.antecedent[v]
		if ante == NoClause {
			continue
		}
		c := s.store.Get(ante)
		assertedLit := PosLiteral(v)
		if s.trail.literalValue(assertedLit) != LTrue {
			assertedLit = NegLiteral(v)
		}
		for _, lit := range c.Literals() {
			if lit == assertedLit {
				continue
			}
			if s.trail.literalValue(lit) != LFalse {
				return invariantViolation("antecedent-validity",
					"antecedent of %v has non-false literal %v", assertedLit, lit)
			}
		}
	}

	// 3. Watch invariant: for every non-unit clause, neither watcher is
	// false unless the other watcher is true.
	for id := ClauseID(0); int(id) < s.store.Len(); id++ {
		c := s.store.Get(id)
		if c.IsUnit() {
			continue
		}
		w1, w2 := c.Watchers()
		v1, v2 := s.trail.literalValue(w1), s.trail.literalValue(w2)
		if v1 == LFalse && v2 != LTrue {
			return invariantViolation("watch-invariant", "clause %d: watcher %v is false, other (%v) not true", id, w1, w2)
		}
		if v2 == LFalse && v1 != LTrue {
			return invariantViolation("watch-invariant", "clause %d: watcher %v is false, other (%v) not true", id, w2, w1)
		}
	}

	return nil
}
