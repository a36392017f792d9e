package sat

// analyzeConflict computes the first-UIP asserting clause and
// backtrack level from a conflicting clause, per spec §4.4.
//
// `learned`'s literals accumulate in discovery order with the UIP
// literal appended last, so watchPos (the position of the highest
// sub-current-level literal) and len(learned)-1 (the UIP) are always
// two distinct, valid watcher positions for the new clause.
func (s *Solver) analyzeConflict(conflicting ClauseID) (backtrackLevel int, uip Literal, learned []Literal, watchPos int) {
	d := s.trail.decisionLevel

	s.seen.clear()
	toResolve := 0
	watchPos = -1
	learned = s.learnedBuf[:0]

	foldIn := func(lits []Literal, skip Literal) {
		for _, lit := range lits {
			if lit == skip {
				continue
			}
			v := VarOf(lit)
			if s.seen.has(v) {
				continue
			}
			s.seen.add(v)

			if s.trail.level[v] == d {
				toResolve++
				continue
			}

			learned = append(learned, lit)
			if lvl := s.trail.level[v]; lvl > backtrackLevel {
				backtrackLevel = lvl
				watchPos = len(learned) - 1
			}
		}
	}

	foldIn(s.store.Get(conflicting).Literals(), NoLiteral)

	cursor := len(s.trail.lits) - 1
	var pivot Literal
	for {
		// Walk the trail downward to the next seen variable.
		for {
			pivot = s.trail.lits[cursor]
			cursor--
			if s.seen.has(VarOf(pivot)) {
				break
			}
		}
		s.seen.remove(VarOf(pivot))
		toResolve--
		if toResolve <= 0 {
			break
		}

		ante := s.trail.antecedent[VarOf(pivot)]
		foldIn(s.store.Get(ante).Literals(), pivot)
	}

	uip = pivot.Negate()
	learned = append(learned, uip)
	if watchPos < 0 {
		watchPos = 0 // unit learned clause: only the UIP literal
	}

	s.learnedBuf = learned
	s.heuristic.decayInc()

	return backtrackLevel, uip, learned, watchPos
}

// seenSet is a resettable membership set over variable ids, reset in
// O(1) via a generation counter instead of clearing the backing array.
type seenSet struct {
	stamp []uint32
	gen   uint32
}

func newSeenSet(nVars int) *seenSet {
	return &seenSet{stamp: make([]uint32, nVars+1), gen: 1}
}

func (s *seenSet) grow() {
	s.stamp = append(s.stamp, 0)
}

func (s *seenSet) clear() {
	s.gen++
	if s.gen == 0 { // overflow
		s.gen = 1
		for i := range s.stamp {
			s.stamp[i] = 0
		}
	}
}

func (s *seenSet) add(v Variable)    { s.stamp[v] = s.gen }
func (s *seenSet) remove(v Variable) { s.stamp[v] = 0 }
func (s *seenSet) has(v Variable) bool {
	return s.stamp[v] == s.gen
}
