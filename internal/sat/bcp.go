package sat

// bcpStatus is the terminal status of a BCP run.
type bcpStatus int

const (
	bcpUnresolved bcpStatus = iota
	bcpConflict
	bcpUnsatisfiable
)

// propagate drains the propagation stack under the two-watched-literal
// scheme, returning the terminal status and (on conflict) the
// conflicting clause.
//
// Per popped literal l (just assigned false): its watch list is
// snapshotted and rebuilt in place via a surviving-list accumulator.
// Clauses that move their watcher elsewhere are appended directly to
// the new watcher's list; this is always safe since the new watcher
// is, by construction, a different literal than l. A clause that
// conflicts stays in l's watch list (its watcher positions never
// moved), along with every clause after it in the snapshot that was
// never visited.
//
// Tie-break: step (2b)'s scan for a new non-false, non-guard literal
// always proceeds left to right, making the choice deterministic given
// fixed inputs.
func (s *Solver) propagate() (bcpStatus, ClauseID) {
	for len(s.propStack) > 0 {
		l := s.propStack[len(s.propStack)-1]
		s.propStack = s.propStack[:len(s.propStack)-1]

		snapshot := s.store.WatchList(l)
		s.store.SetWatchList(l, nil)

		survivors := snapshot[:0]

		for i := 0; i < len(snapshot); i++ {
			id := snapshot[i]
			c := s.store.Get(id)

			var guardIdx int
			if c.literals[c.watch1] == l {
				guardIdx = c.watch2
			} else {
				guardIdx = c.watch1
			}
			guard := c.literals[guardIdx]

			moved := false
			for j, lit := range c.literals {
				if j == guardIdx || lit == l {
					continue
				}
				if s.trail.literalValue(lit) != LFalse {
					if c.literals[c.watch1] == l {
						c.watch1 = j
					} else {
						c.watch2 = j
					}
					s.store.addWatch(lit, id)
					moved = true
					break
				}
			}
			if moved {
				continue // no longer watched by l
			}

			switch s.trail.literalValue(guard) {
			case LTrue:
				survivors = append(survivors, id)

			case LUnassigned:
				s.trail.assertNonunary(guard)
				s.trail.setAntecedent(guard, id)
				s.propStack = append(s.propStack, guard.Negate())
				s.Stats.Implications++
				survivors = append(survivors, id)

			case LFalse:
				survivors = append(survivors, id)
				survivors = append(survivors, snapshot[i+1:]...)
				s.store.SetWatchList(l, survivors)

				if s.trail.decisionLevel == 0 {
					s.propStack = s.propStack[:0]
					return bcpUnsatisfiable, NoClause
				}
				s.propStack = s.propStack[:0]
				return bcpConflict, id
			}
		}

		s.store.SetWatchList(l, survivors)
	}

	return bcpUnresolved, NoClause
}
