package sat

import "time"

// Result is the solver's verdict.
type Result int

const (
	Unresolved Result = iota
	Satisfiable
	Unsatisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNRESOLVED"
	}
}

// Options carries the CONSTANTS block of spec §9 as a configuration
// record. The watcher-placement seed is not part of it; it lives in
// internal/config's Run.
type Options struct {
	VarDecay              float64 // ~0.95
	RestartMultiplier     float64 // ~1.1
	RestartLowerBound     float64 // ~100
	RestartUpperBoundBase float64 // ~1000
}

// DefaultOptions matches the values named in spec §9.
var DefaultOptions = Options{
	VarDecay:              0.95,
	RestartMultiplier:     1.1,
	RestartLowerBound:     100,
	RestartUpperBoundBase: 1000,
}

// Solver is the sequential CDCL search engine. A single goroutine owns
// it for the duration of Solve; there is no internal synchronization
// (spec §5).
type Solver struct {
	opts Options

	nVars int
	store *Store
	trail trail

	heuristic *heuristic
	restart   *restartController
	seen      *seenSet

	propStack   []Literal
	survivorBuf []ClauseID
	learnedBuf  []Literal

	// unaryClauses lists every level-0 unit clause (input or learned)
	// by its asserted literal. They never enter Store and carry no
	// watcher machinery; they exist only so verify can re-check them.
	unaryClauses []Literal

	unsat bool

	Stats Stats
}

// NewSolver returns a solver configured for varCount variables,
// sized to hold roughly clauseCountHint clauses.
func NewSolver(varCount, clauseCountHint int, opts Options) *Solver {
	s := &Solver{
		opts:      opts,
		nVars:     varCount,
		store:     NewStore(varCount),
		trail:     *newTrail(varCount),
		heuristic: newHeuristic(varCount, opts.VarDecay),
		restart:   newRestartController(opts.RestartLowerBound, opts.RestartUpperBoundBase, opts.RestartMultiplier),
		seen:      newSeenSet(varCount),
	}
	s.store.clauses = make([]*Clause, 0, clauseCountHint)
	s.Stats.TrailDepthEMA = newEMA(0.9)
	return s
}

// NumVariables returns the number of declared variables.
func (s *Solver) NumVariables() int { return s.nVars }

// NumAssigns returns the number of variables currently assigned,
// including level-0 facts.
func (s *Solver) NumAssigns() int {
	n := 0
	for v := Variable(1); int(v) <= s.nVars; v++ {
		if s.trail.isAssigned(v) {
			n++
		}
	}
	return n
}

// UnsatAtInit reports whether two asserted unary clauses already
// conflict, independent of ever calling Solve. Parsers check this
// after loading all unit clauses to short-circuit on a trivially
// unsatisfiable instance (spec §8 boundary behavior).
func (s *Solver) UnsatAtInit() bool { return s.unsat }

// LitValue returns the current truth value of a literal.
func (s *Solver) LitValue(lit Literal) LBool {
	return s.trail.literalValue(lit)
}

// VarValue returns the current truth value of a variable.
func (s *Solver) VarValue(v Variable) LBool {
	return s.trail.literalValue(PosLiteral(v))
}

// NumClauses returns the number of non-unit clauses (original and
// learned) currently in the store.
func (s *Solver) NumClauses() int { return s.store.Len() }

// ClauseLiterals returns the literals of the id-th non-unit clause.
func (s *Solver) ClauseLiterals(id ClauseID) []Literal {
	return s.store.Get(id).Literals()
}

// UnaryLiterals returns every level-0 unit literal (input or
// learned), for verification.
func (s *Solver) UnaryLiterals() []Literal {
	return s.unaryClauses
}

// Model returns the final truth value of every variable 1..NumVariables,
// indexed so that Model()[v-1] is variable v's value. Meaningful only
// after Solve has returned Satisfiable.
func (s *Solver) Model() []bool {
	model := make([]bool, s.nVars)
	for v := 1; v <= s.nVars; v++ {
		model[v-1] = s.VarValue(Variable(v)) == LTrue
	}
	return model
}

// AssertUnary asserts lit at level 0 (for unit input clauses) and
// records it in the unary-clause list for final verification. The
// caller must separately call PushPropagation(negate(lit)).
func (s *Solver) AssertUnary(lit Literal) {
	if s.trail.literalValue(lit) == LFalse {
		s.unsat = true
	}
	s.trail.assertUnary(lit)
	s.unaryClauses = append(s.unaryClauses, lit)
}

// PushPropagation pushes lit onto the propagation stack.
func (s *Solver) PushPropagation(lit Literal) {
	s.propStack = append(s.propStack, lit)
}

// InsertClause inserts a non-unit input clause, watching
// literals[w1] and literals[w2] (distinct positions, neither false).
func (s *Solver) InsertClause(literals []Literal, w1, w2 int) ClauseID {
	id := s.store.Insert(literals, false, w1, w2)
	s.bumpInsertedClause(literals)
	return id
}

// bumpInsertedClause implements spec §4.1's score-bumping-on-insertion
// rule for both original and learned clauses.
func (s *Solver) bumpInsertedClause(literals []Literal) {
	for _, lit := range literals {
		s.heuristic.bump(VarOf(lit))
	}
	if peak := s.heuristic.peakActivity(); peak > s.Stats.PeakActivity {
		s.Stats.PeakActivity = peak
	}
}

// Solve runs the outer CDCL loop described in spec §4.7 to
// completion: BCP until the stack drains; on conflict, analyze and
// backtrack; otherwise decide; terminate on UNSAT or SAT.
func (s *Solver) Solve() Result {
	start := time.Now()
	defer func() { s.Stats.SolveTime = time.Since(start) }()

	if s.unsat {
		return Unsatisfiable
	}

	for {
		for {
			s.debugAssertInvariants("bcp-entry")
			status, conflicting := s.propagate()

			if status == bcpUnsatisfiable {
				return Unsatisfiable
			}
			if status == bcpConflict {
				s.Stats.Learned++
				k, uip, learned, watchPos := s.analyzeConflict(conflicting)
				s.backtrack(k, uip, learned, watchPos)
				s.debugAssertInvariants("backtrack-exit")
				continue
			}
			break
		}

		s.debugAssertInvariants("decide-entry")
		if s.decide() == Satisfiable {
			return Satisfiable
		}
	}
}

// backtrack implements spec §4.5: insert the learned clause (always,
// independent of whether a restart is about to fire — spec §4.4 treats
// insertion as unconditional analyzer post-processing), then either
// restart or backjump to level k and assert the learned clause's UIP
// literal. A unit learned clause always carries k==0 (there is no
// sub-current-level literal to backjump to), and restart.due(0, ...)
// is unconditionally false, so the restart branch below never fires
// for it: the level-0 fact is asserted on every path.
func (s *Solver) backtrack(k int, uip Literal, learned []Literal, watchPos int) {
	var learnedID ClauseID = NoClause
	if len(learned) == 1 {
		s.unaryClauses = append(s.unaryClauses, uip)
	} else {
		learnedID = s.store.Insert(learned, true, watchPos, len(learned)-1)
		s.bumpInsertedClause(learned)
	}

	if s.restart.due(k, int(s.Stats.Learned)) {
		s.doRestart()
		return
	}

	if s.trail.decisionLevel > k {
		s.unassignAbove(k)
		s.trail.truncateToLevel(k)
	}

	if k == 0 {
		s.trail.assertUnary(uip)
	} else {
		s.trail.assertNonunary(uip)
		s.trail.setAntecedent(uip, learnedID)
	}
	s.propStack = append(s.propStack, uip.Negate())
}

// unassignAbove unassigns every trailed variable above level k and
// re-queues it with the decision heuristic.
func (s *Solver) unassignAbove(k int) {
	end := s.trail.trailEndOfLevel[k+1]
	for i := len(s.trail.lits) - 1; i >= end; i-- {
		v := VarOf(s.trail.lits[i])
		s.trail.unassign(v)
		s.heuristic.reinsert(v)
	}
}

// doRestart implements spec §4.5's restart: advance the sawtooth
// schedule, unassign every level>0 variable, drop the trail above
// level 0, clear the propagation stack, and reset to level 0. Learned clauses and level-0
// facts survive untouched.
func (s *Solver) doRestart() {
	s.Stats.TrailDepthEMA.add(float64(len(s.trail.lits)))
	s.restart.advance()
	s.Stats.Restarts++

	if s.trail.decisionLevel > 0 {
		s.unassignAbove(0)
		s.trail.truncateToLevel(0)
	}
	s.propStack = s.propStack[:0]
}

// decide implements spec §4.6: pick the max-activity unassigned
// variable, apply phase saving, and extend the trail. Exhausting the
// heap with no unassigned variable found means every variable is
// consistently assigned, i.e. the formula is satisfied (spec §9 Open
// Question).
func (s *Solver) decide() Result {
	for {
		next, ok := s.heuristic.order.Pop()
		if !ok {
			return Satisfiable
		}
		v := Variable(next.Elem)
		if s.trail.isAssigned(v) {
			continue
		}

		var lit Literal
		if s.trail.phase[v] == LTrue {
			lit = PosLiteral(v)
		} else {
			lit = NegLiteral(v)
		}

		s.Stats.Decisions++
		level := s.trail.beginLevel()
		s.restart.noteLevel(level, int(s.Stats.Learned))
		s.trail.assertNonunary(lit)
		s.propStack = append(s.propStack, lit.Negate())
		return Unresolved
	}
}
