package sat

import "testing"

// clause is a test-only convenience for spelling a clause as signed
// ints, mirroring spec §8's end-to-end scenario table notation.
func clause(signed ...int) []Literal {
	lits := make([]Literal, len(signed))
	for i, n := range signed {
		if n < 0 {
			lits[i] = NegLiteral(Variable(-n))
		} else {
			lits[i] = PosLiteral(Variable(n))
		}
	}
	return lits
}

// buildAndSolve wires nVars variables and the given clauses into a
// fresh solver (unit clauses go through AssertUnary/PushPropagation,
// everything else through InsertClause with watchers (0,1)) and runs
// Solve to completion.
func buildAndSolve(nVars int, clauses [][]Literal) (*Solver, Result) {
	s := NewSolver(nVars, len(clauses), DefaultOptions)
	for _, c := range clauses {
		if len(c) == 1 {
			s.AssertUnary(c[0])
			s.PushPropagation(c[0].Negate())
			continue
		}
		s.InsertClause(c, 0, 1)
	}
	return s, s.Solve()
}

func checkModel(t *testing.T, s *Solver, clauses [][]Literal) {
	t.Helper()
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			if s.LitValue(lit) == LTrue {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("clause %v not satisfied by model", c)
		}
	}
}

func TestScenario1UnitClauseIsSatisfiable(t *testing.T) {
	s, result := buildAndSolve(1, [][]Literal{clause(1)})
	if result != Satisfiable {
		t.Fatalf("result = %v, want Satisfiable", result)
	}
	if s.VarValue(1) != LTrue {
		t.Errorf("var 1 = %v, want true", s.VarValue(1))
	}
}

func TestScenario2ComplementaryUnitsAreUnsatisfiable(t *testing.T) {
	_, result := buildAndSolve(1, [][]Literal{clause(1), clause(-1)})
	if result != Unsatisfiable {
		t.Fatalf("result = %v, want Unsatisfiable", result)
	}
}

func TestScenario3AllFourBinaryClausesAreUnsatisfiable(t *testing.T) {
	_, result := buildAndSolve(2, [][]Literal{
		clause(1, 2), clause(-1, 2), clause(1, -2), clause(-1, -2),
	})
	if result != Unsatisfiable {
		t.Fatalf("result = %v, want Unsatisfiable", result)
	}
}

func TestScenario4ThreeOfFourBinaryClausesAreSatisfiable(t *testing.T) {
	cs := [][]Literal{clause(1, 2), clause(-1, 2), clause(1, -2)}
	s, result := buildAndSolve(2, cs)
	if result != Satisfiable {
		t.Fatalf("result = %v, want Satisfiable", result)
	}
	if s.VarValue(1) != LTrue || s.VarValue(2) != LTrue {
		t.Errorf("model = (%v, %v), want (true, true)", s.VarValue(1), s.VarValue(2))
	}
	checkModel(t, s, cs)
}

func TestScenario5RequiresConflictDrivenLearning(t *testing.T) {
	_, result := buildAndSolve(3, [][]Literal{
		clause(1, 2, 3), clause(-1, 2), clause(-2, 3), clause(-3),
	})
	if result != Unsatisfiable {
		t.Fatalf("result = %v, want Unsatisfiable", result)
	}
}

func TestScenario6TriangleOfBinaryClausesIsSatisfiable(t *testing.T) {
	cs := [][]Literal{clause(1, 2), clause(2, 3), clause(3, 1)}
	s, result := buildAndSolve(3, cs)
	if result != Satisfiable {
		t.Fatalf("result = %v, want Satisfiable", result)
	}
	checkModel(t, s, cs)
}

func TestEmptyFormulaIsImmediatelySatisfiable(t *testing.T) {
	_, result := buildAndSolve(0, nil)
	if result != Satisfiable {
		t.Fatalf("result = %v, want Satisfiable", result)
	}
}

func TestBacktrackInsertsLearnedClauseEvenWhenRestartFires(t *testing.T) {
	s := NewSolver(3, 0, Options{
		VarDecay:              0.95,
		RestartMultiplier:     1.1,
		RestartLowerBound:     0,
		RestartUpperBoundBase: 1000,
	})
	// learntAtLevel[1]=0 and threshold 0 makes restart.due(1, ...) true
	// as soon as any clause has been learned, so this exercises the
	// restart branch of backtrack.
	s.restart.noteLevel(1, 0)
	s.Stats.Learned = 1

	before := s.NumClauses()
	s.backtrack(1, NegLiteral(3), []Literal{NegLiteral(1), NegLiteral(2), NegLiteral(3)}, 0)

	if got := s.NumClauses(); got != before+1 {
		t.Fatalf("NumClauses() = %d, want %d: learned clause must be inserted even when a restart fires", got, before+1)
	}
}

func TestBacktrackAlwaysAssertsUnitLearnedClause(t *testing.T) {
	s := NewSolver(2, 0, DefaultOptions)
	s.trail.beginLevel()
	s.trail.assertNonunary(PosLiteral(1))

	// A unit learned clause always carries backtrack level 0, for
	// which restart.due is unconditionally false, so this never takes
	// the restart branch — it still must assert the fact.
	s.backtrack(0, NegLiteral(1), []Literal{NegLiteral(1)}, 0)

	if s.VarValue(1) != LFalse {
		t.Errorf("var 1 = %v, want false: a unit learned clause is a level-0 fact", s.VarValue(1))
	}
	found := false
	for _, lit := range s.UnaryLiterals() {
		if lit == NegLiteral(1) {
			found = true
		}
	}
	if !found {
		t.Errorf("UnaryLiterals() = %v, want it to contain -1", s.UnaryLiterals())
	}
}

func TestRestartPreservesLevelZeroFactsAndLearnedClauses(t *testing.T) {
	s := NewSolver(4, 4, Options{
		VarDecay:              0.95,
		RestartMultiplier:     1.1,
		RestartLowerBound:     1,
		RestartUpperBoundBase: 1,
	})
	s.AssertUnary(PosLiteral(1))
	s.PushPropagation(NegLiteral(1))
	s.InsertClause(clause(-1, 2, 3), 0, 1)
	s.InsertClause(clause(-2, -3, 4), 0, 1)
	s.InsertClause(clause(-1, -4), 0, 1)

	result := s.Solve()
	if result != Satisfiable && result != Unsatisfiable {
		t.Fatalf("result = %v, want a terminal verdict", result)
	}
	if s.VarValue(1) != LTrue {
		t.Errorf("level-0 fact var 1 = %v, want true even after any restarts", s.VarValue(1))
	}
	// Every learned clause is kept: non-unit ones in the store beside the
	// 3 originals, unit ones in the unary list beside the input unit.
	if kept := int64(s.NumClauses()-3) + int64(len(s.UnaryLiterals())-1); kept != s.Stats.Learned {
		t.Errorf("learned clauses kept = %d, want %d (Stats.Learned)", kept, s.Stats.Learned)
	}
}
