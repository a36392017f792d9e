package verify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nitinkedia7/satispy/internal/sat"
)

func solved(t *testing.T, nVars int, clauses [][]sat.Literal) *sat.Solver {
	t.Helper()
	s := sat.NewSolver(nVars, len(clauses), sat.DefaultOptions)
	for _, c := range clauses {
		if len(c) == 1 {
			s.AssertUnary(c[0])
			s.PushPropagation(c[0].Negate())
			continue
		}
		s.InsertClause(c, 0, 1)
	}
	result := s.Solve()
	require.Equal(t, sat.Satisfiable, result)
	return s
}

func TestAssignmentAC(t *testing.T) {
	s := solved(t, 2, [][]sat.Literal{
		{sat.PosLiteral(1), sat.PosLiteral(2)},
		{sat.NegLiteral(1), sat.PosLiteral(2)},
	})

	report := Assignment(s)
	require.True(t, report.OK(), "%s", report)
}

func TestWriteAssignmentFormat(t *testing.T) {
	s := solved(t, 2, [][]sat.Literal{
		{sat.PosLiteral(1), sat.PosLiteral(2)},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteAssignment(&buf, s))
	require.Regexp(t, `^-?1 -?2 0\n$`, buf.String())
}

func TestCompareModelMatchesReference(t *testing.T) {
	s := solved(t, 1, [][]sat.Literal{
		{sat.PosLiteral(1)},
	})

	require.True(t, CompareModel(s, [][]bool{{true}}))
	require.False(t, CompareModel(s, [][]bool{{false}}))
}
