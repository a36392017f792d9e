package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nitinkedia7/satispy/internal/sat"
)

type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) AddVariable() sat.Variable {
	i.Variables++
	return sat.Variable(i.Variables)
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	if len(tmpClause) == 0 {
		return ErrEmptyClause
	}
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

const sample = `c a tiny 3-variable, 2-clause instance
p cnf 3 2
1 -2 3 0
-1 2 0
`

func TestLoad(t *testing.T) {
	got := instance{}
	if err := Load(strings.NewReader(sample), &got); err != nil {
		t.Fatalf("Load(): want no error, got %s", err)
	}

	want := instance{
		Variables: 3,
		Clauses: [][]sat.Literal{
			{sat.PosLiteral(1), sat.NegLiteral(2), sat.PosLiteral(3)},
			{sat.NegLiteral(1), sat.PosLiteral(2)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestLoadDedupesLiteralsWithinAClause(t *testing.T) {
	got := instance{}
	in := "p cnf 2 1\n1 2 1 0\n"
	if err := Load(strings.NewReader(in), &got); err != nil {
		t.Fatalf("Load(): want no error, got %s", err)
	}

	want := [][]sat.Literal{{sat.PosLiteral(1), sat.PosLiteral(2)}}
	if diff := cmp.Diff(want, got.Clauses); diff != "" {
		t.Errorf("Load(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestLoadEmptyClauseReportedToBuilder(t *testing.T) {
	got := instance{}
	in := "p cnf 1 1\n0\n"
	err := Load(strings.NewReader(in), &got)
	if err != ErrEmptyClause {
		t.Errorf("Load(): want ErrEmptyClause, got %v", err)
	}
}

func TestLoadMissingHeader(t *testing.T) {
	got := instance{}
	if err := Load(strings.NewReader(""), &got); err == nil {
		t.Errorf("Load(): want error, got none")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	got := instance{}
	if err := LoadFile("does-not-exist.cnf", false, &got); err == nil {
		t.Errorf("LoadFile(): want error, got none")
	}
}

func TestLoadFileGzipMismatch(t *testing.T) {
	got := instance{}
	if err := LoadFile("dimacs.go", true, &got); err == nil {
		t.Errorf("LoadFile(): want error reading a non-gzip file as gzip, got none")
	}
}
