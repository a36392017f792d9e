// Package parse builds a *sat.Solver directly from a DIMACS CNF file,
// using the external streaming parser github.com/rhartert/dimacs as an
// alternative front end to internal/dimacs's hand-rolled scanner.
package parse

import (
	"compress/gzip"
	"fmt"
	"io"
	"math/rand"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/nitinkedia7/satispy/internal/sat"
)

// WatcherPolicy selects which two literals of a freshly inserted
// clause are watched initially (spec §9 Design Notes).
type WatcherPolicy int

const (
	// FixedWatchers always watches literals[0] and literals[1].
	FixedWatchers WatcherPolicy = iota
	// RandomWatchers draws two distinct watcher positions uniformly at
	// random from a seeded source, for experimenting with how initial
	// watcher placement affects propagation order.
	RandomWatchers
)

// Loader builds a solver from a DIMACS stream. The zero Loader uses
// FixedWatchers.
type Loader struct {
	Policy WatcherPolicy
	rng    *rand.Rand
}

// NewLoader returns a Loader using policy, seeding its PRNG from seed
// (only consulted when policy is RandomWatchers).
func NewLoader(policy WatcherPolicy, seed int64) *Loader {
	return &Loader{
		Policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// LoadFile parses filename (optionally gzip-compressed) into a fresh
// solver built with opts. The returned bool reports whether the
// instance is already known unsatisfiable (an empty clause, or two
// conflicting unit clauses) without ever calling Solve.
func (l *Loader) LoadFile(filename string, gzipped bool, opts sat.Options) (*sat.Solver, bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, false, fmt.Errorf("parse: opening %q: %w", filename, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, false, fmt.Errorf("parse: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	b := &builder{loader: l, opts: opts}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, false, fmt.Errorf("parse: %w", err)
	}
	if b.solver == nil {
		return nil, false, fmt.Errorf("parse: %q has no problem line", filename)
	}

	return b.solver, b.unsat || b.solver.UnsatAtInit(), nil
}

// builder adapts a *sat.Solver to github.com/rhartert/dimacs.Builder.
type builder struct {
	loader *Loader
	opts   sat.Options
	solver *sat.Solver
	unsat  bool
}

func (b *builder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("parse: instance of type %q is not supported", problem)
	}
	b.solver = sat.NewSolver(nVars, nClauses, b.opts)
	return nil
}

func (b *builder) Comment(_ string) error { return nil }

// Clause receives one clause's literals in signed-DIMACS form,
// deduplicates them, and routes the result to the solver: empty means
// parse-time UNSAT, a single surviving literal is a unit asserted at
// level 0, anything larger becomes a watched clause.
func (b *builder) Clause(tmpClause []int) error {
	if b.solver == nil {
		return fmt.Errorf("parse: clause line before problem line")
	}

	lits := make([]sat.Literal, 0, len(tmpClause))
	for _, n := range tmpClause {
		var lit sat.Literal
		if n < 0 {
			lit = sat.NegLiteral(sat.Variable(-n))
		} else {
			lit = sat.PosLiteral(sat.Variable(n))
		}
		if !containsLiteral(lits, lit) {
			lits = append(lits, lit)
		}
	}

	switch len(lits) {
	case 0:
		b.unsat = true
	case 1:
		b.solver.AssertUnary(lits[0])
		b.solver.PushPropagation(lits[0].Negate())
	default:
		w1, w2 := b.loader.pickWatchers(len(lits))
		b.solver.InsertClause(lits, w1, w2)
	}
	return nil
}

func containsLiteral(lits []sat.Literal, l sat.Literal) bool {
	for _, o := range lits {
		if o == l {
			return true
		}
	}
	return false
}

// pickWatchers returns two distinct positions in [0, n) per l's
// configured policy.
func (l *Loader) pickWatchers(n int) (int, int) {
	if l.Policy == FixedWatchers || n <= 2 {
		return 0, 1
	}
	w1 := l.rng.Intn(n)
	w2 := l.rng.Intn(n - 1)
	if w2 >= w1 {
		w2++
	}
	return w1, w2
}
