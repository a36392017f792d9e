//go:build clausepool

package sat

import "sync"

// Tier boundaries are tuned for this solver's own clause-size
// distribution rather than the teacher's general-purpose sizing: unit
// clauses never reach this allocator at all (they live in
// Solver.unaryClauses, see AssertUnary), and first-UIP learning keeps
// the overwhelming majority of learned clauses short, so poolSmall
// covers input binary/ternary clauses and nearly all learned ones.
// poolLarge and poolHuge exist for wide input clauses (encodings with
// large at-most-one/at-least-one constraints) that original clauses,
// not learned ones, tend to produce.
var poolSmall = sync.Pool{
	New: func() any {
		// The Pool's New function should generally only return pointer
		// types, since a pointer can be put into the return interface
		// value without an allocation:
		s := make([]Literal, 0, 4)
		return &s
	},
}

var poolMedium = sync.Pool{
	New: func() any {
		// The Pool's New function should generally only return pointer
		// types, since a pointer can be put into the return interface
		// value without an allocation:
		s := make([]Literal, 0, 16)
		return &s
	},
}

var poolLarge = sync.Pool{
	New: func() any {
		// The Pool's New function should generally only return pointer
		// types, since a pointer can be put into the return interface
		// value without an allocation:
		s := make([]Literal, 0, 64)
		return &s
	},
}

var poolHuge = sync.Pool{
	New: func() any {
		// The Pool's New function should generally only return pointer
		// types, since a pointer can be put into the return interface
		// value without an allocation:
		s := make([]Literal, 0, 256)
		return &s
	},
}

func newClause(literals []Literal, learnt bool) *Clause {
	c := &Clause{}
	c.learnt = learnt

	switch l := len(literals); {
	case l <= 4:
		c.sliceRef = poolSmall.Get().(*[]Literal)
	case l <= 16:
		c.sliceRef = poolMedium.Get().(*[]Literal)
	case l <= 64:
		c.sliceRef = poolLarge.Get().(*[]Literal)
	default:
		c.sliceRef = poolHuge.Get().(*[]Literal)
	}

	// Get a base slice from the slice pool.
	c.literals = *c.sliceRef
	c.literals = c.literals[0:0] // reset
	c.literals = append(c.literals, literals...)

	return c
}

// freeClause returns a clause's backing slice to its tier's pool. It
// has no call site yet: this repo never discards a clause once
// inserted (spec's clause-database reduction policy is an explicit
// Non-goal), so nothing currently retires a *Clause. It is kept wired
// to newClause's tiering (not deleted) because a future reduction pass
// is the natural place to call it, and the pairing is meaningless on
// its own.
func freeClause(c *Clause) {
	*c.sliceRef = c.literals

	switch l := len(c.literals); {
	case l <= 4:
		poolSmall.Put(c.sliceRef)
	case l <= 16:
		poolMedium.Put(c.sliceRef)
	case l <= 64:
		poolLarge.Put(c.sliceRef)
	default:
		poolHuge.Put(c.sliceRef)
	}
}
