//go:build !clausepool

// This is the default allocator: a plain make+append per clause. Build
// with -tags clausepool to switch to clause_allocpool.go's pooled
// allocator instead.
package sat

func newClause(literals []Literal, learnt bool) *Clause {
	c := &Clause{}
	c.learnt = learnt
	c.literals = make([]Literal, 0, len(literals))
	c.literals = append(c.literals, literals...)
	return c
}

// freeClause is a no-op here; see clause_allocpool.go's freeClause for
// why this repo doesn't call either variant yet.
func freeClause(c *Clause) {}
