package sat

import "strings"

// ClauseID indexes a clause contiguously inside a Store. Never hold a
// *Clause across a call that might grow the store (learned-clause
// insertion can relocate the backing array); dereference via
// Store.Get at each use site instead.
type ClauseID int32

// NoClause marks the absence of a clause (e.g. the antecedent of a
// decision variable).
const NoClause ClauseID = -1

// Clause is an ordered, duplicate-free list of literals together with
// the two watcher positions currently maintained for it. Watchers are
// indices into literals, not literals themselves. Original clauses are
// immutable in content after construction; learned clauses are
// likewise immutable once produced by the conflict analyzer. Watcher
// positions mutate throughout search.
type Clause struct {
	literals []Literal
	watch1   int
	watch2   int
	learnt   bool

	// sliceRef backs literals when built through the pooled allocator
	// (see clause_allocpool.go, -tags clausepool).
	sliceRef *[]Literal
}

// Literals returns the clause's current literal list. Do not retain
// past the next call that might simplify or relocate the clause.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// IsUnit reports whether the clause has a single literal. Unit clauses
// never carry watcher machinery; they live only in Solver.unaryClauses.
func (c *Clause) IsUnit() bool {
	return len(c.literals) == 1
}

// Learnt reports whether the clause was produced by conflict analysis.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// Watchers returns the literals currently being watched.
func (c *Clause) Watchers() (Literal, Literal) {
	return c.literals[c.watch1], c.literals[c.watch2]
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Store owns every original and learned clause, indexed contiguously
// by ClauseID, plus the watch index mapping each literal to the
// clauses currently watching it.
type Store struct {
	clauses    []*Clause
	watchLists [][]ClauseID // indexed by literal id; watchLists[0] is unused
}

// NewStore returns a Store sized for variables 1..nVars.
func NewStore(nVars int) *Store {
	return &Store{
		clauses:    make([]*Clause, 0, nVars),
		watchLists: make([][]ClauseID, 2*nVars+2),
	}
}

// Grow expands the watch index to accommodate a newly added variable.
func (s *Store) Grow() {
	s.watchLists = append(s.watchLists, nil, nil)
}

// Insert registers a non-unit clause, watching literals[w1] and
// literals[w2]. Both positions must be distinct and refer to literals
// that are not currently false. Returns the new clause's id.
func (s *Store) Insert(literals []Literal, learnt bool, w1, w2 int) ClauseID {
	c := newClause(literals, learnt)
	c.watch1, c.watch2 = w1, w2

	id := ClauseID(len(s.clauses))
	s.clauses = append(s.clauses, c)

	s.addWatch(c.literals[w1], id)
	s.addWatch(c.literals[w2], id)

	return id
}

// Get returns an immutable view of the clause at id. The returned
// pointer must not be retained across a call to Insert.
func (s *Store) Get(id ClauseID) *Clause {
	return s.clauses[id]
}

// Len returns the number of clauses currently in the store.
func (s *Store) Len() int {
	return len(s.clauses)
}

// WatchList returns the (mutable) slice of clauses watching lit.
func (s *Store) WatchList(lit Literal) []ClauseID {
	return s.watchLists[lit]
}

// SetWatchList installs ids as the new watch list for lit, replacing
// whatever was there. Used by bcp.go to install the surviving list
// after a sweep.
func (s *Store) SetWatchList(lit Literal, ids []ClauseID) {
	s.watchLists[lit] = ids
}

func (s *Store) addWatch(lit Literal, id ClauseID) {
	s.watchLists[lit] = append(s.watchLists[lit], id)
}
