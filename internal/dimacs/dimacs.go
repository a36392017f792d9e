// Package dimacs reads the DIMACS CNF format described in spec §6: a
// header line ("p cnf <vars> <clauses>") followed by clauses, one per
// line, each a whitespace-separated list of signed integers terminated
// by a trailing 0. A clause is not continued onto the next line: every
// non-comment line after the header is read as one whole clause.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nitinkedia7/satispy/internal/sat"
)

// ErrEmptyClause is the error a Builder's AddClause can return for a
// clause with zero literals. Per spec §8's boundary behavior such a
// clause makes the instance unsatisfiable no matter what the rest of
// the file says. Load itself does not reject it: it hands the empty
// clause to Builder.AddClause and returns whatever error that call
// returns.
var ErrEmptyClause = errors.New("dimacs: empty clause")

// Builder receives the variables and clauses as they are scanned. It
// mirrors the core interface of spec §6 loosely: AddVariable grows the
// variable space by one and returns its id; AddClause is handed a
// deduplicated literal slice (reused across calls — copy it if you
// need to retain it) and decides for itself whether a given size
// (0, 1, or more) is a unit, a conflict, or an ordinary clause.
type Builder interface {
	AddVariable() sat.Variable
	AddClause(lits []sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses filename (optionally gzip-compressed) into dw.
func LoadFile(filename string, gzipped bool, dw Builder) error {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer rc.Close()
	return Load(rc, dw)
}

// Load parses r into dw. Variables are declared in ascending DIMACS
// order (1..nVars) before any clause is read, so Builder.AddVariable
// is called exactly nVars times up front, matching spec §6's
// new_solver(var_count, ...) contract.
func Load(r io.Reader, dw Builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nVars, nClauses, err := scanHeader(scanner)
	if err != nil {
		return err
	}

	for range nVars {
		dw.AddVariable()
	}

	litBuffer := make([]sat.Literal, 0, 32)
	for nClauses > 0 && scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}

		litBuffer, err = parseClauseLine(line, litBuffer[:0])
		if err != nil {
			return err
		}
		litBuffer = dedupe(litBuffer)

		if err := dw.AddClause(litBuffer); err != nil {
			return err
		}
		nClauses--
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dimacs: reading clauses: %w", err)
	}
	return nil
}

func scanHeader(scanner *bufio.Scanner) (nVars, nClauses int, err error) {
	for {
		if !scanner.Scan() {
			return 0, 0, fmt.Errorf("dimacs: header line not found")
		}
		line := scanner.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 || parts[0] != "p" {
			return 0, 0, fmt.Errorf("dimacs: malformed header %q", line)
		}
		if parts[1] != "cnf" {
			return 0, 0, fmt.Errorf("dimacs: instance of type %q is not supported", parts[1])
		}
		nVars, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, fmt.Errorf("dimacs: parsing header: %w", err)
		}
		nClauses, err = strconv.Atoi(parts[3])
		if err != nil {
			return 0, 0, fmt.Errorf("dimacs: parsing header: %w", err)
		}
		return nVars, nClauses, nil
	}
}

func parseClauseLine(line string, buf []sat.Literal) ([]sat.Literal, error) {
	for _, p := range strings.Fields(line) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("dimacs: parsing literal %q: %w", p, err)
		}
		switch {
		case n < 0:
			buf = append(buf, sat.NegLiteral(sat.Variable(-n)))
		case n > 0:
			buf = append(buf, sat.PosLiteral(sat.Variable(n)))
		default:
			// trailing clause terminator, dropped
		}
	}
	return buf, nil
}

// dedupe removes repeated literals in place, preserving first-seen
// order (spec §6: clause literals are a set, not a multiset).
func dedupe(lits []sat.Literal) []sat.Literal {
	if len(lits) < 2 {
		return lits
	}
	out := lits[:0]
	for _, l := range lits {
		seen := false
		for _, o := range out {
			if o == l {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, l)
		}
	}
	return out
}
