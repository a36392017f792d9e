package dimacs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseAssignments reads one or more reference assignments, one per
// line, each a whitespace-separated list of signed DIMACS literals
// terminated by 0 (the same per-line shape the assignment writer in
// internal/verify produces). Used by --compare-model to check a
// solver's model against a known-good one.
func ParseAssignments(filename string) ([][]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	assignments := [][]bool{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		assignment := make([]bool, 0, len(fields))

		for _, f := range fields {
			if f == "0" {
				continue
			}
			l, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("dimacs: parsing literal %q: %w", f, err)
			}
			assignment = append(assignment, l > 0)
		}

		assignments = append(assignments, assignment)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: reading %q: %w", filename, err)
	}

	return assignments, nil
}
