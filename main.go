// Command satispy runs a CDCL SAT solver over a DIMACS CNF instance.
package main

import "github.com/nitinkedia7/satispy/cmd"

func main() {
	cmd.Execute()
}
