// Command spacec is the reference driver for the SPACE language front end:
// lexer, syntax analyzer, parse-tree generator, and semantic analyzer
// (spec.md §6.1).
package main

import (
	"os"

	"github.com/lukaslampl/space-lang-go/cmd/spacec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
