// Command lox is the CLI entry point for the tree-walking Lox
// interpreter: it wires internal/lexer, internal/parser,
// internal/resolver, and internal/interp behind a small Cobra command
// tree, the way the teacher's cmd/dwscript wires its own pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
