// idtree is a command-line companion to the idtree library: an interactive
// shell for building and reshaping a tree, and a benchmark of the core
// operations on large trees.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
