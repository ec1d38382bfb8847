// Command wordgrid generates word grids and counts word occurrences in them.
//
// Usage:
//
//	wordgrid generate --rows 200 --cols 200 --word needle grid.txt.zst
//	wordgrid solve --word needle --strategy trie,linear --size grid.txt.zst
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
