// Package index provides the word occurrence contract and its implementations.
//
// Wordgrid supports four index types:
//
//   - Naive: brute-force scan of every cell and direction (the oracle)
//   - HashMap: bounded-length substring counts plus prefix anchors
//   - Trie: prefix tree of every directional run
//   - Linear: four delimiter-joined buffers searched for the word
//
// # Index Selection
//
// Choose based on grid size, query length and memory budget:
//
//   - Naive: tests and tiny grids, no construction cost
//   - HashMap: short words answered in O(|W|), long words via anchor checks
//   - Trie: fastest queries, largest memory footprint
//   - Linear: smallest footprint, query cost linear in the grid size
//
// # Index Interface
//
// All index implementations satisfy the core Index interface:
//
//	type Index interface {
//	    CountOccurrences(word []byte) int
//	}
//
// and every implementation agrees with naive on every input.
//
// # Subpackages
//
//   - naive: correctness oracle
//   - hashmap: hash substring index
//   - trie: prefix trie over a node arena
//   - linear: linearized substring search
package index
