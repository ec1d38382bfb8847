package trie

import (
	"unsafe"

	"github.com/hupe1980/wordgrid/internal/arena"
)

// Stats describes the shape of a trie index.
type Stats struct {
	MaxWordLen int         // Effective run length cap
	Nodes      int         // Nodes including the root
	Edges      int         // Parent to child links
	Depth      int         // Longest path from the root
	Arena      arena.Stats // Backing arena usage
}

// Stats returns statistics about the index.
func (t *Trie) Stats() Stats {
	edges := 0
	for _, n := range t.nodes.All() {
		edges += len(n.edges)
	}
	return Stats{
		MaxWordLen: t.opts.MaxWordLen,
		Nodes:      t.nodes.Len(),
		Edges:      edges,
		Depth:      t.depth(t.root),
		Arena:      t.nodes.Stats(),
	}
}

func (t *Trie) depth(ref arena.Ref) int {
	d := 0
	for _, e := range t.nodes.Get(ref).edges {
		d = max(d, 1+t.depth(e.child))
	}
	return d
}

// EstimateSize implements index.SizeEstimator.
// It counts the reserved arena chunks plus the edge slices of every node.
func (t *Trie) EstimateSize() int {
	size := int(unsafe.Sizeof(*t)) + t.nodes.Stats().BytesReserved
	for _, n := range t.nodes.All() {
		size += cap(n.edges) * int(unsafe.Sizeof(edge{}))
	}
	return size
}
