// Package trie provides a prefix trie over every directional run of a grid.
//
// From every cell the longest run in each direction is inserted, and each
// node counts how many inserted runs pass through it. The count at the end
// of a word's path is therefore the number of runs starting with that word.
// Nodes live in an arena and link to their children by Ref.
package trie

import (
	"slices"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
	"github.com/hupe1980/wordgrid/internal/arena"
	"github.com/hupe1980/wordgrid/internal/pool"
)

// Compile-time checks to ensure Trie satisfies required interfaces.
var _ index.Index = (*Trie)(nil)
var _ index.SizeEstimator = (*Trie)(nil)

// Options contains configuration options for the trie index.
type Options struct {
	// MaxWordLen caps the length of the inserted runs. Zero selects the
	// longest run the grid can hold, max(rows, cols). Words longer than the
	// cap are never found.
	MaxWordLen int

	// ChunkSize is the number of nodes per arena chunk.
	ChunkSize int
}

// DefaultOptions contains the default configuration options for the trie index.
var DefaultOptions = Options{
	MaxWordLen: 0,
	ChunkSize:  arena.DefaultChunkSize,
}

type edge struct {
	label byte
	child arena.Ref
}

type node struct {
	count int
	edges []edge // sorted by label
}

// Trie is a prefix trie index. It copies no grid data and does not keep a
// reference to the grid after construction.
type Trie struct {
	opts  Options
	nodes *arena.Arena[node]
	root  arena.Ref
}

// New builds a trie index over g.
func New(g *grid.Grid, optFns ...func(o *Options)) (*Trie, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxWordLen < 0 {
		return nil, &index.ErrInvalidWordLen{WordLen: opts.MaxWordLen}
	}
	if opts.MaxWordLen == 0 {
		opts.MaxWordLen = max(g.Rows(), g.Cols())
	}

	t := &Trie{
		opts:  opts,
		nodes: arena.New[node](opts.ChunkSize),
	}

	root, _, err := t.nodes.Alloc()
	if err != nil {
		return nil, err
	}
	t.root = root

	if err := t.build(g); err != nil {
		return nil, err
	}

	return t, nil
}

func (*Trie) Name() string { return "Trie" }

// MaxWordLen returns the effective run length cap.
func (t *Trie) MaxWordLen() int { return t.opts.MaxWordLen }

// build runs in two phases. The insert pass adds the runs of every cell and
// records how many directions produced one. Each of those runs starts with
// the cell itself, so the correction pass brings the cell's depth-one count
// back to exactly one.
func (t *Trie) build(g *grid.Grid) error {
	validDirs := make([]uint8, g.Len())
	run := make([]byte, 0, t.opts.MaxWordLen)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, dir := range grid.All {
				n := min(t.opts.MaxWordLen, g.RunLength(row, col, dir))
				if n < 2 {
					continue
				}

				run, _ = g.AppendWord(run[:0], row, col, dir, n)
				if err := t.insert(run); err != nil {
					return err
				}
				validDirs[row*g.Cols()+col]++
			}
		}
	}

	for cell, b := range g.Data() {
		switch k := int(validDirs[cell]); k {
		case 0:
			if err := t.insert([]byte{b}); err != nil {
				return err
			}
		default:
			ref, _ := t.child(t.root, b)
			t.nodes.Get(ref).count -= k - 1
		}
	}

	return nil
}

// insert adds word below the root, incrementing every node on its path.
func (t *Trie) insert(word []byte) error {
	cur := t.root
	for _, b := range word {
		next, err := t.childOrCreate(cur, b)
		if err != nil {
			return err
		}
		t.nodes.Get(next).count++
		cur = next
	}
	return nil
}

func (t *Trie) child(ref arena.Ref, b byte) (arena.Ref, bool) {
	edges := t.nodes.Get(ref).edges
	i, found := slices.BinarySearchFunc(edges, b, cmpLabel)
	if !found {
		return arena.Null, false
	}
	return edges[i].child, true
}

func (t *Trie) childOrCreate(ref arena.Ref, b byte) (arena.Ref, error) {
	n := t.nodes.Get(ref)
	i, found := slices.BinarySearchFunc(n.edges, b, cmpLabel)
	if found {
		return n.edges[i].child, nil
	}

	child, _, err := t.nodes.Alloc()
	if err != nil {
		return arena.Null, err
	}
	// Alloc never moves existing nodes, so n is still valid.
	n.edges = slices.Insert(n.edges, i, edge{label: b, child: child})
	return child, nil
}

func cmpLabel(e edge, b byte) int {
	return int(e.label) - int(b)
}

// CountOccurrences implements index.Index.
func (t *Trie) CountOccurrences(word []byte) int {
	if len(word) == 0 || len(word) > t.opts.MaxWordLen {
		return 0
	}

	count := t.lookup(word)
	if !index.IsPalindrome(word) {
		qc := pool.Get()
		qc.Reverse = index.AppendReverse(qc.Reverse, word)
		count += t.lookup(qc.Reverse)
		pool.Put(qc)
	}
	return count
}

func (t *Trie) lookup(word []byte) int {
	cur := t.root
	for _, b := range word {
		next, ok := t.child(cur, b)
		if !ok {
			return 0
		}
		cur = next
	}
	return t.nodes.Get(cur).count
}
