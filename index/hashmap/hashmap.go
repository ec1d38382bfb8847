// Package hashmap provides a bounded-length hash substring index.
//
// Every run of up to WordLen bytes is counted in a map keyed by its canonical
// form, so short queries are a single lookup. Longer queries look up their
// first WordLen bytes in a second map of anchor sets and verify each anchor
// against the grid.
package hashmap

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
	"github.com/hupe1980/wordgrid/internal/pool"
)

// Compile-time checks to ensure HashMap satisfies required interfaces.
var _ index.Index = (*HashMap)(nil)
var _ index.SizeEstimator = (*HashMap)(nil)

// Options contains configuration options for the hash index.
type Options struct {
	// WordLen is the maximum indexed run length. It must be >= 1.
	// Words up to this length are answered from the complete-word map.
	WordLen int
}

// DefaultOptions contains the default configuration options for the hash index.
var DefaultOptions = Options{
	WordLen: 4,
}

// maxCells bounds the grid so that every anchor id fits into a uint32.
const maxCells = math.MaxUint32 / len(grid.All)

// HashMap is a hash substring index over a borrowed grid.
// The grid must outlive the index and must not be modified.
type HashMap struct {
	opts     Options
	grid     *grid.Grid
	complete map[string]int             // canonical key -> occurrences
	anchors  map[string]*roaring.Bitmap // WordLen prefix -> anchor ids
}

// New builds a hash index over g.
func New(g *grid.Grid, optFns ...func(o *Options)) (*HashMap, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.WordLen < 1 {
		return nil, &index.ErrInvalidWordLen{WordLen: opts.WordLen}
	}
	if g.Len() > maxCells {
		return nil, &index.ErrGridTooLarge{Cells: g.Len(), Limit: maxCells}
	}

	h := &HashMap{
		opts:     opts,
		grid:     g,
		complete: make(map[string]int),
		anchors:  make(map[string]*roaring.Bitmap),
	}
	h.build()

	return h, nil
}

func (*HashMap) Name() string { return "HashMap" }

// WordLen returns the configured maximum indexed length.
func (h *HashMap) WordLen() int { return h.opts.WordLen }

func (h *HashMap) build() {
	g := h.grid
	wordLen := h.opts.WordLen
	run := make([]byte, 0, wordLen)
	key := make([]byte, 0, wordLen)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, dir := range grid.All {
				n := min(wordLen, g.RunLength(row, col, dir))
				run, _ = g.AppendWord(run[:0], row, col, dir, n)

				// Near an edge only the shorter run exists; its prefixes
				// still need to be counted.
				key = h.addPrefixes(key, run, dir)

				if n < wordLen {
					continue
				}

				bm, ok := h.anchors[string(run)]
				if !ok {
					bm = roaring.New()
					h.anchors[string(run)] = bm
				}
				bm.Add(encodeAnchor(g, row, col, dir))
			}
		}
	}

	for _, bm := range h.anchors {
		bm.RunOptimize()
	}
}

// addPrefixes counts every prefix of run. The 1-byte prefix is the anchor
// cell itself and is only counted for Right, so each cell counts once.
func (h *HashMap) addPrefixes(scratch, run []byte, dir grid.Direction) []byte {
	for l := 1; l <= len(run); l++ {
		if l == 1 && dir != grid.Right {
			continue
		}
		scratch = index.AppendCanonicalKey(scratch[:0], run[:l])
		h.complete[string(scratch)]++
	}
	return scratch
}

// CountOccurrences implements index.Index.
func (h *HashMap) CountOccurrences(word []byte) int {
	if len(word) == 0 {
		return 0
	}

	qc := pool.Get()
	defer pool.Put(qc)

	if len(word) <= h.opts.WordLen {
		// Canonical keys fold the reverse in already.
		qc.Key = index.AppendCanonicalKey(qc.Key, word)
		return h.complete[string(qc.Key)]
	}

	count := h.countAnchored(word)
	if !index.IsPalindrome(word) {
		// A run equal to both word and its reverse would make word a
		// palindrome, so the two passes never count the same run.
		qc.Reverse = index.AppendReverse(qc.Reverse, word)
		count += h.countAnchored(qc.Reverse)
	}
	return count
}

// countAnchored counts runs equal to target among the anchors of its prefix.
func (h *HashMap) countAnchored(target []byte) int {
	bm, ok := h.anchors[string(target[:h.opts.WordLen])]
	if !ok {
		return 0
	}

	count := 0
	bm.Iterate(func(id uint32) bool {
		row, col, dir := decodeAnchor(h.grid, id)
		if h.grid.Matches(row, col, dir, target) {
			count++
		}
		return true
	})
	return count
}

func encodeAnchor(g *grid.Grid, row, col int, dir grid.Direction) uint32 {
	return uint32((row*g.Cols()+col)*len(grid.All) + int(dir)) //nolint:gosec // bounded by maxCells
}

func decodeAnchor(g *grid.Grid, id uint32) (int, int, grid.Direction) {
	cell := int(id) / len(grid.All)
	return cell / g.Cols(), cell % g.Cols(), grid.Direction(int(id) % len(grid.All))
}
