package testutil

import (
	"bytes"
	_ "embed"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/wordgrid/grid"
)

// LowercaseAlphabet is the default cell alphabet.
const LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"

//go:embed words.txt
var wordList []byte

// Words returns the built-in word list, one entry per non-empty line.
func Words() [][]byte {
	var words [][]byte
	for line := range bytes.Lines(wordList) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			words = append(words, bytes.Clone(line))
		}
	}
	return words
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomBytes returns n bytes drawn uniformly from alphabet.
func (r *RNG) RandomBytes(n int, alphabet string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.randomBytesLocked(n, alphabet)
}

func (r *RNG) randomBytesLocked(n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return out
}

// RandomGrid generates a rows x cols grid of bytes drawn from alphabet.
// It panics if rows or cols is not positive.
func (r *RNG) RandomGrid(rows, cols int, alphabet string) *grid.Grid {
	g, err := grid.New(rows, r.RandomBytes(rows*cols, alphabet))
	if err != nil {
		panic(err)
	}
	return g
}

// PlantWords writes each word into g at a random anchor and direction,
// retrying up to maxAttempts times per word. Later words may overwrite
// earlier ones. It returns the number of words written.
func (r *RNG) PlantWords(g *grid.Grid, words [][]byte, maxAttempts int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	placed := 0
	for _, word := range words {
		for range maxAttempts {
			dir := grid.All[r.rand.Intn(len(grid.All))]
			row := r.rand.Intn(g.Rows())
			col := r.rand.Intn(g.Cols())
			if g.SetWord(row, col, dir, word) {
				placed++
				break
			}
		}
	}
	return placed
}

// Vocabulary returns a sorted, duplicate-free query list for g: every run of
// length 1..maxLen in every direction, the reverse of each run, and absent
// random words of length 1..maxLen+2 drawn from the grid's own bytes.
func (r *RNG) Vocabulary(g *grid.Grid, maxLen, absent int) [][]byte {
	seen := make(map[string]struct{})
	add := func(w []byte) {
		seen[string(w)] = struct{}{}
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, dir := range grid.All {
				n := min(maxLen, g.RunLength(row, col, dir))
				run, _ := g.Word(row, col, dir, n)
				for l := 1; l <= len(run); l++ {
					add(run[:l])
					add(reversed(run[:l]))
				}
			}
		}
	}

	alphabet := distinct(g.Data())

	r.mu.Lock()
	for range absent {
		n := 1 + r.rand.Intn(maxLen+2)
		add(r.randomBytesLocked(n, alphabet))
	}
	r.mu.Unlock()

	words := make([][]byte, 0, len(seen))
	for w := range seen {
		words = append(words, []byte(w))
	}
	slices.SortFunc(words, bytes.Compare)
	return words
}

func reversed(w []byte) []byte {
	out := make([]byte, len(w))
	for i, b := range w {
		out[len(w)-1-i] = b
	}
	return out
}

func distinct(data []byte) string {
	var present [256]bool
	var out []byte
	for _, b := range data {
		if !present[b] {
			present[b] = true
			out = append(out, b)
		}
	}
	return string(out)
}
