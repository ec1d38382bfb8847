package arena

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/bits"
	"unsafe"
)

var (
	// ErrArenaFull is returned when every Ref value is in use.
	ErrArenaFull = errors.New("arena: full")
)

const (
	// DefaultChunkSize is the default number of slots per chunk.
	DefaultChunkSize = 4096
)

// Ref is a handle to a slot in an Arena.
type Ref uint32

// Null is the zero Ref; it never refers to an allocated slot.
const Null Ref = 0

// Stats tracks arena memory usage metrics.
type Stats struct {
	Chunks        int // Chunks currently held
	Allocs        int // Slots handed out since the last Reset
	SlotBytes     int // Size of one slot
	BytesReserved int // Chunks * chunk size * slot size
}

// Arena hands out zeroed slots of T addressed by Ref.
type Arena[T any] struct {
	chunks    [][]T
	chunkBits int
	chunkMask uint32
	next      uint64 // next unallocated slot
}

// New creates an arena whose chunks hold chunkSize slots, rounded up to a
// power of two. A non-positive chunkSize selects DefaultChunkSize.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunkBits := bits.Len(uint(chunkSize - 1)) //nolint:gosec // chunkSize > 0
	chunkBits = min(chunkBits, 31)

	a := &Arena[T]{
		chunkBits: chunkBits,
		chunkMask: uint32(1)<<chunkBits - 1,
	}
	// Reserve slot 0 as Null.
	a.next = 1
	return a
}

// ChunkSize returns the number of slots per chunk.
func (a *Arena[T]) ChunkSize() int {
	return 1 << a.chunkBits
}

// Alloc returns a new zeroed slot and its Ref.
func (a *Arena[T]) Alloc() (Ref, *T, error) {
	if a.next > math.MaxUint32 {
		return Null, nil, ErrArenaFull
	}

	ref := Ref(a.next)
	chunkIdx := int(a.next >> a.chunkBits)
	if chunkIdx == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, a.ChunkSize()))
	}
	a.next++

	return ref, &a.chunks[chunkIdx][uint32(ref)&a.chunkMask], nil
}

// Get returns the slot for ref. It panics on Null or unallocated refs.
func (a *Arena[T]) Get(ref Ref) *T {
	if ref == Null || uint64(ref) >= a.next {
		panic(fmt.Sprintf("arena: invalid ref %d", ref))
	}
	return &a.chunks[uint32(ref)>>a.chunkBits][uint32(ref)&a.chunkMask]
}

// Len returns the number of allocated slots.
func (a *Arena[T]) Len() int {
	return int(a.next - 1) //nolint:gosec // next <= MaxUint32+1
}

// All returns a sequence over every allocated slot in allocation order.
func (a *Arena[T]) All() iter.Seq2[Ref, *T] {
	return func(yield func(Ref, *T) bool) {
		for i := uint64(1); i < a.next; i++ {
			ref := Ref(i) //nolint:gosec // i < next <= MaxUint32+1
			if !yield(ref, a.Get(ref)) {
				return
			}
		}
	}
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	var zero T
	slot := int(unsafe.Sizeof(zero))
	return Stats{
		Chunks:        len(a.chunks),
		Allocs:        a.Len(),
		SlotBytes:     slot,
		BytesReserved: len(a.chunks) * a.ChunkSize() * slot,
	}
}

// Reset releases all chunks. Every Ref and pointer handed out before
// becomes invalid.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.next = 1
}

func (a *Arena[T]) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{chunks: %d, allocs: %d, reserved: %.2f MB}",
		stats.Chunks,
		stats.Allocs,
		float64(stats.BytesReserved)/(1024*1024),
	)
}
