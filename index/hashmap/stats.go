package hashmap

import (
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"
)

// Stats describes the contents of a hash index.
type Stats struct {
	WordLen        int // Configured maximum indexed length
	CompleteWords  int // Distinct canonical keys of length <= WordLen
	AnchorPrefixes int // Distinct WordLen-byte prefixes
	Anchors        int // Total anchors across all prefixes
}

// Stats returns statistics about the index.
func (h *HashMap) Stats() Stats {
	anchors := 0
	for _, bm := range h.anchors {
		anchors += int(bm.GetCardinality()) //nolint:gosec // bounded by maxCells
	}
	return Stats{
		WordLen:        h.opts.WordLen,
		CompleteWords:  len(h.complete),
		AnchorPrefixes: len(h.anchors),
		Anchors:        anchors,
	}
}

// EstimateSize implements index.SizeEstimator.
//
// Map entries are counted as key bytes plus the string header and value.
// The grid is borrowed and not included.
func (h *HashMap) EstimateSize() int {
	const stringHeader = int(unsafe.Sizeof(""))

	size := int(unsafe.Sizeof(*h))
	for k := range h.complete {
		size += stringHeader + len(k) + int(unsafe.Sizeof(int(0)))
	}
	for k, bm := range h.anchors {
		size += stringHeader + len(k) + int(unsafe.Sizeof((*roaring.Bitmap)(nil))) + int(bm.GetSizeInBytes()) //nolint:gosec // small
	}
	return size
}
