// Package mmap maps grid files into memory read-only.
//
// Plain grid text is parsed straight from the mapping, so loading a large
// grid does not need a second heap-sized read buffer before parsing.
//
//	m, err := mmap.Open("puzzle.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	g, err := grid.ParseBytes(m.Bytes())
//
// On unix platforms the file is mapped with mmap(2) and hints are passed to
// madvise(2). Elsewhere Open falls back to reading the file into memory and
// Advise is a no-op.
//
// Close is idempotent. The slice returned by Bytes must not be used after
// Close returns.
package mmap
