// Package gridfile loads and saves grids in text format.
//
// The compression is chosen by file extension: ".zst" and ".zstd" select
// zstd, ".lz4" selects lz4 frames, anything else is plain text. Plain files
// are memory-mapped and parsed in place. Saving writes a temporary file and
// renames it over the target, so readers never observe a partial grid.
package gridfile
