package gridfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/internal/fs"
	"github.com/hupe1980/wordgrid/internal/mmap"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of a grid file.
type Compression uint8

const (
	// CompressionNone stores plain text.
	CompressionNone Compression = iota
	// CompressionLZ4 stores an lz4 frame (fast).
	CompressionLZ4
	// CompressionZstd stores a zstd frame (smaller).
	CompressionZstd
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// CompressionFromPath returns the compression implied by the extension of path.
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Load reads the grid stored at path.
func Load(path string) (*grid.Grid, error) {
	c := CompressionFromPath(path)
	if c == CompressionNone {
		return loadMapped(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f, c)
	if err != nil {
		return nil, fmt.Errorf("gridfile: load %s: %w", path, err)
	}
	return g, nil
}

func loadMapped(path string) (*grid.Grid, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	_ = m.Advise(mmap.AccessSequential)

	g, err := grid.ParseBytes(m.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gridfile: load %s: %w", path, err)
	}
	return g, nil
}

// Decode reads a grid with compression c from r.
func Decode(r io.Reader, c Compression) (*grid.Grid, error) {
	switch c {
	case CompressionNone:
		return grid.Parse(r)
	case CompressionLZ4:
		return grid.Parse(lz4.NewReader(r))
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		return grid.Parse(dec)
	default:
		return nil, fmt.Errorf("gridfile: unknown compression %s", c)
	}
}

// Save writes g to path, replacing any existing file atomically.
func Save(path string, g *grid.Grid) error {
	return SaveFS(fs.Default, path, g)
}

// SaveFS is like Save but performs all file operations through fsys.
// The grid is written to a temporary file next to path, synced and renamed
// over path. On failure the temporary file is removed and path is untouched.
func SaveFS(fsys fs.FileSystem, path string, g *grid.Grid) (err error) {
	tmp := path + ".tmp"

	f, err := fsys.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
			err = fmt.Errorf("gridfile: save %s: %w", path, err)
		}
	}()

	if err := Encode(f, g, CompressionFromPath(path)); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Sync(); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}

	return fsys.Rename(tmp, path)
}

// Encode writes g with compression c to w. The text ends with a newline.
func Encode(w io.Writer, g *grid.Grid, c Compression) error {
	switch c {
	case CompressionNone:
		return writeText(w, g)
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if err := writeText(zw, g); err != nil {
			return err
		}
		return zw.Close()
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if err := writeText(enc, g); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("gridfile: unknown compression %s", c)
	}
}

func writeText(w io.Writer, g *grid.Grid) error {
	if _, err := g.WriteTo(w); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
