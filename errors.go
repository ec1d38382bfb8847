package wordgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/wordgrid/index"
)

var (
	// ErrUnknownKind is returned for a strategy name that is not supported.
	ErrUnknownKind = errors.New("unknown strategy")
)

// ErrInvalidWordLen indicates an unusable configured word length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWordLen struct {
	Kind    Kind
	WordLen int
	cause   error
}

func (e *ErrInvalidWordLen) Error() string {
	return fmt.Sprintf("invalid word length for %s: %d", e.Kind, e.WordLen)
}

func (e *ErrInvalidWordLen) Unwrap() error { return e.cause }

// ErrGridTooLarge indicates a grid with more cells than a strategy supports.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrGridTooLarge struct {
	Kind  Kind
	Cells int
	cause error
}

func (e *ErrGridTooLarge) Error() string {
	return fmt.Sprintf("grid too large for %s: %d cells", e.Kind, e.Cells)
}

func (e *ErrGridTooLarge) Unwrap() error { return e.cause }

func unknownKind(name string) error {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, name, strings.Join(names, ", "))
}

func translateError(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	var iwl *index.ErrInvalidWordLen
	if errors.As(err, &iwl) {
		return &ErrInvalidWordLen{Kind: kind, WordLen: iwl.WordLen, cause: err}
	}
	var gtl *index.ErrGridTooLarge
	if errors.As(err, &gtl) {
		return &ErrGridTooLarge{Kind: kind, Cells: gtl.Cells, cause: err}
	}

	return fmt.Errorf("build %s: %w", kind, err)
}
