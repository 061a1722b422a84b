package palettesearch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/palettesearch/index"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNotBuilt is returned when a query runs before a successful build.
	ErrNotBuilt = errors.New("palette index not built")

	// ErrNoPalettes is returned when a build is attempted over an empty collection.
	ErrNoPalettes = errors.New("no palettes to index")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrProviderContract indicates that the embedding provider broke its
// contract, e.g. by returning the wrong number of embeddings or embeddings
// of inconsistent dimension.
type ErrProviderContract struct {
	Reason string
}

func (e *ErrProviderContract) Error() string {
	return fmt.Sprintf("embedding provider contract violation: %s", e.Reason)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, index.ErrNotBuilt) {
		return fmt.Errorf("%w: %w", ErrNotBuilt, err)
	}
	if errors.Is(err, index.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, index.ErrEmptyIndex) {
		return fmt.Errorf("%w: %w", ErrNoPalettes, err)
	}
	var dm *index.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return err
}
