// Package index provides the shared types and error taxonomy for palette
// embedding indexes.
package index

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNotBuilt is returned when an index is queried before Build.
	ErrNotBuilt = errors.New("index not built")

	// ErrAlreadyBuilt is returned when a frozen index is mutated or rebuilt.
	ErrAlreadyBuilt = errors.New("index already built")

	// ErrEmptyIndex is returned when Build is invoked with no items.
	ErrEmptyIndex = errors.New("index has no items")

	// ErrEmptyVector is returned when an empty vector is inserted.
	ErrEmptyVector = errors.New("empty vector")
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidOption reports an out-of-range configuration value.
type ErrInvalidOption struct {
	Name  string
	Value int
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Name, e.Value)
}

// SearchResult represents a single nearest-neighbor match.
type SearchResult struct {
	// ID is the item id of the match, assigned at insertion time.
	ID uint32

	// Distance is the Euclidean distance between the query vector and the
	// matched item's vector.
	Distance float32
}

// ValidateOptions checks the configuration constraints shared by all index
// implementations.
func ValidateOptions(dimension, numTrees, leafCapacity int) error {
	if dimension <= 0 {
		return &ErrInvalidOption{Name: "dimension", Value: dimension}
	}
	if numTrees <= 0 {
		return &ErrInvalidOption{Name: "number of trees", Value: numTrees}
	}
	if leafCapacity <= 0 {
		return &ErrInvalidOption{Name: "leaf capacity", Value: leafCapacity}
	}
	return nil
}
