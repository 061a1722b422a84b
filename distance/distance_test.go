package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, float32(32), Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	assert.Equal(t, float32(0), Dot([]float32{1, 0}, []float32{0, 1}))
	assert.Equal(t, float32(0), Dot(nil, nil))
}

func TestSquaredL2(t *testing.T) {
	assert.Equal(t, float32(0), SquaredL2([]float32{1, 2, 3}, []float32{1, 2, 3}))
	assert.Equal(t, float32(25), SquaredL2([]float32{0, 0}, []float32{3, 4}))
}

func TestL2(t *testing.T) {
	assert.Equal(t, float32(5), L2([]float32{0, 0}, []float32{3, 4}))

	// Symmetry.
	a := []float32{1.5, -2, 7, 0.25}
	b := []float32{-3, 4, 4, 9}
	assert.Equal(t, L2(a, b), L2(b, a))
	assert.Equal(t, float32(0), L2(a, a))
}
