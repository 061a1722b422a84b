package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabIdentity(t *testing.T) {
	t.Run("Passthrough", func(t *testing.T) {
		in := [][]float32{{1, 2, 3}, {4, 5, 6}}

		out, err := LabIdentity{}.BatchEmbed(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, in, out)
	})

	t.Run("Copies", func(t *testing.T) {
		in := [][]float32{{1, 2, 3}}

		out, err := LabIdentity{}.BatchEmbed(context.Background(), in)
		require.NoError(t, err)

		in[0][0] = 99
		assert.Equal(t, float32(1), out[0][0])
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := LabIdentity{}.BatchEmbed(ctx, [][]float32{{1}})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestProviderFunc(t *testing.T) {
	called := false
	p := ProviderFunc(func(ctx context.Context, labVectors [][]float32) ([][]float32, error) {
		called = true
		return labVectors, nil
	})

	_, err := p.BatchEmbed(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, called)
}
