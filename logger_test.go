package palettesearch

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/palettesearch/embedding"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultHandler", func(t *testing.T) {
		logger := NewLogger(nil)
		require.NotNil(t, logger.Logger)
	})

	t.Run("OperationsLogged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))

		ps := New(embedding.LabIdentity{}, WithLogger(logger))
		require.NoError(t, ps.BuildFromPalettes(ctx, testPalettes))

		_, err := ps.FindNearest(ctx, testPalettes[0], 3)
		require.NoError(t, err)
		_, err = ps.Distance(ctx, testPalettes[0], testPalettes[1])
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "build completed")
		assert.Contains(t, out, `"count":8`)
		assert.Contains(t, out, "search completed")
		assert.Contains(t, out, `"k":3`)
		assert.Contains(t, out, "distance completed")
	})

	t.Run("ErrorsLogged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))

		ps := New(embedding.LabIdentity{}, WithLogger(logger))
		require.Error(t, ps.BuildFromPalettes(ctx, []string{"bogus"}))

		_, err := ps.FindNearest(ctx, testPalettes[0], 1)
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, "build failed")
		assert.Contains(t, out, "search failed")
	})

	t.Run("NoopDiscards", func(t *testing.T) {
		ps := New(embedding.LabIdentity{}, WithLogger(NoopLogger()))
		require.NoError(t, ps.BuildFromPalettes(ctx, testPalettes))
	})
}
