package colorspace

import (
	"errors"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, token := range []string{"8f7358", "000000", "ffffff", "26211f"} {
			c, err := ParseHexColor(token)
			require.NoError(t, err)
			assert.Equal(t, token, c.Hex())
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		c, err := ParseHexColor("8F7358")
		require.NoError(t, err)
		assert.Equal(t, RGB{R: 143, G: 115, B: 88}, c)
		assert.Equal(t, "8f7358", c.Hex())
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, token := range []string{"", "8f735", "8f73588", "8f735g", "#8f7358", " f7358"} {
			_, err := ParseHexColor(token)
			var mc *ErrMalformedColor
			require.ErrorAs(t, err, &mc, "token %q", token)
			assert.Equal(t, token, mc.Token)
		}
	})
}

func TestParsePalette(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := ParsePalette("8f7358-8e463d-d4d1cc-26211f-f2f0f3")
		require.NoError(t, err)
		assert.Equal(t, RGB{R: 143, G: 115, B: 88}, p[0])
		assert.Equal(t, "8f7358-8e463d-d4d1cc-26211f-f2f0f3", p.String())
	})

	t.Run("WrongTokenCount", func(t *testing.T) {
		_, err := ParsePalette("8f7358-8e463d-d4d1cc-26211f")
		var mp *ErrMalformedPalette
		require.ErrorAs(t, err, &mp)
		assert.Contains(t, mp.Error(), "want 5 colors")
	})

	t.Run("BadTokenUnwraps", func(t *testing.T) {
		_, err := ParsePalette("8f7358-8e463d-d4d1cc-26211f-zzzzzz")
		var mp *ErrMalformedPalette
		require.ErrorAs(t, err, &mp)
		var mc *ErrMalformedColor
		require.True(t, errors.As(mp.Unwrap(), &mc))
		assert.Equal(t, "zzzzzz", mc.Token)
	})
}

func TestRGBToLab(t *testing.T) {
	t.Run("White", func(t *testing.T) {
		lab := RGBToLab(RGB{R: 255, G: 255, B: 255})
		assert.InDelta(t, 100.0, lab.L, 1e-3)
		assert.InDelta(t, 0.0, lab.A, 1e-3)
		assert.InDelta(t, 0.0, lab.B, 1e-3)
	})

	t.Run("Black", func(t *testing.T) {
		lab := RGBToLab(RGB{})
		assert.InDelta(t, 0.0, lab.L, 1e-3)
		assert.InDelta(t, 0.0, lab.A, 1e-3)
		assert.InDelta(t, 0.0, lab.B, 1e-3)
	})

	t.Run("MatchesColorfulScaledByHundred", func(t *testing.T) {
		for _, c := range []RGB{
			{R: 143, G: 115, B: 88},
			{R: 212, G: 209, B: 204},
			{R: 38, G: 33, B: 31},
			{R: 0, G: 128, B: 255},
		} {
			col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
			l, a, b := col.Lab()
			lab := RGBToLab(c)
			assert.InDelta(t, l*100, lab.L, 1e-9)
			assert.InDelta(t, a*100, lab.A, 1e-9)
			assert.InDelta(t, b*100, lab.B, 1e-9)
		}
	})

	t.Run("LWithinRange", func(t *testing.T) {
		for _, c := range []RGB{{}, {R: 255, G: 255, B: 255}, {R: 255}, {G: 255}, {B: 255}, {R: 127, G: 64, B: 200}} {
			lab := RGBToLab(c)
			assert.GreaterOrEqual(t, lab.L, 0.0)
			assert.LessOrEqual(t, lab.L, 100.0+1e-6)
		}
	})
}

func TestPaletteToLabVector(t *testing.T) {
	p, err := ParsePalette("8f7358-8e463d-d4d1cc-26211f-f2f0f3")
	require.NoError(t, err)

	vec := PaletteToLabVector(p)
	require.Len(t, vec, LabVectorDim)

	// Flattened in palette order: L,a,b per color.
	for i, c := range p {
		lab := RGBToLab(c)
		assert.InDelta(t, lab.L, float64(vec[3*i]), 1e-4)
		assert.InDelta(t, lab.A, float64(vec[3*i+1]), 1e-4)
		assert.InDelta(t, lab.B, float64(vec[3*i+2]), 1e-4)
	}
}

func TestPaletteStringRoundTrip(t *testing.T) {
	in := "85837c-d2d1d0-9b7360-e4e3e2-b5ab98"
	p, err := ParsePalette(strings.ToUpper(in))
	require.NoError(t, err)
	assert.Equal(t, in, p.String())
}
