// Package colorspace converts palette strings between their wire format
// (five dash-separated 6-digit hex colors) and the CIE Lab representation
// the embedding model consumes.
package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// PaletteSize is the number of colors in a palette.
	PaletteSize = 5

	// Separator joins the hex colors of a palette string.
	Separator = "-"

	// LabVectorDim is the length of a flattened Lab palette vector.
	LabVectorDim = PaletteSize * 3

	hexDigits = 6
)

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the lowercase 6-digit hex encoding of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Lab is a CIE L*a*b* color relative to the D65 reference white.
// L is in [0,100]; a and b are unbounded but practically within ±128.
type Lab struct {
	L, A, B float64
}

// Palette is a fixed five-color palette.
type Palette [PaletteSize]RGB

// String returns the palette in wire format.
func (p Palette) String() string {
	tokens := make([]string, PaletteSize)
	for i, c := range p {
		tokens[i] = c.Hex()
	}
	return strings.Join(tokens, Separator)
}

// ErrMalformedColor reports a color token that is not exactly six hex digits.
type ErrMalformedColor struct {
	Token string
}

func (e *ErrMalformedColor) Error() string {
	return fmt.Sprintf("malformed color %q: want %d hex digits", e.Token, hexDigits)
}

// ErrMalformedPalette reports a palette string that does not hold exactly
// five parseable colors.
//
// The underlying cause can be accessed via errors.Unwrap.
type ErrMalformedPalette struct {
	Input string
	cause error
}

func (e *ErrMalformedPalette) Error() string {
	return fmt.Sprintf("malformed palette %q: %v", e.Input, e.cause)
}

func (e *ErrMalformedPalette) Unwrap() error { return e.cause }

// ParseHexColor parses a 6-hex-digit token such as "8f7358".
// Hex digits are case-insensitive.
func ParseHexColor(token string) (RGB, error) {
	if len(token) != hexDigits {
		return RGB{}, &ErrMalformedColor{Token: token}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(token[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, &ErrMalformedColor{Token: token}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParsePalette parses a palette string such as
// "8f7358-8e463d-d4d1cc-26211f-f2f0f3".
func ParsePalette(s string) (Palette, error) {
	tokens := strings.Split(s, Separator)
	if len(tokens) != PaletteSize {
		return Palette{}, &ErrMalformedPalette{
			Input: s,
			cause: fmt.Errorf("want %d colors, got %d", PaletteSize, len(tokens)),
		}
	}

	var p Palette
	for i, token := range tokens {
		c, err := ParseHexColor(token)
		if err != nil {
			return Palette{}, &ErrMalformedPalette{Input: s, cause: err}
		}
		p[i] = c
	}

	return p, nil
}

// RGBToLab converts an sRGB color to CIE Lab using the standard transform
// (sRGB gamma expansion, XYZ via the sRGB matrix, D65 reference white).
//
// go-colorful returns L*, a* and b* scaled down by a factor of 100 relative
// to the CIE convention, so the result is rescaled to put L in [0,100].
func RGBToLab(c RGB) Lab {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	l, a, b := col.Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// PaletteToLabVector converts a palette to the flattened 15-dimensional
// Lab vector the embedding model expects: (L,a,b,L,a,b,...) in palette order.
func PaletteToLabVector(p Palette) []float32 {
	vec := make([]float32, 0, LabVectorDim)
	for _, c := range p {
		lab := RGBToLab(c)
		vec = append(vec, float32(lab.L), float32(lab.A), float32(lab.B))
	}
	return vec
}
