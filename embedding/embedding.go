// Package embedding defines the contract between the palette search core
// and the externally trained palette embedding model.
//
// The model itself is an opaque collaborator: it is trained offline and may
// run on any inference runtime. The core only depends on the Provider
// interface and never on a concrete runtime.
package embedding

import (
	"context"
	"slices"
)

// Provider maps flattened Lab palette vectors to embedding vectors whose
// Euclidean geometry encodes perceptual palette similarity.
//
// Implementations must return exactly one embedding per input vector, in
// input order, all with the same dimension. Providers are treated as
// stateless: calls have no side effects observable to the core.
type Provider interface {
	BatchEmbed(ctx context.Context, labVectors [][]float32) ([][]float32, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, labVectors [][]float32) ([][]float32, error)

// BatchEmbed implements Provider.
func (f ProviderFunc) BatchEmbed(ctx context.Context, labVectors [][]float32) ([][]float32, error) {
	return f(ctx, labVectors)
}

// LabIdentity is a stand-in provider that returns each Lab vector unchanged.
//
// With it, palette similarity degenerates to Euclidean distance in Lab
// space, which is itself perceptually motivated. It serves demos and tests
// when no trained model is wired in.
type LabIdentity struct{}

// BatchEmbed implements Provider. The returned vectors are copies; callers
// may mutate their inputs afterwards.
func (LabIdentity) BatchEmbed(ctx context.Context, labVectors [][]float32) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([][]float32, len(labVectors))
	for i, v := range labVectors {
		out[i] = slices.Clone(v)
	}
	return out, nil
}
