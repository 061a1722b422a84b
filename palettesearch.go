package palettesearch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/palettesearch/colorspace"
	"github.com/hupe1980/palettesearch/distance"
	"github.com/hupe1980/palettesearch/embedding"
	"github.com/hupe1980/palettesearch/index/annoy"
)

// Match is a single search hit: an indexed palette and its Euclidean
// distance to the query in embedding space.
type Match struct {
	// Palette is the palette string exactly as passed to BuildFromPalettes.
	Palette string

	// Distance is the Euclidean distance between the query embedding and
	// this palette's embedding. Smaller is more similar.
	Distance float32
}

// built is the immutable result of a successful BuildFromPalettes. It is
// swapped in atomically so concurrent readers always see a complete
// collection or none at all.
type built struct {
	index    *annoy.Index
	palettes []string
}

// PaletteSearch finds visually similar color palettes. Palettes are
// five-color hex strings; similarity is Euclidean distance between
// embeddings produced by the configured provider over the palettes'
// CIE-Lab representation.
//
// A PaletteSearch is safe for concurrent use. BuildFromPalettes replaces
// the indexed collection atomically; queries running against the previous
// collection are unaffected.
type PaletteSearch struct {
	provider embedding.Provider
	opts     options
	state    atomic.Pointer[built]
}

// New creates a PaletteSearch backed by the given embedding provider.
// The service is empty until BuildFromPalettes succeeds.
func New(provider embedding.Provider, optFns ...Option) *PaletteSearch {
	return &PaletteSearch{
		provider: provider,
		opts:     applyOptions(optFns),
	}
}

// BuildFromPalettes parses, embeds and indexes the given palette
// collection, replacing any previously indexed collection.
//
// The build is atomic: if any palette is malformed, the provider fails,
// or indexing fails, the previous collection (if any) stays queryable and
// the error is returned. Malformed palettes are reported with their
// position in the input.
func (ps *PaletteSearch) BuildFromPalettes(ctx context.Context, palettes []string) error {
	start := time.Now()

	err := ps.buildFromPalettes(ctx, palettes)

	ps.opts.metricsCollector.RecordBuild(len(palettes), time.Since(start), err)
	ps.opts.logger.LogBuild(ctx, len(palettes), time.Since(start), err)

	return err
}

func (ps *PaletteSearch) buildFromPalettes(ctx context.Context, palettes []string) error {
	if len(palettes) == 0 {
		return ErrNoPalettes
	}

	labVectors := make([][]float32, len(palettes))
	for i, s := range palettes {
		p, err := colorspace.ParsePalette(s)
		if err != nil {
			return fmt.Errorf("palette %d: %w", i, err)
		}
		labVectors[i] = colorspace.PaletteToLabVector(p)
	}

	embeddings, err := ps.provider.BatchEmbed(ctx, labVectors)
	if err != nil {
		return fmt.Errorf("embed palettes: %w", err)
	}
	if len(embeddings) != len(palettes) {
		return &ErrProviderContract{
			Reason: fmt.Sprintf("got %d embeddings for %d palettes", len(embeddings), len(palettes)),
		}
	}

	dim := len(embeddings[0])
	if dim == 0 {
		return &ErrProviderContract{Reason: "empty embedding"}
	}
	for i, e := range embeddings {
		if len(e) != dim {
			return &ErrProviderContract{
				Reason: fmt.Sprintf("embedding %d has dimension %d, expected %d", i, len(e), dim),
			}
		}
	}

	// User index options run first so the provider-derived dimension
	// always wins.
	optFns := append([]func(*annoy.Options){}, ps.opts.indexOptions...)
	optFns = append(optFns, func(o *annoy.Options) { o.Dimension = dim })

	idx, err := annoy.New(optFns...)
	if err != nil {
		return translateError(err)
	}

	for i, e := range embeddings {
		if _, err := idx.Insert(e); err != nil {
			return translateError(fmt.Errorf("index palette %d: %w", i, err))
		}
	}
	if err := idx.Build(ctx); err != nil {
		return translateError(err)
	}

	ps.state.Store(&built{
		index:    idx,
		palettes: append([]string(nil), palettes...),
	})

	return nil
}

// FindNearest returns the k indexed palettes most similar to the query
// palette, ordered by ascending distance. Fewer than k matches are
// returned when the collection is smaller than k.
func (ps *PaletteSearch) FindNearest(ctx context.Context, palette string, k int) ([]Match, error) {
	start := time.Now()

	matches, err := ps.findNearest(ctx, palette, k)

	ps.opts.metricsCollector.RecordSearch(k, time.Since(start), err)
	ps.opts.logger.LogSearch(ctx, k, len(matches), err)

	return matches, err
}

func (ps *PaletteSearch) findNearest(ctx context.Context, palette string, k int) ([]Match, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	b := ps.state.Load()
	if b == nil {
		return nil, ErrNotBuilt
	}

	q, err := ps.embed(ctx, palette)
	if err != nil {
		return nil, err
	}

	results, err := b.index.Search(ctx, q, k)
	if err != nil {
		return nil, translateError(err)
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Palette:  b.palettes[r.ID],
			Distance: r.Distance,
		}
	}

	return matches, nil
}

// Distance computes the exact Euclidean distance between two palettes in
// embedding space. It does not touch the index and works before any build.
func (ps *PaletteSearch) Distance(ctx context.Context, a, b string) (float32, error) {
	start := time.Now()

	d, err := ps.pairDistance(ctx, a, b)

	ps.opts.metricsCollector.RecordDistance(time.Since(start), err)
	ps.opts.logger.LogDistance(ctx, err)

	return d, err
}

func (ps *PaletteSearch) pairDistance(ctx context.Context, a, b string) (float32, error) {
	pa, err := colorspace.ParsePalette(a)
	if err != nil {
		return 0, err
	}
	pb, err := colorspace.ParsePalette(b)
	if err != nil {
		return 0, err
	}

	embeddings, err := ps.provider.BatchEmbed(ctx, [][]float32{
		colorspace.PaletteToLabVector(pa),
		colorspace.PaletteToLabVector(pb),
	})
	if err != nil {
		return 0, fmt.Errorf("embed palettes: %w", err)
	}
	if len(embeddings) != 2 {
		return 0, &ErrProviderContract{
			Reason: fmt.Sprintf("got %d embeddings for 2 palettes", len(embeddings)),
		}
	}
	if len(embeddings[0]) != len(embeddings[1]) {
		return 0, &ErrProviderContract{
			Reason: fmt.Sprintf("inconsistent embedding dimensions %d and %d", len(embeddings[0]), len(embeddings[1])),
		}
	}

	return distance.L2(embeddings[0], embeddings[1]), nil
}

// Embed returns the embedding of a single palette.
func (ps *PaletteSearch) Embed(ctx context.Context, palette string) ([]float32, error) {
	return ps.embed(ctx, palette)
}

func (ps *PaletteSearch) embed(ctx context.Context, palette string) ([]float32, error) {
	p, err := colorspace.ParsePalette(palette)
	if err != nil {
		return nil, err
	}

	embeddings, err := ps.provider.BatchEmbed(ctx, [][]float32{colorspace.PaletteToLabVector(p)})
	if err != nil {
		return nil, fmt.Errorf("embed palette: %w", err)
	}
	if len(embeddings) != 1 {
		return nil, &ErrProviderContract{
			Reason: fmt.Sprintf("got %d embeddings for 1 palette", len(embeddings)),
		}
	}

	return embeddings[0], nil
}

// Len returns the number of indexed palettes, or 0 before the first build.
func (ps *PaletteSearch) Len() int {
	b := ps.state.Load()
	if b == nil {
		return 0
	}
	return len(b.palettes)
}

// Built reports whether a collection has been successfully indexed.
func (ps *PaletteSearch) Built() bool {
	return ps.state.Load() != nil
}
