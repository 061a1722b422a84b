// Package palettesearch finds visually similar five-color palettes.
//
// A palette is a string of five hex colors joined by dashes, e.g.
// "8f7358-8e463d-d4d1cc-26211f-f2f0f3". Palettes are converted to CIE-Lab,
// embedded by a pluggable provider and indexed in a forest of randomized
// hyperplane trees for fast approximate nearest-neighbor search.
//
// # Quick Start
//
//	ctx := context.Background()
//	ps := palettesearch.New(embedding.LabIdentity{})
//
//	err := ps.BuildFromPalettes(ctx, palettes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, _ := ps.FindNearest(ctx, "aaaa8f-282313-53482b-8a6d45-787f7a", 10)
//	for _, m := range matches {
//	    fmt.Println(m.Palette, m.Distance)
//	}
//
// # Lifecycle
//
// BuildFromPalettes is all-or-nothing: on any parse, embedding or indexing
// error the previous collection stays in place. After a successful build
// the service is safe for unlimited concurrent FindNearest calls; a later
// rebuild swaps the collection atomically.
//
// # Tuning
//
// Index behavior (tree count, leaf capacity, search breadth, seed) is
// forwarded through WithIndexOptions:
//
//	ps := palettesearch.New(provider, palettesearch.WithIndexOptions(func(o *annoy.Options) {
//	    o.NumTrees = 25
//	    o.Seed = 42
//	}))
package palettesearch
