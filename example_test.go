package palettesearch_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/palettesearch"
	"github.com/hupe1980/palettesearch/embedding"
	"github.com/hupe1980/palettesearch/index/annoy"
)

// Example demonstrates indexing a palette collection and querying it.
func Example() {
	ctx := context.Background()

	ps := palettesearch.New(embedding.LabIdentity{})

	palettes := []string{
		"85837c-d2d1d0-9b7360-e4e3e2-b5ab98",
		"91928f-204034-a3a7a5-799b7c-3b6b58",
		"ffffff-d3cac1-ded5cb-171512-100d0a",
	}
	if err := ps.BuildFromPalettes(ctx, palettes); err != nil {
		log.Fatal(err)
	}

	// A palette from the collection is always its own nearest neighbor.
	matches, err := ps.FindNearest(ctx, palettes[1], 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(matches[0].Palette)
	// Output: 91928f-204034-a3a7a5-799b7c-3b6b58
}

// Example_distance computes the perceptual distance between two palettes
// without building an index.
func Example_distance() {
	ctx := context.Background()

	ps := palettesearch.New(embedding.LabIdentity{})

	d, err := ps.Distance(ctx,
		"85837c-d2d1d0-9b7360-e4e3e2-b5ab98",
		"85837c-d2d1d0-9b7360-e4e3e2-b5ab98",
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.0f\n", d)
	// Output: 0
}

// Example_indexOptions tunes the underlying forest index.
func Example_indexOptions() {
	ctx := context.Background()

	ps := palettesearch.New(embedding.LabIdentity{},
		palettesearch.WithIndexOptions(func(o *annoy.Options) {
			o.NumTrees = 25
			o.Seed = 42
		}),
	)

	err := ps.BuildFromPalettes(ctx, []string{
		"989b92-5a5a35-484826-495a42-957253",
		"6e7b54-ededab-484826-495a42-5e4127",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ps.Len())
	// Output: 2
}
