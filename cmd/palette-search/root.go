package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/palettesearch"
	"github.com/hupe1980/palettesearch/embedding"
	"github.com/hupe1980/palettesearch/index/annoy"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "palette-search",
		Short:         "Similarity search over five-color palettes",
		Long:          `Find visually similar color palettes via CIE-Lab embeddings and approximate nearest-neighbor search.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewDistanceCmd())

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Int("trees", annoy.DefaultNumTrees, "Number of trees in the index forest")
	cmd.PersistentFlags().Int("leaf-capacity", annoy.DefaultLeafCapacity, "Maximum items per leaf node")
	cmd.PersistentFlags().Int("search-k", 0, "Candidates inspected per query (0 = trees*k)")
	cmd.PersistentFlags().Int64("seed", 1, "Seed for the index build randomness")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON instead of text")
}

// newService builds a PaletteSearch wired from the persistent flags.
func newService(cmd *cobra.Command) *palettesearch.PaletteSearch {
	trees, _ := cmd.Flags().GetInt("trees")
	leafCapacity, _ := cmd.Flags().GetInt("leaf-capacity")
	searchK, _ := cmd.Flags().GetInt("search-k")
	seed, _ := cmd.Flags().GetInt64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	opts := []palettesearch.Option{
		palettesearch.WithIndexOptions(func(o *annoy.Options) {
			o.NumTrees = trees
			o.LeafCapacity = leafCapacity
			o.SearchK = searchK
			o.Seed = seed
		}),
	}
	if verbose {
		if logJSON {
			opts = append(opts, palettesearch.WithLogger(palettesearch.NewJSONLogger(slog.LevelDebug)))
		} else {
			opts = append(opts, palettesearch.WithLogLevel(slog.LevelDebug))
		}
	}

	return palettesearch.New(embedding.LabIdentity{}, opts...)
}
