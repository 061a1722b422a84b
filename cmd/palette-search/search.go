package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query-palette]",
		Short: "Find the most similar palettes",
		Long: `Index a palette collection and print the palettes most similar to the query.

Palettes are five dash-separated hex colors, e.g. "aaaa8f-282313-53482b-8a6d45-787f7a".
Without --palettes-file the built-in sample collection is searched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: makeSearchRunner(),
	}

	cmd.Flags().IntP("number", "n", 10, "Number of neighbors to return")
	cmd.Flags().String("palettes-file", "", "File with one palette per line to index instead of the samples")

	return cmd
}

func makeSearchRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		query := defaultQuery
		if len(args) == 1 {
			query = args[0]
		}
		k, _ := cmd.Flags().GetInt("number")
		palettesFile, _ := cmd.Flags().GetString("palettes-file")

		palettes := samplePalettes
		if palettesFile != "" {
			loaded, err := readPalettesFile(palettesFile)
			if err != nil {
				return fmt.Errorf("read palettes: %w", err)
			}
			palettes = loaded
		}

		ps := newService(cmd)
		if err := ps.BuildFromPalettes(cmd.Context(), palettes); err != nil {
			return fmt.Errorf("build index: %w", err)
		}

		matches, err := ps.FindNearest(cmd.Context(), query, k)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "The %d nearest neighbor(s) of palette '%s' are:\n", len(matches), query)
		for _, m := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "'%s': %.2f\n", m.Palette, m.Distance)
		}

		return nil
	}
}

// readPalettesFile reads one palette per line, skipping blanks and # comments.
func readPalettesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var palettes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		palettes = append(palettes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return palettes, nil
}
