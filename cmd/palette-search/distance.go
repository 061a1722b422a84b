package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewDistanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <palette-a> <palette-b>",
		Short: "Compute the perceptual distance between two palettes",
		Long:  `Compute the exact Euclidean distance between two palettes in embedding space.`,
		Args:  cobra.ExactArgs(2),
		RunE:  makeDistanceRunner(),
	}

	return cmd
}

func makeDistanceRunner() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ps := newService(cmd)

		d, err := ps.Distance(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("distance: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Distance between palette '%s' and '%s' is %.4f\n", args[0], args[1], d)
		return nil
	}
}
