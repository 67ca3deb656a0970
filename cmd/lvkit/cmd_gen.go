package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvkit/builder"
	"github.com/katalvlaran/lvkit/internal/mapfile"
	"github.com/katalvlaran/lvkit/spatial"
)

func newGenCmd() *cobra.Command {
	var (
		out     string
		spacing float64
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a map file",
	}
	cmd.PersistentFlags().StringVar(&out, "out", "", "Output file (.yaml or .json; default stdout as YAML)")
	cmd.PersistentFlags().Float64Var(&spacing, "spacing", 1, "Distance between neighboring intersections")
	cmd.PersistentFlags().Int64Var(&seed, "seed", 1, "Random seed")

	write := func(cmd *cobra.Command, cons builder.Constructor, extra ...builder.BuilderOption) error {
		bopts := append([]builder.BuilderOption{builder.WithSeed(seed)}, extra...)
		m, err := builder.BuildMap(bopts, cons)
		if err != nil {
			return err
		}
		logMap(m)
		if out == "" {
			return mapfile.Encode(cmd.OutOrStdout(), m, mapfile.YAML)
		}
		return mapfile.Save(out, m)
	}

	var n int
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Intersections on a straight line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(cmd, builder.Path(n, spacing))
		},
	}
	pathCmd.Flags().IntVar(&n, "n", 10, "Number of intersections")

	var rows, cols int
	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "Rectangular street grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(cmd, builder.Grid(rows, cols, spacing))
		},
	}
	gridCmd.Flags().IntVar(&rows, "rows", 10, "Grid rows")
	gridCmd.Flags().IntVar(&cols, "cols", 10, "Grid columns")

	var (
		points int
		radius float64
	)
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Random intersections in a --spacing sized square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(spacing > 0) {
				return fmt.Errorf("--spacing must be positive, got %g", spacing)
			}
			return write(cmd, builder.RandomGeometric(points, radius), builder.WithScale(spacing))
		},
	}
	randomCmd.Flags().IntVar(&points, "n", 100, "Number of intersections")
	randomCmd.Flags().Float64Var(&radius, "radius", 0.15, "Connect intersections at most this far apart")

	cmd.AddCommand(pathCmd, gridCmd, randomCmd)
	return cmd
}

func logMap(m *spatial.Map) {
	log.WithFields(logrus.Fields{
		"intersections": m.Len(),
		"roads":         m.RoadCount(),
		"components":    len(m.Components()),
	}).Debug("map generated")
}
