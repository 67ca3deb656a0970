package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvkit/astar"
	"github.com/katalvlaran/lvkit/internal/mapfile"
	"github.com/katalvlaran/lvkit/spatial"
)

// endpoint is an intersection given either by ID or by a coordinate to snap.
type endpoint struct {
	name string
	id   int
	xy   string
}

func (e *endpoint) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&e.id, e.name, 0, "Intersection ID")
	cmd.Flags().StringVar(&e.xy, e.name+"-xy", "", "Coordinate \"x,y\"; snaps to the nearest intersection")
}

// resolve returns the intersection ID, snapping a coordinate if one was given.
func (e *endpoint) resolve(cmd *cobra.Command, m *spatial.Map) (int, error) {
	byID := cmd.Flags().Changed(e.name)
	byXY := cmd.Flags().Changed(e.name + "-xy")
	if byID == byXY {
		return 0, fmt.Errorf("exactly one of --%s and --%s-xy is required", e.name, e.name)
	}
	if byID {
		return e.id, nil
	}

	p, err := parsePoint(e.xy)
	if err != nil {
		return 0, fmt.Errorf("--%s-xy: %w", e.name, err)
	}
	id, err := m.Nearest(p)
	if err != nil {
		return 0, err
	}
	log.WithFields(logrus.Fields{"point": e.xy, "intersection": id}).Debugf("snapped --%s", e.name)

	return id, nil
}

func parsePoint(s string) (orb.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, fmt.Errorf("want \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

func searchOptions(dijkstra bool, maxCost float64) []astar.Option {
	var opts []astar.Option
	if dijkstra {
		opts = append(opts, astar.WithHeuristic(astar.ZeroHeuristic))
	}
	if maxCost > 0 {
		opts = append(opts, astar.WithMaxCost(maxCost))
	}
	return opts
}

func newRouteCmd() *cobra.Command {
	var (
		mapPath  string
		dijkstra bool
		maxCost  float64
		from     = endpoint{name: "from"}
		to       = endpoint{name: "to"}
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest route between two intersections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapfile.Load(mapPath)
			if err != nil {
				return err
			}
			start, err := from.resolve(cmd, m)
			if err != nil {
				return err
			}
			goal, err := to.resolve(cmd, m)
			if err != nil {
				return err
			}

			res, err := astar.Search(m, start, goal, searchOptions(dijkstra, maxCost)...)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"intersections": m.Len(),
				"roads":         m.RoadCount(),
				"expanded":      res.Expanded,
			}).Debug("search finished")

			printResult(cmd, start, goal, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "Map file (YAML or JSON)")
	cmd.Flags().BoolVar(&dijkstra, "dijkstra", false, "Disable the distance heuristic")
	cmd.Flags().Float64Var(&maxCost, "max-cost", 0, "Ignore routes longer than this (0 = unlimited)")
	from.register(cmd)
	to.register(cmd)
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func printResult(cmd *cobra.Command, start, goal int, res astar.Result) {
	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintf(out, "%s from %d to %d\n", color.YellowString("no route"), start, goal)
		return
	}
	hops := make([]string, len(res.Path))
	for i, id := range res.Path {
		hops[i] = strconv.Itoa(id)
	}
	fmt.Fprintf(out, "route: %s\n", color.GreenString(strings.Join(hops, " -> ")))
	fmt.Fprintf(out, "cost:  %s\n", color.CyanString("%.3f", res.Cost))
}

func newRoutesCmd() *cobra.Command {
	var (
		mapPath  string
		pairs    []string
		workers  int
		dijkstra bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Answer many start:goal queries in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapfile.Load(mapPath)
			if err != nil {
				return err
			}
			queries, err := parsePairs(pairs)
			if err != nil {
				return err
			}

			results, err := astar.ShortestPaths(cmd.Context(), m, queries, workers, searchOptions(dijkstra, 0)...)
			if err != nil {
				return err
			}
			for i, q := range queries {
				printResult(cmd, q.Start, q.Goal, results[i])
			}
			log.WithField("queries", len(queries)).Debug("batch finished")

			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "Map file (YAML or JSON)")
	cmd.Flags().StringSliceVar(&pairs, "pair", nil, "Query as start:goal (repeatable or comma-separated)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel searches (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&dijkstra, "dijkstra", false, "Disable the distance heuristic")
	_ = cmd.MarkFlagRequired("map")
	_ = cmd.MarkFlagRequired("pair")

	return cmd
}

func parsePairs(pairs []string) ([]astar.Query, error) {
	queries := make([]astar.Query, 0, len(pairs))
	for _, p := range pairs {
		a, b, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q: want start:goal", p)
		}
		start, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
		goal, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
		queries = append(queries, astar.Query{Start: start, Goal: goal})
	}
	return queries, nil
}
