package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphq/builder"
	"github.com/katalvlaran/graphq/edgelist"
	"github.com/katalvlaran/graphq/query"
	"github.com/katalvlaran/graphq/report"
	"github.com/katalvlaran/graphq/stats"
)

func newInfoCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print vertex count, edge count, average degree and degree distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := input.loadDocument()
			if err != nil {
				return err
			}
			return input.emit(stats.Compute(doc))
		},
	}
}

func newReprCommand(input *Input) *cobra.Command {
	var withMatrix, withList bool
	cmd := &cobra.Command{
		Use:   "repr",
		Short: "Print the adjacency matrix and/or adjacency list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			if !withMatrix && !withList {
				withMatrix, withList = true, true
			}
			return input.withOutput(func(w io.Writer, f report.Format) error {
				return report.EncodeRepresentation(w, f, e.Graph(), withMatrix, withList)
			})
		},
	}
	cmd.Flags().BoolVar(&withMatrix, "matrix", false, "adjacency matrix representation")
	cmd.Flags().BoolVar(&withList, "list", false, "adjacency list representation")

	return cmd
}

func newDFSCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "dfs <start>",
		Short: "Depth-first traversal with levels and parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := vertexArg(args, 0, "start")
			if err != nil {
				return err
			}
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			res, err := e.DepthFirst(start)
			return input.emitOutcome(query.Request{Kind: query.KindDFS, Source: start}, res, err)
		},
	}
}

func newBFSCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "bfs <start>",
		Short: "Breadth-first traversal with levels and parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := vertexArg(args, 0, "start")
			if err != nil {
				return err
			}
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			res, err := e.BreadthFirst(start)
			return input.emitOutcome(query.Request{Kind: query.KindBFS, Source: start}, res, err)
		},
	}
}

func newComponentsCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			return input.emit(e.Components())
		},
	}
}

func newPathCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "path <source> [destination]",
		Short: "Shortest path from source to destination, or to every vertex",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := vertexArg(args, 0, "source")
			if err != nil {
				return err
			}
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				routes, err := e.ShortestPaths(source)
				return input.emitOutcome(query.Request{Kind: query.KindPaths, Source: source}, routes, err)
			}
			target, err := vertexArg(args, 1, "destination")
			if err != nil {
				return err
			}
			route, err := e.ShortestPath(source, target)
			return input.emitOutcome(query.Request{Kind: query.KindPath, Source: source, Target: target}, route, err)
		},
	}
}

func newRunCommand(ctx context.Context, input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the query batch from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := input.cfg.Requests()
			if len(reqs) == 0 {
				return errors.New("no queries configured; add a 'queries' list to the config file")
			}
			e, err := input.newEngine()
			if err != nil {
				return err
			}
			results, err := e.Run(ctx, reqs)
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Err != nil {
					input.logger.WithFields(log.Fields{
						"kind":   r.Request.Kind,
						"source": r.Request.Source,
						"target": r.Request.Target,
					}).WithError(r.Err).Warn("query failed")
				}
			}
			return input.emit(results)
		},
	}
}

func newGenerateCommand(input *Input) *cobra.Command {
	var (
		prob      float64
		seed      int64
		maxWeight int
	)
	cmd := &cobra.Command{
		Use:       "generate <kind> <n>",
		Short:     "Write a generated edge list to the output",
		Long:      fmt.Sprintf("Write a generated edge list to the output.\nKinds: %s", strings.Join(builder.Kinds, ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: builder.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := vertexArg(args, 1, "n")
			if err != nil {
				return err
			}
			con, err := builder.ByName(args[0], n, prob)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if maxWeight > 1 {
				opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(1, maxWeight)))
			}
			set, err := builder.BuildEdges(opts, con)
			if err != nil {
				return err
			}
			doc := edgelist.FromEdges(set.N, set.Edges)
			input.logger.WithFields(log.Fields{
				"kind":     args[0],
				"vertices": set.N,
				"edges":    len(set.Edges),
				"weighted": doc.Weighted,
			}).Debug("edge list generated")

			return input.withOutput(func(w io.Writer, _ report.Format) error {
				return edgelist.Write(w, doc)
			})
		},
	}
	cmd.Flags().Float64Var(&prob, "prob", 0.1, "edge probability for the random kind")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&maxWeight, "max-weight", 1, "draw integer weights from [1, max-weight]; 1 keeps the graph unit-weight")

	return cmd
}
