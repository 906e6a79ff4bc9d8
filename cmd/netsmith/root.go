package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/engine"
	"github.com/katalvlaran/netsmith/kcore"
	"github.com/katalvlaran/netsmith/logger"
	"github.com/katalvlaran/netsmith/pagerank"
	"github.com/katalvlaran/netsmith/paths"
)

// newRootCommand wires every subcommand over one Input.
func newRootCommand(version string) *cobra.Command {
	in := &Input{}
	root := &cobra.Command{
		Use:          "netsmith",
		Short:        "Compute structural statistics over an edge list",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := in.resolve(cmd.Flags()); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(in.LogLevel)
			if err != nil {
				return edgelist.Invalid("log-level", "%v", err)
			}
			l := logger.New(cmd.ErrOrStderr(), level, in.LogJSON)
			cmd.SetContext(logger.WithLogger(cmd.Context(), l))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&in.ConfigPath, "config", "", "YAML config file")
	pf.StringVar(&in.EnvFile, "env-file", ".env", "env file with NETSMITH_* variables")
	pf.StringVarP(&in.Path, "input", "i", "", "edge list file (.csv or .tsv)")
	pf.StringVar(&in.Source, "u-col", "u", "source column")
	pf.StringVar(&in.Target, "v-col", "v", "destination column")
	pf.StringVar(&in.Weight, "w-col", "", "weight column (empty: unweighted)")
	pf.BoolVarP(&in.Directed, "directed", "d", false, "treat edges as directed")
	pf.IntVarP(&in.Nodes, "nodes", "n", 0, "node count (0: derive from indices)")
	pf.StringVarP(&in.Backend, "backend", "b", "auto", "kernel backend: auto, reference or accelerated")
	pf.StringVarP(&in.Out, "out", "o", "-", "output CSV file, - for stdout")
	pf.StringVar(&in.LogLevel, "log-level", "info", "log level")
	pf.BoolVar(&in.LogJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		newDegreeCommand(in),
		newStrengthCommand(in),
		newClusteringCommand(in),
		newComponentsCommand(in),
		newPathsCommand(in),
		newPageRankCommand(in),
		newCommunitiesCommand(in),
		newKCoreCommand(in),
		newCentralityCommand(in),
	)

	return root
}

// session is what every subcommand needs after settings are resolved.
type session struct {
	ctx     context.Context
	el      *edgelist.EdgeList
	backend backend.Backend
	engine  *engine.Dispatcher
	log     logrus.FieldLogger
}

func open(cmd *cobra.Command, in *Input) (*session, error) {
	b, err := in.backend()
	if err != nil {
		return nil, err
	}
	el, err := in.edges()
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	log := logger.Logger(ctx)
	log.WithFields(logrus.Fields{"nodes": el.N(), "edges": el.M(), "directed": el.Directed()}).Debug("edge list loaded")

	return &session{ctx: ctx, el: el, backend: b, engine: engine.New(), log: log}, nil
}

func newDegreeCommand(in *Input) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "degree",
		Short: "Degree of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := degree.ParseMode(mode)
			if err != nil {
				return err
			}
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			deg, err := s.engine.Degree(s.ctx, s.el, m, s.backend)
			if err != nil {
				return err
			}
			return writeColumn(cmd, in.Out, "degree", ints(deg))
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "out", "out, in or total (directed lists)")

	return cmd
}

func newStrengthCommand(in *Input) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Weighted degree of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := degree.ParseMode(mode)
			if err != nil {
				return err
			}
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			st, err := s.engine.Strength(s.ctx, s.el, m, s.backend)
			if err != nil {
				return err
			}
			return writeColumn(cmd, in.Out, "strength", floats(st))
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "out", "out, in or total (directed lists)")

	return cmd
}

func newClusteringCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "clustering",
		Short: "Local clustering coefficient of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			c, err := s.engine.Clustering(s.ctx, s.el, s.backend)
			if err != nil {
				return err
			}
			return writeColumn(cmd, in.Out, "clustering", floats(c))
		},
	}
}

func newComponentsCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Connected component label of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			res, err := s.engine.Components(s.ctx, s.el, s.backend)
			if err != nil {
				return err
			}
			s.log.WithField("components", res.Count).Info("components labelled")
			return writeColumn(cmd, in.Out, "component", ints(res.Labels))
		},
	}
}

func newPathsCommand(in *Input) *cobra.Command {
	var source, target int64
	var weight string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Hop distances from --source, or the mean shortest path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			opts := []paths.Option{paths.WithWeight(weight)}
			switch {
			case source < 0:
				sum, err := s.engine.MeanShortestPath(s.ctx, s.el, s.backend, opts...)
				if err != nil {
					return err
				}
				return writeLine(cmd, in.Out, fmt.Sprintf("mean_shortest_path=%s pairs=%d total=%d",
					formatFloat(sum.Mean), sum.Pairs, sum.Total))
			case target >= 0:
				d, ok, err := s.engine.Distance(s.ctx, s.el, source, target, s.backend, opts...)
				if err != nil {
					return err
				}
				return writeLine(cmd, in.Out, fmt.Sprintf("distance=%s reachable=%t", hops(d), ok))
			default:
				dist, err := s.engine.ShortestPaths(s.ctx, s.el, source, s.backend, opts...)
				if err != nil {
					return err
				}
				out := make([]string, len(dist))
				for i, d := range dist {
					out[i] = hops(d)
				}
				return writeColumn(cmd, in.Out, "distance", out)
			}
		},
	}
	cmd.Flags().Int64Var(&source, "source", -1, "source node (negative: mean shortest path)")
	cmd.Flags().Int64Var(&target, "target", -1, "target node (with --source)")
	cmd.Flags().StringVar(&weight, "weight", "", "weight attribute (accepted; distances are hop counts)")

	return cmd
}

func newPageRankCommand(in *Input) *cobra.Command {
	def := pagerank.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "pagerank",
		Short: "PageRank score of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			pr, err := s.engine.PageRank(s.ctx, s.el, s.backend,
				pagerank.WithDamping(in.PageRank.Damping),
				pagerank.WithTolerance(in.PageRank.Tolerance),
				pagerank.WithMaxIterations(in.PageRank.MaxIterations),
				pagerank.WithHandleDangling(in.PageRank.HandleDangling))
			if err != nil {
				return err
			}
			return writeColumn(cmd, in.Out, "pagerank", floats(pr))
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.PageRank.Damping, "damping", def.Damping, "damping factor in [0, 1]")
	f.Float64Var(&in.PageRank.Tolerance, "tol", def.Tolerance, "L2 convergence tolerance")
	f.IntVar(&in.PageRank.MaxIterations, "max-iter", def.MaxIterations, "maximum iterations")
	f.BoolVar(&in.PageRank.HandleDangling, "dangling", def.HandleDangling, "redistribute dangling-node mass")

	return cmd
}

func newCommunitiesCommand(in *Input) *cobra.Command {
	def := community.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "communities",
		Short: "Community label of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := community.ParseMethod(in.Community.Method)
			if err != nil {
				return err
			}
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			p, err := s.engine.Communities(s.ctx, s.el, s.backend,
				community.WithMethod(method),
				community.WithResolution(in.Community.Resolution),
				community.WithSeed(in.Community.Seed))
			if err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{"communities": p.Count, "modularity": p.Modularity}).Info("partition found")
			return writeColumn(cmd, in.Out, "community", ints(p.Labels))
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Community.Method, "method", def.Method.String(), "louvain or label_propagation")
	f.Float64Var(&in.Community.Resolution, "resolution", def.Resolution, "modularity resolution")
	f.Uint64Var(&in.Community.Seed, "seed", def.Seed, "random seed")

	return cmd
}

func newKCoreCommand(in *Input) *cobra.Command {
	var k int64
	cmd := &cobra.Command{
		Use:   "kcore",
		Short: "Core number of every node, or k-core membership with --k",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			core, err := s.engine.CoreNumbers(s.ctx, s.el, s.backend)
			if err != nil {
				return err
			}
			s.log.WithField("degeneracy", kcore.Degeneracy(core)).Debug("core numbers computed")
			if k < 0 {
				return writeColumn(cmd, in.Out, "core", ints(core))
			}
			out := make([]string, len(core))
			for i, c := range core {
				out[i] = fmt.Sprint(c >= k)
			}
			return writeColumn(cmd, in.Out, fmt.Sprintf("in_%d_core", k), out)
		},
	}
	cmd.Flags().Int64Var(&k, "k", -1, "report membership of the k-core instead of core numbers")

	return cmd
}

func newCentralityCommand(in *Input) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Centrality score of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd, in)
			if err != nil {
				return err
			}
			c, err := s.engine.Centrality(s.ctx, s.el, method, s.backend)
			if err != nil {
				return err
			}
			return writeColumn(cmd, in.Out, method, floats(c))
		},
	}
	cmd.Flags().StringVar(&method, "method", "degree", "degree or pagerank")

	return cmd
}
