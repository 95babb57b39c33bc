// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/coordinator"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/render"
	"github.com/katalvlaran/algoviz/scenario"
)

// Shapes accepted by demo --shape.
var shapes = []string{"cycle", "path", "star", "wheel", "grid", "complete", "random"}

func newRunCmd(a *app) *cobra.Command {
	var path, algo string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate a traversal over a YAML scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			alg := s.Algorithm
			if algo != "" || !alg.Valid() {
				if alg, err = parseAlgorithm(algo); err != nil {
					return err
				}
			}

			var opts []core.GraphOption
			if a.cfg.Directed {
				opts = append(opts, core.WithDirected(true))
			}
			if s.Radius == 0 {
				opts = append(opts, core.WithNodeRadius(a.cfg.NodeRadius))
			}
			g, ids, err := s.Build(opts...)
			if err != nil {
				return err
			}
			return a.execute(cmd.Context(), g, scenario.Labels(ids), alg)
		},
	}
	cmd.Flags().StringVarP(&path, "scenario", "s", "", "scenario file")
	cmd.Flags().StringVarP(&algo, "algorithm", "a", "", "bfs, dfs or dijkstra (default: the scenario's, else bfs)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		shape     string
		n         int
		algo      string
		seed      int64
		p         float64
		maxWeight int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Animate a traversal over a generated graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := parseAlgorithm(algo)
			if err != nil {
				return err
			}
			cons, err := shapeConstructor(shape, n, p)
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			if maxWeight > 1 {
				bopts = append(bopts, builder.WithUniformWeight(1, maxWeight))
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(a.cfg.Directed), core.WithNodeRadius(a.cfg.NodeRadius)},
				bopts, cons)
			if err != nil {
				return err
			}
			return a.execute(cmd.Context(), g, nil, alg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&shape, "shape", "cycle", strings.Join(shapes, ", "))
	f.IntVarP(&n, "nodes", "n", 6, "node count (grid: side length)")
	f.StringVarP(&algo, "algorithm", "a", "bfs", "bfs, dfs or dijkstra")
	f.Int64Var(&seed, "seed", 1, "seed for random shapes and weights")
	f.Float64Var(&p, "p", 0.3, "edge probability for --shape random")
	f.Int64Var(&maxWeight, "max-weight", 1, "draw edge weights uniformly from [1, max-weight]")
	return cmd
}

func parseAlgorithm(name string) (algorithms.Algorithm, error) {
	if name == "" {
		return algorithms.BFS, nil
	}
	return algorithms.Parse(name)
}

func shapeConstructor(shape string, n int, p float64) (builder.Constructor, error) {
	switch strings.ToLower(shape) {
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "grid":
		return builder.Grid(n, n), nil
	case "complete":
		return builder.Complete(n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	}
	return nil, errors.Errorf("unknown shape %q (want one of %s)", shape, strings.Join(shapes, ", "))
}

// execute runs algo over g, draws frames until the run is terminal, then
// prints the final frame and the outcome.
func (a *app) execute(ctx context.Context, g *core.Graph, labels map[string]string, algo algorithms.Algorithm) error {
	reg := prometheus.NewRegistry()
	c := coordinator.New(g,
		coordinator.WithPacing(a.cfg.Pacing),
		coordinator.WithLogger(a.log),
		coordinator.WithMetrics(coordinator.NewMetrics(reg)),
	)

	// The display outlives the run's context so the last frame is drawn
	// after a SIGINT.
	displayCtx, stopDisplay := context.WithCancel(context.WithoutCancel(ctx))
	defer stopDisplay()

	if _, err := c.Run(ctx, algo); err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(displayCtx)
	opts := []render.Option{render.WithLabels(labels), render.WithColor(a.color)}
	eg.Go(func() error {
		return render.Loop(egCtx, c, a.out, a.cfg.FrameRate, opts...)
	})
	eg.Go(func() error {
		defer stopDisplay()
		return c.Wait(egCtx)
	})
	if a.metricsAddr != "" {
		eg.Go(func() error { return serveMetrics(egCtx, a.metricsAddr, reg) })
	}
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		c.Cancel()
		return err
	}

	st := c.Status()
	if err := render.WriteFrame(a.out, 0, st.Seq, c.Snapshot(), opts...); err != nil {
		return err
	}
	if st.Err != nil {
		return st.Err
	}
	if st.State == coordinator.Cancelled {
		_, err := fmt.Fprintln(a.out, "cancelled")
		return err
	}
	_, err := fmt.Fprintf(a.out, "%s %s in %d steps (%s)\n",
		st.Algorithm, st.State, st.Steps, st.Ended.Sub(st.Started).Round(time.Millisecond))
	return err
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "metrics listener on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err = srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}
