package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbap/config"
	"github.com/katalvlaran/lvbap/instance"
	"github.com/katalvlaran/lvbap/separation"
)

// report is the outcome of separating one instance file.
type report struct {
	path string
	name string
	cuts []separation.SubtourCut
}

func newSeparateCmd(a *app) *cobra.Command {
	var (
		mode      string
		algorithm string
		maxCuts   int
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "separate INSTANCE...",
		Short: "Find violated subtour elimination cuts in YAML instances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("mode") {
				a.cfg.Separation.Mode = mode
			}
			if flags.Changed("algorithm") {
				a.cfg.Separation.Algorithm = algorithm
			}
			if flags.Changed("max-cuts") {
				a.cfg.Separation.MaxCuts = maxCuts
			}
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			reports, err := a.separateAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			printReports(cmd.OutOrStdout(), reports)

			return a.flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", config.ModeMostViolated, "single | subtours | most-violated")
	f.StringVar(&algorithm, "algorithm", "dinic", "dinic | edmonds-karp | ford-fulkerson | push-relabel")
	f.IntVar(&maxCuts, "max-cuts", 10, "cut limit for subtours and most-violated modes")
	f.IntVarP(&workers, "workers", "w", 4, "instances separated in parallel")

	return cmd
}

// separateAll runs every instance on its own Separator, at most
// cfg.Workers at a time. Reports keep the argument order.
func (a *app) separateAll(ctx context.Context, paths []string) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	alg, err := a.cfg.Algorithm()
	if err != nil {
		return nil, err
	}
	metrics := separation.NewMetrics(a.reg)

	reports := make([]report, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inst, err := instance.Load(path)
			if err != nil {
				return err
			}
			log := a.log.WithFields(logrus.Fields{"instance": inst.Name, "path": path})
			sep, err := separation.NewSeparator(inst.Graph,
				separation.WithMaxFlow(alg),
				separation.WithLogger(log),
				separation.WithMetrics(metrics),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			cuts, err := separate(sep, a.cfg.Separation, inst.Values)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report{path: path, name: inst.Name, cuts: cuts}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// separate dispatches on the configured mode.
func separate(sep *separation.Separator, sc config.SeparationConfig, values map[string]float64) ([]separation.SubtourCut, error) {
	switch sc.Mode {
	case config.ModeSingle:
		cut, err := sep.SeparateSubtour(values)
		if err != nil || cut == nil {
			return nil, err
		}

		return []separation.SubtourCut{*cut}, nil
	case config.ModeSubtours:
		return sep.SeparateSubtours(values, sc.MaxCuts)
	default:
		return sep.SeparateMostViolatedSubtours(values, sc.MaxCuts)
	}
}

func printReports(w io.Writer, reports []report) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %d violated\n", r.name, len(r.cuts))
		for _, c := range r.cuts {
			fmt.Fprintf(w, "  %s\n", c)
		}
	}
}
