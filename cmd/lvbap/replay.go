package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbap/bap"
	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/instance"
	"github.com/katalvlaran/lvbap/separation"
	"github.com/katalvlaran/lvbap/tsp"
)

func newReplayCmd(a *app) *cobra.Command {
	var withCuts bool
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Drive a recorded branch-and-price tree through the state manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := instance.LoadScript(args[0])
			if err != nil {
				return err
			}
			if err := a.replay(cmd.OutOrStdout(), r, withCuts); err != nil {
				return err
			}

			return a.flush()
		},
	}
	cmd.Flags().BoolVar(&withCuts, "separate", false, "separate the script solution on every node's pricing graph")

	return cmd
}

// replay visits every node of r in order, keeping a pricing graph in sync
// through the manager's listener chain, and restores the root at the end.
func (a *app) replay(w io.Writer, r *instance.Replay, withCuts bool) error {
	log := a.log.WithField("script", r.Name)
	pricing := tsp.NewPricingSync(r.Graph.Clone(), log)
	m := bap.NewStateManager(r.Tree, tsp.NewRestrictions(),
		bap.WithLogger(log),
		bap.WithMetrics(bap.NewMetrics(a.reg)),
	)
	m.AddListener(pricing)

	var sepMetrics *separation.Metrics
	if withCuts {
		sepMetrics = separation.NewMetrics(a.reg)
	}
	for _, n := range r.Visit {
		if err := m.Transition(n); err != nil {
			return fmt.Errorf("replay %s: %w", r.Name, err)
		}
		st := m.State()
		fmt.Fprintf(w, "node %d depth=%d bound=%g fixed=%v forbidden=%v edges=%d",
			n.ID(), n.Depth(), n.Bound(), st.Fixed(), st.Forbidden(), pricing.Graph().EdgeCount())
		if withCuts {
			cuts, err := a.nodeCuts(pricing.Graph(), r.Values, sepMetrics, log.WithField("node", n.ID()))
			if err != nil {
				return fmt.Errorf("replay %s node %d: %w", r.Name, n.ID(), err)
			}
			fmt.Fprintf(w, " cuts=%d", len(cuts))
		}
		fmt.Fprintln(w)
	}

	return m.Restore()
}

// nodeCuts separates values restricted to the edges still present in g.
func (a *app) nodeCuts(
	g *core.Graph,
	values map[string]float64,
	metrics *separation.Metrics,
	log logrus.FieldLogger,
) ([]separation.SubtourCut, error) {
	alg, err := a.cfg.Algorithm()
	if err != nil {
		return nil, err
	}
	sep, err := separation.NewSeparator(g,
		separation.WithMaxFlow(alg),
		separation.WithLogger(log),
		separation.WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}
	local := make(map[string]float64, len(values))
	for eid, x := range values {
		if _, err := g.Edge(eid); err == nil {
			local[eid] = x
		}
	}

	return separate(sep, a.cfg.Separation, local)
}
