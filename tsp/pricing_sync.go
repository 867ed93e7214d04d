package tsp

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvbap/bap"
	"github.com/katalvlaran/lvbap/core"
)

// PricingSync is a bap.Listener that keeps a pricing graph consistent with
// the edge-branching decisions currently applied:
//
//   - RemoveEdge deletes the edge from the graph.
//   - FixEdge counts towards the fixed degree of both endpoints; once a
//     vertex has two fixed edges, every other incident edge is deleted,
//     since no tour can use it.
//
// Every notification records exactly what it deleted, and reversal
// re-inserts those edges under their original IDs. This relies on the
// manager's LIFO ordering.
type PricingSync struct {
	graph    *core.Graph
	fixed    map[string]int // edge ID → times fixed
	fixedDeg map[string]int // vertex → fixed incident edges
	undo     [][]core.Edge
	log      logrus.FieldLogger
}

var _ bap.Listener[*Restrictions] = (*PricingSync)(nil)

// NewPricingSync attaches to graph, which the listener mutates in place.
func NewPricingSync(graph *core.Graph, log logrus.FieldLogger) *PricingSync {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &PricingSync{
		graph:    graph,
		fixed:    make(map[string]int),
		fixedDeg: make(map[string]int),
		log:      log,
	}
}

// Graph returns the pricing graph.
func (p *PricingSync) Graph() *core.Graph { return p.graph }

// DecisionPerformed removes the edges the decision excludes.
func (p *PricingSync) DecisionPerformed(d bap.Decision[*Restrictions]) error {
	var removed []core.Edge
	var err error
	switch dec := d.(type) {
	case RemoveEdge:
		removed, err = p.drop([]string{dec.Edge.ID})
	case FixEdge:
		p.fixed[dec.Edge.ID]++
		p.fixedDeg[dec.Edge.From]++
		p.fixedDeg[dec.Edge.To]++
		for _, v := range []string{dec.Edge.From, dec.Edge.To} {
			if p.fixedDeg[v] != 2 {
				continue
			}
			var more []core.Edge
			more, err = p.saturate(v)
			removed = append(removed, more...)
			if err != nil {
				break
			}
		}
	default:
		return fmt.Errorf("tsp: pricing sync: unsupported decision %T", d)
	}
	p.undo = append(p.undo, removed)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"decision": d, "removed": len(removed)}).Trace("pricing graph updated")

	return nil
}

// DecisionReversed re-inserts what the matching DecisionPerformed removed.
func (p *PricingSync) DecisionReversed(d bap.Decision[*Restrictions]) error {
	if len(p.undo) == 0 {
		return fmt.Errorf("tsp: pricing sync: reversal of %v without history", d)
	}
	removed := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	for i := len(removed) - 1; i >= 0; i-- {
		if err := p.graph.InsertEdge(removed[i]); err != nil {
			return fmt.Errorf("tsp: pricing sync: restore %s: %w", removed[i].ID, err)
		}
	}
	if fix, ok := d.(FixEdge); ok {
		p.fixedDeg[fix.Edge.From]--
		p.fixedDeg[fix.Edge.To]--
		if p.fixed[fix.Edge.ID]--; p.fixed[fix.Edge.ID] == 0 {
			delete(p.fixed, fix.Edge.ID)
		}
	}
	p.log.WithFields(logrus.Fields{"decision": d, "restored": len(removed)}).Trace("pricing graph restored")

	return nil
}

// saturate deletes every non-fixed edge incident to v.
func (p *PricingSync) saturate(v string) ([]core.Edge, error) {
	incident, err := p.graph.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("tsp: pricing sync: %w", err)
	}
	ids := make([]string, 0, len(incident))
	for _, e := range incident {
		if p.fixed[e.ID] == 0 {
			ids = append(ids, e.ID)
		}
	}

	return p.drop(ids)
}

// drop removes the listed edges that are still present.
func (p *PricingSync) drop(ids []string) ([]core.Edge, error) {
	var removed []core.Edge
	for _, id := range ids {
		if _, err := p.graph.Edge(id); err != nil {
			continue
		}
		e, err := p.graph.RemoveEdge(id)
		if err != nil {
			return removed, fmt.Errorf("tsp: pricing sync: remove %s: %w", id, err)
		}
		removed = append(removed, e)
	}

	return removed, nil
}
