package separation

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvbap/flow"
	"github.com/katalvlaran/lvbap/mincut"
)

// Epsilon is the numeric tolerance: values ≤ Epsilon count as zero, and a
// cut is violated iff its value is < 2 - Epsilon.
const Epsilon = 1e-6

var (
	// ErrNegativeMaxCount is returned for maxCount < 0, before any weights change.
	ErrNegativeMaxCount = errors.New("separation: maxCount must be non-negative")
	// ErrUnknownEdge is returned when a value refers to an edge the input
	// graph did not have at construction.
	ErrUnknownEdge = errors.New("separation: unknown edge")
)

// Separator finds violated subtour elimination constraints in fractional
// solutions over a fixed input graph. It owns a CutGraph and a flow Network
// built once at construction; every call refreshes the weights.
//
// A Separator is not safe for concurrent use. Give each worker its own.
type Separator struct {
	graph   *CutGraph
	network *flow.Network
	cutter  flow.Cutter
	alg     flow.Algorithm
	log     logrus.FieldLogger
	metrics *Metrics
}

// NewSeparator builds the working graph and flow network for g.
// g must not change structurally while the Separator is in use.
// Complexity: O(V + E).
func NewSeparator(g InputGraph, opts ...Option) (*Separator, error) {
	s := &Separator{
		alg: flow.AlgoDinic,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.graph = NewCutGraph(g)
	s.network = flow.NewNetwork(s.graph.Order(), flow.Options{Epsilon: Epsilon})
	for _, uv := range s.graph.ends {
		if _, err := s.network.AddEdge(uv[0], uv[1], 0); err != nil {
			return nil, fmt.Errorf("separation: build network: %w", err)
		}
	}
	cutter, err := flow.NewCutter(s.alg, s.network)
	if err != nil {
		return nil, fmt.Errorf("separation: %w", err)
	}
	s.cutter = cutter

	s.log.WithFields(logrus.Fields{
		"vertices":  s.graph.Order(),
		"edges":     s.graph.Size(),
		"algorithm": s.alg.String(),
	}).Debug("separator ready")

	return s, nil
}

// Graph exposes the working graph, mainly for inspection.
func (s *Separator) Graph() *CutGraph { return s.graph }

// Algorithm returns the max-flow strategy in use.
func (s *Separator) Algorithm() flow.Algorithm { return s.alg }

// SeparateSubtour returns the most violated subtour cut, or nil when no
// cut has value < 2 - Epsilon. values maps input edge IDs to x_e; missing
// edges count as zero.
//
// Uses one global minimum cut (Stoer–Wagner) over the working graph.
func (s *Separator) SeparateSubtour(values map[string]float64) (*SubtourCut, error) {
	start := time.Now()
	if err := s.graph.Refresh(values); err != nil {
		return nil, err
	}
	if !s.hasCandidates() {
		s.metrics.observe(methodSingle, start, 0)

		return nil, nil
	}

	r, err := mincut.StoerWagner(s.graph.Order(), s.graph.mincutEdges())
	if err != nil {
		return nil, fmt.Errorf("separation: %w", err)
	}
	cut := s.graph.certificate(r.Side)
	if !cut.Violated() {
		s.metrics.observe(methodSingle, start, 0)
		s.log.WithField("value", cut.Value).Debug("no violated subtour")

		return nil, nil
	}
	s.metrics.observe(methodSingle, start, 1)
	s.log.WithFields(logrus.Fields{
		"value": cut.Value,
		"size":  len(cut.Set),
	}).Debug("most violated subtour")

	return &cut, nil
}

// SeparateSubtours returns up to maxCount distinct violated subtour cuts.
// It fixes the first vertex as source and scans every other vertex as sink,
// stopping as soon as maxCount cuts are collected. The result is empty iff
// no subtour elimination constraint is violated. No ordering is implied.
func (s *Separator) SeparateSubtours(values map[string]float64, maxCount int) ([]SubtourCut, error) {
	if maxCount < 0 {
		return nil, ErrNegativeMaxCount
	}
	start := time.Now()
	if err := s.prepare(values); err != nil {
		return nil, err
	}

	cuts := make([]SubtourCut, 0)
	seen := make(map[string]struct{})
	if maxCount > 0 && s.hasCandidates() {
		err := s.scan(func(cut SubtourCut) bool {
			key := cut.Key()
			if _, dup := seen[key]; dup {
				return true
			}
			seen[key] = struct{}{}
			cuts = append(cuts, cut)

			return len(cuts) < maxCount
		})
		if err != nil {
			return nil, err
		}
	}
	s.metrics.observe(methodSubtours, start, len(cuts))
	s.log.WithFields(logrus.Fields{
		"cuts":     len(cuts),
		"maxCount": maxCount,
	}).Debug("subtour separation finished")

	return cuts, nil
}

// SeparateMostViolatedSubtours returns the maxCount distinct violated cuts of
// lowest value found by a full source/sink scan, in ascending order of value.
// Ties keep discovery order. The retained set never exceeds maxCount.
func (s *Separator) SeparateMostViolatedSubtours(values map[string]float64, maxCount int) ([]SubtourCut, error) {
	if maxCount < 0 {
		return nil, ErrNegativeMaxCount
	}
	start := time.Now()
	if err := s.prepare(values); err != nil {
		return nil, err
	}

	best := &worstFirst{}
	kept := make(map[string]struct{})
	if maxCount > 0 && s.hasCandidates() {
		seq := 0
		err := s.scan(func(cut SubtourCut) bool {
			key := cut.Key()
			if _, dup := kept[key]; dup {
				return true
			}
			entry := ranked{cut: cut, seq: seq}
			seq++
			switch {
			case best.Len() < maxCount:
				heap.Push(best, entry)
				kept[key] = struct{}{}
			case entry.before((*best)[0]):
				delete(kept, (*best)[0].cut.Key())
				(*best)[0] = entry
				heap.Fix(best, 0)
				kept[key] = struct{}{}
			}

			return true
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(*best, func(i, j int) bool { return (*best)[i].before((*best)[j]) })
	cuts := make([]SubtourCut, best.Len())
	for i, e := range *best {
		cuts[i] = e.cut
	}
	s.metrics.observe(methodMostViolated, start, len(cuts))
	s.log.WithFields(logrus.Fields{
		"cuts":     len(cuts),
		"maxCount": maxCount,
	}).Debug("most violated subtour separation finished")

	return cuts, nil
}

// prepare refreshes the working weights and pushes them into the network.
func (s *Separator) prepare(values map[string]float64) error {
	if err := s.graph.Refresh(values); err != nil {
		return err
	}
	for i, w := range s.graph.weight {
		if err := s.network.SetCapacity(i, w); err != nil {
			return fmt.Errorf("separation: %w", err)
		}
	}

	return nil
}

func (s *Separator) hasCandidates() bool {
	return s.graph.Order() >= 2 && s.graph.Size() > 0
}

// scan computes a minimum (0, t) cut for t = 1..V-1 and hands every violated
// certificate to visit until it returns false.
func (s *Separator) scan(visit func(SubtourCut) bool) error {
	for t := 1; t < s.graph.Order(); t++ {
		_, side, err := s.cutter.MinCut(0, t)
		if err != nil {
			return fmt.Errorf("separation: min cut (0,%d): %w", t, err)
		}
		s.metrics.minCut(s.alg.String())
		cut := s.graph.certificate(side)
		if !cut.Violated() {
			continue
		}
		s.log.WithFields(logrus.Fields{
			"sink":  s.graph.ids[t],
			"value": cut.Value,
		}).Trace("violated s-t cut")
		if !visit(cut) {
			return nil
		}
	}

	return nil
}

// ranked orders cuts by value, then by discovery sequence.
type ranked struct {
	cut SubtourCut
	seq int
}

func (r ranked) before(o ranked) bool {
	if r.cut.Value != o.cut.Value {
		return r.cut.Value < o.cut.Value
	}

	return r.seq < o.seq
}

// worstFirst is a max-heap: the root is the cut to evict next.
type worstFirst []ranked

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return h[j].before(h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x any)        { *h = append(*h, x.(ranked)) }
func (h *worstFirst) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
