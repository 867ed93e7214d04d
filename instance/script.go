package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbap/bap"
	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/tsp"
)

// Decision operations understood by a Script.
const (
	OpFix    = "fix"
	OpRemove = "remove"
)

// Node visiting orders understood by a Script.
const (
	OrderBestBound    = "best-bound"
	OrderBreadthFirst = "breadth-first"
	OrderDepthFirst   = "depth-first"
)

// DecisionSpec names one branching decision on the edge between From and To.
type DecisionSpec struct {
	Op   string `yaml:"op" validate:"oneof=fix remove"`
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}

// NodeSpec declares a search-tree node below Parent (0 is the root).
type NodeSpec struct {
	ID        int            `yaml:"id" validate:"gte=1"`
	Parent    int            `yaml:"parent" validate:"gte=0"`
	Bound     float64        `yaml:"bound"`
	Decisions []DecisionSpec `yaml:"decisions" validate:"dive"`
}

// Script is a recorded branch-and-price tree over one instance graph.
// Visit lists node IDs in the order the replay activates them; when empty
// the nodes are drawn from a frontier ordered by Order and pruned against
// Incumbent.
type Script struct {
	Graph     File       `yaml:"graph"`
	RootBound float64    `yaml:"root_bound"`
	Nodes     []NodeSpec `yaml:"nodes" validate:"dive"`
	Visit     []int      `yaml:"visit"`
	Order     string     `yaml:"order" validate:"omitempty,oneof=best-bound breadth-first depth-first"`
	Incumbent *float64   `yaml:"incumbent,omitempty"`
}

// Replay is a Script resolved against its graph.
type Replay struct {
	Name   string
	Graph  *core.Graph
	Tree   *bap.Tree[*tsp.Restrictions]
	// Values is the fractional solution of the script graph.
	Values map[string]float64
	// Nodes maps script IDs to tree nodes; 0 is the root.
	Nodes  map[int]*bap.Node[*tsp.Restrictions]
	// Visit is the activation order.
	Visit  []*bap.Node[*tsp.Restrictions]
}

// LoadScript reads and resolves the branching script at path.
func LoadScript(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	r, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// ParseScript decodes and resolves a YAML branching script.
func ParseScript(data []byte) (*Replay, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return s.Build()
}

// Build validates s, grows the tree node by node and fixes the visit order.
// Parents must be declared before their children.
func (s *Script) Build() (*Replay, error) {
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("instance: invalid script: %w", err)
	}
	inst, err := s.Graph.Build()
	if err != nil {
		return nil, err
	}
	between := edgeIndex(inst.Graph)

	tree := bap.NewTree[*tsp.Restrictions](s.RootBound)
	r := &Replay{
		Name:   inst.Name,
		Graph:  inst.Graph,
		Tree:   tree,
		Values: inst.Values,
		Nodes:  map[int]*bap.Node[*tsp.Restrictions]{0: tree.Root()},
	}
	for _, ns := range s.Nodes {
		if _, dup := r.Nodes[ns.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, ns.ID)
		}
		parent, ok := r.Nodes[ns.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %d of node %d", ErrUnknownNode, ns.Parent, ns.ID)
		}
		decisions := make([]bap.Decision[*tsp.Restrictions], 0, len(ns.Decisions))
		for _, ds := range ns.Decisions {
			e, ok := between[[2]string{ds.From, ds.To}]
			if !ok {
				return nil, fmt.Errorf("%w: %s-%s in node %d", ErrUnknownEdge, ds.From, ds.To, ns.ID)
			}
			if ds.Op == OpFix {
				decisions = append(decisions, tsp.FixEdge{Edge: e})
			} else {
				decisions = append(decisions, tsp.RemoveEdge{Edge: e})
			}
		}
		n, err := tree.Branch(parent, ns.Bound, decisions...)
		if err != nil {
			return nil, fmt.Errorf("instance: node %d: %w", ns.ID, err)
		}
		r.Nodes[ns.ID] = n
	}

	if len(s.Visit) > 0 {
		for _, id := range s.Visit {
			n, ok := r.Nodes[id]
			if !ok {
				return nil, fmt.Errorf("%w: visit %d", ErrUnknownNode, id)
			}
			r.Visit = append(r.Visit, n)
		}

		return r, nil
	}

	f := bap.NewFrontier(s.comparator())
	for _, ns := range s.Nodes {
		f.Push(r.Nodes[ns.ID])
	}
	if s.Incumbent != nil {
		f.PruneAbove(*s.Incumbent)
	}
	for f.Len() > 0 {
		r.Visit = append(r.Visit, f.Pop())
	}

	return r, nil
}

func (s *Script) comparator() bap.Comparator[*tsp.Restrictions] {
	switch s.Order {
	case OrderBreadthFirst:
		return bap.BreadthFirst[*tsp.Restrictions]
	case OrderDepthFirst:
		return bap.DepthFirst[*tsp.Restrictions]
	default:
		return bap.BestBound[*tsp.Restrictions]
	}
}

// edgeIndex maps ordered endpoint pairs to the lowest-ID edge joining them.
// Undirected edges are reachable from both orientations.
func edgeIndex(g *core.Graph) map[[2]string]core.Edge {
	idx := make(map[[2]string]core.Edge, 2*g.EdgeCount())
	put := func(k [2]string, e *core.Edge) {
		if _, ok := idx[k]; !ok {
			idx[k] = *e
		}
	}
	for _, e := range g.Edges() {
		put([2]string{e.From, e.To}, e)
		if !e.Directed {
			put([2]string{e.To, e.From}, e)
		}
	}

	return idx
}
