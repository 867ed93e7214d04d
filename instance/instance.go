package instance

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/tsp"
)

var (
	// ErrTourAndValues is returned when an instance sets both a tour and edge x values.
	ErrTourAndValues = errors.New("instance: tour and edge values are mutually exclusive")
	// ErrUnknownEdge is returned when a decision names a pair with no edge.
	ErrUnknownEdge = errors.New("instance: no edge between vertices")
	// ErrUnknownNode is returned when a node or visit references an undeclared node.
	ErrUnknownNode = errors.New("instance: unknown node")
	// ErrDuplicateNode is returned when a node ID is declared twice.
	ErrDuplicateNode = errors.New("instance: duplicate node")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EdgeSpec is one edge of a YAML instance. X is the fractional LP value.
type EdgeSpec struct {
	From     string  `yaml:"from" validate:"required"`
	To       string  `yaml:"to" validate:"required"`
	Cost     float64 `yaml:"cost"`
	X        float64 `yaml:"x" validate:"gte=0"`
	Directed *bool   `yaml:"directed,omitempty"`
}

// File is the YAML layout of a separation instance:
//
//	name: two-triangles
//	directed: false
//	vertices: [isolated]     # optional extra vertices
//	edges:
//	  - {from: "1", to: "2", cost: 3, x: 0.5}
//	tour: ["1", "2", …]      # optional, replaces every x with the tour's 0/1 values
type File struct {
	Name     string     `yaml:"name" validate:"required"`
	Directed bool       `yaml:"directed"`
	Vertices []string   `yaml:"vertices" validate:"dive,required"`
	Edges    []EdgeSpec `yaml:"edges" validate:"dive"`
	Tour     []string   `yaml:"tour,omitempty"`
}

// Instance is a loaded graph plus its fractional solution keyed by edge ID.
type Instance struct {
	Name   string
	Graph  *core.Graph
	Values map[string]float64
}

// Load reads and builds the instance at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse decodes and builds a YAML instance.
func Parse(data []byte) (*Instance, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return f.Build()
}

// Build validates f and materialises its graph and values.
func (f *File) Build() (*Instance, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("instance: invalid: %w", err)
	}
	g, err := f.graph()
	if err != nil {
		return nil, err
	}
	inst := &Instance{Name: f.Name, Graph: g, Values: make(map[string]float64)}

	if len(f.Tour) > 0 {
		for _, e := range f.Edges {
			if e.X != 0 {
				return nil, ErrTourAndValues
			}
		}
		if inst.Values, err = tsp.TourValues(g, f.Tour); err != nil {
			return nil, fmt.Errorf("instance: %w", err)
		}

		return inst, nil
	}

	edges := g.Edges()
	for i, e := range f.Edges {
		if e.X != 0 {
			inst.Values[edges[i].ID] = e.X
		}
	}

	return inst, nil
}

// graph builds the core.Graph in edge declaration order, so the i-th edge
// gets ID "e<i+1>".
func (f *File) graph() (*core.Graph, error) {
	mixed := false
	for _, e := range f.Edges {
		if e.Directed != nil {
			mixed = true

			break
		}
	}
	opts := []core.GraphOption{core.WithWeighted(), core.WithMultiEdges(), core.WithDirected(f.Directed)}
	var g *core.Graph
	if mixed {
		g = core.NewMixedGraph(opts...)
	} else {
		g = core.NewGraph(opts...)
	}

	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("instance: vertex %q: %w", v, err)
		}
	}
	for i, e := range f.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Cost, eopts...); err != nil {
			return nil, fmt.Errorf("instance: edge #%d %s-%s: %w", i+1, e.From, e.To, err)
		}
	}

	return g, nil
}
