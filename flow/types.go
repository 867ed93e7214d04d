package flow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceNotFound is returned when the source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSourceIsSink is returned when source and sink are the same vertex.
var ErrSourceIsSink = errors.New("flow: source and sink must differ")

// ErrEdgeNotFound is returned when an edge index is out of range.
var ErrEdgeNotFound = errors.New("flow: edge index out of range")

// ErrUnknownAlgorithm is returned for an unsupported Algorithm value or name.
var ErrUnknownAlgorithm = errors.New("flow: unknown max-flow algorithm")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// DefaultEpsilon is the capacity threshold under which an arc counts as saturated.
const DefaultEpsilon = 1e-9

// Options configures a Network.
//   - Epsilon: treat residual capacities ≤ Epsilon as zero (default 1e-9).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}

// Algorithm selects the max-flow strategy backing a Cutter.
type Algorithm int

const (
	// AlgoDinic uses level graphs and blocking flows. Default.
	AlgoDinic Algorithm = iota
	// AlgoEdmondsKarp uses BFS shortest augmenting paths.
	AlgoEdmondsKarp
	// AlgoFordFulkerson uses DFS augmenting paths.
	AlgoFordFulkerson
	// AlgoPushRelabel uses FIFO push/relabel discharges.
	AlgoPushRelabel
)

var algorithmNames = map[Algorithm]string{
	AlgoDinic:         "dinic",
	AlgoEdmondsKarp:   "edmonds-karp",
	AlgoFordFulkerson: "ford-fulkerson",
	AlgoPushRelabel:   "push-relabel",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name ("dinic", "edmonds-karp",
// "ford-fulkerson", "push-relabel") to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
