// Package tsp provides edge branching for TSP-style branch-and-price.
//
// The search state is a *Restrictions: edges fixed into every tour and edges
// removed from every tour. Two bap.Decision types mutate it:
//
//	FixEdge{Edge}    – x_e = 1 in the subtree
//	RemoveEdge{Edge} – x_e = 0 in the subtree
//
// PricingSync is a bap.Listener that mirrors those decisions onto a pricing
// *core.Graph: removed edges disappear, and a vertex with two fixed edges
// loses all other incident edges. Reversal re-inserts exactly what was
// deleted, under the original edge IDs.
//
// SelectBranchingEdge picks the fractional edge closest to 0.5, and
// BranchOnEdge creates the remove/fix children of a node.
//
// TourValues turns a Hamiltonian tour into the integral x_e assignment the
// separation package consumes; ValidateTour checks the tour alone.
package tsp
