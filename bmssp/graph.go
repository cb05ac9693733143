// This file declares the Graph type: a read-only, integer-indexed adjacency
// view (vertices 0..n-1) with the two derived scalar parameters k and t that
// govern BMSSP's branching. Graph is built once via NewGraph/AddEdge and
// never mutated again once handed to BMSSP, mirroring core.Graph's
// GraphOption/NewGraph shape but trading core.Graph's string ids and
// sync.RWMutex-guarded maps for dense integer ids and a plain slice-of-
// -slices adjacency list (no concurrent mutation is possible once BMSSP
// starts, so no lock is carried).
package bmssp

import "math"

// Edge is a single outgoing (destination, weight) record in a Graph's
// adjacency list. Weight must be >= 0; negative weights are rejected by
// AddEdge.
type Edge struct {
	To     int     // destination vertex, 0 <= To < n
	Weight float64 // edge weight, >= 0
}

// Graph is a read-only directed graph with n vertices numbered 0..n-1 and m
// edges. Self-loops and parallel edges are permitted; BaseCase and
// FindPivots naturally dominate/ignore them via relaxation.
//
// k and t are derived once at construction and are invariants of the graph:
//
//	k = floor(cbrt(ln n))
//	t = floor(cbrt(ln n)^2)
//
// both clamped to >= 1.
type Graph struct {
	n             int
	m             int
	adj           [][]Edge
	k             int
	t             int
	capacityShift uint
}

// defaultCapacityShift clamps BatchHeap's M = 2^((level-1)*t) shift at a
// chosen platform maximum. A shift this large already makes M bigger than
// any graph this package can hold in memory; it exists purely as an
// overflow guard.
const defaultCapacityShift = 30

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithParams overrides the derived k and t parameters. Both must be >= 1;
// passing a value < 1 is a construction-time programmer error and panics,
// mirroring dijkstra.WithMaxDistance's panic-on-negative validation of an
// immutable option.
func WithParams(k, t int) GraphOption {
	if k < 1 || t < 1 {
		panic(ErrInvalidArgument.Error())
	}
	return func(g *Graph) {
		g.k = k
		g.t = t
	}
}

// WithCapacityClamp overrides the default clamp on BatchHeap's M shift.
// shift must be >= 1.
func WithCapacityClamp(shift uint) GraphOption {
	if shift < 1 {
		panic(ErrInvalidArgument.Error())
	}
	return func(g *Graph) {
		g.capacityShift = shift
	}
}

// NewGraph allocates an empty Graph over n vertices (n >= 1) with k and t
// derived deterministically from n. Options may override the derived k/t
// (e.g. for reproducing a specific paper example).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 1 {
		n = 1
	}
	g := &Graph{
		n:             n,
		adj:           make([][]Edge, n),
		k:             deriveParam(n, 1),
		t:             deriveParam(n, 2),
		capacityShift: defaultCapacityShift,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// deriveParam computes floor(cbrt(ln n)^power), clamped to >= 1.
func deriveParam(n, power int) int {
	if n < 1 {
		n = 1
	}
	ln := math.Log(float64(n))
	if ln < 0 {
		ln = 0
	}
	cbrt := math.Cbrt(ln)
	val := cbrt
	if power == 2 {
		val = cbrt * cbrt
	}
	p := int(math.Floor(val))
	if p < 1 {
		p = 1
	}
	return p
}

// AddEdge appends a directed edge u -> v with the given weight to the
// adjacency list. u and v must be in [0, n); weight must be >= 0.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= g.n {
		return invalidIndexf(u, g.n)
	}
	if v < 0 || v >= g.n {
		return invalidIndexf(v, g.n)
	}
	if weight < 0 {
		return invalidArgumentf("negative edge weight %g on edge %d->%d", weight, u, v)
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	g.m++
	return nil
}

// NumVertices returns n, the number of vertices.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns m, the number of edges added so far.
func (g *Graph) NumEdges() int { return g.m }

// K returns the graph-level branching parameter k.
func (g *Graph) K() int { return g.k }

// T returns the graph-level recursion-depth parameter t.
func (g *Graph) T() int { return g.t }

// CapacityShift returns the clamp on BatchHeap's M = 2^((level-1)*t) shift.
func (g *Graph) CapacityShift() uint { return g.capacityShift }

// Neighbors returns the outgoing edges of u. The returned slice is owned by
// the Graph and must not be mutated by the caller; u must be in [0, n).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= g.n {
		return nil, invalidIndexf(u, g.n)
	}
	return g.adj[u], nil
}
