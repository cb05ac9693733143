// Package bmssp implements Bounded Multi-Source Shortest Paths (BMSSP) on a
// directed graph with non-negative edge weights.
//
// BMSSP recursively restricts attention to a small set of "pivot" vertices
// and uses a specialized batch priority structure (BatchHeap) in place of a
// comparison heap, achieving sub-Dijkstra worst-case complexity
// (target O(m * log^(2/3) n)) on sparse graphs.
//
// Overview:
//
//   - Graph: a read-only, integer-indexed adjacency view (0..n-1), with
//     derived parameters k = floor(cbrt(ln n)) and t = floor(cbrt(ln n)^2),
//     both clamped to >= 1.
//   - BaseCase: k-bounded Dijkstra from a single source (the recursion's
//     level-0 leaf).
//   - FindPivots: bounded Bellman-Ford relaxation from a frontier set,
//     identifying "pivot" vertices whose subtree is large enough to be
//     worth recursing on.
//   - BatchHeap: a two-layer block list supporting Insert, BatchPrepend and
//     Pull, the amortized-cheap replacement for a comparison heap.
//   - BMSSP: the recursive driver tying the above together.
//   - Run: the top-level entry point — computes the initial recursion
//     level, seeds the distance array with the source set, and invokes
//     BMSSP once.
//
// Non-goals: negative edges, dynamic graphs, parallel execution (the
// contract is single-threaded), and returning paths as edge sequences
// (only per-vertex predecessors are maintained).
//
// Complexity:
//
//   - Time:  target O(m * log^(2/3) n) for the full BMSSP recursion.
//   - Space: O(n + m) for the graph, plus O(n) for the shared distance and
//     predecessor arrays borrowed exclusively-mutable across the recursion.
//
// Error handling (sentinel errors, see errors.go):
//
//   - ErrInvalidIndex:    a vertex argument is out of [0, n).
//   - ErrInvalidArgument: a malformed parameter (level < 0, B < 0, a
//     negative edge weight). WithParams panics with its message on k or
//     t < 1; NewBatchHeap clamps M < 1 to 1 without an error.
//   - ErrCapacityExceeded: the internal shift 1 << ((level-1)*t) would
//     overflow the configured clamp.
package bmssp
