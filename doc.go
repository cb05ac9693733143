// Package lvlath is your in-memory playground for building, exploring,
// and analyzing graphs.
//
// 🚀 What is lvlath?
//
//	A modern, pure-Go library for Bounded Multi-Source Shortest Paths
//	(BMSSP) over a read-only, integer-indexed graph view:
//		• Graph: dense 0..n-1 adjacency built once via NewGraph/AddEdge
//		• FindPivots: bounded Bellman-Ford + forest-size pivot selection
//		• BaseCase: k-bounded Dijkstra, the recursion's level-0 leaf
//		• BatchHeap: two-layer block-list batch-pull priority structure
//		• Run: the recursive driver and top-level entry point
//
// ✨ Why choose lvlath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo
//   - Instrumented – optional Prometheus counters, env-driven Config
//
// Everything lives under one subpackage:
//
//	bmssp/ — Bounded Multi-Source Shortest Paths on a read-only, integer-indexed graph view
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/katalvlaran/lvlath-bmssp/bmssp
package lvlath
