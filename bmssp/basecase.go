// This file implements BaseCase, the k-bounded Dijkstra that serves as the
// level-0 leaf of the BMSSP recursion. It reuses Dijkstra's container/heap
// lazy-decrease-key pattern but stops early once k+1 vertices have settled,
// then (per the reference implementation in
// original_source/src/BMSSP.cpp::runBaseCase) trims down to the k smallest
// when more than k vertices settled.
//
// Relaxation keeps the reference's tie-accepting "<=" against the
// neighbor's current distance (original_source/src/BMSSP.cpp::runBaseCase
// pushes on altWeight <= distances[neighbor]): without it, a neighbor
// already set to its final value by a sibling call (FindPivots' bounded
// Bellman-Ford, or an earlier BaseCase activation) would never be pushed
// onto this call's queue, and the walk could never settle past it. The
// bound comparison, by contrast, is strict everywhere (d[u] + w < B, not
// <= B): the reference's mixed "<=" then "< B" combination risks a
// mis-settle at B == true distance.
package bmssp

import (
	"container/heap"
	"sort"
)

// BaseCase runs a k-bounded Dijkstra from src over g, writing into the
// shared dhat/pred arrays (lowering entries only), and returns a refined
// bound B' <= B and the set U of vertices it certifies as completed.
//
// Contract:
//   - relax edge (u, v) only when dhat[u] + w(u, v) < B (strict), pushing
//     v onto the local queue whenever the new distance is <= its current
//     dhat so ties from earlier calls still get walked through;
//   - stop after settling at most k+1 vertices;
//   - if |U_raw| <= k, return B' = B, U = U_raw;
//   - else sort settled distances ascending, let B' be the k-th smallest,
//     and return U = { v in U_raw : dhat[v] <= B' }.
//
// src must be in [0, n); B must be >= 0 (B may be +Inf).
func BaseCase(g *Graph, dhat []float64, pred []int, src int, B float64) (float64, []int, error) {
	n := g.NumVertices()
	if src < 0 || src >= n {
		return B, nil, invalidIndexf(src, n)
	}
	if B < 0 {
		return B, nil, invalidArgumentf("bound B=%g must be >= 0", B)
	}
	k := g.K()

	pq := make(distPQ, 0, k+1)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{vertex: src, dist: dhat[src]})

	settled := make([]bool, n)
	settledCount := 0
	var uRaw []int

	for pq.Len() > 0 && settledCount < k+1 {
		item := heap.Pop(&pq).(*distItem)
		u := item.vertex
		// Stale lazy-decrease-key entry: dhat[u] has since improved.
		if item.dist > dhat[u] {
			continue
		}
		if settled[u] {
			continue
		}
		settled[u] = true
		settledCount++
		// A vertex is only ever certified complete if its distance is
		// strictly below B: B is a strict upper bound everywhere in this
		// package, including for the source itself (at B=0, even the
		// source's own distance-0 entry is excluded).
		if dhat[u] < B {
			uRaw = append(uRaw, u)
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return B, nil, err
		}
		for _, e := range neighbors {
			newDist := dhat[u] + e.Weight
			if newDist < B && newDist <= dhat[e.To] {
				dhat[e.To] = newDist
				pred[e.To] = u
				heap.Push(&pq, &distItem{vertex: e.To, dist: newDist})
			}
		}
	}

	if len(uRaw) <= k {
		return B, uRaw, nil
	}

	settledDist := make([]float64, len(uRaw))
	for i, v := range uRaw {
		settledDist[i] = dhat[v]
	}
	sort.Float64s(settledDist)
	bPrime := settledDist[k-1]

	u := make([]int, 0, k)
	for _, v := range uRaw {
		if dhat[v] <= bPrime {
			u = append(u, v)
		}
	}
	return bPrime, u, nil
}
