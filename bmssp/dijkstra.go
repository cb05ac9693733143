// This file implements Dijkstra, the full-scan single-source shortest-path
// oracle used only as a correctness reference, via the standard
// lazy-decrease-key container/heap pattern over []float64 distance arrays.
package bmssp

import (
	"container/heap"
	"math"
)

// Dijkstra computes shortest distances from src to every vertex reachable
// in g, with no bound. dist[v] is math.Inf(1) for unreachable v; pred[v] is
// -1 for src and for unreachable v.
//
// Complexity: O((n + m) log n).
func Dijkstra(g *Graph, src int) (dist []float64, pred []int, err error) {
	n := g.NumVertices()
	if src < 0 || src >= n {
		return nil, nil, invalidIndexf(src, n)
	}

	dist = make([]float64, n)
	pred = make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		pred[v] = -1
	}
	dist[src] = 0

	pq := make(distPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{vertex: src, dist: 0})

	visited := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, nil, nerr
		}
		for _, e := range neighbors {
			newDist := dist[u] + e.Weight
			if newDist < dist[e.To] {
				dist[e.To] = newDist
				pred[e.To] = u
				heap.Push(&pq, &distItem{vertex: e.To, dist: newDist})
			}
		}
	}

	return dist, pred, nil
}

// distItem is a (vertex, distance) pair stored in the oracle's min-heap.
type distItem struct {
	vertex int
	dist   float64
}

// distPQ is a min-heap of *distItem ordered by dist ascending, using the
// same lazy-decrease-key pattern as dijkstra.nodePQ: stale entries are
// pushed rather than updated in place, and skipped on pop via visited[].
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
