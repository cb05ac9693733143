// This file implements FindPivots: a k-round bounded Bellman-Ford relaxation
// from a frontier set S under bound B, followed by a forest-size analysis
// that selects the "productive" pivot subset.
//
// Grounded on original_source/src/FindPivot.cpp: predecessors discovered
// during Bellman-Ford (predBF) are written in the same pass as relaxation
// (the single-pass variant, sufficient once ties are accepted with "<="),
// and the forest step walks each discovered vertex's predBF chain to its
// root and counts subtree sizes per root, selecting roots whose subtree
// has >= k members as pivots.
package bmssp

// FindPivots runs k rounds of bounded Bellman-Ford from the frontier set S
// under bound B, returning the pivot set P (a subset of S whose k-step BF
// subtree has at least k members) and the nearby set W (every vertex
// discovered within k hops with distance < B), with S subset of W and P
// subset of S.
//
// dhat is read and written in place: a relaxation dhat[u]+w <= dhat[v]
// lowers dhat[v] (accepting ties so that equal-length competing paths still
// update predBF, needed for full forest coverage).
func FindPivots(g *Graph, B float64, s []int, dhat []float64) (p []int, w []int, err error) {
	n := g.NumVertices()
	k := g.K()

	for _, v := range s {
		if v < 0 || v >= n {
			return nil, nil, invalidIndexf(v, n)
		}
	}

	inW := make([]bool, n)
	var wOrder []int
	addToW := func(v int) {
		if !inW[v] {
			inW[v] = true
			wOrder = append(wOrder, v)
		}
	}
	for _, v := range s {
		addToW(v)
	}

	predBF := make([]int, n)
	for i := range predBF {
		predBF[i] = -1
	}

	layer := append([]int(nil), s...)
	for i := 1; i <= k; i++ {
		var next []int
		for _, u := range layer {
			neighbors, nerr := g.Neighbors(u)
			if nerr != nil {
				return nil, nil, nerr
			}
			for _, e := range neighbors {
				v := e.To
				newDist := dhat[u] + e.Weight
				if newDist <= dhat[v] {
					dhat[v] = newDist
					predBF[v] = u
					if newDist < B {
						next = append(next, v)
					}
				}
			}
		}
		for _, v := range next {
			addToW(v)
		}

		// Early exit: the amortized-savings clause. Once the discovered set
		// outgrows k*|S|, every source is worth recursing on directly.
		if len(wOrder) > k*len(s) {
			return append([]int(nil), s...), wOrder, nil
		}
		layer = next
	}

	// Forest analysis: walk each v in W to its predBF root, counting
	// subtree sizes per root. Only vertices in S can be roots: every other
	// member of W entered it through a relaxation that set its predBF. An
	// S member reached by a tie relaxation ("<=") also gets a predBF and is
	// then counted in another root's subtree instead of being a root.
	subtreeSize := make(map[int]int, len(s))
	for _, v := range wOrder {
		root := v
		for predBF[root] != -1 {
			root = predBF[root]
		}
		subtreeSize[root]++
	}

	for _, root := range s {
		if subtreeSize[root] >= k {
			p = append(p, root)
		}
	}

	return p, wOrder, nil
}
