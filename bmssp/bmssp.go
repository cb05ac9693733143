// This file implements the BMSSP recursion and its Driver entry point,
// grounded on original_source/src/BMSSP.cpp::runBMSSP for the loop
// structure (pull, recurse, relax, classify into D.insert vs the K
// batch-prepend buffer, re-offer unfinished frontier members) and for the
// conservative final-bound formula (min(B, max completed distance, B'_0)),
// which matches the reference exactly.
package bmssp

import "math"

// BMSSP computes a refined bound B' <= B and a set U of vertices certified
// to have their final shortest-path distance from the given sources, by
// recursing down to BaseCase at level 0.
//
// dhat and pred are shared, in-place working state across the whole
// recursion tree rooted at a single Run call: dhat entries never increase,
// and pred[v] is only rewritten by a relaxation that reaches v at a
// distance no greater than dhat[v] (BaseCase accepts ties, so an equally
// short predecessor may replace the current one).
//
// level must be >= 0; B must be >= 0. Every vertex in s must be in [0, n).
func BMSSP(g *Graph, level int, B float64, s []int, dhat []float64, pred []int, cfg Config) (float64, []int, error) {
	if level < 0 {
		return B, nil, invalidArgumentf("level=%d must be >= 0", level)
	}
	if B < 0 {
		return B, nil, invalidArgumentf("bound B=%g must be >= 0", B)
	}
	observeRecursionCall(cfg.MetricsEnabled, level)

	if level == 0 {
		return bmsspBase(g, B, s, dhat, pred, cfg)
	}
	return bmsspRecursive(g, level, B, s, dhat, pred, cfg)
}

// bmsspBase handles level == 0: one BaseCase call per source, folded
// together into a single refined bound and certified set.
func bmsspBase(g *Graph, B float64, s []int, dhat []float64, pred []int, cfg Config) (float64, []int, error) {
	bPrime := B
	seen := make(map[int]bool)
	var u []int
	for _, src := range s {
		bi, ui, err := BaseCase(g, dhat, pred, src, B)
		if err != nil {
			return B, nil, err
		}
		observeBaseCaseSettled(cfg.MetricsEnabled, len(ui))
		if bi < bPrime {
			bPrime = bi
		}
		for _, v := range ui {
			if !seen[v] {
				seen[v] = true
				u = append(u, v)
			}
		}
	}
	return bPrime, u, nil
}

// bmsspRecursive handles level >= 1: find pivots, drive a BatchHeap through
// repeated pull/recurse/relax rounds until the target frontier size is
// reached or the heap runs dry, then fold in the nearby set W below the
// final bound.
func bmsspRecursive(g *Graph, level int, B float64, s []int, dhat []float64, pred []int, cfg Config) (float64, []int, error) {
	p, w, err := FindPivots(g, B, s, dhat)
	if err != nil {
		return B, nil, err
	}

	clamp := g.CapacityShift()
	if cfg.MaxShift > 0 {
		clamp = cfg.MaxShift
	}
	shift := uint(level-1) * uint(g.T())
	if shift > clamp {
		return B, nil, capacityExceededf("shift %d exceeds capacity clamp %d", shift, clamp)
	}
	m := 1 << shift

	heap := NewBatchHeap(m, B)
	for _, pivot := range p {
		heap.Insert(pivot, dhat[pivot])
		observeBatchHeapOp(cfg.MetricsEnabled, "insert")
	}

	bPrime0 := B
	for _, pivot := range p {
		if dhat[pivot] < bPrime0 {
			bPrime0 = dhat[pivot]
		}
	}

	targetShift := uint(level) * uint(g.T())
	target := g.NumVertices()
	if targetShift <= clamp {
		if scaled := g.K() << targetShift; scaled > 0 && scaled < target {
			target = scaled
		}
	}

	seen := make(map[int]bool)
	var u []int
	maxCompleted := math.Inf(-1)

	for len(u) < target {
		pr := heap.Pull()
		observeBatchHeapOp(cfg.MetricsEnabled, "pull")
		if len(pr.Keys) == 0 {
			break
		}
		bi := pr.X

		bPrimeI, ui, err := BMSSP(g, level-1, bi, pr.Keys, dhat, pred, cfg)
		if err != nil {
			return B, nil, err
		}

		for _, v := range ui {
			if !seen[v] {
				seen[v] = true
				u = append(u, v)
				if dhat[v] > maxCompleted {
					maxCompleted = dhat[v]
				}
			}
		}

		var kBuf []struct {
			Key   int
			Value float64
		}
		for _, uu := range ui {
			neighbors, nerr := g.Neighbors(uu)
			if nerr != nil {
				return B, nil, nerr
			}
			for _, e := range neighbors {
				d2 := dhat[uu] + e.Weight
				if d2 < dhat[e.To] {
					dhat[e.To] = d2
					pred[e.To] = uu
					switch {
					case d2 >= bi && d2 < B:
						heap.Insert(e.To, d2)
						observeBatchHeapOp(cfg.MetricsEnabled, "insert")
					case d2 >= bPrimeI && d2 < bi:
						kBuf = append(kBuf, struct {
							Key   int
							Value float64
						}{e.To, d2})
					}
				}
			}
		}
		for _, sv := range pr.Keys {
			// Only the members of this round's frontier that did NOT end up
			// in ui are genuinely unfinished; re-offering one already folded
			// into u would hand the same (bPrime_i, {sv}) activation back to
			// the heap forever, since a repeat BMSSP call on an already-
			// certified vertex can only reproduce the same result.
			if !seen[sv] && dhat[sv] >= bPrimeI && dhat[sv] < bi {
				kBuf = append(kBuf, struct {
					Key   int
					Value float64
				}{sv, dhat[sv]})
			}
		}
		if len(kBuf) > 0 {
			heap.BatchPrepend(kBuf)
			observeBatchHeapOp(cfg.MetricsEnabled, "batch_prepend")
		}
	}

	bPrime := B
	if len(u) > 0 && maxCompleted < bPrime {
		bPrime = maxCompleted
	}
	if bPrime0 < bPrime {
		bPrime = bPrime0
	}

	for _, v := range w {
		// Strict: a vertex is only "completed" by this activation if its
		// distance is below the refined bound, never merely at it. At
		// B' == 0, even the source itself (distance 0) must stay out of U.
		if !seen[v] && dhat[v] < bPrime {
			seen[v] = true
			u = append(u, v)
		}
	}

	return bPrime, u, nil
}

// Run is the Driver: it initializes d-hat to +Inf and pred to -1, sets
// d-hat[s] = 0 for every source, derives the starting recursion level from
// n and t, and invokes BMSSP, handing cfg through to it.
func Run(g *Graph, bound float64, sources []int, cfg Config) (bPrime float64, u []int, dhat []float64, pred []int, err error) {
	n := g.NumVertices()
	dhat = make([]float64, n)
	pred = make([]int, n)
	for v := range dhat {
		dhat[v] = math.Inf(1)
		pred[v] = -1
	}
	for _, src := range sources {
		if src < 0 || src >= n {
			return bound, nil, nil, nil, invalidIndexf(src, n)
		}
		dhat[src] = 0
	}

	// log(n)/log(t) is undefined at t == 1, the common case for the small
	// graphs deriveParam's floor clamps to (cbrt(ln n)^2 < 2, i.e.
	// n below ~17). Fall back to log base 2 there: each level still at
	// least doubles BatchHeap's M and the loop's target size, so it plays
	// the same structural role log(n)/log(t) plays for t > 1.
	level := 1
	if n > 1 {
		logBase := float64(g.T())
		if logBase <= 1 {
			logBase = 2
		}
		lv := int(math.Ceil(math.Log(float64(n)) / math.Log(logBase)))
		if lv > level {
			level = lv
		}
	}

	bPrime, u, err = BMSSP(g, level, bound, sources, dhat, pred, cfg)
	return bPrime, u, dhat, pred, err
}
