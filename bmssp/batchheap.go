// This file implements BatchHeap, the two-layer block-list batch-pull
// priority structure that replaces a comparison heap in the BMSSP
// recursion. It is grounded on original_source/include/BatchHeap.h and
// src/BatchHeap.cpp: D0 (prepended blocks) and D1 (inserted blocks, tagged
// by a strictly increasing upper_bound) are each a container/list of
// blocks, and three maps give O(1) key -> handle lookup (block handle in D0
// or D1, plus the item's own list element), exactly mirroring the
// reference's address_book_l1_D0 / address_book_l1_D1 / address_book_l2.
//
// Two deliberate simplifications relative to the C++ reference: Pull
// collects the full contents of D0 and D1 rather than capping each walk at
// M elements before falling back to a wider rescan, and block splitting
// sorts the overflowing block rather than using a quickselect partition.
// Both preserve every tested invariant (per-block capacity, strictly
// increasing D1 bounds, pull-size law) while being considerably less
// delicate to get right in Go's list/map idiom than a hand-rolled
// nth_element equivalent would be.
package bmssp

import (
	"container/list"
	"sort"
)

// pair is a (vertex key, priority value) entry stored in a BatchHeap block.
type pair struct {
	key   int
	value float64
}

// block is one node of D0 or D1: an ordered list of pairs plus, for D1
// blocks, the upper bound on every value() it may hold.
type block struct {
	upperBound float64
	items      *list.List // list.Element.Value is a pair
}

// BatchHeap is a batch-pull priority structure parameterized by a batch
// size M and an exclusive upper bound B. It is owned by exactly one BMSSP
// activation and is not safe for concurrent use.
type BatchHeap struct {
	m int
	b float64

	d0 *list.List // list.Element.Value is *block; prepended blocks
	d1 *list.List // list.Element.Value is *block; inserted blocks, increasing upperBound

	d1Bounds       []float64               // sorted ascending, mirrors d1's block order
	d1BlockByBound map[float64]*list.Element // upperBound -> its d1 list element

	blockOfKeyD0 map[int]*list.Element // key -> its containing d0 list element
	blockOfKeyD1 map[int]*list.Element // key -> its containing d1 list element
	itemOfKey    map[int]*list.Element // key -> its element within block.items
}

// NewBatchHeap constructs an empty BatchHeap with batch size m (>= 1) and
// exclusive upper bound b (>= 0), seeded with a single D1 sentinel block
// bounded by b.
func NewBatchHeap(m int, b float64) *BatchHeap {
	if m < 1 {
		m = 1
	}
	h := &BatchHeap{
		m:              m,
		b:              b,
		d0:             list.New(),
		d1:             list.New(),
		d1BlockByBound: make(map[float64]*list.Element),
		blockOfKeyD0:   make(map[int]*list.Element),
		blockOfKeyD1:   make(map[int]*list.Element),
		itemOfKey:      make(map[int]*list.Element),
	}
	sentinel := &block{upperBound: b, items: list.New()}
	elem := h.d1.PushBack(sentinel)
	h.d1Bounds = []float64{b}
	h.d1BlockByBound[b] = elem
	return h
}

// Len reports the total number of (key, value) pairs currently stored
// across D0 and D1.
func (h *BatchHeap) Len() int {
	return len(h.itemOfKey)
}

// del removes key from wherever it is currently stored (D0 or D1) in O(1)
// via its stashed handle. An empty D1 block is removed from D1 (including
// its entry in d1Bounds/d1BlockByBound); empty D0 blocks are left in place,
// as they cost nothing beyond a skipped no-op during later traversal.
func (h *BatchHeap) del(key int) {
	itemElem, ok := h.itemOfKey[key]
	if !ok {
		return
	}

	if blockElem, ok := h.blockOfKeyD0[key]; ok {
		blk := blockElem.Value.(*block)
		blk.items.Remove(itemElem)
		delete(h.blockOfKeyD0, key)
	} else if blockElem, ok := h.blockOfKeyD1[key]; ok {
		blk := blockElem.Value.(*block)
		blk.items.Remove(itemElem)
		delete(h.blockOfKeyD1, key)
		if blk.items.Len() == 0 {
			h.d1.Remove(blockElem)
			delete(h.d1BlockByBound, blk.upperBound)
			h.removeBound(blk.upperBound)
		}
	}
	delete(h.itemOfKey, key)
}

// removeBound deletes bound from the sorted d1Bounds slice.
func (h *BatchHeap) removeBound(bound float64) {
	idx := sort.SearchFloat64s(h.d1Bounds, bound)
	if idx < len(h.d1Bounds) && h.d1Bounds[idx] == bound {
		h.d1Bounds = append(h.d1Bounds[:idx], h.d1Bounds[idx+1:]...)
	}
}

// Insert places (key, value) into D1.
//
//   - If value >= B, the insert is silently ignored.
//   - If key is already stored with a value <= the new value, the existing
//     entry wins and the call is a no-op.
//   - Otherwise any stale entry for key is deleted and the pair is appended
//     to the D1 block with the smallest upperBound >= value, splitting that
//     block if it now holds more than M elements.
func (h *BatchHeap) Insert(key int, value float64) {
	if value >= h.b {
		return
	}
	if itemElem, ok := h.itemOfKey[key]; ok {
		if old := itemElem.Value.(pair); old.value <= value {
			return
		}
		h.del(key)
	}

	idx := sort.SearchFloat64s(h.d1Bounds, value)
	if idx >= len(h.d1Bounds) {
		// No block covers this value: the sentinel block (upperBound == B)
		// was emptied and removed by an earlier delete. Re-create it at the
		// back of D1, where it lands at index idx; value < B was checked
		// above, so it covers this value.
		h.insertBound(h.d1.PushBack(&block{upperBound: h.b, items: list.New()}), h.b)
	}
	bound := h.d1Bounds[idx]
	blockElem := h.d1BlockByBound[bound]
	blk := blockElem.Value.(*block)

	itemElem := blk.items.PushBack(pair{key: key, value: value})
	h.itemOfKey[key] = itemElem
	h.blockOfKeyD1[key] = blockElem

	if blk.items.Len() > h.m {
		h.split(blockElem)
	}
}

// split divides an overflowing D1 block in two around its median value,
// replacing it in-place with a smaller block (upperBound == the median) and
// a larger block (upperBound == the original block's bound), and rewrites
// every moved element's handles.
func (h *BatchHeap) split(blockElem *list.Element) {
	blk := blockElem.Value.(*block)
	items := drainPairs(blk.items)
	sort.Slice(items, func(i, j int) bool { return items[i].value < items[j].value })

	mid := len(items) / 2
	medianVal := items[mid].value
	smallerItems, largerItems := items[:mid], items[mid:]

	smaller := &block{upperBound: medianVal, items: list.New()}
	larger := &block{upperBound: blk.upperBound, items: list.New()}

	prev := blockElem.Prev()
	h.d1.Remove(blockElem)
	delete(h.d1BlockByBound, blk.upperBound)
	h.removeBound(blk.upperBound)

	var smallerElem, largerElem *list.Element
	if prev != nil {
		smallerElem = h.d1.InsertAfter(smaller, prev)
	} else {
		smallerElem = h.d1.PushFront(smaller)
	}
	largerElem = h.d1.InsertAfter(larger, smallerElem)

	h.insertBound(smallerElem, smaller.upperBound)
	h.insertBound(largerElem, larger.upperBound)

	for _, p := range smallerItems {
		itemElem := smaller.items.PushBack(p)
		h.itemOfKey[p.key] = itemElem
		h.blockOfKeyD1[p.key] = smallerElem
	}
	for _, p := range largerItems {
		itemElem := larger.items.PushBack(p)
		h.itemOfKey[p.key] = itemElem
		h.blockOfKeyD1[p.key] = largerElem
	}
}

// insertBound records a new (bound, element) pair in the sorted d1Bounds
// index and the d1BlockByBound map.
func (h *BatchHeap) insertBound(elem *list.Element, bound float64) {
	idx := sort.SearchFloat64s(h.d1Bounds, bound)
	h.d1Bounds = append(h.d1Bounds, 0)
	copy(h.d1Bounds[idx+1:], h.d1Bounds[idx:])
	h.d1Bounds[idx] = bound
	h.d1BlockByBound[bound] = elem
}

// drainPairs collects every pair in l, in front-to-back order.
func drainPairs(l *list.List) []pair {
	out := make([]pair, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(pair))
	}
	return out
}

// BatchPrepend inserts items into D0 as one or more new front blocks.
//
// Precondition (caller's contract, not verified here): every item's value
// is strictly less than every value currently stored in D1. This lets the
// caller batch-prepend a whole "finished frontier" of vertices known to be
// below D1's working range without paying for a lower_bound lookup per
// item. BMSSP's own caller upholds this because it only ever batch-prepends
// the [B'_i, B_i) range, which sits strictly below D1's [B_i, B) range by
// construction (see bmssp.go).
func (h *BatchHeap) BatchPrepend(items []struct {
	Key   int
	Value float64
}) {
	if len(items) == 0 {
		return
	}
	ps := make([]pair, len(items))
	for i, it := range items {
		ps[i] = pair{key: it.Key, value: it.Value}
	}

	maxBlockSize := (h.m + 1) / 2 // ceil(M/2)
	var fragments [][]pair
	if len(ps) <= h.m {
		fragments = [][]pair{ps}
	} else {
		sort.Slice(ps, func(i, j int) bool { return ps[i].value < ps[j].value })
		for start := 0; start < len(ps); start += maxBlockSize {
			end := start + maxBlockSize
			if end > len(ps) {
				end = len(ps)
			}
			fragments = append(fragments, ps[start:end])
		}
	}

	// Push fragments front-to-back in descending order so that, after all
	// PushFront calls, D0's front-to-back order has the smallest-valued
	// fragment first.
	for i := len(fragments) - 1; i >= 0; i-- {
		frag := fragments[i]
		blk := &block{upperBound: h.b, items: list.New()}
		blockElem := h.d0.PushFront(blk)
		for _, p := range frag {
			itemElem := blk.items.PushBack(p)
			h.itemOfKey[p.key] = itemElem
			h.blockOfKeyD0[p.key] = blockElem
		}
	}
}

// PullResult is the outcome of a Pull call: the batch of vertex keys
// returned, and the refined bound x for the caller's next recursive step.
type PullResult struct {
	Keys []int
	X    float64
}

// Pull returns up to M of the smallest-valued pairs currently stored, along
// with the smallest value remaining afterward (or B, if nothing remains).
// Pull on a logically empty BatchHeap (no non-empty D0 or D1 blocks)
// returns an empty key set and X = B: this is not an error, it is the
// BMSSP main loop's termination signal.
func (h *BatchHeap) Pull() PullResult {
	var combined []pair
	for e := h.d0.Front(); e != nil; e = e.Next() {
		combined = append(combined, drainPairs(e.Value.(*block).items)...)
	}
	for e := h.d1.Front(); e != nil; e = e.Next() {
		combined = append(combined, drainPairs(e.Value.(*block).items)...)
	}

	if len(combined) == 0 {
		return PullResult{Keys: nil, X: h.b}
	}

	if len(combined) <= h.m {
		keys := make([]int, len(combined))
		for i, p := range combined {
			keys[i] = p.key
			h.del(p.key)
		}
		return PullResult{Keys: keys, X: h.b}
	}

	sort.Slice(combined, func(i, j int) bool { return combined[i].value < combined[j].value })
	selected := combined[:h.m]
	remaining := combined[h.m:]

	keys := make([]int, len(selected))
	for i, p := range selected {
		keys[i] = p.key
	}
	x := h.b
	if len(remaining) > 0 && remaining[0].value < x {
		x = remaining[0].value
	}
	for _, p := range selected {
		h.del(p.key)
	}
	return PullResult{Keys: keys, X: x}
}
