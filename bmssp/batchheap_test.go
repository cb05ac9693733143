package bmssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-bmssp/bmssp"
)

func TestBatchHeap_PullEmptyIsTermination(t *testing.T) {
	h := bmssp.NewBatchHeap(4, 100)
	pr := h.Pull()
	require.Empty(t, pr.Keys)
	require.Equal(t, 100.0, pr.X)
}

func TestBatchHeap_InsertIgnoresValueAtOrAboveBound(t *testing.T) {
	h := bmssp.NewBatchHeap(4, 10)
	h.Insert(1, 10) // == B, ignored
	h.Insert(2, 11) // > B, ignored
	h.Insert(3, 5)  // < B, kept

	pr := h.Pull()
	require.Equal(t, []int{3}, pr.Keys)
}

func TestBatchHeap_InsertKeepsBetterValueOnDuplicateKey(t *testing.T) {
	h := bmssp.NewBatchHeap(4, 10)
	h.Insert(1, 5)
	h.Insert(1, 8) // worse, ignored
	h.Insert(1, 2) // better, replaces

	pr := h.Pull()
	require.Len(t, pr.Keys, 1)
	require.Equal(t, 1, pr.Keys[0])
}

func TestBatchHeap_PullReturnsAllWhenUnderCapacity(t *testing.T) {
	h := bmssp.NewBatchHeap(10, 100)
	h.Insert(1, 5)
	h.Insert(2, 3)
	h.Insert(3, 9)

	pr := h.Pull()
	require.ElementsMatch(t, []int{1, 2, 3}, pr.Keys)
	require.Equal(t, 100.0, pr.X)

	// The heap is now logically empty.
	pr2 := h.Pull()
	require.Empty(t, pr2.Keys)
}

func TestBatchHeap_PullReturnsMSmallestAndRefinedX(t *testing.T) {
	h := bmssp.NewBatchHeap(2, 100)
	h.Insert(1, 10)
	h.Insert(2, 30)
	h.Insert(3, 20)
	h.Insert(4, 40)

	pr := h.Pull()
	require.Len(t, pr.Keys, 2)
	require.ElementsMatch(t, []int{1, 3}, pr.Keys) // 10 and 20 are the two smallest
	require.Equal(t, 30.0, pr.X)                   // smallest remaining value

	pr2 := h.Pull()
	require.ElementsMatch(t, []int{2, 4}, pr2.Keys)
	require.Equal(t, 100.0, pr2.X)
}

func TestBatchHeap_SplitOnOverflowStillPullsCorrectly(t *testing.T) {
	h := bmssp.NewBatchHeap(2, 1000) // small M forces several splits
	for key := 0; key < 20; key++ {
		h.Insert(key, float64(20-key)) // values 20, 19, ..., 1
	}

	var gotKeys []int
	for {
		pr := h.Pull()
		if len(pr.Keys) == 0 {
			break
		}
		gotKeys = append(gotKeys, pr.Keys...)
		require.LessOrEqual(t, len(pr.Keys), 2)
	}
	require.Len(t, gotKeys, 20)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, gotKeys)
}

func batchPrependItems(pairs map[int]float64) []struct {
	Key   int
	Value float64
} {
	out := make([]struct {
		Key   int
		Value float64
	}, 0, len(pairs))
	for k, v := range pairs {
		out = append(out, struct {
			Key   int
			Value float64
		}{k, v})
	}
	return out
}

func TestBatchHeap_BatchPrependSmallBatch(t *testing.T) {
	h := bmssp.NewBatchHeap(10, 100)
	h.BatchPrepend(batchPrependItems(map[int]float64{1: 1, 2: 2, 3: 3}))

	pr := h.Pull()
	require.ElementsMatch(t, []int{1, 2, 3}, pr.Keys)
}

func TestBatchHeap_BatchPrependLargeBatchSplitsIntoFragments(t *testing.T) {
	h := bmssp.NewBatchHeap(2, 100)
	items := make(map[int]float64, 10)
	for i := 0; i < 10; i++ {
		items[i] = float64(i)
	}
	h.BatchPrepend(batchPrependItems(items))

	var gotKeys []int
	for {
		pr := h.Pull()
		if len(pr.Keys) == 0 {
			break
		}
		gotKeys = append(gotKeys, pr.Keys...)
	}
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, gotKeys)
}

func TestBatchHeap_InsertAndPrependInteract(t *testing.T) {
	h := bmssp.NewBatchHeap(3, 50)
	h.Insert(1, 20)
	h.BatchPrepend(batchPrependItems(map[int]float64{2: 5, 3: 6}))
	h.Insert(4, 1)

	pr := h.Pull()
	require.ElementsMatch(t, []int{4, 2, 3}, pr.Keys) // 3 smallest of {20, 5, 6, 1}
	require.Equal(t, 20.0, pr.X)
}
