//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Random permutation and batching helpers.
//

package shuffle

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed. A zero seed uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes items in place using Fisher-Yates, so every ordering is
// equally likely.
func Shuffle[T any](r *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Batches splits items into consecutive chunks of at most size, keeping order.
// Only the last chunk can be short. The chunks share items' backing array.
func Batches[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("shuffle: batch size must be positive")
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for len(items) > 0 {
		n := min(size, len(items))
		batches = append(batches, items[:n:n])
		items = items[n:]
	}
	return batches
}
