// Copyright 2025 go-ranksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rank

import (
	"github.com/ajroetker/go-ranksort/rank/contrib/workerpool"
)

// Parallel tuning parameters for the rank phase.
const (
	// MinParallelLen is the smallest n routed to the worker pool. Rank
	// computation costs n-1 comparisons per position; below this length
	// the whole rank phase is cheaper than a pool hand-off.
	MinParallelLen = 256
)

// ParallelSort is Sort with the rank phase distributed over a worker pool.
// Each worker ranks a contiguous block of positions; blocks share no state
// beyond the read-only input, so the result is identical to Sort for every
// input and pool size. The scatter phase is O(n) against the O(n²) rank
// phase and stays sequential.
//
// If pool is nil, n is below MinParallelLen, or RANKSORT_NO_PARALLEL is
// set, falls back to the sequential implementation.
func ParallelSort[T Ordered](pool *workerpool.Pool, input []T, n int) ([]T, error) {
	if err := checkLength(len(input), n); err != nil {
		return nil, err
	}
	list := input[:n]
	ranks := make([]int, n)
	parallelRanks(pool, list, ranks)
	out := make([]T, n)
	BaseScatter(list, ranks, out)
	return out, nil
}

// ParallelRanks is Ranks with the computation distributed over a worker
// pool. Falls back to the sequential implementation under the same
// conditions as ParallelSort.
func ParallelRanks[T Ordered](pool *workerpool.Pool, input []T, n int) ([]int, error) {
	if err := checkLength(len(input), n); err != nil {
		return nil, err
	}
	ranks := make([]int, n)
	parallelRanks(pool, input[:n], ranks)
	return ranks, nil
}

// parallelRanks fills ranks using the pool, or sequentially when the pool
// is absent, the input is short, or parallelism is disabled. Chunk
// boundaries are aligned so no two workers write the same cache line of
// the shared ranks array.
func parallelRanks[T Ordered](pool *workerpool.Pool, list []T, ranks []int) {
	if pool == nil || len(list) < MinParallelLen || noParallel {
		BaseRanks(list, ranks)
		return
	}
	pool.ParallelForAligned(len(list), chunkAlign(), func(start, end int) {
		for i := start; i < end; i++ {
			ranks[i] = BaseRank(list, i)
		}
	})
}
