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
	"errors"
	"fmt"
)

// ErrInvalidLength reports a call whose input holds fewer than n elements,
// or whose n is negative. It is returned, wrapped with both lengths,
// before any element has been compared.
var ErrInvalidLength = errors.New("rank: invalid length")

// Sort returns a new slice holding the first n elements of input in
// ascending order.
//
// The sort is stable: equal elements appear in the output in their original
// relative order. The input is never mutated, and the output is a freshly
// allocated slice of exactly n elements sharing no storage with input.
//
//   - n = 0 returns an empty slice.
//   - n = 1 returns the single element unchanged.
//   - len(input) > n leaves elements past position n-1 unconsulted.
//   - len(input) < n or n < 0 returns ErrInvalidLength.
//
// Sort runs the rank phase serially; see ParallelSort for distributing it
// across a worker pool.
func Sort[T Ordered](input []T, n int) ([]T, error) {
	if err := checkLength(len(input), n); err != nil {
		return nil, err
	}
	list := input[:n]
	ranks := make([]int, n)
	BaseRanks(list, ranks)
	out := make([]T, n)
	BaseScatter(list, ranks, out)
	return out, nil
}

// Ranks returns the destination index of each of the first n input
// positions: position i's element occupies index ranks[i] in the sorted
// output. The result is a permutation of {0, ..., n-1} for any input,
// duplicates included.
//
// The permutation on its own is enough to sort satellite data that travels
// with the keys; see the permute package. Preconditions and stability match
// Sort.
func Ranks[T Ordered](input []T, n int) ([]int, error) {
	if err := checkLength(len(input), n); err != nil {
		return nil, err
	}
	ranks := make([]int, n)
	BaseRanks(input[:n], ranks)
	return ranks, nil
}

// checkLength validates an element count against the input length. It runs
// before any comparison so that a misuse never reads out of bounds.
func checkLength(have, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative element count %d", ErrInvalidLength, n)
	}
	if have < n {
		return fmt.Errorf("%w: input holds %d elements, need %d", ErrInvalidLength, have, n)
	}
	return nil
}
