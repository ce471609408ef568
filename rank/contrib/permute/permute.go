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

// Package permute applies a rank permutation to satellite data.
//
// A sort that reports its permutation can carry satellite slices along
// without re-comparing keys: compute the ranks of the key column once, then
// Apply them to every column that travels with it.
//
//	keys := []float64{0.7, 0.1, 0.4}
//	ids := []string{"b", "a", "ab"}
//
//	ranks, err := rank.Ranks(keys, len(keys))      // [2 0 1]
//	sortedKeys, err := permute.Apply(ranks, keys)  // [0.1 0.4 0.7]
//	sortedIDs, err := permute.Apply(ranks, ids)    // [a ab b]
//
// Apply scatters (element i lands at perm[i]); Gather is the opposite
// direction (element i is taken from idx[i]). Applying a permutation equals
// gathering with its inverse.
package permute

import "fmt"

// Apply scatters src into a fresh slice following perm: element i of src is
// written to index perm[i] of the result. Only the first len(perm) elements
// of src are consulted; src may be longer.
//
// perm must be a permutation of [0, len(perm)), which Apply validates
// before moving any data. The permutations produced by rank.Ranks always
// qualify.
func Apply[T any](perm []int, src []T) ([]T, error) {
	if len(src) < len(perm) {
		return nil, fmt.Errorf("permute: source holds %d elements, permutation needs %d", len(src), len(perm))
	}
	if err := Check(perm); err != nil {
		return nil, err
	}
	dst := make([]T, len(perm))
	for i, p := range perm {
		dst[p] = src[i]
	}
	return dst, nil
}

// Gather collects src elements into a fresh slice following idx: element i
// of the result is src[idx[i]]. idx need not be a permutation; indices may
// repeat or skip, so Gather also serves selection and reordering with
// duplicates. Every index must be within src.
func Gather[T any](idx []int, src []T) ([]T, error) {
	dst := make([]T, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(src) {
			return nil, fmt.Errorf("permute: index %d at position %d out of range for %d source elements", j, i, len(src))
		}
		dst[i] = src[j]
	}
	return dst, nil
}

// Invert returns the inverse of perm: a permutation inv with
// inv[perm[i]] = i for every i. Gathering with the inverse is equivalent to
// applying perm. Fails if perm is not a permutation of [0, len(perm)).
func Invert(perm []int) ([]int, error) {
	inv := make([]int, len(perm))
	for i := range inv {
		inv[i] = -1
	}
	for i, p := range perm {
		if p < 0 || p >= len(perm) {
			return nil, fmt.Errorf("permute: entry %d at position %d out of range for length %d", p, i, len(perm))
		}
		if inv[p] != -1 {
			return nil, fmt.Errorf("permute: entry %d appears at positions %d and %d", p, inv[p], i)
		}
		inv[p] = i
	}
	return inv, nil
}

// Check reports whether perm is a permutation of [0, len(perm)): every
// entry in range and no entry repeated. A nil error means applying perm
// cannot drop or duplicate elements.
func Check(perm []int) error {
	seen := make([]bool, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(perm) {
			return fmt.Errorf("permute: entry %d at position %d out of range for length %d", p, i, len(perm))
		}
		if seen[p] {
			return fmt.Errorf("permute: duplicate entry %d at position %d", p, i)
		}
		seen[p] = true
	}
	return nil
}
