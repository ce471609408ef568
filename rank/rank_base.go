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

// BaseRank computes the position list[i] occupies in the sorted output.
//
// Positions below i count elements with list[i] >= list[j]; positions above
// i count elements with list[i] > list[j]; the rank is the sum of the two
// counts. The asymmetry between the comparisons is what makes the sort
// stable and the rank array collision-free: for any pair of positions
// exactly one direction of comparison succeeds, duplicates included, so the
// earlier of two equal elements always receives the smaller rank.
//
// Cost is len(list)-1 comparisons for every i. BaseRank reads only list,
// never other ranks, so the ranks of distinct positions can be computed in
// any order or concurrently.
func BaseRank[T Ordered](list []T, i int) int {
	r := 0
	for j := 0; j < i; j++ {
		if list[i] >= list[j] {
			r++
		}
	}
	for j := i + 1; j < len(list); j++ {
		if list[i] > list[j] {
			r++
		}
	}
	return r
}

// BaseRanks fills ranks[i] with BaseRank(list, i) for every position of
// list. The result is always a permutation of {0, ..., len(list)-1}.
// ranks must hold at least len(list) entries; entries beyond len(list) are
// left untouched.
//
// Example:
//
//	list := []int{5, 7, 3, 1, -5, 9}
//	ranks := make([]int, len(list))
//	BaseRanks(list, ranks)
//	// ranks = [3, 4, 2, 1, 0, 5]
func BaseRanks[T Ordered](list []T, ranks []int) {
	for i := range list {
		ranks[i] = BaseRank(list, i)
	}
}
