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

// BaseScatter writes every element of list to its destination index in out:
// out[ranks[i]] = list[i], a single pass of len(list) writes.
//
// ranks must be a permutation of {0, ..., len(list)-1} (as produced by
// BaseRanks) and out must hold at least len(list) entries. Under the
// permutation requirement the writes are collision-free and independent of
// one another; no entry of out is read before all writes complete.
func BaseScatter[T Ordered](list []T, ranks []int, out []T) {
	for i := range list {
		out[ranks[i]] = list[i]
	}
}
