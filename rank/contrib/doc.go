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

// Package contrib collects supporting packages for rank ordering.
//
// # Subpackages
//
// The contrib package is organized into subdirectories:
//
//   - workerpool: Persistent worker pool for parallel rank computation
//   - permute: Apply, invert, and validate rank permutations
//
// # Worker Pool (rank/contrib/workerpool)
//
// The workerpool package provides a long-lived pool of goroutines so
// repeated sorts do not pay goroutine startup cost per call:
//
//	import "github.com/ajroetker/go-ranksort/rank/contrib/workerpool"
//
//	pool := workerpool.New(0) // one worker per CPU
//	defer pool.Close()
//
//	sorted, err := rank.ParallelSort(pool, data, len(data))
//
// # Permutations (rank/contrib/permute)
//
// The permute package reorders satellite data by a rank permutation,
// so several slices can follow one set of sort keys:
//
//	import "github.com/ajroetker/go-ranksort/rank/contrib/permute"
//
//	ranks, err := rank.Ranks(keys, len(keys))
//	sortedKeys, err := permute.Apply(ranks, keys)
//	sortedIDs, err := permute.Apply(ranks, ids)
//
// See subpackage documentation for detailed API information.
package contrib
