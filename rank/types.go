// Package rank provides a stable fixed-length sort built on rank ordering.
//
// Rank ordering sorts without swaps: for every input position it counts how
// many elements precede that position's element in sorted order (the
// element's rank), then writes each element directly to its rank in a
// freshly allocated output slice. The element count n is fixed per call, and
// only the first n elements of the input are consulted.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-ranksort/rank"
//
//	sorted, err := rank.Sort(data, len(data))
//	if err != nil {
//		return err
//	}
//
// The rank permutation itself is available through Ranks, which is useful
// for carrying a sort order over to satellite slices (see the permute
// package). Rank computations for distinct positions are independent, so
// large inputs can be handed to a worker pool via ParallelSort and
// ParallelRanks.
//
// Every entry point leaves its input untouched and returns a new slice.
// Sorting is stable: equal elements keep their original relative order.
package rank

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all types the sort accepts: types whose
// built-in > and >= comparisons form a total order.
//
// Floating-point NaNs break that total order (a NaN compares false against
// everything), which violates the sort's precondition; inputs containing
// NaN produce an unspecified permutation. This is never checked at run
// time.
type Ordered interface {
	Floats | Integers | ~string
}
