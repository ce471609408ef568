package rank

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// NoParallelEnv checks if the RANKSORT_NO_PARALLEL environment variable is
// set. When set, ParallelSort and ParallelRanks take the serial path
// regardless of the pool handed to them. This is useful for testing and
// debugging.
func NoParallelEnv() bool {
	val := os.Getenv("RANKSORT_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// noParallel caches NoParallelEnv for the lifetime of the process.
var noParallel = NoParallelEnv()

// chunkAlign returns the number of rank entries that span one cache line.
//
// Parallel rank computation rounds worker chunk boundaries to this multiple
// so that workers filling adjacent ranges of the shared rank array never
// write to the same cache line.
func chunkAlign() int {
	line := int(unsafe.Sizeof(cpu.CacheLinePad{}))
	entry := int(unsafe.Sizeof(int(0)))
	if line < entry {
		return 1
	}
	return line / entry
}
