package pool

import "sync"

// Slice pools for scratch buffers that live for one row fit or one lookup.
var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
)

// GetFloat64Slice retrieves a float64 slice of exactly size elements.
//
// Contents are not cleared; callers overwrite every element. The returned
// cleanup function hands the slice back to the pool and must be called once
// the slice is no longer referenced.
//
// Example:
//
//	ys, cleanup := pool.GetFloat64Slice(n + 1)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { float64SlicePool.Put(ptr) }
}

// GetUint64Slice retrieves a zeroed uint64 slice of exactly size elements.
//
// Unlike GetFloat64Slice the contents are cleared, since bitset words are
// accumulated with OR/AND rather than overwritten.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	if cap(*ptr) < size {
		*ptr = make([]uint64, size)
	}
	*ptr = (*ptr)[:size]
	clear(*ptr)

	return *ptr, func() { uint64SlicePool.Put(ptr) }
}
