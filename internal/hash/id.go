// Package hash derives stable 64-bit keys for table and column names.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 key of a column or table name.
// Names are hashed byte for byte; "AGE" and "age" are different keys.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// IDs returns the keys of names in order.
func IDs(names []string) []uint64 {
	out := make([]uint64, len(names))
	for i, n := range names {
		out[i] = ID(n)
	}

	return out
}
