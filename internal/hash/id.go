// Package hash computes 64-bit structure identifiers.
//
// Plan structures and per-scan record stores are keyed by the xxHash64 of the
// structure name rather than the name itself, keeping hot-path map lookups on
// fixed-size keys. The plan builder rejects documents where two distinct
// names collide on the same ID.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the 64-bit identifier for a structure name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
