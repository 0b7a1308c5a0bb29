// Package cache provides a small thread-safe LRU cache.
//
// The graph store uses it to memoize prefixed-name computations, which the
// name resolver performs for every node it renders. The cache is safe for
// concurrent readers, so a read-only store can serve parallel extraction
// runs.
package cache
