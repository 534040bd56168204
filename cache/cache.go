// Package cache is a tag-invalidated cache for pure read queries. Entries
// are keyed by operation name plus arguments and carry one or more group
// tags; mutating operations invalidate tags strictly after their write
// transaction commits, which forces the next read under any of those tags
// to recompute from the store. There is no TTL — staleness is driven
// entirely by tag invalidation.
package cache

import "context"

// Tags for the cached query groups.
const (
	TagItems     = "items"
	TagCart      = "cart"
	TagCustomers = "customers"
	TagOrders    = "orders"
)

// ComputeFunc produces the authoritative value for a cache key. It must be
// a pure read against the store.
type ComputeFunc func() (interface{}, error)

// TagCache caches JSON-encodable query results under group tags.
type TagCache interface {
	// GetOrCompute unmarshals the cached value for key into dest, or runs
	// compute, stores the result under key with the given tags, and
	// unmarshals that. A compute error is returned without caching.
	GetOrCompute(ctx context.Context, key string, tags []string, dest interface{}, compute ComputeFunc) error

	// Invalidate drops every entry associated with any of the tags.
	Invalidate(ctx context.Context, tags ...string)
}
