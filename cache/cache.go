// Package cache provides a small in-memory TTL cache used to hold built
// formatters, which are cheap to use but non-trivial to construct (locale
// matching plus a capability probe of the native primitive).
package cache

import "errors"

var (
	// ErrNotFound is returned when a key is not in the cache.
	ErrNotFound = errors.New("cache: key not found")

	// ErrClosed is returned when operating on a closed cache.
	ErrClosed = errors.New("cache: closed")
)
