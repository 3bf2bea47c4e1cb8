// Package cache provides the bounded LRU cache behind tick label
// formatting. Storage and eviction come from
// github.com/hashicorp/golang-lru/v2; this package adds statistics and
// GetOrCreate.
//
//	labels := cache.New[float64, string](512)
//	s := labels.GetOrCreate(2.5, func() string { return format(2.5) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
