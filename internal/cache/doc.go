// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiration.

The recommendation engine keeps computed recommendation lists in an
LRUCache keyed by strategy, normalized song title, result count and mood
filter. Reloading the catalog clears the cache.

# Usage

	c := cache.NewLRUCache[[]recommend.Recommendation](1000, 5*time.Minute)

	c.Add("vector|imagine|10|", recs)
	if recs, ok := c.Get("vector|imagine|10|"); ok {
	    return recs
	}

	s := c.Stats()
	fmt.Println(s.Hits, s.Misses, s.Evictions, s.Size)

# Expiration

Entries expire ttl after their last Add. Expired entries are removed lazily
by Get, or eagerly by CleanupExpired.

# Thread Safety

All methods may be called from multiple goroutines.
*/
package cache
