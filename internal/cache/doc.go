// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The state store keeps the normalized catalog here so that a recommendation
request does not decode the full item list from Badger on every call. The
catalog reload service invalidates the entry whenever it writes a new
catalog.

# Behavior

  - Values are typed through a type parameter; no assertions at call sites
  - Entries expire lazily on Get; Cleanup drops all expired entries at once
  - Hits, misses and evictions are tracked for monitoring

# Usage Example

	c := cache.New[[]models.FoodItem](time.Minute)
	c.Set("catalog:foodItems", items)

	if items, ok := c.Get("catalog:foodItems"); ok {
	    return items, nil
	}

# Thread Safety

All methods are safe for concurrent use. Entries use a sync.RWMutex and the
statistics a separate sync.Mutex so reads never wait on stat updates.
*/
package cache
