// Package catalogcache provides the bounded read-through cache in front of catalog lookups.
//
// Entries expire after a TTL and the least recently used entry is evicted when the size bound is
// reached. The cache is invalidated by the domain events of catalog commands, so it is plugged into
// the same publishing hook as the message broker. Reads never depend on the cache for correctness.
package catalogcache
