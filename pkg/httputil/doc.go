// Package httputil provides HTTP utilities for remote provider clients.
//
// # Overview
//
// This package provides the infrastructure the font provider client is
// built on:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem with a configurable
// TTL. Font CSS rarely changes, so repeated compilations of documents
// using the same families skip the network entirely.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var css string
//	ok, _ := cache.Get("fonts:Inter:700", &css) // Check cache
//	if !ok {
//	    css = fetchFromProvider()
//	    cache.Set("fonts:Inter:700", css) // Store for later
//	}
//
// Cache keys should be namespaced per provider to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient
// failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap such errors with [RetryableError] so the loop knows to try
// again; anything else returns immediately.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/framesmith/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `framesmith cache clear` or by deleting
// the cache directory.
package httputil
