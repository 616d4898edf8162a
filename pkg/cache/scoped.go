package cache

// ScopedKeyer wraps a Keyer with a prefix so separate tenants of one
// shared backend never see each other's entries. The serving deployment
// scopes keys per project; the CLI uses the unscoped default.
//
// Example usage:
//
//	// Per-project keys on a shared Redis
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:a1b2:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// UnitKey generates a prefixed key for compiled unit caching.
func (k *ScopedKeyer) UnitKey(docHash string, opts UnitKeyOpts) string {
	return k.prefix + k.inner.UnitKey(docHash, opts)
}
