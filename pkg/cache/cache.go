package cache

import (
	"context"
	"time"
)

// Default TTLs for the two cached artifact classes. Compiled units are
// invalidated by content hash, so their TTL mostly bounds disk growth;
// font CSS tracks a remote provider and expires faster.
const (
	TTLUnit    = 7 * 24 * time.Hour
	TTLFontCSS = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional
// expiry. A miss is reported through the bool return, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys for the artifact classes the toolchain
// caches. Keeping key construction behind an interface lets serving
// deployments scope keys per tenant without touching call sites.
type Keyer interface {
	// HTTPKey keys a cached HTTP response inside a namespace.
	HTTPKey(namespace, key string) string

	// UnitKey keys a compiled unit by document hash and the options
	// that change the output.
	UnitKey(docHash string, opts UnitKeyOpts) string
}

// UnitKeyOpts are the compilation options that participate in the unit
// cache key. Two runs with equal document hashes and equal options are
// interchangeable.
type UnitKeyOpts struct {
	Target string
	Name   string
	Fonts  bool
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// UnitKey generates a key for compiled unit caching. The options are
// hashed into the key so differing targets or names never collide.
func (k *DefaultKeyer) UnitKey(docHash string, opts UnitKeyOpts) string {
	return hashKey("unit", docHash, opts)
}
