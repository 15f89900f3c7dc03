// Package cache provides artifact caching for rendered word clouds.
//
// Rendering the same text with the same options is fully deterministic,
// so artifacts can be cached aggressively: the cache key is a SHA-256
// hash of the input text combined with every option that influences
// the layout (canvas, seed, theme, tuning, format).
//
// Backends:
//   - [FileCache]: per-user on-disk cache for CLI runs
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are generated through the [Keyer] interface so multi-tenant
// deployments can prefix them with [NewScopedKeyer].
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached artifacts stay valid. Rendering is
// cheap enough that stale eviction needs no finer policy.
const DefaultTTL = 7 * 24 * time.Hour

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. Zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the layout-influencing options folded into an
// artifact cache key. Any field change must produce a different key.
type ArtifactKeyOpts struct {
	Format       string
	Width        float64
	Height       float64
	Seed         uint64
	MaxWords     int
	Theme        string
	Monochrome   bool
	NoRotate     bool
	RotateProb   float64
	Granularity  float64
	DistanceStep float64
	CarryDivisor int
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey keys a rendered artifact by the input text hash
	// and the full option set.
	ArtifactKey(textHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(textHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", textHash, opts)
}
