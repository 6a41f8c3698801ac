package driven

import "context"

// ResultCache is a namespaced key/value store for resolved lookups.
// Implementations must be safe for concurrent use. Values are opaque
// bytes and must be returned exactly as they were stored.
type ResultCache interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// Remote or IO failures return (nil, false, err).
	Get(ctx context.Context, group, key string) ([]byte, bool, error)

	// Set stores a value. Expiry is the implementation's concern.
	Set(ctx context.Context, group, key string, value []byte) error
}
