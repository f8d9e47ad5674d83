package ports

import "context"

// ResultCache stores minimization output keyed by a digest of the invocation.
type ResultCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value, overwriting any previous one.
	Set(ctx context.Context, key, value string) error
}
