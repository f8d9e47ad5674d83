package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000000")

	t.Run("Miss", func(t *testing.T) {
		val, ok, err := cache.Get(ctx, key+"-missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, ".na Test\nTest = a;\n"))

		val, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, ".na Test\nTest = a;\n", val)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "first"))
		require.NoError(t, cache.Set(ctx, key, "second"))

		val, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", val)
	})

	t.Run("Empty Value Is A Hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-empty", ""))

		_, ok, err := cache.Get(ctx, key+"-empty")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
