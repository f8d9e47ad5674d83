package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/boolmin/pkg/adapters/memory"
	"github.com/aretw0/boolmin/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, memory.NewCache())
}

func TestCache_Len(t *testing.T) {
	c := memory.NewCache()
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Set(context.Background(), "a", "1"))
	require.NoError(t, c.Set(context.Background(), "a", "2"))
	require.NoError(t, c.Set(context.Background(), "b", "3"))
	assert.Equal(t, 2, c.Len())
}
