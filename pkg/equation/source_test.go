package equation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/aretw0/boolmin/pkg/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("existing file is read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "f.eqn")
		require.NoError(t, os.WriteFile(path, []byte("f = a & b;\n"), 0644))

		src, err := equation.Resolve(path)
		require.NoError(t, err)
		assert.True(t, src.IsFile())
		assert.Equal(t, path, src.Name)
		assert.Equal(t, "f = a & b;\n", src.Text)
	})

	t.Run("anything else is a literal", func(t *testing.T) {
		src, err := equation.Resolve("a & !b")
		require.NoError(t, err)
		assert.False(t, src.IsFile())
		assert.Equal(t, domain.StdinName, src.Name)
		assert.Equal(t, "a & !b", src.Text)
	})

	t.Run("directory is a literal", func(t *testing.T) {
		dir := t.TempDir()
		src, err := equation.Resolve(dir)
		require.NoError(t, err)
		assert.False(t, src.IsFile())
	})

	t.Run("blank input is rejected", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\n\t"} {
			_, err := equation.Resolve(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.eqn")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := equation.Resolve(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLiteral(t *testing.T) {
	_, err := equation.Literal("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	src, err := equation.Literal("/etc/passwd")
	require.NoError(t, err)
	assert.False(t, src.IsFile())
	assert.Equal(t, "/etc/passwd", src.Text)
}
